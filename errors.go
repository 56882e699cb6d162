// errors.go - sentinel error values for the emulation core
//
// Mirrors the teacher's convention of plain fmt.Errorf("...: %w", err)
// wraps around stdlib sentinel errors (see debug_snapshot.go) rather than
// a stack-trace-carrying error library.

package main

import "errors"

var (
	// ErrUnknownBigPage is returned when a big-page index is outside the
	// valid range and is not the distinguished invalid sentinel.
	ErrUnknownBigPage = errors.New("big page index out of range")

	// ErrSnapshotMagic is returned when a snapshot file's magic does not match.
	ErrSnapshotMagic = errors.New("snapshot: bad magic")

	// ErrSnapshotVersion is returned when a snapshot file's version is unsupported.
	ErrSnapshotVersion = errors.New("snapshot: unsupported version")

	// ErrReplayEventOutOfOrder is returned when a replay event's timestamp
	// does not lie between its owning snapshot and the next one.
	ErrReplayEventOutOfOrder = errors.New("timeline: event timestamp out of order")

	// ErrDiscLocked is returned when a disc image access cannot take its lock.
	ErrDiscLocked = errors.New("disc image: locked by another access")

	// ErrMessageRejected is returned (and passed to completion callbacks) when
	// a host message cannot be applied in the current timeline mode.
	ErrMessageRejected = errors.New("message rejected")

	// ErrCloneImpediment is returned when a machine's disc configuration
	// cannot be safely cloned into a snapshot.
	ErrCloneImpediment = errors.New("snapshot: machine cannot be cloned")

	// ErrUnknownModel is returned when a Config names an unrecognised
	// machine model.
	ErrUnknownModel = errors.New("config: unknown machine model")

	// ErrRingBufferFull is returned internally when a ring buffer has no
	// room for the next unit; never escapes the orchestrator (see §7).
	ErrRingBufferFull = errors.New("ring buffer full")
)
