// timeline.go - record/replay event log (spec.md §4.8 "Timeline / replay").
//
// Grounded on the teacher's breakpoint-channel pattern generalised into an
// ordered, snapshot-partitioned event log; the strict-increasing-timestamp
// invariants are this engine's own work against spec.md §4.8's stated
// invariants and §8 testable property 10 ("Replay determinism").

package main

import "sort"

type timelineMode int

const (
	timelineIdle timelineMode = iota
	timelineRecording
	timelineReplay
)

// TimelineEventKind distinguishes a snapshot marker from an action event.
type TimelineEventKind int

const (
	EventSnapshot TimelineEventKind = iota
	EventAction
)

// TimelineEvent is one (timestamp, typed payload) record (spec.md §4.8).
type TimelineEvent struct {
	Cycle   uint64
	Kind    TimelineEventKind
	Message Message        // for EventAction
	Snap    *MachineSnapshot // for EventSnapshot
}

// Timeline owns the ordered event log and the record/replay mode state
// machine.
type Timeline struct {
	mode   timelineMode
	events []TimelineEvent

	snapshotIntervalCycles uint64
	lastSnapshotCycle      uint64

	replayPos int

	machine *Machine
}

func newTimeline(m *Machine) *Timeline {
	return &Timeline{machine: m, snapshotIntervalCycles: 2_000_000} // spec.md §4.8 "default: one snapshot per second"
}

func (t *Timeline) Mode() timelineMode { return t.mode }

// StartRecording begins recording mode with an initial snapshot (spec.md
// §4.8 "Recording").
func (t *Timeline) StartRecording(initial *MachineSnapshot) {
	t.mode = timelineRecording
	t.events = []TimelineEvent{{Cycle: initial.Cycles, Kind: EventSnapshot, Snap: initial}}
	t.lastSnapshotCycle = initial.Cycles
}

func (t *Timeline) StopRecording() { t.mode = timelineIdle }

func (t *Timeline) ClearRecording() { t.events = nil }

// RecordMessage duplicates an accepted host message as an action event,
// per spec.md §4.8 "every host-originated message the orchestrator
// accepts is duplicated as an action event".
func (t *Timeline) RecordMessage(cycle uint64, msg Message) {
	if t.mode != timelineRecording {
		return
	}
	t.events = append(t.events, TimelineEvent{Cycle: cycle, Kind: EventAction, Message: msg})
}

// AdvanceTo is called once per cycle by the orchestrator; it takes a fresh
// snapshot at the configured interval while recording, and dispatches the
// next replay event when its timestamp is reached while replaying.
func (t *Timeline) AdvanceTo(cycle uint64) {
	switch t.mode {
	case timelineRecording:
		if cycle-t.lastSnapshotCycle >= t.snapshotIntervalCycles {
			snap := captureSnapshot(t.machine)
			t.events = append(t.events, TimelineEvent{Cycle: cycle, Kind: EventSnapshot, Snap: snap})
			t.lastSnapshotCycle = cycle
		}
	case timelineReplay:
		for t.replayPos < len(t.events) && t.events[t.replayPos].Cycle == cycle {
			ev := t.events[t.replayPos]
			if ev.Kind == EventAction {
				t.machine.handleMessage(ev.Message)
			}
			t.replayPos++
		}
		if t.replayPos >= len(t.events) {
			t.mode = timelineIdle // spec.md §4.8 "When the final event is reached, replay terminates."
		}
	}
}

// NextEventCycle returns the cycle at which the next unconsumed replay
// event is scheduled, for the orchestrator's soft stop-cycle cap (spec.md
// §4.7 step 2 "in replay mode, the cycle of the next scheduled event").
func (t *Timeline) NextEventCycle() (uint64, bool) {
	if t.mode != timelineReplay || t.replayPos >= len(t.events) {
		return 0, false
	}
	return t.events[t.replayPos].Cycle, true
}

// StartReplay enters replay mode at the given snapshot's position in the
// event log (spec.md §4.8 "Replay").
func (t *Timeline) StartReplay(fromCycle uint64) bool {
	idx := sort.Search(len(t.events), func(i int) bool { return t.events[i].Cycle >= fromCycle })
	if idx >= len(t.events) {
		return false
	}
	t.mode = timelineReplay
	t.replayPos = idx
	return true
}

func (t *Timeline) StopReplay() { t.mode = timelineIdle }

// Validate checks the strict-increasing / owning-snapshot invariants
// spec.md §4.8 requires; called from the tests.
func (t *Timeline) Validate() error {
	var lastSnapCycle uint64
	haveSnap := false
	for _, ev := range t.events {
		switch ev.Kind {
		case EventSnapshot:
			if haveSnap && ev.Cycle <= lastSnapCycle {
				return ErrReplayEventOutOfOrder
			}
			lastSnapCycle = ev.Cycle
			haveSnap = true
		case EventAction:
			if !haveSnap || ev.Cycle < lastSnapCycle {
				return ErrReplayEventOutOfOrder
			}
		}
	}
	return nil
}
