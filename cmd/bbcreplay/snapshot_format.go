// snapshot_format.go - minimal reimplementation of the snapshot header
// format (spec.md §6 "Snapshot format") for the "snapshot inspect"
// subcommand. Mirrors snapshot.go's encoding byte-for-byte for the header
// fields only; bbcreplay never needs the full RAM/ROM payload, only to
// report what a snapshot file claims to contain.

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const snapshotMagic uint32 = 0x42424331
const snapshotVersion uint32 = 1

// SnapshotHeader is the portion of a snapshot file bbcreplay reports on.
type SnapshotHeader struct {
	Model      int32
	PC         uint16
	SP, A, X, Y, SR byte
	CPUCycles  uint64
	Cycles     uint64
}

func readSnapshotHeader(path string) (*SnapshotHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not a valid snapshot (gzip): %w", err)
	}
	defer gr.Close()
	var raw bytes.Buffer
	if _, err := io.Copy(&raw, gr); err != nil {
		return nil, err
	}

	var magic, version uint32
	binary.Read(&raw, binary.LittleEndian, &magic)
	if magic != snapshotMagic {
		return nil, fmt.Errorf("bad snapshot magic %#x", magic)
	}
	binary.Read(&raw, binary.LittleEndian, &version)
	if version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}

	h := &SnapshotHeader{}
	binary.Read(&raw, binary.LittleEndian, &h.Model)
	binary.Read(&raw, binary.LittleEndian, &h.PC)
	binary.Read(&raw, binary.LittleEndian, &h.SP)
	binary.Read(&raw, binary.LittleEndian, &h.A)
	binary.Read(&raw, binary.LittleEndian, &h.X)
	binary.Read(&raw, binary.LittleEndian, &h.Y)
	binary.Read(&raw, binary.LittleEndian, &h.SR)
	binary.Read(&raw, binary.LittleEndian, &h.CPUCycles)
	var variant int32
	binary.Read(&raw, binary.LittleEndian, &variant)
	binary.Read(&raw, binary.LittleEndian, &h.Cycles)
	return h, nil
}
