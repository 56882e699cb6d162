// snapshot_test.go - tests for snapshot encode/decode (spec.md §8
// testable property 9 "Snapshot round-trip").

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"testing"
)

func sampleSnapshot() *MachineSnapshot {
	s := &MachineSnapshot{
		Model: ModelB,
		Registers: RegisterSnapshot{
			PC: 0x1234, SP: 0xF0, A: 0x11, X: 0x22, Y: 0x33, SR: 0x45,
			Cycles: 987654321, Variant: int32(VariantNMOSDefined),
		},
		Cycles: 987654321,
		Paging: PagingState{
			ROMSEL: 0x0F,
			ACCCON: 0x80,
			RomType: [16]ROMMapperType{0: ROMMapper16KB, 3: ROMMapperCCIBase},
		},
	}
	for i := 0; i < 3; i++ {
		page := make([]byte, bigPageSize)
		for j := range page {
			page[j] = byte(i*7 + j)
		}
		s.RAM = append(s.RAM, page)
	}
	s.ROMHashes = append(s.ROMHashes, [32]byte{1, 2, 3})
	s.Peripherals = append(s.Peripherals, PeripheralSnapshot{Name: "sound", Data: []byte{9, 8, 7, 6}})
	return s
}

func TestSnapshot_EncodeDecodeRoundTrip(t *testing.T) {
	orig := sampleSnapshot()
	data, err := EncodeSnapshot(orig)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	decoded, err := DecodeSnapshot(data, bigPageSize)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if decoded.Model != orig.Model {
		t.Errorf("Model = %v, want %v", decoded.Model, orig.Model)
	}
	if decoded.Registers != orig.Registers {
		t.Errorf("Registers = %+v, want %+v", decoded.Registers, orig.Registers)
	}
	if decoded.Cycles != orig.Cycles {
		t.Errorf("Cycles = %d, want %d", decoded.Cycles, orig.Cycles)
	}
	if decoded.Paging.ROMSEL != orig.Paging.ROMSEL || decoded.Paging.ACCCON != orig.Paging.ACCCON {
		t.Errorf("Paging ROMSEL/ACCCON = %#x/%#x, want %#x/%#x",
			decoded.Paging.ROMSEL, decoded.Paging.ACCCON, orig.Paging.ROMSEL, orig.Paging.ACCCON)
	}
	if decoded.Paging.RomType != orig.Paging.RomType {
		t.Errorf("Paging.RomType = %v, want %v", decoded.Paging.RomType, orig.Paging.RomType)
	}
	if len(decoded.RAM) != len(orig.RAM) {
		t.Fatalf("RAM page count = %d, want %d", len(decoded.RAM), len(orig.RAM))
	}
	for i := range orig.RAM {
		if !bytes.Equal(decoded.RAM[i], orig.RAM[i]) {
			t.Errorf("RAM page %d differs after round-trip", i)
		}
	}
	if len(decoded.ROMHashes) != 1 || decoded.ROMHashes[0] != orig.ROMHashes[0] {
		t.Error("ROMHashes did not round-trip")
	}
	if len(decoded.Peripherals) != 1 || decoded.Peripherals[0].Name != "sound" ||
		!bytes.Equal(decoded.Peripherals[0].Data, []byte{9, 8, 7, 6}) {
		t.Error("Peripherals did not round-trip")
	}
}

func TestSnapshot_DecodeRejectsBadMagic(t *testing.T) {
	orig := sampleSnapshot()
	data, err := EncodeSnapshot(orig)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	corrupt := append([]byte(nil), data...)
	if _, err := DecodeSnapshot(corrupt[4:], bigPageSize); err == nil {
		t.Error("decoding truncated/corrupt data should fail, not silently succeed")
	}
}

func TestSnapshot_DecodeRejectsWrongVersion(t *testing.T) {
	orig := sampleSnapshot()
	data, err := EncodeSnapshot(orig)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(gr); err != nil {
		t.Fatalf("reading raw snapshot bytes: %v", err)
	}
	rawBytes := raw.Bytes()
	// version is the 4 bytes immediately after the 4-byte magic.
	binary.LittleEndian.PutUint32(rawBytes[4:8], snapshotVersion+1)

	var out bytes.Buffer
	gw := gzip.NewWriter(&out)
	gw.Write(rawBytes)
	gw.Close()

	if _, err := DecodeSnapshot(out.Bytes(), bigPageSize); err == nil {
		t.Error("decoding a snapshot with a future version number should fail, not silently succeed")
	}
}
