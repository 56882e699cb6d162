// snapshot.go - whole-machine snapshot capture/restore and disk format
// (spec.md §6 "Snapshot format", §8 testable property 9 "Snapshot
// round-trip").
//
// Grounded on the teacher's manual encoding/binary serialization idiom
// (debug_snapshot.go's register dump) generalised to a full structured
// record; compress/gzip wraps the encoded bytes the same way the teacher
// favours plain stdlib over a third-party serialization framework for its
// own debug dumps (see DESIGN.md for the explicit standard-library
// justification).

package main

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

const snapshotMagic uint32 = 0x42424331 // "BBC1"
const snapshotVersion uint32 = 1

// RegisterSnapshot is the CPU register portion of a snapshot. Variant is
// stored as int32 (not CPUVariant) since encoding/binary only accepts
// fixed-width types, not plain `int`-based ones.
type RegisterSnapshot struct {
	PC             uint16
	SP             byte
	A, X, Y, SR    byte
	Cycles         uint64
	Variant        int32
}

// PeripheralSnapshot captures one peripheral's observable state as an
// opaque, self-describing byte blob (named, so the decoder can skip
// peripherals it doesn't recognise rather than failing the whole load).
type PeripheralSnapshot struct {
	Name string
	Data []byte
}

// MachineSnapshot is the structured record spec.md §6 describes: machine
// type, CPU registers, every RAM buffer, content-hash references to every
// ROM buffer, every peripheral's state, the master cycle counter, and the
// full paging state.
type MachineSnapshot struct {
	Model       Model
	Registers   RegisterSnapshot
	RAM         [][]byte // one entry per RAM big page, in table order
	ROMHashes   [][32]byte
	Peripherals []PeripheralSnapshot
	Cycles      uint64
	Paging      PagingState
}

// captureSnapshot builds a MachineSnapshot from a live Machine (spec.md §6,
// §8 testable property 9).
func captureSnapshot(m *Machine) *MachineSnapshot {
	s := &MachineSnapshot{
		Model: m.cfg.Model,
		Registers: RegisterSnapshot{
			PC: m.cpu.PC, SP: m.cpu.SP, A: m.cpu.A, X: m.cpu.X, Y: m.cpu.Y, SR: m.cpu.SR,
			Cycles: m.cpu.Cycles, Variant: int32(m.cpu.Variant),
		},
		Cycles: m.cycles,
		Paging: m.paging.state,
	}
	for _, pg := range m.pages.Pages {
		if pg.ReadOnly {
			s.ROMHashes = append(s.ROMHashes, sha256.Sum256(pg.Buf))
		} else {
			cp := make([]byte, len(pg.Buf))
			copy(cp, pg.Buf)
			s.RAM = append(s.RAM, cp)
		}
	}
	s.Peripherals = append(s.Peripherals,
		PeripheralSnapshot{Name: "sound", Data: encodeSoundState(m.sound)},
		PeripheralSnapshot{Name: "system-via", Data: encodeVIAState(m.systemVIA.via)},
		PeripheralSnapshot{Name: "system-latch", Data: encodeLatchState(m.systemVIA.latch)},
		PeripheralSnapshot{Name: "system-via-wiring", Data: []byte{m.systemVIA.lastPortAWrite}},
		PeripheralSnapshot{Name: "user-via", Data: encodeVIAState(m.userVIA.via)},
		PeripheralSnapshot{Name: "user-via-wiring", Data: encodeUserVIAWiring(m.userVIA)},
		PeripheralSnapshot{Name: "crtc", Data: encodeCRTCState(m.crtc)},
		PeripheralSnapshot{Name: "keyboard", Data: encodeKeyboardState(m.systemVIA.keys)},
		PeripheralSnapshot{Name: "adc", Data: encodeADCState(m.adc)},
	)
	for i, wd := range m.floppy {
		s.Peripherals = append(s.Peripherals, PeripheralSnapshot{
			Name: fmt.Sprintf("floppy%d", i), Data: encodeWD1770State(wd),
		})
	}
	if m.systemVIA.rtc != nil {
		s.Peripherals = append(s.Peripherals, PeripheralSnapshot{Name: "rtc", Data: encodeRTCState(m.systemVIA.rtc)})
	}
	return s
}

// restoreSnapshot applies a MachineSnapshot's CPU and RAM state to a live
// Machine (spec.md §6 "Load-state"). ROM content is verified by hash but
// never replaced, per the snapshot format's own contract ("given the same
// ROMs (by hash), it can be loaded into a fresh core").
func restoreSnapshot(m *Machine, s *MachineSnapshot) error {
	if s.Model != m.cfg.Model {
		return fmt.Errorf("snapshot: model mismatch: %w", ErrCloneImpediment)
	}
	romIdx := 0
	for _, pg := range m.pages.Pages {
		if !pg.ReadOnly {
			continue
		}
		if romIdx >= len(s.ROMHashes) || sha256.Sum256(pg.Buf) != s.ROMHashes[romIdx] {
			return fmt.Errorf("snapshot: ROM content does not match the snapshot's hashes: %w", ErrCloneImpediment)
		}
		romIdx++
	}
	m.cpu.PC, m.cpu.SP, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SR = s.Registers.PC, s.Registers.SP, s.Registers.A, s.Registers.X, s.Registers.Y, s.Registers.SR
	m.cpu.Cycles = s.Registers.Cycles
	m.cycles = s.Cycles
	m.paging.state = s.Paging
	m.paging.Rebuild()

	ramIdx := 0
	for i := range m.pages.Pages {
		if m.pages.Pages[i].ReadOnly {
			continue
		}
		if ramIdx >= len(s.RAM) {
			return fmt.Errorf("snapshot: not enough RAM pages: %w", ErrSnapshotVersion)
		}
		copy(m.pages.Pages[i].Buf, s.RAM[ramIdx])
		ramIdx++
	}

	restorePeripherals(m, s)
	return nil
}

// restorePeripherals applies every recognised entry in s.Peripherals back
// onto m's live peripheral state (spec.md §6 "every peripheral's state
// record"). Peripherals the running machine doesn't have (e.g. an "rtc"
// entry loaded on a Model B) and names this build doesn't recognise are
// silently skipped, per PeripheralSnapshot's doc comment.
func restorePeripherals(m *Machine, s *MachineSnapshot) {
	for _, p := range s.Peripherals {
		switch p.Name {
		case "sound":
			decodeSoundState(m.sound, p.Data)
		case "system-via":
			decodeVIAState(m.systemVIA.via, p.Data)
		case "system-latch":
			decodeLatchState(m.systemVIA.latch, p.Data)
		case "system-via-wiring":
			if len(p.Data) >= 1 {
				m.systemVIA.lastPortAWrite = p.Data[0]
			}
		case "user-via":
			decodeVIAState(m.userVIA.via, p.Data)
		case "user-via-wiring":
			decodeUserVIAWiring(m.userVIA, p.Data)
		case "crtc":
			decodeCRTCState(m.crtc, p.Data)
		case "keyboard":
			decodeKeyboardState(m.systemVIA.keys, p.Data)
		case "adc":
			decodeADCState(m.adc, p.Data)
		case "rtc":
			if m.systemVIA.rtc != nil {
				decodeRTCState(m.systemVIA.rtc, p.Data)
			}
		case "floppy0":
			decodeWD1770State(m.floppy[0], p.Data)
		case "floppy1":
			decodeWD1770State(m.floppy[1], p.Data)
		}
	}
}

// EncodeSnapshot serializes a MachineSnapshot to gzip-compressed bytes
// using encoding/binary (spec.md §8 testable property 9's byte-identical
// round-trip requirement).
func EncodeSnapshot(s *MachineSnapshot) ([]byte, error) {
	var raw bytes.Buffer
	binary.Write(&raw, binary.LittleEndian, snapshotMagic)
	binary.Write(&raw, binary.LittleEndian, snapshotVersion)
	binary.Write(&raw, binary.LittleEndian, int32(s.Model))
	binary.Write(&raw, binary.LittleEndian, s.Registers)
	binary.Write(&raw, binary.LittleEndian, s.Cycles)
	encodePagingState(&raw, s.Paging)

	binary.Write(&raw, binary.LittleEndian, int32(len(s.RAM)))
	for _, page := range s.RAM {
		raw.Write(page)
	}
	binary.Write(&raw, binary.LittleEndian, int32(len(s.ROMHashes)))
	for _, h := range s.ROMHashes {
		raw.Write(h[:])
	}
	binary.Write(&raw, binary.LittleEndian, int32(len(s.Peripherals)))
	for _, p := range s.Peripherals {
		binary.Write(&raw, binary.LittleEndian, int32(len(p.Name)))
		raw.WriteString(p.Name)
		binary.Write(&raw, binary.LittleEndian, int32(len(p.Data)))
		raw.Write(p.Data)
	}

	var out bytes.Buffer
	gw := gzip.NewWriter(&out)
	if _, err := gw.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeSnapshot is EncodeSnapshot's inverse.
func DecodeSnapshot(data []byte, ramPageSize int) (*MachineSnapshot, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", ErrSnapshotMagic)
	}
	defer gr.Close()
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(gr); err != nil {
		return nil, err
	}
	r := &raw

	var magic, version uint32
	binary.Read(r, binary.LittleEndian, &magic)
	if magic != snapshotMagic {
		return nil, ErrSnapshotMagic
	}
	binary.Read(r, binary.LittleEndian, &version)
	if version != snapshotVersion {
		return nil, ErrSnapshotVersion
	}

	s := &MachineSnapshot{}
	var model int32
	binary.Read(r, binary.LittleEndian, &model)
	s.Model = Model(model)
	binary.Read(r, binary.LittleEndian, &s.Registers)
	binary.Read(r, binary.LittleEndian, &s.Cycles)
	paging, err := decodePagingState(r)
	if err != nil {
		return nil, err
	}
	s.Paging = paging

	var ramCount int32
	binary.Read(r, binary.LittleEndian, &ramCount)
	for i := int32(0); i < ramCount; i++ {
		buf := make([]byte, ramPageSize)
		r.Read(buf)
		s.RAM = append(s.RAM, buf)
	}
	var romCount int32
	binary.Read(r, binary.LittleEndian, &romCount)
	for i := int32(0); i < romCount; i++ {
		var h [32]byte
		r.Read(h[:])
		s.ROMHashes = append(s.ROMHashes, h)
	}
	var perCount int32
	binary.Read(r, binary.LittleEndian, &perCount)
	for i := int32(0); i < perCount; i++ {
		var nameLen int32
		binary.Read(r, binary.LittleEndian, &nameLen)
		name := make([]byte, nameLen)
		r.Read(name)
		var dataLen int32
		binary.Read(r, binary.LittleEndian, &dataLen)
		data := make([]byte, dataLen)
		r.Read(data)
		s.Peripherals = append(s.Peripherals, PeripheralSnapshot{Name: string(name), Data: data})
	}
	return s, nil
}

// encodePagingState/decodePagingState marshal PagingState field-by-field:
// RomType is a [16]ROMMapperType, and ROMMapperType's underlying type is
// plain `int`, which encoding/binary cannot encode directly (it only
// accepts fixed-width int8/16/32/64), so each entry is cast to int32.
func encodePagingState(w *bytes.Buffer, p PagingState) {
	binary.Write(w, binary.LittleEndian, p.ROMSEL)
	binary.Write(w, binary.LittleEndian, p.ACCCON)
	w.Write(p.RegionByte[:])
	for _, rt := range p.RomType {
		binary.Write(w, binary.LittleEndian, int32(rt))
	}
}

func decodePagingState(r *bytes.Buffer) (PagingState, error) {
	var p PagingState
	binary.Read(r, binary.LittleEndian, &p.ROMSEL)
	binary.Read(r, binary.LittleEndian, &p.ACCCON)
	if _, err := r.Read(p.RegionByte[:]); err != nil {
		return p, err
	}
	for i := range p.RomType {
		var rt int32
		binary.Read(r, binary.LittleEndian, &rt)
		p.RomType[i] = ROMMapperType(rt)
	}
	return p, nil
}

// encodeSoundState packs the SN76489's full observable state into a small
// opaque blob for the peripheral-snapshot list.
func encodeSoundState(s *SN76489) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, s.lfsr)
	binary.Write(&b, binary.LittleEndian, s.noiseMode)
	binary.Write(&b, binary.LittleEndian, s.noiseRate)
	binary.Write(&b, binary.LittleEndian, s.latchedChannel)
	binary.Write(&b, binary.LittleEndian, s.latchedIsVol)
	binary.Write(&b, binary.LittleEndian, s.writeEnabled)
	for _, ch := range s.channels {
		binary.Write(&b, binary.LittleEndian, ch.period)
		binary.Write(&b, binary.LittleEndian, ch.counter)
		binary.Write(&b, binary.LittleEndian, ch.output)
		binary.Write(&b, binary.LittleEndian, ch.volume)
	}
	return b.Bytes()
}

func decodeSoundState(s *SN76489, data []byte) {
	r := bytes.NewReader(data)
	binary.Read(r, binary.LittleEndian, &s.lfsr)
	binary.Read(r, binary.LittleEndian, &s.noiseMode)
	binary.Read(r, binary.LittleEndian, &s.noiseRate)
	binary.Read(r, binary.LittleEndian, &s.latchedChannel)
	binary.Read(r, binary.LittleEndian, &s.latchedIsVol)
	binary.Read(r, binary.LittleEndian, &s.writeEnabled)
	for i := range s.channels {
		binary.Read(r, binary.LittleEndian, &s.channels[i].period)
		binary.Read(r, binary.LittleEndian, &s.channels[i].counter)
		binary.Read(r, binary.LittleEndian, &s.channels[i].output)
		binary.Read(r, binary.LittleEndian, &s.channels[i].volume)
	}
}

// encodeVIAState/decodeVIAState capture a 6522 VIA's full timer,
// shift-register, port-latch and interrupt-flag state (spec.md §6 "every
// peripheral's state record"; via_6522.go:57-68 lists the fields that
// matter for a bit-identical resume).
func encodeVIAState(v *VIA6522) []byte {
	var b bytes.Buffer
	encodeViaPort(&b, &v.pa)
	encodeViaPort(&b, &v.pb)
	binary.Write(&b, binary.LittleEndian, v.t1Counter)
	binary.Write(&b, binary.LittleEndian, v.t1Latch)
	binary.Write(&b, binary.LittleEndian, v.t2Counter)
	binary.Write(&b, binary.LittleEndian, v.t2Latch)
	binary.Write(&b, binary.LittleEndian, v.t1Active)
	binary.Write(&b, binary.LittleEndian, v.t2Active)
	binary.Write(&b, binary.LittleEndian, v.t1PB7)
	binary.Write(&b, binary.LittleEndian, v.shiftReg)
	binary.Write(&b, binary.LittleEndian, int32(v.shiftBits))
	binary.Write(&b, binary.LittleEndian, v.pcr)
	binary.Write(&b, binary.LittleEndian, v.acr)
	binary.Write(&b, binary.LittleEndian, v.ifr)
	binary.Write(&b, binary.LittleEndian, v.ier)
	return b.Bytes()
}

func decodeVIAState(v *VIA6522, data []byte) {
	r := bytes.NewReader(data)
	decodeViaPort(r, &v.pa)
	decodeViaPort(r, &v.pb)
	binary.Read(r, binary.LittleEndian, &v.t1Counter)
	binary.Read(r, binary.LittleEndian, &v.t1Latch)
	binary.Read(r, binary.LittleEndian, &v.t2Counter)
	binary.Read(r, binary.LittleEndian, &v.t2Latch)
	binary.Read(r, binary.LittleEndian, &v.t1Active)
	binary.Read(r, binary.LittleEndian, &v.t2Active)
	binary.Read(r, binary.LittleEndian, &v.t1PB7)
	binary.Read(r, binary.LittleEndian, &v.shiftReg)
	var shiftBits int32
	binary.Read(r, binary.LittleEndian, &shiftBits)
	v.shiftBits = int(shiftBits)
	binary.Read(r, binary.LittleEndian, &v.pcr)
	binary.Read(r, binary.LittleEndian, &v.acr)
	binary.Read(r, binary.LittleEndian, &v.ifr)
	binary.Read(r, binary.LittleEndian, &v.ier)
}

func encodeViaPort(b *bytes.Buffer, p *viaPort) {
	binary.Write(b, binary.LittleEndian, p.outputReg)
	binary.Write(b, binary.LittleEndian, p.inputReg)
	binary.Write(b, binary.LittleEndian, p.ddr)
	binary.Write(b, binary.LittleEndian, p.c1)
	binary.Write(b, binary.LittleEndian, p.c2)
	binary.Write(b, binary.LittleEndian, p.c1Prev)
	binary.Write(b, binary.LittleEndian, p.c2Prev)
	binary.Write(b, binary.LittleEndian, int32(p.c2PulseTimer))
}

func decodeViaPort(r *bytes.Reader, p *viaPort) {
	binary.Read(r, binary.LittleEndian, &p.outputReg)
	binary.Read(r, binary.LittleEndian, &p.inputReg)
	binary.Read(r, binary.LittleEndian, &p.ddr)
	binary.Read(r, binary.LittleEndian, &p.c1)
	binary.Read(r, binary.LittleEndian, &p.c2)
	binary.Read(r, binary.LittleEndian, &p.c1Prev)
	binary.Read(r, binary.LittleEndian, &p.c2Prev)
	var pulseTimer int32
	binary.Read(r, binary.LittleEndian, &pulseTimer)
	p.c2PulseTimer = int(pulseTimer)
}

// encodeLatchState/decodeLatchState capture the addressable latch's eight
// output bits as a single packed byte.
func encodeLatchState(l *AddressableLatch) []byte {
	var packed byte
	for i, v := range l.bits {
		if v {
			packed |= 1 << uint(i)
		}
	}
	return []byte{packed}
}

func decodeLatchState(l *AddressableLatch, data []byte) {
	if len(data) < 1 {
		return
	}
	for i := range l.bits {
		l.bits[i] = data[0]&(1<<uint(i)) != 0
	}
}

// encodeCRTCState/decodeCRTCState capture the 6845's register file and
// raster-scan position (spec.md §4.3.1).
func encodeCRTCState(c *CRTC6845) []byte {
	var b bytes.Buffer
	b.Write(c.regs[:])
	binary.Write(&b, binary.LittleEndian, c.selectedReg)
	binary.Write(&b, binary.LittleEndian, int32(c.col))
	binary.Write(&b, binary.LittleEndian, int32(c.row))
	binary.Write(&b, binary.LittleEndian, int32(c.raster))
	binary.Write(&b, binary.LittleEndian, int32(c.line))
	binary.Write(&b, binary.LittleEndian, int32(c.hSyncCounter))
	binary.Write(&b, binary.LittleEndian, int32(c.vSyncCounter))
	binary.Write(&b, binary.LittleEndian, c.inHSync)
	binary.Write(&b, binary.LittleEndian, c.inVSync)
	binary.Write(&b, binary.LittleEndian, int32(c.vAdjustCounter))
	binary.Write(&b, binary.LittleEndian, c.inVAdjust)
	binary.Write(&b, binary.LittleEndian, c.addr)
	binary.Write(&b, binary.LittleEndian, c.cursorOn)
	binary.Write(&b, binary.LittleEndian, int32(c.field))
	return b.Bytes()
}

func decodeCRTCState(c *CRTC6845, data []byte) {
	r := bytes.NewReader(data)
	r.Read(c.regs[:])
	binary.Read(r, binary.LittleEndian, &c.selectedReg)
	var col, row, raster, line, hSync, vSync, vAdjust, field int32
	binary.Read(r, binary.LittleEndian, &col)
	binary.Read(r, binary.LittleEndian, &row)
	binary.Read(r, binary.LittleEndian, &raster)
	binary.Read(r, binary.LittleEndian, &line)
	binary.Read(r, binary.LittleEndian, &hSync)
	binary.Read(r, binary.LittleEndian, &vSync)
	binary.Read(r, binary.LittleEndian, &c.inHSync)
	binary.Read(r, binary.LittleEndian, &c.inVSync)
	binary.Read(r, binary.LittleEndian, &vAdjust)
	binary.Read(r, binary.LittleEndian, &c.inVAdjust)
	binary.Read(r, binary.LittleEndian, &c.addr)
	binary.Read(r, binary.LittleEndian, &c.cursorOn)
	binary.Read(r, binary.LittleEndian, &field)
	c.col, c.row, c.raster, c.line = int(col), int(row), int(raster), int(line)
	c.hSyncCounter, c.vSyncCounter, c.vAdjustCounter, c.field = int(hSync), int(vSync), int(vAdjust), int(field)
}

// encodeUserVIAWiring/decodeUserVIAWiring capture the printer buffer/gate
// and the Compact-only pending mouse-motion accumulator (via_user.go).
func encodeUserVIAWiring(u *UserVIA) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, u.printerEnabled)
	binary.Write(&b, binary.LittleEndian, int32(len(u.printerBuffer)))
	b.Write(u.printerBuffer)
	binary.Write(&b, binary.LittleEndian, int32(u.mouseDX))
	return b.Bytes()
}

func decodeUserVIAWiring(u *UserVIA, data []byte) {
	r := bytes.NewReader(data)
	binary.Read(r, binary.LittleEndian, &u.printerEnabled)
	var bufLen int32
	binary.Read(r, binary.LittleEndian, &bufLen)
	buf := make([]byte, bufLen)
	r.Read(buf)
	u.printerBuffer = buf
	var mouseDX int32
	binary.Read(r, binary.LittleEndian, &mouseDX)
	u.mouseDX = int(mouseDX)
}

// encodeWD1770State/decodeWD1770State capture an in-flight command's state
// machine (spec.md §4.6); the backing disc image is restored separately
// via Load-disc, not as part of the snapshot.
func encodeWD1770State(w *WD1770) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, byte(w.command))
	binary.Write(&b, binary.LittleEndian, w.status)
	binary.Write(&b, binary.LittleEndian, w.track)
	binary.Write(&b, binary.LittleEndian, w.sector)
	binary.Write(&b, binary.LittleEndian, w.data)
	binary.Write(&b, binary.LittleEndian, int32(w.delayRemaining))
	binary.Write(&b, binary.LittleEndian, int32(w.stepRate))
	binary.Write(&b, binary.LittleEndian, int32(w.phase))
	binary.Write(&b, binary.LittleEndian, int32(w.sectorByteIdx))
	binary.Write(&b, binary.LittleEndian, w.drq)
	binary.Write(&b, binary.LittleEndian, w.intrq)
	return b.Bytes()
}

func decodeWD1770State(w *WD1770, data []byte) {
	r := bytes.NewReader(data)
	var command byte
	binary.Read(r, binary.LittleEndian, &command)
	w.command = wd1770Command(command)
	binary.Read(r, binary.LittleEndian, &w.status)
	binary.Read(r, binary.LittleEndian, &w.track)
	binary.Read(r, binary.LittleEndian, &w.sector)
	binary.Read(r, binary.LittleEndian, &w.data)
	var delay, stepRate, phase, sectorByteIdx int32
	binary.Read(r, binary.LittleEndian, &delay)
	binary.Read(r, binary.LittleEndian, &stepRate)
	binary.Read(r, binary.LittleEndian, &phase)
	binary.Read(r, binary.LittleEndian, &sectorByteIdx)
	w.delayRemaining, w.stepRate = int(delay), int(stepRate)
	w.phase, w.sectorByteIdx = int(phase), int(sectorByteIdx)
	binary.Read(r, binary.LittleEndian, &w.drq)
	binary.Read(r, binary.LittleEndian, &w.intrq)
}

// encodeRTCState/decodeRTCState capture the Master's CMOS RAM and the
// address/data latch phase (spec.md §4.4 RTC wiring note).
func encodeRTCState(rtc *RTCChip) []byte {
	var b bytes.Buffer
	b.Write(rtc.ram[:])
	binary.Write(&b, binary.LittleEndian, rtc.addr)
	binary.Write(&b, binary.LittleEndian, rtc.addrSet)
	return b.Bytes()
}

func decodeRTCState(rtc *RTCChip, data []byte) {
	r := bytes.NewReader(data)
	r.Read(rtc.ram[:])
	binary.Read(r, binary.LittleEndian, &rtc.addr)
	binary.Read(r, binary.LittleEndian, &rtc.addrSet)
}

// encodeKeyboardState/decodeKeyboardState capture the 8x10 key matrix and
// the host-driven auto-scan column.
func encodeKeyboardState(k *KeyboardMatrix) []byte {
	var b bytes.Buffer
	for _, col := range k.pressed {
		for _, v := range col {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}
	binary.Write(&b, binary.LittleEndian, k.autoScanColumn)
	return b.Bytes()
}

func decodeKeyboardState(k *KeyboardMatrix, data []byte) {
	r := bytes.NewReader(data)
	for c := range k.pressed {
		for row := range k.pressed[c] {
			binary.Read(r, binary.LittleEndian, &k.pressed[c][row])
		}
	}
	binary.Read(r, binary.LittleEndian, &k.autoScanColumn)
}

// encodeADCState/decodeADCState capture the four analog channels, the two
// joystick buttons, and any in-flight conversion.
func encodeADCState(a *ADC) []byte {
	var b bytes.Buffer
	for _, v := range a.channel {
		binary.Write(&b, binary.LittleEndian, v)
	}
	for _, v := range a.button {
		binary.Write(&b, binary.LittleEndian, v)
	}
	binary.Write(&b, binary.LittleEndian, a.conversionChannel)
	binary.Write(&b, binary.LittleEndian, a.conversionDone)
	binary.Write(&b, binary.LittleEndian, a.result)
	return b.Bytes()
}

func decodeADCState(a *ADC, data []byte) {
	r := bytes.NewReader(data)
	for i := range a.channel {
		binary.Read(r, binary.LittleEndian, &a.channel[i])
	}
	for i := range a.button {
		binary.Read(r, binary.LittleEndian, &a.button[i])
	}
	binary.Read(r, binary.LittleEndian, &a.conversionChannel)
	binary.Read(r, binary.LittleEndian, &a.conversionDone)
	binary.Read(r, binary.LittleEndian, &a.result)
}
