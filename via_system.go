// via_system.go - system VIA wiring: keyboard matrix, addressable latch,
// sound-chip data bus, screen-base selection (spec.md §4.4 "System VIA
// wiring").

package main

// SystemVIA bundles the VIA6522 core with the peripherals port A/B are
// wired to, translating the generic port hooks into the specific
// behaviour spec.md §4.4 describes.
type SystemVIA struct {
	via     *VIA6522
	latch   *AddressableLatch
	keys    *KeyboardMatrix
	sound   *SN76489
	rtc     *RTCChip // Master 128/Compact only; nil on Model B/B+

	lastPortAWrite byte
}

func newSystemVIA(cpu *CPU6502, sound *SN76489, rtc *RTCChip) *SystemVIA {
	s := &SystemVIA{
		via:   newVIA6522("system", cpu, irqSourceSystemVIA),
		latch: &AddressableLatch{},
		keys:  newKeyboardMatrix(),
		sound: sound,
		rtc:   rtc,
	}
	s.latch.OnChange = s.onLatchChange
	s.via.OnWritePortA = s.onWritePortA
	s.via.ReadPortA = s.readPortA
	s.via.OnWritePortB = s.onWritePortB
	s.via.ReadPortB = func() byte { return 0xFF }
	return s
}

func (s *SystemVIA) onWritePortA(value byte) {
	s.lastPortAWrite = value
	if s.latch.Get(latchSoundWriteEnable) && s.sound != nil {
		s.sound.Write(value)
	}
}

func (s *SystemVIA) readPortA() byte {
	return s.keys.ReadPortA(s.lastPortAWrite, s.latch.Get(latchKeyboardWriteEnable))
}

func (s *SystemVIA) onWritePortB(value byte) {
	s.latch.Write(value)
}

func (s *SystemVIA) onLatchChange(index int, value bool) {
	switch index {
	case latchSoundWriteEnable:
		// edge itself carries no effect; writes are gated at write time
	case latchCapsLockLED, latchShiftLockLED:
		// host-visible LED state; surfaced via DebugRegisters-style polling
		// rather than its own message kind (spec.md Non-goals: no new UI
		// surface beyond what §6 already lists).
	case latchSpeechWriteEnable, latchSpeechReadEnable:
		if s.rtc != nil {
			s.rtc.OnLatchControl(index, value)
		}
	}
}

// Tick advances the VIA and keeps the keyboard CA2 IRQ line synced to
// "any key down" (spec.md §4.4 "C2 input <- keyboard IRQ (any
// non-scanned key pressed)").
func (s *SystemVIA) Tick() {
	s.via.SetCA2(!s.keys.AnyKeyDown()) // active low on real hardware
	s.via.Tick()
}

func (s *SystemVIA) ScreenBaseOffset() int { return s.latch.ScreenBaseBigPageOffset() }

func (s *SystemVIA) ReadRegister(reg byte) byte    { return s.via.ReadRegister(reg) }
func (s *SystemVIA) WriteRegister(reg, v byte)     { s.via.WriteRegister(reg, v) }
