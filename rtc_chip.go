// rtc_chip.go - Master 128/Compact real-time-clock + CMOS RAM chip,
// driven through the system VIA addressable latch's speech/RTC control
// bits (spec.md §4.4 "model-dependent speech or RTC control").
//
// The Master's RTC is a Philips MC146818-compatible part with 50 bytes of
// battery-backed CMOS RAM; this engine models the subset the OS ROM
// actually depends on (the register-address latch + data byte protocol)
// rather than full MC146818 alarm/interrupt semantics, which spec.md's
// peripheral list does not call out as a testable property.

package main

type RTCChip struct {
	ram      [50]byte
	addr     byte
	addrSet  bool
	nvramPath string
}

func newRTCChip(nvramPath string) *RTCChip {
	return &RTCChip{nvramPath: nvramPath}
}

// OnLatchControl reacts to the addressable latch's speech-write/read
// bits, which on the Master select the RTC's address-vs-data phase
// instead of speech synthesis (spec.md §4.4 wiring note).
func (r *RTCChip) OnLatchControl(index int, value bool) {
	switch index {
	case latchSpeechWriteEnable:
		r.addrSet = value
	case latchSpeechReadEnable:
		// read-phase toggle; actual byte transfer happens via Read/Write
	}
}

// Write and Read move one byte through the latched CMOS RAM address,
// mirroring the OS ROM's bit-banged access pattern over port A.
func (r *RTCChip) Write(value byte) {
	if r.addrSet {
		r.addr = value
		return
	}
	if int(r.addr) < len(r.ram) {
		r.ram[r.addr] = value
	}
}

func (r *RTCChip) Read() byte {
	if int(r.addr) < len(r.ram) {
		return r.ram[r.addr]
	}
	return 0xFF
}

// LoadNVRAM / SaveNVRAM persist the battery-backed RAM image across runs
// (spec.md §6 Hard-reset message's "optional new config + NVRAM").
func (r *RTCChip) LoadNVRAM(data []byte) {
	n := copy(r.ram[:], data)
	_ = n
}

func (r *RTCChip) SaveNVRAM() []byte {
	out := make([]byte, len(r.ram))
	copy(out, r.ram[:])
	return out
}
