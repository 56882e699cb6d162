// rtc_chip_test.go - tests for the Master RTC/CMOS address-latch + data
// protocol (spec.md §4.4, §6 Hard-reset NVRAM persistence).

package main

import "testing"

func TestRTCChip_AddressThenDataWriteReadRoundTrip(t *testing.T) {
	r := newRTCChip("")
	r.OnLatchControl(latchSpeechWriteEnable, true) // address phase
	r.Write(5)
	r.OnLatchControl(latchSpeechWriteEnable, false) // data phase
	r.Write(0x42)

	if got := r.Read(); got != 0x42 {
		t.Errorf("Read() = %#x, want 0x42 at the latched address", got)
	}
}

func TestRTCChip_OutOfRangeAddressReadsFF(t *testing.T) {
	r := newRTCChip("")
	r.OnLatchControl(latchSpeechWriteEnable, true)
	r.Write(200) // out of the 50-byte CMOS range
	r.OnLatchControl(latchSpeechWriteEnable, false)
	if got := r.Read(); got != 0xFF {
		t.Errorf("Read() at an out-of-range address = %#x, want 0xFF", got)
	}
}

func TestRTCChip_OutOfRangeAddressWriteIsIgnored(t *testing.T) {
	r := newRTCChip("")
	r.OnLatchControl(latchSpeechWriteEnable, true)
	r.Write(200)
	r.OnLatchControl(latchSpeechWriteEnable, false)
	r.Write(0x99) // must not panic or corrupt adjacent state
	r.OnLatchControl(latchSpeechWriteEnable, true)
	r.Write(0)
	r.OnLatchControl(latchSpeechWriteEnable, false)
	if got := r.Read(); got != 0 {
		t.Errorf("Read() at address 0 = %#x, want untouched 0", got)
	}
}

func TestRTCChip_NVRAMRoundTrip(t *testing.T) {
	r := newRTCChip("")
	r.OnLatchControl(latchSpeechWriteEnable, true)
	r.Write(10)
	r.OnLatchControl(latchSpeechWriteEnable, false)
	r.Write(0xAB)

	saved := r.SaveNVRAM()

	r2 := newRTCChip("")
	r2.LoadNVRAM(saved)
	r2.OnLatchControl(latchSpeechWriteEnable, true)
	r2.Write(10)
	r2.OnLatchControl(latchSpeechWriteEnable, false)
	if got := r2.Read(); got != 0xAB {
		t.Errorf("Read() after LoadNVRAM = %#x, want 0xAB (byte should survive the round trip)", got)
	}
}
