// via_6522_test.go - tests for the 6522 VIA timer (spec.md §8 boundary
// behaviour: "6522 T1 underflow from 0 -> $FFFE (reloads from latch on
// next cycle in continuous mode)").

package main

import "testing"

func TestVIA_T1UnderflowFromZeroWrapsToFFFE(t *testing.T) {
	v := newVIA6522("test", nil, 1)
	v.t1Active = true
	v.t1Counter = 0

	v.tickTimer1()
	if v.t1Counter != 0xFFFF {
		t.Fatalf("after first tick from 0, counter = %#x, want 0xFFFF", v.t1Counter)
	}
	if v.ifr&viaIFR_T1 != 0 {
		t.Error("IFR T1 flag should not be set on the cycle counter wraps to 0xFFFF")
	}

	v.tickTimer1()
	if v.t1Counter != 0xFFFE {
		t.Fatalf("after second tick, counter = %#x, want 0xFFFE", v.t1Counter)
	}
}

func TestVIA_T1ContinuousModeReloadsFromLatch(t *testing.T) {
	v := newVIA6522("test", nil, 1)
	v.acr = 0x40 // continuous mode
	v.t1Active = true
	v.t1Latch = 5
	v.t1Counter = 1

	v.tickTimer1() // decrements to 0: underflow
	if v.t1Counter != 0 {
		t.Fatalf("counter after decrementing from 1 = %d, want 0", v.t1Counter)
	}
	if v.ifr&viaIFR_T1 == 0 {
		t.Fatal("IFR T1 flag should be set on underflow")
	}
	if !v.t1Active {
		t.Error("continuous mode should leave the timer active after underflow")
	}

	v.tickTimer1() // next tick should reload from latch, not wrap to 0xFFFF
	if v.t1Counter != 5 {
		t.Errorf("counter after continuous reload = %d, want latch value 5", v.t1Counter)
	}
}

func TestVIA_T1OneShotStopsAfterUnderflow(t *testing.T) {
	v := newVIA6522("test", nil, 1)
	v.acr = 0x00 // one-shot
	v.t1Active = true
	v.t1Counter = 1

	v.tickTimer1()
	if v.t1Active {
		t.Error("one-shot mode should deactivate the timer after underflow")
	}
	v.tickTimer1() // should be a no-op now
	if v.t1Counter != 0 {
		t.Errorf("counter after inactive tick = %d, want frozen at 0", v.t1Counter)
	}
}

func TestVIA_IFRSetsIRQLineOnlyWhenEnabled(t *testing.T) {
	v := newVIA6522("test", nil, 1)
	v.setIFR(viaIFR_T1)
	v.ier = 0 // T1 not enabled
	v.recomputeIRQ()
	if v.ifr&viaIFR_IRQ != 0 {
		t.Error("IRQ bit should not be set when the underlying flag isn't enabled in IER")
	}

	v.ier = viaIFR_T1
	v.recomputeIRQ()
	if v.ifr&viaIFR_IRQ == 0 {
		t.Error("IRQ bit should be set once the asserted flag is enabled")
	}
}
