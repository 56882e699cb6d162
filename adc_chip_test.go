// adc_chip_test.go - tests for the 4-channel ADC model (spec.md §6
// "Analog-channel", "Joystick-button").

package main

import "testing"

func TestADC_ConversionCompletesOnNextTick(t *testing.T) {
	a := newADC()
	a.SetChannel(2, 0xBEEF)
	a.StartConversion(2)
	if a.ConversionDone() {
		t.Fatal("conversion should not be done before the first Tick")
	}
	a.Tick()
	if !a.ConversionDone() {
		t.Fatal("conversion should be done after one Tick")
	}
	if a.Result() != 0xBEEF {
		t.Errorf("Result = %#x, want 0xBEEF", a.Result())
	}
}

func TestADC_ChannelSelectMasksToTwoBits(t *testing.T) {
	a := newADC()
	a.SetChannel(1, 0x1234)
	a.StartConversion(0x05) // 0x05 & 0x03 = 1
	a.Tick()
	if a.Result() != 0x1234 {
		t.Errorf("Result = %#x, want 0x1234 (channel select should mask to 2 bits)", a.Result())
	}
}

func TestADC_OutOfRangeChannelAndButtonIgnored(t *testing.T) {
	a := newADC()
	a.SetChannel(4, 0xFFFF)
	a.SetChannel(-1, 0xFFFF)
	for i := 0; i < 4; i++ {
		a.StartConversion(byte(i))
		a.Tick()
		if a.Result() != 0 {
			t.Errorf("channel %d = %#x after an out-of-range write, want untouched 0", i, a.Result())
		}
	}
	a.SetButton(2, true)
	a.SetButton(-1, true)
	if a.ButtonPressed(2) || a.ButtonPressed(-1) {
		t.Error("out-of-range button indices should be ignored, not panic or silently alias")
	}
}

func TestADC_RepeatedTickDoesNotReconvert(t *testing.T) {
	a := newADC()
	a.SetChannel(0, 100)
	a.StartConversion(0)
	a.Tick()
	a.SetChannel(0, 200) // channel value changes after conversion latched
	a.Tick()
	if a.Result() != 100 {
		t.Errorf("Result = %d, want the conversion to stay latched at 100 until a new StartConversion", a.Result())
	}
}
