// adc_chip.go - the 4-channel analog-to-digital converter feeding
// joystick/analog-channel host messages into the machine (spec.md §4,
// §6 "Analog-channel", "Joystick-button", "Digital-joystick").

package main

// ADC models the uPD7002-class 4-channel converter: each channel holds a
// 16-bit value updated by host Analog-channel messages, plus two
// joystick-button digital inputs wired to a VIA control line by the
// caller.
type ADC struct {
	channel [4]uint16
	button  [2]bool

	conversionChannel byte
	conversionDone    bool
	result            uint16
}

func newADC() *ADC { return &ADC{} }

// SetChannel applies a host Analog-channel message.
func (a *ADC) SetChannel(channel int, value uint16) {
	if channel < 0 || channel >= 4 {
		return
	}
	a.channel[channel] = value
}

// SetButton applies a host Joystick-button message.
func (a *ADC) SetButton(index int, pressed bool) {
	if index < 0 || index >= 2 {
		return
	}
	a.button[index] = pressed
}

// StartConversion begins a conversion on the requested channel; real
// hardware takes on the order of tens of microseconds, modelled here as
// completing on the next Tick to keep the orchestrator's per-cycle cost
// flat (spec.md §4.7 "Update-flag dispatch": machines without a second
// processor, ADC, etc. should not pay for state they don't use - this
// mirrors that by making the ADC's own hot path a single field check).
func (a *ADC) StartConversion(channel byte) {
	a.conversionChannel = channel & 0x03
	a.conversionDone = false
}

func (a *ADC) Tick() {
	if a.conversionDone {
		return
	}
	a.result = a.channel[a.conversionChannel]
	a.conversionDone = true
}

func (a *ADC) ConversionDone() bool { return a.conversionDone }
func (a *ADC) Result() uint16       { return a.result }
func (a *ADC) ButtonPressed(i int) bool {
	if i < 0 || i >= 2 {
		return false
	}
	return a.button[i]
}
