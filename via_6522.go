// via_6522.go - 6522 VIA core: ports, timers, shift register, PCR/ACR and
// interrupt flag/enable registers (spec.md §4.4).
//
// Register naming (ora/orb/ira/irb/ddra/ddrb/pcr) is grounded on
// other_examples/b9d3141a_pda-c64.go__via6522-via6522.go.go's Via6522
// struct; that reference implementation stops short of timers and
// interrupts ("Timers have not yet been implemented" / "Interrupts have
// not yet been implemented" per its own doc comment), so the Tick
// contract, ACR/PCR decode tables and IFR/IER semantics below are this
// engine's own work against the 6522 behaviour spec.md §4.4 describes.

package main

// VIA interrupt flag bits (IFR/IER), matching the real 6522 bit layout.
const (
	viaIFR_CA2 = 0x01
	viaIFR_CA1 = 0x02
	viaIFR_SR  = 0x04
	viaIFR_CB2 = 0x08
	viaIFR_CB1 = 0x10
	viaIFR_T2  = 0x20
	viaIFR_T1  = 0x40
	viaIFR_IRQ = 0x80 // set/read-back as the OR of all enabled+asserted flags
)

// PCR control-line modes (spec.md §4.4 "Port handshake").
type pcrMode byte

const (
	pcrInputNegEdge pcrMode = iota
	pcrInputPosEdge
	pcrHandshake
	pcrPulse
	pcrManualLow
	pcrManualHigh
)

type viaPort struct {
	outputReg byte
	inputReg  byte // last latched input (when ACR latch-enable bit set)
	ddr       byte // 1 = output

	c1, c2       bool // current line levels
	c1Prev       bool
	c2Prev       bool
	c2PulseTimer int // cycles remaining for a PCR pulse-mode C2 strobe
}

// VIA6522 is one system or user VIA instance (spec.md §4.4). Peripherals
// attach via the Read/Write-port hooks rather than holding a back-pointer
// to this struct, per spec.md §9 "single-owner orchestrator".
type VIA6522 struct {
	name string // "system" or "user", for trace/debug output

	pa, pb viaPort

	t1Counter, t1Latch uint16
	t2Counter, t2Latch uint16
	t1Active, t2Active bool
	t1PB7              bool // current output level of PB7 when ACR selects T1->PB7

	shiftReg  byte
	shiftBits int // bits remaining to shift in the current operation

	pcr byte
	acr byte
	ifr byte
	ier byte

	// IRQSource bit this VIA asserts on the shared CPU IRQ line, and the
	// CPU to notify (spec.md §9: peripherals report edges; the
	// orchestrator ORs them in - here the VIA holds the reference
	// directly for simplicity, matching the teacher's wiring idiom of
	// each device calling into a shared bus rather than routing every
	// edge through a central dispatcher).
	irqSource IRQSource
	cpu       *CPU6502

	// Hooks the machine wires to connect ports to peripherals.
	// OnWritePortA/B fire after every ORA/ORB register write (not after
	// DDR writes) with the port's effective output value; ReadPortA/B let
	// an input peripheral (keyboard matrix, joystick) supply the live input
	// bits for any DDR-input lines.
	OnWritePortA func(value byte)
	OnWritePortB func(value byte)
	ReadPortA    func() byte
	ReadPortB    func() byte
	OnCA2Pulse   func()
	OnCB2Pulse   func()
}

func newVIA6522(name string, cpu *CPU6502, irqSource IRQSource) *VIA6522 {
	return &VIA6522{name: name, cpu: cpu, irqSource: irqSource}
}

// Tick advances the VIA by one system cycle (spec.md §4.4 "Tick contract").
func (v *VIA6522) Tick() {
	v.tickTimer1()
	v.tickTimer2()
	v.tickShiftRegister()
	v.sampleControlEdges()
	v.recomputeIRQ()
}

func (v *VIA6522) tickTimer1() {
	if !v.t1Active {
		return
	}
	if v.t1Counter == 0 {
		if v.acr&0x40 != 0 { // continuous mode: reload from latch the cycle after underflow
			v.t1Counter = v.t1Latch
		} else {
			v.t1Counter = 0xFFFF
		}
		return
	}
	v.t1Counter--
	if v.t1Counter == 0 {
		v.setIFR(viaIFR_T1)
		if v.acr&0x80 != 0 { // PB7 toggle-on-underflow
			v.t1PB7 = !v.t1PB7
		}
		if v.acr&0x40 == 0 {
			v.t1Active = false
		}
	}
}

func (v *VIA6522) tickTimer2() {
	if !v.t2Active {
		return
	}
	if v.acr&0x20 != 0 {
		return // pulse-counting mode: decremented by PB6 edges, not ticks
	}
	if v.t2Counter == 0 {
		v.t2Counter = 0xFFFF
		return
	}
	v.t2Counter--
	if v.t2Counter == 0 {
		v.setIFR(viaIFR_T2)
		v.t2Active = false
	}
}

// PulseT2FromPB6 is called by the machine wiring when PB6 transitions in a
// way the current ACR pulse-counting mode counts (spec.md §4.4 "decrement
// T1 and T2 counters by 1 (or by PB6 transitions for T2 in pulse-count
// mode)").
func (v *VIA6522) PulseT2FromPB6() {
	if !v.t2Active || v.acr&0x20 == 0 {
		return
	}
	if v.t2Counter == 0 {
		v.t2Counter = 0xFFFF
		v.setIFR(viaIFR_T2)
		return
	}
	v.t2Counter--
}

func (v *VIA6522) tickShiftRegister() {
	if v.shiftBits <= 0 {
		return
	}
	mode := (v.acr >> 2) & 0x07
	if mode == 0 {
		return // disabled
	}
	v.shiftBits--
	if v.shiftBits == 0 {
		v.setIFR(viaIFR_SR)
	}
}

func (v *VIA6522) sampleControlEdges() {
	v.sampleOneEdge(&v.pa, v.pcr&0x0E, viaIFR_CA1, viaIFR_CA2, true)
	v.sampleOneEdge(&v.pb, (v.pcr>>4)&0x0E, viaIFR_CB1, viaIFR_CB2, false)

	for port, timer := range [2]*int{&v.pa.c2PulseTimer, &v.pb.c2PulseTimer} {
		if *timer > 0 {
			*timer--
			if *timer == 0 {
				if port == 0 {
					v.pa.c2 = true
				} else {
					v.pb.c2 = true
				}
			}
		}
	}
}

func (v *VIA6522) sampleOneEdge(port *viaPort, pcrBits byte, c1Flag, c2Flag byte, isPortA bool) {
	c1Rising := port.c1 && !port.c1Prev
	c1Falling := !port.c1 && port.c1Prev
	negEdge := pcrBits&0x01 == 0
	if (negEdge && c1Falling) || (!negEdge && c1Rising) {
		v.setIFR(c1Flag)
		mode := pcrBits >> 1
		if mode < 4 { // CA2/CB2 input modes auto-clear on C1 edge in handshake
			_ = mode
		}
	}
	port.c1Prev = port.c1

	c2Mode := (pcrBits >> 1) & 0x07
	switch c2Mode {
	case 0, 1: // input, negative/positive edge
		rising := port.c2 && !port.c2Prev
		falling := !port.c2 && port.c2Prev
		if (c2Mode == 0 && falling) || (c2Mode == 1 && rising) {
			v.setIFR(c2Flag)
		}
	}
	port.c2Prev = port.c2
}

func (v *VIA6522) setIFR(bit byte) { v.ifr |= bit }

func (v *VIA6522) recomputeIRQ() {
	asserted := v.ifr&v.ier&0x7F != 0
	if asserted {
		v.ifr |= viaIFR_IRQ
	} else {
		v.ifr &^= viaIFR_IRQ
	}
	if v.cpu != nil {
		v.cpu.SetDeviceIRQ(v.irqSource, asserted)
	}
}

// StrobeC2 fires a PCR-pulse-mode output strobe on CA2/CB2: held low for
// one cycle then released, per spec.md §4.4's "pulse" handshake mode.
func (v *VIA6522) StrobeC2(portA bool) {
	mode := v.pcr >> 1 & 0x07
	if !portA {
		mode = (v.pcr >> 5) & 0x07
	}
	if mode != byte(pcrPulse) {
		return
	}
	if portA {
		v.pa.c2 = false
		v.pa.c2PulseTimer = 1
		if v.OnCA2Pulse != nil {
			v.OnCA2Pulse()
		}
	} else {
		v.pb.c2 = false
		v.pb.c2PulseTimer = 1
		if v.OnCB2Pulse != nil {
			v.OnCB2Pulse()
		}
	}
}

// effectiveOutput returns what a peripheral reading this port's pins sees:
// output-register bits where DDR selects output, and 1 (pulled up) or the
// supplied live input otherwise.
func (v *VIA6522) effectiveOutput(port *viaPort, liveInput func() byte) byte {
	in := byte(0xFF)
	if liveInput != nil {
		in = liveInput()
	}
	return (port.outputReg & port.ddr) | (in &^ port.ddr)
}
