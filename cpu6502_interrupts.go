// cpu6502_interrupts.go - IRQ/NMI line management, edge detection and the
// BRK/NMI vector hijack (spec.md §4.1 "Interrupt contract").
//
// Peripherals assert/deassert their own IRQSource bit independently; the
// CPU ORs all asserted bits to decide whether an IRQ is pending. NMI is
// edge-triggered: only a 0->1 transition of the OR of all NMI lines
// latches a pending NMI, mirroring real 6502 behaviour where a
// permanently-asserted NMI line fires exactly once.

package main

type interruptKind byte

const (
	interruptNone interruptKind = iota
	interruptIRQ
	interruptNMI
)

// SetDeviceIRQ asserts or deasserts one peripheral's IRQ line. Safe to call
// from any goroutine; the CPU samples the OR of all lines at the start of
// every instruction.
func (cpu *CPU6502) SetDeviceIRQ(source IRQSource, asserted bool) {
	for {
		old := cpu.irqLines.Load()
		var next uint32
		if asserted {
			next = old | uint32(source)
		} else {
			next = old &^ uint32(source)
		}
		if cpu.irqLines.CompareAndSwap(old, next) {
			return
		}
	}
}

// SetDeviceNMI asserts or deasserts one peripheral's NMI line.
func (cpu *CPU6502) SetDeviceNMI(source IRQSource, asserted bool) {
	for {
		old := cpu.nmiLines.Load()
		var next uint32
		if asserted {
			next = old | uint32(source)
		} else {
			next = old &^ uint32(source)
		}
		if cpu.nmiLines.CompareAndSwap(old, next) {
			return
		}
	}
}

// sampleNMIEdge latches a pending NMI on the rising edge of the OR of all
// NMI lines. Must be called once per instruction boundary, not once per
// cycle, so a single glitch mid-instruction is not mistaken for a new edge.
func (cpu *CPU6502) sampleNMIEdge() {
	hi := cpu.nmiLines.Load() != 0
	if hi && !cpu.nmiPrevHi {
		cpu.nmiLatch = true
	}
	cpu.nmiPrevHi = hi
}

// pendingInterrupt reports whether an interrupt sequence should begin
// instead of the next opcode fetch, and whether it is the NMI sequence.
// NMI always wins over IRQ and is never masked by the I flag.
func (cpu *CPU6502) pendingInterrupt() (interruptKind, bool) {
	cpu.sampleNMIEdge()
	if cpu.nmiLatch {
		cpu.nmiLatch = false
		return interruptNMI, true
	}
	if cpu.irqLines.Load() != 0 && cpu.SR&flagInterrupt == 0 {
		return interruptIRQ, false
	}
	return interruptNone, false
}

// nmiHijacksBRK reports whether an NMI edge arrived while a BRK sequence
// was already in flight; real 6502 silicon redirects the in-progress BRK's
// vector fetch to $FFFA instead of $FFFE when this happens.
func (cpu *CPU6502) nmiHijacksBRK() bool {
	if cpu.mnemonic.op != opBRK {
		return false
	}
	if cpu.nmiLines.Load() != 0 && !cpu.nmiPrevHi {
		cpu.nmiPrevHi = true
		return true
	}
	return cpu.nmiLines.Load() != 0 && cpu.nmiLatch
}
