// cpu6502_debug.go - debugger hooks: register peek/poke, illegal-opcode
// reporting and breakpoints, all only safe to use at an instruction
// boundary (spec.md §3 invariant).

package main

import "fmt"

// DebugRegisters is a snapshot of the visible register file for a debugger
// UI or the replay/trace facility.
type DebugRegisters struct {
	PC         uint16
	SP, A, X, Y, SR byte
	Cycles     uint64
}

func (cpu *CPU6502) DebugRegisters() DebugRegisters {
	return DebugRegisters{PC: cpu.PC, SP: cpu.SP, A: cpu.A, X: cpu.X, Y: cpu.Y, SR: cpu.SR, Cycles: cpu.Cycles}
}

// SetDebugRegister writes one register; callers must only do this when
// AtInstructionBoundary() is true.
func (cpu *CPU6502) SetDebugRegister(name string, value uint16) error {
	switch name {
	case "PC":
		cpu.PC = value
	case "SP":
		cpu.SP = byte(value)
	case "A":
		cpu.A = byte(value)
	case "X":
		cpu.X = byte(value)
	case "Y":
		cpu.Y = byte(value)
	case "SR":
		cpu.SR = byte(value)
	default:
		return fmt.Errorf("cpu6502: unknown debug register %q", name)
	}
	return nil
}

// SetIllegalOpcodeHandler installs a callback fired whenever an opcode
// byte has no entry in the active dispatch table - useful for catching
// accidental jumps into data on the NMOS-undocumented or CMOS tables where
// most of the space is still legal, unlike the strict NMOS-defined table.
func (cpu *CPU6502) SetIllegalOpcodeHandler(fn func(cpu *CPU6502, opcode byte)) {
	cpu.illegalOpcode = fn
}

func (cpu *CPU6502) handleIllegalOpcode(opcode byte) {
	if cpu.illegalOpcode != nil {
		cpu.illegalOpcode(cpu, opcode)
		return
	}
	// Default: treat as a one-cycle NOP so emulation keeps running; a
	// debugger that wants to trap this installs its own handler instead.
}

// SetBreakpoint/ClearBreakpoint/Breakpoints manage the PC breakpoint set
// consulted by the orchestrator's run loop between Tick() calls.
func (cpu *CPU6502) SetBreakpoint(addr uint16)   { cpu.breakpoints[addr] = true }
func (cpu *CPU6502) ClearBreakpoint(addr uint16) { delete(cpu.breakpoints, addr) }
func (cpu *CPU6502) HasBreakpoint(addr uint16) bool {
	return cpu.breakpoints[addr]
}

// NotifyBreakpointHit is called by the orchestrator when it observes the
// CPU at an instruction boundary whose PC has a breakpoint set.
func (cpu *CPU6502) NotifyBreakpointHit(addr uint16) {
	select {
	case cpu.breakpointHit <- addr:
	default:
	}
}

// BreakpointHits exposes the channel a debugger REPL selects on.
func (cpu *CPU6502) BreakpointHits() <-chan uint16 { return cpu.breakpointHit }
