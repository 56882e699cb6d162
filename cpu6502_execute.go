// cpu6502_execute.go - the ALU/control-flow body run by the moExecute
// micro-op, once all addressing-mode bus cycles have resolved cpu.ea/
// cpu.operand.

package main

func (cpu *CPU6502) executeOperation() {
	switch cpu.mnemonic.op {
	case opLDA:
		cpu.A = cpu.operand
		cpu.updateNZ(cpu.A)
	case opLDX:
		cpu.X = cpu.operand
		cpu.updateNZ(cpu.X)
	case opLDY:
		cpu.Y = cpu.operand
		cpu.updateNZ(cpu.Y)
	case opLAX:
		cpu.A = cpu.operand
		cpu.X = cpu.operand
		cpu.updateNZ(cpu.A)
	case opSTA, opSTX, opSTY:
		// value is computed lazily by storeValue() at the write cycle itself
	case opADC:
		cpu.adc(cpu.operand)
	case opSBC:
		cpu.sbc(cpu.operand)
	case opAND:
		cpu.A &= cpu.operand
		cpu.updateNZ(cpu.A)
	case opORA:
		cpu.A |= cpu.operand
		cpu.updateNZ(cpu.A)
	case opEOR:
		cpu.A ^= cpu.operand
		cpu.updateNZ(cpu.A)
	case opCMP:
		cpu.compare(cpu.A, cpu.operand)
	case opCPX:
		cpu.compare(cpu.X, cpu.operand)
	case opCPY:
		cpu.compare(cpu.Y, cpu.operand)
	case opBIT:
		cpu.setFlag(flagZero, cpu.A&cpu.operand == 0)
		cpu.setFlag(flagNegative, cpu.operand&0x80 != 0)
		cpu.setFlag(flagOverflow, cpu.operand&0x40 != 0)
	case opINC:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A++
			cpu.updateNZ(cpu.A)
		} else {
			cpu.operand++
			cpu.updateNZ(cpu.operand)
		}
	case opDEC:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A--
			cpu.updateNZ(cpu.A)
		} else {
			cpu.operand--
			cpu.updateNZ(cpu.operand)
		}
	case opASL:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A = cpu.asl(cpu.A)
		} else {
			cpu.operand = cpu.asl(cpu.operand)
		}
	case opLSR:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A = cpu.lsr(cpu.A)
		} else {
			cpu.operand = cpu.lsr(cpu.operand)
		}
	case opROL:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A = cpu.rol(cpu.A)
		} else {
			cpu.operand = cpu.rol(cpu.operand)
		}
	case opROR:
		if cpu.mnemonic.mode == modeAccumulator {
			cpu.A = cpu.ror(cpu.A)
		} else {
			cpu.operand = cpu.ror(cpu.operand)
		}
	case opINX:
		cpu.X++
		cpu.updateNZ(cpu.X)
	case opINY:
		cpu.Y++
		cpu.updateNZ(cpu.Y)
	case opDEX:
		cpu.X--
		cpu.updateNZ(cpu.X)
	case opDEY:
		cpu.Y--
		cpu.updateNZ(cpu.Y)
	case opTAX:
		cpu.X = cpu.A
		cpu.updateNZ(cpu.X)
	case opTAY:
		cpu.Y = cpu.A
		cpu.updateNZ(cpu.Y)
	case opTXA:
		cpu.A = cpu.X
		cpu.updateNZ(cpu.A)
	case opTYA:
		cpu.A = cpu.Y
		cpu.updateNZ(cpu.A)
	case opTXS:
		cpu.SP = cpu.X
	case opTSX:
		cpu.X = cpu.SP
		cpu.updateNZ(cpu.X)
	case opCLC:
		cpu.setFlag(flagCarry, false)
	case opSEC:
		cpu.setFlag(flagCarry, true)
	case opCLI:
		cpu.setFlag(flagInterrupt, false)
	case opSEI:
		cpu.setFlag(flagInterrupt, true)
	case opCLD:
		cpu.setFlag(flagDecimal, false)
	case opSED:
		cpu.setFlag(flagDecimal, true)
	case opCLV:
		cpu.setFlag(flagOverflow, false)
	case opNOP:
		// nothing
	case opJMP:
		cpu.PC = cpu.ea
	case opJMPInd:
		// cpu.PC was already loaded from the pointed-to address by
		// consume(moJMPIndHi); nothing further to do here.
	case opJSR:
		cpu.PC = cpu.ea
	case opRTS:
		cpu.PC++
	case opRTI:
		// PC already pulled as the exact return address; no increment.
	case opPHA, opPHP:
		// value already pushed by the produce() step for this cycle
	case opPLA:
		cpu.updateNZ(cpu.A) // cpu.A already loaded by consume(moPullA)
	case opPLP:
		// cpu.SR already loaded by consume(moPullP)
	case opBRK:
		cpu.setFlag(flagInterrupt, true)
	case opBCC:
		cpu.branchIf(!cpu.getFlag(flagCarry))
	case opBCS:
		cpu.branchIf(cpu.getFlag(flagCarry))
	case opBEQ:
		cpu.branchIf(cpu.getFlag(flagZero))
	case opBNE:
		cpu.branchIf(!cpu.getFlag(flagZero))
	case opBMI:
		cpu.branchIf(cpu.getFlag(flagNegative))
	case opBPL:
		cpu.branchIf(!cpu.getFlag(flagNegative))
	case opBVC:
		cpu.branchIf(!cpu.getFlag(flagOverflow))
	case opBVS:
		cpu.branchIf(cpu.getFlag(flagOverflow))
	case opBRA:
		cpu.branchIf(true)
	case opNone:
		// interrupt sequences carry no operation of their own
	}
}

// branchIf applies the signed relative offset already fetched into
// cpu.operand when taken is true, and pays the one-cycle penalty real
// hardware charges for a taken branch by extending the in-flight program
// with one more dummy bus cycle (spec.md §4.1 branch timing; the further
// cycle a taken branch pays when it crosses a page is not modelled).
func (cpu *CPU6502) branchIf(taken bool) {
	if !taken {
		return
	}
	offset := int8(cpu.operand)
	cpu.PC = uint16(int32(cpu.PC) + int32(offset))
	cpu.program = append(cpu.program, microOp{kind: moDummyReadPC})
}
