package vm

import (
	"fmt"
)

// reg reads the selected register.
func (m *Machine) reg(r RegSpec) uint16 {
	if r == RegX {
		return m.X
	}
	return m.A
}

// setReg writes the selected register.
func (m *Machine) setReg(r RegSpec, value uint16) {
	if r == RegX {
		m.X = value
	} else {
		m.A = value
	}
}

// illegalAddr builds the runtime diagnostic for a forbidden mode.
func (m *Machine) illegalAddr(mode AddrMode) error {
	return ErrIllegalAddr{Mode: mode, Mnemon: m.mnemonString()}
}

// execute performs the effect of the instruction currently held in the
// instruction register.
func (m *Machine) execute() (halt bool, err error) {
	mn := decode(m.Spec)
	switch mn {
	case STOP:
		halt = true
	case RETTR:
		m.unpackFlags(m.readByte(m.SP) & 0x0F)
		m.SP++
		m.A = m.readWord(m.SP)
		m.SP += 2
		m.X = m.readWord(m.SP)
		m.SP += 2
		m.PC = m.readWord(m.SP)
		m.SP += 2
		m.SP = m.readWord(m.SP)
	case MOVSPA:
		m.A = m.SP
	case MOVFLGA:
		m.A = uint16(m.packFlags())
	case BR, BRLE, BRLT, BREQ, BRNE, BRGE, BRGT, BRV, BRC:
		if m.branchTaken(mn) {
			m.PC = m.loadOperand(branchMode(m.Spec))
		}
	case CALL:
		m.SP -= 2
		m.writeWord(m.PC, m.SP)
		m.PC = m.loadOperand(branchMode(m.Spec))
	case NOTr:
		r := regLastBit(m.Spec)
		value := ^m.reg(r)
		m.setReg(r, value)
		m.setNZ(value)
	case NEGr:
		r := regLastBit(m.Spec)
		value := -m.reg(r)
		m.V = m.reg(r) == 0x8000
		m.setReg(r, value)
		m.setNZ(value)
	case ASLr:
		r := regLastBit(m.Spec)
		value, carry, ovflw := add(m.reg(r), m.reg(r))
		m.C, m.V = carry, ovflw
		m.setReg(r, value)
		m.setNZ(value)
	case ASRr:
		r := regLastBit(m.Spec)
		value := m.reg(r)
		m.C = value&1 != 0
		value = value>>1 | value&0x8000
		m.setReg(r, value)
		m.setNZ(value)
	case ROLr:
		r := regLastBit(m.Spec)
		value := m.reg(r)
		carryIn := uint16(0)
		if m.C {
			carryIn = 1
		}
		m.C = value&0x8000 != 0
		m.setReg(r, value<<1|carryIn)
	case RORr:
		r := regLastBit(m.Spec)
		value := m.reg(r)
		carryIn := uint16(0)
		if m.C {
			carryIn = 0x8000
		}
		m.C = value&1 != 0
		m.setReg(r, value>>1|carryIn)
	case UNIMP0, UNIMP1, UNIMP2, UNIMP3, UNIMP4, UNIMP5, UNIMP6, UNIMP7:
		m.trapInto(int(mn - UNIMP0))
	case CHARI:
		err = m.chari()
	case CHARO:
		err = m.charo()
	case RETn:
		m.SP += uint16(nValue(m.Spec))
		m.PC = m.readWord(m.SP)
		m.SP += 2
	case ADDSP:
		value := m.loadOperand(mode3(m.Spec))
		m.SP, m.C, m.V = add(m.SP, value)
		m.setNZ(m.SP)
	case SUBSP:
		value := m.loadOperand(mode3(m.Spec))
		m.SP, m.C, m.V = sub(m.SP, value)
		m.setNZ(m.SP)
	case ADDr:
		r := regBit4(m.Spec)
		value, carry, ovflw := add(m.reg(r), m.loadOperand(mode3(m.Spec)))
		m.C, m.V = carry, ovflw
		m.setReg(r, value)
		m.setNZ(value)
	case SUBr:
		r := regBit4(m.Spec)
		value, carry, ovflw := sub(m.reg(r), m.loadOperand(mode3(m.Spec)))
		m.C, m.V = carry, ovflw
		m.setReg(r, value)
		m.setNZ(value)
	case ANDr:
		r := regBit4(m.Spec)
		value := m.reg(r) & m.loadOperand(mode3(m.Spec))
		m.setReg(r, value)
		m.setNZ(value)
	case ORr:
		r := regBit4(m.Spec)
		value := m.reg(r) | m.loadOperand(mode3(m.Spec))
		m.setReg(r, value)
		m.setNZ(value)
	case CPr:
		m.compare(regBit4(m.Spec), mode3(m.Spec))
	case LDr:
		r := regBit4(m.Spec)
		value := m.loadOperand(mode3(m.Spec))
		m.setReg(r, value)
		m.setNZ(value)
	case LDBYTEr:
		r := regBit4(m.Spec)
		value := m.reg(r)&0xFF00 | uint16(m.loadOperandByte(mode3(m.Spec)))
		m.setReg(r, value)
		m.setNZ(value)
	case STr:
		mode := mode3(m.Spec)
		if mode == Immediate {
			err = m.illegalAddr(mode)
			break
		}
		m.writeWord(m.reg(regBit4(m.Spec)), m.operandAddress(mode))
	case STBYTEr:
		mode := mode3(m.Spec)
		if mode == Immediate {
			err = m.illegalAddr(mode)
			break
		}
		m.writeByte(byte(m.reg(regBit4(m.Spec))), m.operandAddress(mode))
	}

	return
}

// branchTaken evaluates the branch predicate against the status flags.
func (m *Machine) branchTaken(mn Mnemonic) bool {
	switch mn {
	case BR:
		return true
	case BRLE:
		return m.N || m.Z
	case BRLT:
		return m.N
	case BREQ:
		return m.Z
	case BRNE:
		return !m.Z
	case BRGE:
		return !m.N
	case BRGT:
		return !m.N && !m.Z
	case BRV:
		return m.V
	case BRC:
		return m.C
	}
	return false
}

// compare runs CPr: the subtraction result is discarded, and N and Z are
// forced on mixed-sign operands so overflow cannot invert the comparison.
func (m *Machine) compare(r RegSpec, mode AddrMode) {
	a := m.reg(r)
	b := m.loadOperand(mode)
	result, carry, ovflw := sub(a, b)
	m.C, m.V = carry, ovflw
	switch {
	case a&0x8000 == 0 && b&0x8000 != 0: // pos minus neg
		m.N, m.Z = false, false
	case a&0x8000 != 0 && b&0x8000 == 0: // neg minus pos
		m.N, m.Z = true, false
	default:
		m.setNZ(result)
	}
}

// trapInto saves the user state on the system stack and vectors to the
// operating system's trap handler: instruction specifier, old SP, PC, X, A,
// and the packed flag byte, pushed in that order.
func (m *Machine) trapInto(slot int) {
	oldSP := m.SP
	m.SP = m.readWord(SystemSPVector)

	m.SP--
	m.writeByte(m.Spec, m.SP)
	m.SP -= 2
	m.writeWord(oldSP, m.SP)
	m.SP -= 2
	m.writeWord(m.PC, m.SP)
	m.SP -= 2
	m.writeWord(m.X, m.SP)
	m.SP -= 2
	m.writeWord(m.A, m.SP)
	m.SP--
	m.writeByte(m.packFlags(), m.SP)

	m.PC = m.readWord(TrapPCVector)
}

// chari reads one input character through the line buffer and stores it at
// the effective address.
func (m *Machine) chari() (err error) {
	ch, err := m.chariRead()
	if err != nil {
		return
	}

	mode := mode3(m.Spec)
	if mode == Immediate {
		return m.illegalAddr(mode)
	}
	m.writeByte(ch, m.operandAddress(mode))

	return
}

// charo writes the operand byte to the screen or the output file, mapping
// line feed and carriage return to the host newline.
func (m *Machine) charo() (err error) {
	data := m.loadOperandByte(mode3(m.Spec))

	sink := m.charoSink()
	if data == '\n' || data == '\r' {
		_, err = fmt.Fprintln(sink)
	} else {
		_, err = fmt.Fprintf(sink, "%c", data)
	}
	if err != nil {
		return
	}
	if m.Tracing && m.ScreenOutput() {
		fmt.Fprintln(sink)
	}

	return
}
