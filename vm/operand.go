package vm

// operandAddress resolves the effective address for every mode except
// immediate, which has no address. Address arithmetic wraps modulo the
// address space without touching the flags.
func (m *Machine) operandAddress(mode AddrMode) (addr uint16) {
	switch mode {
	case Immediate, Direct:
		addr = m.Oprnd
	case Indirect:
		addr = m.readWord(m.Oprnd)
	case StackRelative:
		addr = m.SP + m.Oprnd
	case StackRelativeDeferred:
		addr = m.readWord(m.SP + m.Oprnd)
	case Indexed:
		addr = m.X + m.Oprnd
	case StackIndexed:
		addr = m.SP + m.Oprnd + m.X
	case StackIndexedDeferred:
		addr = m.readWord(m.SP+m.Oprnd) + m.X
	}
	return
}

// loadOperand produces the 16-bit operand value: the operand specifier
// itself under immediate addressing, the addressed memory word otherwise.
func (m *Machine) loadOperand(mode AddrMode) uint16 {
	if mode == Immediate {
		return m.Oprnd
	}
	return m.readWord(m.operandAddress(mode))
}

// loadOperandByte produces the operand for the byte-granularity opcodes:
// only the low byte of the effective word is used.
func (m *Machine) loadOperandByte(mode AddrMode) byte {
	if mode == Immediate {
		return byte(m.Oprnd)
	}
	return m.readByte(m.operandAddress(mode))
}
