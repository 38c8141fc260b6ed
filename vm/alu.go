package vm

// add is the one-word adder: carry reports unsigned overflow out of bit 15,
// ovflw reports signed overflow (both operands share a sign, the result has
// the other one).
func add(a, b uint16) (result uint16, carry, ovflw bool) {
	sum := uint32(a) + uint32(b)
	result = uint16(sum)
	carry = sum > 0xFFFF
	ovflw = (a^b)&0x8000 == 0 && (a^result)&0x8000 != 0
	return
}

// sub is the one-word subtractor a − b: carry reports the borrow, ovflw the
// pos−neg→neg and neg−pos→pos cases.
func sub(a, b uint16) (result uint16, carry, ovflw bool) {
	result = a - b
	carry = a < b
	ovflw = (a^b)&0x8000 != 0 && (a^result)&0x8000 != 0
	return
}

// setNZ derives N from the sign bit and Z from the whole word.
func (m *Machine) setNZ(value uint16) {
	m.N = value&0x8000 != 0
	m.Z = value == 0
}

// packFlags packs the status bits as N<<3 | Z<<2 | V<<1 | C.
func (m *Machine) packFlags() (flags byte) {
	if m.N {
		flags |= 8
	}
	if m.Z {
		flags |= 4
	}
	if m.V {
		flags |= 2
	}
	if m.C {
		flags |= 1
	}
	return
}

// unpackFlags restores the status bits from their packed byte form.
func (m *Machine) unpackFlags(flags byte) {
	m.N = flags&8 != 0
	m.Z = flags&4 != 0
	m.V = flags&2 != 0
	m.C = flags&1 != 0
}
