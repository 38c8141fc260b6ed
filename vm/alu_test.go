package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	result, carry, ovflw := add(1, 2)
	assert.Equal(uint16(3), result)
	assert.False(carry)
	assert.False(ovflw)

	// Signed overflow without carry.
	result, carry, ovflw = add(0x7FFF, 1)
	assert.Equal(uint16(0x8000), result)
	assert.False(carry)
	assert.True(ovflw)

	// Carry without signed overflow.
	result, carry, ovflw = add(0xFFFF, 1)
	assert.Equal(uint16(0), result)
	assert.True(carry)
	assert.False(ovflw)

	// Both negative wrapping positive.
	result, carry, ovflw = add(0x8000, 0x8000)
	assert.Equal(uint16(0), result)
	assert.True(carry)
	assert.True(ovflw)
}

func TestSub(t *testing.T) {
	assert := assert.New(t)

	result, carry, ovflw := sub(5, 3)
	assert.Equal(uint16(2), result)
	assert.False(carry)
	assert.False(ovflw)

	// Borrow sets C.
	result, carry, ovflw = sub(0, 1)
	assert.Equal(uint16(0xFFFF), result)
	assert.True(carry)
	assert.False(ovflw)

	// Pos minus neg landing negative overflows.
	result, carry, ovflw = sub(0x7FFF, 0xFFFF)
	assert.Equal(uint16(0x8000), result)
	assert.True(carry)
	assert.True(ovflw)
}

func TestFlagPacking(t *testing.T) {
	assert := assert.New(t)

	m := New(nil)
	m.N, m.Z, m.V, m.C = true, false, true, true
	assert.Equal(byte(0b1011), m.packFlags())

	m.unpackFlags(0b0100)
	assert.False(m.N)
	assert.True(m.Z)
	assert.False(m.V)
	assert.False(m.C)
}
