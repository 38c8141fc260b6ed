package vm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StanWarford/pep8term/trap"
)

func TestInstallROM(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	ramFree, err := m.InstallROM(strings.NewReader("12 34 AB zz\n"))
	assert.NoError(err)

	assert.Equal(MemorySize-3, m.RomStart)
	assert.Equal(MemorySize-3, ramFree)
	assert.Equal(byte(0x12), m.Mem[MemorySize-3])
	assert.Equal(byte(0x34), m.Mem[MemorySize-2])
	assert.Equal(byte(0xAB), m.Mem[MemorySize-1])

	// The image is write-protected once installed.
	m.writeByte(0xFF, MemorySize-2)
	assert.Equal(byte(0x34), m.Mem[MemorySize-2])
}

func TestInstallROM_MultipleLines(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	image := strings.Repeat("00 ", 16) + "\n01 02\nzz\n"
	_, err := m.InstallROM(strings.NewReader(image))
	assert.NoError(err)
	assert.Equal(MemorySize-18, m.RomStart)
	assert.Equal(byte(0x01), m.Mem[MemorySize-2])
	assert.Equal(byte(0x02), m.Mem[MemorySize-1])
}

func TestInstallROM_BadByte(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	_, err := m.InstallROM(strings.NewReader("12 G4 zz\n"))
	assert.ErrorIs(err, ErrBadRomByte)
}

// romWithVectors builds a sixteen-byte image: a STOP for the loader routine
// at its base, filler, and the four initial-value vectors at the top.
func romWithVectors() string {
	// Installed at 0xFFF0: the loader vector points straight at the STOP.
	return "00 00 00 00 00 00 00 00 " + // 0xFFF0..0xFFF7
		"FB CF " + // user SP
		"FB 8F " + // system SP
		"FF F0 " + // loader PC
		"00 50 " + // trap PC
		"zz\n"
}

func TestLoadObject_PrimesFromVectors(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	_, err := m.InstallROM(strings.NewReader(romWithVectors()))
	assert.NoError(err)
	assert.Equal(0xFFF0, m.RomStart)

	err = m.LoadObject(strings.NewReader("C1 00 05 zz\n"))
	assert.NoError(err)

	// The loader ran with the system stack pointer and the loader PC.
	assert.Equal(uint16(0xFB8F), m.SP)
	assert.Equal(uint16(0xFFF1), m.PC)
}

func TestExecute_RequiresLoad(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	err := m.Execute()
	assert.ErrorIs(err, ErrNotInitialized)
}

func TestExecute_UsesUserStackVector(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	_, err := m.InstallROM(strings.NewReader(romWithVectors()))
	assert.NoError(err)

	assert.NoError(m.LoadObject(strings.NewReader("zz\n")))

	// A STOP at address zero ends the run with SP from the user vector.
	assert.NoError(m.Execute())
	assert.Equal(uint16(0xFBCF), m.SP)
	assert.Equal(uint16(1), m.PC)
}
