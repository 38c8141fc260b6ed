package vm

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StanWarford/pep8term/trap"
)

func TestDump(t *testing.T) {
	assert := assert.New(t)

	m := testMachine()
	copy(m.Mem[0x20:], []byte("Hi!\x01"))

	var out bytes.Buffer
	m.Dump(&out, 0x0025, 0x0030)

	lines := strings.Split(out.String(), "\n")
	assert.Equal("DUMP    0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F       ASCII", lines[0])
	assert.Equal("", lines[1])
	// The range opens on the containing sixteen-byte boundary.
	assert.Equal("0020:  48 69 21 01 00 00 00 00 00 00 00 00 00 00 00 00  Hi!.............", lines[2])
	assert.True(strings.HasPrefix(lines[3], "0030:  "))
}

func TestTracer_ScrollFormat(t *testing.T) {
	assert := assert.New(t)

	// LDA 0x0005,d / STOP with a page deep enough to avoid the prompt.
	m := testMachine(0xC1, 0x00, 0x05, 0x00)
	m.Mem[5] = 0x12
	m.Mem[6] = 0x34

	var out bytes.Buffer
	tracer := &Tracer{
		Machine:   m,
		Mode:      TraceProgram,
		Out:       &out,
		Prompt:    bufio.NewReader(strings.NewReader("")),
		PageLines: 1000,
	}
	assert.NoError(tracer.Run())

	text := out.String()
	assert.Contains(text, "User Program Trace:")
	assert.Contains(text, "Addr  Mnemon   Spec       Reg     Accum   Reg   Pointer  N Z V C  Operand")
	assert.Contains(text, "0000  LDA      0005,d    C10005   1234   0000    0000    0 0 0 0   1234")
	assert.Contains(text, "0003  STOP")
}

func TestTracer_ProgramModeSkipsROM(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())
	_, err := m.InstallROM(strings.NewReader(romWithVectors()))
	assert.NoError(err)

	var out bytes.Buffer
	tracer := &Tracer{
		Machine:   m,
		Mode:      TraceProgram,
		Out:       &out,
		Prompt:    bufio.NewReader(strings.NewReader("")),
		PageLines: 1000,
	}
	assert.NoError(m.LoadObjectTraced(strings.NewReader("zz\n"), tracer))

	// The loader STOP lives in ROM, so program tracing shows nothing.
	assert.NotContains(out.String(), "FFF0  STOP")
}

func TestMnemonString(t *testing.T) {
	assert := assert.New(t)

	m := New(trap.Default())

	m.Spec = 0xC9 // LDX
	assert.Equal("LDX", m.mnemonString())

	m.Spec = 0x5B // RET3
	assert.Equal("RET3", m.mnemonString())

	m.Spec = 0x30 // DECI slot
	assert.Equal("DECI", m.mnemonString())

	m.Spec = 0x19 // NOTX
	assert.Equal("NOTX", m.mnemonString())
}
