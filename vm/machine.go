package vm

import (
	"bufio"
	"io"

	"github.com/StanWarford/pep8term/trap"
)

// Machine is the Pep/8 computer: flat memory partitioned by the ROM
// boundary, the CPU registers and flags, the instruction register, and the
// CHARI/CHARO channel state.
type Machine struct {
	Mem      [MemorySize]byte
	RomStart int // writes at or above this address are ignored

	A, X, SP, PC uint16
	N, Z, V, C   bool

	Spec  byte   // instruction specifier of the current instruction
	Oprnd uint16 // operand specifier of the current instruction

	Traps *trap.Table

	// CHARO sink: Screen unless an output file is set.
	Screen     io.Writer
	OutputFile io.Writer

	// CHARI source: Keyboard unless loading or an input file is set.
	keyboard  *bufio.Reader
	inputFile *bufio.Reader
	loadFile  *bufio.Reader

	buffer lineBuffer

	Loading      bool // object file bytes flow through CHARI
	machineReset bool // a load happened since startup

	// Tracing gates the extra newline CHARO emits to the screen.
	Tracing bool
}

// New returns a machine with no operating system installed and all of
// memory writable.
func New(traps *trap.Table) (m *Machine) {
	m = &Machine{
		Traps:    traps,
		RomStart: MemorySize,
	}
	m.buffer.invalidate()

	return
}

// SetKeyboard directs interactive CHARI input. An existing bufio.Reader is
// shared rather than wrapped again, so the interactive prompt and CHARI can
// drain the same stream.
func (m *Machine) SetKeyboard(r io.Reader) {
	if br, ok := r.(*bufio.Reader); ok {
		m.keyboard = br
		return
	}
	m.keyboard = bufio.NewReader(r)
}

// SetInputFile redirects CHARI to a file; nil restores the keyboard.
func (m *Machine) SetInputFile(r io.Reader) {
	if r == nil {
		m.inputFile = nil
		return
	}
	m.inputFile = bufio.NewReader(r)
}

// KeyboardInput reports whether CHARI currently reads the keyboard.
func (m *Machine) KeyboardInput() bool {
	return m.inputFile == nil
}

// chariSource selects where CHARI refills its line buffer from.
func (m *Machine) chariSource() *bufio.Reader {
	switch {
	case m.Loading:
		return m.loadFile
	case m.inputFile != nil:
		return m.inputFile
	}
	return m.keyboard
}

// charoSink selects where CHARO writes.
func (m *Machine) charoSink() io.Writer {
	if m.OutputFile != nil {
		return m.OutputFile
	}
	return m.Screen
}

// ScreenOutput reports whether CHARO currently writes to the screen.
func (m *Machine) ScreenOutput() bool {
	return m.OutputFile == nil
}

// Step runs one fetch-decode-execute cycle.
func (m *Machine) Step() (halt bool, err error) {
	last := m.PC
	m.fetch()
	halt, err = m.execute()
	if err != nil {
		err = ErrRuntime{Addr: last, Err: err}
	}
	return
}

// Run drives the von Neumann cycle until STOP or a runtime error.
func (m *Machine) Run() (err error) {
	for {
		halt, err := m.Step()
		if err != nil || halt {
			return err
		}
	}
}

// beginLoad primes the loader routine: SP from the system stack vector, PC
// from the loader vector, and the object stream behind CHARI.
func (m *Machine) beginLoad(object io.Reader) {
	m.loadFile = bufio.NewReader(object)
	m.buffer.invalidate()
	m.Loading = true
	m.machineReset = true
	m.SP = m.readWord(SystemSPVector)
	m.PC = m.readWord(LoaderPCVector)
}

func (m *Machine) endLoad() {
	m.Loading = false
	m.loadFile = nil
}

// LoadObject runs the operating system's loader routine over an object
// stream, consuming it byte by byte through CHARI until the routine
// executes STOP on the zz sentinel.
func (m *Machine) LoadObject(object io.Reader) (err error) {
	m.beginLoad(object)
	err = m.Run()
	m.endLoad()

	return
}

// LoadObjectTraced is LoadObject driven through a tracer.
func (m *Machine) LoadObjectTraced(object io.Reader, t *Tracer) (err error) {
	m.beginLoad(object)
	err = t.Run()
	m.endLoad()

	return
}

// BeginExecute primes the registers for the execute command: user stack
// pointer from its vector, PC at the bottom of memory. It refuses to run
// before the first load has initialized the machine state.
func (m *Machine) BeginExecute() (err error) {
	if !m.machineReset && !m.Loading {
		return ErrNotInitialized
	}
	m.buffer.invalidate()
	m.SP = m.readWord(UserSPVector)
	m.PC = 0

	return
}

// Execute runs a loaded program from address zero to completion.
func (m *Machine) Execute() (err error) {
	err = m.BeginExecute()
	if err != nil {
		return
	}

	return m.Run()
}

// fetch reads the instruction specifier at PC and, for non-unary families,
// the two-byte operand specifier after it. PC wraps modulo the address
// space without touching the flags.
func (m *Machine) fetch() {
	m.Spec = m.readByte(m.PC)
	m.PC++
	if !decode(m.Spec).unary() {
		m.Oprnd = m.readWord(m.PC)
		m.PC += 2
	}
}
