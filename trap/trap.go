// Package trap reads the `trap` configuration file that names the eight
// unimplemented opcode slots and the addressing modes each one accepts.
// The assembler uses the table to recognize the mnemonics; the simulator
// uses it to print them in traces.
package trap

import (
	"bufio"
	"io"
	"strings"
)

const (
	Slots      = 8 // Number of unimplemented opcode slots.
	UnarySlots = 4 // Slots 0-3 are unary regardless of the file contents.

	MnemonLength = 8 // Maximum mnemonic length.
)

// ModeSet is a bitset of permitted addressing modes.
type ModeSet int

const (
	Immediate             = ModeSet(1 << 0) // i
	Direct                = ModeSet(1 << 1) // d
	Indirect              = ModeSet(1 << 2) // n
	StackRelative         = ModeSet(1 << 3) // s
	StackRelativeDeferred = ModeSet(1 << 4) // sf
	Indexed               = ModeSet(1 << 5) // x
	StackIndexed          = ModeSet(1 << 6) // sx
	StackIndexedDeferred  = ModeSet(1 << 7) // sxf

	AllModes = ModeSet(255)
)

// modeTokens maps the mode letters accepted in the trap file.
var modeTokens = map[string]ModeSet{
	"I":   Immediate,
	"D":   Direct,
	"N":   Indirect,
	"S":   StackRelative,
	"SF":  StackRelativeDeferred,
	"X":   Indexed,
	"SX":  StackIndexed,
	"SXF": StackIndexedDeferred,
}

// Slot is one user-defined unimplemented mnemonic.
type Slot struct {
	Mnemon string
	Modes  ModeSet
}

// Unary reports whether an instruction in this slot occupies a single byte.
func (s Slot) Unary() bool {
	return s.Modes == 0
}

// Table holds the eight unimplemented mnemonic slots in opcode order.
type Table struct {
	Slot [Slots]Slot
}

// Default returns the table the stock Pep/8 operating system assumes.
func Default() *Table {
	return &Table{Slot: [Slots]Slot{
		{Mnemon: "NOP0"},
		{Mnemon: "NOP1"},
		{Mnemon: "NOP2"},
		{Mnemon: "NOP3"},
		{Mnemon: "NOP", Modes: Immediate},
		{Mnemon: "DECI", Modes: AllModes &^ Immediate},
		{Mnemon: "DECO", Modes: AllModes},
		{Mnemon: "STRO", Modes: Direct | Indirect | StackRelativeDeferred | Indexed},
	}}
}

// Load parses a trap configuration stream: eight lines, each a mnemonic
// optionally followed by mode letter tokens. Mnemonics are uppercased and
// clipped to eight characters. Mode tokens on the first four lines are
// ignored; those slots stay unary.
func Load(input io.Reader) (tab *Table, err error) {
	tab = &Table{}

	scanner := bufio.NewScanner(input)
	var line int
	for line = 0; line < Slots && scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name := strings.ToUpper(fields[0])
		if len(name) > MnemonLength {
			name = name[:MnemonLength]
		}
		tab.Slot[line].Mnemon = name

		if line < UnarySlots {
			continue
		}
		for _, tok := range fields[1:] {
			mode, ok := modeTokens[strings.ToUpper(tok)]
			if !ok {
				continue // the original reader skips anything it cannot read
			}
			tab.Slot[line].Modes |= mode
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if line < Slots {
		err = ErrTrapShort
		return
	}

	return
}

// Lookup finds the slot index for a mnemonic name, which must already be
// uppercased.
func (tab *Table) Lookup(name string) (index int, ok bool) {
	for n, slot := range tab.Slot {
		if slot.Mnemon == name && slot.Mnemon != "" {
			return n, true
		}
	}

	return 0, false
}
