package asm

import (
	"iter"
	"maps"
	"slices"
)

// symbolEntry is one declared symbol: its 16-bit value and the source line
// of the declaration.
type symbolEntry struct {
	value int
	line  int
}

// symbolTable maps identifiers to their values, iterated in identifier
// order for the listing.
type symbolTable struct {
	entries map[string]*symbolEntry
}

func newSymbolTable() *symbolTable {
	return &symbolTable{entries: map[string]*symbolEntry{}}
}

func (tab *symbolTable) empty() bool {
	return len(tab.entries) == 0
}

// install declares a symbol. It reports false when the name was already
// declared.
func (tab *symbolTable) install(name string, value int, line int) bool {
	if _, dup := tab.entries[name]; dup {
		return false
	}
	tab.entries[name] = &symbolEntry{value: value, line: line}
	return true
}

func (tab *symbolTable) defined(name string) bool {
	_, ok := tab.entries[name]
	return ok
}

func (tab *symbolTable) value(name string) (value uint16, ok bool) {
	entry, ok := tab.entries[name]
	if !ok {
		return
	}
	return uint16(entry.value), true
}

// set rewrites the value of a declared symbol (.EQUATE, or restoring an
// equate after a .BURN shift).
func (tab *symbolTable) set(name string, value int) {
	if entry, ok := tab.entries[name]; ok {
		entry.value = value
	}
}

// shift adds a relocation delta to every symbol value, wrapping at the
// address space.
func (tab *symbolTable) shift(delta int) {
	for _, entry := range tab.entries {
		entry.value = (entry.value + delta) & maxAddr
	}
}

// all yields symbols in identifier order.
func (tab *symbolTable) all() iter.Seq2[string, uint16] {
	return func(yield func(string, uint16) bool) {
		for _, name := range slices.Sorted(maps.Keys(tab.entries)) {
			if !yield(name, uint16(tab.entries[name].value)) {
				return
			}
		}
	}
}

// equateNode remembers an .EQUATE binding so its literal value can be
// restored after .BURN relocation shifts the table.
type equateNode struct {
	name  string
	value int
}

// symbolRef records a symbol use or declaration against its source line.
type symbolRef struct {
	name string
	line int
}

// commentNode records a comment in source order. Trailing comments on
// non-empty lines render narrower than full-line comments.
type commentNode struct {
	line     int
	nonempty bool
	text     string
}
