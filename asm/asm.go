package asm

import (
	"bufio"
	"io"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/StanWarford/pep8term/internal"
	"github.com/StanWarford/pep8term/trap"
)

// Assembler is the pass-one context: the code item table, the symbol,
// equate, undeclared-reference, and comment lists, and the address counter.
type Assembler struct {
	Traps   *trap.Table // user-defined unimplemented mnemonics
	Verbose bool        // log each source line as it is consumed

	items      []lineItem
	symbols    *symbolTable
	equates    []equateNode
	undeclared []symbolRef
	comments   []commentNode
	symOut     []symbolRef

	current   int // address counter
	burnCount int
	burnValue int // .BURN operand
	burnAddr  int // address stamped on the .BURN line
}

func (a *Assembler) reset() {
	a.items = a.items[:0]
	a.symbols = newSymbolTable()
	a.equates = nil
	a.undeclared = nil
	a.comments = nil
	a.symOut = nil
	a.current = 0
	a.burnCount = 0
	a.burnValue = 0
	a.burnAddr = 0
}

// Assemble runs pass one over the source and resolves symbols. On success it
// returns the program ready for listing and object emission; otherwise it
// returns the diagnostics in source-line order and no program.
func (a *Assembler) Assemble(input io.Reader) (prog *Program, errs []LineError) {
	a.reset()

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, lineLength), lineLength)

	term := false
	for !term && scanner.Scan() {
		line := scanner.Text()
		if a.Verbose {
			log.Printf("%v: %v", len(a.items)+1, line)
		}

		if strings.Contains(line, "$(") {
			expanded, err := expandExprs(line, a.equates)
			if err != nil {
				a.items = append(a.items, lineItem{kind: itemError, err: err})
				continue
			}
			line = expanded
		}

		term = a.processLine(newLineCursor(line))
	}

	// Pass one is over: any reference that never got a declaration turns
	// its line into an error.
	for _, ref := range a.undeclared {
		if !a.symbols.defined(ref.name) {
			a.items[ref.line] = lineItem{kind: itemError, err: ErrUndefinedSymbol}
		}
	}
	a.undeclared = nil

	if !term {
		a.items = append(a.items, lineItem{kind: itemError, err: ErrMissingEnd})
	}

	for n := range a.items {
		if a.items[n].isError() {
			errs = append(errs, LineError{Line: n + 1, Err: a.items[n].err})
		}
	}
	if len(errs) != 0 {
		return
	}

	if a.burnCount > 0 {
		// Shift everything so the last byte lands on the burn operand,
		// then put the equates back to their literal values.
		delta := a.burnValue - a.current + 1
		a.symbols.shift(delta)
		for _, equ := range a.equates {
			a.symbols.set(equ.name, equ.value)
		}
		a.burnAddr += delta
		for n := range a.items {
			a.items[n].burnAddressChange(delta)
		}
	}

	prog = &Program{
		items:    slices.Clone(a.items),
		symbols:  a.symbols,
		comments: a.comments,
		symOut:   a.symOut,
		traps:    a.Traps,
		burn:     a.burnCount > 0,
		burnAddr: a.burnAddr,
	}

	return
}

// Program is an assembled translation unit, ready for the two emission
// passes.
type Program struct {
	items    []lineItem
	symbols  *symbolTable
	comments []commentNode
	symOut   []symbolRef
	traps    *trap.Table
	burn     bool
	burnAddr int
}

// SymbolValue reports the resolved value of a declared symbol.
func (prog *Program) SymbolValue(name string) (value uint16, ok bool) {
	return prog.symbols.value(name)
}

// emitted reports whether an item's bytes belong in the object image. With
// a .BURN only the bytes at or after the relocated burn address are kept.
func (prog *Program) emitted(it *lineItem) bool {
	return !prog.burn || it.addr >= prog.burnAddr
}

// Bytes yields the object image bytes in address order.
func (prog *Program) Bytes() iter.Seq[byte] {
	var seqs []iter.Seq[byte]
	for n := range prog.items {
		it := &prog.items[n]
		if !prog.emitted(it) {
			continue
		}
		seqs = append(seqs, slices.Values(it.objectBytes(prog.symbols)))
	}

	return internal.IterSeqConcat(seqs...)
}
