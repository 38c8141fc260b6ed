package asm

import (
	"fmt"
	"io"
	"strings"
)

const (
	objCodeLength = 6  // hex digits of object code per listing row
	operandSpaces = 14 // width of the operand column

	commentNonempty          = 35 // trailing comment cap, symbol column present
	commentNonemptyNoSymbols = 44 // trailing comment cap, no symbol column
)

var listingRule = strings.Repeat("-", 79)

// listingWriter carries the emission state of the listing pass: the pending
// comment and symbol-declaration queues are drained as their lines go by.
type listingWriter struct {
	w        io.Writer
	prog     *Program
	comments []commentNode
	symOut   []symbolRef
	err      error
}

func (lw *listingWriter) print(args ...any) {
	if lw.err == nil {
		_, lw.err = fmt.Fprint(lw.w, args...)
	}
}

func (lw *listingWriter) printf(format string, args ...any) {
	if lw.err == nil {
		_, lw.err = fmt.Fprintf(lw.w, format, args...)
	}
}

// WriteListing renders the human-readable listing: rule-line header, one
// fixed-width row per source line, and the symbol table block.
func (prog *Program) WriteListing(w io.Writer) error {
	lw := &listingWriter{w: w, prog: prog, comments: prog.comments, symOut: prog.symOut}

	lw.print(listingRule, "\n")
	lw.print("      Object\n")
	if prog.symbols.empty() {
		lw.print("Addr  code   Mnemon  Operand       Comment\n")
	} else {
		lw.print("Addr  code   Symbol   Mnemon  Operand       Comment\n")
	}
	lw.print(listingRule, "\n")

	for n := range prog.items {
		lw.row(n, &prog.items[n])
		lw.print("\n")
	}
	lw.print(listingRule, "\n")

	if !prog.symbols.empty() {
		lw.symbolTable()
	}

	return lw.err
}

// row renders the listing columns for one code item, its trailing comment,
// and any .BLOCK/.ASCII continuation rows.
func (lw *listingWriter) row(line int, it *lineItem) {
	prog := lw.prog

	if it.kind == itemEmpty {
		lw.print(strings.Repeat(" ", 13))
		lw.comment(line)
		return
	}

	// Address column. .EQUATE occupies no address, so its cell is blank.
	if it.kind == itemDot && it.dot == DotEquate {
		lw.print("      ")
	} else {
		lw.printf("%04X  ", it.addr&maxAddr)
	}

	// Object code column, blank for bytes below the burn address.
	var digits string
	if prog.emitted(it) {
		digits = fmt.Sprintf("%X", it.objectBytes(prog.symbols))
	}
	if len(digits) <= objCodeLength {
		lw.printf("%-7s", digits)
	} else {
		lw.print(digits[:objCodeLength], " ")
	}

	// Symbol column, present only when the program declares symbols.
	if !prog.symbols.empty() {
		if len(lw.symOut) > 0 && lw.symOut[0].line == line {
			lw.printf("%-9s", lw.symOut[0].name+":")
			lw.symOut = lw.symOut[1:]
		} else {
			lw.print(strings.Repeat(" ", 9))
		}
	}

	// Mnemonic and operand columns.
	switch it.kind {
	case itemEnd:
		lw.printf("%-8s", ".END")
		lw.print(strings.Repeat(" ", operandSpaces))
	case itemUnary:
		lw.printf("%-8s", it.mn.displayName(prog.traps))
		lw.print(strings.Repeat(" ", operandSpaces))
	case itemNonUnary:
		lw.printf("%-8s", it.mn.displayName(prog.traps))
		lw.printf("%-14s", operandText(it))
	case itemDot:
		lw.printf("%-8s", "."+it.dot.name())
		lw.printf("%-14s", operandText(it))
	}

	lw.comment(line)

	if prog.emitted(it) && len(digits) > objCodeLength {
		lw.continuation(digits)
	}
}

// operandText renders the operand cell: source spelling plus the
// addressing-mode suffix when one was written.
func operandText(it *lineItem) string {
	var text string
	switch it.opr.kind {
	case oprDec, oprSymbol:
		text = it.opr.text
	case oprHex:
		if it.kind == itemDot && it.dot == DotByte {
			text = "0x" + it.opr.text[2:]
		} else {
			text = "0x" + it.opr.text
		}
	case oprChar:
		text = "'" + it.opr.text + "'"
	case oprString:
		text = "\"" + it.opr.text + "\""
	}
	if it.mode != "" {
		text += "," + it.mode
	}
	return text
}

// comment drains the comment queued for this line. Trailing comments on
// non-empty lines are clipped to keep the page width.
func (lw *listingWriter) comment(line int) {
	if len(lw.comments) == 0 || lw.comments[0].line != line {
		return
	}
	node := lw.comments[0]
	lw.comments = lw.comments[1:]

	text := node.text
	if node.nonempty {
		limit := commentNonemptyNoSymbols - 1
		if !lw.prog.symbols.empty() {
			limit = commentNonempty - 1
		}
		if len(text) > limit {
			text = text[:limit]
		}
	}
	lw.print(";", text)
}

// continuation wraps object code past the first row onto rows of six hex
// digits under a blank address column.
func (lw *listingWriter) continuation(digits string) {
	lw.print("\n      ")
	column := 0
	for i := objCodeLength; i < len(digits); i += 2 {
		if column >= objCodeLength {
			lw.print(" \n      ")
			column = 0
		}
		lw.print(digits[i : i+2])
		column += 2
	}
	lw.print(strings.Repeat(" ", objCodeLength-column+1))
}

// symbolTable renders the two-column symbol block under the listing.
func (lw *listingWriter) symbolTable() {
	rule := strings.Repeat("-", 38)
	lw.print("\n\n")
	lw.print("Symbol table\n")
	lw.print(rule, "\n")
	lw.print("Symbol    Value        Symbol    Value\n")
	lw.print(rule, "\n")

	column := 0
	for name, value := range lw.prog.symbols.all() {
		lw.printf("%-9s %04X", name, value)
		if column == 0 {
			lw.print(strings.Repeat(" ", 9))
			column = 1
		} else {
			lw.print("\n")
			column = 0
		}
	}
	if column == 1 {
		lw.print("\n")
	}
	lw.print(rule, "\n")
}
