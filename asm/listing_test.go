package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// listing renders the listing text for assembled source.
func listing(t *testing.T, lines ...string) string {
	prog, errs := assemble(lines...)
	if !assert.Empty(t, errs) {
		t.FailNow()
	}
	var out strings.Builder
	assert.NoError(t, prog.WriteListing(&out))
	return out.String()
}

func sp(n int) string {
	return strings.Repeat(" ", n)
}

func TestListing_UnaryRow(t *testing.T) {
	assert := assert.New(t)

	out := listing(t, "ASLA", ".END")

	assert.Contains(out, "Addr  code   Mnemon  Operand       Comment")
	assert.Contains(out, "0000  1C"+sp(5)+"ASLA")
	assert.Contains(out, "0001  "+sp(7)+".END")
	// Addresses climb monotonically through the listing.
	assert.Less(strings.Index(out, "0000  1C"), strings.Index(out, "0001  "))
}

func TestListing_SymbolColumn(t *testing.T) {
	assert := assert.New(t)

	out := listing(t,
		"main: LDA 0x0005,d ;grab the word",
		"STOP",
		".END",
	)

	assert.Contains(out, "Addr  code   Symbol   Mnemon  Operand       Comment")
	assert.Contains(out, "0000  C10005 main:"+sp(4)+"LDA"+sp(5)+"0x0005,d"+sp(6)+";grab the word")
	assert.Contains(out, "0003  00"+sp(5)+sp(9)+"STOP")
}

func TestListing_EquateRowHasBlankAddress(t *testing.T) {
	assert := assert.New(t)

	out := listing(t,
		"n: .EQUATE 5",
		"STOP",
		".END",
	)
	assert.Contains(out, sp(13)+"n:"+sp(7)+".EQUATE 5")
}

func TestListing_AsciiContinuation(t *testing.T) {
	assert := assert.New(t)

	out := listing(t,
		".ASCII \"hello world\"",
		".END",
	)
	assert.Contains(out, "0000  68656C ")
	assert.Contains(out, "\n      6C6F20")
}

func TestListing_SymbolTable(t *testing.T) {
	assert := assert.New(t)

	out := listing(t,
		"alpha: STOP",
		"beta: STOP",
		"gamma: STOP",
		".END",
	)

	assert.Contains(out, "Symbol table")
	assert.Contains(out, "Symbol    Value        Symbol    Value")
	assert.Contains(out, "alpha"+sp(5)+"0000"+sp(9)+"beta"+sp(6)+"0001")
	assert.Contains(out, "gamma"+sp(5)+"0002")
}

func TestListing_FullLineComment(t *testing.T) {
	assert := assert.New(t)

	out := listing(t,
		";standalone remark",
		"STOP",
		".END",
	)
	assert.Contains(out, sp(13)+";standalone remark")
}
