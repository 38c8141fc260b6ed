package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scan runs the lexer over one line until the empty token.
func scan(line string) (toks []Token) {
	cur := newLineCursor(line)
	for {
		tok := getToken(cur)
		toks = append(toks, tok)
		if tok.Kind == TokEmpty || tok.Kind >= TokInvalid {
			return
		}
	}
}

func TestGetToken_Instruction(t *testing.T) {
	assert := assert.New(t)

	toks := scan("LDA 0x0005,d")
	assert.Equal(TokIdentifier, toks[0].Kind)
	assert.Equal("LDA", toks[0].Text)
	assert.Equal(TokHexConstant, toks[1].Kind)
	assert.Equal("0005", toks[1].Text)
	assert.Equal(TokAddrMode, toks[2].Kind)
	assert.Equal("d", toks[2].Text)
	assert.Equal(TokEmpty, toks[3].Kind)
}

func TestGetToken_HexPadding(t *testing.T) {
	assert := assert.New(t)

	toks := scan("0xaB")
	assert.Equal(TokHexConstant, toks[0].Kind)
	assert.Equal("00AB", toks[0].Text)
}

func TestGetToken_SymbolDeclaration(t *testing.T) {
	assert := assert.New(t)

	toks := scan("main: STOP")
	assert.Equal(TokSymbol, toks[0].Kind)
	assert.Equal("main", toks[0].Text)
	assert.Equal(TokIdentifier, toks[1].Kind)
	assert.Equal("STOP", toks[1].Text)
}

func TestGetToken_AddrModeSuffixes(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []string{"i", "d", "n", "s", "sf", "x", "sx", "sxf"} {
		toks := scan("," + mode)
		assert.Equal(TokAddrMode, toks[0].Kind, mode)
		assert.Equal(mode, toks[0].Text)
	}
}

func TestGetToken_SignedDecimals(t *testing.T) {
	assert := assert.New(t)

	toks := scan("-42")
	assert.Equal(TokDecConstant, toks[0].Kind)
	assert.Equal("-42", toks[0].Text)

	toks = scan("+17")
	assert.Equal(TokDecConstant, toks[0].Kind)
	assert.Equal("17", toks[0].Text)

	// A signed zero collapses to the constant 0.
	toks = scan("-0")
	assert.Equal(TokDecConstant, toks[0].Kind)
	assert.Equal("0", toks[0].Text)
}

func TestGetToken_CharConstants(t *testing.T) {
	assert := assert.New(t)

	toks := scan("'A'")
	assert.Equal(TokCharConstant, toks[0].Kind)
	assert.Equal([]byte{'A'}, toks[0].Bytes)

	toks = scan(`'\n'`)
	assert.Equal(TokCharConstant, toks[0].Kind)
	assert.Equal([]byte{'\n'}, toks[0].Bytes)

	toks = scan(`'\x4a'`)
	assert.Equal(TokCharConstant, toks[0].Kind)
	assert.Equal([]byte{0x4A}, toks[0].Bytes)

	toks = scan("''")
	assert.Equal(TokInvalidChar, toks[0].Kind)
}

func TestGetToken_Strings(t *testing.T) {
	assert := assert.New(t)

	toks := scan(`"hi\x00"`)
	assert.Equal(TokString, toks[0].Kind)
	assert.Equal([]byte{'h', 'i', 0}, toks[0].Bytes)

	toks = scan(`"unterminated`)
	assert.Equal(TokInvalidString, toks[0].Kind)

	toks = scan(`""`)
	assert.Equal(TokInvalidString, toks[0].Kind)
}

func TestGetToken_CommentTruncated(t *testing.T) {
	assert := assert.New(t)

	long := ";" + strings.Repeat("x", commentLength+20)
	toks := scan(long)
	assert.Equal(TokComment, toks[0].Kind)
	assert.Len(toks[0].Text, commentLength)
}

func TestGetToken_IdentifierCap(t *testing.T) {
	assert := assert.New(t)

	toks := scan("abcdefghij")
	assert.Equal(TokIdentifier, toks[0].Kind)
	assert.Equal("abcdefgh", toks[0].Text)
}

func TestGetToken_Invalid(t *testing.T) {
	assert := assert.New(t)

	toks := scan("@")
	assert.Equal(TokInvalid, toks[0].Kind)
}
