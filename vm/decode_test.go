package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_Families(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		spec byte
		mn   Mnemonic
	}{
		{0x00, STOP},
		{0x01, RETTR},
		{0x02, MOVSPA},
		{0x03, MOVFLGA},
		{0x04, BR},
		{0x05, BR},
		{0x16, CALL},
		{0x1C, ASLr},
		{0x24, UNIMP0},
		{0x27, UNIMP3},
		{0x28, UNIMP4},
		{0x30, UNIMP5},
		{0x40, UNIMP7},
		{0x49, CHARI},
		{0x50, CHARO},
		{0x58, RETn},
		{0x5F, RETn},
		{0x68, SUBSP},
		{0x70, ADDr},
		{0xC1, LDr},
		{0xE1, STr},
		{0xF8, STBYTEr},
	}
	for _, test := range cases {
		assert.Equal(test.mn, decode(test.spec), "spec %02X", test.spec)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	// Every specifier reassembles from its decoded fields.
	for spec := 0; spec <= 255; spec++ {
		b := byte(spec)
		mn := decode(b)

		var reg RegSpec
		var mode AddrMode
		var n int
		switch {
		case mn == RETn:
			n = nValue(b)
		case mn >= NOTr && mn <= RORr:
			reg = regLastBit(b)
		case mn.branch():
			mode = branchMode(b)
		case mn.unary():
			// fixed small opcodes carry no fields
		case mn >= ADDr:
			reg = regBit4(b)
			mode = mode3(b)
		default:
			mode = mode3(b)
		}

		assert.Equal(b, encode(mn, reg, mode, n), "spec %02X", spec)
	}
}

func TestAddrModeStrings(t *testing.T) {
	assert := assert.New(t)

	suffixes := []string{"i", "d", "n", "s", "sf", "x", "sx", "sxf"}
	for mode, suffix := range suffixes {
		assert.Equal(suffix, AddrMode(mode).String())
	}
}
