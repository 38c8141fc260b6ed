package trap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load(strings.NewReader(strings.Join([]string{
		"NOP0",
		"NOP1",
		"NOP2",
		"NOP3",
		"NOP I",
		"DECI D N S SF X SX SXF",
		"DECO I D N S SF X SX SXF",
		"STRO d n sf x",
	}, "\n")))
	assert.NoError(err)

	assert.Equal("NOP0", tab.Slot[0].Mnemon)
	assert.True(tab.Slot[0].Unary())
	assert.Equal(Immediate, tab.Slot[4].Modes)
	assert.Equal(AllModes&^Immediate, tab.Slot[5].Modes)
	assert.Equal(AllModes, tab.Slot[6].Modes)
	assert.Equal(Direct|Indirect|StackRelativeDeferred|Indexed, tab.Slot[7].Modes)
}

func TestLoad_UnarySlotsIgnoreModes(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load(strings.NewReader(strings.Join([]string{
		"ZAP I D N",
		"NOP1",
		"NOP2",
		"NOP3",
		"NOP I",
		"DECI D",
		"DECO I",
		"STRO D",
	}, "\n")))
	assert.NoError(err)

	assert.Equal("ZAP", tab.Slot[0].Mnemon)
	assert.Equal(ModeSet(0), tab.Slot[0].Modes)
	assert.True(tab.Slot[0].Unary())
}

func TestLoad_Short(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(strings.NewReader("NOP0\nNOP1\n"))
	assert.ErrorIs(err, ErrTrapShort)
}

func TestLoad_LongMnemonicClipped(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load(strings.NewReader(strings.Join([]string{
		"extralongname",
		"NOP1",
		"NOP2",
		"NOP3",
		"NOP I",
		"DECI D",
		"DECO I",
		"STRO D",
	}, "\n")))
	assert.NoError(err)
	assert.Equal("EXTRALON", tab.Slot[0].Mnemon)
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	tab := Default()
	slot, ok := tab.Lookup("DECI")
	assert.True(ok)
	assert.Equal(5, slot)

	_, ok = tab.Lookup("LDA")
	assert.False(ok)
}
