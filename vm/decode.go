package vm

// AddrMode is one of the eight ways to interpret the operand specifier.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	Immediate             AddrMode = iota // i
	Direct                                // d
	Indirect                              // n
	StackRelative                         // s
	StackRelativeDeferred                 // sf
	Indexed                               // x
	StackIndexed                          // sx
	StackIndexedDeferred                  // sxf
)

// RegSpec selects the register an instruction operates on.
type RegSpec int

const (
	RegA RegSpec = iota
	RegX
)

// Mnemonic is a decoded mnemonic family. Register-bearing families carry
// the register selector in the instruction specifier, not here.
type Mnemonic int

const (
	STOP Mnemonic = iota
	RETTR
	MOVSPA
	MOVFLGA
	BR
	BRLE
	BRLT
	BREQ
	BRNE
	BRGE
	BRGT
	BRV
	BRC
	CALL
	NOTr
	NEGr
	ASLr
	ASRr
	ROLr
	RORr
	UNIMP0
	UNIMP1
	UNIMP2
	UNIMP3
	UNIMP4
	UNIMP5
	UNIMP6
	UNIMP7
	CHARI
	CHARO
	RETn
	ADDSP
	SUBSP
	ADDr
	SUBr
	ANDr
	ORr
	CPr
	LDr
	LDBYTEr
	STr
	STBYTEr
)

// decodeTable maps instruction specifier ranges to mnemonic families. Each
// entry names the highest specifier belonging to the family.
var decodeTable = []struct {
	last byte
	mn   Mnemonic
}{
	{0, STOP}, {1, RETTR}, {2, MOVSPA}, {3, MOVFLGA},
	{5, BR}, {7, BRLE}, {9, BRLT}, {11, BREQ}, {13, BRNE},
	{15, BRGE}, {17, BRGT}, {19, BRV}, {21, BRC}, {23, CALL},
	{25, NOTr}, {27, NEGr}, {29, ASLr}, {31, ASRr}, {33, ROLr}, {35, RORr},
	{36, UNIMP0}, {37, UNIMP1}, {38, UNIMP2}, {39, UNIMP3},
	{47, UNIMP4}, {55, UNIMP5}, {63, UNIMP6}, {71, UNIMP7},
	{79, CHARI}, {87, CHARO}, {95, RETn}, {103, ADDSP}, {111, SUBSP},
	{127, ADDr}, {143, SUBr}, {159, ANDr}, {175, ORr}, {191, CPr},
	{207, LDr}, {223, LDBYTEr}, {239, STr}, {255, STBYTEr},
}

// decode maps an instruction specifier to its mnemonic family.
func decode(spec byte) Mnemonic {
	for _, entry := range decodeTable {
		if spec <= entry.last {
			return entry.mn
		}
	}
	return STBYTEr
}

// familyBase maps each family back to its lowest instruction specifier.
var familyBase = [...]byte{
	STOP: 0, RETTR: 1, MOVSPA: 2, MOVFLGA: 3,
	BR: 4, BRLE: 6, BRLT: 8, BREQ: 10, BRNE: 12,
	BRGE: 14, BRGT: 16, BRV: 18, BRC: 20, CALL: 22,
	NOTr: 24, NEGr: 26, ASLr: 28, ASRr: 30, ROLr: 32, RORr: 34,
	UNIMP0: 36, UNIMP1: 37, UNIMP2: 38, UNIMP3: 39,
	UNIMP4: 40, UNIMP5: 48, UNIMP6: 56, UNIMP7: 64,
	CHARI: 72, CHARO: 80, RETn: 88, ADDSP: 96, SUBSP: 104,
	ADDr: 112, SUBr: 128, ANDr: 144, ORr: 160, CPr: 176,
	LDr: 192, LDBYTEr: 208, STr: 224, STBYTEr: 240,
}

// encode rebuilds the instruction specifier from its decoded fields. It is
// the inverse of decode plus the field extractors.
func encode(mn Mnemonic, reg RegSpec, mode AddrMode, n int) byte {
	base := familyBase[mn]
	switch {
	case mn.unary():
		switch mn {
		case NOTr, NEGr, ASLr, ASRr, ROLr, RORr:
			return base + byte(reg)
		case RETn:
			return base + byte(n)
		}
		return base
	case mn.branch():
		if mode == Indexed {
			return base + 1
		}
		return base
	case mn == UNIMP4 || mn == UNIMP5 || mn == UNIMP6 || mn == UNIMP7,
		mn == CHARI, mn == CHARO, mn == ADDSP, mn == SUBSP:
		return base + byte(mode)
	}
	return base + byte(reg)<<3 + byte(mode)
}

// unary reports whether a family leaves the operand specifier unread. The
// first four unimplemented slots are always unary at the machine level.
func (mn Mnemonic) unary() bool {
	switch mn {
	case STOP, RETTR, MOVSPA, MOVFLGA, NOTr, NEGr, ASLr, ASRr, ROLr, RORr,
		UNIMP0, UNIMP1, UNIMP2, UNIMP3, RETn:
		return true
	}
	return false
}

// branch reports whether a family carries its addressing mode in the low
// bit of the specifier.
func (mn Mnemonic) branch() bool {
	return mn >= BR && mn <= CALL
}

// branchMode extracts the one-bit addressing mode of a branch specifier.
func branchMode(spec byte) AddrMode {
	if spec&1 != 0 {
		return Indexed
	}
	return Immediate
}

// mode3 extracts the three-bit addressing-mode field.
func mode3(spec byte) AddrMode {
	return AddrMode(spec & 7)
}

// regBit4 extracts the register selector of the register-bearing non-unary
// families.
func regBit4(spec byte) RegSpec {
	return RegSpec((spec >> 3) & 1)
}

// regLastBit extracts the register selector of the unary register families.
func regLastBit(spec byte) RegSpec {
	return RegSpec(spec & 1)
}

// nValue extracts the n of RETn.
func nValue(spec byte) int {
	return int(spec & 7)
}
