package asm

import (
	"strings"

	"github.com/StanWarford/pep8term/trap"
)

// Mnemonic identifies one assembler mnemonic, with the register variants
// spelled out the way the source language spells them.
type Mnemonic int

const (
	MnSTOP Mnemonic = iota
	MnRETTR
	MnMOVSPA
	MnMOVFLGA
	MnBR
	MnBRLE
	MnBRLT
	MnBREQ
	MnBRNE
	MnBRGE
	MnBRGT
	MnBRV
	MnBRC
	MnCALL
	MnNOTA
	MnNOTX
	MnNEGA
	MnNEGX
	MnASLA
	MnASLX
	MnASRA
	MnASRX
	MnROLA
	MnROLX
	MnRORA
	MnRORX
	MnCHARI
	MnCHARO
	MnRET0
	MnRET1
	MnRET2
	MnRET3
	MnRET4
	MnRET5
	MnRET6
	MnRET7
	MnADDSP
	MnSUBSP
	MnADDA
	MnADDX
	MnSUBA
	MnSUBX
	MnANDA
	MnANDX
	MnORA
	MnORX
	MnCPA
	MnCPX
	MnLDA
	MnLDX
	MnLDBYTEA
	MnLDBYTEX
	MnSTA
	MnSTX
	MnSTBYTEA
	MnSTBYTEX
	MnUNIMP0
	MnUNIMP1
	MnUNIMP2
	MnUNIMP3
	MnUNIMP4
	MnUNIMP5
	MnUNIMP6
	MnUNIMP7
)

// opKind groups mnemonics by their addressing-mode capability.
type opKind int

const (
	opUnary   opKind = iota // no operand
	opBranch                // immediate or indexed, mode optional
	opGeneral               // all eight modes
	opInput                 // all modes except immediate
	opUnimp                 // modes from the trap configuration
)

type mnemonInfo struct {
	name   string
	opcode byte
	kind   opKind
}

var mnemonTable = [...]mnemonInfo{
	MnSTOP:    {"STOP", 0, opUnary},
	MnRETTR:   {"RETTR", 1, opUnary},
	MnMOVSPA:  {"MOVSPA", 2, opUnary},
	MnMOVFLGA: {"MOVFLGA", 3, opUnary},
	MnBR:      {"BR", 4, opBranch},
	MnBRLE:    {"BRLE", 6, opBranch},
	MnBRLT:    {"BRLT", 8, opBranch},
	MnBREQ:    {"BREQ", 10, opBranch},
	MnBRNE:    {"BRNE", 12, opBranch},
	MnBRGE:    {"BRGE", 14, opBranch},
	MnBRGT:    {"BRGT", 16, opBranch},
	MnBRV:     {"BRV", 18, opBranch},
	MnBRC:     {"BRC", 20, opBranch},
	MnCALL:    {"CALL", 22, opBranch},
	MnNOTA:    {"NOTA", 24, opUnary},
	MnNOTX:    {"NOTX", 25, opUnary},
	MnNEGA:    {"NEGA", 26, opUnary},
	MnNEGX:    {"NEGX", 27, opUnary},
	MnASLA:    {"ASLA", 28, opUnary},
	MnASLX:    {"ASLX", 29, opUnary},
	MnASRA:    {"ASRA", 30, opUnary},
	MnASRX:    {"ASRX", 31, opUnary},
	MnROLA:    {"ROLA", 32, opUnary},
	MnROLX:    {"ROLX", 33, opUnary},
	MnRORA:    {"RORA", 34, opUnary},
	MnRORX:    {"RORX", 35, opUnary},
	MnCHARI:   {"CHARI", 72, opInput},
	MnCHARO:   {"CHARO", 80, opGeneral},
	MnRET0:    {"RET0", 88, opUnary},
	MnRET1:    {"RET1", 89, opUnary},
	MnRET2:    {"RET2", 90, opUnary},
	MnRET3:    {"RET3", 91, opUnary},
	MnRET4:    {"RET4", 92, opUnary},
	MnRET5:    {"RET5", 93, opUnary},
	MnRET6:    {"RET6", 94, opUnary},
	MnRET7:    {"RET7", 95, opUnary},
	MnADDSP:   {"ADDSP", 96, opGeneral},
	MnSUBSP:   {"SUBSP", 104, opGeneral},
	MnADDA:    {"ADDA", 112, opGeneral},
	MnADDX:    {"ADDX", 120, opGeneral},
	MnSUBA:    {"SUBA", 128, opGeneral},
	MnSUBX:    {"SUBX", 136, opGeneral},
	MnANDA:    {"ANDA", 144, opGeneral},
	MnANDX:    {"ANDX", 152, opGeneral},
	MnORA:     {"ORA", 160, opGeneral},
	MnORX:     {"ORX", 168, opGeneral},
	MnCPA:     {"CPA", 176, opGeneral},
	MnCPX:     {"CPX", 184, opGeneral},
	MnLDA:     {"LDA", 192, opGeneral},
	MnLDX:     {"LDX", 200, opGeneral},
	MnLDBYTEA: {"LDBYTEA", 208, opGeneral},
	MnLDBYTEX: {"LDBYTEX", 216, opGeneral},
	MnSTA:     {"STA", 224, opInput},
	MnSTX:     {"STX", 232, opInput},
	MnSTBYTEA: {"STBYTEA", 240, opInput},
	MnSTBYTEX: {"STBYTEX", 248, opInput},
	MnUNIMP0:  {"", 36, opUnimp},
	MnUNIMP1:  {"", 37, opUnimp},
	MnUNIMP2:  {"", 38, opUnimp},
	MnUNIMP3:  {"", 39, opUnimp},
	MnUNIMP4:  {"", 40, opUnimp},
	MnUNIMP5:  {"", 48, opUnimp},
	MnUNIMP6:  {"", 56, opUnimp},
	MnUNIMP7:  {"", 64, opUnimp},
}

var mnemonByName = map[string]Mnemonic{}

func init() {
	for mn, info := range mnemonTable {
		if info.name != "" {
			mnemonByName[info.name] = Mnemonic(mn)
		}
	}
}

// lookupMnemon resolves an identifier, uppercased, against the fixed
// mnemonic table and then the user-defined trap mnemonics.
func lookupMnemon(id string, traps *trap.Table) (mn Mnemonic, ok bool) {
	name := strings.ToUpper(id)
	mn, ok = mnemonByName[name]
	if ok {
		return
	}
	if traps != nil {
		var slot int
		slot, ok = traps.Lookup(name)
		if ok {
			mn = MnUNIMP0 + Mnemonic(slot)
		}
	}
	return
}

// opcode returns the base operation code for a mnemonic.
func (mn Mnemonic) opcode() byte {
	return mnemonTable[mn].opcode
}

// opKind returns the addressing capability group for a mnemonic.
func (mn Mnemonic) opKind() opKind {
	return mnemonTable[mn].kind
}

// isUnary reports whether an instruction occupies a single byte. For the
// unimplemented slots the first four are forced unary and the rest are unary
// exactly when their trap mode set is empty.
func (mn Mnemonic) isUnary(traps *trap.Table) bool {
	switch mnemonTable[mn].kind {
	case opUnary:
		return true
	case opUnimp:
		slot := int(mn - MnUNIMP0)
		return slot < trap.UnarySlots || traps.Slot[slot].Modes == 0
	}
	return false
}

// noModeOK reports whether the addressing mode may be omitted, which is the
// case only for the branch family (defaulting to immediate).
func (mn Mnemonic) noModeOK() bool {
	return mnemonTable[mn].kind == opBranch
}

// displayName returns the mnemonic spelling, consulting the trap table for the
// unimplemented slots.
func (mn Mnemonic) displayName(traps *trap.Table) string {
	if mnemonTable[mn].kind == opUnimp {
		return traps.Slot[mn-MnUNIMP0].Mnemon
	}
	return mnemonTable[mn].name
}

// validMode reports whether the addressing-mode suffix is permitted.
func (mn Mnemonic) validMode(mode string, traps *trap.Table) bool {
	switch mnemonTable[mn].kind {
	case opUnary:
		return false
	case opBranch:
		return mode == "i" || mode == "x"
	case opGeneral:
		return true
	case opInput:
		return mode != "i"
	case opUnimp:
		set := traps.Slot[mn-MnUNIMP0].Modes
		switch {
		case set == trap.AllModes:
			return true
		case set == 0:
			return false
		}
		return set&modeBit(mode) != 0
	}
	return false
}

// modeBit maps an addressing-mode suffix to its bitset member.
func modeBit(mode string) trap.ModeSet {
	switch mode {
	case "i":
		return trap.Immediate
	case "d":
		return trap.Direct
	case "n":
		return trap.Indirect
	case "s":
		return trap.StackRelative
	case "sf":
		return trap.StackRelativeDeferred
	case "x":
		return trap.Indexed
	case "sx":
		return trap.StackIndexed
	case "sxf":
		return trap.StackIndexedDeferred
	}
	return 0
}

// modeOffset converts an addressing-mode suffix to the value added to the
// base opcode. Branches carry the mode in their low bit, so for them indexed
// adds 1 rather than 5; the other suffixes map to the same offsets whether or
// not branch is set (validMode admits only i and x for branches).
func modeOffset(mode string, branch bool) byte {
	switch mode {
	case "", "i":
		return 0
	case "d":
		return 1
	case "n":
		return 2
	case "s":
		return 3
	case "sf":
		return 4
	case "x":
		if branch {
			return 1
		}
		return 5
	case "sx":
		return 6
	case "sxf":
		return 7
	}
	return 0
}
