package asm

import (
	"strings"
)

// parseState enumerates the states of the per-line parser state machine.
type parseState int

const (
	psStart parseState = iota
	psComment
	psSymbolDec
	psInstruction
	psOprndDec
	psOprndHex
	psOprndChar
	psOprndString
	psOprndSym
	psDotCommand
	psAscii
	psEquate
	psClose
	psFinish
)

// invalidTokenErr maps the lexer's invalid token kinds to diagnostics.
func invalidTokenErr(kind TokenKind) (err error, ok bool) {
	switch kind {
	case TokInvalid:
		return ErrInvalidSyntax, true
	case TokInvalidAddr:
		return ErrInvalidAddrMode, true
	case TokInvalidChar:
		return ErrInvalidChar, true
	case TokInvalidComment:
		return ErrInvalidSyntax, true
	case TokInvalidDec:
		return ErrInvalidDec, true
	case TokInvalidDotCommand:
		return ErrInvalidDotCommand, true
	case TokInvalidHex:
		return ErrInvalidHex, true
	case TokInvalidString:
		return ErrInvalidString, true
	}
	return nil, false
}

// processLine drives the parser state machine over the tokens of one source
// line, appending exactly one code item. It reports whether parsing of the
// whole source should stop (.END seen, or a table filled up).
func (a *Assembler) processLine(cur *lineCursor) (term bool) {
	line := len(a.items)
	it := lineItem{kind: itemEmpty, addr: a.current}

	fail := func(err error) {
		it = lineItem{kind: itemError, err: err}
	}
	emit := func(item lineItem) {
		it = item
		a.current += it.size()
	}

	var symName string
	var mn Mnemonic
	var dot DotCommand
	var opr operand

	state := psStart
	for state != psFinish && !it.isError() {
		tok := getToken(cur)
		switch state {
		case psStart, psSymbolDec:
			switch tok.Kind {
			case TokIdentifier:
				var ok bool
				mn, ok = lookupMnemon(tok.Text, a.Traps)
				if !ok {
					fail(ErrInvalidMnemon)
					break
				}
				if mn.isUnary(a.Traps) {
					emit(lineItem{kind: itemUnary, addr: a.current, mn: mn})
					state = psClose
				} else {
					state = psInstruction
				}
			case TokDotCommand:
				var ok bool
				dot, ok = dotByName[strings.ToUpper(tok.Text)]
				if !ok {
					fail(ErrInvalidDotCommand)
					break
				}
				switch {
				case dot == DotEnd:
					emit(lineItem{kind: itemEnd, addr: a.current, dot: DotEnd})
					term = true
					state = psClose
				case dot == DotAscii:
					state = psAscii
				case dot == DotEquate && state == psSymbolDec:
					state = psEquate
				default:
					state = psDotCommand
				}
			case TokSymbol:
				if state == psSymbolDec {
					fail(ErrInstrDotExpected)
					break
				}
				symName = tok.Text
				if !a.symbols.install(symName, a.current, line) {
					fail(ErrSymbolRedefined)
					break
				}
				a.symOut = append(a.symOut, symbolRef{name: symName, line: line})
				state = psSymbolDec
			case TokEmpty:
				if state == psSymbolDec {
					fail(ErrInstrDotExpected)
					break
				}
				state = psFinish
			case TokComment:
				if state == psSymbolDec {
					fail(ErrInstrDotExpected)
					break
				}
				a.installComment(tok.Text, line, false)
				state = psComment
			case TokInvalid:
				fail(ErrInvalidSyntax)
			default:
				if state == psSymbolDec {
					fail(ErrInstrDotExpected)
				} else {
					fail(ErrSymInstrDotExpected)
				}
			}
		case psInstruction:
			switch tok.Kind {
			case TokIdentifier:
				a.undeclared = append(a.undeclared, symbolRef{name: tok.Text, line: line})
				opr = operand{kind: oprSymbol, text: tok.Text}
				state = psOprndSym
			case TokHexConstant:
				opr = operand{kind: oprHex, text: tok.Text}
				state = psOprndHex
			case TokDecConstant:
				opr = operand{kind: oprDec, text: tok.Text}
				if v := opr.decValue(); v < minDec || v > maxDec {
					fail(ErrDecOverflow)
					break
				}
				state = psOprndDec
			case TokCharConstant:
				opr = operand{kind: oprChar, text: tok.Text, obj: tok.Bytes}
				state = psOprndChar
			case TokString:
				if len(tok.Bytes) > 2 {
					fail(ErrStrOprndTooLong)
					break
				}
				opr = operand{kind: oprString, text: tok.Text, obj: tok.Bytes}
				state = psOprndString
			default:
				if err, invalid := invalidTokenErr(tok.Kind); invalid {
					fail(err)
				} else {
					fail(ErrOperandExpected)
				}
			}
		case psOprndDec, psOprndHex, psOprndChar, psOprndString, psOprndSym:
			switch {
			case tok.Kind == TokAddrMode:
				if !mn.validMode(tok.Text, a.Traps) {
					fail(ErrBadAddrMode)
					break
				}
				emit(lineItem{kind: itemNonUnary, addr: a.current, mn: mn, opr: opr, mode: tok.Text})
				state = psClose
			case tok.Kind == TokInvalid:
				fail(ErrInvalidSyntax)
			case mn.noModeOK():
				switch {
				case state == psOprndChar:
					fail(ErrCharNeedsAddrMode)
				case state == psOprndString:
					fail(ErrStringNeedsAddrMode)
				case tok.Kind == TokEmpty:
					emit(lineItem{kind: itemNonUnary, addr: a.current, mn: mn, opr: opr})
					state = psFinish
				case tok.Kind == TokComment:
					emit(lineItem{kind: itemNonUnary, addr: a.current, mn: mn, opr: opr})
					a.installComment(tok.Text, line, true)
					state = psComment
				default:
					fail(ErrAddrCommentExpected)
				}
			default:
				fail(ErrAddrModeExpected)
			}
		case psDotCommand:
			a.parseDotOperand(tok, dot, emit, fail, line)
			if it.kind == itemDot {
				state = psClose
			}
		case psAscii:
			if tok.Kind == TokString {
				opr = operand{kind: oprString, text: tok.Text, obj: tok.Bytes}
				emit(lineItem{kind: itemDot, addr: a.current, dot: DotAscii, opr: opr})
				state = psClose
			} else {
				fail(ErrInvalidString)
			}
		case psEquate:
			a.parseEquateOperand(tok, symName, emit, fail)
			if it.kind == itemDot {
				state = psClose
			}
		case psComment:
			if tok.Kind == TokEmpty {
				state = psFinish
			}
		case psClose:
			switch tok.Kind {
			case TokEmpty:
				state = psFinish
			case TokComment:
				a.installComment(tok.Text, line, true)
				state = psComment
			case TokInvalid:
				fail(ErrInvalidSyntax)
			case TokCharConstant, TokDecConstant, TokHexConstant, TokString:
				fail(ErrUnexpectedOperand)
			default:
				fail(ErrCommentExpected)
			}
		}
	}

	a.items = append(a.items, it)

	if len(a.items) > maxLines {
		a.items[line] = lineItem{kind: itemError, err: ErrLineTableOverflow}
		term = true
	}
	if a.current > maxAddr+1 {
		a.items[line] = lineItem{kind: itemError, err: ErrProgramTooLong}
		term = true
	}

	return
}

// parseDotOperand handles the operand of every dot command except .ASCII,
// .END, and a symbol-qualified .EQUATE.
func (a *Assembler) parseDotOperand(tok Token, dot DotCommand, emit func(lineItem), fail func(error), line int) {
	switch tok.Kind {
	case TokIdentifier:
		a.undeclared = append(a.undeclared, symbolRef{name: tok.Text, line: line})
		switch dot {
		case DotAddrss:
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: operand{kind: oprSymbol, text: tok.Text}})
		case DotEquate:
			fail(ErrSymbolBeforeEquate)
		default:
			fail(ErrConstExpected)
		}
	case TokHexConstant:
		opr := operand{kind: oprHex, text: tok.Text}
		switch dot {
		case DotAddrss:
			fail(ErrSymbolAfterAddrss)
		case DotBlock:
			if tok.Text[0] != '0' || tok.Text[1] != '0' {
				fail(ErrConstOverflow)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotBurn:
			if a.burnCount > 0 {
				fail(ErrOneBurn)
				break
			}
			a.burnCount++
			a.burnValue = opr.hexValue()
			a.burnAddr = a.current
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotByte:
			if tok.Text[0] != '0' || tok.Text[1] != '0' {
				fail(ErrByteOutOfRange)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotEquate:
			fail(ErrSymbolBeforeEquate)
		case DotWord:
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		}
	case TokDecConstant:
		opr := operand{kind: oprDec, text: tok.Text}
		value := opr.decValue()
		switch dot {
		case DotAddrss:
			fail(ErrSymbolAfterAddrss)
		case DotBlock:
			if value < 0 || value > maxByte {
				fail(ErrConstOverflow)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotBurn:
			if a.burnCount > 0 {
				fail(ErrOneBurn)
				break
			}
			if value < 0 || value > maxAddr {
				fail(ErrAddrOverflow)
				break
			}
			a.burnCount++
			a.burnValue = value
			a.burnAddr = a.current
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotByte:
			if value < minByte || value > maxByte {
				fail(ErrByteOutOfRange)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotEquate:
			if value < minDec || value > maxDec {
				fail(ErrDecOverflow)
				break
			}
			fail(ErrSymbolBeforeEquate)
		case DotWord:
			if value < minDec || value > maxDec {
				fail(ErrDecOverflow)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		}
	case TokCharConstant:
		opr := operand{kind: oprChar, text: tok.Text, obj: tok.Bytes}
		switch dot {
		case DotAddrss:
			fail(ErrSymbolAfterAddrss)
		case DotBlock, DotBurn:
			fail(ErrDecHexExpected)
		case DotByte, DotWord:
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotEquate:
			fail(ErrSymbolBeforeEquate)
		}
	case TokString:
		opr := operand{kind: oprString, text: tok.Text, obj: tok.Bytes}
		switch dot {
		case DotAddrss:
			fail(ErrSymbolAfterAddrss)
		case DotBlock, DotBurn:
			fail(ErrDecHexExpected)
		case DotByte:
			if len(tok.Bytes) != 1 {
				fail(ErrByteStrTooLong)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotWord:
			if len(tok.Bytes) > 2 {
				fail(ErrWordStrTooLong)
				break
			}
			emit(lineItem{kind: itemDot, addr: a.current, dot: dot, opr: opr})
		case DotEquate:
			fail(ErrSymbolBeforeEquate)
		}
	default:
		if err, invalid := invalidTokenErr(tok.Kind); invalid {
			fail(err)
		} else {
			fail(ErrConstExpected)
		}
	}
}

// parseEquateOperand handles `symbol: .EQUATE constant`, rebinding the
// symbol to the constant and remembering the literal for .BURN restoration.
func (a *Assembler) parseEquateOperand(tok Token, symName string, emit func(lineItem), fail func(error)) {
	bind := func(value int, opr operand) {
		value &= maxAddr
		a.symbols.set(symName, value)
		a.equates = append(a.equates, equateNode{name: symName, value: value})
		emit(lineItem{kind: itemDot, addr: a.current, dot: DotEquate, opr: opr})
	}

	switch tok.Kind {
	case TokHexConstant:
		opr := operand{kind: oprHex, text: tok.Text}
		bind(opr.hexValue(), opr)
	case TokDecConstant:
		opr := operand{kind: oprDec, text: tok.Text}
		bind(opr.decValue(), opr)
	case TokCharConstant:
		bind(int(tok.Bytes[0]), operand{kind: oprChar, text: tok.Text, obj: tok.Bytes})
	case TokString:
		if len(tok.Bytes) > 2 {
			fail(ErrEquateStrTooLong)
			break
		}
		opr := operand{kind: oprString, text: tok.Text, obj: tok.Bytes}
		bind(int(opr.wordValue(nil)), opr)
	default:
		fail(ErrInvalidSyntax)
	}
}

// installComment records a full-line or trailing comment against its line.
func (a *Assembler) installComment(text string, line int, nonempty bool) {
	a.comments = append(a.comments, commentNode{line: line, nonempty: nonempty, text: text})
}
