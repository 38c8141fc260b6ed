package asm

import (
	"errors"

	"github.com/StanWarford/pep8term/translate"
)

var f = translate.From

var (
	// Structural errors
	ErrMissingEnd        = errors.New(f("missing .END sentinel"))
	ErrLineTableOverflow = errors.New(f("program too long. Listing table overflow"))
	ErrProgramTooLong    = errors.New(f("program too long. Code table overflow"))

	// Line-shape errors
	ErrSymbolRedefined     = errors.New(f("symbol previously defined"))
	ErrInstrDotExpected    = errors.New(f("instruction or dot command expected"))
	ErrSymInstrDotExpected = errors.New(f("symbol, instruction, or dot command expected"))
	ErrInvalidMnemon       = errors.New(f("invalid mnemonic"))
	ErrInvalidDotCommand   = errors.New(f("invalid dot command"))
	ErrInvalidSyntax       = errors.New(f("invalid syntax"))
	ErrCommentExpected     = errors.New(f("comment expected"))
	ErrUnexpectedOperand   = errors.New(f("unexpected operand specifier"))

	// Operand errors
	ErrOperandExpected  = errors.New(f("operand specifier expected"))
	ErrInvalidDec       = errors.New(f("invalid decimal constant"))
	ErrInvalidHex       = errors.New(f("invalid hexadecimal constant"))
	ErrInvalidChar      = errors.New(f("invalid character constant"))
	ErrInvalidString    = errors.New(f("invalid string expression"))
	ErrDecHexExpected   = errors.New(f("decimal or hex constant expected"))
	ErrConstExpected    = errors.New(f("constant expected"))
	ErrDecOverflow      = errors.New(f("decimal overflow. Range is -32768 to 65535"))
	ErrConstOverflow    = errors.New(f("constant overflow. Range is 0 to 255 (dec)"))
	ErrByteOutOfRange   = errors.New(f("byte value out of range"))
	ErrAddrOverflow     = errors.New(f("address overflow. Range is 0 to 65535 (dec)"))
	ErrUndefinedSymbol  = errors.New(f("reference to undefined symbol"))
	ErrStrOprndTooLong  = errors.New(f("the string is too long to be a valid operand"))
	ErrByteStrTooLong   = errors.New(f("the string is too long to be used with .BYTE pseudo-op"))
	ErrWordStrTooLong   = errors.New(f("the string is too long to be used with .WORD pseudo-op"))
	ErrEquateStrTooLong = errors.New(f("the string is too long to be used with .EQUATE pseudo-op"))

	// Addressing-mode errors
	ErrAddrModeExpected    = errors.New(f("addressing mode expected"))
	ErrAddrCommentExpected = errors.New(f("addressing mode or comment expected"))
	ErrInvalidAddrMode     = errors.New(f("invalid addressing mode"))
	ErrBadAddrMode         = errors.New(f("this instruction cannot have this addressing mode"))
	ErrCharNeedsAddrMode   = errors.New(f("addressing mode always required with char constant operands"))
	ErrStringNeedsAddrMode = errors.New(f("addressing mode always required with string operands"))

	// Dot-command placement errors
	ErrSymbolAfterAddrss  = errors.New(f("symbol required after .ADDRSS pseudo-op"))
	ErrSymbolBeforeEquate = errors.New(f("symbol required before .EQUATE pseudo-op"))
	ErrOneBurn            = errors.New(f("more than one .BURN pseudo-op not allowed in program"))
)

// ErrExpression reports a compile-time $() expression that failed to
// evaluate.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// LineError attaches a diagnostic to its one-based source line for the
// error report.
type LineError struct {
	Line int
	Err  error
}

func (err LineError) Error() string {
	return f("error on line %d: %v", err.Line, err.Err)
}

func (err LineError) Unwrap() error {
	return err.Err
}
