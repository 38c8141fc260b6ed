package vm

import (
	"errors"

	"github.com/StanWarford/pep8term/translate"
)

var f = translate.From

var (
	ErrReadPastEnd    = errors.New(f("file read error or read past end of file"))
	ErrNotInitialized = errors.New(f("machine state not initialized"))
	ErrOsTooBig       = errors.New(f("OS is too big to fit into main memory"))
	ErrBadRomByte     = errors.New(f("invalid input in OS image"))
	ErrNoSentinel     = errors.New(f("file must end in 'zz'"))
)

// ErrIllegalAddr reports an addressing mode a mnemonic does not support at
// execution time.
type ErrIllegalAddr struct {
	Mode   AddrMode
	Mnemon string
}

func (err ErrIllegalAddr) Error() string {
	return f("illegal addressing mode %v with %v", err.Mode, err.Mnemon)
}

// ErrRuntime wraps an execution error with the address of the instruction
// that raised it.
type ErrRuntime struct {
	Addr uint16
	Err  error
}

func (err ErrRuntime) Error() string {
	return f("runtime error at %04X:  %v", err.Addr, err.Err)
}

func (err ErrRuntime) Unwrap() error {
	return err.Err
}
