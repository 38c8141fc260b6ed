package trap

import (
	"errors"

	"github.com/StanWarford/pep8term/translate"
)

var f = translate.From

var (
	ErrTrapShort = errors.New(f("trap file must define eight mnemonics"))
)
