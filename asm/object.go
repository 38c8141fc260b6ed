package asm

import (
	"fmt"
	"io"
)

const objFileLineLength = 16 // bytes per object file line

// WriteObject renders the bare-hex object stream: uppercase two-digit
// bytes, sixteen per line, closed by the zz sentinel.
func (prog *Program) WriteObject(w io.Writer) (err error) {
	column := 0
	for b := range prog.Bytes() {
		sep := " "
		if column == objFileLineLength-1 {
			sep = "\n"
			column = 0
		} else {
			column++
		}
		_, err = fmt.Fprintf(w, "%02X%s", b, sep)
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintln(w, "zz")

	return
}
