package vm

import (
	"fmt"
	"io"
)

// Dump writes the canonical sixteen-column hex and ASCII view of memory
// between two addresses, starting on a sixteen-byte boundary.
func (m *Machine) Dump(w io.Writer, start, end uint16) {
	fmt.Fprint(w, "DUMP    0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F       ASCII\n\n")

	for addr := int(start &^ 0xF); addr <= int(end); addr += 16 {
		fmt.Fprintf(w, "%04X:  ", addr)
		for i := range 16 {
			fmt.Fprintf(w, "%02X ", m.Mem[addr+i])
		}
		fmt.Fprint(w, " ")
		for i := range 16 {
			ch := m.Mem[addr+i]
			if ch >= ' ' && ch <= '~' {
				fmt.Fprintf(w, "%c", ch)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
}
