package vm

import (
	"bufio"
	"io"
)

// InstallROM reads the operating system image, whitespace-separated
// two-hex-digit bytes closed by the zz sentinel, and places it against the
// top of memory. The ROM boundary is recorded and enforced by every memory
// write from then on. It returns the number of bytes of RAM left free.
func (m *Machine) InstallROM(image io.Reader) (ramFree int, err error) {
	var bytes []byte

	scanner := bufio.NewScanner(image)
	scanner.Split(bufio.ScanWords)
scan:
	for scanner.Scan() {
		word := scanner.Text()
		if word[0] == 'z' {
			break scan
		}
		if len(word)%2 != 0 {
			err = ErrBadRomByte
			return
		}
		for i := 0; i < len(word); i += 2 {
			hi := hexNibble(word[i])
			lo := hexNibble(word[i+1])
			if hi < 0 || lo < 0 {
				err = ErrBadRomByte
				return
			}
			bytes = append(bytes, byte(hi*16+lo))
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(bytes) >= MemorySize {
		err = ErrOsTooBig
		return
	}

	m.RomStart = MemorySize - len(bytes)
	copy(m.Mem[m.RomStart:], bytes)
	ramFree = m.RomStart

	return
}

func hexNibble(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	}
	return -1
}
