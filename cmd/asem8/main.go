package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StanWarford/pep8term/asm"
	"github.com/StanWarford/pep8term/trap"
)

const fileNameLength = 64

func usage() {
	fmt.Fprintln(os.Stderr, "usage: asem8 [-v] [[-l] sourceFile]")
	os.Exit(2)
}

func main() {
	trapFile, err := os.Open("trap")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open trap file.")
		os.Exit(1)
	}
	traps, err := trap.Load(trapFile)
	trapFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read trap file: %v\n", err)
		os.Exit(1)
	}

	var version bool
	var listing bool
	flag.BoolVar(&version, "v", false, "print the version banner")
	flag.BoolVar(&listing, "l", false, "write a program listing beside the object file")
	flag.Usage = usage
	flag.Parse()

	if version {
		fmt.Fprintln(os.Stderr, "Pep/8 Assembler, version Unix 8.17")
	}
	if flag.NArg() == 0 {
		return
	}
	if flag.NArg() != 1 {
		usage()
	}

	sourceName := flag.Arg(0)
	if len(sourceName) > fileNameLength-3 {
		fmt.Fprintln(os.Stderr, "Source file name too long")
		os.Exit(2)
	}
	if !strings.HasSuffix(sourceName, ".pep") {
		fmt.Fprintln(os.Stderr, "Source file should have a \".pep\" extension")
		os.Exit(2)
	}

	source, err := os.Open(sourceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open %v.\n", sourceName)
		os.Exit(3)
	}
	defer source.Close()

	assembler := &asm.Assembler{Traps: traps}
	prog, errs := assembler.Assemble(source)

	if len(errs) != 0 {
		if len(errs) == 1 {
			fmt.Fprintln(os.Stderr, "1 error was detected. No object code generated.")
		} else {
			fmt.Fprintf(os.Stderr, "%d errors were detected. No object code generated.\n", len(errs))
		}
		for _, lineErr := range errs {
			fmt.Fprintf(os.Stderr, "Error on line %d: %v.\n", lineErr.Line, lineErr.Err)
		}
		return
	}

	if listing {
		writeFile(sourceName+"l", prog.WriteListing)
	}
	writeFile(sourceName+"o", prog.WriteObject)
}

func writeFile(name string, render func(w io.Writer) error) {
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not create %v.\n", name)
		os.Exit(3)
	}
	defer out.Close()
	if err = render(out); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write %v: %v\n", name, err)
		os.Exit(3)
	}
}
