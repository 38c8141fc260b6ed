package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/StanWarford/pep8term/trap"
	"github.com/StanWarford/pep8term/vm"
)

// repl holds the interactive session: the machine, the shared stdin reader,
// and the trace/display settings the user can adjust.
type repl struct {
	machine *vm.Machine
	stdin   *bufio.Reader

	// interactive suppresses prompts when input is piped in.
	interactive bool

	traceMode vm.TraceMode
	pageLines int

	inputFile  *os.File
	outputFile *os.File
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: pep8 [-v]")
		os.Exit(2)
	}
	version := flag.Bool("v", false, "print the version banner")
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}
	if *version {
		fmt.Println("Pep/8 Simulator, version Unix 8.3, Pepperdine University")
	}

	trapFile, err := os.Open("trap")
	if err != nil {
		fmt.Println("Could not open trap file.")
		os.Exit(1)
	}
	traps, err := trap.Load(trapFile)
	trapFile.Close()
	if err != nil {
		fmt.Printf("Could not read trap file: %v\n", err)
		os.Exit(1)
	}

	machine := vm.New(traps)
	machine.Screen = os.Stdout

	osImage, err := os.Open("pep8os.pepo")
	if err != nil {
		fmt.Println("Could not open file pep8os.pepo")
		os.Exit(3)
	}
	ramFree, err := machine.InstallROM(osImage)
	osImage.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	fmt.Printf("%d bytes RAM free.\n", ramFree)

	r := &repl{
		machine:     machine,
		stdin:       bufio.NewReader(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		pageLines:   22,
	}
	machine.SetKeyboard(r.stdin)
	r.mainPrompt()

	if r.outputFile != nil {
		r.outputFile.Close()
	}
	if r.inputFile != nil {
		r.inputFile.Close()
	}
}

// prompt prints an interactive prompt and reads one response line.
func (r *repl) prompt(text string) (line string, ok bool) {
	if r.interactive {
		fmt.Print(text)
	}
	line, err := r.stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	ok = err == nil || line != ""

	return
}

// promptChar reads a response and reduces it to its uppercased first
// character, with a space standing for an empty line.
func (r *repl) promptChar(text string) (ch byte, ok bool) {
	line, ok := r.prompt(text)
	if !ok {
		return
	}
	if line == "" {
		return ' ', true
	}
	ch = line[0]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}

	return
}

func (r *repl) mainPrompt() {
	for {
		if r.interactive {
			fmt.Println()
		}
		ch, ok := r.promptChar("(l)oad  e(x)ecute  (d)ump  (t)race  (i)nput  (o)utput  (q)uit: ")
		if !ok || ch == 'Q' {
			return
		}
		switch ch {
		case 'L':
			r.loaderCommand()
		case 'X':
			r.executeCommand()
		case 'D':
			r.dumpCommand()
		case 'T':
			r.traceCommand()
		case 'I':
			r.inputCommand()
		case 'O':
			r.outputCommand()
		case ' ':
		default:
			fmt.Println("Invalid command.")
		}
	}
}

// tracer builds a tracer over the machine with the current display
// settings.
func (r *repl) tracer() *vm.Tracer {
	return &vm.Tracer{
		Machine:   r.machine,
		Mode:      r.traceMode,
		Out:       os.Stdout,
		Prompt:    r.stdin,
		PageLines: r.pageLines,
	}
}

func (r *repl) executeCommand() {
	m := r.machine
	if m.BeginExecute() != nil {
		fmt.Println("Execution error: Machine state not initialized.")
		fmt.Println("Use (l)oad command.")
		return
	}

	var err error
	if r.traceMode == vm.TraceOff {
		err = m.Run()
	} else {
		err = r.tracer().Run()
	}
	if err != nil {
		fmt.Println(err)
	}

	// A redirected input file rewinds after every run.
	if r.inputFile != nil {
		r.inputFile.Seek(0, io.SeekStart)
		r.machine.SetInputFile(r.inputFile)
	}
}

func (r *repl) loaderCommand() {
	if !r.machine.KeyboardInput() {
		fmt.Println("Data input switched back to keyboard.")
		r.machine.SetInputFile(nil)
		if r.inputFile != nil {
			r.inputFile.Close()
			r.inputFile = nil
		}
	}

	name, ok := r.prompt("Enter object file name (do not include .pepo): ")
	if !ok {
		return
	}
	name += ".pepo"

	object, err := os.Open(name)
	if err != nil {
		fmt.Printf("Could not open object file %v\n", name)
		return
	}
	defer object.Close()
	fmt.Printf("Object file is %v\n", name)

	if r.traceMode == vm.TraceOff {
		err = r.machine.LoadObject(object)
	} else {
		err = r.machine.LoadObjectTraced(object, r.tracer())
	}
	if err != nil {
		fmt.Println(err)
	}
}

func (r *repl) dumpCommand() {
	fmt.Print("Pep/8 memory dump:  ")
	for {
		fmt.Println()
		start, end, ok := r.dumpRange()
		if !ok {
			return
		}
		if end == 0 {
			end = start
		}
		if start > end {
			fmt.Println("Address range error. Start address must be less than end address.")
			continue
		}
		r.machine.Dump(os.Stdout, start, end)
		return
	}
}

// dumpRange keeps asking for a start-dash-end hex address pair until one
// parses.
func (r *repl) dumpRange() (start, end uint16, ok bool) {
	for {
		if r.interactive {
			fmt.Println("Enter address range of dump (HEX)")
		}
		line, lineOK := r.prompt("Example, 0020-0140: ")
		if !lineOK {
			return
		}
		var s, e int
		n, err := fmt.Sscanf(line, "%4x-%4x", &s, &e)
		if err == nil && n == 2 && s <= vm.TopOfMemory && e <= vm.TopOfMemory {
			return uint16(s), uint16(e), true
		}
		fmt.Println("Error in hex specification. Enter Again.")
	}
}

func (r *repl) traceCommand() {
	for {
		ch, ok := r.promptChar("Trace  (p)rogram  (t)rap  (l)oader, or (a)djust display: ")
		if !ok {
			return
		}
		switch ch {
		case 'A':
			line, lineOK := r.prompt(fmt.Sprintf("Number of lines per screen dump (%d): ", r.pageLines))
			if !lineOK {
				return
			}
			var lines int
			fmt.Sscanf(line, "%d", &lines)
			r.pageLines = max(lines, 8)
			fmt.Println()
		case 'P':
			r.traceMode = vm.TraceProgram
			r.executeCommand()
			r.traceMode = vm.TraceOff
			return
		case 'T':
			r.traceMode = vm.TraceTraps
			r.executeCommand()
			r.traceMode = vm.TraceOff
			return
		case 'L':
			r.traceMode = vm.TraceLoader
			r.loaderCommand()
			r.traceMode = vm.TraceOff
			return
		case ' ':
			return
		default:
			fmt.Println("Invalid response.")
		}
	}
}

func (r *repl) inputCommand() {
	for {
		ch, ok := r.promptChar("Input from  (k)eyboard  (f)ile: ")
		if !ok {
			return
		}
		switch ch {
		case 'K', ' ':
			r.machine.SetInputFile(nil)
			if r.inputFile != nil {
				r.inputFile.Close()
				r.inputFile = nil
			}
			if ch == 'K' {
				fmt.Println("Input is from keyboard.")
			}
			return
		case 'F':
			name, lineOK := r.prompt("Enter input data file name: ")
			if !lineOK {
				return
			}
			file, err := os.Open(name)
			if err != nil {
				fmt.Printf("Could not open input data file %v\n", name)
				return
			}
			if r.inputFile != nil {
				r.inputFile.Close()
			}
			r.inputFile = file
			r.machine.SetInputFile(file)
			fmt.Printf("Input data file is %v\n", name)
			return
		default:
			fmt.Println("Invalid response.")
		}
	}
}

func (r *repl) outputCommand() {
	for {
		ch, ok := r.promptChar("Output to  (s)creen  (f)ile:  ")
		if !ok {
			return
		}
		switch ch {
		case 'S', ' ':
			if r.outputFile != nil {
				r.outputFile.Close()
				r.outputFile = nil
			}
			r.machine.OutputFile = nil
			if ch == 'S' {
				fmt.Println("Output is to screen.")
			}
			return
		case 'F':
			name, lineOK := r.prompt("Enter output data file name: ")
			if !lineOK {
				return
			}
			file, err := os.Create(name)
			if err != nil {
				fmt.Printf("Error opening file %v\n", name)
				return
			}
			if r.outputFile != nil {
				r.outputFile.Close()
			}
			r.outputFile = file
			r.machine.OutputFile = file
			fmt.Printf("Output data file is %v\n", name)
			return
		default:
			fmt.Println("Invalid response.")
		}
	}
}
