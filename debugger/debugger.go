package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// RunState tracks whether the enclosing emulator is free-running;
// Scan transitions it to Stopped on a watchpoint hit.
type RunState int

const (
	Stopped RunState = iota
	Running
)

// Debugger dispatches the expression-engine-facing REPL commands
// against a Collaborator and a watchpoint pool, buffering all
// diagnostics through Output the way the rest of this codebase's
// command handlers do.
type Debugger struct {
	Regs        Collaborator
	Watchpoints *WatchpointPool
	State       RunState

	// Display settings, normally populated from config.Display.
	ColorOutput  bool   // wrap error lines in ANSI red
	WordsPerLine int    // words printed per line by the x command
	NumberFormat string // "hex" or "dec", for p results

	Output strings.Builder
}

// NewDebugger creates a debugger bound to regs.
func NewDebugger(regs Collaborator) *Debugger {
	return &Debugger{
		Regs:         regs,
		Watchpoints:  NewWatchpointPool(regs),
		State:        Stopped,
		WordsPerLine: 4,
		NumberFormat: "hex",
	}
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

// GetOutput returns and clears the output buffer.
func (d *Debugger) GetOutput() string {
	out := d.Output.String()
	d.Output.Reset()
	return out
}

// Eval runs the full lex/parse/linearize/evaluate pipeline over expr.
func (d *Debugger) Eval(expr string) (Word, error) {
	return EvaluateExpr(expr, d.Regs)
}

// Execute dispatches a single REPL command line: p, w, d, info w,
// x. Each category of failure is caught here and reported as one error
// message (one line, except that lex and parse errors add the input and
// a caret line); no command partially mutates state on failure.
func (d *Debugger) Execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "p":
		d.cmdPrint(args)
	case "w":
		d.cmdWatch(args)
	case "d":
		d.cmdDelete(args)
	case "info":
		d.cmdInfo(args)
	case "x":
		d.cmdExamine(args)
	default:
		d.Printf("unknown command: %s\n", cmd)
	}
}

// reportError prints one error message, in red when colour output is on.
// Colour never affects semantics; it only wraps the text in escape
// sequences.
func (d *Debugger) reportError(err error) {
	if d.ColorOutput {
		d.Printf("\x1b[1;31m%v\x1b[0m\n", err)
		return
	}
	d.Printf("%v\n", err)
}

func (d *Debugger) formatWord(v Word) string {
	if d.NumberFormat == "dec" {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%08x", v)
}

func (d *Debugger) cmdPrint(args []string) {
	expr := strings.Join(args, " ")
	val, err := d.Eval(expr)
	if err != nil {
		d.reportError(err)
		return
	}
	d.Printf("%s\n", d.formatWord(val))
}

func (d *Debugger) cmdWatch(args []string) {
	expr := strings.Join(args, " ")
	no, err := d.Watchpoints.New(expr)
	if err != nil {
		d.reportError(err)
		return
	}
	d.Printf("watchpoint %d: %s\n", no, expr)
}

func (d *Debugger) cmdDelete(args []string) {
	no := -1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			d.Printf("invalid watchpoint number: %s\n", args[0])
			return
		}
		no = n
	}
	if err := d.Watchpoints.Free(no); err != nil {
		d.reportError(err)
	}
}

func (d *Debugger) cmdInfo(args []string) {
	if len(args) == 0 || args[0] != "w" {
		d.Printf("usage: info w\n")
		return
	}
	d.Watchpoints.Display(&d.Output)
}

func (d *Debugger) cmdExamine(args []string) {
	if len(args) < 2 {
		d.Printf("usage: x <N> <expr>\n")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		d.Printf("invalid word count: %s\n", args[0])
		return
	}
	expr := strings.Join(args[1:], " ")
	addr, err := d.Eval(expr)
	if err != nil {
		d.reportError(err)
		return
	}
	perLine := d.WordsPerLine
	if perLine < 1 {
		perLine = 1
	}
	d.Regs.ClearOOB()
	for i := 0; i < n; i++ {
		a := addr + Word(i*WordSizeBytes)
		if i%perLine == 0 {
			if i > 0 {
				d.Printf("\n")
			}
			d.Printf("0x%08x:", a)
		}
		val := d.Regs.ReadWord(a)
		if d.Regs.OOB() {
			d.Printf(" <out of bounds>\n")
			return
		}
		d.Printf(" 0x%08x", val)
	}
	d.Printf("\n")
}

// Scan re-evaluates all active watchpoints at the given PC and, on any
// hit, transitions a running emulator to stopped.
func (d *Debugger) Scan(pc Word) {
	if d.Watchpoints.Scan(&d.Output, pc) && d.State == Running {
		d.State = Stopped
	}
}
