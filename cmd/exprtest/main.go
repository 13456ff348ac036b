// Command exprtest is a regression test harness: it
// reads a file of "<hex-word-value> <expression>" lines and checks each
// expression evaluates to the recorded ground truth.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rv32dbg/sdb/debugger"
	"github.com/rv32dbg/sdb/vm"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: exprtest <input-file>")
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "exprtest: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	machine := vm.NewMachine()
	totalRun, errCount, hardFail := 0, 0, 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			continue
		}
		refVal, parseErr := strconv.ParseUint(fields[0], 16, 32)
		if parseErr != nil {
			continue
		}
		ref := uint32(refVal)
		expr := fields[1]

		dut, evalErr := debugger.EvaluateExpr(expr, machine)
		success := evalErr == nil

		if !success || dut != ref {
			fmt.Printf("expr: %s\nref=0x%08x\ndut=0x%08x (success=%v)\n", expr, ref, dut, success)
			errCount++
			// A mismatch where the expression evaluated successfully
			// means the engine computed a wrong value; an evaluation
			// failure is counted but is not by itself fatal.
			if success {
				hardFail++
			}
		}
		totalRun++
	}

	fmt.Printf("Total run finish:%d, err:%d\n", totalRun, errCount)
	if hardFail > 0 {
		os.Exit(1)
	}
}
