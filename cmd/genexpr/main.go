// Command genexpr generates random arithmetic expressions and their
// ground-truth values, for use as input to exprtest.
// Ground truth is computed with this repository's own evaluator rather
// than shelling out to an external compiler: the expressions here are
// restricted to unsigned-literal arithmetic with no registers or
// memory dereference, so the engine's own evaluator already computes
// the reference semantics a generator for this grammar needs.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rv32dbg/sdb/debugger"
	"github.com/rv32dbg/sdb/vm"
)

const (
	minTokens = 5
	maxTokens = 1023
)

var binOps = []string{"+", "-", "*", "/", "%", "&", "|", "^"}

// genRandExpr recursively draws a literal, a parenthesised
// subexpression, or a binary combination of two subexpressions, with
// the recursion depth bounded by budget so expressions terminate.
func genRandExpr(r *rand.Rand, budget *int) string {
	*budget--
	if *budget <= 0 {
		return genNum(r)
	}

	switch r.Intn(3) {
	case 0:
		return genNum(r)
	case 1:
		return "(" + genRandExpr(r, budget) + ")"
	default:
		left := genRandExpr(r, budget)
		op := binOps[r.Intn(len(binOps))]
		right := genRandExpr(r, budget)
		return left + " " + op + " " + right
	}
}

func genNum(r *rand.Rand) string {
	n := r.Uint32()
	if r.Intn(2) == 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("0x%x", n)
}

func main() {
	var (
		loops  = flag.Int("loops", 1000, "number of expressions to attempt")
		seed   = flag.Int64("seed", 1, "PRNG seed, for reproducible regression inputs")
		outPat = flag.String("out", "", "output file path (default: stdout)")
	)
	flag.Parse()

	out := os.Stdout
	if *outPat != "" {
		f, err := os.Create(*outPat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "genexpr: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	r := rand.New(rand.NewSource(*seed))
	machine := vm.NewMachine()

	for i := 0; i < *loops; i++ {
		budget := 12
		expr := genRandExpr(r, &budget)

		toks, err := debugger.NewLexer(expr, machine).Lex()
		if err != nil {
			continue
		}
		tokenCount := len(toks) - 1 // exclude the trailing TokEnd
		if tokenCount < minTokens || tokenCount > maxTokens {
			continue
		}

		val, err := debugger.EvaluateExpr(expr, machine)
		if err != nil {
			continue // e.g. division/modulo by zero in this draw
		}

		fmt.Fprintf(out, "%x %s\n", val, strings.TrimSpace(expr))
	}
}
