package debugger

// EvaluateExpr runs the complete lex/parse/linearize/evaluate pipeline
// over expr. It is the single entry point external callers (the REPL,
// the generator, the regression harness) use to drive the engine.
func EvaluateExpr(expr string, regs Collaborator) (Word, error) {
	toks, err := NewLexer(expr, regs).Lex()
	if err != nil {
		return 0, err
	}
	ast, err := NewParser(toks).Parse()
	if err != nil {
		return 0, err
	}
	return Evaluate(linearize(ast), regs)
}
