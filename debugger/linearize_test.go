package debugger

import (
	"testing"

	"github.com/rv32dbg/sdb/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearize_PostorderSequence(t *testing.T) {
	m := vm.NewMachine()
	ast := parseExpr(t, m, "1 + 2 * 3")
	seq := linearize(ast)

	require.Len(t, seq, 6) // 1 2 3 * + END
	kinds := make([]TokenKind, len(seq))
	for i, tok := range seq {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{TokNum, TokNum, TokNum, TokStar, TokPlus, TokEnd}, kinds)
}

func TestLinearize_PreservesUnaryFlag(t *testing.T) {
	m := vm.NewMachine()
	ast := parseExpr(t, m, "-1")
	seq := linearize(ast)
	require.Len(t, seq, 3) // 1 - END
	assert.Equal(t, TokNum, seq[0].Kind)
	assert.Equal(t, TokMinus, seq[1].Kind)
	assert.True(t, seq[1].Unary)
}
