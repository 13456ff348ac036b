package debugger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rv32dbg/sdb/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugger_PrintCommand(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	d.Execute("p 1 + 2 * 3")
	assert.Equal(t, "0x00000007\n", d.GetOutput())
}

func TestDebugger_PrintDecimalFormat(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)
	d.NumberFormat = "dec"

	d.Execute("p 6 * 7")
	assert.Equal(t, "42\n", d.GetOutput())
}

func TestDebugger_PrintErrorIsOneLine(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	d.Execute("p 10 / 0")
	out := d.GetOutput()
	assert.Contains(t, out, "division by zero")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestDebugger_ColorWrapsErrorsOnly(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)
	d.ColorOutput = true

	d.Execute("p 1 + 1")
	assert.NotContains(t, d.GetOutput(), "\x1b[")

	d.Execute("p 10 / 0")
	out := d.GetOutput()
	assert.Contains(t, out, "\x1b[1;31m")
	assert.Contains(t, out, "\x1b[0m")
}

func TestDebugger_WatchDeleteInfoFlow(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	d.Execute("w $a0 + 4")
	assert.Contains(t, d.GetOutput(), "watchpoint 0")

	d.Execute("info w")
	out := d.GetOutput()
	assert.Contains(t, out, "$a0 + 4")

	d.Execute("d 0")
	assert.Empty(t, d.GetOutput())

	d.Execute("info w")
	assert.Empty(t, d.GetOutput())
}

func TestDebugger_DeleteAllWithoutArgument(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	d.Execute("w 1 + 1")
	d.Execute("w 2 + 2")
	d.GetOutput()

	d.Execute("d")
	d.Execute("info w")
	assert.Empty(t, d.GetOutput())
}

func TestDebugger_ExamineWordsPerLine(t *testing.T) {
	m := vm.NewMachine()
	base := vm.Word(vm.DataSegmentStart)
	for i := 0; i < 8; i++ {
		m.Memory.WriteWord(base+vm.Word(i*4), vm.Word(i))
	}

	d := NewDebugger(m)
	d.WordsPerLine = 4

	d.Execute(fmt.Sprintf("x 8 %#x", base))
	out := d.GetOutput()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], fmt.Sprintf("0x%08x:", base)))
	assert.True(t, strings.HasPrefix(lines[1], fmt.Sprintf("0x%08x:", base+16)))
	assert.Contains(t, lines[0], "0x00000003")
	assert.Contains(t, lines[1], "0x00000007")
}

func TestDebugger_ExamineStopsAtOOB(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	// Start two words before the end of the stack segment, the last
	// mapped region, so the third read walks off the mapped region.
	base := vm.Word(vm.StackSegmentStart + vm.StackSegmentSize - 8)
	d.Execute(fmt.Sprintf("x 4 %#x", base))
	out := d.GetOutput()
	assert.Contains(t, out, "<out of bounds>")
}

func TestDebugger_UnknownCommand(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)

	d.Execute("frobnicate")
	assert.Contains(t, d.GetOutput(), "unknown command")
}

func TestDebugger_ScanStopsRunningEmulator(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)
	d.State = Running

	d.Execute("w $a0")
	d.GetOutput()

	m.Regs.R[10] = 1 // a0
	d.Scan(0x8000)
	assert.Equal(t, Stopped, d.State)
	assert.Contains(t, d.GetOutput(), "watchpoint 0 hit")
}

func TestDebugger_ScanWithoutChangeKeepsRunning(t *testing.T) {
	m := vm.NewMachine()
	d := NewDebugger(m)
	d.State = Running

	d.Execute("w $a0")
	d.GetOutput()

	d.Scan(0x8000)
	assert.Equal(t, Running, d.State)
}
