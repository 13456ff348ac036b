package debugger

import (
	"strings"
	"testing"

	"github.com/rv32dbg/sdb/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchpointPool_NewAssignsLowestFreeNO(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	no1, err := pool.New("$a0")
	require.NoError(t, err)
	assert.Equal(t, 0, no1)

	no2, err := pool.New("$a1")
	require.NoError(t, err)
	assert.Equal(t, 1, no2)
}

func TestWatchpointPool_FreeRecyclesNO(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	no, err := pool.New("$a0")
	require.NoError(t, err)

	require.NoError(t, pool.Free(no))

	again, err := pool.New("$a1")
	require.NoError(t, err)
	assert.Equal(t, no, again, "freed slot's NO should be reused")
}

func TestWatchpointPool_FreeAll(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	_, err := pool.New("$a0")
	require.NoError(t, err)
	_, err = pool.New("$a1")
	require.NoError(t, err)

	require.NoError(t, pool.Free(-1))

	var out strings.Builder
	pool.Display(&out)
	assert.Empty(t, out.String())
}

func TestWatchpointPool_ListsStaySortedByNO(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	a, _ := pool.New("$a0")
	b, _ := pool.New("$a1")
	c, _ := pool.New("$a2")
	require.NoError(t, pool.Free(b))

	var out strings.Builder
	pool.Display(&out)
	s := out.String()
	require.NotEmpty(t, s)
	// a and c remain active; b's slot returned to the free list.
	assert.Contains(t, s, "watchpoint 0")
	assert.Contains(t, s, "watchpoint 2")
	assert.NotContains(t, s, "watchpoint 1")
	assert.Less(t, strings.Index(s, "watchpoint 0"), strings.Index(s, "watchpoint 2"))
	_ = a
	_ = c
}

func TestWatchpointPool_PoolFullRejectsNew(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	for i := 0; i < NRWP; i++ {
		_, err := pool.New("$a0")
		require.NoError(t, err)
	}
	_, err := pool.New("$a0")
	assert.Error(t, err)
}

func TestWatchpointPool_FailedNewConsumesNoSlot(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	_, err := pool.New("10 / 0")
	assert.Error(t, err)

	no, err := pool.New("$a0")
	require.NoError(t, err)
	assert.Equal(t, 0, no, "a failed new() must not have consumed slot 0")
}

func TestWatchpointPool_ScanDetectsChange(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	_, err := pool.New("$a0")
	require.NoError(t, err)

	var out strings.Builder
	hit := pool.Scan(&out, 0x8000)
	assert.False(t, hit, "no change yet")

	m.Regs.R[10] = 42 // a0
	hit = pool.Scan(&out, 0x8004)
	assert.True(t, hit)
	assert.Contains(t, out.String(), "watchpoint 0 hit")
}

func TestWatchpointPool_ScanIsolatesFaults(t *testing.T) {
	m := vm.NewMachine()
	pool := NewWatchpointPool(m)

	// Watchpoint 0 dereferences a2, valid at install time. New validates
	// eagerly, so the fault has to be injected after installation by
	// pointing a2 at unmapped memory.
	m.Memory.WriteWord(vm.Word(vm.DataSegmentStart), 0)
	m.Regs.R[12] = vm.Word(vm.DataSegmentStart) // a2
	_, err := pool.New("*$a2")
	require.NoError(t, err)

	_, err = pool.New("$a1")
	require.NoError(t, err)

	// a2 now points out of bounds and a1 changes. Watchpoint 0 faults
	// during the scan; the scan must still reach watchpoint 1 and report
	// its hit.
	m.Regs.R[12] = 0xffff0000
	m.Regs.R[11] = 7 // a1

	var out strings.Builder
	hit := pool.Scan(&out, 0x8004)
	assert.True(t, hit)
	assert.Contains(t, out.String(), "watchpoint 0: evaluation error")
	assert.Contains(t, out.String(), "watchpoint 1 hit")
}
