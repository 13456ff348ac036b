package debugger

import (
	"fmt"
	"io"
)

// watchpointNode is one slot in the fixed watchpoint array. The
// same node type serves both the NRWP real watchpoint slots and the
// two list sentinels; sentinels only ever use no and next.
type watchpointNode struct {
	no      int
	next    int
	exprStr string
	suffix  []Token
	res     Word
	oldRes  Word
}

const (
	wpHead = NRWP     // active-list sentinel index
	wpFree = NRWP + 1 // free-list sentinel index
	wpNone = -1
)

// WatchpointPool owns NRWP watchpoint slots in a fixed array organised
// into a sorted active list and a sorted free list via intrusive next
// links. Watchpoints are the only consumer of the ordered-pool
// arrangement in this repository, so it is inlined here rather than
// factored into a separate generic type.
type WatchpointPool struct {
	nodes [NRWP + 2]watchpointNode
	regs  Collaborator
}

// NewWatchpointPool lays out all NRWP slots on the free list in
// ascending order.
func NewWatchpointPool(regs Collaborator) *WatchpointPool {
	p := &WatchpointPool{regs: regs}
	for i := 0; i < NRWP; i++ {
		p.nodes[i].no = i
		if i == NRWP-1 {
			p.nodes[i].next = wpNone
		} else {
			p.nodes[i].next = i + 1
		}
	}
	p.nodes[wpHead].no = wpHead
	p.nodes[wpHead].next = wpNone
	p.nodes[wpFree].no = wpFree
	if NRWP > 0 {
		p.nodes[wpFree].next = 0
	} else {
		p.nodes[wpFree].next = wpNone
	}
	return p
}

// insert splices node idx into the list rooted at sentinel root,
// keeping the list sorted ascending by NO. idx must be
// detached from any list before calling this.
func (p *WatchpointPool) insert(root, idx int) {
	prev := root
	for p.nodes[prev].next != wpNone && p.nodes[p.nodes[prev].next].no < p.nodes[idx].no {
		prev = p.nodes[prev].next
	}
	p.nodes[idx].next = p.nodes[prev].next
	p.nodes[prev].next = idx
}

// findPrev returns the index of the predecessor of the node with
// identity no in the list rooted at root, or wpNone if no such node
// exists.
func (p *WatchpointPool) findPrev(root, no int) int {
	prev := root
	for p.nodes[prev].next != wpNone {
		if p.nodes[p.nodes[prev].next].no == no {
			return prev
		}
		prev = p.nodes[prev].next
	}
	return wpNone
}

// New lexes, parses, linearizes and evaluates src, and on success
// installs it as a new active watchpoint, returning its NO.
// Any failure along the pipeline leaves the pool unchanged and consumes
// no slot.
func (p *WatchpointPool) New(src string) (int, error) {
	toks, err := NewLexer(src, p.regs).Lex()
	if err != nil {
		return 0, fmt.Errorf("watchpoint: %w", err)
	}
	ast, err := NewParser(toks).Parse()
	if err != nil {
		return 0, fmt.Errorf("watchpoint: %w", err)
	}
	suffix := linearize(ast)

	res, err := Evaluate(suffix, p.regs)
	if err != nil {
		return 0, fmt.Errorf("watchpoint: %w", err)
	}

	idx := p.nodes[wpFree].next
	if idx == wpNone {
		return 0, fmt.Errorf("watchpoint pool full (max %d)", NRWP)
	}
	p.nodes[wpFree].next = p.nodes[idx].next

	p.nodes[idx].exprStr = src
	p.nodes[idx].suffix = suffix
	p.nodes[idx].res = res
	p.nodes[idx].oldRes = res
	p.insert(wpHead, idx)

	return p.nodes[idx].no, nil
}

// Free removes the watchpoint identified by no, releases its owned
// expression and postfix sequence, and returns the slot to the free
// list at its sorted position. no == -1 frees every active watchpoint.
func (p *WatchpointPool) Free(no int) error {
	if no == -1 {
		for p.nodes[wpHead].next != wpNone {
			idx := p.nodes[wpHead].next
			p.nodes[wpHead].next = p.nodes[idx].next
			p.release(idx)
		}
		return nil
	}

	prev := p.findPrev(wpHead, no)
	if prev == wpNone {
		return fmt.Errorf("no such watchpoint: %d", no)
	}
	idx := p.nodes[prev].next
	p.nodes[prev].next = p.nodes[idx].next
	p.release(idx)
	return nil
}

func (p *WatchpointPool) release(idx int) {
	p.nodes[idx].exprStr = ""
	p.nodes[idx].suffix = nil
	p.nodes[idx].res = 0
	p.nodes[idx].oldRes = 0
	p.insert(wpFree, idx)
}

// Display writes NO, source string, and current value for every active
// watchpoint in ascending NO order.
func (p *WatchpointPool) Display(w io.Writer) {
	for idx := p.nodes[wpHead].next; idx != wpNone; idx = p.nodes[idx].next {
		n := &p.nodes[idx]
		fmt.Fprintf(w, "watchpoint %d: %s = 0x%08x\n", n.no, n.exprStr, n.res)
	}
}

// Scan re-evaluates every active watchpoint's compiled postfix sequence
// against the current machine state. A per-watchpoint evaluation
// failure is reported and does not abort the scan of the remaining
// watchpoints. It reports a hit for each watchpoint whose value
// changed and returns true if any watchpoint hit, so the caller can
// transition a running emulator to stopped; Scan never changes which
// watchpoints are active.
func (p *WatchpointPool) Scan(w io.Writer, pc Word) bool {
	hit := false
	for idx := p.nodes[wpHead].next; idx != wpNone; idx = p.nodes[idx].next {
		n := &p.nodes[idx]
		newRes, err := Evaluate(n.suffix, p.regs)
		if err != nil {
			fmt.Fprintf(w, "watchpoint %d: evaluation error: %v\n", n.no, err)
			continue
		}
		n.res = newRes
		if newRes != n.oldRes {
			fmt.Fprintf(w, "watchpoint %d hit at pc=0x%08x: %s: 0x%08x -> 0x%08x\n",
				n.no, pc, n.exprStr, n.oldRes, newRes)
			n.oldRes = newRes
			hit = true
		}
	}
	return hit
}
