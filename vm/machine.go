// Package vm is the narrow external collaborator the debugger expression
// engine depends on: a register file and a virtual address space. It
// deliberately does not implement instruction decode or execution; only
// the two interfaces the expression engine consumes live here.
package vm

// Machine bundles the register file and memory the expression engine
// reads. It is the concrete type satisfying debugger.Collaborator.
type Machine struct {
	Regs   *Registers
	Memory *Memory
}

// NewMachine builds a machine with a zeroed register file and the
// standard segment layout.
func NewMachine() *Machine {
	return &Machine{
		Regs:   NewRegisters(),
		Memory: NewMemory(),
	}
}

// ResolveRegister implements debugger.Collaborator.
func (m *Machine) ResolveRegister(name string) (Word, bool) {
	return m.Regs.Resolve(name)
}

// ReadWord implements debugger.Collaborator. Out-of-bounds reads are
// reported via m.Memory.OOB(), not a return value.
func (m *Machine) ReadWord(addr Word) Word {
	return m.Memory.ReadWord(addr)
}

// ClearOOB implements debugger.Collaborator.
func (m *Machine) ClearOOB() {
	m.Memory.ClearOOB()
}

// OOB implements debugger.Collaborator.
func (m *Machine) OOB() bool {
	return m.Memory.OOB()
}
