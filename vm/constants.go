package vm

// Word is the machine integer type of the emulated ISA. Fixed at 32 bits
// to match the RISC-V32 register set.
type Word = uint32

// SWord is Word reinterpreted as two's-complement signed, used for the
// signed comparison and arithmetic-shift operators.
type SWord = int32

// WordSize is the byte width of a Word, and the unit a memory
// dereference (unary '*') reads.
const WordSize = 4

// Memory segments, sized generously enough for hand-written watch/print
// test programs.
const (
	CodeSegmentStart  = 0x00008000
	CodeSegmentSize   = 0x00010000
	DataSegmentStart  = 0x00020000
	DataSegmentSize   = 0x00010000
	HeapSegmentStart  = 0x00030000
	HeapSegmentSize   = 0x00010000
	StackSegmentStart = 0x00040000
	StackSegmentSize  = 0x00010000
)
