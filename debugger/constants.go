package debugger

// NRWP is the watchpoint pool capacity.
const NRWP = 32

// MaxTokenName bounds the textual name stored in a Token, used for error
// messages.
const MaxTokenName = 32

// WordSizeBytes is the width in bytes of a machine Word, used by the
// examine command to step between consecutive addresses.
const WordSizeBytes = 4
