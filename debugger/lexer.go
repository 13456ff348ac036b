package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// Collaborator is the narrow boundary between the expression
// engine and the rest of the emulator: register name resolution and
// bounds-checked memory reads.
type Collaborator interface {
	// ResolveRegister resolves a register name (without the leading '$')
	// to its current value. ok is false for an unknown name.
	ResolveRegister(name string) (value Word, ok bool)
	// ReadWord reads WordSizeBytes bytes at addr. Callers must inspect OOB()
	// after calling this.
	ReadWord(addr Word) Word
	// ClearOOB clears the sticky out-of-bounds flag. Called once at the
	// start of every evaluation.
	ClearOOB()
	// OOB reports whether a read since the last ClearOOB went out of
	// bounds.
	OOB() bool
}

// LexError reports a lexing failure with a caret pointing at the
// offending offset.
type LexError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s\n%s\n%s^", e.Msg, e.Input, strings.Repeat(" ", e.Pos))
}

// Lexer tokenises a debugger expression string. Rule order matters:
// multi-character operators are tried before their single-character
// prefixes so the first matching rule is always the longest match.
type Lexer struct {
	input string
	pos   int
	regs  Collaborator
}

// NewLexer creates a lexer over input, validating register references
// against regs.
func NewLexer(input string, regs Collaborator) *Lexer {
	return &Lexer{input: input, regs: regs}
}

func (l *Lexer) errorAt(pos int, msg string) *LexError {
	return &LexError{Input: l.input, Pos: pos, Msg: msg}
}

func (l *Lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isWordChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// Lex tokenises the entire input, returning tokens terminated by exactly
// one TokEnd, or a *LexError.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
			l.pos++
		}
		if l.pos >= len(l.input) {
			break
		}

		start := l.pos
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, l.errorAt(start, "no token matches here")
		}
		tokens = append(tokens, *tok)
	}
	tokens = append(tokens, newToken(TokEnd, "end"))
	return tokens, nil
}

// next recognises exactly one token at the current position, or returns
// (nil, nil) if nothing matches.
func (l *Lexer) next() (*Token, error) {
	start := l.pos
	c := l.input[l.pos]

	// Multi-character operators first, so they win over single-character
	// prefixes (e.g. "==" before "=", "s>>" before "s>" before ">").
	for _, rule := range multiCharRules {
		if strings.HasPrefix(l.input[l.pos:], rule.text) {
			l.pos += len(rule.text)
			tok := newToken(rule.kind, rule.text)
			return &tok, nil
		}
	}

	switch {
	case c == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X'):
		return l.lexHex(start)
	case isDigit(c):
		return l.lexDecimal(start)
	case c == '$':
		return l.lexRegister(start)
	default:
		for _, rule := range singleCharRules {
			if c == rule.char {
				l.pos++
				tok := newToken(rule.kind, string(rule.char))
				return &tok, nil
			}
		}
	}
	return nil, nil
}

func (l *Lexer) lexHex(start int) (*Token, error) {
	l.pos += 2 // consume 0x/0X
	digitsStart := l.pos
	for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == digitsStart {
		return nil, l.errorAt(start, "malformed hex literal")
	}
	text := l.input[start:l.pos]
	val, err := strconv.ParseUint(text[2:], 16, 32)
	if err != nil {
		return nil, l.errorAt(start, fmt.Sprintf("number overflows word: %s", text))
	}
	tok := newToken(TokNum, text)
	tok.Num = Word(val)
	return &tok, nil
}

func (l *Lexer) lexDecimal(start int) (*Token, error) {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	text := l.input[start:l.pos]
	val, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return nil, l.errorAt(start, fmt.Sprintf("number overflows word: %s", text))
	}
	tok := newToken(TokNum, text)
	tok.Num = Word(val)
	return &tok, nil
}

func (l *Lexer) lexRegister(start int) (*Token, error) {
	l.pos++ // consume '$'
	nameStart := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == nameStart {
		return nil, l.errorAt(start, "expected register name after '$'")
	}
	name := l.input[nameStart:l.pos]
	full := l.input[start:l.pos]
	if len(full) >= MaxTokenName {
		return nil, l.errorAt(start, fmt.Sprintf("register token too long: %s", full))
	}
	if _, ok := l.regs.ResolveRegister(name); !ok {
		return nil, l.errorAt(start, fmt.Sprintf("unknown register name: %s", name))
	}
	tok := newToken(TokReg, full)
	return &tok, nil
}

type charRule struct {
	char byte
	kind TokenKind
}

type stringRule struct {
	text string
	kind TokenKind
}

// singleCharRules covers the one-character operators and parens.
var singleCharRules = []charRule{
	{'+', TokPlus}, {'-', TokMinus}, {'*', TokStar}, {'/', TokSlash},
	{'%', TokPercent}, {'!', TokBang}, {'~', TokTilde},
	{'&', TokAnd}, {'|', TokOr}, {'^', TokXor},
	{'<', TokLt}, {'>', TokGt}, {'(', TokLParen}, {')', TokRParen},
}

// multiCharRules is ordered longest-first within each prefix family so a
// left-anchored scan always finds the longest match: "s>=" and "s>>"
// must be tried before "s>", "<=" before "<", and so on.
var multiCharRules = []stringRule{
	{"==", TokEq}, {"!=", TokNe},
	{"&&", TokLand}, {"||", TokLor},
	{"<<", TokShl},
	{"s>>", TokSShr}, {">>", TokShr},
	{"s<=", TokLeS}, {"s>=", TokGeS},
	{"s<", TokLtS}, {"s>", TokGtS},
	{"<=", TokLeU}, {">=", TokGeU},
}
