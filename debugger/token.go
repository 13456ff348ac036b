package debugger

import "fmt"

// Word is the machine integer type of the emulated ISA, fixed here at
// 32 bits. SWord is the same bit pattern reinterpreted as
// two's-complement signed.
type Word = uint32

// SWord is Word reinterpreted as signed, used by the arithmetic-shift and
// signed-comparison operators.
type SWord = int32

// TokenKind is the closed enumeration of token tags.
type TokenKind int

const (
	TokEnd TokenKind = iota
	TokNum
	TokReg

	// Single-character operators and punctuation.
	TokPlus    // +
	TokMinus   // -
	TokStar    // * (binary multiply or unary dereference)
	TokSlash   // /
	TokPercent // %
	TokBang    // !
	TokTilde   // ~
	TokAnd     // &
	TokOr      // |
	TokXor     // ^
	TokLt      // <
	TokGt      // >
	TokLParen  // (
	TokRParen  // )

	// Multi-character operators.
	TokEq    // ==
	TokNe    // !=
	TokLand  // &&
	TokLor   // ||
	TokShl   // <<
	TokShr   // >> (logical)
	TokSShr  // s>> (arithmetic)
	TokLeU   // <=  ("less or equal unsigned")
	TokGeU   // >=  ("greater or equal unsigned")
	TokLtS   // s<
	TokGtS   // s>
	TokLeS   // s<=
	TokGeS   // s>=
)

// Token is a tagged record produced by the lexer and consumed by the
// parser/evaluator.
type Token struct {
	Kind  TokenKind
	Name  [MaxTokenName]byte // short textual name, for diagnostics
	NameN int                // valid length of Name
	Unary bool               // meaningful only for + - * ! ~; parser sets this, never the lexer
	Num   Word               // value payload, valid only when Kind == TokNum
}

// text returns the token's diagnostic name as a string.
func (t Token) text() string {
	return string(t.Name[:t.NameN])
}

func newToken(kind TokenKind, name string) Token {
	var tok Token
	tok.Kind = kind
	n := copy(tok.Name[:], name)
	tok.NameN = n
	return tok
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

var tokenKindNames = map[TokenKind]string{
	TokEnd: "END", TokNum: "NUM", TokReg: "REG",
	TokPlus: "+", TokMinus: "-", TokStar: "*", TokSlash: "/", TokPercent: "%",
	TokBang: "!", TokTilde: "~", TokAnd: "&", TokOr: "|", TokXor: "^",
	TokLt: "<", TokGt: ">", TokLParen: "(", TokRParen: ")",
	TokEq: "==", TokNe: "!=", TokLand: "&&", TokLor: "||",
	TokShl: "<<", TokShr: ">>", TokSShr: "s>>",
	TokLeU: "<=", TokGeU: ">=", TokLtS: "s<", TokGtS: "s>", TokLeS: "s<=", TokGeS: "s>=",
}
