package token

import (
	"fmt"

	"github.com/leonardinius/cedar/internal/value"
)

// Token represents a lexical token.
// Line and Column are 1-based and point at the first character of the lexeme.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal value.Value
	Line    int
	Column  int
}

func NewToken(t TokenType, lexeme string, literal value.Value, line, column int) Token {
	if literal == nil {
		literal = value.Nil
	}
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

func NewTokenHeap(t TokenType, lexeme string, literal value.Value, line, column int) *Token {
	tt := NewToken(t, lexeme, literal, line, column)
	return &tt
}

// Describe returns the lexeme as shown in diagnostics.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Lexeme
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d, Column: %d}", t.Type, t.Lexeme, t.Literal, t.Line, t.Column)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
