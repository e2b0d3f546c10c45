package token

import "fmt"

// TokenType is the lexical category of a Token.
type TokenType uint8

const (
	// Single-character tokens.
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FUNC
	FOR
	HAVE
	IF
	NIL
	OR
	PRINT
	RETURN
	TRUE
	VAR
	WHILE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FUNC:          "FUNC",
	FOR:           "FOR",
	HAVE:          "HAVE",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Keywords maps reserved words to their token types.
// The operator keywords "&&" and "||" live here too; the scanner looks them up
// after reading a doubled '&' or '|'.
var Keywords = map[string]TokenType{
	"var":   VAR,
	"for":   FOR,
	"have":  HAVE,
	"func":  FUNC,
	"else":  ELSE,
	"class": CLASS,
	"if":    IF,
	"&&":    AND,
	"||":    OR,
	"while": WHILE,
	"show":  PRINT,
	"ret":   RETURN,
	"null":  NIL,
	"true":  TRUE,
	"false": FALSE,
}

// Lookup returns the keyword type for text, if text is reserved.
func Lookup(text string) (TokenType, bool) {
	t, ok := Keywords[text]
	return t, ok
}

var _ fmt.Stringer = TokenType(0)
