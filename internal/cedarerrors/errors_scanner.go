package cedarerrors

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	ErrUnexpectedEndOfString = errors.NewKind(`Unexpected end of string. Expected '"'.`)
	ErrUnexpectedCharacter   = errors.NewKind("Unexpected character %q.")
	ErrInvalidFloatingPoint  = errors.NewKind("Floating point should have a digit after it.")
	ErrInvalidNumber         = errors.NewKind("Invalid number '%s'.")
)

// NewLexerError builds a lexer diagnostic. The scanner's character buffer is
// kept so the offending line can be rendered later.
func NewLexerError(line, column int, fileName string, source []rune, cause *errors.Error) *Diagnostic {
	d := newDiagnostic(StageLexer, line, column, cause)
	d.FileName = fileName
	d.Source = source
	return d
}
