package cedarerrors

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/leonardinius/cedar/internal/token"
)

var (
	ErrOperandsNaN      = errors.NewKind(`Operands of "%s" must be numbers.`)
	ErrInvalidOperands  = errors.NewKind(`Operands of "%s" must be two numbers or two strings.`)
	ErrDivisionByZero   = errors.NewKind("Division by zero.")
	ErrInvalidOperation = errors.NewKind(`Invalid operator "%s".`)
)

// NewRuntimeError builds a diagnostic for a failure while evaluating the node
// that owns tok.
func NewRuntimeError(tok *token.Token, cause *errors.Error) *Diagnostic {
	return newDiagnostic(StageRuntime, tok.Line, tok.Column, cause)
}
