package cedarerrors

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/leonardinius/cedar/internal/token"
)

var (
	ErrUnexpectedToken = errors.NewKind(`Unexpected Token: Token "%s".`)
	ErrExpectedToken   = errors.NewKind(`Expected Token %s, got "%s".`)
	ErrOperandNaN      = errors.NewKind("Operand must be a number.")
	ErrInvalidUnary    = errors.NewKind("Invalid unary expression.")
)

// NewSyntaxError builds a syntax diagnostic positioned at tok.
func NewSyntaxError(tok *token.Token, cause *errors.Error) *Diagnostic {
	return newDiagnostic(StageSyntax, tok.Line, tok.Column, cause)
}
