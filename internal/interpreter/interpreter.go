package interpreter

import (
	"fmt"

	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/leonardinius/cedar/internal/cedarerrors"
	"github.com/leonardinius/cedar/internal/parser"
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
)

type Interpreter interface {
	// Interpret executes the statements in order.
	// It stops at the first runtime error, which is returned as a
	// *cedarerrors.Diagnostic positioned at the failing operator.
	//
	// Not thread safe.
	Interpret(statements []parser.Stmt) error

	// Evaluate evaluates the given expression.
	// The returned value is never the arithmetic error sentinel.
	//
	// Not thread safe.
	Evaluate(expr parser.Expr) (value.Value, error)
}

type interpreter struct {
	*interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{interpreterOpts: newInterpreterOpts(options...)}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (value.Value, error) {
	return i.evaluate(expr)
}

func (i *interpreter) execute(stmt parser.Stmt) error {
	switch stmt := stmt.(type) {
	case *parser.StmtExpression:
		_, err := i.evaluate(stmt.Expression)
		return err
	case *parser.StmtPrint:
		v, err := i.evaluate(stmt.Expression)
		if err != nil {
			return err
		}
		return i.print(v)
	case *parser.StmtVar:
		return i.declare(stmt)
	}

	return i.unreachable(stmt)
}

func (i *interpreter) print(v value.Value) error {
	_, err := fmt.Fprintln(i.stdout, value.Display(v))
	return err
}

// declare evaluates the initializer for its errors. The value is dropped:
// there is no environment to hold it.
func (i *interpreter) declare(stmt *parser.StmtVar) error {
	v := value.Nil
	if stmt.Initializer != nil {
		var err error
		if v, err = i.evaluate(stmt.Initializer); err != nil {
			return err
		}
	}

	i.log.WithFields(logrus.Fields{
		"name":  stmt.Name.Lexeme,
		"line":  stmt.Name.Line,
		"value": value.Display(v),
	}).Debug("variable declared, value not stored")
	return nil
}

func (i *interpreter) evaluate(expr parser.Expr) (value.Value, error) {
	switch expr := expr.(type) {
	case *parser.ExprLiteral:
		if expr.Value == nil {
			return value.Nil, nil
		}
		return expr.Value, nil
	case *parser.ExprGrouping:
		return i.evaluate(expr.Expression)
	case *parser.ExprVariable:
		return value.Nil, nil
	case *parser.ExprUnary:
		return i.unary(expr)
	case *parser.ExprBinary:
		return i.binary(expr)
	}

	return nil, i.unreachable(expr)
}

func (i *interpreter) unary(expr *parser.ExprUnary) (value.Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		result := value.Negate(right)
		if _, ok := value.IsArithmeticError(result); ok {
			return nil, i.runtimeError(expr.Operator, cedarerrors.ErrOperandNaN.New())
		}
		return result, nil
	case token.BANG:
		return value.Not(right), nil
	}

	return nil, i.runtimeError(expr.Operator, cedarerrors.ErrInvalidUnary.New())
}

var binaryOperators = map[token.TokenType]func(a, b value.Value) value.Value{
	token.MINUS:         value.Subtract,
	token.SLASH:         value.Divide,
	token.STAR:          value.Multiply,
	token.PLUS:          value.Add,
	token.GREATER:       value.Greater,
	token.GREATER_EQUAL: value.GreaterEqual,
	token.LESS:          value.Less,
	token.LESS_EQUAL:    value.LessEqual,
	token.EQUAL_EQUAL:   value.Equal,
	token.BANG_EQUAL:    value.NotEqual,
}

func (i *interpreter) binary(expr *parser.ExprBinary) (value.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	apply, ok := binaryOperators[expr.Operator.Type]
	if !ok {
		return nil, i.runtimeError(expr.Operator, cedarerrors.ErrInvalidOperation.New(expr.Operator.Lexeme))
	}

	result := apply(left, right)
	if failure, ok := value.IsArithmeticError(result); ok {
		return nil, i.arithmeticError(expr.Operator, failure)
	}
	return result, nil
}

func (i *interpreter) arithmeticError(operator token.Token, failure value.ArithmeticError) error {
	var cause *errors.Error
	switch failure.Reason {
	case value.DivisionByZero:
		cause = cedarerrors.ErrDivisionByZero.New()
	case value.InvalidOperands:
		cause = cedarerrors.ErrInvalidOperands.New(operator.Lexeme)
	default:
		cause = cedarerrors.ErrOperandsNaN.New(operator.Lexeme)
	}
	return i.runtimeError(operator, cause)
}

func (i *interpreter) runtimeError(tok token.Token, cause *errors.Error) error {
	i.log.WithFields(logrus.Fields{
		"operator": tok.Lexeme,
		"line":     tok.Line,
		"column":   tok.Column,
	}).Debug(cause.Error())
	return cedarerrors.NewRuntimeError(&tok, cause)
}

func (i *interpreter) unreachable(node any) error {
	panic(fmt.Sprintf("unreachable: unexpected node %T", node))
}

var _ Interpreter = (*interpreter)(nil)
