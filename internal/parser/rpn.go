package parser

import (
	"fmt"
	"strings"

	"github.com/leonardinius/cedar/internal/token"
)

// RPNPrinter renders expressions in reverse Polish notation. Unary minus is
// written as "~" to tell it apart from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *ExprBinary:
		return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *ExprGrouping:
		return p.reverse("", expr.Expression)
	case *ExprLiteral:
		return fmt.Sprintf("%#v", expr.Value)
	case *ExprUnary:
		operator := expr.Operator.Lexeme
		if expr.Operator.Type == token.MINUS {
			operator = "~"
		}
		return p.reverse(operator, expr.Right)
	case *ExprVariable:
		return expr.Name.Lexeme
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (p *RPNPrinter) PrintStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *StmtExpression:
		return p.reverse(";", stmt.Expression)
	case *StmtPrint:
		return p.reverse("show", stmt.Expression)
	case *StmtVar:
		if stmt.Initializer == nil {
			return stmt.Name.Lexeme + " var"
		}
		return p.reverse(stmt.Name.Lexeme+" var", stmt.Initializer)
	}
	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(p.Print(expr))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return strings.TrimSuffix(out.String(), " ")
}
