package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders trees in a fully parenthesized prefix form,
// e.g. "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *ExprBinary:
		return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
	case *ExprGrouping:
		return p.parenthesize("group", expr.Expression)
	case *ExprLiteral:
		return fmt.Sprintf("%#v", expr.Value)
	case *ExprUnary:
		return p.parenthesize(expr.Operator.Lexeme, expr.Right)
	case *ExprVariable:
		return expr.Name.Lexeme
	case nil:
		return "<nil>"
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *StmtExpression:
		return p.parenthesize(";", stmt.Expression)
	case *StmtPrint:
		return p.parenthesize("show", stmt.Expression)
	case *StmtVar:
		if stmt.Initializer == nil {
			return "(var " + stmt.Name.Lexeme + ")"
		}
		return p.parenthesize("var "+stmt.Name.Lexeme, stmt.Initializer)
	}
	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.Print(expr))
	}
	_, _ = out.WriteString(")")
	return out.String()
}
