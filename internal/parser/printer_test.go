package parser_test

import (
	"testing"

	"github.com/leonardinius/cedar/internal/parser"
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
	"github.com/stretchr/testify/assert"
)

func testTree() parser.Expr {
	return &parser.ExprBinary{
		Left: &parser.ExprUnary{
			Operator: token.NewToken(token.MINUS, "-", value.Nil, 1, 1),
			Right: &parser.ExprLiteral{
				Value: value.Number(123),
			},
		},
		Operator: token.NewToken(token.STAR, "*", value.Nil, 1, 6),
		Right: &parser.ExprGrouping{
			Expression: &parser.ExprLiteral{
				Value: value.Number(45.67),
			},
		}}
}

func TestAstPrinter(t *testing.T) {
	p := parser.NewAstPrinter()
	assert.Equal(t, "(* (- 123) (group 45.67))", p.Print(testTree()))
}

func TestAstPrinterStatements(t *testing.T) {
	p := parser.NewAstPrinter()
	name := token.NewToken(token.IDENTIFIER, "a", value.Nil, 1, 5)

	assert.Equal(t, `(show "x")`, p.PrintStmt(&parser.StmtPrint{Expression: &parser.ExprLiteral{Value: value.String("x")}}))
	assert.Equal(t, "(; a)", p.PrintStmt(&parser.StmtExpression{Expression: &parser.ExprVariable{Name: name}}))
	assert.Equal(t, "(var a)", p.PrintStmt(&parser.StmtVar{Name: name}))
	assert.Equal(t, "(var a null)", p.PrintStmt(&parser.StmtVar{Name: name, Initializer: &parser.ExprLiteral{Value: value.Nil}}))
}

func TestRPNPrinter(t *testing.T) {
	p := parser.NewRPNPrinter()
	assert.Equal(t, "123 ~ 45.67 *", p.Print(testTree()))

	tree := &parser.ExprBinary{
		Left: &parser.ExprGrouping{Expression: &parser.ExprBinary{
			Left:     &parser.ExprLiteral{Value: value.Number(1)},
			Operator: token.NewToken(token.PLUS, "+", value.Nil, 1, 4),
			Right:    &parser.ExprLiteral{Value: value.Number(2)},
		}},
		Operator: token.NewToken(token.STAR, "*", value.Nil, 1, 9),
		Right: &parser.ExprUnary{
			Operator: token.NewToken(token.BANG, "!", value.Nil, 1, 11),
			Right:    &parser.ExprVariable{Name: token.NewToken(token.IDENTIFIER, "x", value.Nil, 1, 12)},
		},
	}
	assert.Equal(t, "1 2 + x ! *", p.Print(tree))

	name := token.NewToken(token.IDENTIFIER, "a", value.Nil, 1, 5)
	assert.Equal(t, "1 2 + x ! * show", p.PrintStmt(&parser.StmtPrint{Expression: tree}))
	assert.Equal(t, "a ;", p.PrintStmt(&parser.StmtExpression{Expression: &parser.ExprVariable{Name: name}}))
	assert.Equal(t, "a var", p.PrintStmt(&parser.StmtVar{Name: name}))
	assert.Equal(t, `"x" a var`, p.PrintStmt(&parser.StmtVar{Name: name, Initializer: &parser.ExprLiteral{Value: value.String("x")}}))
}
