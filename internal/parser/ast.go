package parser

import (
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
)

// Expr is a closed set of expression nodes. Consumers switch over the
// concrete types; every node owns its children.
type Expr interface {
	expr()
}

// Stmt is a closed set of statement nodes.
type Stmt interface {
	stmt()
}

type ExprBinary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

type ExprLiteral struct {
	Value value.Value
}

type ExprUnary struct {
	Operator token.Token
	Right    Expr
}

// ExprVariable refers to a name. There is no environment yet, so it
// evaluates to null.
type ExprVariable struct {
	Name token.Token
}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

type StmtVar struct {
	Name token.Token
	// Initializer is nil when the declaration has none.
	Initializer Expr
}

func (*ExprBinary) expr()   {}
func (*ExprGrouping) expr() {}
func (*ExprLiteral) expr()  {}
func (*ExprUnary) expr()    {}
func (*ExprVariable) expr() {}

func (*StmtExpression) stmt() {}
func (*StmtPrint) stmt()      {}
func (*StmtVar) stmt()        {}

var (
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprVariable)(nil)
	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtVar)(nil)
)
