package parser

import (
	"fmt"

	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/leonardinius/cedar/internal/cedarerrors"
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
)

var (
	nilExpr       Expr   = nil
	nilStmt       Stmt   = nil
	nilStatements []Stmt = nil
)

type Parser interface {
	// Parse returns the program statements, or the first syntax error.
	// No statements are returned when any error was found.
	Parse() ([]Stmt, error)

	// Errors returns every syntax error found by the last Parse, in source
	// order. Errors after the first are found by resynchronizing at the next
	// statement boundary.
	Errors() []error
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
	errs    []error
	log     *logrus.Entry
}

type Option func(*parser)

// WithLogger sets the entry parser logs are written through.
func WithLogger(log *logrus.Entry) Option {
	return func(p *parser) {
		p.log = log
	}
}

func NewParser(tokens []token.Token, options ...Option) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	p := &parser{
		tokens:  tokens,
		current: 0,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range options {
		opt(p)
	}
	p.log = p.log.WithField("component", "parser")
	return p
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, errs: %d}", len(p.tokens), len(p.errs))
}

// Parse implements Parser.
func (p *parser) Parse() ([]Stmt, error) {
	p.current, p.err, p.errs = 0, nil, nil

	var statements []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nilStmt {
			statements = append(statements, stmt)
		}
	}

	if len(p.errs) == 0 {
		return statements, nil
	}

	if len(p.errs) > 1 {
		p.log.WithField("errors", len(p.errs)).Debug("further syntax errors found after synchronization")
	}

	// if we are at error state, we do not return invalid ast tree
	return nilStatements, p.errs[0]
}

// Errors implements Parser.
func (p *parser) Errors() []error {
	return p.errs
}

// declaration parses one declaration. On a syntax error it records the
// error, skips to the next statement boundary and returns nil.
func (p *parser) declaration() Stmt {
	var stmt Stmt
	if p.match(token.VAR) {
		stmt = p.varDeclaration()
	} else {
		stmt = p.statement()
	}

	if p.err != nil {
		p.errs = append(p.errs, p.err)
		p.synchronize()
		p.err = nil
		return nilStmt
	}

	return stmt
}

func (p *parser) varDeclaration() Stmt {
	name, ok := p.consume(token.IDENTIFIER, "variable name")
	if !ok {
		return nilStmt
	}

	var initializer = nilExpr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if _, ok := p.consume(token.SEMICOLON, `";" after variable declaration`); !ok {
		return nilStmt
	}

	return &StmtVar{Name: name, Initializer: initializer}
}

func (p *parser) statement() Stmt {
	if p.match(token.PRINT) {
		return p.printStatement()
	}

	return p.expressionStatement()
}

func (p *parser) printStatement() Stmt {
	expr := p.expression()

	if _, ok := p.consume(token.SEMICOLON, `";" after value`); !ok {
		return nilStmt
	}

	return &StmtPrint{Expression: expr}
}

func (p *parser) expressionStatement() Stmt {
	expr := p.expression()

	if _, ok := p.consume(token.SEMICOLON, `";" after expression`); !ok {
		return nilStmt
	}

	return &StmtExpression{Expression: expr}
}

func (p *parser) expression() Expr {
	return p.equality()
}

func (p *parser) equality() Expr {
	expr := p.comparison()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = p.binary(expr, operator, right)
	}

	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()

	for p.anyMatch(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = p.binary(expr, operator, right)
	}

	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = p.binary(expr, operator, right)
	}

	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = p.binary(expr, operator, right)
	}

	return expr
}

// binary folds a new node unless an operand failed, so no node is ever
// built with a missing child.
func (p *parser) binary(left Expr, operator token.Token, right Expr) Expr {
	if p.err != nil {
		return nilExpr
	}
	return &ExprBinary{Left: left, Operator: operator, Right: right}
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		if p.err != nil {
			return nilExpr
		}
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: value.False}
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: value.True}
	}
	if p.match(token.NIL) {
		return &ExprLiteral{Value: value.Nil}
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		return &ExprLiteral{Value: p.previous().Literal}
	}

	if p.match(token.IDENTIFIER) {
		return &ExprVariable{Name: p.previous()}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if _, ok := p.consume(token.RIGHT_PAREN, `")" after expression`); !ok {
			return nilExpr
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(cedarerrors.ErrUnexpectedToken.New(p.peek().Describe()))
}

// consume advances over the expected token type or records an error at the
// actual token.
func (p *parser) consume(tokenType token.TokenType, expected string) (token.Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}

	if p.err == nil {
		p.reportExprError(cedarerrors.ErrExpectedToken.New(expected, p.peek().Describe()))
	}
	return token.Token{}, false
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be careful with isAtEnd, it does not check for parse errors.
// Use isDone instead.
// isAtEnd is used from top level Parse, synchronize and advance only.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(cause *errors.Error) Expr {
	if p.err != nil {
		return nilExpr
	}
	tok := p.peek()
	p.err = cedarerrors.NewSyntaxError(&tok, cause)
	return nilExpr
}

// synchronize discards tokens until the start of the next statement: just
// past a ';', or before a statement-introducing keyword.
func (p *parser) synchronize() {
	from := p.current
	p.advance()

	defer func() {
		p.log.WithFields(logrus.Fields{
			"from": from,
			"to":   p.current,
		}).Debug("synchronized after syntax error")
	}()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUNC,
			token.VAR,
			token.HAVE,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
