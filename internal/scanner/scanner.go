package scanner

import (
	"strconv"

	"github.com/sirupsen/logrus"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/leonardinius/cedar/internal/cedarerrors"
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
)

// Scanner turns source text into tokens.
type Scanner interface {
	// Scan returns the tokens of the whole input, always terminated by EOF.
	// Scanning stops at the first lexer error, which is returned as a
	// *cedarerrors.Diagnostic.
	Scan() ([]token.Token, error)
}

type scanner struct {
	source   []rune
	fileName string
	tokens   []token.Token

	start, current int
	// line and column of source[current].
	line, column int
	// line and column of source[start].
	startLine, startColumn int

	err error
	log *logrus.Entry
}

type Option func(*scanner)

// WithLogger sets the entry scanner logs are written through.
func WithLogger(log *logrus.Entry) Option {
	return func(s *scanner) {
		s.log = log
	}
}

// NewScanner returns a new Scanner. fileName is only used in diagnostics.
func NewScanner(input, fileName string, options ...Option) Scanner {
	s := &scanner{
		source:   []rune(input),
		fileName: fileName,
		line:     1,
		column:   1,
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range options {
		opt(s)
	}
	s.log = s.log.WithFields(logrus.Fields{"component": "scanner", "file": fileName})
	return s
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.startLine, s.startColumn = s.line, s.column
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", value.Nil, s.line, s.column))

	s.log.WithFields(logrus.Fields{
		"tokens": len(s.tokens),
		"failed": s.hasErr(),
	}).Debug("scan finished")

	return s.tokens, s.err
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '&', '|':
		s.operatorKeyword(c)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	case '"':
		s.string()
	default:
		if s.isDigit(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, value.Nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal value.Value) {
	lexeme := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.NewToken(t, lexeme, literal, s.startLine, s.startColumn))
}

// operatorKeyword scans "&&" and "||", which are keywords rather than
// punctuation.
func (s *scanner) operatorKeyword(c rune) {
	if !s.match(c) {
		s.reportUnexpectedCharacter(c)
		return
	}

	tokenType, ok := s.reserved(string(s.source[s.start:s.current]))
	if !ok {
		s.reportUnexpectedCharacter(c)
		return
	}
	s.addToken(tokenType)
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// string scans up to the matching unescaped '"'. The literal is the exact
// enclosed text, escapes included.
func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\\' && s.current+1 < len(s.source) {
			s.advance()
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reportErrorAt(s.startLine, s.startColumn, cedarerrors.ErrUnexpectedEndOfString.New())
		return
	}

	// The closing ".
	s.advance()

	text := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, value.String(string(text)))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' {
		if !s.isDigit(s.peekNext()) {
			s.reportErrorAt(s.line, s.column, cedarerrors.ErrInvalidFloatingPoint.New())
			return
		}

		// Consume the ".".
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := string(s.source[s.start:s.current])
	number, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.reportErrorAt(s.startLine, s.startColumn, cedarerrors.ErrInvalidNumber.New(svalue))
		return
	}
	s.addTokenLiteral(token.NUMBER, value.Number(number))
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := string(s.source[s.start:s.current])
	if _type, ok := s.reserved(name); ok {
		tokenType = _type
	}
	s.addToken(tokenType)
}

func (s *scanner) reserved(identifier string) (tokenType token.TokenType, ok bool) {
	return token.Lookup(identifier)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.reportErrorAt(s.startLine, s.startColumn, cedarerrors.ErrUnexpectedCharacter.New(c))
}

func (s *scanner) reportErrorAt(line, column int, cause *errors.Error) {
	s.err = cedarerrors.NewLexerError(line, column, s.fileName, s.source, cause)
}

var _ Scanner = (*scanner)(nil)
