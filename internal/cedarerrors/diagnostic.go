package cedarerrors

import (
	"fmt"
	"io"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

type Stage uint8

const (
	StageLexer Stage = iota
	StageSyntax
	StageRuntime
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lexer"
	case StageSyntax:
		return "syntax"
	case StageRuntime:
		return "runtime"
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// mainMessages holds the short, stable message of every error kind.
var mainMessages = []struct {
	kind *errors.Kind
	msg  string
}{
	{ErrUnexpectedEndOfString, "error[E2502] Unexpected end of string"},
	{ErrUnexpectedCharacter, "error[E2503] Unexpected character"},
	{ErrInvalidFloatingPoint, "error[E2504] Invalid floating point"},
	{ErrInvalidNumber, "error[E2505] Invalid number"},
	{ErrUnexpectedToken, "error[E3501] Unexpected token"},
	{ErrExpectedToken, "error[E3502] Expected token"},
	{ErrOperandNaN, "error[E3503] Operand must be a number"},
	{ErrInvalidUnary, "error[E3504] Invalid unary expression"},
	{ErrOperandsNaN, "error[E4501] Operands must be numbers"},
	{ErrInvalidOperands, "error[E4502] Invalid operands"},
	{ErrDivisionByZero, "error[E4503] Division by zero"},
	{ErrInvalidOperation, "error[E4504] Invalid operator"},
}

func mainMessage(stage Stage, cause *errors.Error) string {
	for _, m := range mainMessages {
		if m.kind.Is(cause) {
			return m.msg
		}
	}
	return stage.String() + " error"
}

// Diagnostic is an error tied to a position in a source file.
type Diagnostic struct {
	Stage       Stage
	Line        int
	Column      int
	MainMessage string
	Message     string
	FileName    string
	Source      []rune
	Cause       *errors.Error
}

func newDiagnostic(stage Stage, line, column int, cause *errors.Error) *Diagnostic {
	return &Diagnostic{
		Stage:       stage,
		Line:        line,
		Column:      column,
		MainMessage: mainMessage(stage, cause),
		Message:     cause.Error(),
		Cause:       cause,
	}
}

// Error implements error. It is the header line of the rendered form.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%s]->%d:%d::%s, %s", d.FileName, d.Line, d.Column, d.MainMessage, d.Message)
}

func (d *Diagnostic) Unwrap() error {
	if d.Cause == nil {
		return nil
	}
	return d.Cause
}

// IsKind reports whether the diagnostic was raised for the given kind.
func (d *Diagnostic) IsKind(kind *errors.Kind) bool {
	return kind.Is(d.Cause)
}

// WithSource returns a copy carrying fileName and source, unless the
// diagnostic already has its own (lexer errors do).
func (d *Diagnostic) WithSource(fileName string, source []rune) *Diagnostic {
	dd := *d
	if dd.FileName == "" {
		dd.FileName = fileName
	}
	if dd.Source == nil {
		dd.Source = source
	}
	return &dd
}

// Render writes the header followed by the previous, offending and next
// source lines, with a caret under the offending column.
func (d *Diagnostic) Render(w io.Writer) error {
	out := new(strings.Builder)
	_, _ = fmt.Fprintln(out, d.Error())

	lines := d.lines()
	if d.Line >= 1 && d.Line <= len(lines) {
		_, _ = out.WriteString("\n")
		if d.Line > 1 {
			_, _ = fmt.Fprintln(out, numbered(d.Line-1, lines[d.Line-2]))
		}
		offending := numbered(d.Line, lines[d.Line-1])
		_, _ = fmt.Fprintln(out, offending)
		_, _ = fmt.Fprintln(out, caret(len(offending)-len(lines[d.Line-1]), lines[d.Line-1], d.Column))
		if d.Line < len(lines) {
			_, _ = fmt.Fprintln(out, numbered(d.Line+1, lines[d.Line]))
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func (d *Diagnostic) lines() []string {
	if len(d.Source) == 0 {
		return nil
	}
	lines := strings.Split(string(d.Source), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func numbered(n int, text string) string {
	return fmt.Sprintf("%02d | %s", n, text)
}

// caret keeps tabs of the source line so the marker lines up in a terminal.
func caret(indent int, line string, column int) string {
	b := new(strings.Builder)
	_, _ = b.WriteString(strings.Repeat(" ", indent))
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			_, _ = b.WriteRune('\t')
		} else {
			_, _ = b.WriteRune(' ')
		}
	}
	if n := column - 1 - len([]rune(line)); n > 0 {
		_, _ = b.WriteString(strings.Repeat(" ", n))
	}
	_, _ = b.WriteRune('^')
	return b.String()
}

var _ error = (*Diagnostic)(nil)
var _ unwrapInterface = (*Diagnostic)(nil)
