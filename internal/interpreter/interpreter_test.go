package interpreter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leonardinius/cedar/internal/cedarerrors"
	"github.com/leonardinius/cedar/internal/interpreter"
	"github.com/leonardinius/cedar/internal/parser"
	"github.com/leonardinius/cedar/internal/scanner"
	"github.com/leonardinius/cedar/internal/token"
	"github.com/leonardinius/cedar/internal/value"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string      // Input expression
		eval value.Value // Expected value
		err  string      // Expected error message
	}{
		{name: `simple expression`, in: `1 + 2`, eval: value.Number(3)},
		{name: `grouped`, in: `(1 + 2)`, eval: value.Number(3)},
		{name: `nested`, in: `(1 + (2 + 3))`, eval: value.Number(6)},
		{name: `precedence asterisk`, in: `1 + 2 * 3`, eval: value.Number(7)},
		{name: `precedence slash`, in: `1 + 9 / 3`, eval: value.Number(4)},
		{name: `precedence asterisk slash`, in: `1 + 2 * 6 / 4`, eval: value.Number(4)},
		{name: `grouping nested precedence`, in: `((1 + 2) * 3)/2`, eval: value.Number(4.5)},
		{name: `left associative minus`, in: `8 - 3 - 2`, eval: value.Number(3)},
		{name: `strings`, in: `"ab" + "cd"`, eval: value.String("abcd")},
		{name: `empty strings`, in: `"" + ""`, eval: value.String("")},
		{name: `boolean t`, in: `true`, eval: value.True},
		{name: `boolean f`, in: `false`, eval: value.False},
		{name: `null`, in: `null`, eval: value.Nil},
		{name: `bang`, in: `!false`, eval: value.True},
		{name: `bang bang`, in: `!!false`, eval: value.False},
		{name: `bang null`, in: `!null`, eval: value.True},
		{name: `bang zero`, in: `!0`, eval: value.False},
		{name: `bang empty string`, in: `!""`, eval: value.False},
		{name: `negate`, in: `-(2 - 5)`, eval: value.Number(3)},
		{name: `double negate`, in: `--2`, eval: value.Number(2)},
		{name: `eqeq number`, in: `1 == 1`, eval: value.True},
		{name: `eqeq number false`, in: `1 == 2`, eval: value.False},
		{name: `eqeq string`, in: `"a" == "a"`, eval: value.True},
		{name: `eqeq mixed`, in: `1 == "1"`, eval: value.False},
		{name: `eqeq null`, in: `null == null`, eval: value.True},
		{name: `eqeq null false`, in: `null == false`, eval: value.False},
		{name: `bangeq number`, in: `1 != 2`, eval: value.True},
		{name: `bangeq string`, in: `"a" != "a"`, eval: value.False},
		{name: `lt number`, in: `1 < 2`, eval: value.True},
		{name: `lte number`, in: `2 <= 1`, eval: value.False},
		{name: `gt number`, in: `2 > 1`, eval: value.True},
		{name: `gte number`, in: `1 >= 1`, eval: value.True},
		{name: `variable is null`, in: `a`, eval: value.Nil},
		{name: `variable arithmetic`, in: `a + 1`, err: `Operands of "+" must be two numbers or two strings.`},
		{name: `string plus number`, in: `"x" + 1`, err: `Operands of "+" must be two numbers or two strings.`},
		{name: `number plus string`, in: `1 + "x"`, err: `Operands of "+" must be two numbers or two strings.`},
		{name: `minus string`, in: `0 - ""`, err: `Operands of "-" must be numbers.`},
		{name: `multiply bool`, in: `true * 2`, err: `Operands of "*" must be numbers.`},
		{name: `compare strings`, in: `"a" < "b"`, err: `Operands of "<" must be numbers.`},
		{name: `negate string`, in: `-"a"`, err: `Operand must be a number.`},
		{name: `division by zero`, in: `1/0`, err: `Division by zero.`},
		{name: `zero divided by zero`, in: `0/0`, err: `Division by zero.`},
		{name: `error in nested operand`, in: `1 + (2 * "x")`, err: `Operands of "*" must be numbers.`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := evaluate(t, tc.in)
			if tc.err != "" {
				require.Error(t, err)
				assert.Nil(t, v)
				var d *cedarerrors.Diagnostic
				require.True(t, errors.As(err, &d))
				assert.Equal(t, cedarerrors.StageRuntime, d.Stage)
				assert.Equal(t, tc.err, d.Message)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.eval, v)
			}
		})
	}
}

func TestInterpret(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string // Input
		out  string // Expected output
		err  string // Expected error
	}{
		{name: `print number`, in: `show 1 + 2 * 3;`, out: "7\n"},
		{name: `print fraction`, in: `show 9 / 2;`, out: "4.5\n"},
		{name: `print string`, in: `show "ab" + "cd";`, out: "abcd\n"},
		{name: `print bool`, in: `show 1 < 2;`, out: "true\n"},
		{name: `print null`, in: `show null;`, out: "null\n"},
		{name: `print many`, in: `show 1; show "two"; show !true;`, out: "1\ntwo\nfalse\n"},
		{name: `expression statement prints nothing`, in: `1 + 2;`, out: ""},
		{name: `var declaration prints nothing`, in: `var a = 1;`, out: ""},
		{name: `var is not stored`, in: `var a = 1; show a;`, out: "null\n"},
		{name: `var initializer error`, in: `var a = -"x";`, err: `Operand must be a number.`},
		{name: `stops at first error`, in: `show 1; show 1/0; show 3;`, out: "1\n", err: `Division by zero.`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, err := interpret(t, tc.in)
			if tc.err != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.out, stdout)
		})
	}
}

func TestRuntimeErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := interpret(t, "show 1;\nshow 2 +\n  (3 / 0);")
	require.Error(t, err)

	var d *cedarerrors.Diagnostic
	require.True(t, errors.As(err, &d))
	assert.True(t, d.IsKind(cedarerrors.ErrDivisionByZero))
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, 6, d.Column)
	assert.Equal(t, cedarerrors.ExitRunFailure, cedarerrors.ExitCode(err))
}

func TestInvalidOperators(t *testing.T) {
	t.Parallel()

	eval := interpreter.NewInterpreter()
	one := &parser.ExprLiteral{Value: value.Number(1)}

	_, err := eval.Evaluate(&parser.ExprUnary{
		Operator: token.NewToken(token.PLUS, "+", value.Nil, 1, 1),
		Right:    one,
	})
	require.Error(t, err)
	assert.True(t, cedarerrors.ErrInvalidUnary.Is(errors.Unwrap(err)))

	_, err = eval.Evaluate(&parser.ExprBinary{
		Left:     one,
		Operator: token.NewToken(token.AND, "&&", value.Nil, 1, 3),
		Right:    one,
	})
	require.Error(t, err)
	assert.True(t, cedarerrors.ErrInvalidOperation.Is(errors.Unwrap(err)))
}

func TestInterpreterLogger(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	eval := interpreter.NewInterpreter(
		interpreter.WithStdout(new(strings.Builder)),
		interpreter.WithLogger(logrus.NewEntry(logger)),
	)

	require.NoError(t, eval.Interpret(parse(t, "var a = 1 + 2;")))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "interpreter", entry.Data["component"])
	assert.Equal(t, "a", entry.Data["name"])
	assert.Equal(t, "3", entry.Data["value"])
}

func evaluate(t *testing.T, expression string) (value.Value, error) {
	t.Helper()

	stmts := parse(t, expression+";")
	require.Len(t, stmts, 1)
	stmt, ok := stmts[0].(*parser.StmtExpression)
	require.True(t, ok)

	return interpreter.NewInterpreter().Evaluate(stmt.Expression)
}

func interpret(t *testing.T, script string) (string, error) {
	t.Helper()

	stdout := new(strings.Builder)
	eval := interpreter.NewInterpreter(interpreter.WithStdout(stdout))
	err := eval.Interpret(parse(t, script))
	return stdout.String(), err
}

func parse(t *testing.T, script string) []parser.Stmt {
	t.Helper()

	tokens, err := scanner.NewScanner(script, "test.ql").Scan()
	require.NoError(t, err)
	stmts, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)
	return stmts
}
