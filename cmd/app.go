package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/leonardinius/cedar/internal/cedarerrors"
	"github.com/leonardinius/cedar/internal/interpreter"
	"github.com/leonardinius/cedar/internal/parser"
	"github.com/leonardinius/cedar/internal/scanner"
)

// promptFileName names the source of REPL lines in diagnostics.
const promptFileName = "prompt"

type CedarApp struct {
	config      *Config
	stdout      io.Writer
	stderr      io.Writer
	logger      *logrus.Logger
	reporter    cedarerrors.ErrReporter
	interpreter interpreter.Interpreter
	log         *logrus.Entry
}

type AppOption func(*CedarApp)

func WithStdout(stdout io.Writer) AppOption {
	return func(app *CedarApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *CedarApp) {
		app.stderr = stderr
	}
}

// WithConfig skips loading the configuration from CEDAR_CONFIG.
func WithConfig(config *Config) AppOption {
	return func(app *CedarApp) {
		app.config = config
	}
}

func NewCedarApp(options ...AppOption) *CedarApp {
	app := &CedarApp{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(app)
	}

	app.logger = logrus.New()
	app.logger.SetOutput(app.stderr)
	app.logger.SetLevel(DefaultConfig().Level())
	if app.config != nil {
		app.configure(app.config)
	}

	app.log = app.logger.WithField("component", "app")
	app.reporter = cedarerrors.NewErrReporter(app.stderr, app.entry())
	app.interpreter = interpreter.NewInterpreter(
		interpreter.WithStdout(app.stdout),
		interpreter.WithLogger(app.entry()),
	)
	return app
}

// Main runs a script when given one argument, or the interactive prompt when
// given none. It returns the process exit status.
func (app *CedarApp) Main(args []string) int {
	if app.config == nil {
		config, err := LoadConfigFromEnv()
		if err != nil {
			return app.reporter.ReportError(err)
		}
		app.configure(config)
	}

	switch len(args) {
	case 1:
		return app.runFile(args[0])
	case 0:
		return app.runPrompt()
	default:
		fmt.Fprintln(app.stderr, "Usage: cedar [script]")
		return cedarerrors.ExitBadInput
	}
}

func (app *CedarApp) configure(config *Config) {
	app.config = config
	app.logger.SetLevel(config.Level())
}

// entry is the root of every component logger of this app.
func (app *CedarApp) entry() *logrus.Entry {
	return logrus.NewEntry(app.logger)
}

func (app *CedarApp) runFile(scriptPath string) int {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(app.stderr, "ERROR %v\n", err)
		return cedarerrors.ExitNoInput
	}

	source := string(bytes)
	return app.report(app.run(source, scriptPath), scriptPath, source)
}

// lineReader is the part of *readline.Instance the prompt loop needs.
type lineReader interface {
	Readline() (string, error)
}

func (app *CedarApp) runPrompt() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      app.config.Prompt,
		HistoryFile: app.config.HistoryFile,
		Stdout:      app.stdout,
		Stderr:      app.stderr,
	})
	if err != nil {
		return app.reporter.ReportError(err)
	}
	defer rl.Close()

	return app.prompt(rl)
}

// prompt runs every line on its own. Errors are reported and the session
// goes on; an empty line or end of input ends it.
func (app *CedarApp) prompt(rl lineReader) int {
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return cedarerrors.ExitOK
		}
		if err != nil {
			return app.reporter.ReportError(err)
		}
		if strings.TrimSpace(line) == "" {
			return cedarerrors.ExitOK
		}

		app.report(app.run(line, promptFileName), promptFileName, line)
	}
}

func (app *CedarApp) report(err error, fileName, source string) int {
	if err == nil {
		return cedarerrors.ExitOK
	}
	return app.reporter.ReportError(cedarerrors.Attach(err, fileName, []rune(source)))
}

func (app *CedarApp) run(source, fileName string) error {
	s := scanner.NewScanner(source, fileName, scanner.WithLogger(app.entry()))

	tokens, err := s.Scan()
	if err != nil {
		return err
	}

	p := parser.NewParser(tokens, parser.WithLogger(app.entry()))
	statements, err := p.Parse()
	if err != nil {
		if n := len(p.Errors()); n > 1 {
			app.log.WithField("suppressed", n-1).Debug("more syntax errors found")
		}
		return err
	}

	if app.config.DumpAST {
		app.dumpAST(statements)
	}

	return app.interpreter.Interpret(statements)
}

type stmtPrinter interface {
	PrintStmt(stmt parser.Stmt) string
}

func (app *CedarApp) dumpAST(statements []parser.Stmt) {
	var printer stmtPrinter = parser.NewAstPrinter()
	if app.config.DumpFormat == DumpFormatRPN {
		printer = parser.NewRPNPrinter()
	}
	for _, stmt := range statements {
		app.log.Info(printer.PrintStmt(stmt))
	}
}
