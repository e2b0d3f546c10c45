package interpreter

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type interpreterOpts struct {
	stdout io.Writer
	log    *logrus.Entry
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
}

type InterpreterOption func(*interpreterOpts)

// WithStdout sets where print statements write.
func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithLogger sets the entry interpreter logs are written through.
func WithLogger(log *logrus.Entry) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.log = log
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.log == nil {
		opts.log = logrus.NewEntry(logrus.StandardLogger())
	}
	opts.log = opts.log.WithField("component", "interpreter")

	return &opts
}
