package cedarerrors

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Process exit statuses.
const (
	ExitOK = 0
	// ExitBadInput is used for lexer and syntax errors, and for bad usage.
	ExitBadInput = 64
	// ExitRunFailure is used when evaluation of a well-formed program fails.
	ExitRunFailure = 65
	// ExitNoInput is used when the script file could not be read at all.
	ExitNoInput = 66
)

type ErrReporter interface {
	// ReportError renders err and returns the exit status it maps to.
	ReportError(err error) int
}

type errReporter struct {
	w   io.Writer
	log *logrus.Entry
}

// NewErrReporter renders to w and logs through log, or through the standard
// logger when log is nil.
func NewErrReporter(w io.Writer, log *logrus.Entry) *errReporter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &errReporter{w: w, log: log.WithField("component", "reporter")}
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) int {
	return DefaultReportError(e.w, e.log, err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, log *logrus.Entry, err error) int {
	var d *Diagnostic
	if stderrors.As(err, &d) {
		log.WithFields(logrus.Fields{
			"stage":  d.Stage,
			"line":   d.Line,
			"column": d.Column,
		}).Debug("reporting diagnostic")
		if rerr := d.Render(w); rerr != nil {
			log.WithError(rerr).Error("unable to render diagnostic")
		}
	} else {
		fmt.Fprintf(w, "ERROR %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to the exit status the driver must use.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var d *Diagnostic
	if stderrors.As(err, &d) && d.Stage == StageRuntime {
		return ExitRunFailure
	}
	return ExitBadInput
}

// Attach fills in file name and source of a Diagnostic found in err.
// Other errors are returned unchanged.
func Attach(err error, fileName string, source []rune) error {
	var d *Diagnostic
	if stderrors.As(err, &d) {
		return d.WithSource(fileName, source)
	}
	return err
}

var _ ErrReporter = (*errReporter)(nil)
