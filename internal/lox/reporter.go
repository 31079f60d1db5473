package lox

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	paint         *color.Color
	hadErr        *abool.AtomicBool
	hadRuntimeErr *abool.AtomicBool
}

// NewSimpleReporter creates a reporter that writes one error per line. When
// colored is true, errors are painted red regardless of the writer being a
// terminal.
func NewSimpleReporter(writer io.Writer, colored bool) *SimpleReporter {
	reporter := &SimpleReporter{
		writer:        writer,
		hadErr:        abool.New(),
		hadRuntimeErr: abool.New(),
	}
	if colored {
		reporter.paint = color.New(color.FgRed)
		reporter.paint.EnableColor()
	}
	return reporter
}

func (reporter *SimpleReporter) Report(err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr.Set()
	} else {
		reporter.hadErr.Set()
	}
	if reporter.paint != nil {
		reporter.paint.Fprintln(reporter.writer, err)
		return
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr.IsSet()
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr.IsSet()
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr.UnSet()
	reporter.hadRuntimeErr.UnSet()
}
