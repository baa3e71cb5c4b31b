// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing to stdout at info level.
func New() Logger {
	return NewWithOutput(os.Stdout, false)
}

// NewWithOutput returns a Logger writing to w. Colours are only used
// when w is an interactive terminal.
func NewWithOutput(w io.Writer, debug bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !isTerminal(w),
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	return &logger{Logger: l}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
