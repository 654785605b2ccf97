// Package logger provides component scoped loggers on a shared logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a structured logger carrying a set of fields.
type Logger = *logrus.Entry

var base = newBase(os.Stderr)

func newBase(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// Configure sets the output and level of every logger. Warnings and errors are
// always shown; verbose adds info and debug adds debug messages.
func Configure(out io.Writer, debug, verbose bool) {
	base.SetOutput(out)

	switch {
	case debug:
		base.SetLevel(logrus.DebugLevel)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case verbose:
		base.SetLevel(logrus.InfoLevel)
	default:
		base.SetLevel(logrus.WarnLevel)
	}
}

// Level returns the current level.
func Level() logrus.Level {
	return base.GetLevel()
}

// WithField returns a logger annotated with key=value.
func WithField(key string, value interface{}) Logger {
	return base.WithField(key, value)
}
