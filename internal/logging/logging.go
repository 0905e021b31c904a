// SPDX-License-Identifier: MIT

// Package logging builds the logrus loggers used by the numlab command and
// the lab runner.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is the layout of the timestamp prefix of every log line.
const TimestampFormat = "2006-01-02 15:04:05"

// New returns a text logger writing to out at the given level name
// ("debug", "info", "warn", ...).
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}
