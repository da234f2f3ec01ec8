package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logger is shared by every LoggingFormat. Logs go to stderr, stdout carries
// the converted data.
var logger = newLogger(os.Stderr, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// LoggingFormat collects the context of one log line.
type LoggingFormat struct {
	Path     string
	Function string
	Level    logrus.Level
	Message  string
	Error    error
	fields   logrus.Fields
}

// AddField attaches a key/value pair to the entry.
func (l *LoggingFormat) AddField(key string, value interface{}) {
	if l.fields == nil {
		l.fields = logrus.Fields{}
	}
	l.fields[key] = value
}

func (l *LoggingFormat) entry() *logrus.Entry {
	e := logger.WithFields(logrus.Fields{
		"path":     l.Path,
		"function": l.Function,
	})
	if len(l.fields) > 0 {
		e = e.WithFields(l.fields)
	}
	if l.Error != nil {
		e = e.WithError(l.Error)
	}
	return e
}

// Print writes the entry at l.Level.
func (l *LoggingFormat) Print() {
	l.entry().Log(l.Level, l.Message)
}

// ToError logs the entry and returns it as an error wrapping l.Error.
func (l *LoggingFormat) ToError() error {
	l.Print()
	if l.Error == nil {
		return errors.New(l.Message)
	}
	return fmt.Errorf("%s: %w", l.Message, l.Error)
}
