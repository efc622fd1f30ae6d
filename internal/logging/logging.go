// Package logging provides component-scoped logrus entries sharing one logger.
//
// Level comes from PORTFOLIO_LOG_LEVEL (default info) and format from
// PORTFOLIO_LOG_FORMAT (text or json). The CLI adjusts the level for
// --verbose and --quiet through SetLevel.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Environment variables read when the root logger is created.
const (
	EnvLevel  = "PORTFOLIO_LOG_LEVEL"
	EnvFormat = "PORTFOLIO_LOG_FORMAT"
)

var (
	root     *logrus.Logger
	rootOnce sync.Once

	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func rootLogger() *logrus.Logger {
	rootOnce.Do(func() {
		root = newRoot(os.Stderr, os.Getenv(EnvLevel), os.Getenv(EnvFormat))
	})
	return root
}

func newRoot(out io.Writer, levelStr, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		interactive := isTerminal(out)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !interactive,
			FullTimestamp:    !interactive,
			DisableTimestamp: interactive,
		})
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewLogger returns the entry for component, creating it on first use.
// Every entry carries a "component" field.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, exists := loggers[component]; exists {
		return entry
	}

	entry := rootLogger().WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetLevel changes the level of every component logger.
func SetLevel(level logrus.Level) {
	rootLogger().SetLevel(level)
}

// SetOutput redirects every component logger.
func SetOutput(w io.Writer) {
	rootLogger().SetOutput(w)
}

// Discard returns an entry that drops everything, for library callers that
// pass no logger.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
