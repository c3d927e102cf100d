// Copyright (C) 2024 the parse24 authors.
// This file is part of parse24
//
// parse24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// parse24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with parse24.  If not, see <https://www.gnu.org/licenses/>.

// Package logging wraps logrus behind a small Logger interface with a
// shared base logger. Diagnostics go to stderr so they never mix with
// the document written to stdout.
package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level refers to the log logging level
type Level uint32

const (
	// Panic Level level, highest level of severity.
	Panic Level = iota
	// Fatal Level level. Logs and then calls `os.Exit(1)`.
	Fatal
	// Error Level level. Used for errors that should definitely be noted.
	Error
	// Warn Level level. Non-critical entries that deserve eyes.
	Warn
	// Info Level level. General operational entries about what's going
	// on inside the application.
	Info
	// Debug Level level. Usually only enabled when debugging. Very
	// verbose logging.
	Debug
)

// Fields maps logrus fields
type Fields = logrus.Fields

var (
	baseLogger Logger
	once       sync.Once
)

// Init needs to be called to ensure our logging has been initialized
func Init() {
	once.Do(func() {
		// By default, log to stderr (logrus's default), only warnings
		// and above.
		baseLogger = NewLogger()
		baseLogger.SetLevel(Warn)
	})
}

func init() {
	Init()
}

// Logger is the interface for loggers.
type Logger interface {
	// Debugf logs a message at level Debug.
	Debugf(string, ...interface{})

	// Infof logs a message at level Info.
	Infof(string, ...interface{})

	// Warnf logs a message at level Warn.
	Warnf(string, ...interface{})

	// Errorf logs a message at level Error.
	Errorf(string, ...interface{})

	// Fatalf logs a message at level Fatal.
	Fatalf(string, ...interface{})

	// With adds one key-value to the log
	With(key string, value interface{}) Logger

	// WithFields logs a message with specific fields
	WithFields(Fields) Logger

	// SetLevel sets the logging level
	SetLevel(Level)

	// SetOutput sets the output target
	SetOutput(io.Writer)
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.entry.WithFields(fields)}
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.SetLevel(logrus.Level(lvl))
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// Base returns the default Logger logging to stderr.
func Base() Logger {
	Init()
	return baseLogger
}

// NewLogger returns a new Logger logging to stderr.
func NewLogger() Logger {
	l := logrus.New()
	return logger{logrus.NewEntry(l)}
}

// ParseLevel translates a configuration string into a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "panic":
		return Panic, true
	case "fatal":
		return Fatal, true
	case "error":
		return Error, true
	case "warn", "warning":
		return Warn, true
	case "info":
		return Info, true
	case "debug":
		return Debug, true
	}
	return Warn, false
}
