// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/wmlog/wmlog.go
// Summary: Structured logging wrapper around logrus, replacing the teacher's
// plain log.Printf calls with the fielded style spec §7's error taxonomy needs.

package wmlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is a typed alias kept local so call sites never import logrus
// directly; it mirrors logrus.Fields exactly.
type Fields = logrus.Fields

// Logger wraps a *logrus.Logger with the handful of methods the Core and
// its collaborators need. Embedding a bare *logrus.Logger would expose
// logrus's whole surface at every call site; this keeps the contract small
// and swappable.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to stderr at level, in the given format
// ("text" or "json"). Unknown formats fall back to text.
func New(level logrus.Level, format string) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(level)
	if format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// Discard returns a Logger that drops everything, for tests that don't
// care about log output.
func Discard() *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.PanicLevel)
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a child logger carrying the given fields on every
// subsequent call, mirroring logrus's own WithFields chaining.
func (l *Logger) With(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debug(msg string, fields Fields) { l.entry.WithFields(fields).Debug(msg) }
func (l *Logger) Info(msg string, fields Fields)  { l.entry.WithFields(fields).Info(msg) }
func (l *Logger) Warn(msg string, fields Fields)  { l.entry.WithFields(fields).Warn(msg) }
func (l *Logger) Error(msg string, fields Fields) { l.entry.WithFields(fields).Error(msg) }
