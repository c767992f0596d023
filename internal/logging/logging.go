// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package logging wraps logrus the way the rest of this codebase's ambient
// stack expects: leveled, structured, one shared default logger plus the
// ability to build a scoped entry per request.
package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level mirrors the handful of levels Skylift actually emits.
type Level = logrus.Level

// Set of supported levels, re-exported so callers don't need to import
// logrus directly.
const (
	Debug = logrus.DebugLevel
	Info  = logrus.InfoLevel
	Warn  = logrus.WarnLevel
	Error = logrus.ErrorLevel
)

var std = New("info")

// New builds a standalone logger at the given level ("debug", "info", "warn",
// "error"; empty defaults to info). An unrecognized level falls back to info
// rather than failing startup over a typo in a flag.
func New(level string) *logrus.Logger {
	l := logrus.New()
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = Info
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// ParseLevel parses the handful of level names Skylift's CLI accepts.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("invalid log level: %q", level)
	}
}

// Default returns the process-wide logger used by packages that don't hold
// their own reference (mirrors the teacher's Get()/std-logger convention).
func Default() *logrus.Logger { return std }

// SetDefault replaces the process-wide logger, used once at startup by
// cmd/skylift-server after flags are parsed.
func SetDefault(l *logrus.Logger) { std = l }

// ForSession returns a logger entry pre-populated with the session's remote
// id, the shape every server-side handler log line carries per spec.md §7
// ("internal errors are logged with the remote id and request summary").
func ForSession(l *logrus.Logger, remoteID, method string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"remote_id": remoteID,
		"method":    method,
	})
}
