// Package testhelper provides shared fixtures for package tests: a
// capturing logger, a temp-dir dataset, and session plumbing.
package testhelper

import (
	"fmt"
	"sync"
)

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Logger captures log calls instead of writing them anywhere. It
// satisfies the Logger interfaces declared across the internal
// packages.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates a capturing logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) record(level, message string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Fields: fields})
}

// Entries returns a copy of everything logged so far.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// LogInfo captures an info message.
func (l *Logger) LogInfo(message string, fields map[string]interface{}) {
	l.record("info", message, fields)
}

// LogDebug captures a debug message.
func (l *Logger) LogDebug(message string, fields map[string]interface{}) {
	l.record("debug", message, fields)
}

// LogWarn captures a warning.
func (l *Logger) LogWarn(message string, fields map[string]interface{}) {
	l.record("warn", message, fields)
}

// LogError captures an error and returns it, mirroring the production
// logger's contract.
func (l *Logger) LogError(err error, message string) error {
	l.record("error", fmt.Sprintf("%s: %v", message, err), nil)
	return err
}
