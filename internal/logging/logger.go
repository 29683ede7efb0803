// Package logging provides the leveled, optionally colored logger used by
// the pipeline. Errors go to stderr, everything else to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/backmassage/restamp/internal/term"
)

// Logger provides leveled logging. Color state comes from [term.Configure].
type Logger struct {
	mu sync.Mutex
}

// NewLogger configures terminal colors and returns a ready logger.
func NewLogger() *Logger {
	term.Configure()
	return &Logger{}
}

func (l *Logger) line(level, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, "["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}

// Plain writes a raw line to stdout, bypassing level prefixes. Used for the
// final summary block, which mirrors the tool's historical plain output.
func (l *Logger) Plain(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(os.Stdout, fmt.Sprintf(format, args...)+"\n")
}
