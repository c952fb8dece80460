// Package logger provides verbose logging for the iso4217 compiler.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show each pipeline stage and its counts.
//
// Warn prints and counts every warning. WarnContext does the same unless
// the context was marked with WithQuiet, in which case the warning is
// dropped; verbose mode still prints it. There is no process-wide quiet
// switch.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu       sync.RWMutex
	verbose  bool
	output   io.Writer = os.Stderr
	warnings int
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

type quietKey struct{}

// WithQuiet returns a copy of ctx under which WarnContext drops warnings.
func WithQuiet(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey{}, true)
}

// IsQuiet reports whether ctx was marked with WithQuiet.
func IsQuiet(ctx context.Context) bool {
	q, _ := ctx.Value(quietKey{}).(bool)
	return q
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message and counts it.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	warnings++
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

// WarnContext is Warn, except that warnings under a quiet context are
// neither printed nor counted unless verbose mode is on.
func WarnContext(ctx context.Context, format string, args ...any) {
	if IsQuiet(ctx) && !IsVerbose() {
		return
	}
	Warn(format, args...)
}

// Warnings returns the number of warnings printed since the last ResetWarnings.
func Warnings() int {
	mu.RLock()
	defer mu.RUnlock()
	return warnings
}

// ResetWarnings zeroes the warning counter.
func ResetWarnings() {
	mu.Lock()
	defer mu.Unlock()
	warnings = 0
}

// Timed logs how long a stage took. Use as: defer logger.Timed("parse")()
func Timed(stage string) func() {
	start := time.Now()
	return func() {
		Debug("%s took %s", stage, time.Since(start).Round(time.Microsecond))
	}
}
