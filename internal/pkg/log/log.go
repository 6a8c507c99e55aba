package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type ctxKey string

const contextKeyRequestID ctxKey = "request_id"

var (
	mu      sync.Mutex
	out     io.Writer = os.Stdout
	debugOn bool
)

// SetOutput redirects all log lines. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetDebug toggles Debug and Dump output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugOn = enabled
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func write(label string, attrs []color.Attribute, requestID string, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		msg = fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}
	tag := color.New(attrs...).SprintFunc()

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", tag(label), msg)
}

// Info log information
func Info(format string, a ...interface{}) {
	write("[INFO] ", []color.Attribute{color.FgWhite, color.BgGreen}, "", format, a...)
}

// InfoWithContext logs information with the request ID when present
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write("[INFO] ", []color.Attribute{color.FgWhite, color.BgGreen}, RequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write("[WARN] ", []color.Attribute{color.FgWhite, color.BgYellow}, "", format, a...)
}

// WarnWithContext logs warning with the request ID when present
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write("[WARN] ", []color.Attribute{color.FgWhite, color.BgYellow}, RequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write("[Error]", []color.Attribute{color.FgRed}, "", format, a...)
}

// ErrorWithContext logs error with the request ID when present
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write("[Error]", []color.Attribute{color.FgRed}, RequestID(ctx), format, a...)
}

func debugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debugOn
}

// Debug logs only when debug output is enabled.
func Debug(format string, a ...interface{}) {
	if !debugEnabled() {
		return
	}
	write("[DEBUG]", []color.Attribute{color.FgCyan}, "", format, a...)
}

// DebugWithContext is Debug with the request ID.
func DebugWithContext(ctx context.Context, format string, a ...interface{}) {
	if !debugEnabled() {
		return
	}
	write("[DEBUG]", []color.Attribute{color.FgCyan}, RequestID(ctx), format, a...)
}

// Dump pretty-prints values such as built SQL and its arguments.
func Dump(ctx context.Context, label string, a ...interface{}) {
	if !debugEnabled() {
		return
	}
	write("[DEBUG]", []color.Attribute{color.FgCyan}, RequestID(ctx), "%s\n%s", label, spew.Sdump(a...))
}
