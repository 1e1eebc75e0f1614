package lib

import "testing"

// Logger is the minimal logging interface accepted by the packages needing debug output
type Logger interface {
	Print(a ...any)
	Printf(format string, a ...any)
}

type NoLog struct{}

func (l *NoLog) Print(a ...any)                 {}
func (l *NoLog) Printf(format string, a ...any) {}

// TestLogger sends the log lines to the test output
type TestLogger struct {
	t      *testing.T
	prefix string
}

func NewTestLogger(t *testing.T, prefix string) *TestLogger {
	return &TestLogger{
		t:      t,
		prefix: prefix,
	}
}

func (l *TestLogger) Print(a ...any) {
	l.t.Helper()
	if l.prefix == "" {
		l.t.Log(a...)
		return
	}
	l.t.Log(append([]any{l.prefix + ":"}, a...)...)
}

func (l *TestLogger) Printf(format string, a ...any) {
	l.t.Helper()
	if l.prefix != "" {
		format = l.prefix + ": " + format
	}
	l.t.Logf(format, a...)
}
