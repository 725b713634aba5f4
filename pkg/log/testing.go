// Testing utilities: an in-memory Logger implementation that captures
// messages and fields so tests can assert on model-layer log output without
// touching stderr.

package log

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one captured log record.
type Entry struct {
	Level  Level
	Msg    string
	Fields map[string]any
}

// TestLogger captures log records in memory for inspection. Loggers derived
// with With record into the same buffer as their root.
type TestLogger struct {
	root  *testSink
	level Level
	base  map[string]any
}

type testSink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a TestLogger capturing records at or above level.
func NewTestLogger(level Level) *TestLogger {
	return &TestLogger{root: &testSink{}, level: level, base: map[string]any{}}
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) { t.record(LevelDebug, msg, fields) }

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) { t.record(LevelInfo, msg, fields) }

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) { t.record(LevelWarn, msg, fields) }

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) { t.record(LevelError, msg, fields) }

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	child := &TestLogger{root: t.root, level: t.level, base: map[string]any{}}
	for k, v := range t.base {
		child.base[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		child.base[fmt.Sprintf("%v", fields[i])] = fields[i+1]
	}
	return child
}

// Entries returns a copy of the captured records.
func (t *TestLogger) Entries() []Entry {
	t.root.mu.Lock()
	defer t.root.mu.Unlock()
	out := make([]Entry, len(t.root.entries))
	copy(out, t.root.entries)
	return out
}

// Contains reports whether any captured message contains substr.
func (t *TestLogger) Contains(substr string) bool {
	for _, e := range t.Entries() {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

func (t *TestLogger) record(level Level, msg string, fields []any) {
	if level < t.level {
		return
	}
	entry := Entry{Level: level, Msg: msg, Fields: map[string]any{}}
	for k, v := range t.base {
		entry.Fields[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		entry.Fields[fmt.Sprintf("%v", fields[i])] = fields[i+1]
	}
	t.root.mu.Lock()
	t.root.entries = append(t.root.entries, entry)
	t.root.mu.Unlock()
}
