// Package testlog records log output for assertions in tests.
package testlog

import (
	"sync"

	"logistics-dashboard-service/internal/logx"
)

// Entry is a recorded log entry.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Recorder is a logx.Logger that keeps every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := append([]logx.Field(nil), fields...)
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: cp})
}

// Debug records a debug entry.
func (r *Recorder) Debug(msg string, f ...logx.Field) { r.add("debug", msg, f) }

// Info records an info entry.
func (r *Recorder) Info(msg string, f ...logx.Field) { r.add("info", msg, f) }

// Warn records a warn entry.
func (r *Recorder) Warn(msg string, f ...logx.Field) { r.add("warn", msg, f) }

// Error records an error entry.
func (r *Recorder) Error(msg string, f ...logx.Field) { r.add("error", msg, f) }

// With returns a logger that prepends the given fields to every entry.
func (r *Recorder) With(f ...logx.Field) logx.Logger {
	return bound{r: r, base: append([]logx.Field(nil), f...)}
}

// Sync is a no-op.
func (r *Recorder) Sync() error { return nil }

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) Debug(msg string, f ...logx.Field) { b.r.add("debug", msg, append(b.base, f...)) }
func (b bound) Info(msg string, f ...logx.Field)  { b.r.add("info", msg, append(b.base, f...)) }
func (b bound) Warn(msg string, f ...logx.Field)  { b.r.add("warn", msg, append(b.base, f...)) }
func (b bound) Error(msg string, f ...logx.Field) { b.r.add("error", msg, append(b.base, f...)) }

func (b bound) With(f ...logx.Field) logx.Logger {
	nb := bound{r: b.r, base: append([]logx.Field(nil), b.base...)}
	nb.base = append(nb.base, f...)
	return nb
}

func (b bound) Sync() error { return nil }

var (
	_ logx.Logger = (*Recorder)(nil)
	_ logx.Logger = bound{}
)
