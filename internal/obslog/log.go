// Package obslog provides the structured, leveled logging used by the
// unholyc driver. No third-party logging library appears anywhere in the
// retrieval pack this module was grounded on, so this package stays
// in-house, following the shape of that pack's own logger rather than
// reaching for an unrepresented dependency.
package obslog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level is a logging severity, ordered from most to least verbose.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// ShortString renders the level as a fixed-width tag for log lines.
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields map[string]any

// Entry is one emitted log line.
type Entry struct {
	Time          time.Time
	Level         Level
	Message       string
	CorrelationID string
	Fields        Fields
}

// Logger writes leveled, field-enriched entries to an underlying writer.
// With derives a child logger carrying additional fields, and
// WithCorrelationID one carrying a per-run correlation ID, without
// mutating the parent.
type Logger struct {
	w             io.Writer
	minLevel      Level
	correlationID string
	fields        Fields
}

// New creates a Logger writing to w at minLevel and above.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{w: w, minLevel: minLevel, fields: Fields{}}
}

// Default creates a Logger writing to stderr at LevelInfo.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

// With returns a child logger that carries the given fields on every entry
// it emits, in addition to the parent's own fields.
func (l *Logger) With(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{w: l.w, minLevel: l.minLevel, correlationID: l.correlationID, fields: merged}
}

// WithCorrelationID returns a child logger that tags every entry with the
// given correlation ID.
func (l *Logger) WithCorrelationID(id string) *Logger {
	return &Logger{w: l.w, minLevel: l.minLevel, correlationID: id, fields: l.fields}
}

func (l *Logger) log(level Level, msg string, fields Fields) {
	if level < l.minLevel {
		return
	}
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	e := Entry{Time: time.Now(), Level: level, Message: msg, CorrelationID: l.correlationID, Fields: merged}
	fmt.Fprint(l.w, formatEntry(e))
}

func formatEntry(e Entry) string {
	line := fmt.Sprintf("%s %s", e.Time.Format(time.RFC3339), e.Level.ShortString())
	if e.CorrelationID != "" {
		line += " correlation_id=" + e.CorrelationID
	}
	line += " " + e.Message
	for k, v := range e.Fields {
		line += fmt.Sprintf(" %s=%v", k, v)
	}
	return line + "\n"
}

func (l *Logger) Trace(msg string, fields Fields) { l.log(LevelTrace, msg, fields) }
func (l *Logger) Debug(msg string, fields Fields) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields Fields)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields Fields)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields Fields) { l.log(LevelError, msg, fields) }

// Err returns a Fields value with a single "error" key, for convenient use
// at call sites: logger.Error("parse failed", obslog.Err(err)).
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Duration returns a Fields value with a single "duration_ms" key.
func Duration(d time.Duration) Fields {
	return Fields{"duration_ms": d.Milliseconds()}
}
