// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedtest

import (
	"runtime"
	"slices"
	"sync"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sink receives every log entry at or above a [logger]'s level.
type sink interface {
	write(logging.Level, string, []zap.Field)
}

// logger plumbs all levels into a [sink]. Methods not implemented here will
// panic via the nil embedded interface, which is preferable to a
// [logging.NoLog] silently dropping entries.
type logger struct {
	level logging.Level
	sink  sink
	with  []zap.Field
	logging.Logger
}

var _ logging.Logger = (*logger)(nil)

func (l *logger) With(fields ...zap.Field) logging.Logger {
	return &logger{
		level: l.level,
		sink:  l.sink,
		with:  slices.Concat(l.with, fields),
	}
}

func (l *logger) Enabled(lvl logging.Level) bool { return lvl >= l.level }

func (l *logger) SetLevel(lvl logging.Level) { l.level = lvl }

func (l *logger) log(lvl logging.Level, msg string, fields []zap.Field) {
	if !l.Enabled(lvl) {
		return
	}
	l.sink.write(lvl, msg, slices.Concat(l.with, fields))
}

func (l *logger) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs) }
func (l *logger) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs) }
func (l *logger) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs) }
func (l *logger) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs) }
func (l *logger) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs) }
func (l *logger) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs) }
func (l *logger) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs) }

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// Field returns the first field with the specified key, and whether it was
// found.
func (r *LogRecord) Field(key string) (zap.Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return zap.Field{}, false
}

// A LogRecorder is a [logging.Logger] that stores all logs as [LogRecord]
// entries for inspection. It is safe for concurrent use.
type LogRecorder struct {
	*logger

	mu      sync.Mutex
	records []*LogRecord
}

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	r := new(LogRecorder)
	r.logger = &logger{level: level, sink: r}
	return r
}

func (r *LogRecorder) write(lvl logging.Level, msg string, fields []zap.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: fields,
	})
}

// Records returns all recorded logs, in order.
func (r *LogRecorder) Records() []*LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.records)
}

// At returns all recorded logs at the specified [logging.Level].
func (r *LogRecorder) At(lvl logging.Level) []*LogRecord {
	var out []*LogRecord
	for _, rec := range r.Records() {
		if rec.Level == lvl {
			out = append(out, rec)
		}
	}
	return out
}

// Messages returns the message of every recorded log, in order.
func (r *LogRecorder) Messages() []string {
	var msgs []string
	for _, rec := range r.Records() {
		msgs = append(msgs, rec.Msg)
	}
	return msgs
}

// NewTBLogger constructs a logger that propagates logs to [testing.TB]. WARNING
// and ERROR logs are sent to [testing.TB.Errorf] while FATAL is sent to
// [testing.TB.Fatalf]. All other logs are sent to [testing.TB.Logf]. Although
// the level can be configured, it is silently capped at [logging.Warn].
//
//nolint:thelper // The outputs include the logging site while the TB site is most useful if here
func NewTBLogger(tb testing.TB, level logging.Level) logging.Logger {
	return &logger{
		level: min(level, logging.Warn),
		sink:  tbSink{tb},
	}
}

type tbSink struct {
	tb testing.TB
}

func (s tbSink) write(lvl logging.Level, msg string, fields []zap.Field) {
	to := s.tb.Logf
	switch {
	case lvl >= logging.Fatal:
		to = s.tb.Fatalf
	case lvl >= logging.Warn:
		to = s.tb.Errorf
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	_, file, line, _ := runtime.Caller(3)
	to("[Log@%s] %s %v - %s:%d", lvl, msg, enc.Fields, file, line)
}
