// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accumlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink writes accumulated logs to a zap logger.
type Sink struct {
	logger *zap.Logger
	level  zapcore.LevelEnabler
}

// Option configures a Sink.
type Option func(*Sink)

// WithLevel drops entries below level at flush time.
func WithLevel(level zapcore.LevelEnabler) Option {
	return func(s *Sink) { s.level = level }
}

// WithName names the sink's logger.
func WithName(name string) Option {
	return func(s *Sink) { s.logger = s.logger.Named(name) }
}

// WithFields adds fields to every flushed entry.
func WithFields(fields ...zap.Field) Option {
	return func(s *Sink) { s.logger = s.logger.With(fields...) }
}

// WithTraceID tags every flushed entry with a trace id.
func WithTraceID(id uuid.UUID) Option {
	return WithFields(zap.Stringer(TraceKey, id))
}

// NewSink creates a Sink writing to logger; a nil logger discards output.
// Options apply in order.
func NewSink(logger *zap.Logger, opts ...Option) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sink{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Flush writes every entry of log in order and returns the number written.
// Entries above ErrorLevel are written at ErrorLevel, so Flush never
// panics or exits the process.
func (s *Sink) Flush(log Log) int {
	n := 0
	for _, e := range log {
		level := e.Level
		if level > zapcore.ErrorLevel {
			level = zapcore.ErrorLevel
		}
		if s.level != nil && !s.level.Enabled(level) {
			continue
		}
		if ce := s.logger.Check(level, e.Message); ce != nil {
			ce.Write(e.Fields...)
			n++
		}
	}
	return n
}
