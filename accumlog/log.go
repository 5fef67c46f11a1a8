// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package accumlog accumulates structured log entries as AccumT output and
// flushes them through zap.
//
// Entries are collected purely: emitting does not write anything. Already
// emitted entries can be edited with [accum.Pass] or [accum.Censor] using
// [With], [AtLeast] and [Traced], and a [Sink] writes the final [Log] once
// the computation has run.
//
// Example:
//
//	t := accum.Censor(identity.Monad{}, accumlog.Info(identity.Monad{}, "start"),
//	    accumlog.Traced(uuid.New()))
//	log := identity.Run[accumlog.Log](accum.Exec(identity.Monad{}, t))
//	accumlog.NewSink(logger).Flush(log)
package accumlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/accum"
)

// Entry is one accumulated log record.
type Entry struct {
	Level   zapcore.Level
	Message string
	Fields  []zap.Field
}

// Log is the accumulator type: entries in emission order.
type Log []Entry

// Monoid concatenates logs without aliasing either operand.
type Monoid struct{}

func (Monoid) Empty() Log { return nil }

func (Monoid) Combine(x, y Log) Log {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	out := make(Log, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// Emit appends one entry at the given level.
func Emit[M any](pt accum.Pointed[M], level zapcore.Level, msg string, fields ...zap.Field) accum.AccumT[Log, struct{}, M] {
	return accum.Tell(pt, Log{{Level: level, Message: msg, Fields: fields}})
}

// Debug appends a debug entry.
func Debug[M any](pt accum.Pointed[M], msg string, fields ...zap.Field) accum.AccumT[Log, struct{}, M] {
	return Emit(pt, zapcore.DebugLevel, msg, fields...)
}

// Info appends an info entry.
func Info[M any](pt accum.Pointed[M], msg string, fields ...zap.Field) accum.AccumT[Log, struct{}, M] {
	return Emit(pt, zapcore.InfoLevel, msg, fields...)
}

// Warn appends a warning entry.
func Warn[M any](pt accum.Pointed[M], msg string, fields ...zap.Field) accum.AccumT[Log, struct{}, M] {
	return Emit(pt, zapcore.WarnLevel, msg, fields...)
}

// Error appends an error entry.
func Error[M any](pt accum.Pointed[M], msg string, fields ...zap.Field) accum.AccumT[Log, struct{}, M] {
	return Emit(pt, zapcore.ErrorLevel, msg, fields...)
}

// With returns an edit that appends fields to every entry.
func With(fields ...zap.Field) func(Log) Log {
	return func(log Log) Log {
		if len(log) == 0 {
			return log
		}
		out := make(Log, len(log))
		for i, e := range log {
			f := make([]zap.Field, 0, len(e.Fields)+len(fields))
			f = append(f, e.Fields...)
			e.Fields = append(f, fields...)
			out[i] = e
		}
		return out
	}
}

// AtLeast returns an edit that keeps only entries enabled by level.
func AtLeast(level zapcore.LevelEnabler) func(Log) Log {
	return func(log Log) Log {
		var out Log
		for _, e := range log {
			if level.Enabled(e.Level) {
				out = append(out, e)
			}
		}
		return out
	}
}

// Traced returns an edit that tags every entry with a trace id.
func Traced(id uuid.UUID) func(Log) Log {
	return With(zap.Stringer(TraceKey, id))
}

// TraceKey is the field key used by Traced and WithTraceID.
const TraceKey = "trace_id"
