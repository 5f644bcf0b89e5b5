package handler

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/philipp01105/logline/core"
)

// SlogOptions configures a SlogHandler
type SlogOptions struct {
	// Level is the minimum slog level passed on (default: slog.LevelInfo)
	Level slog.Leveler
	// Thread is used when neither the context nor the record names a thread
	Thread string
}

// SlogHandler is an adapter that implements slog.Handler on top of a Handler.
// It turns each slog.Record into a core.Record: attributes are rendered into
// the message as key=value pairs, the source location comes from the
// record's PC and the thread name from the context.
type SlogHandler struct {
	handler Handler
	level   slog.Leveler
	thread  string
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, opts *SlogOptions) *SlogHandler {
	s := &SlogHandler{
		handler: h,
		level:   slog.LevelInfo,
	}
	if opts != nil {
		if opts.Level != nil {
			s.level = opts.Level
		}
		s.thread = opts.Thread
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle converts a slog.Record into a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	rec.Time = record.Time
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	rec.Level = slogLevelToCore(record.Level)

	if caller := core.CallerFromPC(record.PC); caller.Defined {
		rec.Module = caller.Module
		rec.Line = caller.Line
	}

	thread, fromCtx := core.ThreadFromContext(ctx)

	fields := make([]core.Field, 0, len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		a.Value = a.Value.Resolve()
		if s.group == "" && a.Key == core.ThreadKey && a.Value.Kind() == slog.KindString {
			if !fromCtx {
				thread = a.Value.String()
			}
			return true
		}
		fields = appendAttr(fields, s.group, a)
		return true
	})

	if thread == "" {
		thread = s.thread
	}
	rec.Thread = thread
	rec.Message = core.AppendMessage(record.Message, fields)

	return s.handler.Handle(rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
// A top-level "thread" attribute sets the default thread name.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := s.clone()
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if s.group == "" && a.Key == core.ThreadKey && a.Value.Kind() == slog.KindString {
			clone.thread = a.Value.String()
			continue
		}
		clone.attrs = appendAttr(clone.attrs, s.group, a)
	}
	return clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := s.clone()
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return clone
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]core.Field, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		thread:  s.thread,
		attrs:   attrs,
		group:   s.group,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// SlogLevel converts a core.Level to the slog level passed as
// SlogOptions.Level. OffLevel maps above every slog level.
func SlogLevel(level core.Level) slog.Level {
	switch level {
	case core.OffLevel:
		return slog.Level(math.MaxInt)
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarnLevel:
		return slog.LevelWarn
	case core.DebugLevel:
		return slog.LevelDebug
	case core.TraceLevel:
		return slog.LevelDebug - 4
	default:
		return slog.LevelInfo
	}
}

// appendAttr converts a slog.Attr to core.Fields, prepending the group
// prefix if present. Group values are flattened recursively.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
