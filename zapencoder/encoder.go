package zapencoder

import (
	"bytes"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logline/core"
	"github.com/philipp01105/logline/formatter"
)

var (
	linePool    = buffer.NewPool()
	scratchPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}
)

// Encoder is a zapcore.Encoder backed by a logline formatter. Context
// fields added through zap's With are kept in the embedded
// MapObjectEncoder. Nested objects and namespaces are flattened into
// dotted keys ("http.path=/x").
type Encoder struct {
	*zapcore.MapObjectEncoder
	namespaces []string
	formatter  formatter.BufferFormatter
	lineEnding string
}

// New creates an Encoder. A nil formatter selects the plain console
// formatter; the line ending is taken from cfg, defaulting to "\n".
func New(f formatter.BufferFormatter, cfg zapcore.EncoderConfig) *Encoder {
	if f == nil {
		f = formatter.NewConsoleFormatter(formatter.Config{})
	}
	lineEnding := cfg.LineEnding
	if lineEnding == "" {
		lineEnding = zapcore.DefaultLineEnding
	}
	return &Encoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		formatter:        f,
		lineEnding:       lineEnding,
	}
}

// Register makes the encoder available to zap.Config under name
func Register(name string, f formatter.BufferFormatter) error {
	return zap.RegisterEncoder(name, func(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return New(f, cfg), nil
	})
}

// OpenNamespace nests all fields added afterwards under key
func (e *Encoder) OpenNamespace(key string) {
	e.namespaces = append(e.namespaces, key)
	e.MapObjectEncoder.OpenNamespace(key)
}

// Clone copies the encoder, including its context fields and open namespaces
func (e *Encoder) Clone() zapcore.Encoder {
	return &Encoder{
		MapObjectEncoder: e.copyFields(),
		namespaces:       append([]string(nil), e.namespaces...),
		formatter:        e.formatter,
		lineEnding:       e.lineEnding,
	}
}

// copyFields copies the context fields and reopens the namespaces, so
// fields added to the copy land where they would land in e.
func (e *Encoder) copyFields() *zapcore.MapObjectEncoder {
	m := zapcore.NewMapObjectEncoder()
	src := e.Fields
	for _, ns := range e.namespaces {
		for k, v := range src {
			if k != ns {
				_ = m.AddReflected(k, v)
			}
		}
		m.OpenNamespace(ns)
		src, _ = src[ns].(map[string]interface{})
	}
	for k, v := range src {
		_ = m.AddReflected(k, v)
	}
	return m
}

// EncodeEntry renders one entry as a single line followed by the line ending
func (e *Encoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	rec.Time = ent.Time
	rec.Level = zapLevelToCore(ent.Level)
	rec.Module = ent.LoggerName
	if ent.Caller.Defined {
		if rec.Module == "" {
			rec.Module = core.ModuleFromFunction(ent.Caller.Function)
		}
		rec.Line = ent.Caller.Line
	}

	m := e.copyFields()
	for _, f := range fields {
		f.AddTo(m)
	}
	thread, extras := splitFields(m.Fields)
	rec.Thread = thread
	rec.Message = core.AppendMessage(ent.Message, extras)

	scratch := scratchPool.Get().(*bytes.Buffer)
	scratch.Reset()
	e.formatter.FormatEntry(rec, scratch)

	line := linePool.Get()
	_, _ = line.Write(scratch.Bytes())
	if scratch.Cap() <= 64*1024 {
		scratchPool.Put(scratch)
	}

	if ent.Stack != "" {
		line.AppendString(e.lineEnding)
		line.AppendString(ent.Stack)
	}
	line.AppendString(e.lineEnding)
	return line, nil
}

// splitFields separates a top-level thread name from the fields
// rendered into the message
func splitFields(m map[string]interface{}) (string, []core.Field) {
	thread, _ := m[core.ThreadKey].(string)
	return thread, flattenFields(make([]core.Field, 0, len(m)), "", m)
}

// flattenFields appends the fields of m sorted by key, descending into
// nested maps with dotted keys
func flattenFields(dst []core.Field, prefix string, m map[string]interface{}) []core.Field {
	for _, k := range sortedKeys(m) {
		v := m[k]
		if prefix == "" && k == core.ThreadKey {
			if _, ok := v.(string); ok {
				continue
			}
		}
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			dst = flattenFields(dst, key, nested)
			continue
		}
		dst = append(dst, core.Field{Key: key, Type: core.AnyType, Any: v})
	}
	return dst
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// zapLevelToCore converts a zapcore.Level to a core.Level
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
