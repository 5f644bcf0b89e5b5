package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logline/core"
	"github.com/philipp01105/logline/formatter"
)

func newTestSlog(buf *bytes.Buffer, f formatter.BufferFormatter, opts *SlogOptions) *SlogHandler {
	return NewSlogHandler(NewWriterHandler(WriterConfig{Writer: buf, Formatter: f}), opts)
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(NewWriterHandler(WriterConfig{Writer: &bytes.Buffer{}}), nil)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled by default")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled by default")
	}

	sh = NewSlogHandler(NewWriterHandler(WriterConfig{Writer: &bytes.Buffer{}}), &SlogOptions{Level: slog.Level(-8)})
	if !sh.Enabled(context.Background(), slog.Level(-8)) {
		t.Error("trace-like levels should be enabled when configured")
	}
}

func TestSlogHandler_HandleRecord(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewFileFormatterWithLevel(), nil)

	r := slog.NewRecord(time.Date(2024, 1, 15, 9, 30, 0, 125_000_000, time.UTC), slog.LevelWarn, "disk almost full", 0)
	r.AddAttrs(slog.Int("free_mb", 12), slog.String("mount", "/var"))

	if err := sh.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := "[2024-01-15 09:30:00.125] WARN disk almost full free_mb=12 mount=/var\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSlogHandler_SourceAndThread(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewConsoleFormatter(formatter.Config{}), nil)
	logger := slog.New(sh)

	ctx := core.WithThread(context.Background(), "main")
	logger.InfoContext(ctx, "listening on :8080")

	output := buf.String()
	if !strings.Contains(output, " INFO  github.com/philipp01105/logline/handler:") {
		t.Errorf("Expected caller package as module, got: %s", output)
	}
	if !strings.Contains(output, " T{main} listening on :8080\n") {
		t.Errorf("Expected thread and message, got: %s", output)
	}
	if strings.Contains(output, "<unnamed>:0") {
		t.Errorf("Expected resolved source location, got: %s", output)
	}
}

func TestSlogHandler_ThreadFallbacks(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewConsoleFormatter(formatter.Config{}), &SlogOptions{Thread: "pool"})
	logger := slog.New(sh)

	logger.Info("a")
	logger.Info("b", core.ThreadKey, "worker-3")
	slog.New(sh.WithAttrs([]slog.Attr{slog.String(core.ThreadKey, "bound")})).Info("c")
	slog.New(NewSlogHandler(sh.handler, nil)).Info("d")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{"T{pool} a", "T{worker-3} b", "T{bound} c", "T{unnamed} d"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
}

type workerName string

func (w workerName) LogValue() slog.Value { return slog.StringValue(string(w)) }

func TestSlogHandler_ThreadLogValuer(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewConsoleFormatter(formatter.Config{}), nil)

	slog.New(sh).Info("a", core.ThreadKey, workerName("worker-1"))
	slog.New(sh.WithAttrs([]slog.Attr{slog.Any(core.ThreadKey, workerName("worker-2"))})).Info("b")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], " T{worker-1} a") {
		t.Errorf("line 1 = %q, want thread worker-1", lines[0])
	}
	if !strings.HasSuffix(lines[1], " T{worker-2} b") {
		t.Errorf("line 2 = %q, want thread worker-2", lines[1])
	}
}

func TestSlogLevel(t *testing.T) {
	for _, l := range []core.Level{core.ErrorLevel, core.WarnLevel, core.InfoLevel, core.DebugLevel, core.TraceLevel} {
		if got := slogLevelToCore(SlogLevel(l)); got != l {
			t.Errorf("slogLevelToCore(SlogLevel(%v)) = %v", l, got)
		}
	}
	if SlogLevel(core.OffLevel) <= slog.LevelError {
		t.Errorf("SlogLevel(OFF) = %v, want above error", SlogLevel(core.OffLevel))
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewFileFormatterWithoutLevel(), nil)
	logger := slog.New(sh).With("request_id", "req-123")

	logger.Info("test message", "err", errors.New("boom"))

	output := buf.String()
	if !strings.HasSuffix(output, "] test message request_id=req-123 err=boom\n") {
		t.Errorf("Expected attrs in message, got: %s", output)
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewFileFormatterWithoutLevel(), nil)
	logger := slog.New(sh).WithGroup("auth")

	logger.Info("test message", "user_id", 123, slog.Group("session", "ttl", time.Second))

	output := buf.String()
	if !strings.Contains(output, "auth.user_id=123") {
		t.Errorf("Expected 'auth.user_id=123' in output, got: %s", output)
	}
	if !strings.Contains(output, "auth.session.ttl=1s") {
		t.Errorf("Expected nested group in output, got: %s", output)
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	sh := newTestSlog(&buf, formatter.NewFileFormatterWithLevel(), nil)
	logger := slog.New(sh)

	logger.Debug("should not appear")
	if buf.Len() > 0 {
		t.Error("Debug message should not have been logged")
	}

	logger.Info("should appear")
	if !strings.Contains(buf.String(), "INFO should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", buf.String())
	}
}

func TestSlogHandler_PropagatesWriteError(t *testing.T) {
	sinkErr := errors.New("disk full")
	sh := NewSlogHandler(NewWriterHandler(WriterConfig{Writer: failingWriter{err: sinkErr}}), nil)

	r := slog.NewRecord(time.Now(), slog.LevelError, "lost", 0)
	if err := sh.Handle(context.Background(), r); !errors.Is(err, sinkErr) {
		t.Errorf("Handle() error = %v, want %v", err, sinkErr)
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.Level(-8), core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
