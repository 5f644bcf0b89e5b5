// Package handler binds a formatter to an output sink and adapts
// log/slog to logline.
//
// WriterHandler is the sink binding: it formats each record into a
// handler-owned buffer, appends the line ending and writes the line
// with a single Write call under a mutex. Formatters themselves never
// lock; serializing writes to a shared sink is the handler's job. A
// failed write is returned to the caller wrapped with context and is
// otherwise dropped: no retry, no replay, no internal logging.
//
// SlogHandler implements slog.Handler so that the standard library's
// structured logger can emit logline-formatted lines:
//
//	mode := formatter.ResolveColorMode(formatter.ColorAuto, os.Stderr)
//	h := handler.NewWriterHandler(handler.WriterConfig{
//	    Writer:    os.Stderr,
//	    Formatter: formatter.NewConsoleFormatter(formatter.Config{Color: mode}),
//	})
//	log := slog.New(handler.NewSlogHandler(h, nil))
//	log.InfoContext(core.WithThread(ctx, "main"), "listening", "addr", ":8080")
//
// Attributes are appended to the message as key=value pairs, the
// source location is resolved from the record's PC and the thread name
// is taken from the context.
//
// WriterHandler tracks processed and failed counts via the Stats type.
package handler
