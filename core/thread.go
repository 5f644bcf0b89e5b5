package core

import "context"

// ThreadKey is the attribute key host adapters read a thread name from
// when the context does not carry one.
const ThreadKey = "thread"

type threadCtxKey struct{}

// WithThread returns a copy of ctx that carries the given thread name.
// Goroutines have no names of their own, so hosts attach one explicitly.
func WithThread(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, threadCtxKey{}, name)
}

// ThreadFromContext returns the thread name stored in ctx, if any
func ThreadFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(threadCtxKey{}).(string)
	return name, ok && name != ""
}
