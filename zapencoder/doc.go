// Package zapencoder lets go.uber.org/zap render entries with logline
// formatters.
//
// The Encoder maps zap's entry onto a core.Record: the logger name (or,
// failing that, the caller's package path) becomes the module, the
// caller line the line number and a string field named "thread" the
// thread name. All other fields are appended to the message as
// key=value pairs, context fields first in key order, then call-site
// fields in the order given.
package zapencoder
