package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// Placeholders substituted for metadata the host could not supply.
const (
	UnnamedModule = "<unnamed>"
	UnnamedThread = "unnamed"
)

// Record is a snapshot of one log event as handed over by the host
// framework. Module, Line and Thread are optional: the zero value means
// "absent" and formatters substitute UnnamedModule, 0 and UnnamedThread.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Module  string
	Line    int
	Thread  string
}

// ModuleOrDefault returns the module path, or UnnamedModule when absent
func (r *Record) ModuleOrDefault() string {
	if r.Module == "" {
		return UnnamedModule
	}
	return r.Module
}

// LineOrDefault returns the line number, or 0 when absent
func (r *Record) LineOrDefault() int {
	if r.Line < 0 {
		return 0
	}
	return r.Line
}

// ThreadOrDefault returns the thread name, or UnnamedThread when absent
func (r *Record) ThreadOrDefault() string {
	if r.Thread == "" {
		return UnnamedThread
	}
	return r.Thread
}

// CallerInfo contains information about the code location that emitted a record
type CallerInfo struct {
	Module   string
	Function string
	File     string
	Line     int
	Defined  bool
}

// recordPool is a pool of Record objects used by host adapters
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a zeroed Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	*r = Record{}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Module = ""
	r.Thread = ""
	recordPool.Put(r)
}

// CallerFromPC resolves a program counter, as carried by slog.Record,
// into caller information. A zero pc yields an undefined CallerInfo.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.Function == "" && frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		Module:   ModuleFromFunction(frame.Function),
		Function: frame.Function,
		File:     frame.File,
		Line:     frame.Line,
		Defined:  true,
	}
}

// ModuleFromFunction extracts the package import path from a fully
// qualified function name such as "github.com/a/b/pkg.(*T).Method".
func ModuleFromFunction(fn string) string {
	if fn == "" {
		return ""
	}
	// The package path ends at the first dot after the last slash.
	lastSlash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[lastSlash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:lastSlash+1+dot]
}
