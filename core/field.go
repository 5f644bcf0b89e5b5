package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a typed key-value pair that host adapters render into the
// displayable message before a record reaches a formatter.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Uint64Type:
		return strconv.FormatUint(uint64(f.Int64), 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339Nano)
	case DurationType:
		return time.Duration(f.Int64).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// AppendMessage returns msg followed by " key=value" for every field.
// msg is returned unchanged when there are no fields.
func AppendMessage(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}
	b := make([]byte, 0, len(msg)+16*len(fields))
	b = append(b, msg...)
	for _, f := range fields {
		b = append(b, ' ')
		b = append(b, f.Key...)
		b = append(b, '=')
		b = append(b, f.StringValue()...)
	}
	return string(b)
}
