package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is an alias for zap.Field for easier usage
type Field = zap.Field

// String creates a string field
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

// Float64 creates a float64 field
func Float64(key string, value float64) Field {
	return zap.Float64(key, value)
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return zap.Any(key, value)
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Time creates a time field
func Time(key string, value time.Time) Field {
	return zap.Time(key, value)
}

// Err creates an error field with key "error"
func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField creates an error field
func ErrorField(err error) Field {
	return zap.Error(err)
}

// Strings creates a string slice field
func Strings(key string, value []string) Field {
	return zap.Strings(key, value)
}
