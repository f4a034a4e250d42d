package checkermap

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError.
var ErrFormat = errors.New("format error")

// ErrUnsupportedOperation is returned by operations a map deliberately does
// not provide, such as enumerating a ProfileMap.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrKeyNotFound matches every *KeyNotFoundError.
var ErrKeyNotFound = errors.New("key not found")

// FormatError is returned when a map file does not have the required shape.
type FormatError struct {
	// File is the path (or other source name) of the offending document
	File string
	// Msg identifies the bad key or value and where it occurred
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Format error in %s: %s", e.File, e.Msg)
}

// Is makes errors.Is(err, ErrFormat) true for format errors.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(file, format string, args ...any) *FormatError {
	return &FormatError{File: file, Msg: fmt.Sprintf(format, args...)}
}

// KeyNotFoundError is returned by direct lookups that have no fallback.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("checker '%s' not found", e.Key)
}

// Is makes errors.Is(err, ErrKeyNotFound) true for lookup misses.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// IsFormatError returns true if the error is caused by an invalid map file.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
