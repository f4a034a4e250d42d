// Package jsonload reads JSON configuration files into order-preserving
// objects.
//
// LoadOrEmpty never fails: a missing, unreadable, empty or malformed file
// yields an empty Object and a log line. Callers validate the shape of
// what they get back.
package jsonload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
)

// ErrNotObject is returned when the top-level JSON value is not an object.
var ErrNotObject = errors.New("top-level JSON value is not an object")

// LoadOrEmpty reads the JSON object stored in path. Any failure is logged
// through the default hclog logger and an empty Object is returned.
func LoadOrEmpty(path string) *Object {
	logger := hclog.Default().Named("jsonload")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("file not found, using empty object", "path", path)
		} else {
			logger.Warn("failed to read file, using empty object", "path", path, "error", err)
		}
		return NewObject()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("file is empty, using empty object", "path", path)
		return NewObject()
	}

	obj, err := Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn("failed to parse JSON, using empty object", "path", path, "error", err)
		return NewObject()
	}

	return obj
}

// Parse decodes a JSON document whose top-level value is an object
func Parse(data []byte) (*Object, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON object from r
func Decode(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	obj, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return obj, nil
}

// decodeObject reads key/value pairs up to and including the closing brace
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeArray reads values up to and including the closing bracket
func decodeArray(dec *json.Decoder) ([]any, error) {
	result := make([]any, 0)
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return t, nil
	}
}
