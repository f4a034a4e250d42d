package checkermap

import (
	"bytes"
	"encoding/json"
)

// Catalog is an ordered set of declared names and their text, such as
// profile descriptions or guideline documentation URLs.
type Catalog struct {
	names   []string
	entries map[string]string
}

// Names returns the declared names in configuration order
func (c Catalog) Names() []string {
	result := make([]string, len(c.names))
	copy(result, c.names)
	return result
}

// Get returns the text declared for name
func (c Catalog) Get(name string) (string, bool) {
	text, ok := c.entries[name]
	return text, ok
}

// Has reports whether name is declared
func (c Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of declared names
func (c Catalog) Len() int {
	return len(c.names)
}

// Map returns the catalog as a plain map
func (c Catalog) Map() map[string]string {
	result := make(map[string]string, len(c.entries))
	for name, text := range c.entries {
		result[name] = text
	}
	return result
}

// MarshalJSON writes the catalog as a JSON object in configuration order
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
