package jsonload

// Object is a decoded JSON object that remembers key order.
//
// Nested objects decode to *Object, arrays to []any, numbers to
// json.Number, and the remaining scalars to string, bool or nil.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key. A key that is already present keeps its
// original position and takes the new value.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in document order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	result := make([]string, len(o.keys))
	copy(result, o.keys)
	return result
}

// Len returns the number of keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}
