package checkermap

import (
	"strings"

	"github.com/jokarl/checkmap/internal/jsonload"
)

// requireObject returns the object stored under a mandatory top-level key
func requireObject(doc *jsonload.Object, key, source string) (*jsonload.Object, error) {
	v, ok := doc.Get(key)
	if !ok {
		return nil, formatErrorf(source, "\"%s\" key not found", key)
	}
	obj, ok := v.(*jsonload.Object)
	if !ok {
		return nil, formatErrorf(source, "value of \"%s\" must be a dictionary", key)
	}
	return obj, nil
}

// catalogFrom builds a Catalog from a name -> text object
func catalogFrom(obj *jsonload.Object, key, source string) (Catalog, error) {
	c := Catalog{entries: make(map[string]string, obj.Len())}
	for _, name := range obj.Keys() {
		v, _ := obj.Get(name)
		text, ok := v.(string)
		if !ok {
			return Catalog{}, formatErrorf(source, "value of %s under \"%s\" must be a string", name, key)
		}
		c.names = append(c.names, name)
		c.entries[name] = text
	}
	return c, nil
}

// undeclared returns the names of obj that are not declared in the catalog,
// in document order
func undeclared(obj *jsonload.Object, declared Catalog) []string {
	var diff []string
	for _, name := range obj.Keys() {
		if !declared.Has(name) {
			diff = append(diff, name)
		}
	}
	return diff
}

// stringList converts a decoded JSON array of strings. The second return
// value is false when v is not an array; the third names the index of the
// first non-string element, or -1.
func stringList(v any) ([]string, bool, int) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false, -1
	}
	result := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, true, i
		}
		result = append(result, s)
	}
	return result, true, -1
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func copyStrings(s []string) []string {
	result := make([]string, len(s))
	copy(result, s)
	return result
}
