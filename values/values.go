// Package values loads and manipulates the key/value maps consumed by
// the placeholder engine.
//
// The engine itself only deals in strings; this package is the boundary
// where scalar values from YAML or JSON documents are converted to
// their string form before rendering:
//
//	vals, err := values.LoadFile("release.yaml")
//	out := placeholder.Render("v%(major).%(minor) (%(channel))", vals)
//
// Nested mappings and sequences have no string form and are rejected
// with ErrNotScalar.
package values

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for value-map loading.
var (
	// ErrDecode is returned when the document fails to parse.
	ErrDecode = errors.New("values decode error")

	// ErrNotScalar is returned when a value is a mapping or sequence.
	ErrNotScalar = errors.New("value is not a scalar")
)

// Map is a value map: placeholder keys to their replacement strings.
type Map map[string]string

// Parse decodes a YAML document (JSON is valid YAML) into a Map.
// Scalar values of any type are stringified; null becomes the empty
// string. Nested collections are rejected with ErrNotScalar.
func Parse(data []byte) (Map, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	m := make(Map, len(raw))
	for key, value := range raw {
		s, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, key)
		}
		m[key] = s
	}
	return m, nil
}

// LoadFile reads and parses a YAML or JSON file into a Map.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file: %w", err)
	}
	return Parse(data)
}

// Merge combines maps left to right; later maps win on key conflicts.
func Merge(maps ...Map) Map {
	merged := Map{}
	for _, m := range maps {
		for key, value := range m {
			merged[key] = value
		}
	}
	return merged
}

// Keys returns the map's keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// stringify converts a decoded scalar to its string form.
func stringify(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", ErrNotScalar
	}
}
