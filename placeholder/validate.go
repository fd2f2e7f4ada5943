package placeholder

import (
	"errors"
	"fmt"
)

// ErrMissingKey is returned when a required key is absent from a value map.
var ErrMissingKey = errors.New("required key missing")

// ValidateValues checks that every required key is present in values.
// Rendering itself never fails on a missing key; this is for callers
// who want strict validation up front:
//
//	e := placeholder.NewEngine()
//	if err := placeholder.ValidateValues(e.Keys(tmpl), vals); err != nil { ... }
func ValidateValues(required []string, values map[string]string) error {
	for _, name := range required {
		if _, ok := values[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingKey, name)
		}
	}
	return nil
}
