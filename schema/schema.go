// Package schema generates JSON Schemas describing the value map a
// template requires.
//
// The placeholder engine never fails on a missing key; applications
// that accept value maps from the outside (request bodies, config
// files, form posts) can publish the schema instead and validate
// before rendering:
//
//	s := schema.ForTemplate("Hello, %(name)! Today is %(day).")
//	data, _ := json.MarshalIndent(s, "", "  ")
//
// produces an object schema with a required string property per
// referenced key. Additional properties stay allowed: extra keys are
// harmless to the engine.
package schema

import (
	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/formatkit/placeholder"
)

// For builds a JSON Schema for the value map the template requires,
// parsed under the engine's syntax. Keys appear as properties in order
// of first reference.
func For(e *placeholder.Engine, template string) *jsonschema.Schema {
	keys := e.Keys(template)

	props := jsonschema.NewProperties()
	for _, key := range keys {
		props.Set(key, &jsonschema.Schema{Type: "string"})
	}

	return &jsonschema.Schema{
		Version:    jsonschema.Version,
		Type:       "object",
		Properties: props,
		Required:   keys,
	}
}

// ForTemplate builds the schema using the default %(key) syntax.
func ForTemplate(template string) *jsonschema.Schema {
	return For(placeholder.NewEngine(), template)
}
