// Package formatkit provides dynamic string formatting with %(key)
// placeholders, in the spirit of git's pretty-format strings.
//
// formatkit is a small toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - placeholder: Template parsing, rendering, length measurement, and
//     key extraction over %(key) placeholders
//   - values: Loading value maps from YAML or JSON documents
//   - profile: Named template profiles defined in TOML
//   - schema: JSON Schema generation for a template's required values
//   - follow: Live re-rendering of template files on change
//
// # Quick Start
//
// Rendering:
//
//	import "github.com/randalmurphal/formatkit/placeholder"
//	out := placeholder.Render("Hello, %(name)!", map[string]string{"name": "Alice"})
//	// out: "Hello, Alice!"
//
// Alignment and truncation directives ride along inside the placeholder:
//
//	placeholder.Render("%(name:right:8)", vals)  // "   Alice"
//	placeholder.Render("%(name:3:trunc)", vals)  // "Ali"
//
// Measuring:
//
//	lengths := placeholder.Measure("Hello, %(name)!", vals)
//	// lengths: [13, 5] — total rendered length, then each value's length
//
// Key extraction:
//
//	keys := placeholder.ExtractKeys("Hi %(name), today is %(day).", vals)
//	// keys: ["name"] when only "name" is present in vals
//
// # Design Philosophy
//
//   - Rendering is total: malformed syntax degrades to literal text and
//     unknown keys resolve to the empty string. No operation on the core
//     engine returns an error.
//   - Each package usable independently
//   - Sensible defaults with full configurability
package formatkit
