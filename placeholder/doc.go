// Package placeholder parses and processes %(key) placeholder
// templates, in the style of git's pretty-format strings.
//
// # Syntax
//
// A placeholder is the escape character, an opening delimiter, a key,
// an optional formatting suffix, and a closing delimiter:
//
//	Hello, %(name)!
//
// The formatting suffix rides inside the placeholder, with fields
// separated by colons. Recognized fields are an alignment token
// (left, right, center — or the git-style <, >, ^), a field width, and
// the trunc marker:
//
//	%(name:8)             pad "Al" to "Al      "
//	%(name:right:8)       pad "Al" to "      Al"
//	%(name:center:8)      pad "Al" to "   Al   "
//	%(name:3:trunc)       cut "Alice" to "Ali"
//
// Without a width, alignment and trunc have no effect. Without trunc, a
// value longer than the width is never shortened. Unrecognized fields
// are skipped.
//
// Two escape characters in a row produce one literal escape character,
// and %n produces a newline:
//
//	100%%      ->  100%
//	a%nb       ->  a<newline>b
//
// # Never Failing
//
// No operation returns an error. Malformed or unterminated placeholder
// syntax stays in the output as literal text, and a key missing from
// the value map resolves to the empty string. Callers that need strict
// validation can compare Keys against their value map up front, or use
// the schema package.
//
// # Operations
//
// Render substitutes values:
//
//	vals := map[string]string{"name": "Alice"}
//	placeholder.Render("Hello, %(name)!", vals)
//	// "Hello, Alice!"
//
// Measure reports rune lengths: the total rendered length first, then
// each placeholder's value length in template order:
//
//	placeholder.Measure("Hello, %(name)!", vals)
//	// [13, 5]
//
// ExtractKeys lists the referenced keys that are present in the value
// map, in template order, duplicates kept:
//
//	placeholder.ExtractKeys("Hello, %(name)! Today is %(day).", vals)
//	// ["name"]
//
// # Custom Syntax
//
// The delimiters are configurable per engine:
//
//	e := placeholder.NewEngineWithSyntax(placeholder.Syntax{
//		Escape: '$', Open: '{', Close: '}', Sep: ',',
//	})
//	e.Render("Hello, ${name}!", vals)
//
// # Location
//
// This package is part of the formatkit library:
//
//	import "github.com/randalmurphal/formatkit/placeholder"
package placeholder
