// Package profile loads named template profiles from TOML documents.
//
// A profile bundles templates with default values and an optional
// syntax override, so applications can keep their formatting strings in
// configuration rather than code:
//
//	[templates]
//	greeting = "Hello, %(name)!"
//	row      = "%(name:right:12) %(city)"
//
//	[values]
//	city = "Berlin"
//
//	[syntax]
//	escape = "$"
//
// Rendering merges the profile's default values with per-call
// overrides, overrides winning:
//
//	p, err := profile.Load("format.toml")
//	out, err := p.Render("greeting", values.Map{"name": "Alice"})
package profile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/randalmurphal/formatkit/placeholder"
	"github.com/randalmurphal/formatkit/values"
)

// Sentinel errors for profile operations.
var (
	// ErrDecode is returned when the TOML document fails to parse.
	ErrDecode = errors.New("profile decode error")

	// ErrSyntax is returned when a syntax override is not a single character.
	ErrSyntax = errors.New("invalid syntax override")

	// ErrUnknownTemplate is returned when a template name is not in the profile.
	ErrUnknownTemplate = errors.New("unknown template")
)

// SyntaxConfig overrides placeholder delimiters. Each field must be a
// single character; an empty field keeps the default.
type SyntaxConfig struct {
	Escape    string `toml:"escape"`
	Open      string `toml:"open"`
	Close     string `toml:"close"`
	Separator string `toml:"separator"`
}

// syntax resolves the overrides against the default syntax.
func (c SyntaxConfig) syntax() (placeholder.Syntax, error) {
	s := placeholder.DefaultSyntax()
	for _, o := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"escape", c.Escape, &s.Escape},
		{"open", c.Open, &s.Open},
		{"close", c.Close, &s.Close},
		{"separator", c.Separator, &s.Sep},
	} {
		if o.value == "" {
			continue
		}
		runes := []rune(o.value)
		if len(runes) != 1 {
			return s, fmt.Errorf("%w: %s must be a single character, got %q", ErrSyntax, o.name, o.value)
		}
		*o.dst = runes[0]
	}
	return s, nil
}

// Profile is a set of named templates with default values and the
// syntax they are written in.
type Profile struct {
	// Syntax holds delimiter overrides from the [syntax] table.
	Syntax SyntaxConfig `toml:"syntax"`

	// Templates maps template names to template strings.
	Templates map[string]string `toml:"templates"`

	// Values holds default values merged under per-call overrides.
	Values values.Map `toml:"values"`

	engine *placeholder.Engine
}

// Parse decodes a TOML profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s, err := p.Syntax.syntax()
	if err != nil {
		return nil, err
	}
	p.engine = placeholder.NewEngineWithSyntax(s)
	return &p, nil
}

// Load reads and parses a TOML profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Engine returns the engine configured with the profile's syntax.
func (p *Profile) Engine() *placeholder.Engine {
	return p.engine
}

// Names returns the profile's template names in sorted order.
func (p *Profile) Names() []string {
	names := make([]string, 0, len(p.Templates))
	for name := range p.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// template looks a template up by name.
func (p *Profile) template(name string) (string, error) {
	t, ok := p.Templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

// Render renders the named template with the profile's default values
// merged under the overrides.
func (p *Profile) Render(name string, overrides values.Map) (string, error) {
	t, err := p.template(name)
	if err != nil {
		return "", err
	}
	return p.engine.Render(t, values.Merge(p.Values, overrides)), nil
}

// Measure measures the named template under the merged values. See
// placeholder.Engine.Measure for the layout of the result.
func (p *Profile) Measure(name string, overrides values.Map) ([]int, error) {
	t, err := p.template(name)
	if err != nil {
		return nil, err
	}
	return p.engine.Measure(t, values.Merge(p.Values, overrides)), nil
}

// ExtractKeys lists the named template's keys present in the merged
// values, in template order.
func (p *Profile) ExtractKeys(name string, overrides values.Map) ([]string, error) {
	t, err := p.template(name)
	if err != nil {
		return nil, err
	}
	return p.engine.ExtractKeys(t, values.Merge(p.Values, overrides)), nil
}
