package placeholder

import "strings"

// Alignment selects how a resolved value is padded when it is shorter
// than the placeholder's width.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota

	// AlignRight pads on the left.
	AlignRight

	// AlignCenter splits padding as evenly as possible, with the
	// extra space on the right when the remainder is odd.
	AlignCenter
)

// String returns the alignment's token as used in templates.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Segment is one parsed unit of a template: either a Literal text run
// or a Placeholder reference.
type Segment interface{ isSegment() }

// Literal is a run of template text copied verbatim to the output.
type Literal struct {
	Text string
}

func (Literal) isSegment() {}

// Placeholder is a reference to a named value, with optional alignment,
// width, and truncation directives. A Placeholder produced by Parse
// always carries a well-formed, non-empty Key; malformed placeholder
// syntax never reaches this type and degrades to a Literal instead.
type Placeholder struct {
	// Key is the name looked up in the value map.
	Key string

	// Align is the padding strategy applied when HasWidth is set.
	Align Alignment

	// Width is the field width in runes. Only meaningful when
	// HasWidth is true; otherwise the value's natural width is used.
	Width int

	// HasWidth reports whether a width was specified.
	HasWidth bool

	// Truncate cuts the value to Width runes when it is longer.
	// Without it, a value is never shortened regardless of Width.
	Truncate bool
}

func (Placeholder) isSegment() {}

// format applies the placeholder's width, alignment, and truncation
// directives to a resolved value.
func (p Placeholder) format(value string) string {
	if !p.HasWidth {
		return value
	}
	runes := []rune(value)
	if p.Truncate && len(runes) > p.Width {
		runes = runes[:p.Width]
	}
	pad := p.Width - len(runes)
	if pad <= 0 {
		return string(runes)
	}
	switch p.Align {
	case AlignRight:
		return strings.Repeat(" ", pad) + string(runes)
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", pad-left)
	default:
		return string(runes) + strings.Repeat(" ", pad)
	}
}

// resolvedLen is the rune length of the value after truncation but
// before padding.
func (p Placeholder) resolvedLen(value string) int {
	n := len([]rune(value))
	if p.Truncate && p.HasWidth && n > p.Width {
		return p.Width
	}
	return n
}

// renderedLen is the rune length format would produce for the value.
func (p Placeholder) renderedLen(value string) int {
	n := p.resolvedLen(value)
	if p.HasWidth && p.Width > n {
		return p.Width
	}
	return n
}
