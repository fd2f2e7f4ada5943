package placeholder

import "strings"

// Render substitutes values into the template and applies each
// placeholder's alignment, width, and truncation directives. A key
// missing from values resolves to the empty string, so rendering always
// produces output; it never fails.
func (e *Engine) Render(template string, values map[string]string) string {
	return RenderSegments(e.Parse(template), values)
}

// RenderSegments renders an already parsed segment sequence.
func RenderSegments(segments []Segment, values map[string]string) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case Literal:
			sb.WriteString(s.Text)
		case Placeholder:
			sb.WriteString(s.format(values[s.Key]))
		}
	}
	return sb.String()
}
