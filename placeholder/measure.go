package placeholder

import "unicode/utf8"

// Measure reports rune lengths for the template under the given values.
// Index 0 holds the total length Render would produce, padding
// included. The following entries hold, in template order, each
// placeholder's resolved value length: after truncation but before
// padding. A key missing from values contributes a zero entry.
//
// Literal runs have no individual entries; they only contribute to the
// total. Lengths are counted in runes, not bytes.
func (e *Engine) Measure(template string, values map[string]string) []int {
	return MeasureSegments(e.Parse(template), values)
}

// MeasureSegments measures an already parsed segment sequence.
func MeasureSegments(segments []Segment, values map[string]string) []int {
	lengths := []int{0}
	for _, seg := range segments {
		switch s := seg.(type) {
		case Literal:
			lengths[0] += utf8.RuneCountInString(s.Text)
		case Placeholder:
			value := values[s.Key]
			lengths[0] += s.renderedLen(value)
			lengths = append(lengths, s.resolvedLen(value))
		}
	}
	return lengths
}
