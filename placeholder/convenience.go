package placeholder

// Render substitutes values into the template using the default syntax.
func Render(template string, values map[string]string) string {
	return NewEngine().Render(template, values)
}

// Measure reports rune lengths for the template using the default
// syntax. See Engine.Measure for the layout of the result.
func Measure(template string, values map[string]string) []int {
	return NewEngine().Measure(template, values)
}

// ExtractKeys returns the referenced keys present in values, in
// template order, using the default syntax.
func ExtractKeys(template string, values map[string]string) []string {
	return NewEngine().ExtractKeys(template, values)
}

// Keys returns every key the template references using the default
// syntax, deduplicated, in order of first appearance.
func Keys(template string) []string {
	return NewEngine().Keys(template)
}
