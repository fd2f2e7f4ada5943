package placeholder

// ExtractKeys returns the key of every placeholder whose key is present
// in values, in template order, duplicates kept. Keys absent from
// values are silently omitted; callers wanting the full reference list
// regardless of the value map should use Keys.
func (e *Engine) ExtractKeys(template string, values map[string]string) []string {
	var keys []string
	for _, seg := range e.Parse(template) {
		p, ok := seg.(Placeholder)
		if !ok {
			continue
		}
		if _, present := values[p.Key]; present {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// Keys returns every key the template references, deduplicated, in
// order of first appearance.
func (e *Engine) Keys(template string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, seg := range e.Parse(template) {
		p, ok := seg.(Placeholder)
		if !ok {
			continue
		}
		if !seen[p.Key] {
			seen[p.Key] = true
			keys = append(keys, p.Key)
		}
	}
	return keys
}
