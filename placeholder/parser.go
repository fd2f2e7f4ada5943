package placeholder

import (
	"strconv"
	"strings"
	"unicode"
)

// truncToken is the formatting field that enables truncation.
const truncToken = "trunc"

// parseState drives the template scanner. Every grammar violation has a
// fallback transition back to scanning, so parsing never fails.
type parseState int

const (
	stateScanning parseState = iota
	stateEscape
	statePlaceholder
	stateDone
)

// Parse scans the template into an ordered segment sequence without
// consulting any value map. Input that does not conform to the
// placeholder grammar is kept as literal text:
//
//   - a doubled escape character ("%%") yields one literal escape char
//   - the escape character followed by 'n' yields a newline
//   - an unterminated opener ("%(") stays as-is and scanning resumes
//     right after it
//   - a placeholder with an empty or ill-formed key is reproduced
//     verbatim, delimiters included
//
// Placeholders do not span lines and do not nest; the first closing
// delimiter after the opener wins.
func (e *Engine) Parse(template string) []Segment {
	s := &scanner{syntax: e.syntax, src: []rune(template)}
	state := stateScanning
	for state != stateDone {
		switch state {
		case stateScanning:
			state = s.scanLiteral()
		case stateEscape:
			state = s.scanEscape()
		case statePlaceholder:
			state = s.scanPlaceholder()
		}
	}
	s.flush()
	return s.segs
}

// scanner holds the cursor, the accumulating literal run, and the
// segments emitted so far.
type scanner struct {
	syntax Syntax
	src    []rune
	pos    int
	lit    []rune
	segs   []Segment
}

// scanLiteral copies runes into the literal buffer until the escape
// character or the end of input.
func (s *scanner) scanLiteral() parseState {
	for s.pos < len(s.src) {
		if s.src[s.pos] == s.syntax.Escape {
			return stateEscape
		}
		s.lit = append(s.lit, s.src[s.pos])
		s.pos++
	}
	return stateDone
}

// scanEscape decides what the escape character introduces. The cursor
// is on the escape character.
func (s *scanner) scanEscape() parseState {
	if s.pos+1 >= len(s.src) {
		// Trailing escape character is literal.
		s.lit = append(s.lit, s.syntax.Escape)
		s.pos++
		return stateScanning
	}
	switch next := s.src[s.pos+1]; {
	case next == s.syntax.Escape:
		// Doubled escape denotes one literal escape character.
		s.lit = append(s.lit, s.syntax.Escape)
		s.pos += 2
	case next == s.syntax.Open:
		return statePlaceholder
	case next == 'n':
		s.lit = append(s.lit, '\n')
		s.pos += 2
	default:
		s.lit = append(s.lit, s.syntax.Escape)
		s.pos++
	}
	return stateScanning
}

// scanPlaceholder parses one placeholder. The cursor is on the escape
// character, with the opening delimiter right behind it.
func (s *scanner) scanPlaceholder() parseState {
	start := s.pos
	end := s.findClose(start + 2)
	if end < 0 {
		// Unterminated: the opener is literal text and scanning
		// resumes right after it, not after the rest of the input.
		s.lit = append(s.lit, s.syntax.Escape, s.syntax.Open)
		s.pos = start + 2
		return stateScanning
	}
	p, ok := s.parseInterior(string(s.src[start+2 : end]))
	if !ok {
		// Empty or ill-formed key: reproduce the original
		// characters verbatim, delimiters included.
		s.lit = append(s.lit, s.src[start:end+1]...)
		s.pos = end + 1
		return stateScanning
	}
	s.flush()
	s.segs = append(s.segs, p)
	s.pos = end + 1
	return stateScanning
}

// findClose returns the index of the closing delimiter, or -1 when the
// placeholder is unterminated: end of input, end of line, or the start
// of another placeholder comes first.
func (s *scanner) findClose(from int) int {
	for i := from; i < len(s.src); i++ {
		switch {
		case s.src[i] == s.syntax.Close:
			return i
		case s.src[i] == '\n':
			return -1
		case s.src[i] == s.syntax.Escape && i+1 < len(s.src) && s.src[i+1] == s.syntax.Open:
			return -1
		}
	}
	return -1
}

// parseInterior splits the placeholder body into the key and formatting
// fields. Unrecognized fields are skipped; for repeated fields of the
// same kind the first occurrence wins.
func (s *scanner) parseInterior(interior string) (Placeholder, bool) {
	fields := strings.Split(interior, string(s.syntax.Sep))
	key := strings.TrimSpace(fields[0])
	if key == "" || !validKey(key) {
		return Placeholder{}, false
	}

	p := Placeholder{Key: key}
	var alignSet, widthSet bool
	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if a, ok := parseAlignment(f); ok {
			if !alignSet {
				p.Align = a
				alignSet = true
			}
			continue
		}
		if f == truncToken {
			p.Truncate = true
			continue
		}
		if n, err := strconv.Atoi(f); err == nil && n >= 0 {
			if !widthSet {
				p.Width = n
				p.HasWidth = true
				widthSet = true
			}
			continue
		}
		// Anything else is skipped; the parser is permissive.
	}
	return p, true
}

// flush emits the pending literal run, if any.
func (s *scanner) flush() {
	if len(s.lit) > 0 {
		s.segs = append(s.segs, Literal{Text: string(s.lit)})
		s.lit = s.lit[:0]
	}
}

// parseAlignment maps an alignment token to its Alignment. Both the
// word forms and the git-style symbols are accepted.
func parseAlignment(field string) (Alignment, bool) {
	switch strings.ToLower(field) {
	case "left", "<":
		return AlignLeft, true
	case "right", ">":
		return AlignRight, true
	case "center", "^":
		return AlignCenter, true
	}
	return AlignLeft, false
}

// validKey reports whether every rune is identifier-like: a letter,
// digit, or underscore.
func validKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
