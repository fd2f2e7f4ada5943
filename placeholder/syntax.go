package placeholder

// Syntax defines the characters that delimit a placeholder.
// The default syntax marks placeholders as %(key) with an optional
// formatting suffix separated by colons: %(key:right:10:trunc).
type Syntax struct {
	// Escape introduces a placeholder (default '%').
	Escape rune

	// Open follows Escape to start a placeholder body (default '(').
	Open rune

	// Close terminates the placeholder body (default ')').
	Close rune

	// Sep separates the key from formatting fields, and the
	// formatting fields from each other (default ':').
	Sep rune
}

// DefaultSyntax returns the standard %(key:...) syntax.
func DefaultSyntax() Syntax {
	return Syntax{Escape: '%', Open: '(', Close: ')', Sep: ':'}
}

// Engine parses and processes placeholder templates. The zero value is
// not usable; construct with NewEngine or NewEngineWithSyntax.
//
// An Engine is stateless and safe for concurrent use: every operation
// parses its template fresh and touches nothing but its arguments.
type Engine struct {
	syntax Syntax
}

// NewEngine creates an engine using the default %(key) syntax.
func NewEngine() *Engine {
	return &Engine{syntax: DefaultSyntax()}
}

// NewEngineWithSyntax creates an engine using a custom syntax.
func NewEngineWithSyntax(s Syntax) *Engine {
	return &Engine{syntax: s}
}

// Syntax returns the engine's syntax.
func (e *Engine) Syntax() Syntax {
	return e.syntax
}
