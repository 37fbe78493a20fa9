package pattern

import "fmt"

// PatternError reports a malformed format definition. It is returned by the
// pattern constructors; compilation never panics on bad pattern text.
type PatternError struct {
	// Pattern is the offending format definition.
	Pattern string
	// Pos is the byte position of the offending character, or the length
	// of the pattern for errors detected after the scan.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: position %d: %s", e.Pattern, e.Pos, e.Msg)
}

// ParseError reports input text that does not match a compiled pattern, or
// parsed fields that fail final validation.
type ParseError struct {
	// Text is the input that failed to parse.
	Text string
	// Pos is the byte position at which parsing failed. Validation errors
	// detected after all steps ran point at the end of the input.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: position %d: %s", e.Text, e.Pos, e.Msg)
}
