// Package pattern compiles textual format definitions into reusable,
// bidirectional formatter/parsers for the civil and zone value types.
//
// A pattern is compiled once, against a culture and a template value, into
// an ordered sequence of steps. Formatting runs the steps against an output
// buffer and cannot fail; parsing runs them against an input cursor and a
// fresh accumulator, aborting at the first step that cannot consume a valid
// prefix. Compiled patterns hold no mutable state and are safe for
// concurrent use.
package pattern

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ngrash/go-civil/culture"
)

// step is one compiled unit of work: format appends to the output buffer,
// parse consumes a prefix of the input and writes into the bucket. During
// formatting no step may fail, because only internally-valid values are
// ever passed in.
type step[V any] struct {
	format func(V, *bytes.Buffer)
	parse  func(*cursor, *Bucket) *ParseError
}

// run is a maximal sequence of identical pattern characters. Its length
// selects the field width, e.g. "yyyy" dispatches 'y' with count 4.
type run struct {
	ch    byte
	count int
	pos   int
}

// handler compiles one pattern character run into steps. Handlers declare
// the fields they write through builder.useField, which rejects duplicate
// writers.
type handler[V any] func(*builder[V], run) *PatternError

// builder accumulates steps and field usage during a single compilation.
type builder[V any] struct {
	pattern string
	culture culture.Culture
	steps   []step[V]
	used    FieldSet
}

func (b *builder[V]) fail(pos int, format string, args ...any) *PatternError {
	return &PatternError{Pattern: b.pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// useField marks a field as written by the current step. A field written
// by more than one step of the same pattern is a compile-time error.
func (b *builder[V]) useField(f Field, pos int) *PatternError {
	if b.used.Has(f) {
		return b.fail(pos, "field %v written more than once", f)
	}
	b.used = b.used.with(f)
	return nil
}

func (b *builder[V]) add(format func(V, *bytes.Buffer), parse func(*cursor, *Bucket) *ParseError) {
	b.steps = append(b.steps, step[V]{format: format, parse: parse})
}

// literal emits a step that formats s verbatim and requires an exact,
// case-sensitive match when parsing.
func (b *builder[V]) literal(s string) {
	b.add(
		func(_ V, buf *bytes.Buffer) { buf.WriteString(s) },
		func(c *cursor, _ *Bucket) *ParseError { return c.literal(s) },
	)
}

// compile scans a format definition left to right and dispatches runs of
// pattern characters to their handlers. Single-character definitions are
// resolved against the named standard formats first; standard expands such
// a character to a full template using the culture.
func compile[V any](text string, cul culture.Culture, handlers map[byte]handler[V], standard func(byte, culture.Culture) string) (*builder[V], *PatternError) {
	b := &builder[V]{pattern: text, culture: cul}
	if text == "" {
		return nil, b.fail(0, "format string is empty")
	}
	if len(text) == 1 {
		expanded := standard(text[0], cul)
		if expanded == "" {
			return nil, b.fail(0, "unknown standard format %q", text)
		}
		if err := b.scan(expanded, handlers); err != nil {
			// Report against the user's input, not the expansion.
			return nil, b.fail(0, "standard format %q: %s", text, err.Msg)
		}
		return b, nil
	}
	if err := b.scan(text, handlers); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *builder[V]) scan(text string, handlers map[byte]handler[V]) *PatternError {
	for pos := 0; pos < len(text); {
		ch := text[pos]
		switch ch {
		case '%', '\\':
			// Both escapes force the following single character to be a
			// literal.
			if pos+1 >= len(text) {
				return b.fail(pos, "escape character %q at end of pattern", ch)
			}
			b.literal(string(text[pos+1]))
			pos += 2
		case '\'', '"':
			end := strings.IndexByte(text[pos+1:], ch)
			if end == -1 {
				return b.fail(pos, "unterminated quote")
			}
			b.literal(text[pos+1 : pos+1+end])
			pos += end + 2
		default:
			count := 1
			for pos+count < len(text) && text[pos+count] == ch {
				count++
			}
			h, ok := handlers[ch]
			if !ok {
				// Characters with no registered handler are literal
				// matches.
				b.literal(text[pos : pos+count])
				pos += count
				continue
			}
			if err := h(b, run{ch: ch, count: count, pos: pos}); err != nil {
				return err
			}
			pos += count
		}
	}
	return nil
}

// Pattern is the immutable artifact produced by compiling a format
// definition: a bidirectional formatter and parser for values of type V.
type Pattern[V any] struct {
	text     string
	steps    []step[V]
	used     FieldSet
	assemble func(*Bucket, *cursor) (V, *ParseError)
}

// Text returns the format definition the pattern was compiled from.
func (p *Pattern[V]) Text() string { return p.text }

// Fields returns the set of fields the pattern writes when parsing.
func (p *Pattern[V]) Fields() FieldSet { return p.used }

// Format renders the value according to the pattern.
func (p *Pattern[V]) Format(v V) string {
	var buf bytes.Buffer
	for _, s := range p.steps {
		s.format(v, &buf)
	}
	return buf.String()
}

// Parse reads a value from text. The whole input must be consumed; fields
// the pattern does not mention fall back to the template value supplied at
// compile time. On failure the returned error is a *ParseError pointing at
// the failing position.
func (p *Pattern[V]) Parse(text string) (V, error) {
	var zero V
	c := &cursor{text: text}
	bk := &Bucket{}
	for _, s := range p.steps {
		if err := s.parse(c, bk); err != nil {
			return zero, err
		}
	}
	if !c.eof() {
		return zero, c.errorf("unexpected trailing text %q", c.rest())
	}
	v, err := p.assemble(bk, c)
	if err != nil {
		return zero, err
	}
	return v, nil
}
