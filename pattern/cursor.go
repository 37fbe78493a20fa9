package pattern

import (
	"fmt"
	"strings"
)

// cursor walks the input text during a parse. It is distinct from the
// compilation scan: the cursor consumes data text, never pattern text.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) eof() bool { return c.pos >= len(c.text) }

func (c *cursor) rest() string { return c.text[c.pos:] }

func (c *cursor) errorf(format string, args ...any) *ParseError {
	return &ParseError{Text: c.text, Pos: c.pos, Msg: fmt.Sprintf(format, args...)}
}

// literal consumes s exactly, case-sensitive.
func (c *cursor) literal(s string) *ParseError {
	if !strings.HasPrefix(c.rest(), s) {
		return c.errorf("expected %q", s)
	}
	c.pos += len(s)
	return nil
}

// sign consumes an optional leading minus and reports whether it was
// present.
func (c *cursor) sign() bool {
	if !c.eof() && c.text[c.pos] == '-' {
		c.pos++
		return true
	}
	return false
}

// digits consumes between min and max decimal digits greedily and returns
// their value. It does not backtrack: once a digit is consumed it is spent.
func (c *cursor) digits(min, max int) (int, bool) {
	n, count := 0, 0
	for count < max && !c.eof() {
		ch := c.text[c.pos]
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
		c.pos++
		count++
	}
	if count < min {
		return 0, false
	}
	return n, true
}

// oneOf consumes the longest matching candidate, comparing ASCII
// case-insensitively, and returns its index. Empty candidates never match.
func (c *cursor) oneOf(candidates []string) (int, bool) {
	best, bestLen := -1, 0
	rest := c.rest()
	for i, cand := range candidates {
		if cand == "" || len(cand) < bestLen {
			continue
		}
		if len(rest) >= len(cand) && strings.EqualFold(rest[:len(cand)], cand) {
			best, bestLen = i, len(cand)
		}
	}
	if best == -1 {
		return 0, false
	}
	c.pos += bestLen
	return best, true
}

// zoneID consumes a maximal run of zone identifier characters.
func (c *cursor) zoneID() string {
	start := c.pos
	for !c.eof() {
		ch := c.text[c.pos]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' ||
			ch == '/' || ch == '_' || ch == '+' || ch == '-' {
			c.pos++
			continue
		}
		break
	}
	return c.text[start:c.pos]
}
