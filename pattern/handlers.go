package pattern

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/zone"
)

// appendPadded writes n zero-padded to at least width digits. Values wider
// than the field print in full rather than truncating.
func appendPadded(buf *bytes.Buffer, n, width int) {
	if n < 0 {
		buf.WriteByte('-')
		n = -n
	}
	s := strconv.Itoa(n)
	for pad := width - len(s); pad > 0; pad-- {
		buf.WriteByte('0')
	}
	buf.WriteString(s)
}

// numeric emits a step for a numeric field. The run length is the minimum
// digit count for both directions; parsing accepts up to maxDigits digits
// and rejects values outside [minVal, maxVal]. The getter extracts the
// field from a fully-formed value for formatting; the setter writes the
// parsed value into the accumulator. This pairing is what lets one handler
// serve every numeric field.
func numeric[V any](b *builder[V], r run, f Field, maxDigits, minVal, maxVal int, signed bool, get func(V) int, set func(*Bucket, int)) *PatternError {
	if err := b.useField(f, r.pos); err != nil {
		return err
	}
	if r.count > maxDigits {
		return b.fail(r.pos, "%v field width %d exceeds %d", f, r.count, maxDigits)
	}
	width := r.count
	b.add(
		func(v V, buf *bytes.Buffer) { appendPadded(buf, get(v), width) },
		func(c *cursor, bk *Bucket) *ParseError {
			neg := false
			if signed {
				neg = c.sign()
			}
			n, ok := c.digits(width, maxDigits)
			if !ok {
				return c.errorf("expected at least %d digits for %v", width, f)
			}
			if neg {
				n = -n
			}
			if n < minVal || n > maxVal {
				return c.errorf("%v %d out of range [%d, %d]", f, n, minVal, maxVal)
			}
			set(bk, n)
			return nil
		},
	)
	return nil
}

// names emits a step for a field rendered as text, resolved against a
// culture symbol table. values[i] is the text of field value base+i.
// Parsing prefers the longest match and compares case-insensitively.
func names[V any](b *builder[V], r run, f Field, values []string, base int, get func(V) int, set func(*Bucket, int)) *PatternError {
	if err := b.useField(f, r.pos); err != nil {
		return err
	}
	b.add(
		func(v V, buf *bytes.Buffer) { buf.WriteString(values[get(v)-base]) },
		func(c *cursor, bk *Bucket) *ParseError {
			i, ok := c.oneOf(values)
			if !ok {
				return c.errorf("expected one of %q for %v", values, f)
			}
			set(bk, base+i)
			return nil
		},
	)
	return nil
}

// fraction emits a step for the sub-second field. 'f' renders and requires
// exactly count digits; 'F' renders up to count digits with trailing zeros
// trimmed and accepts zero to count digits.
func fraction[V any](b *builder[V], r run, optional bool, get func(V) int64) *PatternError {
	if err := b.useField(FieldFraction, r.pos); err != nil {
		return err
	}
	if r.count > 7 {
		return b.fail(r.pos, "fractional second width %d exceeds 7", r.count)
	}
	count := r.count
	scale := int64(1)
	for i := 0; i < 7-count; i++ {
		scale *= 10
	}
	b.add(
		func(v V, buf *bytes.Buffer) {
			digits := fmt.Sprintf("%07d", get(v))[:count]
			if optional {
				for len(digits) > 0 && digits[len(digits)-1] == '0' {
					digits = digits[:len(digits)-1]
				}
			}
			buf.WriteString(digits)
		},
		func(c *cursor, bk *Bucket) *ParseError {
			min := count
			if optional {
				min = 0
			}
			start := c.pos
			n, ok := c.digits(min, count)
			if !ok {
				return c.errorf("expected %d fractional second digits", count)
			}
			consumed := c.pos - start
			s := scale
			for i := consumed; i < count; i++ {
				s *= 10
			}
			bk.FractionTicks = int64(n) * s
			return nil
		},
	)
	return nil
}

// offsetStep emits a step for the UTC offset. Width selects the form:
// one run char ±hh, two ±hh:mm, three ±hh:mm:ss.
func offsetStep[V any](b *builder[V], r run, get func(V) civil.Offset) *PatternError {
	if err := b.useField(FieldOffset, r.pos); err != nil {
		return err
	}
	if r.count > 3 {
		return b.fail(r.pos, "offset field width %d exceeds 3", r.count)
	}
	width := r.count
	b.add(
		func(v V, buf *bytes.Buffer) {
			s := get(v).Seconds()
			sign := byte('+')
			if s < 0 {
				sign, s = '-', -s
			}
			buf.WriteByte(sign)
			appendPadded(buf, s/3600, 2)
			if width >= 2 {
				buf.WriteByte(':')
				appendPadded(buf, s/60%60, 2)
			}
			if width >= 3 {
				buf.WriteByte(':')
				appendPadded(buf, s%60, 2)
			}
		},
		func(c *cursor, bk *Bucket) *ParseError {
			if c.eof() {
				return c.errorf("expected offset")
			}
			if ch := c.text[c.pos]; ch == 'Z' || ch == 'z' {
				c.pos++
				bk.OffsetSeconds = 0
				return nil
			}
			sign := c.text[c.pos]
			if sign != '+' && sign != '-' {
				return c.errorf("expected offset sign or Z")
			}
			c.pos++
			total := 0
			for part := 0; part <= width-1; part++ {
				if part > 0 {
					if err := c.literal(":"); err != nil {
						return err
					}
				}
				n, ok := c.digits(2, 2)
				if !ok {
					return c.errorf("expected two digits in offset")
				}
				if part > 0 && n > 59 {
					return c.errorf("offset component %d out of range", n)
				}
				switch part {
				case 0:
					total += n * 3600
				case 1:
					total += n * 60
				default:
					total += n
				}
			}
			if sign == '-' {
				total = -total
			}
			if _, err := civil.OffsetFromSeconds(total); err != nil {
				return c.errorf("offset out of range")
			}
			bk.OffsetSeconds = total
			return nil
		},
	)
	return nil
}

// zoneStep emits a step for the zone identifier.
func zoneStep[V any](b *builder[V], r run, get func(V) *zone.Zone) *PatternError {
	if err := b.useField(FieldZone, r.pos); err != nil {
		return err
	}
	b.add(
		func(v V, buf *bytes.Buffer) {
			if z := get(v); z != nil {
				buf.WriteString(z.ID())
			}
		},
		func(c *cursor, bk *Bucket) *ParseError {
			id := c.zoneID()
			if id == "" {
				return c.errorf("expected zone identifier")
			}
			bk.ZoneID = id
			return nil
		},
	)
	return nil
}

// mergeHandlers combines handler tables for composed pattern types. Tables
// must not overlap; composed types own disjoint character sets.
func mergeHandlers[V any](tables ...map[byte]handler[V]) map[byte]handler[V] {
	merged := make(map[byte]handler[V])
	for _, t := range tables {
		for ch, h := range t {
			if _, dup := merged[ch]; dup {
				panic(fmt.Sprintf("pattern: duplicate handler for %q", ch))
			}
			merged[ch] = h
		}
	}
	return merged
}
