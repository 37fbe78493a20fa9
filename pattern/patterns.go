package pattern

import (
	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/culture"
	"github.com/ngrash/go-civil/zone"
)

// sortableDateTime is the culture-independent sortable format. Separators
// are quoted so the culture cannot substitute them.
const sortableDateTime = "yyyy-MM-dd'T'HH':'mm':'ss"

func standardDate(ch byte, cul culture.Culture) string {
	switch ch {
	case 'd':
		return cul.ShortDatePattern
	case 'D':
		return cul.LongDatePattern
	default:
		return ""
	}
}

func standardTime(ch byte, cul culture.Culture) string {
	switch ch {
	case 't':
		return cul.ShortTimePattern
	case 'T':
		return cul.LongTimePattern
	default:
		return ""
	}
}

func standardDateTime(ch byte, cul culture.Culture) string {
	switch ch {
	case 'g':
		return cul.ShortDateTimePattern
	case 'G':
		return cul.LongDateTimePattern
	case 's':
		return sortableDateTime
	default:
		return ""
	}
}

func standardOffsetDateTime(ch byte, cul culture.Culture) string {
	if base := standardDateTime(ch, cul); base != "" {
		return base + " oo"
	}
	return ""
}

func standardZonedDateTime(ch byte, cul culture.Culture) string {
	if base := standardDateTime(ch, cul); base != "" {
		return base + " oo z"
	}
	return ""
}

// ForDate compiles a date pattern. Fields the pattern omits are taken from
// the template when parsing; in particular the template supplies the
// calendar unless the pattern carries a calendar field.
func ForDate(text string, cul culture.Culture, template civil.Date) (*Pattern[civil.Date], error) {
	b, perr := compile(text, cul, dateHandlers(func(d civil.Date) civil.Date { return d }), standardDate)
	if perr != nil {
		return nil, perr
	}
	if perr := validateDateFields(b); perr != nil {
		return nil, perr
	}
	used := b.used
	return &Pattern[civil.Date]{
		text:  text,
		steps: b.steps,
		used:  used,
		assemble: func(bk *Bucket, c *cursor) (civil.Date, *ParseError) {
			return combineDate(bk, used, template, c)
		},
	}, nil
}

// ForTimeOfDay compiles a time-of-day pattern.
func ForTimeOfDay(text string, cul culture.Culture, template civil.TimeOfDay) (*Pattern[civil.TimeOfDay], error) {
	b, perr := compile(text, cul, timeHandlers(func(t civil.TimeOfDay) civil.TimeOfDay { return t }), standardTime)
	if perr != nil {
		return nil, perr
	}
	if perr := validateTimeFields(b); perr != nil {
		return nil, perr
	}
	used := b.used
	return &Pattern[civil.TimeOfDay]{
		text:  text,
		steps: b.steps,
		used:  used,
		assemble: func(bk *Bucket, c *cursor) (civil.TimeOfDay, *ParseError) {
			return combineTime(bk, used, template, c)
		},
	}, nil
}

func dateTimeHandlers[V any](date func(V) civil.Date, tod func(V) civil.TimeOfDay) map[byte]handler[V] {
	return mergeHandlers(dateHandlers(date), timeHandlers(tod))
}

func validateDateTimeFields[V any](b *builder[V]) *PatternError {
	if perr := validateDateFields(b); perr != nil {
		return perr
	}
	return validateTimeFields(b)
}

// ForDateTime compiles a combined date and time pattern.
func ForDateTime(text string, cul culture.Culture, template civil.DateTime) (*Pattern[civil.DateTime], error) {
	h := dateTimeHandlers(
		func(v civil.DateTime) civil.Date { return v.Date() },
		func(v civil.DateTime) civil.TimeOfDay { return v.Time() },
	)
	b, perr := compile(text, cul, h, standardDateTime)
	if perr != nil {
		return nil, perr
	}
	if perr := validateDateTimeFields(b); perr != nil {
		return nil, perr
	}
	used := b.used
	return &Pattern[civil.DateTime]{
		text:  text,
		steps: b.steps,
		used:  used,
		assemble: func(bk *Bucket, c *cursor) (civil.DateTime, *ParseError) {
			return combineDateTime(bk, used, template, c)
		},
	}, nil
}

// ForOffsetDateTime compiles a date, time and offset pattern. The offset
// field is 'o': one run character formats ±hh, two ±hh:mm, three ±hh:mm:ss.
func ForOffsetDateTime(text string, cul culture.Culture, template civil.OffsetDateTime) (*Pattern[civil.OffsetDateTime], error) {
	h := dateTimeHandlers(
		func(v civil.OffsetDateTime) civil.Date { return v.DateTime().Date() },
		func(v civil.OffsetDateTime) civil.TimeOfDay { return v.DateTime().Time() },
	)
	h = mergeHandlers(h, map[byte]handler[civil.OffsetDateTime]{
		'o': func(b *builder[civil.OffsetDateTime], r run) *PatternError {
			return offsetStep(b, r, func(v civil.OffsetDateTime) civil.Offset { return v.Offset() })
		},
	})
	b, perr := compile(text, cul, h, standardOffsetDateTime)
	if perr != nil {
		return nil, perr
	}
	if perr := validateDateTimeFields(b); perr != nil {
		return nil, perr
	}
	used := b.used
	return &Pattern[civil.OffsetDateTime]{
		text:  text,
		steps: b.steps,
		used:  used,
		assemble: func(bk *Bucket, c *cursor) (civil.OffsetDateTime, *ParseError) {
			dt, perr := combineDateTime(bk, used, template.DateTime(), c)
			if perr != nil {
				return civil.OffsetDateTime{}, perr
			}
			off := template.Offset()
			if used.Has(FieldOffset) {
				o, err := civil.OffsetFromSeconds(bk.OffsetSeconds)
				if err != nil {
					return civil.OffsetDateTime{}, c.errorf("%v", err)
				}
				off = o
			}
			return civil.NewOffsetDateTime(dt, off), nil
		},
	}, nil
}

// ForZonedDateTime compiles a pattern for zone-anchored values. The zone
// field is 'z' and parses a zone identifier resolved through the provider.
//
// Parsing re-resolves the wall-clock value against the zone. When the
// pattern carries an offset field, the parsed offset selects between the
// candidate readings and must match one of them. Otherwise the resolver
// decides; a nil resolver means Lenient.
func ForZonedDateTime(text string, cul culture.Culture, template zone.ZonedDateTime, provider zone.Provider, resolve zone.Resolver) (*Pattern[zone.ZonedDateTime], error) {
	if resolve == nil {
		resolve = zone.Lenient
	}
	h := dateTimeHandlers(
		func(v zone.ZonedDateTime) civil.Date { return v.DateTime().Date() },
		func(v zone.ZonedDateTime) civil.TimeOfDay { return v.DateTime().Time() },
	)
	h = mergeHandlers(h, map[byte]handler[zone.ZonedDateTime]{
		'o': func(b *builder[zone.ZonedDateTime], r run) *PatternError {
			return offsetStep(b, r, func(v zone.ZonedDateTime) civil.Offset { return v.Offset() })
		},
		'z': func(b *builder[zone.ZonedDateTime], r run) *PatternError {
			return zoneStep(b, r, func(v zone.ZonedDateTime) *zone.Zone { return v.Zone() })
		},
	})
	b, perr := compile(text, cul, h, standardZonedDateTime)
	if perr != nil {
		return nil, perr
	}
	if perr := validateDateTimeFields(b); perr != nil {
		return nil, perr
	}
	// Without a zone field every parse resolves against the template's
	// zone, so the template must carry one.
	if !b.used.Has(FieldZone) && template.Zone() == nil {
		return nil, b.fail(len(b.pattern), "pattern has no zone field and the template value carries no zone")
	}
	used := b.used
	return &Pattern[zone.ZonedDateTime]{
		text:  text,
		steps: b.steps,
		used:  used,
		assemble: func(bk *Bucket, c *cursor) (zone.ZonedDateTime, *ParseError) {
			dt, perr := combineDateTime(bk, used, template.DateTime(), c)
			if perr != nil {
				return zone.ZonedDateTime{}, perr
			}
			z := template.Zone()
			if used.Has(FieldZone) {
				found, err := provider.Zone(bk.ZoneID)
				if err != nil {
					return zone.ZonedDateTime{}, c.errorf("%v", err)
				}
				z = found
			}
			m := zone.MapLocal(z, dt)
			if used.Has(FieldOffset) {
				// An explicit offset pins the reading; it must agree with
				// what the zone applies at that wall-clock value.
				off, err := civil.OffsetFromSeconds(bk.OffsetSeconds)
				if err != nil {
					return zone.ZonedDateTime{}, c.errorf("%v", err)
				}
				switch {
				case m.Count >= 1 && m.Early.Offset == off:
					return m.EarlyResult(), nil
				case m.Count == 2 && m.Late.Offset == off:
					return m.LateResult(), nil
				default:
					return zone.ZonedDateTime{}, c.errorf("offset %v does not match zone %s at %v", off, z.ID(), dt)
				}
			}
			zdt, err := resolve(m)
			if err != nil {
				return zone.ZonedDateTime{}, c.errorf("%v", err)
			}
			return zdt, nil
		},
	}, nil
}
