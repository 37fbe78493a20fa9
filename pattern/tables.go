package pattern

import (
	"bytes"

	"github.com/ngrash/go-civil/civil"
)

// calendarNames are the calendar systems a 'c' step can parse. Patterns
// format whatever calendar the value carries; parsing is restricted to the
// calendars compiled in.
var calendarNames = []string{civil.ISO.Name()}

func calendarByName(name string) civil.Calendar {
	// Parsed names come from calendarNames, so this cannot miss.
	return civil.ISO
}

// dateHandlers builds the handler table for the date fields of a value
// type. The date projector is what lets one table serve civil.Date and
// every composed type that embeds a date.
func dateHandlers[V any](date func(V) civil.Date) map[byte]handler[V] {
	return map[byte]handler[V]{
		'g': func(b *builder[V], r run) *PatternError {
			return names(b, r, FieldEra, b.culture.EraNames[:], 0,
				func(v V) int { e, _ := date(v).Era(); return int(e) },
				func(bk *Bucket, n int) { bk.Era = n })
		},
		'u': func(b *builder[V], r run) *PatternError {
			return numeric(b, r, FieldYear, 5, -9999, 9999, true,
				func(v V) int { return date(v).Year() },
				func(bk *Bucket, n int) { bk.Year = n })
		},
		'y': func(b *builder[V], r run) *PatternError {
			return numeric(b, r, FieldYearOfEra, 5, 1, 9999, false,
				func(v V) int { _, yoe := date(v).Era(); return yoe },
				func(bk *Bucket, n int) { bk.YearOfEra = n })
		},
		'M': func(b *builder[V], r run) *PatternError {
			switch {
			case r.count <= 2:
				return numeric(b, r, FieldMonth, 2, 1, 12, false,
					func(v V) int { return date(v).Month() },
					func(bk *Bucket, n int) { bk.Month = n })
			case r.count == 3:
				return names(b, r, FieldMonth, b.culture.MonthAbbreviations[:], 1,
					func(v V) int { return date(v).Month() },
					func(bk *Bucket, n int) { bk.Month = n })
			case r.count == 4:
				return names(b, r, FieldMonth, b.culture.MonthNames[:], 1,
					func(v V) int { return date(v).Month() },
					func(bk *Bucket, n int) { bk.Month = n })
			default:
				return b.fail(r.pos, "month field width %d exceeds 4", r.count)
			}
		},
		'd': func(b *builder[V], r run) *PatternError {
			switch {
			case r.count <= 2:
				return numeric(b, r, FieldDay, 2, 1, 31, false,
					func(v V) int { return date(v).Day() },
					func(bk *Bucket, n int) { bk.Day = n })
			case r.count == 3:
				return names(b, r, FieldDayOfWeek, b.culture.DayAbbreviations[:], 0,
					func(v V) int { return date(v).Weekday() },
					func(bk *Bucket, n int) { bk.DayOfWeek = n })
			case r.count == 4:
				return names(b, r, FieldDayOfWeek, b.culture.DayNames[:], 0,
					func(v V) int { return date(v).Weekday() },
					func(bk *Bucket, n int) { bk.DayOfWeek = n })
			default:
				return b.fail(r.pos, "day field width %d exceeds 4", r.count)
			}
		},
		'c': func(b *builder[V], r run) *PatternError {
			if err := b.useField(FieldCalendar, r.pos); err != nil {
				return err
			}
			b.add(
				func(v V, buf *bytes.Buffer) { buf.WriteString(date(v).Calendar().Name()) },
				func(c *cursor, bk *Bucket) *ParseError {
					i, ok := c.oneOf(calendarNames)
					if !ok {
						return c.errorf("expected calendar name, one of %q", calendarNames)
					}
					bk.Calendar = calendarByName(calendarNames[i])
					return nil
				},
			)
			return nil
		},
		'/': func(b *builder[V], r run) *PatternError {
			for i := 0; i < r.count; i++ {
				b.literal(b.culture.DateSeparator)
			}
			return nil
		},
	}
}

// timeHandlers builds the handler table for the time-of-day fields.
func timeHandlers[V any](tod func(V) civil.TimeOfDay) map[byte]handler[V] {
	return map[byte]handler[V]{
		'H': func(b *builder[V], r run) *PatternError {
			// 24 is accepted here; whether it is legal depends on the
			// other time fields and is decided during combination.
			return numeric(b, r, FieldHour24, 2, 0, 24, false,
				func(v V) int { return tod(v).Hour() },
				func(bk *Bucket, n int) { bk.Hour24 = n })
		},
		'h': func(b *builder[V], r run) *PatternError {
			return numeric(b, r, FieldHour12, 2, 1, 12, false,
				func(v V) int {
					h := tod(v).Hour() % 12
					if h == 0 {
						h = 12
					}
					return h
				},
				func(bk *Bucket, n int) { bk.Hour12 = n })
		},
		'm': func(b *builder[V], r run) *PatternError {
			return numeric(b, r, FieldMinute, 2, 0, 59, false,
				func(v V) int { return tod(v).Minute() },
				func(bk *Bucket, n int) { bk.Minute = n })
		},
		's': func(b *builder[V], r run) *PatternError {
			return numeric(b, r, FieldSecond, 2, 0, 59, false,
				func(v V) int { return tod(v).Second() },
				func(bk *Bucket, n int) { bk.Second = n })
		},
		'f': func(b *builder[V], r run) *PatternError {
			return fraction(b, r, false, func(v V) int64 { return tod(v).TickOfSecond() })
		},
		'F': func(b *builder[V], r run) *PatternError {
			return fraction(b, r, true, func(v V) int64 { return tod(v).TickOfSecond() })
		},
		't': func(b *builder[V], r run) *PatternError {
			designators := []string{b.culture.AMDesignator, b.culture.PMDesignator}
			if r.count == 1 {
				designators = []string{b.culture.AMDesignator[:1], b.culture.PMDesignator[:1]}
			}
			return names(b, r, FieldAMPM, designators, 0,
				func(v V) int {
					if tod(v).Hour() < 12 {
						return 0
					}
					return 1
				},
				func(bk *Bucket, n int) { bk.AMPM = n })
		},
		':': func(b *builder[V], r run) *PatternError {
			for i := 0; i < r.count; i++ {
				b.literal(b.culture.TimeSeparator)
			}
			return nil
		},
	}
}

// validateDateFields checks the cross-field constraints of a date pattern.
// These depend on the full field-usage set, so they run once after the
// scan, not per character.
func validateDateFields[V any](b *builder[V]) *PatternError {
	end := len(b.pattern)
	if b.used.Has(FieldYear) && b.used.Has(FieldYearOfEra) {
		return b.fail(end, "absolute year and year of era cannot be combined")
	}
	if b.used.Has(FieldEra) && !b.used.Has(FieldYearOfEra) {
		return b.fail(end, "era designator requires a year of era")
	}
	return nil
}

// validateTimeFields checks the cross-field constraints of a time pattern.
func validateTimeFields[V any](b *builder[V]) *PatternError {
	end := len(b.pattern)
	if b.used.Has(FieldHour12) && b.used.Has(FieldHour24) {
		return b.fail(end, "12-hour and 24-hour fields cannot be combined")
	}
	if b.used.Has(FieldHour12) && !b.used.Has(FieldAMPM) {
		return b.fail(end, "12-hour field requires an AM/PM designator")
	}
	if b.used.Has(FieldAMPM) && !b.used.Has(FieldHour12) {
		return b.fail(end, "AM/PM designator requires a 12-hour field")
	}
	return nil
}
