package pattern

import "strings"

// Field identifies one semantic field a pattern step can write during
// parsing. Fields form a bit-set so usage conflicts are cheap to detect.
type Field uint32

const (
	FieldEra Field = 1 << iota
	FieldYear
	FieldYearOfEra
	FieldMonth
	FieldDay
	FieldDayOfWeek
	FieldHour12
	FieldHour24
	FieldAMPM
	FieldMinute
	FieldSecond
	FieldFraction
	FieldCalendar
	FieldOffset
	FieldZone
)

var fieldNames = map[Field]string{
	FieldEra:       "era",
	FieldYear:      "year",
	FieldYearOfEra: "year of era",
	FieldMonth:     "month",
	FieldDay:       "day",
	FieldDayOfWeek: "day of week",
	FieldHour12:    "12-hour hour",
	FieldHour24:    "24-hour hour",
	FieldAMPM:      "AM/PM",
	FieldMinute:    "minute",
	FieldSecond:    "second",
	FieldFraction:  "fractional second",
	FieldCalendar:  "calendar",
	FieldOffset:    "offset",
	FieldZone:      "zone",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "<UNDEFINED>"
}

// FieldSet is a set of fields, accumulated over a whole pattern at compile
// time. A field may be written by at most one step of a pattern.
type FieldSet uint32

// Has reports whether the set contains all the given fields.
func (s FieldSet) Has(f Field) bool {
	return s&FieldSet(f) == FieldSet(f)
}

func (s FieldSet) with(f Field) FieldSet {
	return s | FieldSet(f)
}

func (s FieldSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for f := Field(1); f <= FieldZone; f <<= 1 {
		if s.Has(f) {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "|")
}
