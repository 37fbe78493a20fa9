package civil

import (
	"fmt"

	"github.com/ngrash/go-civil/internal/datemath"
)

// Era divides a calendar's timeline into ranges counted with their own
// year numbering.
type Era int

const (
	// CommonEra covers years from 1 onward.
	CommonEra Era = iota
	// BeforeCommonEra covers years before 1, counted backwards:
	// absolute year 0 is 1 BCE, absolute year -1 is 2 BCE.
	BeforeCommonEra
)

func (e Era) String() string {
	switch e {
	case CommonEra:
		return "CE"
	case BeforeCommonEra:
		return "BCE"
	default:
		return "<UNDEFINED>"
	}
}

// Calendar defines year, month and day arithmetic for one calendar system.
//
// Implementations must be deterministic and total over their declared valid
// range; a Date defers all range checking and field conversion to its
// calendar. Implementations must be immutable so they can be shared freely.
type Calendar interface {
	// Name returns the calendar identifier, e.g. "ISO".
	Name() string

	// IsValid reports whether the year, month and day form a valid date.
	IsValid(year, month, day int) bool

	// DaysSinceEpoch converts a valid date to the number of days since
	// 1970-01-01 of the ISO calendar.
	DaysSinceEpoch(year, month, day int) int64

	// FromDaysSinceEpoch is the inverse of DaysSinceEpoch.
	FromDaysSinceEpoch(days int64) (year, month, day int)

	// MonthsInYear returns the number of months in the given year.
	MonthsInYear(year int) int

	// DaysInMonth returns the number of days in the given month.
	DaysInMonth(year, month int) int

	// Era returns the era of the given absolute year together with the
	// year-of-era.
	Era(year int) (Era, int)

	// YearOfEra converts an era and year-of-era back to an absolute year.
	YearOfEra(e Era, yearOfEra int) (int, error)
}

// ISO is the proleptic Gregorian calendar with CE and BCE eras.
var ISO Calendar = isoCalendar{}

// Year bounds of the ISO calendar implementation. Dates outside this range
// are rejected rather than risking day arithmetic overflow.
const (
	isoMinYear = -9999
	isoMaxYear = 9999
)

type isoCalendar struct{}

func (isoCalendar) Name() string { return "ISO" }

func (isoCalendar) IsValid(year, month, day int) bool {
	if year < isoMinYear || year > isoMaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= datemath.DaysInMonth(year, month)
}

func (isoCalendar) DaysSinceEpoch(year, month, day int) int64 {
	return datemath.DaysFromCivil(year, month, day)
}

func (isoCalendar) FromDaysSinceEpoch(days int64) (int, int, int) {
	return datemath.CivilFromDays(days)
}

func (isoCalendar) MonthsInYear(int) int { return 12 }

func (isoCalendar) DaysInMonth(year, month int) int {
	return datemath.DaysInMonth(year, month)
}

func (isoCalendar) Era(year int) (Era, int) {
	if year < 1 {
		return BeforeCommonEra, 1 - year
	}
	return CommonEra, year
}

func (isoCalendar) YearOfEra(e Era, yearOfEra int) (int, error) {
	if yearOfEra < 1 {
		return 0, fmt.Errorf("year of era %d: must be positive", yearOfEra)
	}
	switch e {
	case CommonEra:
		return yearOfEra, nil
	case BeforeCommonEra:
		return 1 - yearOfEra, nil
	default:
		return 0, fmt.Errorf("unknown era %d", e)
	}
}
