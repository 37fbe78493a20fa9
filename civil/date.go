package civil

import (
	"fmt"
)

// Date is a calendar-tagged wall-clock date without a time zone.
//
// A Date stores its position as days since the epoch of its calendar, so
// comparisons and day arithmetic do not depend on calendar field logic.
// The zero value is 1970-01-01 of the ISO calendar.
type Date struct {
	days int64
	cal  Calendar
}

// NewDate returns the date for the given calendar fields.
// It fails if the calendar rejects the field combination.
func NewDate(cal Calendar, year, month, day int) (Date, error) {
	if cal == nil {
		cal = ISO
	}
	if !cal.IsValid(year, month, day) {
		return Date{}, fmt.Errorf("date %04d-%02d-%02d: not valid in the %s calendar", year, month, day, cal.Name())
	}
	return Date{days: cal.DaysSinceEpoch(year, month, day), cal: cal}, nil
}

// DateOfDays returns the date the given number of days after the epoch.
func DateOfDays(cal Calendar, days int64) Date {
	if cal == nil {
		cal = ISO
	}
	return Date{days: days, cal: cal}
}

// Calendar returns the calendar system the date belongs to.
func (d Date) Calendar() Calendar {
	if d.cal == nil {
		return ISO
	}
	return d.cal
}

// DaysSinceEpoch returns the number of days since 1970-01-01.
func (d Date) DaysSinceEpoch() int64 { return d.days }

// YMD returns the calendar year, month and day fields.
func (d Date) YMD() (year, month, day int) {
	return d.Calendar().FromDaysSinceEpoch(d.days)
}

// Year returns the absolute calendar year.
func (d Date) Year() int { y, _, _ := d.YMD(); return y }

// Month returns the one-based calendar month.
func (d Date) Month() int { _, m, _ := d.YMD(); return m }

// Day returns the one-based day of the month.
func (d Date) Day() int { _, _, day := d.YMD(); return day }

// Era returns the date's era and year-of-era.
func (d Date) Era() (Era, int) {
	return d.Calendar().Era(d.Year())
}

// Weekday returns the day of the week, where 0=Sunday through 6=Saturday.
// The week cycle is calendar-independent.
func (d Date) Weekday() int {
	// 1970-01-01 was a Thursday.
	w := int((d.days + 4) % 7)
	if w < 0 {
		w += 7
	}
	return w
}

// AddDays returns the date n days later. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{days: d.days + int64(n), cal: d.cal}
}

// Equal reports whether two dates denote the same day of the same calendar.
func (d Date) Equal(o Date) bool {
	return d.days == o.days && d.Calendar() == o.Calendar()
}

// Before reports whether d is an earlier day than o.
func (d Date) Before(o Date) bool { return d.days < o.days }

// String formats the date as yyyy-MM-dd, with a leading minus sign for
// years before year zero.
func (d Date) String() string {
	y, m, day := d.YMD()
	if y < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -y, m, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}
