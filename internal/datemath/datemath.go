// Package datemath implements day arithmetic for the proleptic Gregorian
// calendar. It deliberately avoids the standard library's time.Location
// machinery: the package exists to build zone-aware values, so building it
// on top of zone-aware primitives would be circular.
package datemath

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// daysBeforeMonth[m-1] is the number of days in a non-leap year before month m.
var daysBeforeMonth = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DaysFromCivil converts a year, month and day to the number of days since
// the Unix epoch, 1970-01-01. The algorithm shifts the year so that it
// starts in March, which places the leap day at the end of the shifted year
// and keeps the month-length table free of special cases.
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468       // 719468 = days from 0000-03-01 to 1970-01-01
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int) {
	z := days + 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// DayOfYear returns the one-based ordinal day of the year.
func DayOfYear(year, month, day int) int {
	doy := int(daysBeforeMonth[month-1]) + day
	if month > 2 && IsLeapYear(year) {
		doy++
	}
	return doy
}

// Weekday calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func Weekday(year, month, day int) int {
	// Zeller's congruence, adjusted for the Gregorian calendar.
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit Sunday=0, Monday=1, ..., Saturday=6.
	return (h + 6) % 7
}

// LastWeekdayOfMonth finds the last instance of a given weekday in a
// specific month and year.
func LastWeekdayOfMonth(year, month, weekday int) int {
	lastDay := DaysInMonth(year, month)
	lastDayWeekday := Weekday(year, month, lastDay)

	offset := (lastDayWeekday - weekday + 7) % 7
	return lastDay - offset
}

// NextWeekday calculates the next occurrence of a weekday on or after a given
// day in the specified month and year, accounting for overflow into the next
// month or year.
func NextWeekday(year, month, day, targetWeekday int) (int, int, int) {
	dayOfWeek := Weekday(year, month, day)
	diff := targetWeekday - dayOfWeek
	if diff < 0 {
		diff += 7
	}

	next := day + diff
	inMonth := DaysInMonth(year, month)
	if next > inMonth {
		next -= inMonth
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return year, month, next
}

// PrevWeekday finds the last occurrence of a given weekday before or on a
// given day in the specified month and year, accounting for overflow into
// the previous month or year.
func PrevWeekday(year, month, day, targetWeekday int) (int, int, int) {
	dayOfWeek := Weekday(year, month, day)
	diff := dayOfWeek - targetWeekday
	if diff < 0 {
		diff += 7
	}

	last := day - diff
	if last < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		last += DaysInMonth(year, month)
	}
	return year, month, last
}
