package civil

// DateTime is a calendar-tagged wall-clock date and time without a time
// zone. The zero value is midnight, 1970-01-01 ISO.
type DateTime struct {
	date Date
	time TimeOfDay
}

// NewDateTime combines a date and a time of day.
func NewDateTime(d Date, t TimeOfDay) DateTime {
	return DateTime{date: d, time: t}
}

// Date returns the date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() TimeOfDay { return dt.time }

// AddDays returns the date-time shifted by n calendar days, keeping the
// time of day.
func (dt DateTime) AddDays(n int) DateTime {
	return DateTime{date: dt.date.AddDays(n), time: dt.time}
}

// InstantAt returns the instant this wall-clock value denotes when the
// local clock runs at the given offset from UTC.
func (dt DateTime) InstantAt(o Offset) Instant {
	local := dt.date.DaysSinceEpoch()*TicksPerDay + int64(dt.time)
	return Instant(local).SubtractOffset(o)
}

// DateTimeOfInstant returns the wall-clock value shown on a clock running
// at the given offset from UTC at instant i, using cal for the date fields.
// i must not be a sentinel instant.
func DateTimeOfInstant(i Instant, o Offset, cal Calendar) DateTime {
	local := int64(i.AddOffset(o))
	days := local / TicksPerDay
	tod := local % TicksPerDay
	if tod < 0 {
		days--
		tod += TicksPerDay
	}
	return DateTime{date: DateOfDays(cal, days), time: TimeOfDay(tod)}
}

// Equal reports whether two date-times denote the same wall-clock value of
// the same calendar.
func (dt DateTime) Equal(o DateTime) bool {
	return dt.date.Equal(o.date) && dt.time == o.time
}

// String formats the date-time as yyyy-MM-ddTHH:mm:ss.
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
