package pattern

import "github.com/ngrash/go-civil/civil"

// combineDate turns accumulated date fields into a Date. Fields the
// pattern did not write fall back to the template; calendar-dependent
// bounds checking happens here, at the end of the parse, not per step.
func combineDate(bk *Bucket, used FieldSet, template civil.Date, c *cursor) (civil.Date, *ParseError) {
	cal := template.Calendar()
	if used.Has(FieldCalendar) {
		cal = bk.Calendar
	}
	ty, tm, td := template.YMD()

	year := ty
	switch {
	case used.Has(FieldYear):
		year = bk.Year
	case used.Has(FieldYearOfEra):
		era, _ := cal.Era(ty)
		if used.Has(FieldEra) {
			era = civil.Era(bk.Era)
		}
		y, err := cal.YearOfEra(era, bk.YearOfEra)
		if err != nil {
			return civil.Date{}, c.errorf("%v", err)
		}
		year = y
	}

	month := tm
	if used.Has(FieldMonth) {
		month = bk.Month
	}
	day := td
	if used.Has(FieldDay) {
		day = bk.Day
	}

	d, err := civil.NewDate(cal, year, month, day)
	if err != nil {
		return civil.Date{}, c.errorf("%v", err)
	}
	if used.Has(FieldDayOfWeek) && d.Weekday() != bk.DayOfWeek {
		return civil.Date{}, c.errorf("day of week does not match date %v", d)
	}
	return d, nil
}

// timeFields resolves the accumulated time fields against the template.
// The hour is returned as-is: 24 is passed through so the caller can apply
// the end-of-day rule where a date is available to roll over.
func timeFields(bk *Bucket, used FieldSet, template civil.TimeOfDay) (hour, minute, second int, ticks int64) {
	hour = template.Hour()
	minute = template.Minute()
	second = template.Second()
	ticks = template.TickOfSecond()

	if used.Has(FieldHour24) {
		hour = bk.Hour24
	}
	if used.Has(FieldHour12) {
		// The field-conflict check guarantees an AM/PM designator.
		hour = bk.Hour12%12 + bk.AMPM*12
	}
	if used.Has(FieldMinute) {
		minute = bk.Minute
	}
	if used.Has(FieldSecond) {
		second = bk.Second
	}
	if used.Has(FieldFraction) {
		ticks = bk.FractionTicks
	}
	return hour, minute, second, ticks
}

// combineTime turns accumulated time fields into a stand-alone TimeOfDay.
// Hour 24 has no date to roll into here, so it is rejected.
func combineTime(bk *Bucket, used FieldSet, template civil.TimeOfDay, c *cursor) (civil.TimeOfDay, *ParseError) {
	hour, minute, second, ticks := timeFields(bk, used, template)
	if hour == 24 {
		return 0, c.errorf("hour 24 is only valid when combined with a date")
	}
	t, err := civil.NewTimeOfDay(hour, minute, second, ticks)
	if err != nil {
		return 0, c.errorf("%v", err)
	}
	return t, nil
}

// combineDateTime combines the date and time accumulators into a DateTime.
// The date is computed and validated first, then the time. Hour 24 denotes
// the end of the day: it is only legal when minutes, seconds and fraction
// are all zero, and yields midnight of the following day.
func combineDateTime(bk *Bucket, used FieldSet, template civil.DateTime, c *cursor) (civil.DateTime, *ParseError) {
	d, perr := combineDate(bk, used, template.Date(), c)
	if perr != nil {
		return civil.DateTime{}, perr
	}
	hour, minute, second, ticks := timeFields(bk, used, template.Time())
	if hour == 24 {
		if minute != 0 || second != 0 || ticks != 0 {
			return civil.DateTime{}, c.errorf("invalid use of hour 24: minutes, seconds and fraction must be zero")
		}
		// The written date was validated above; the end of its day is the
		// midnight that follows it.
		return civil.NewDateTime(d.AddDays(1), civil.Midnight), nil
	}
	t, err := civil.NewTimeOfDay(hour, minute, second, ticks)
	if err != nil {
		return civil.DateTime{}, c.errorf("%v", err)
	}
	return civil.NewDateTime(d, t), nil
}
