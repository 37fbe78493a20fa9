package zone

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-civil/civil"
)

func date(t *testing.T, y, m, d int) civil.Date {
	t.Helper()
	date, err := civil.NewDate(civil.ISO, y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return date
}

func at(t *testing.T, y, mo, d, h, mi int) civil.DateTime {
	t.Helper()
	tod, err := civil.NewTimeOfDay(h, mi, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return civil.NewDateTime(date(t, y, mo, d), tod)
}

// utc returns the instant of the given UTC wall-clock time.
func utc(t *testing.T, y, mo, d, h, mi int) civil.Instant {
	t.Helper()
	return at(t, y, mo, d, h, mi).InstantAt(0)
}

// fallBackZone transitions from +02:00 to +01:00 at 2024-10-27 01:00 UTC,
// so local clocks go 03:00 -> 02:00.
func fallBackZone(t *testing.T) *Zone {
	t.Helper()
	z, err := New("Test/FallBack", []Interval{
		{Start: civil.BeforeTime, End: utc(t, 2024, 10, 27, 1, 0), Offset: civil.MustOffset(2 * time.Hour), Savings: civil.MustOffset(time.Hour), Name: "TST"},
		{Start: utc(t, 2024, 10, 27, 1, 0), End: civil.AfterTime, Offset: civil.MustOffset(time.Hour), Name: "TT"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return z
}

// springForwardZone transitions from +01:00 to +02:00 at 2024-03-31 01:00
// UTC, so local clocks jump 02:00 -> 03:00.
func springForwardZone(t *testing.T) *Zone {
	t.Helper()
	z, err := New("Test/SpringForward", []Interval{
		{Start: civil.BeforeTime, End: utc(t, 2024, 3, 31, 1, 0), Offset: civil.MustOffset(time.Hour), Name: "TT"},
		{Start: utc(t, 2024, 3, 31, 1, 0), End: civil.AfterTime, Offset: civil.MustOffset(2 * time.Hour), Savings: civil.MustOffset(time.Hour), Name: "TST"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return z
}

func TestNewRejectsBrokenSequences(t *testing.T) {
	cut := utc(t, 2024, 1, 1, 0, 0)
	cases := []struct {
		name      string
		intervals []Interval
	}{
		{"empty", nil},
		{"open start", []Interval{{Start: cut, End: civil.AfterTime}}},
		{"open end", []Interval{{Start: civil.BeforeTime, End: cut}}},
		{"discontiguous", []Interval{
			{Start: civil.BeforeTime, End: cut},
			{Start: cut.Add(time.Hour), End: civil.AfterTime},
		}},
	}
	for _, c := range cases {
		if _, err := New("Test/Broken", c.intervals); err == nil {
			t.Errorf("New(%s) succeeded, want error", c.name)
		}
	}
}

func TestMapLocalFallBack(t *testing.T) {
	z := fallBackZone(t)

	m := MapLocal(z, at(t, 2024, 10, 27, 2, 30))
	if m.Count != 2 {
		t.Fatalf("Count = %d, want 2", m.Count)
	}
	if got, want := m.Early.Offset.Seconds(), 7200; got != want {
		t.Errorf("Early.Offset = %ds, want %ds", got, want)
	}
	if got, want := m.Late.Offset.Seconds(), 3600; got != want {
		t.Errorf("Late.Offset = %ds, want %ds", got, want)
	}

	zdt, err := Lenient(m)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zdt.Offset().Seconds(), 7200; got != want {
		t.Errorf("lenient offset = %ds, want %ds", got, want)
	}

	if _, err := Strict(m); err == nil {
		t.Error("Strict() succeeded on ambiguous time, want error")
	} else {
		var ambiguous *AmbiguousTimeError
		if !errors.As(err, &ambiguous) {
			t.Errorf("Strict() error = %T, want *AmbiguousTimeError", err)
		}
	}
}

func TestMapLocalSpringForward(t *testing.T) {
	z := springForwardZone(t)

	m := MapLocal(z, at(t, 2024, 3, 31, 2, 30))
	if m.Count != 0 {
		t.Fatalf("Count = %d, want 0", m.Count)
	}
	if got, want := m.Early.Offset.Seconds(), 3600; got != want {
		t.Errorf("Early.Offset = %ds, want %ds", got, want)
	}
	if got, want := m.Late.Offset.Seconds(), 7200; got != want {
		t.Errorf("Late.Offset = %ds, want %ds", got, want)
	}

	zdt, err := Lenient(m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(at(t, 2024, 3, 31, 3, 0), zdt.DateTime()); diff != "" {
		t.Errorf("lenient local mismatch (-want +got):\n%s", diff)
	}
	if got, want := zdt.Offset().Seconds(), 7200; got != want {
		t.Errorf("lenient offset = %ds, want %ds", got, want)
	}

	if _, err := Strict(m); err == nil {
		t.Error("Strict() succeeded on skipped time, want error")
	} else {
		var skipped *SkippedTimeError
		if !errors.As(err, &skipped) {
			t.Errorf("Strict() error = %T, want *SkippedTimeError", err)
		}
	}
}

func TestStrictLenientAgreeWhenUnambiguous(t *testing.T) {
	zones := []*Zone{fallBackZone(t), springForwardZone(t), UTC}
	samples := []civil.DateTime{
		at(t, 2024, 1, 15, 12, 0),
		at(t, 2024, 6, 1, 0, 0),
		at(t, 2024, 10, 27, 4, 0),
		at(t, 2024, 3, 31, 1, 59),
	}
	for _, z := range zones {
		for _, dt := range samples {
			m := MapLocal(z, dt)
			if m.Count != 1 {
				continue
			}
			s, err := Strict(m)
			if err != nil {
				t.Fatal(err)
			}
			l, err := Lenient(m)
			if err != nil {
				t.Fatal(err)
			}
			if !s.Equal(l) {
				t.Errorf("zone %s at %v: strict %v != lenient %v", z.ID(), dt, s, l)
			}
		}
	}
}

func TestMapLocalTotality(t *testing.T) {
	zones := []*Zone{fallBackZone(t), springForwardZone(t)}
	for _, z := range zones {
		// Walk a two-day window around the transition in 15 minute steps.
		dt := at(t, 2024, 3, 30, 0, 0)
		if z.ID() == "Test/FallBack" {
			dt = at(t, 2024, 10, 26, 0, 0)
		}
		for step := 0; step < 2*24*4; step++ {
			m := MapLocal(z, dt)
			if m.Count < 0 || m.Count > 2 {
				t.Fatalf("zone %s at %v: Count = %d", z.ID(), dt, m.Count)
			}
			if m.Count == 0 && z.ID() != "Test/SpringForward" {
				t.Errorf("zone %s at %v: unexpected gap", z.ID(), dt)
			}
			if m.Count == 2 && z.ID() != "Test/FallBack" {
				t.Errorf("zone %s at %v: unexpected overlap", z.ID(), dt)
			}
			i := dt.InstantAt(0).Add(15 * time.Minute)
			dt = civil.DateTimeOfInstant(i, 0, civil.ISO)
		}
	}
}

func TestZonedDateTimeOffsetMatchesZone(t *testing.T) {
	z := fallBackZone(t)
	zdt, err := NewZonedDateTime(at(t, 2024, 10, 27, 12, 0), z, Strict)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zdt.Offset(), z.OffsetAt(zdt.Instant()); got != want {
		t.Errorf("Offset() = %v, zone reports %v", got, want)
	}

	back, err := FromInstant(z, zdt.Instant(), civil.ISO)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(zdt) {
		t.Errorf("FromInstant round trip = %v, want %v", back, zdt)
	}
}

func TestResolveStartOfDay(t *testing.T) {
	// Midnight itself is skipped: clocks jump 00:00 -> 01:00.
	z, err := New("Test/MidnightGap", []Interval{
		{Start: civil.BeforeTime, End: utc(t, 2024, 3, 31, 0, 0), Offset: 0, Name: "TT"},
		{Start: utc(t, 2024, 3, 31, 0, 0), End: civil.AfterTime, Offset: civil.MustOffset(time.Hour), Savings: civil.MustOffset(time.Hour), Name: "TST"},
	})
	if err != nil {
		t.Fatal(err)
	}
	zdt, err := ResolveStartOfDay(z, date(t, 2024, 3, 31))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(at(t, 2024, 3, 31, 1, 0), zdt.DateTime()); diff != "" {
		t.Errorf("start of day mismatch (-want +got):\n%s", diff)
	}

	// Ordinary day resolves to plain midnight.
	zdt, err = ResolveStartOfDay(z, date(t, 2024, 4, 1))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(at(t, 2024, 4, 1, 0, 0), zdt.DateTime()); diff != "" {
		t.Errorf("start of day mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveStartOfDaySkippedDay(t *testing.T) {
	// The dateline shift: -11:00 to +13:00 at 2011-12-30 00:00 local, so
	// the whole calendar day 2011-12-30 never occurs.
	cut := utc(t, 2011, 12, 30, 11, 0)
	z, err := New("Test/DateLine", []Interval{
		{Start: civil.BeforeTime, End: cut, Offset: civil.MustOffset(-11 * time.Hour), Name: "WT"},
		{Start: cut, End: civil.AfterTime, Offset: civil.MustOffset(13 * time.Hour), Name: "ET"},
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = ResolveStartOfDay(z, date(t, 2011, 12, 30))
	var skipped *SkippedTimeError
	if !errors.As(err, &skipped) {
		t.Fatalf("ResolveStartOfDay error = %v, want *SkippedTimeError", err)
	}
	// The neighboring days resolve normally.
	for _, d := range []civil.Date{date(t, 2011, 12, 29), date(t, 2011, 12, 31)} {
		if _, err := ResolveStartOfDay(z, d); err != nil {
			t.Errorf("ResolveStartOfDay(%v) = %v, want success", d, err)
		}
	}
}

func TestBuilderAnnualRules(t *testing.T) {
	// Central European scheme: standard +01:00, savings from the last
	// Sunday of March to the last Sunday of October, both at 01:00 UTC.
	z, err := NewBuilder("Test/Central", civil.MustOffset(time.Hour), "CET").
		Annual(2023, 2025,
			Rule{Month: 3, Day: Day{Form: DayLast, Weekday: 0}, At: mustTime(t, 1, 0), AtForm: UniversalTime, Save: civil.MustOffset(time.Hour), Name: "CEST"},
			Rule{Month: 10, Day: Day{Form: DayLast, Weekday: 0}, At: mustTime(t, 1, 0), AtForm: UniversalTime, Save: 0, Name: "CET"},
		).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// 3 years with 2 transitions each: base + 6 intervals.
	if got, want := len(z.Intervals()), 7; got != want {
		t.Fatalf("len(Intervals()) = %d, want %d", got, want)
	}

	cases := []struct {
		instant civil.Instant
		offset  int
		name    string
	}{
		{utc(t, 2024, 1, 15, 12, 0), 3600, "CET"},
		{utc(t, 2024, 7, 1, 12, 0), 7200, "CEST"},
		{utc(t, 2024, 3, 31, 0, 59), 3600, "CET"},
		{utc(t, 2024, 3, 31, 1, 0), 7200, "CEST"},
		{utc(t, 2024, 10, 27, 1, 0), 3600, "CET"},
	}
	for _, c := range cases {
		iv := z.IntervalAt(c.instant)
		if iv.Offset.Seconds() != c.offset || iv.Name != c.name {
			t.Errorf("IntervalAt(%v) = %v %q, want %ds %q", c.instant, iv.Offset, iv.Name, c.offset, c.name)
		}
	}
}

func TestBuilderWallClockRules(t *testing.T) {
	// US-style scheme given in wall-clock time: forward at 02:00 local,
	// back at 02:00 local (which is 02:00 daylight time).
	z, err := NewBuilder("Test/Eastern", civil.MustOffset(-5*time.Hour), "EST").
		Annual(2024, 2024,
			Rule{Month: 3, Day: Day{Form: DayAfter, Num: 8, Weekday: 0}, At: mustTime(t, 2, 0), AtForm: WallClock, Save: civil.MustOffset(time.Hour), Name: "EDT"},
			Rule{Month: 11, Day: Day{Form: DayAfter, Num: 1, Weekday: 0}, At: mustTime(t, 2, 0), AtForm: WallClock, Save: 0, Name: "EST"},
		).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// 2024-03-10 02:00 EST = 07:00 UTC; 2024-11-03 02:00 EDT = 06:00 UTC.
	cases := []struct {
		instant civil.Instant
		offset  int
	}{
		{utc(t, 2024, 3, 10, 6, 59), -5 * 3600},
		{utc(t, 2024, 3, 10, 7, 0), -4 * 3600},
		{utc(t, 2024, 11, 3, 5, 59), -4 * 3600},
		{utc(t, 2024, 11, 3, 6, 0), -5 * 3600},
	}
	for _, c := range cases {
		if got := z.OffsetAt(c.instant).Seconds(); got != c.offset {
			t.Errorf("OffsetAt(%v) = %ds, want %ds", c.instant, got, c.offset)
		}
	}
}

func TestBuilderCollectsRuleErrors(t *testing.T) {
	// Every bad rule must be reported, not just the first.
	_, err := NewBuilder("Test/Broken", civil.MustOffset(time.Hour), "TT").
		Annual(2020, 2021,
			Rule{Month: 0, Day: Day{Form: DayNum, Num: 1}, At: mustTime(t, 2, 0)},
			Rule{Month: 13, Day: Day{Form: DayNum, Num: 1}, At: mustTime(t, 2, 0)},
		).
		Build()
	if err == nil {
		t.Fatal("Build succeeded, want error")
	}
	for _, want := range []string{"rule 0: month 0", "rule 1: month 13"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestMapProvider(t *testing.T) {
	p := NewMapProvider(UTC, Fixed("Test/FiveEast", civil.MustOffset(5*time.Hour)))
	if _, err := p.Zone("UTC"); err != nil {
		t.Fatal(err)
	}
	_, err := p.Zone("Test/Nowhere")
	var unknown *UnknownZoneError
	if !errors.As(err, &unknown) {
		t.Fatalf("Zone() error = %v, want *UnknownZoneError", err)
	}
	if unknown.ID != "Test/Nowhere" {
		t.Errorf("unknown.ID = %q, want %q", unknown.ID, "Test/Nowhere")
	}
}

func mustTime(t *testing.T, h, m int) civil.TimeOfDay {
	t.Helper()
	tod, err := civil.NewTimeOfDay(h, m, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}
