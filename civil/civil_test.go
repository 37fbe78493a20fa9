package civil

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustDate(t *testing.T, y, m, d int) Date {
	t.Helper()
	date, err := NewDate(ISO, y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return date
}

func mustTime(t *testing.T, h, m, s int, ticks int64) TimeOfDay {
	t.Helper()
	tod, err := NewTimeOfDay(h, m, s, ticks)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func TestNewDate(t *testing.T) {
	cases := []struct {
		y, m, d int
		wantErr bool
	}{
		{2024, 2, 29, false},
		{2023, 2, 29, true},
		{2024, 12, 31, false},
		{2024, 13, 1, true},
		{2024, 0, 1, true},
		{2024, 4, 31, true},
		{0, 1, 1, false},     // 1 BCE
		{-9999, 1, 1, false}, // calendar minimum
		{10000, 1, 1, true},
	}
	for _, c := range cases {
		_, err := NewDate(ISO, c.y, c.m, c.d)
		if gotErr := err != nil; gotErr != c.wantErr {
			t.Errorf("NewDate(ISO, %d, %d, %d) error = %v, want error %v", c.y, c.m, c.d, err, c.wantErr)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	cases := []struct {
		y, m, d int
	}{
		{1970, 1, 1},
		{1969, 12, 31},
		{2000, 2, 29},
		{1600, 3, 1},
		{0, 12, 31},
		{-44, 3, 15},
		{9999, 12, 31},
		{-9999, 1, 1},
	}
	for _, c := range cases {
		date := mustDate(t, c.y, c.m, c.d)
		y, m, d := date.YMD()
		if y != c.y || m != c.m || d != c.d {
			t.Errorf("YMD() = %d-%d-%d, want %d-%d-%d", y, m, d, c.y, c.m, c.d)
		}
	}
}

func TestDateDaysSinceEpoch(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    int64
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2000, 1, 1, 10957},
		{2038, 1, 19, 24855},
	}
	for _, c := range cases {
		got := mustDate(t, c.y, c.m, c.d).DaysSinceEpoch()
		if got != c.want {
			t.Errorf("DaysSinceEpoch(%d-%d-%d) = %d, want %d", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestDateWeekday(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    int // 0=Sunday
	}{
		{1970, 1, 1, 4},  // Thursday
		{2024, 3, 10, 0}, // Sunday
		{2024, 3, 11, 1}, // Monday
		{1969, 12, 31, 3},
	}
	for _, c := range cases {
		if got := mustDate(t, c.y, c.m, c.d).Weekday(); got != c.want {
			t.Errorf("Weekday(%d-%d-%d) = %d, want %d", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestEra(t *testing.T) {
	cases := []struct {
		year    int
		wantEra Era
		wantYoE int
	}{
		{2024, CommonEra, 2024},
		{1, CommonEra, 1},
		{0, BeforeCommonEra, 1},
		{-43, BeforeCommonEra, 44},
	}
	for _, c := range cases {
		era, yoe := ISO.Era(c.year)
		if era != c.wantEra || yoe != c.wantYoE {
			t.Errorf("Era(%d) = %v %d, want %v %d", c.year, era, yoe, c.wantEra, c.wantYoE)
		}
		back, err := ISO.YearOfEra(era, yoe)
		if err != nil {
			t.Fatal(err)
		}
		if back != c.year {
			t.Errorf("YearOfEra(%v, %d) = %d, want %d", era, yoe, back, c.year)
		}
	}
}

func TestInstantSaturation(t *testing.T) {
	if got := BeforeTime.Add(time.Hour); got != BeforeTime {
		t.Errorf("BeforeTime.Add(1h) = %v, want BeforeTime", got)
	}
	if got := AfterTime.Add(-time.Hour); got != AfterTime {
		t.Errorf("AfterTime.Add(-1h) = %v, want AfterTime", got)
	}
	near := Instant(AfterTime - 1)
	if got := near.Add(time.Hour); got != AfterTime {
		t.Errorf("near-max Add(1h) = %v, want AfterTime", got)
	}
	nearMin := Instant(BeforeTime + 1)
	if got := nearMin.Add(-time.Hour); got != BeforeTime {
		t.Errorf("near-min Add(-1h) = %v, want BeforeTime", got)
	}
}

func TestOffsetString(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "+00:00"},
		{3600, "+01:00"},
		{-18000, "-05:00"},
		{5*3600 + 30*60, "+05:30"},
		{2048, "+00:34:08"}, // Zurich LMT
	}
	for _, c := range cases {
		o, err := OffsetFromSeconds(c.seconds)
		if err != nil {
			t.Fatal(err)
		}
		if got := o.String(); got != c.want {
			t.Errorf("Offset(%ds).String() = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"Z", 0, false},
		{"+01:00", 3600, false},
		{"-05:30", -(5*3600 + 30*60), false},
		{"+02", 7200, false},
		{"+00:34:08", 2048, false},
		{"01:00", 0, true},
		{"+1:60", 0, true},
		{"+19:00", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseOffset(c.in)
		if gotErr := err != nil; gotErr != c.wantErr {
			t.Errorf("ParseOffset(%q) error = %v, want error %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got.Seconds() != c.want {
			t.Errorf("ParseOffset(%q) = %ds, want %ds", c.in, got.Seconds(), c.want)
		}
	}
}

func TestDateTimeInstantRoundTrip(t *testing.T) {
	cases := []struct {
		dt  DateTime
		off Offset
	}{
		{NewDateTime(Date{}, Midnight), 0},
		{NewDateTime(mustDate(t, 2024, 3, 10), mustTime(t, 2, 30, 0, 0)), 3600},
		{NewDateTime(mustDate(t, 1969, 12, 31), mustTime(t, 23, 59, 59, TicksPerSecond-1)), -18000},
	}
	for _, c := range cases {
		i := c.dt.InstantAt(c.off)
		back := DateTimeOfInstant(i, c.off, ISO)
		if diff := cmp.Diff(c.dt, back); diff != "" {
			t.Errorf("instant round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDateTimeString(t *testing.T) {
	dt := NewDateTime(mustDate(t, 2024, 3, 10), mustTime(t, 2, 30, 0, 0))
	if got, want := dt.String(), "2024-03-10T02:30:00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	odt := NewOffsetDateTime(dt, MustOffset(time.Hour))
	if got, want := odt.String(), "2024-03-10T02:30:00+01:00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
