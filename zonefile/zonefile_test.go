package zonefile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/zone"
)

const centralDoc = `
zones:
  - id: Test/Central
    standard: "+01:00"
    name: CET
    annual:
      - from: 2023
        to: 2025
        rules:
          - in: Mar
            on: lastSun
            at: "1:00u"
            save: "1:00"
            name: CEST
          - in: Oct
            on: lastSun
            at: "1:00u"
            save: "0"
            name: CET
`

func utcInstant(t *testing.T, y, mo, d, h, mi int) civil.Instant {
	t.Helper()
	date, err := civil.NewDate(civil.ISO, y, mo, d)
	if err != nil {
		t.Fatal(err)
	}
	tod, err := civil.NewTimeOfDay(h, mi, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return civil.NewDateTime(date, tod).InstantAt(0)
}

func TestLoadAnnualRules(t *testing.T) {
	zones, err := Load(strings.NewReader(centralDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(zones) != 1 {
		t.Fatalf("len(zones) = %d, want 1", len(zones))
	}
	z := zones[0]
	if z.ID() != "Test/Central" {
		t.Errorf("ID = %q, want Test/Central", z.ID())
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
		{utcInstant(t, 2024, 1, 15, 12, 0), 3600, "CET"},
		{utcInstant(t, 2024, 7, 1, 12, 0), 7200, "CEST"},
		{utcInstant(t, 2024, 3, 31, 0, 59), 3600, "CET"},
		{utcInstant(t, 2024, 3, 31, 1, 0), 7200, "CEST"},
	}
	for _, c := range cases {
		iv := z.IntervalAt(c.instant)
		if iv.Offset.Seconds() != c.offset || iv.Name != c.name {
			t.Errorf("IntervalAt(%v) = %v %q, want %ds %q", c.instant, iv.Offset, iv.Name, c.offset, c.name)
		}
	}
}

func TestLoadExplicitTransitions(t *testing.T) {
	const doc = `
zones:
  - id: Test/Steps
    standard: "+02:00"
    name: AA
    transitions:
      - at: "2024-10-27T01:00:00Z"
        offset: "+01:00"
        name: BB
`
	zones, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	z := zones[0]
	want := []zone.Interval{
		{Start: civil.BeforeTime, End: utcInstant(t, 2024, 10, 27, 1, 0), Offset: civil.Offset(7200), Name: "AA"},
		{Start: utcInstant(t, 2024, 10, 27, 1, 0), End: civil.AfterTime, Offset: civil.Offset(3600), Name: "BB"},
	}
	if diff := cmp.Diff(want, z.Intervals()); diff != "" {
		t.Errorf("Intervals() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCollectsAllErrors(t *testing.T) {
	const doc = `
zones:
  - id: Test/Broken
    standard: "+01:00"
    annual:
      - from: 2020
        to: 2021
        rules:
          - in: Smarch
            on: Sun>=
            at: "2:00"
            save: "nope"
  - id: Test/Fine
    standard: "+03:00"
    name: OK
`
	zones, err := Load(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Load succeeded, want error")
	}
	// One definition failing must not take the healthy ones with it.
	if len(zones) != 1 || zones[0].ID() != "Test/Fine" {
		t.Fatalf("zones = %v, want only Test/Fine", zones)
	}
	for _, want := range []string{`zone "Test/Broken"`, `in "Smarch"`, `on "Sun>="`, `save "nope"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	if _, err := Load(strings.NewReader("zones: []\n")); err == nil {
		t.Error("Load succeeded, want error")
	}
}

func TestParseRuleON(t *testing.T) {
	for _, tt := range []struct {
		in      string
		want    zone.Day
		wantErr bool
	}{
		{in: "5", want: zone.Day{Form: zone.DayNum, Num: 5}},
		{in: "lastSun", want: zone.Day{Form: zone.DayLast, Weekday: 0}},
		{in: "lastFriday", want: zone.Day{Form: zone.DayLast, Weekday: 5}},
		{in: "Sun>=8", want: zone.Day{Form: zone.DayAfter, Num: 8, Weekday: 0}},
		{in: "Mon<=25", want: zone.Day{Form: zone.DayBefore, Num: 25, Weekday: 1}},
		{in: "32", wantErr: true},
		{in: "Funday", wantErr: true},
		{in: ">=8", wantErr: true},
	} {
		got, err := parseRuleON(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRuleON(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRuleON(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRuleON(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRuleAT(t *testing.T) {
	for _, tt := range []struct {
		in       string
		wantTod  string
		wantForm zone.TimeForm
	}{
		{"2:00", "02:00:00", zone.WallClock},
		{"2:00w", "02:00:00", zone.WallClock},
		{"1:00s", "01:00:00", zone.StandardTime},
		{"0:30:15u", "00:30:15", zone.UniversalTime},
	} {
		tod, form, err := parseRuleAT(tt.in)
		if err != nil {
			t.Errorf("parseRuleAT(%q): %v", tt.in, err)
			continue
		}
		if tod.String() != tt.wantTod || form != tt.wantForm {
			t.Errorf("parseRuleAT(%q) = %v %v, want %s %v", tt.in, tod, form, tt.wantTod, tt.wantForm)
		}
	}
}
