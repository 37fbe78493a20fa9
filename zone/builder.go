package zone

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/internal/datemath"
)

// DayForm selects how a Day names a day of the month.
type DayForm int

const (
	// DayNum names a fixed day of the month.
	DayNum DayForm = iota
	// DayLast names the last given weekday of the month.
	DayLast
	// DayAfter names the first given weekday on or after Num.
	DayAfter
	// DayBefore names the last given weekday on or before Num.
	DayBefore
)

func (f DayForm) String() string {
	switch f {
	case DayNum:
		return "Num"
	case DayLast:
		return "Last"
	case DayAfter:
		return "After"
	case DayBefore:
		return "Before"
	default:
		return "<UNDEFINED>"
	}
}

// Day names a day of a month in one of the recurring forms used by zone
// rules, e.g. "the last Sunday" or "the first Sunday on or after the 8th".
type Day struct {
	Form    DayForm
	Num     int
	Weekday int // 0=Sunday, used by DayLast, DayAfter and DayBefore
}

// dayOfMonth resolves the day reference for a concrete year, possibly
// rolling into a neighboring month or year.
func (d Day) dayOfMonth(year, month int) (int, int, int) {
	switch d.Form {
	case DayNum:
		return year, month, d.Num
	case DayLast:
		return year, month, datemath.LastWeekdayOfMonth(year, month, d.Weekday)
	case DayAfter:
		return datemath.NextWeekday(year, month, d.Num, d.Weekday)
	case DayBefore:
		return datemath.PrevWeekday(year, month, d.Num, d.Weekday)
	}
	panic(fmt.Sprintf("invalid DayForm: %d", d.Form))
}

// TimeForm states which clock a rule's time of day refers to.
type TimeForm int

const (
	// WallClock means local time including any savings in effect.
	WallClock TimeForm = iota
	// StandardTime means local time without savings.
	StandardTime
	// UniversalTime means UTC.
	UniversalTime
)

func (f TimeForm) String() string {
	switch f {
	case WallClock:
		return "WallClock"
	case StandardTime:
		return "StandardTime"
	case UniversalTime:
		return "UniversalTime"
	default:
		return "<UNDEFINED>"
	}
}

// Rule is one annual transition of a recurring daylight-saving scheme.
type Rule struct {
	Month  int
	Day    Day
	At     civil.TimeOfDay
	AtForm TimeForm
	// Save is the savings in effect after the transition. Zero switches
	// back to standard time.
	Save civil.Offset
	// Name is the abbreviation in effect after the transition.
	Name string
}

// Builder assembles a zone from a standard offset plus explicit transitions
// and expanded annual rules. Methods may be chained; errors are collected
// and reported by Build.
type Builder struct {
	id      string
	std     civil.Offset
	stdName string

	transitions []transition
	err         error
}

// transition is a point where the zone's total offset, savings or
// abbreviation changes.
type transition struct {
	at      civil.Instant
	utocc   civil.Instant // occurrence assuming UTC, used for expansion ordering
	form    TimeForm
	local   civil.DateTime
	offset  civil.Offset
	savings civil.Offset
	name    string
	pending bool // at not final until expansion applies the active offset
}

// NewBuilder starts a zone with the given standard offset and abbreviation.
func NewBuilder(id string, std civil.Offset, stdName string) *Builder {
	return &Builder{id: id, std: std, stdName: stdName}
}

// Transition adds an explicit transition: from instant at on, the zone
// applies the given total offset.
func (b *Builder) Transition(at civil.Instant, offset, savings civil.Offset, name string) *Builder {
	if at.IsSentinel() {
		b.fail(fmt.Errorf("transition at sentinel instant"))
		return b
	}
	b.transitions = append(b.transitions, transition{
		at:      at,
		utocc:   at,
		offset:  offset,
		savings: savings,
		name:    name,
	})
	return b
}

// Annual expands the given rules for every year from fromYear through
// toYear, in the manner of recurring daylight-saving schemes: each rule
// fires once per year at its day reference and time of day.
func (b *Builder) Annual(fromYear, toYear int, rules ...Rule) *Builder {
	if fromYear > toYear {
		b.fail(fmt.Errorf("annual rules: year range %d..%d is inverted", fromYear, toYear))
		return b
	}
	var errs error
	for i, r := range rules {
		if r.Month < 1 || r.Month > 12 {
			errs = errors.Join(errs, fmt.Errorf("annual rule %d: month %d out of range", i, r.Month))
		}
	}
	if errs != nil {
		b.fail(errs)
		return b
	}
	for year := fromYear; year <= toYear; year++ {
		for i, r := range rules {
			y, m, d := r.Day.dayOfMonth(year, r.Month)
			date, err := civil.NewDate(civil.ISO, y, m, d)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("annual rule %d, year %d: %w", i, year, err))
				continue
			}
			local := civil.NewDateTime(date, r.At)
			b.transitions = append(b.transitions, transition{
				utocc:   local.InstantAt(0),
				form:    r.AtForm,
				local:   local,
				offset:  b.std + r.Save,
				savings: r.Save,
				name:    r.Name,
				pending: true,
			})
		}
	}
	if errs != nil {
		b.fail(errs)
	}
	return b
}

func (b *Builder) fail(err error) {
	b.err = errors.Join(b.err, fmt.Errorf("zone %s: %w", b.id, err))
}

// Build finalizes the zone. Rule occurrences given in wall-clock or
// standard time are shifted by the offset in effect just before each
// transition, so the expansion walks transitions in occurrence order.
func (b *Builder) Build() (*Zone, error) {
	if b.err != nil {
		return nil, b.err
	}

	ts := make([]transition, len(b.transitions))
	copy(ts, b.transitions)
	sort.Slice(ts, func(i, j int) bool { return ts[i].utocc < ts[j].utocc })

	active := b.std
	for i := range ts {
		t := &ts[i]
		if t.pending {
			switch t.form {
			case UniversalTime:
				t.at = t.utocc
			case StandardTime:
				t.at = t.local.InstantAt(b.std)
			default: // WallClock
				t.at = t.local.InstantAt(active)
			}
			t.pending = false
		}
		active = t.offset
	}

	// Applying offsets can reorder neighbors whose universal occurrences
	// were close together.
	sort.Slice(ts, func(i, j int) bool { return ts[i].at < ts[j].at })

	intervals := []Interval{{
		Start:  civil.BeforeTime,
		End:    civil.AfterTime,
		Offset: b.std,
		Name:   b.stdName,
	}}
	for _, t := range ts {
		last := &intervals[len(intervals)-1]
		if t.at <= last.Start {
			return nil, fmt.Errorf("zone %s: transitions at %v not strictly ordered", b.id, t.at)
		}
		if t.offset == last.Offset && t.savings == last.Savings && t.name == last.Name {
			continue // no observable change, keep the interval maximal
		}
		last.End = t.at
		intervals = append(intervals, Interval{
			Start:   t.at,
			End:     civil.AfterTime,
			Offset:  t.offset,
			Savings: t.savings,
			Name:    t.name,
		})
	}

	return New(b.id, intervals)
}
