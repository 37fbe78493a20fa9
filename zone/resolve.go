package zone

import (
	"fmt"

	"github.com/ngrash/go-civil/civil"
)

// Mapping is the result of mapping one wall-clock value into a zone.
//
// Count is the number of instants the value corresponds to: 0 when it falls
// in a forward gap, 2 when it falls in a backward overlap, 1 otherwise.
// Early and Late are the earlier-starting and later-starting candidate
// intervals; they are identical in the unambiguous case, and in the gap
// case they are the intervals either side of the transition.
type Mapping struct {
	Early Interval
	Late  Interval
	Count int

	zone  *Zone
	local civil.DateTime
}

// Zone returns the zone the mapping was computed against.
func (m Mapping) Zone() *Zone { return m.zone }

// Local returns the wall-clock value that was mapped.
func (m Mapping) Local() civil.DateTime { return m.local }

// EarlyResult commits the mapping to the earlier candidate interval.
// It must not be called when Count is zero.
func (m Mapping) EarlyResult() ZonedDateTime {
	if m.Count == 0 {
		panic("zone: EarlyResult on gap mapping")
	}
	return trusted(m.local, m.Early.Offset, m.zone)
}

// LateResult commits the mapping to the later candidate interval.
// It must not be called when Count is zero.
func (m Mapping) LateResult() ZonedDateTime {
	if m.Count == 0 {
		panic("zone: LateResult on gap mapping")
	}
	return trusted(m.local, m.Late.Offset, m.zone)
}

// GapEndResult commits a gap mapping to the first valid instant after the
// gap, the start of the later interval. The wall-clock value of the result
// differs from the requested one. It must only be called when Count is zero.
func (m Mapping) GapEndResult() ZonedDateTime {
	if m.Count != 0 {
		panic("zone: GapEndResult on non-gap mapping")
	}
	local := civil.DateTimeOfInstant(m.Late.Start, m.Late.Offset, m.local.Date().Calendar())
	return trusted(local, m.Late.Offset, m.zone)
}

// MapLocal computes how many instants in z correspond to the wall-clock
// value dt, and which interval(s) they fall into. It is total: every
// wall-clock value yields a mapping with Count in {0, 1, 2}.
func MapLocal(z *Zone, dt civil.DateTime) Mapping {
	m := Mapping{zone: z, local: dt}

	// Offsets are bounded, so only intervals between the projections of dt
	// at the extreme offsets can contain it.
	earliest := dt.InstantAt(maxOffset)
	latest := dt.InstantAt(-maxOffset)

	first := true
	for k := range z.intervals {
		iv := z.intervals[k]
		if iv.End <= earliest {
			continue
		}
		if iv.Start > latest {
			break
		}
		if !iv.containsLocal(dt) {
			continue
		}
		if first {
			m.Early, m.Late = iv, iv
			first = false
		} else {
			m.Late = iv
		}
		m.Count++
	}
	if m.Count > 0 {
		return m
	}

	// Gap: locate the transition whose forward jump skipped dt. The value
	// lies at or after the local end of some interval and before the local
	// start of its successor.
	for k := 0; k+1 < len(z.intervals); k++ {
		a, b := z.intervals[k], z.intervals[k+1]
		if dt.InstantAt(a.Offset) >= a.End && dt.InstantAt(b.Offset) < b.Start {
			m.Early, m.Late = a, b
			return m
		}
	}
	// Unreachable for well-formed zones: a value that matches no interval
	// must sit in some gap.
	panic(fmt.Sprintf("zone %s: no mapping for %v", z.id, dt))
}

const maxOffset = civil.Offset(18 * 60 * 60)

// SkippedTimeError reports a wall-clock value that never occurs in a zone
// because a forward transition jumped over it.
type SkippedTimeError struct {
	Local civil.DateTime
	Zone  *Zone
}

func (e *SkippedTimeError) Error() string {
	return fmt.Sprintf("local time %v was skipped in zone %s", e.Local, e.Zone.ID())
}

// AmbiguousTimeError reports a wall-clock value that occurs twice in a zone
// because a backward transition repeated it.
type AmbiguousTimeError struct {
	Local civil.DateTime
	Zone  *Zone
	// Earlier and Later are the two valid readings of the value.
	Earlier, Later civil.Offset
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("local time %v is ambiguous in zone %s (%v or %v)", e.Local, e.Zone.ID(), e.Earlier, e.Later)
}

// Resolver turns a mapping into a single committed value or a typed error.
// The two stock policies are Strict and Lenient; callers may supply their
// own functions over the same mapping contract.
type Resolver func(Mapping) (ZonedDateTime, error)

// Strict accepts only unambiguous wall-clock values. A gap yields a
// *SkippedTimeError, an overlap an *AmbiguousTimeError. It never guesses.
func Strict(m Mapping) (ZonedDateTime, error) {
	switch m.Count {
	case 1:
		return m.EarlyResult(), nil
	case 0:
		return ZonedDateTime{}, &SkippedTimeError{Local: m.Local(), Zone: m.Zone()}
	default:
		return ZonedDateTime{}, &AmbiguousTimeError{
			Local:   m.Local(),
			Zone:    m.Zone(),
			Earlier: m.Early.Offset,
			Later:   m.Late.Offset,
		}
	}
}

// Lenient always succeeds. An overlap resolves to the earlier reading. A
// skipped value resolves to the first valid instant after the gap, which
// deliberately changes the wall-clock value.
func Lenient(m Mapping) (ZonedDateTime, error) {
	if m.Count == 0 {
		return m.GapEndResult(), nil
	}
	return m.EarlyResult(), nil
}

// ResolveStartOfDay returns the earliest valid instant of the given
// calendar date in z. If midnight was skipped by a transition, the start of
// the interval after the gap is used instead, provided it still falls on
// the requested date; if the whole day was skipped the function fails with
// a *SkippedTimeError.
func ResolveStartOfDay(z *Zone, date civil.Date) (ZonedDateTime, error) {
	midnight := civil.NewDateTime(date, civil.Midnight)
	m := MapLocal(z, midnight)
	if m.Count == 0 {
		zdt := m.GapEndResult()
		if !zdt.DateTime().Date().Equal(date) {
			// A transition large enough to skip the entire day.
			return ZonedDateTime{}, &SkippedTimeError{Local: midnight, Zone: z}
		}
		return zdt, nil
	}
	return m.EarlyResult(), nil
}
