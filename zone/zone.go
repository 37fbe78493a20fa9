// Package zone models time zones as ordered sequences of offset-constant
// intervals and resolves wall-clock values against them.
//
// A wall-clock value can denote zero, one or two instants in a zone,
// depending on whether it falls into a gap left by a forward transition, a
// normal stretch, or an overlap created by a backward transition. MapLocal
// computes that correspondence without deciding a winner; resolution
// policies turn its result into a single committed value or a typed error.
package zone

import (
	"fmt"
	"sort"

	"github.com/ngrash/go-civil/civil"
)

// Interval is a maximal span of instants during which a zone's offset and
// savings are constant. Start is inclusive, End exclusive. The first
// interval of a zone starts at civil.BeforeTime, the last one ends at
// civil.AfterTime.
type Interval struct {
	// Start is the first instant of the interval.
	Start civil.Instant
	// End is the first instant after the interval.
	End civil.Instant
	// Offset is the total offset from UTC, standard offset plus Savings.
	Offset civil.Offset
	// Savings is the daylight-saving component of Offset. Zero during
	// standard time.
	Savings civil.Offset
	// Name is the abbreviation in effect, e.g. "CET". May be empty.
	Name string
}

// Contains reports whether the instant lies within the interval.
func (iv Interval) Contains(i civil.Instant) bool {
	return i >= iv.Start && i < iv.End
}

// containsLocal reports whether the wall clock described by the interval's
// offset shows dt at some instant of the interval.
func (iv Interval) containsLocal(dt civil.DateTime) bool {
	return iv.Contains(dt.InstantAt(iv.Offset))
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%v, %v) %v %q", iv.Start, iv.End, iv.Offset, iv.Name)
}

// Zone is a time zone: an identifier plus an ordered, contiguous,
// non-overlapping sequence of intervals covering the whole timeline.
// Zones are immutable after construction and safe for concurrent use.
type Zone struct {
	id        string
	intervals []Interval
}

// New constructs a zone from an interval sequence. The sequence must be
// ordered by start, contiguous and cover the timeline from civil.BeforeTime
// to civil.AfterTime.
func New(id string, intervals []Interval) (*Zone, error) {
	if id == "" {
		return nil, fmt.Errorf("zone: empty id")
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("zone %s: no intervals", id)
	}
	if intervals[0].Start != civil.BeforeTime {
		return nil, fmt.Errorf("zone %s: first interval starts at %v, want beginning of time", id, intervals[0].Start)
	}
	if intervals[len(intervals)-1].End != civil.AfterTime {
		return nil, fmt.Errorf("zone %s: last interval ends at %v, want end of time", id, intervals[len(intervals)-1].End)
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i].Start != intervals[i-1].End {
			return nil, fmt.Errorf("zone %s: interval %d starts at %v but previous ends at %v", id, i, intervals[i].Start, intervals[i-1].End)
		}
	}
	for i, iv := range intervals {
		if iv.Start >= iv.End {
			return nil, fmt.Errorf("zone %s: interval %d is empty or inverted", id, i)
		}
	}
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	return &Zone{id: id, intervals: cp}, nil
}

// Fixed returns a zone whose offset never changes.
func Fixed(id string, offset civil.Offset) *Zone {
	return &Zone{id: id, intervals: []Interval{{
		Start:  civil.BeforeTime,
		End:    civil.AfterTime,
		Offset: offset,
		Name:   id,
	}}}
}

// UTC is the fixed zone at offset zero.
var UTC = Fixed("UTC", 0)

// ID returns the zone identifier.
func (z *Zone) ID() string { return z.id }

// Intervals returns a copy of the zone's interval sequence.
func (z *Zone) Intervals() []Interval {
	cp := make([]Interval, len(z.intervals))
	copy(cp, z.intervals)
	return cp
}

// IntervalAt returns the interval containing the given instant.
func (z *Zone) IntervalAt(i civil.Instant) Interval {
	n := sort.Search(len(z.intervals), func(k int) bool {
		return z.intervals[k].End > i
	})
	if n == len(z.intervals) {
		// Only reachable for civil.AfterTime, which is excluded from the
		// half-open final interval. Clamp to it.
		n = len(z.intervals) - 1
	}
	return z.intervals[n]
}

// OffsetAt returns the zone's total offset from UTC at the given instant.
func (z *Zone) OffsetAt(i civil.Instant) civil.Offset {
	return z.IntervalAt(i).Offset
}

func (z *Zone) String() string { return z.id }
