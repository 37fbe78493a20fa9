// Package civil provides calendar-aware date and time values that are not
// bound to any time zone, together with the instant and offset arithmetic
// needed to anchor them to one.
//
// All types in this package are immutable value types and safe for
// concurrent use.
package civil

import (
	"fmt"
	"math"
	"time"
)

// Ticks are the sub-second unit used throughout this module.
// One tick is 100 nanoseconds.
const (
	TicksPerSecond int64 = 10_000_000
	TicksPerMinute       = 60 * TicksPerSecond
	TicksPerHour         = 60 * TicksPerMinute
	TicksPerDay          = 24 * TicksPerHour
)

// Instant is a point on the absolute, zone-independent timeline, counted in
// ticks since the Unix epoch, 1970-01-01 00:00:00 UTC.
type Instant int64

const (
	// BeforeTime sorts before every representable instant.
	// It marks the open start of a zone's first interval.
	BeforeTime Instant = math.MinInt64

	// AfterTime sorts after every representable instant.
	// It marks the open end of a zone's last interval.
	AfterTime Instant = math.MaxInt64
)

// UnixInstant returns the Instant for the given Unix time in seconds.
func UnixInstant(sec int64) Instant {
	return Instant(sec * TicksPerSecond)
}

// IsSentinel reports whether i is BeforeTime or AfterTime.
func (i Instant) IsSentinel() bool {
	return i == BeforeTime || i == AfterTime
}

// Add returns the instant shifted by d. Sentinel instants are preserved and
// additions that would overflow saturate to the nearest sentinel instead of
// wrapping around.
func (i Instant) Add(d time.Duration) Instant {
	return i.addTicks(d.Nanoseconds() / 100)
}

// AddOffset returns the instant shifted forward by o. This is the local
// projection used when comparing instants against wall-clock values.
func (i Instant) AddOffset(o Offset) Instant {
	return i.addTicks(int64(o) * TicksPerSecond)
}

// SubtractOffset returns the instant shifted backward by o.
func (i Instant) SubtractOffset(o Offset) Instant {
	return i.addTicks(-int64(o) * TicksPerSecond)
}

func (i Instant) addTicks(t int64) Instant {
	if i.IsSentinel() {
		return i
	}
	s := int64(i) + t
	if t > 0 && s < int64(i) {
		return AfterTime
	}
	if t < 0 && s > int64(i) {
		return BeforeTime
	}
	return Instant(s)
}

// Before reports whether i is earlier than o.
func (i Instant) Before(o Instant) bool { return i < o }

// After reports whether i is later than o.
func (i Instant) After(o Instant) bool { return i > o }

// Unix returns the instant as Unix seconds, truncating sub-second ticks.
func (i Instant) Unix() int64 {
	return int64(i) / TicksPerSecond
}

func (i Instant) String() string {
	switch i {
	case BeforeTime:
		return "<before time>"
	case AfterTime:
		return "<after time>"
	}
	dt := DateTimeOfInstant(i, 0, ISO)
	return dt.String() + "Z"
}

// maxOffsetSeconds bounds offsets to eighteen hours either side of UTC,
// which covers every offset the IANA database has ever shipped.
const maxOffsetSeconds = 18 * 60 * 60

// Offset is the signed difference between local wall-clock time and
// universal time, in whole seconds east of UTC.
type Offset int32

// NewOffset returns the offset for the given duration.
// The duration must be a whole number of seconds within ±18h.
func NewOffset(d time.Duration) (Offset, error) {
	if d%time.Second != 0 {
		return 0, fmt.Errorf("offset %v: not a whole number of seconds", d)
	}
	return OffsetFromSeconds(int(d / time.Second))
}

// OffsetFromSeconds returns the offset for the given number of seconds east
// of UTC.
func OffsetFromSeconds(s int) (Offset, error) {
	if s < -maxOffsetSeconds || s > maxOffsetSeconds {
		return 0, fmt.Errorf("offset %ds: outside ±18h", s)
	}
	return Offset(s), nil
}

// MustOffset is like NewOffset but panics on error.
// It is intended for fixed zone tables and tests.
func MustOffset(d time.Duration) Offset {
	o, err := NewOffset(d)
	if err != nil {
		panic(err)
	}
	return o
}

// Seconds returns the offset in seconds east of UTC.
func (o Offset) Seconds() int { return int(o) }

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration { return time.Duration(o) * time.Second }

// String formats the offset as ±hh:mm, extended to ±hh:mm:ss if the offset
// is not a whole number of minutes.
func (o Offset) String() string {
	s := int(o)
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	h, m, sec := s/3600, s/60%60, s%60
	if sec != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// ParseOffset parses an offset in one of the forms "Z", "±hh", "±hh:mm" or
// "±hh:mm:ss".
func ParseOffset(s string) (Offset, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, fmt.Errorf("offset %q: expected sign or Z", s)
	}
	neg := s[0] == '-'
	var parts [3]int
	n := 0
	for rest := s[1:]; ; n++ {
		if n == 3 {
			return 0, fmt.Errorf("offset %q: too many components", s)
		}
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			parts[n] = parts[n]*10 + int(rest[i]-'0')
			i++
		}
		if i == 0 || i > 2 {
			return 0, fmt.Errorf("offset %q: expected two digits", s)
		}
		if i == len(rest) {
			break
		}
		if rest[i] != ':' {
			return 0, fmt.Errorf("offset %q: expected ':', got %q", s, rest[i])
		}
		rest = rest[i+1:]
	}
	if parts[1] > 59 || parts[2] > 59 {
		return 0, fmt.Errorf("offset %q: minutes and seconds must be below 60", s)
	}
	total := parts[0]*3600 + parts[1]*60 + parts[2]
	if neg {
		total = -total
	}
	return OffsetFromSeconds(total)
}
