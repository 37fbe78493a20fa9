package civil

import "fmt"

// TimeOfDay is a wall-clock time measured in ticks from midnight.
// Valid values lie in [0, TicksPerDay). The zero value is midnight.
type TimeOfDay int64

// Midnight is the start of a calendar day.
const Midnight TimeOfDay = 0

// NewTimeOfDay returns the time of day for the given fields. ticks is the
// sub-second component in ticks, [0, TicksPerSecond).
func NewTimeOfDay(hour, minute, second int, ticks int64) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d: out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d: out of range", minute)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("second %d: out of range", second)
	}
	if ticks < 0 || ticks >= TicksPerSecond {
		return 0, fmt.Errorf("tick %d: out of range", ticks)
	}
	return TimeOfDay(int64(hour)*TicksPerHour + int64(minute)*TicksPerMinute + int64(second)*TicksPerSecond + ticks), nil
}

// Hour returns the hour of the day, [0, 23].
func (t TimeOfDay) Hour() int { return int(int64(t) / TicksPerHour) }

// Minute returns the minute of the hour, [0, 59].
func (t TimeOfDay) Minute() int { return int(int64(t) / TicksPerMinute % 60) }

// Second returns the second of the minute, [0, 59].
func (t TimeOfDay) Second() int { return int(int64(t) / TicksPerSecond % 60) }

// TickOfSecond returns the sub-second component in ticks.
func (t TimeOfDay) TickOfSecond() int64 { return int64(t) % TicksPerSecond }

// TicksSinceMidnight returns the raw tick count from midnight.
func (t TimeOfDay) TicksSinceMidnight() int64 { return int64(t) }

// String formats the time as HH:mm:ss, with the sub-second component
// appended as .ttttttt when present.
func (t TimeOfDay) String() string {
	if ticks := t.TickOfSecond(); ticks != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%07d", t.Hour(), t.Minute(), t.Second(), ticks)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
