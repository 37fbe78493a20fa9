package civil

// OffsetDateTime is a wall-clock value paired with the UTC offset at which
// it was observed. Unlike zoned values it carries no transition history, so
// it can always be constructed without resolution.
type OffsetDateTime struct {
	dt  DateTime
	off Offset
}

// NewOffsetDateTime pairs a wall-clock value with an offset.
func NewOffsetDateTime(dt DateTime, o Offset) OffsetDateTime {
	return OffsetDateTime{dt: dt, off: o}
}

// DateTime returns the wall-clock component.
func (o OffsetDateTime) DateTime() DateTime { return o.dt }

// Offset returns the UTC offset.
func (o OffsetDateTime) Offset() Offset { return o.off }

// Instant returns the point on the timeline the value denotes.
func (o OffsetDateTime) Instant() Instant { return o.dt.InstantAt(o.off) }

// Equal reports whether two values have the same wall-clock fields and the
// same offset. Values denoting the same instant at different offsets are
// not equal.
func (o OffsetDateTime) Equal(p OffsetDateTime) bool {
	return o.dt.Equal(p.dt) && o.off == p.off
}

func (o OffsetDateTime) String() string {
	return o.dt.String() + o.off.String()
}
