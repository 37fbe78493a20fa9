package zone

import (
	"fmt"

	"github.com/ngrash/go-civil/civil"
)

// ZonedDateTime is a wall-clock value anchored to a zone, together with the
// offset the zone applies at the denoted instant. The offset always equals
// what the zone reports for that instant: every public construction path
// goes through zone resolution, which enforces the invariant.
type ZonedDateTime struct {
	dt   civil.DateTime
	off  civil.Offset
	zone *Zone
}

// trusted builds a ZonedDateTime without re-checking that off matches the
// zone at the implied instant. Callers must have established that already,
// which is why this stays unexported: only the resolver and the stock
// policies reach it.
func trusted(dt civil.DateTime, off civil.Offset, z *Zone) ZonedDateTime {
	return ZonedDateTime{dt: dt, off: off, zone: z}
}

// NewZonedDateTime anchors a wall-clock value to a zone using the given
// resolution policy.
func NewZonedDateTime(dt civil.DateTime, z *Zone, resolve Resolver) (ZonedDateTime, error) {
	return resolve(MapLocal(z, dt))
}

// FromInstant returns the zoned value observed in z at instant i, using cal
// for the calendar fields. i must not be a sentinel instant.
func FromInstant(z *Zone, i civil.Instant, cal civil.Calendar) (ZonedDateTime, error) {
	if i.IsSentinel() {
		return ZonedDateTime{}, fmt.Errorf("zone %s: cannot convert sentinel instant", z.ID())
	}
	off := z.OffsetAt(i)
	return trusted(civil.DateTimeOfInstant(i, off, cal), off, z), nil
}

// DateTime returns the wall-clock component.
func (z ZonedDateTime) DateTime() civil.DateTime { return z.dt }

// Offset returns the UTC offset in effect at the denoted instant.
func (z ZonedDateTime) Offset() civil.Offset { return z.off }

// Zone returns the zone the value is anchored to.
func (z ZonedDateTime) Zone() *Zone { return z.zone }

// Instant returns the point on the timeline the value denotes.
func (z ZonedDateTime) Instant() civil.Instant { return z.dt.InstantAt(z.off) }

// Equal reports whether two zoned values have the same wall-clock fields,
// offset and zone.
func (z ZonedDateTime) Equal(o ZonedDateTime) bool {
	return z.dt.Equal(o.dt) && z.off == o.off && z.zone == o.zone
}

func (z ZonedDateTime) String() string {
	id := ""
	if z.zone != nil {
		id = " " + z.zone.ID()
	}
	return z.dt.String() + z.off.String() + id
}
