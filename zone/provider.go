package zone

import "fmt"

// Provider looks up zones by identifier.
type Provider interface {
	// Zone returns the zone with the given identifier. An unknown
	// identifier yields an *UnknownZoneError.
	Zone(id string) (*Zone, error)
}

// UnknownZoneError reports a zone identifier a provider does not know.
type UnknownZoneError struct {
	ID string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown zone %q", e.ID)
}

// MapProvider is an in-memory Provider backed by a fixed set of zones.
type MapProvider map[string]*Zone

// NewMapProvider indexes the given zones by identifier.
func NewMapProvider(zones ...*Zone) MapProvider {
	p := make(MapProvider, len(zones))
	for _, z := range zones {
		p[z.ID()] = z
	}
	return p
}

// Zone implements Provider.
func (p MapProvider) Zone(id string) (*Zone, error) {
	z, ok := p[id]
	if !ok {
		return nil, &UnknownZoneError{ID: id}
	}
	return z, nil
}

// IDs returns the identifiers known to the provider, in map order.
func (p MapProvider) IDs() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	return ids
}
