package pattern

import "github.com/ngrash/go-civil/civil"

// Bucket is the mutable per-parse accumulator. Steps write parsed field
// values into it; after all steps succeed, the pattern's combination logic
// reads back the fields marked used and fills the rest from the template
// value supplied at compile time.
//
// A fresh bucket is created for every Parse call and discarded afterwards,
// so compiled patterns stay free of mutable state.
type Bucket struct {
	Era       int
	Year      int
	YearOfEra int
	Month     int
	Day       int
	DayOfWeek int

	Hour12 int
	Hour24 int
	AMPM   int // 0=AM, 1=PM
	Minute int
	Second int
	// FractionTicks is the sub-second component in ticks.
	FractionTicks int64

	Calendar      civil.Calendar
	OffsetSeconds int
	ZoneID        string
}
