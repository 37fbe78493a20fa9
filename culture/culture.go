// Package culture provides the locale symbol tables the pattern engine
// resolves text fields against: month and day names, AM/PM designators,
// separators and the named standard-format templates.
//
// The tables are compiled in. Lookup is by exact identifier; an unknown
// identifier is an error, never a silent default.
package culture

import "fmt"

// Culture is one locale's symbol table. Cultures are plain values; copying
// one is cheap and the registry hands out copies, so callers can tweak a
// culture without affecting others.
type Culture struct {
	// ID is the registry key, e.g. "en-US".
	ID string

	MonthNames         [12]string
	MonthAbbreviations [12]string
	DayNames           [7]string // 0=Sunday
	DayAbbreviations   [7]string

	AMDesignator string
	PMDesignator string

	// EraNames holds the era designators, indexed by civil.Era:
	// the common era first, then before-common-era.
	EraNames [2]string

	DateSeparator string
	TimeSeparator string

	// Named standard-format templates, referenced by the single-character
	// standard formats of the pattern engine.
	ShortDatePattern     string
	LongDatePattern      string
	ShortTimePattern     string
	LongTimePattern      string
	ShortDateTimePattern string
	LongDateTimePattern  string
}

// Invariant is the culture used when no locale concerns apply. Its symbols
// follow the ISO conventions with English names.
var Invariant = Culture{
	ID:                 "invariant",
	MonthNames:         [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthAbbreviations: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	DayNames:           [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DayAbbreviations:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AMDesignator:       "AM",
	PMDesignator:       "PM",
	EraNames:           [2]string{"CE", "BCE"},
	DateSeparator:      "-",
	TimeSeparator:      ":",

	ShortDatePattern:     "yyyy-MM-dd",
	LongDatePattern:      "dddd, d MMMM yyyy",
	ShortTimePattern:     "HH:mm",
	LongTimePattern:      "HH:mm:ss",
	ShortDateTimePattern: "yyyy-MM-dd HH:mm",
	LongDateTimePattern:  "yyyy-MM-dd HH:mm:ss",
}

// enUS follows the United States conventions.
var enUS = Culture{
	ID:                 "en-US",
	MonthNames:         Invariant.MonthNames,
	MonthAbbreviations: Invariant.MonthAbbreviations,
	DayNames:           Invariant.DayNames,
	DayAbbreviations:   Invariant.DayAbbreviations,
	AMDesignator:       "AM",
	PMDesignator:       "PM",
	EraNames:           [2]string{"AD", "BC"},
	DateSeparator:      "/",
	TimeSeparator:      ":",

	ShortDatePattern:     "M/d/yyyy",
	LongDatePattern:      "dddd, MMMM d, yyyy",
	ShortTimePattern:     "h:mm tt",
	LongTimePattern:      "h:mm:ss tt",
	ShortDateTimePattern: "M/d/yyyy h:mm tt",
	LongDateTimePattern:  "M/d/yyyy h:mm:ss tt",
}

// deDE follows the German conventions.
var deDE = Culture{
	ID:                 "de-DE",
	MonthNames:         [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	MonthAbbreviations: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	DayNames:           [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	DayAbbreviations:   [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	AMDesignator:       "vorm.",
	PMDesignator:       "nachm.",
	EraNames:           [2]string{"n. Chr.", "v. Chr."},
	DateSeparator:      ".",
	TimeSeparator:      ":",

	ShortDatePattern:     "dd.MM.yyyy",
	LongDatePattern:      "dddd, d. MMMM yyyy",
	ShortTimePattern:     "HH:mm",
	LongTimePattern:      "HH:mm:ss",
	ShortDateTimePattern: "dd.MM.yyyy HH:mm",
	LongDateTimePattern:  "dd.MM.yyyy HH:mm:ss",
}

var registry = map[string]Culture{
	Invariant.ID: Invariant,
	enUS.ID:      enUS,
	deDE.ID:      deDE,
}

// UnknownCultureError reports a culture identifier the registry does not
// know.
type UnknownCultureError struct {
	ID string
}

func (e *UnknownCultureError) Error() string {
	return fmt.Sprintf("unknown culture %q", e.ID)
}

// Lookup returns the culture registered under the given identifier.
func Lookup(id string) (Culture, error) {
	c, ok := registry[id]
	if !ok {
		return Culture{}, &UnknownCultureError{ID: id}
	}
	return c, nil
}

// IDs returns the registered culture identifiers, in map order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
