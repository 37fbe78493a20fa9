// Package zonefile loads zone definitions from YAML documents and compiles
// them into zones via zone.Builder.
//
// A document lists zones; each zone names its standard offset and carries
// explicit transitions, recurring annual rule blocks, or both:
//
//	zones:
//	  - id: Europe/Zurich
//	    standard: "+01:00"
//	    name: CET
//	    annual:
//	      - from: 1981
//	        to: 2030
//	        rules:
//	          - in: Mar
//	            on: lastSun
//	            at: "1:00u"
//	            save: "1:00"
//	            name: CEST
//	          - in: Oct
//	            on: lastSun
//	            at: "1:00u"
//	            save: "0"
//	            name: CET
package zonefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/culture"
	"github.com/ngrash/go-civil/pattern"
	"github.com/ngrash/go-civil/zone"
)

type document struct {
	Zones []zoneDef `yaml:"zones"`
}

type zoneDef struct {
	ID          string          `yaml:"id"`
	Standard    string          `yaml:"standard"`
	Name        string          `yaml:"name"`
	Transitions []transitionDef `yaml:"transitions"`
	Annual      []annualDef     `yaml:"annual"`
}

type transitionDef struct {
	At      string `yaml:"at"`
	Offset  string `yaml:"offset"`
	Savings string `yaml:"savings"`
	Name    string `yaml:"name"`
}

type annualDef struct {
	From  int       `yaml:"from"`
	To    int       `yaml:"to"`
	Rules []ruleDef `yaml:"rules"`
}

type ruleDef struct {
	In   string `yaml:"in"`
	On   string `yaml:"on"`
	At   string `yaml:"at"`
	Save string `yaml:"save"`
	Name string `yaml:"name"`
}

// loadError is an error that occurred while compiling one zone definition.
// It carries the zone identifier so aggregated errors stay attributable.
type loadError struct {
	id  string
	err error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("zone %q: %v", e.id, e.err)
}

func (e *loadError) Unwrap() error { return e.err }

// instantPattern parses transition instants, e.g. "1981-03-29T01:00:00Z".
var instantPattern = func() *pattern.Pattern[civil.OffsetDateTime] {
	p, err := pattern.ForOffsetDateTime("yyyy-MM-dd'T'HH:mm:ssoo", culture.Invariant, civil.OffsetDateTime{})
	if err != nil {
		panic(err)
	}
	return p
}()

// Load reads a YAML document and compiles every zone it defines. Definitions
// are compiled independently; all failures are collected and returned
// joined, alongside the zones that did compile.
func Load(r io.Reader) ([]*zone.Zone, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read zone file: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode zone file: %w", err)
	}
	if len(doc.Zones) == 0 {
		return nil, errors.New("zone file defines no zones")
	}

	var (
		zones []*zone.Zone
		errs  error
	)
	for _, def := range doc.Zones {
		z, err := compileZone(def)
		if err != nil {
			errs = errors.Join(errs, &loadError{id: def.ID, err: err})
			continue
		}
		zones = append(zones, z)
	}
	return zones, errs
}

// LoadFile is Load applied to the named file.
func LoadFile(name string) ([]*zone.Zone, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func compileZone(def zoneDef) (*zone.Zone, error) {
	if def.ID == "" {
		return nil, errors.New("missing id")
	}
	std, err := parseZoneSTANDARD(def.Standard)
	if err != nil {
		return nil, fmt.Errorf("standard %q: %w", def.Standard, err)
	}

	b := zone.NewBuilder(def.ID, std, def.Name)
	var errs error
	for i, t := range def.Transitions {
		if err := addTransition(b, t); err != nil {
			errs = errors.Join(errs, fmt.Errorf("transition %d: %w", i, err))
		}
	}
	for i, a := range def.Annual {
		if err := addAnnual(b, a); err != nil {
			errs = errors.Join(errs, fmt.Errorf("annual block %d: %w", i, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return b.Build()
}

func addTransition(b *zone.Builder, def transitionDef) error {
	var (
		errs error
		err  error
		at   civil.Instant
		off  civil.Offset
		sav  civil.Offset
	)
	if at, err = parseTransitionAT(def.At); err != nil {
		errs = errors.Join(errs, fmt.Errorf("at %q: %w", def.At, err))
	}
	if off, err = civil.ParseOffset(def.Offset); err != nil {
		errs = errors.Join(errs, fmt.Errorf("offset %q: %w", def.Offset, err))
	}
	if def.Savings != "" {
		if sav, err = civil.ParseOffset(def.Savings); err != nil {
			errs = errors.Join(errs, fmt.Errorf("savings %q: %w", def.Savings, err))
		}
	}
	if errs != nil {
		return errs
	}
	b.Transition(at, off, sav, def.Name)
	return nil
}

func addAnnual(b *zone.Builder, def annualDef) error {
	if len(def.Rules) == 0 {
		return errors.New("no rules")
	}
	var (
		rules []zone.Rule
		errs  error
	)
	for i, rd := range def.Rules {
		r, err := parseRule(rd)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		rules = append(rules, r)
	}
	if errs != nil {
		return errs
	}
	b.Annual(def.From, def.To, rules...)
	return nil
}

func parseRule(def ruleDef) (zone.Rule, error) {
	var (
		r    zone.Rule
		errs error
		err  error
	)
	if r.Month, err = parseRuleIN(def.In); err != nil {
		errs = errors.Join(errs, fmt.Errorf("in %q: %w", def.In, err))
	}
	if r.Day, err = parseRuleON(def.On); err != nil {
		errs = errors.Join(errs, fmt.Errorf("on %q: %w", def.On, err))
	}
	if r.At, r.AtForm, err = parseRuleAT(def.At); err != nil {
		errs = errors.Join(errs, fmt.Errorf("at %q: %w", def.At, err))
	}
	if r.Save, err = parseRuleSAVE(def.Save); err != nil {
		errs = errors.Join(errs, fmt.Errorf("save %q: %w", def.Save, err))
	}
	r.Name = def.Name
	return r, errs
}

// parseZoneSTANDARD parses the standard column of a zone definition.
func parseZoneSTANDARD(s string) (civil.Offset, error) {
	if s == "" {
		return 0, errors.New("missing standard offset")
	}
	return civil.ParseOffset(s)
}

// parseTransitionAT parses the at column of an explicit transition, a full
// timestamp with offset such as "1981-03-29T01:00:00Z".
func parseTransitionAT(s string) (civil.Instant, error) {
	odt, err := instantPattern.Parse(s)
	if err != nil {
		return 0, err
	}
	return odt.Instant(), nil
}

// parseRuleIN parses the in column of a rule, an English month name that
// may be abbreviated to no less than three characters.
func parseRuleIN(s string) (int, error) {
	months := []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	if len(s) < 3 {
		return 0, fmt.Errorf("month too short")
	}
	l := strings.ToLower(s)
	for i, m := range months {
		if strings.HasPrefix(m, l) {
			return i + 1, nil
		}
	}
	return 0, errors.New("invalid month")
}

// parseRuleON parses the on column of a rule. Recognized forms:
//
//	5        the fifth of the month
//	lastSun  the last Sunday in the month
//	Sun>=8   first Sunday on or after the eighth
//	Sun<=25  last Sunday on or before the 25th
func parseRuleON(s string) (zone.Day, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 31 {
			return zone.Day{}, fmt.Errorf("day %d out of range", n)
		}
		return zone.Day{Form: zone.DayNum, Num: n}, nil
	}
	if rest, ok := strings.CutPrefix(s, "last"); ok {
		wd, err := parseWeekday(rest)
		if err != nil {
			return zone.Day{}, err
		}
		return zone.Day{Form: zone.DayLast, Weekday: wd}, nil
	}
	if strings.Contains(s, "=") {
		form := zone.DayBefore
		parts := strings.Split(s, "<=")
		if len(parts) != 2 {
			form = zone.DayAfter
			parts = strings.Split(s, ">=")
		}
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return zone.Day{}, errors.New("expected weekday<=day or weekday>=day")
		}
		wd, err := parseWeekday(parts[0])
		if err != nil {
			return zone.Day{}, fmt.Errorf("left of comparison %q: %w", parts[0], err)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return zone.Day{}, fmt.Errorf("right of comparison %q: %w", parts[1], err)
		}
		return zone.Day{Form: form, Num: n, Weekday: wd}, nil
	}
	return zone.Day{}, errors.New("invalid day reference")
}

// parseRuleAT parses the at column of a rule, a time of day with an
// optional clock suffix: w for wall clock, s for standard time, u for
// universal time. Without a suffix wall clock is assumed.
func parseRuleAT(s string) (civil.TimeOfDay, zone.TimeForm, error) {
	form := zone.WallClock
	switch {
	case strings.HasSuffix(s, "w"):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "s"):
		form, s = zone.StandardTime, s[:len(s)-1]
	case strings.HasSuffix(s, "u"):
		form, s = zone.UniversalTime, s[:len(s)-1]
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, 0, errors.New("too many components")
	}
	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, fmt.Errorf("component %q: %w", p, err)
		}
		hms[i] = n
	}
	tod, err := civil.NewTimeOfDay(hms[0], hms[1], hms[2], 0)
	if err != nil {
		return 0, 0, err
	}
	return tod, form, nil
}

// parseRuleSAVE parses the save column of a rule, the savings added to
// standard time while the rule is in effect. "-" and "0" mean none; a
// leading sign is optional.
func parseRuleSAVE(s string) (civil.Offset, error) {
	if s == "" || s == "-" || s == "0" {
		return 0, nil
	}
	if s[0] != '+' && s[0] != '-' {
		s = "+" + s
	}
	return civil.ParseOffset(s)
}

func parseWeekday(s string) (int, error) {
	days := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	if len(s) < 2 {
		return 0, fmt.Errorf("weekday too short")
	}
	l := strings.ToLower(s)
	for i, d := range days {
		if strings.HasPrefix(d, l) {
			return i, nil
		}
	}
	return 0, errors.New("invalid weekday")
}
