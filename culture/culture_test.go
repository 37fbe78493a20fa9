package culture

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, id := range []string{"invariant", "en-US", "de-DE"} {
		c, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q) = %v", id, err)
		}
		if c.ID != id {
			t.Errorf("Lookup(%q).ID = %q", id, c.ID)
		}
		if c.MonthNames[0] == "" || c.DayNames[0] == "" {
			t.Errorf("culture %q has empty symbol tables", id)
		}
		if c.ShortDatePattern == "" || c.LongTimePattern == "" {
			t.Errorf("culture %q has empty standard format templates", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("xx-XX")
	var unknown *UnknownCultureError
	if !errors.As(err, &unknown) {
		t.Fatalf("Lookup() error = %v, want *UnknownCultureError", err)
	}
	if unknown.ID != "xx-XX" {
		t.Errorf("unknown.ID = %q, want %q", unknown.ID, "xx-XX")
	}
}

func TestRegistryHandsOutCopies(t *testing.T) {
	a, err := Lookup("invariant")
	if err != nil {
		t.Fatal(err)
	}
	a.MonthNames[0] = "Frost"
	b, err := Lookup("invariant")
	if err != nil {
		t.Fatal(err)
	}
	if b.MonthNames[0] != "January" {
		t.Error("mutating a looked-up culture affected the registry")
	}
}
