package staticdata

import (
	"errors"
	"testing"
)

func TestLoad_TablesComplete(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(tables.Sectors) == 0 {
		t.Fatal("expected a non-empty sector set")
	}
	if len(tables.CountryToRegion) != len(tables.CountryToMarket) {
		t.Errorf("region table has %d countries, market table has %d",
			len(tables.CountryToRegion), len(tables.CountryToMarket))
	}

	// Every country must classify into both tables.
	for country := range tables.CountryToRegion {
		if tables.CountryToMarket[country] == "" {
			t.Errorf("country %q has a region but no market", country)
		}
	}
	for country, market := range tables.CountryToMarket {
		if market != "Developed" && market != "Emerging" {
			t.Errorf("country %q has market %q, want Developed or Emerging", country, market)
		}
	}
}

func TestLoad_KnownClassifications(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cases := []struct {
		country string
		region  string
		market  string
	}{
		{"United States", "North America", "Developed"},
		{"France", "Europe", "Developed"},
		{"Japan", "Asia", "Developed"},
		{"China", "Asia", "Emerging"},
		{"Brazil", "Latin America", "Emerging"},
		{"Australia", "Pacific", "Developed"},
		{"South Africa", "Africa", "Emerging"},
		{"Israel", "Middle East", "Developed"},
	}
	for _, c := range cases {
		if got := tables.CountryToRegion[c.country]; got != c.region {
			t.Errorf("%s region: got %q, want %q", c.country, got, c.region)
		}
		if got := tables.CountryToMarket[c.country]; got != c.market {
			t.Errorf("%s market: got %q, want %q", c.country, got, c.market)
		}
	}
}

func TestCanonicalSector_Canonical(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := tables.CanonicalSector("Technology")
	if err != nil {
		t.Fatalf("CanonicalSector failed: %v", err)
	}
	if got != "Technology" {
		t.Errorf("expected Technology unchanged, got %q", got)
	}
}

func TestCanonicalSector_Synonym(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cases := map[string]string{
		"Information Technology": "Technology",
		"Financial Services":     "Financials",
		"Healthcare":             "Health Care",
		"Basic Materials":        "Materials",
		"Consumer Cyclical":      "Consumer Discretionary",
	}
	for synonym, want := range cases {
		got, err := tables.CanonicalSector(synonym)
		if err != nil {
			t.Errorf("CanonicalSector(%q) failed: %v", synonym, err)
			continue
		}
		if got != want {
			t.Errorf("CanonicalSector(%q): got %q, want %q", synonym, got, want)
		}
	}
}

func TestCanonicalSector_EmptyPassesThrough(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := tables.CanonicalSector("")
	if err != nil {
		t.Fatalf("expected empty label to pass, got error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestCanonicalSector_Unknown(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = tables.CanonicalSector("Quantum Widgets")
	if err == nil {
		t.Fatal("expected an error for an unknown sector")
	}
	var unmapped *UnmappedSectorError
	if !errors.As(err, &unmapped) {
		t.Fatalf("expected UnmappedSectorError, got %T", err)
	}
	if unmapped.Sector != "Quantum Widgets" {
		t.Errorf("expected the offending label in the error, got %q", unmapped.Sector)
	}
}
