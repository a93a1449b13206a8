package staticdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sectors.yaml
var sectorsYAML []byte

//go:embed countries.yaml
var countriesYAML []byte

// UnmappedSectorError reports a sector label that is neither canonical nor a
// known synonym. Registry loading treats it as fatal: an unrecognized label
// means the synonym table needs an entry, not that the row is bad.
type UnmappedSectorError struct {
	Sector string
}

func (e *UnmappedSectorError) Error() string {
	return fmt.Sprintf("unknown sector %q", e.Sector)
}

// Tables holds the static classification tables: the canonical sector set
// with its vendor-name synonyms, and the country to region/market mappings.
// Load parses them once from the embedded YAML; the value is immutable
// afterwards and handed explicitly to whoever needs it.
type Tables struct {
	Sectors         map[string]struct{}
	SectorSynonyms  map[string]string
	CountryToRegion map[string]string
	CountryToMarket map[string]string
}

type sectorsDoc struct {
	Sectors  []string          `yaml:"sectors"`
	Synonyms map[string]string `yaml:"synonyms"`
}

type countriesDoc struct {
	Countries map[string]struct {
		Region string `yaml:"region"`
		Market string `yaml:"market"`
	} `yaml:"countries"`
}

// Load parses the embedded classification tables.
func Load() (*Tables, error) {
	var sd sectorsDoc
	if err := yaml.Unmarshal(sectorsYAML, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse sector table: %w", err)
	}
	var cd countriesDoc
	if err := yaml.Unmarshal(countriesYAML, &cd); err != nil {
		return nil, fmt.Errorf("failed to parse country table: %w", err)
	}

	t := &Tables{
		Sectors:         make(map[string]struct{}, len(sd.Sectors)),
		SectorSynonyms:  sd.Synonyms,
		CountryToRegion: make(map[string]string, len(cd.Countries)),
		CountryToMarket: make(map[string]string, len(cd.Countries)),
	}
	for _, s := range sd.Sectors {
		t.Sectors[s] = struct{}{}
	}
	for synonym, canonical := range sd.Synonyms {
		if _, ok := t.Sectors[canonical]; !ok {
			return nil, fmt.Errorf("sector synonym %q maps to unknown sector %q", synonym, canonical)
		}
	}
	for country, c := range cd.Countries {
		if c.Region == "" || c.Market == "" {
			return nil, fmt.Errorf("country %q is missing a region or market", country)
		}
		t.CountryToRegion[country] = c.Region
		t.CountryToMarket[country] = c.Market
	}
	return t, nil
}

// CanonicalSector resolves a sector label to its canonical name, mapping
// synonyms onto the canonical set. Empty labels pass through untouched so
// sparse rows don't trip validation.
func (t *Tables) CanonicalSector(label string) (string, error) {
	if label == "" {
		return "", nil
	}
	if _, ok := t.Sectors[label]; ok {
		return label, nil
	}
	if canonical, ok := t.SectorSynonyms[label]; ok {
		return canonical, nil
	}
	return "", &UnmappedSectorError{Sector: label}
}
