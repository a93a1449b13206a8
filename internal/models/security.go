package models

// Security is one entry in the security reference data, keyed by ISIN.
// Each exposure map relates an item label (another ISIN for Holding, a
// sector/country/region/market name otherwise) to a weight fraction in
// [0, 1]. A map describes the security's own composition along that
// dimension and need not sum to 1; funds may leave residual weight
// unclassified.
type Security struct {
	ISIN      string  `json:"isin"`
	Name      string  `json:"name"`
	CostRatio float64 `json:"cost_ratio"` // annual expense fraction, e.g. 0.0022 for 0.22%

	Holding map[string]float64 `json:"holding,omitempty"`
	Sector  map[string]float64 `json:"sector,omitempty"`
	Country map[string]float64 `json:"country,omitempty"`
	Region  map[string]float64 `json:"region,omitempty"`
	Market  map[string]float64 `json:"market,omitempty"`
}

// NewSecurity returns a Security with every exposure map initialized.
func NewSecurity(isin string) *Security {
	return &Security{
		ISIN:    isin,
		Holding: make(map[string]float64),
		Sector:  make(map[string]float64),
		Country: make(map[string]float64),
		Region:  make(map[string]float64),
		Market:  make(map[string]float64),
	}
}

// Exposure returns the security's composition map for the given dimension.
// The map is shared, not copied; registry building and the derivation pass
// write through it.
func (s *Security) Exposure(dim Dimension) map[string]float64 {
	switch dim {
	case DimensionHolding:
		return s.Holding
	case DimensionSector:
		return s.Sector
	case DimensionCountry:
		return s.Country
	case DimensionRegion:
		return s.Region
	case DimensionMarket:
		return s.Market
	}
	return nil
}
