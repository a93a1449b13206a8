package services

import (
	"sort"

	"github.com/epeers/exposure/internal/models"
	log "github.com/sirupsen/logrus"
)

// Resolve computes a single portfolio position's contribution to one
// exposure dimension, scaled by baseWeight (the position's share of the
// whole portfolio). Holdings that are themselves registered securities are
// expanded depth-first with multiplied weights, so fund-of-funds
// indirection is followed to any depth; every other label in the requested
// dimension's map is a terminal exposure item. The returned accumulator is
// fresh on every call — resolution shares no state between positions.
func Resolve(reg *models.Registry, dim models.Dimension, isin string, baseWeight float64) (map[string]float64, error) {
	return resolve(reg, dim, isin, baseWeight, nil)
}

// path carries the ISINs on the current expansion chain. It doubles as the
// cycle guard: a fund reappearing on its own chain would otherwise recurse
// forever.
func resolve(reg *models.Registry, dim models.Dimension, isin string, baseWeight float64, path []string) (map[string]float64, error) {
	for _, seen := range path {
		if seen == isin {
			cycle := append(append([]string{}, path...), isin)
			return nil, &CyclicHoldingError{ISIN: isin, Path: cycle}
		}
	}
	sec := reg.Lookup(isin)
	if sec == nil {
		return nil, &UnknownSecurityError{ISIN: isin}
	}
	path = append(path, isin)

	acc := make(map[string]float64)

	// Expand any holding that is itself a registered security before
	// touching the requested dimension, so nested funds contribute their
	// own composition at the scaled-down weight.
	for _, holding := range sortedKeys(sec.Holding) {
		if !reg.Has(holding) {
			continue
		}
		log.Debugf("Recursing for holding %s, weight %f", holding, sec.Holding[holding])
		nested, err := resolve(reg, dim, holding, baseWeight*sec.Holding[holding], path)
		if err != nil {
			return nil, err
		}
		for label, weight := range nested {
			acc[label] += weight
		}
	}

	own := sec.Exposure(dim)
	for _, label := range sortedKeys(own) {
		// A registered ISIN in the Holding map was already expanded above
		// and must not count again as a terminal holding.
		if dim == models.DimensionHolding && reg.Has(label) {
			continue
		}
		acc[label] += own[label] * baseWeight
	}
	return acc, nil
}

// sortedKeys returns the map's keys in sorted order. All exposure passes
// iterate maps through it so reruns on identical input produce identical
// float accumulation order, and therefore identical output.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
