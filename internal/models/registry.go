package models

import (
	"sort"
)

// Registry holds every known security keyed by ISIN. A loader builds it
// once, the region/market derivation pass is the only mutation after that,
// and the analysis phase treats it as read-only.
type Registry struct {
	securities map[string]*Security
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{securities: make(map[string]*Security)}
}

// Lookup returns the security for isin, or nil when unknown.
func (r *Registry) Lookup(isin string) *Security {
	return r.securities[isin]
}

// Has reports whether isin denotes a registered security. A Holding-map
// label that passes Has is a graph edge the resolver expands; any other
// label is a terminal position.
func (r *Registry) Has(isin string) bool {
	_, ok := r.securities[isin]
	return ok
}

// Len returns the number of registered securities.
func (r *Registry) Len() int {
	return len(r.securities)
}

// ISINs returns all registered ISINs in sorted order, so passes over the
// whole registry iterate deterministically.
func (r *Registry) ISINs() []string {
	isins := make([]string, 0, len(r.securities))
	for isin := range r.securities {
		isins = append(isins, isin)
	}
	sort.Strings(isins)
	return isins
}

// Merge folds a partial record into the registry and returns the merged
// security. Source rows may split one security's composition across several
// consecutive records, so merging is additive: a non-empty name overwrites,
// a positive cost ratio overwrites, and exposure entries are inserted label
// by label into the existing maps. Zero-weight entries are never recorded.
func (r *Registry) Merge(rec *Security) *Security {
	sec, ok := r.securities[rec.ISIN]
	if !ok {
		sec = NewSecurity(rec.ISIN)
		r.securities[rec.ISIN] = sec
	}
	if rec.Name != "" {
		sec.Name = rec.Name
	}
	if rec.CostRatio > 0 {
		sec.CostRatio = rec.CostRatio
	}
	for _, dim := range Dimensions() {
		target := sec.Exposure(dim)
		for label, weight := range rec.Exposure(dim) {
			if weight > 0 {
				target[label] = weight
			}
		}
	}
	return sec
}
