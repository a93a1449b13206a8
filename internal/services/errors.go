package services

import (
	"fmt"
	"strings"

	"github.com/epeers/exposure/internal/models"
)

// UnknownSecurityError reports a portfolio position whose ISIN is missing
// from the registry. It is the one per-position recoverable error: analysis
// collects these and keeps going so every offending ISIN surfaces in a
// single pass.
type UnknownSecurityError struct {
	ISIN string
}

func (e *UnknownSecurityError) Error() string {
	return fmt.Sprintf("ISIN %s not found in securities", e.ISIN)
}

// UnknownSecuritiesError aggregates every unknown ISIN found while
// analyzing one dimension. A partial breakdown is never returned; the
// caller gets the full list instead.
type UnknownSecuritiesError struct {
	ISINs []string
}

func (e *UnknownSecuritiesError) Error() string {
	return fmt.Sprintf("unknown securities in portfolio: %s", strings.Join(e.ISINs, ", "))
}

// OverAllocationError reports a dimension whose resolved exposure exceeds
// 100% beyond tolerance. That means the source composition weights are
// malformed, so the breakdown is not displayable.
type OverAllocationError struct {
	Dimension models.Dimension
	Total     float64
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("%s total %.3f%% > 100%%", e.Dimension, e.Total)
}

// CyclicHoldingError reports a fund that directly or indirectly holds
// itself. Path lists the expansion chain ending in the revisited ISIN.
type CyclicHoldingError struct {
	ISIN string
	Path []string
}

func (e *CyclicHoldingError) Error() string {
	return fmt.Sprintf("cyclic holdings: %s revisited via %s", e.ISIN, strings.Join(e.Path, " -> "))
}

// UnmappedCountryError reports a country label with no entry in the static
// country tables. Region/market derivation treats it as fatal: the gap is
// in the classification table, not in the input rows.
type UnmappedCountryError struct {
	Country   string
	ISIN      string
	Dimension models.Dimension
}

func (e *UnmappedCountryError) Error() string {
	return fmt.Sprintf("country %q held by %s has no %s mapping", e.Country, e.ISIN, e.Dimension)
}
