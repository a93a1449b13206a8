package services

import (
	"github.com/epeers/exposure/internal/models"
	"github.com/epeers/exposure/internal/staticdata"
	log "github.com/sirupsen/logrus"
)

// DeriveExposures fills in the Region and Market composition of every
// security that specifies countries but not the derived dimension, folding
// each country's weight into its mapped label. Several countries landing on
// the same label sum. The pass runs exactly once, after the registry is
// fully populated and before any analysis; securities that already carry
// explicit region or market data are left alone.
func DeriveExposures(reg *models.Registry, tables *staticdata.Tables) error {
	mappings := []struct {
		dim   models.Dimension
		table map[string]string
	}{
		{models.DimensionRegion, tables.CountryToRegion},
		{models.DimensionMarket, tables.CountryToMarket},
	}
	for _, isin := range reg.ISINs() {
		sec := reg.Lookup(isin)
		for _, m := range mappings {
			derived := sec.Exposure(m.dim)
			if len(derived) > 0 || len(sec.Country) == 0 {
				continue
			}
			for _, country := range sortedKeys(sec.Country) {
				label, ok := m.table[country]
				if !ok {
					return &UnmappedCountryError{Country: country, ISIN: isin, Dimension: m.dim}
				}
				derived[label] += sec.Country[country]
			}
			log.Debugf("Derived %s for %s [%s]: %v", m.dim, isin, sec.Name, derived)
		}
	}
	return nil
}
