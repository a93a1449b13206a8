package models

import (
	"sort"
)

// Portfolio maps each held ISIN to its weight as a fraction of the whole
// portfolio. TotalAmount carries the portfolio's absolute value when the
// input was given in currency amounts; it stays nil for percentage input
// and is what lets presentation convert exposure percentages back into
// currency figures.
type Portfolio struct {
	Weights     map[string]float64 `json:"weights"`
	TotalAmount *float64           `json:"total_amount,omitempty"`
}

// NewPortfolio returns an empty percentage-mode portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{Weights: make(map[string]float64)}
}

// ISINs returns the held ISINs in sorted order so analysis iterates
// positions deterministically.
func (p *Portfolio) ISINs() []string {
	isins := make([]string, 0, len(p.Weights))
	for isin := range p.Weights {
		isins = append(isins, isin)
	}
	sort.Strings(isins)
	return isins
}

// Len returns the number of positions.
func (p *Portfolio) Len() int {
	return len(p.Weights)
}
