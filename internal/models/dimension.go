package models

import (
	"fmt"
	"strings"
)

// Dimension is an axis along which portfolio exposure is reported.
type Dimension string

const (
	DimensionHolding Dimension = "Holding"
	DimensionSector  Dimension = "Sector"
	DimensionCountry Dimension = "Country"
	DimensionRegion  Dimension = "Region"
	DimensionMarket  Dimension = "Market"
)

// Dimensions returns every exposure dimension in report order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionHolding,
		DimensionSector,
		DimensionCountry,
		DimensionRegion,
		DimensionMarket,
	}
}

// ParseDimension resolves a case-insensitive dimension name.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions() {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q", s)
}
