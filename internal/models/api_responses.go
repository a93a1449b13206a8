package models

// ExposureItem is one (label, percentage) pair in a dimension breakdown.
type ExposureItem struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// ExposureResult is the ranked breakdown for one dimension: descending by
// percentage, with an optional trailing ("Unknown", residual) entry. The
// percentages sum to 100 within tolerance.
type ExposureResult struct {
	Dimension Dimension      `json:"dimension"`
	Items     []ExposureItem `json:"items"`
}

// AnalysisReport bundles the complete analysis output for one portfolio:
// the five dimension breakdowns in report order, the blended cost ratio as
// a fraction, and the absolute portfolio value when the input carried one.
type AnalysisReport struct {
	PortfolioName string           `json:"portfolio_name"`
	Results       []ExposureResult `json:"results"`
	TER           float64          `json:"ter"`
	TotalAmount   *float64         `json:"total_amount,omitempty"`
	Warnings      []Warning        `json:"warnings,omitempty"`
}

// DimensionsResponse lists the exposure dimensions the analyzer reports.
type DimensionsResponse struct {
	Dimensions []Dimension `json:"dimensions"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
