package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = exposure resolution, W2xxx = portfolio input.
type WarningCode string

const (
	WarnNoExposureData    WarningCode = "W1001" // position contributes nothing to a dimension (no data, folded into Unknown)
	WarnResidualExposure  WarningCode = "W1002" // dimension total fell short of 100%, residual shown as "Unknown"
	WarnDuplicatePosition WarningCode = "W2001" // duplicate portfolio row ignored (first occurrence wins)
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
