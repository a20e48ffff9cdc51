package output

import "github.com/shopspring/decimal"

// estimateDecimals fixes the reported precision: six places resolves
// differences at the 1e-5 level on the discount-factor scale.
const estimateDecimals = 6

// FormatEstimate formats a statistical estimate with fixed precision.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatEstimate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(estimateDecimals)
}

// FormatParameter formats a model parameter for display.
func FormatParameter(v float64) string {
	return decimal.NewFromFloat(v).String()
}
