// Package pricing provides the pure line-item computation used when building
// a quote: square meters from measurements, subtotal from the unit price and
// flat add-ons. No storage access, no side effects.
package pricing

import (
	"fmt"
	"math"
)

// Validation kinds, so callers can tell a bad measurement from a bad price.
const (
	KindInvalidMeasurement = "invalid_measurement"
	KindInvalidPrice       = "invalid_price"
)

// ValidationError reports an input that violates a pricing precondition.
// No computation happens when one is returned.
type ValidationError struct {
	Kind  string
	Field string
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%v", e.Kind, e.Field, e.Value)
}

// LineInput carries everything needed to price one blind.
// Width and height are meters; UnitPrice is currency per square meter.
type LineInput struct {
	Width             float64
	Height            float64
	UnitPrice         float64
	FasciaPrice       float64
	InstallationPrice float64
}

// LineResult holds the derived values at full precision.
// Rounding happens only at presentation time (Round2).
type LineResult struct {
	SquareMeters float64
	Subtotal     float64
}

// ComputeLine validates the input and returns area and subtotal:
// subtotal = width*height*unit_price + fascia_price + installation_price.
func ComputeLine(in LineInput) (LineResult, error) {
	if in.Width <= 0 {
		return LineResult{}, &ValidationError{Kind: KindInvalidMeasurement, Field: "width", Value: in.Width}
	}
	if in.Height <= 0 {
		return LineResult{}, &ValidationError{Kind: KindInvalidMeasurement, Field: "height", Value: in.Height}
	}
	if in.UnitPrice <= 0 {
		return LineResult{}, &ValidationError{Kind: KindInvalidPrice, Field: "unit_price", Value: in.UnitPrice}
	}
	if in.FasciaPrice < 0 {
		return LineResult{}, &ValidationError{Kind: KindInvalidPrice, Field: "fascia_price", Value: in.FasciaPrice}
	}
	if in.InstallationPrice < 0 {
		return LineResult{}, &ValidationError{Kind: KindInvalidPrice, Field: "installation_price", Value: in.InstallationPrice}
	}
	sm := in.Width * in.Height
	return LineResult{
		SquareMeters: sm,
		Subtotal:     sm*in.UnitPrice + in.FasciaPrice + in.InstallationPrice,
	}, nil
}

// Total sums line subtotals into a quote total.
func Total(subtotals []float64) float64 {
	var sum float64
	for _, s := range subtotals {
		sum += s
	}
	return sum
}

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
