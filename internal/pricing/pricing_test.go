package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLine_DistributorScenario(t *testing.T) {
	// 1.20m x 1.50m at the distributor tier, no add-ons.
	res, err := ComputeLine(LineInput{Width: 1.20, Height: 1.50, UnitPrice: 45.00})
	require.NoError(t, err)
	assert.InDelta(t, 1.80, res.SquareMeters, 1e-9)
	assert.InDelta(t, 81.00, res.Subtotal, 1e-9)
}

func TestComputeLine_ClientScenarioWithAddons(t *testing.T) {
	res, err := ComputeLine(LineInput{
		Width: 1.20, Height: 1.50, UnitPrice: 60.00,
		FasciaPrice: 150, InstallationPrice: 200,
	})
	require.NoError(t, err)
	assert.InDelta(t, 458.00, res.Subtotal, 1e-9)
}

func TestComputeLine_ExactWithoutAddons(t *testing.T) {
	cases := []struct {
		w, h, p float64
	}{
		{0.5, 0.5, 100},
		{2.37, 1.19, 523.45},
		{10, 3.333, 1},
		{0.01, 0.01, 9999.99},
	}
	for _, c := range cases {
		res, err := ComputeLine(LineInput{Width: c.w, Height: c.h, UnitPrice: c.p})
		require.NoError(t, err)
		want := c.w * c.h * c.p
		if math.Abs(res.Subtotal-want)/want > 1e-9 {
			t.Fatalf("subtotal %v want %v for %+v", res.Subtotal, want, c)
		}
	}
}

func TestComputeLine_Validation(t *testing.T) {
	tests := []struct {
		name      string
		in        LineInput
		wantKind  string
		wantField string
	}{
		{"zero width", LineInput{Width: 0, Height: 1, UnitPrice: 10}, KindInvalidMeasurement, "width"},
		{"negative height", LineInput{Width: 1, Height: -2, UnitPrice: 10}, KindInvalidMeasurement, "height"},
		{"zero price", LineInput{Width: 1, Height: 1, UnitPrice: 0}, KindInvalidPrice, "unit_price"},
		{"negative fascia", LineInput{Width: 1, Height: 1, UnitPrice: 10, FasciaPrice: -1}, KindInvalidPrice, "fascia_price"},
		{"negative installation", LineInput{Width: 1, Height: 1, UnitPrice: 10, InstallationPrice: -0.01}, KindInvalidPrice, "installation_price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeLine(tt.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Kind != tt.wantKind || ve.Field != tt.wantField {
				t.Fatalf("got kind=%s field=%s, want kind=%s field=%s", ve.Kind, ve.Field, tt.wantKind, tt.wantField)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	assert.InDelta(t, 539.00, Total([]float64{81.00, 458.00}), 1e-9)
	assert.Zero(t, Total(nil))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // 1.005 is stored below 1.005 in binary
		{1.799999999, 1.80},
		{81.004, 81.0},
		{81.005000001, 81.01},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
