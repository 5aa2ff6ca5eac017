package loan

import (
	"errors"
	"math"
	"testing"
)

func TestComputeTerms(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		rate        float64
		years       int
		wantTotal   float64
		wantMonthly float64
		wantErr     error
	}{
		{name: "flat interest", amount: 1000, rate: 10, years: 2, wantTotal: 1200, wantMonthly: 50},
		{name: "zero rate pays principal only", amount: 5000, rate: 0, years: 3, wantTotal: 5000, wantMonthly: 5000.0 / 36},
		{name: "one year", amount: 1200, rate: 5, years: 1, wantTotal: 1260, wantMonthly: 105},
		{name: "zero amount", amount: 0, rate: 10, years: 2, wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: -50, rate: 10, years: 2, wantErr: ErrInvalidAmount},
		{name: "negative rate", amount: 1000, rate: -1, years: 2, wantErr: ErrInvalidAmount},
		{name: "zero term", amount: 1000, rate: 10, years: 0, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTerms(tt.amount, tt.rate, tt.years)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if math.Abs(got.TotalPayable-tt.wantTotal) > 1e-9 {
				t.Fatalf("TotalPayable = %v, want %v", got.TotalPayable, tt.wantTotal)
			}
			if math.Abs(got.MonthlyAmortization-tt.wantMonthly) > 1e-9 {
				t.Fatalf("MonthlyAmortization = %v, want %v", got.MonthlyAmortization, tt.wantMonthly)
			}
		})
	}
}

func TestComputeTerms_TotalNeverBelowPrincipal(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 10, 120} {
		got, err := ComputeTerms(1000, rate, 5)
		if err != nil {
			t.Fatalf("rate %v: %v", rate, err)
		}
		if got.TotalPayable < 1000 {
			t.Fatalf("rate %v: total %.2f below principal", rate, got.TotalPayable)
		}
	}
}

func TestComputeTerms_IsPure(t *testing.T) {
	a, _ := ComputeTerms(1000, 10, 2)
	b, _ := ComputeTerms(1000, 10, 2)
	if a != b {
		t.Fatalf("repeat calls differ: %+v vs %+v", a, b)
	}
}
