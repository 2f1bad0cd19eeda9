package cardengine

import (
	"math"
	"testing"
)

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		name     string
		interest float64
		kkdf     float64
		bsmv     float64
		want     TaxBreakdown
	}{
		{
			name:     "standard rates",
			interest: 425.00,
			kkdf:     0.15,
			bsmv:     0.15,
			want:     TaxBreakdown{KKDF: 63.75, BSMV: 63.75, TotalTax: 127.50, TotalWithInterest: 552.50},
		},
		{
			name:     "zero interest",
			interest: 0,
			kkdf:     0.15,
			bsmv:     0.15,
			want:     TaxBreakdown{},
		},
		{
			name:     "negative interest",
			interest: -100,
			kkdf:     0.15,
			bsmv:     0.15,
			want:     TaxBreakdown{},
		},
		{
			name:     "asymmetric rates",
			interest: 100,
			kkdf:     0.10,
			bsmv:     0.05,
			want:     TaxBreakdown{KKDF: 10, BSMV: 5, TotalTax: 15, TotalWithInterest: 115},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTax(tt.interest, tt.kkdf, tt.bsmv)
			if got != tt.want {
				t.Errorf("CalculateTax(%.2f) = %+v, want %+v", tt.interest, got, tt.want)
			}
		})
	}
}

func TestCalculateTax_Proportionality(t *testing.T) {
	for _, amount := range []float64{1, 50, 425, 1000, 99999.99} {
		got := CalculateTax(amount, 0.15, 0.15)
		if math.Abs(got.KKDF-amount*0.15) > 0.005 {
			t.Errorf("KKDF for %.2f = %.2f, want ~%.2f", amount, got.KKDF, amount*0.15)
		}
		if math.Abs(got.BSMV-amount*0.15) > 0.005 {
			t.Errorf("BSMV for %.2f = %.2f, want ~%.2f", amount, got.BSMV, amount*0.15)
		}
		if got.TotalWithInterest < amount {
			t.Errorf("total with interest %.2f less than interest %.2f", got.TotalWithInterest, amount)
		}
	}
}

func TestTotalCostMultiplier(t *testing.T) {
	if got := TotalCostMultiplier(0.15, 0.15); got != 1.30 {
		t.Errorf("TotalCostMultiplier(0.15, 0.15) = %v, want 1.30", got)
	}
	if got := TotalCostMultiplier(0, 0); got != 1 {
		t.Errorf("TotalCostMultiplier(0, 0) = %v, want 1", got)
	}
}
