// Package cardengine implements credit-card cost calculations under
// Turkish banking rules: interest, KKDF/BSMV taxes, payment allocation,
// statement lifecycle and minimum-payment simulations.
//
// All functions are pure: no clocks, no I/O, no shared state. Monetary
// amounts are in the base settlement currency and rounded to 2 decimals
// (half away from zero) after each arithmetic combination. Rates named
// monthlyRate are percentage scalars (4.25 means 4.25%); tax rates are
// fractions (0.15 means 15%).
package cardengine

import "math"

// Default statutory tax rates on credit interest.
const (
	DefaultKKDFRate = 0.15
	DefaultBSMVRate = 0.15
)

// TaxBreakdown is the statutory levy on an interest amount. Taxes apply
// to interest only, never to principal.
type TaxBreakdown struct {
	KKDF              float64 `json:"kkdf"`
	BSMV              float64 `json:"bsmv"`
	TotalTax          float64 `json:"total_tax"`
	TotalWithInterest float64 `json:"total_with_interest"`
}

// CalculateTax computes KKDF and BSMV on an interest amount. A
// non-positive interest amount yields an all-zero breakdown.
func CalculateTax(interestAmount, kkdfRate, bsmvRate float64) TaxBreakdown {
	if interestAmount <= 0 {
		return TaxBreakdown{}
	}

	kkdf := round2(interestAmount * kkdfRate)
	bsmv := round2(interestAmount * bsmvRate)
	totalTax := round2(kkdf + bsmv)

	return TaxBreakdown{
		KKDF:              kkdf,
		BSMV:              bsmv,
		TotalTax:          totalTax,
		TotalWithInterest: round2(interestAmount + totalTax),
	}
}

// TotalCostMultiplier returns the factor that converts a pure interest
// amount into its tax-inclusive cost: 1 + kkdf + bsmv.
func TotalCostMultiplier(kkdfRate, bsmvRate float64) float64 {
	return 1 + kkdfRate + bsmvRate
}

// round2 rounds to 2 decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
