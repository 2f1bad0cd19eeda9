package cardengine

import "math"

// DefaultMaxTrapMonths bounds the minimum-payment simulation so that a
// non-amortizing debt still terminates.
const DefaultMaxTrapMonths = 120

// TrapMonth is one simulated month of minimum-only payments. Interest
// is the month's tax-inclusive charge as it posts to the balance; the
// result's TotalInterest and TotalTax carry the pure split.
type TrapMonth struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Remaining float64 `json:"remaining"`
}

// TrapSimulationResult is the projected cost of paying only the minimum
// each month. Months == maxMonths together with a final Remaining > 1
// means the debt does not amortize under minimum payments; that is a
// signal, not an error.
type TrapSimulationResult struct {
	Months           int         `json:"months"`
	TotalPaid        float64     `json:"total_paid"`
	TotalInterest    float64     `json:"total_interest"`
	TotalTax         float64     `json:"total_tax"`
	MonthlyBreakdown []TrapMonth `json:"monthly_breakdown"`
}

// TrapInput parameterizes a minimum-payment trap simulation.
type TrapInput struct {
	CurrentDebt     float64
	MinPaymentRate  float64 // fraction, e.g. 0.20
	ContractualRate float64 // percentage scalar, e.g. 4.25
	KKDFRate        float64
	BSMVRate        float64
	MaxMonths       int // 0 means DefaultMaxTrapMonths
}

// SimulateMinimumPaymentTrap iterates month by month: the minimum
// payment (at least 50 TL, never more than the debt) is applied, then a
// 30-day tax-inclusive interest charge on the post-payment balance
// capitalizes onto it. The loop ends when the balance drops to 1 TL or
// below, or after MaxMonths.
//
// The simulated balance is rounded to 2 decimals each step and the next
// minimum is derived from the rounded figure, matching how the amounts
// would post to a real account rather than carrying full precision.
func SimulateMinimumPaymentTrap(in TrapInput) TrapSimulationResult {
	maxMonths := in.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxTrapMonths
	}

	remaining := in.CurrentDebt
	var totalPaid, totalInterest, totalTax float64
	var breakdown []TrapMonth

	for month := 1; month <= maxMonths && remaining > 1; month++ {
		minPayment := math.Max(remaining*in.MinPaymentRate, MinPaymentFloor)
		payment := math.Min(minPayment, remaining)

		charge := CalculateInterest(InterestInput{
			Principal:   remaining - payment,
			MonthlyRate: in.ContractualRate,
			Days:        30,
			KKDFRate:    in.KKDFRate,
			BSMVRate:    in.BSMVRate,
		})

		remaining = round2(remaining - payment + charge.TotalCost)
		totalPaid += payment
		totalInterest += charge.Interest
		totalTax += charge.KKDF + charge.BSMV

		breakdown = append(breakdown, TrapMonth{
			Month:     month,
			Payment:   round2(payment),
			Interest:  charge.TotalCost,
			Principal: round2(payment),
			Remaining: round2(math.Max(remaining, 0)),
		})
	}

	return TrapSimulationResult{
		Months:           len(breakdown),
		TotalPaid:        round2(totalPaid),
		TotalInterest:    round2(totalInterest),
		TotalTax:         round2(totalTax),
		MonthlyBreakdown: breakdown,
	}
}
