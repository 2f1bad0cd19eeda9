package cardengine

import "math"

// Regulatory minimum-payment parameters (BDDK).
const (
	MinPaymentFloor    = 50.0    // absolute floor in TL
	HighLimitThreshold = 50000.0 // limit above which the higher rate applies
	MinPaymentRateLow  = 0.20
	MinPaymentRateHigh = 0.40
)

// DebtBalances holds the outstanding amounts a payment is allocated
// against, one field per waterfall bucket.
type DebtBalances struct {
	OverdueInterestAndTax float64
	OverduePrincipal      float64
	CurrentInterestAndTax float64
	CurrentPrincipal      float64
	PostStatementCharges  float64
	CashAdvanceBalance    float64
}

// PaymentAllocation is the result of distributing a payment across the
// six debt buckets in bank priority order.
type PaymentAllocation struct {
	OverdueInterestAndTax float64 `json:"overdue_interest_and_tax"`
	OverduePrincipal      float64 `json:"overdue_principal"`
	CurrentInterestAndTax float64 `json:"current_interest_and_tax"`
	CurrentPrincipal      float64 `json:"current_principal"`
	PostStatementCharges  float64 `json:"post_statement_charges"`
	CashAdvance           float64 `json:"cash_advance"`
	TotalAllocated        float64 `json:"total_allocated"`
	Remainder             float64 `json:"remainder"`
}

// PaymentPreview shows the consequences of a payment before it is
// committed.
type PaymentPreview struct {
	Allocation        PaymentAllocation `json:"allocation"`
	RemainingDebt     float64           `json:"remaining_debt"`
	MinimumSatisfied  bool              `json:"minimum_satisfied"`
	ProjectedInterest InterestResult    `json:"projected_interest"`
}

// PreviewInput parameterizes a payment preview.
type PreviewInput struct {
	PaymentAmount         float64
	CurrentDebt           float64
	StatementBalance      float64
	MinimumPayment        float64
	InterestAndTaxAccrued float64
	CashAdvanceBalance    float64
	PostStatementCharges  float64
	ContractualRate       float64
	KKDFRate              float64
	BSMVRate              float64
}

// CalculateMinimumPayment applies the Turkish minimum-payment rule:
// 20% of the statement balance, or 40% when the card limit exceeds
// 50000 TL. A manual rate overrides the limit-based one when positive.
// The minimum is at least 50 TL but never more than the balance itself.
func CalculateMinimumPayment(limit, statementBalance float64, manualRate float64) float64 {
	rate := manualRate
	if rate <= 0 {
		rate = MinPaymentRateLow
		if limit > HighLimitThreshold {
			rate = MinPaymentRateHigh
		}
	}
	minimum := round2(statementBalance * rate)
	return math.Min(math.Max(minimum, MinPaymentFloor), statementBalance)
}

// AllocatePayment distributes a payment across the six debt buckets in
// strict priority order:
//
//  1. overdue interest and tax
//  2. overdue principal
//  3. current-period interest and tax
//  4. current-period principal
//  5. post-statement charges
//  6. cash-advance balance
//
// A later bucket receives funds only after all earlier buckets are
// fully satisfied. Whatever survives bucket 6 is reported as Remainder
// (overpayment), never dropped.
func AllocatePayment(paymentAmount float64, balances DebtBalances) PaymentAllocation {
	remaining := paymentAmount

	overdueInterest := math.Min(remaining, balances.OverdueInterestAndTax)
	remaining -= overdueInterest

	overduePrincipal := math.Min(remaining, balances.OverduePrincipal)
	remaining -= overduePrincipal

	currentInterest := math.Min(remaining, balances.CurrentInterestAndTax)
	remaining -= currentInterest

	currentPrincipal := math.Min(remaining, balances.CurrentPrincipal)
	remaining -= currentPrincipal

	postStatement := math.Min(remaining, balances.PostStatementCharges)
	remaining -= postStatement

	cashAdvance := math.Min(remaining, balances.CashAdvanceBalance)
	remaining -= cashAdvance

	return PaymentAllocation{
		OverdueInterestAndTax: round2(overdueInterest),
		OverduePrincipal:      round2(overduePrincipal),
		CurrentInterestAndTax: round2(currentInterest),
		CurrentPrincipal:      round2(currentPrincipal),
		PostStatementCharges:  round2(postStatement),
		CashAdvance:           round2(cashAdvance),
		TotalAllocated:        round2(paymentAmount - remaining),
		Remainder:             round2(remaining),
	}
}

// PreviewPayment builds a read-only projection of a payment: how it
// would be allocated (assuming no overdue amounts, a same-period
// preview), the debt left afterwards, whether the minimum is covered,
// and the 30-day contractual interest on the remaining debt. Nothing is
// persisted; the caller decides whether to commit.
func PreviewPayment(in PreviewInput) PaymentPreview {
	allocation := AllocatePayment(in.PaymentAmount, DebtBalances{
		CurrentInterestAndTax: in.InterestAndTaxAccrued,
		CurrentPrincipal:      in.StatementBalance - in.InterestAndTaxAccrued,
		PostStatementCharges:  in.PostStatementCharges,
		CashAdvanceBalance:    in.CashAdvanceBalance,
	})

	remainingDebt := round2(math.Max(in.CurrentDebt-allocation.TotalAllocated, 0))

	return PaymentPreview{
		Allocation:        allocation,
		RemainingDebt:     remainingDebt,
		MinimumSatisfied:  in.PaymentAmount >= in.MinimumPayment,
		ProjectedInterest: ContractualInterest(remainingDebt, in.ContractualRate, 30, in.KKDFRate, in.BSMVRate),
	}
}
