package cardengine

// InterestResult is the cost of carrying a balance for a number of days:
// pure interest plus the statutory taxes levied on it.
type InterestResult struct {
	Interest  float64 `json:"interest"`
	KKDF      float64 `json:"kkdf"`
	BSMV      float64 `json:"bsmv"`
	TotalCost float64 `json:"total_cost"`
}

// InterestInput parameterizes a single interest calculation.
type InterestInput struct {
	Principal   float64
	MonthlyRate float64 // percentage scalar, e.g. 4.25
	Days        int
	KKDFRate    float64
	BSMVRate    float64
}

// PaymentStatus classifies payment behavior against a statement.
type PaymentStatus string

const (
	PaymentFull         PaymentStatus = "FULL"
	PaymentMinimum      PaymentStatus = "MINIMUM"
	PaymentBelowMinimum PaymentStatus = "BELOW_MINIMUM"
	PaymentNone         PaymentStatus = "NO_PAYMENT"
)

// CalculateInterest computes simple daily-prorated interest with taxes.
// Formula: principal * monthlyRate * days / 3000, where 3000 is the
// percentage divisor (100) times the 30-day reference month. Actual
// days-in-month never enter the formula. Non-positive principal, rate or
// days yield an all-zero result.
func CalculateInterest(in InterestInput) InterestResult {
	if in.Principal <= 0 || in.MonthlyRate <= 0 || in.Days <= 0 {
		return InterestResult{}
	}

	interest := in.Principal * in.MonthlyRate * float64(in.Days) / 3000
	kkdf := interest * in.KKDFRate
	bsmv := interest * in.BSMVRate

	return InterestResult{
		Interest:  round2(interest),
		KKDF:      round2(kkdf),
		BSMV:      round2(bsmv),
		TotalCost: round2(interest + kkdf + bsmv),
	}
}

// ContractualInterest is charged on the unpaid part of the statement
// balance when the statement is not paid in full.
func ContractualInterest(remainingBalance, contractualRate float64, days int, kkdfRate, bsmvRate float64) InterestResult {
	return CalculateInterest(InterestInput{
		Principal:   remainingBalance,
		MonthlyRate: contractualRate,
		Days:        days,
		KKDFRate:    kkdfRate,
		BSMVRate:    bsmvRate,
	})
}

// DefaultInterest is the penalty interest charged on the unpaid portion
// of the minimum payment.
func DefaultInterest(unpaidMinimum, defaultRate float64, days int, kkdfRate, bsmvRate float64) InterestResult {
	return CalculateInterest(InterestInput{
		Principal:   unpaidMinimum,
		MonthlyRate: defaultRate,
		Days:        days,
		KKDFRate:    kkdfRate,
		BSMVRate:    bsmvRate,
	})
}

// CashAdvanceInterest accrues from the withdrawal date, not from
// statement close; the caller supplies the elapsed days accordingly.
func CashAdvanceInterest(cashAdvanceAmount, cashAdvanceRate float64, days int, kkdfRate, bsmvRate float64) InterestResult {
	return CalculateInterest(InterestInput{
		Principal:   cashAdvanceAmount,
		MonthlyRate: cashAdvanceRate,
		Days:        days,
		KKDFRate:    kkdfRate,
		BSMVRate:    bsmvRate,
	})
}

// PeriodAnalysisInput describes one billing period's payment behavior.
type PeriodAnalysisInput struct {
	StatementBalance float64
	MinimumPayment   float64
	PaymentMade      float64
	ContractualRate  float64
	DefaultRate      float64
	Days             int
	KKDFRate         float64
	BSMVRate         float64
}

// PeriodAnalysis is the interest consequence of a period's payment
// behavior, split into contractual and default components.
type PeriodAnalysis struct {
	ContractualInterest InterestResult `json:"contractual_interest"`
	DefaultInterest     InterestResult `json:"default_interest"`
	TotalInterest       InterestResult `json:"total_interest"`
	PaymentStatus       PaymentStatus  `json:"payment_status"`
}

// AnalyzeInterestForPeriod classifies the payment made against the
// statement and computes the interest due:
//
//   - full payment: no interest
//   - at least the minimum: contractual interest on the unpaid balance
//   - below the minimum (or nothing): contractual interest on the unpaid
//     balance plus default interest on the unpaid minimum
func AnalyzeInterestForPeriod(in PeriodAnalysisInput) PeriodAnalysis {
	if in.PaymentMade >= in.StatementBalance {
		return PeriodAnalysis{PaymentStatus: PaymentFull}
	}

	remaining := in.StatementBalance - in.PaymentMade

	if in.PaymentMade >= in.MinimumPayment {
		contractual := ContractualInterest(remaining, in.ContractualRate, in.Days, in.KKDFRate, in.BSMVRate)
		return PeriodAnalysis{
			ContractualInterest: contractual,
			TotalInterest:       contractual,
			PaymentStatus:       PaymentMinimum,
		}
	}

	unpaidMinimum := in.MinimumPayment - in.PaymentMade
	contractual := ContractualInterest(remaining, in.ContractualRate, in.Days, in.KKDFRate, in.BSMVRate)
	penalty := DefaultInterest(unpaidMinimum, in.DefaultRate, in.Days, in.KKDFRate, in.BSMVRate)

	status := PaymentBelowMinimum
	if in.PaymentMade <= 0 {
		status = PaymentNone
	}

	return PeriodAnalysis{
		ContractualInterest: contractual,
		DefaultInterest:     penalty,
		TotalInterest: InterestResult{
			Interest:  round2(contractual.Interest + penalty.Interest),
			KKDF:      round2(contractual.KKDF + penalty.KKDF),
			BSMV:      round2(contractual.BSMV + penalty.BSMV),
			TotalCost: round2(contractual.TotalCost + penalty.TotalCost),
		},
		PaymentStatus: status,
	}
}
