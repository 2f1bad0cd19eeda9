package cardengine

import (
	"math"
	"time"
)

// StatementStatusValue is the lifecycle state of a statement. A new
// statement is OPEN; once the due date passes it becomes CLOSED (at
// least the minimum was paid) or OVERDUE (less than the minimum). Full
// payment moves it to PAID at any point. PAID, CLOSED and OVERDUE are
// terminal.
type StatementStatusValue string

const (
	StatementOpen    StatementStatusValue = "OPEN"
	StatementPaid    StatementStatusValue = "PAID"
	StatementClosed  StatementStatusValue = "CLOSED"
	StatementOverdue StatementStatusValue = "OVERDUE"
)

// StatementRecord is one billing cycle's closing snapshot, ready to be
// persisted by the caller.
type StatementRecord struct {
	StatementDate    time.Time            `json:"statement_date"`
	DueDate          time.Time            `json:"due_date"`
	PeriodStart      time.Time            `json:"period_start"`
	PeriodEnd        time.Time            `json:"period_end"`
	PreviousBalance  float64              `json:"previous_balance"`
	NewCharges       float64              `json:"new_charges"`
	InterestCharged  float64              `json:"interest_charged"`
	TaxCharged       float64              `json:"tax_charged"`
	PaymentsReceived float64              `json:"payments_received"`
	StatementBalance float64              `json:"statement_balance"`
	MinimumPayment   float64              `json:"minimum_payment"`
	Status           StatementStatusValue `json:"status"`
}

// StatementInput carries everything needed to assemble a statement.
type StatementInput struct {
	CutOffDay      int
	PaymentDueDay  int
	TotalLimit     float64
	MinPaymentRate float64 // 0 means derive from limit

	PreviousBalance         float64
	PeriodTransactionsTotal float64
	InterestCharged         float64
	TaxCharged              float64
	PaymentsInPeriod        float64

	StatementDate time.Time // zero value means derive from cut-off day and Now
	Now           time.Time
}

// AdjustedDate clamps day to the last valid day of the given month,
// handling 28/29/30/31-day months and leap years. month is 1-indexed.
func AdjustedDate(day, month, year int) time.Time {
	maxDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > maxDay {
		day = maxDay
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// NextStatementDate returns this month's (adjusted) cut-off date when
// fromDate precedes it, otherwise next month's, rolling the year over
// December.
func NextStatementDate(cutOffDay int, fromDate time.Time) time.Time {
	year, month := fromDate.Year(), int(fromDate.Month())

	thisMonthCutoff := AdjustedDate(cutOffDay, month, year)
	if fromDate.Before(thisMonthCutoff) {
		return thisMonthCutoff
	}

	if month == 12 {
		return AdjustedDate(cutOffDay, 1, year+1)
	}
	return AdjustedDate(cutOffDay, month+1, year)
}

// DueDate places the payment due date in the calendar month after the
// statement month; a due date is never in the statement's own month.
func DueDate(paymentDueDay int, statementDate time.Time) time.Time {
	year, month := statementDate.Year(), int(statementDate.Month())
	if month == 12 {
		return AdjustedDate(paymentDueDay, 1, year+1)
	}
	return AdjustedDate(paymentDueDay, month+1, year)
}

// DaysUntilDue counts whole days from now to the due date, rounding up.
func DaysUntilDue(dueDate, now time.Time) int {
	return int(math.Ceil(dueDate.Sub(now).Hours() / 24))
}

// BuildStatement assembles a statement record for one billing cycle.
// The period runs from the day after the previous cut-off through the
// statement date. The balance is
//
//	max(previous + charges + interest + tax - payments, 0)
//
// and the minimum payment follows CalculateMinimumPayment (zero when
// the balance is zero). New statements always start OPEN.
func BuildStatement(in StatementInput) StatementRecord {
	statementDate := in.StatementDate
	if statementDate.IsZero() {
		statementDate = NextStatementDate(in.CutOffDay, in.Now)
	}
	dueDate := DueDate(in.PaymentDueDay, statementDate)

	prevMonth, prevYear := int(statementDate.Month())-1, statementDate.Year()
	if prevMonth == 0 {
		prevMonth, prevYear = 12, prevYear-1
	}
	periodStart := AdjustedDate(in.CutOffDay+1, prevMonth, prevYear)

	statementBalance := math.Max(
		in.PreviousBalance+in.PeriodTransactionsTotal+in.InterestCharged+in.TaxCharged-in.PaymentsInPeriod,
		0,
	)

	var minimumPayment float64
	if statementBalance > 0 {
		minimumPayment = CalculateMinimumPayment(in.TotalLimit, statementBalance, in.MinPaymentRate)
	}

	return StatementRecord{
		StatementDate:    statementDate,
		DueDate:          dueDate,
		PeriodStart:      periodStart,
		PeriodEnd:        statementDate,
		PreviousBalance:  round2(in.PreviousBalance),
		NewCharges:       round2(in.PeriodTransactionsTotal),
		InterestCharged:  round2(in.InterestCharged),
		TaxCharged:       round2(in.TaxCharged),
		PaymentsReceived: round2(in.PaymentsInPeriod),
		StatementBalance: round2(statementBalance),
		MinimumPayment:   round2(minimumPayment),
		Status:           StatementOpen,
	}
}

// StatementStatus is the sole authority for statement status
// transitions. It is evaluated against the supplied clock so the
// service layer controls time.
func StatementStatus(statementBalance, paymentsReceived, minimumPayment float64, dueDate, now time.Time) StatementStatusValue {
	if paymentsReceived >= statementBalance {
		return StatementPaid
	}
	if !now.After(dueDate) {
		return StatementOpen
	}
	if paymentsReceived >= minimumPayment {
		return StatementClosed
	}
	return StatementOverdue
}
