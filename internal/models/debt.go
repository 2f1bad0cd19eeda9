package models

import "time"

// Debt types. KMH is a revolving overdraft line with daily-accruing
// interest, distinct from installment loans.
const (
	DebtLoan     = "LOAN"
	DebtKMH      = "KMH"
	DebtPersonal = "PERSONAL"
)

// Debt represents a conventional (non-card) debt
type Debt struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	RemainingBalance      float64   `json:"remaining_balance"`
	RemainingInstallments int       `json:"remaining_installments,omitempty"`
	InterestRate          float64   `json:"interest_rate"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
