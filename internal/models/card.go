package models

import "time"

// CreditCard represents a credit card tracked by the user
type CreditCard struct {
	ID               int64     `json:"id"`
	CardName         string    `json:"card_name"`
	BankName         string    `json:"bank_name"`
	Last4Digits      string    `json:"last_4_digits"`
	CardNetwork      string    `json:"card_network"`
	Color            string    `json:"color"`
	TotalLimit       float64   `json:"total_limit"`
	CashAdvanceLimit float64   `json:"cash_advance_limit"`
	CutOffDay        int       `json:"cut_off_day"`
	PaymentDueDay    int       `json:"payment_due_day"`
	ContractualRate  float64   `json:"contractual_rate"`
	DefaultRate      float64   `json:"default_rate"`
	CashAdvanceRate  float64   `json:"cash_advance_rate"`
	MinPaymentRate   float64   `json:"min_payment_rate"`
	RewardsPoints    float64   `json:"rewards_points"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CardWithActivity bundles a card with the transactions and payments
// needed to derive its current debt
type CardWithActivity struct {
	Card         CreditCard        `json:"card"`
	Transactions []CardTransaction `json:"transactions"`
	Payments     []CardPayment     `json:"payments"`
}

// CardSummary is the per-card dashboard view
type CardSummary struct {
	ID                 int64   `json:"id"`
	CardName           string  `json:"card_name"`
	BankName           string  `json:"bank_name"`
	Last4Digits        string  `json:"last_4_digits"`
	Color              string  `json:"color"`
	TotalLimit         float64 `json:"total_limit"`
	CurrentDebt        float64 `json:"current_debt"`
	AvailableLimit     float64 `json:"available_limit"`
	UtilizationPercent float64 `json:"utilization_percent"`
	WarningLevel       string  `json:"warning_level"`
	StatementBalance   float64 `json:"statement_balance"`
	MinimumPayment     float64 `json:"minimum_payment"`
	DaysUntilDue       int     `json:"days_until_due"`
	Status             string  `json:"status"`
}
