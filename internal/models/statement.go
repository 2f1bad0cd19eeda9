package models

import "time"

// CardStatement represents a persisted billing-cycle statement
type CardStatement struct {
	ID               int64     `json:"id"`
	CreditCardID     int64     `json:"credit_card_id"`
	StatementDate    time.Time `json:"statement_date"`
	DueDate          time.Time `json:"due_date"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	PreviousBalance  float64   `json:"previous_balance"`
	NewCharges       float64   `json:"new_charges"`
	InterestCharged  float64   `json:"interest_charged"`
	TaxCharged       float64   `json:"tax_charged"`
	PaymentsReceived float64   `json:"payments_received"`
	StatementBalance float64   `json:"statement_balance"`
	MinimumPayment   float64   `json:"minimum_payment"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
