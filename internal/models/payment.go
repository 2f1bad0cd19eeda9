package models

import "time"

// CardPayment represents a payment made against a credit card
type CardPayment struct {
	ID           int64     `json:"id"`
	CreditCardID int64     `json:"credit_card_id"`
	StatementID  int64     `json:"statement_id,omitempty"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	PaymentDate  time.Time `json:"payment_date"`
	CreatedAt    time.Time `json:"created_at"`
}
