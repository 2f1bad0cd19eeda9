package models

import "time"

// Card transaction types
const (
	TransactionPurchase    = "PURCHASE"
	TransactionRefund      = "REFUND"
	TransactionCashAdvance = "CASH_ADVANCE"
	TransactionFee         = "FEE"
)

// CardTransaction represents a charge or refund on a credit card
type CardTransaction struct {
	ID                int64     `json:"id"`
	CreditCardID      int64     `json:"credit_card_id"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	Merchant          string    `json:"merchant,omitempty"`
	Amount            float64   `json:"amount"`
	RemainingAmount   float64   `json:"remaining_amount"`
	TotalInstallments int       `json:"total_installments"`
	IsCashAdvance     bool      `json:"is_cash_advance"`
	TransactionDate   time.Time `json:"transaction_date"`
	CreatedAt         time.Time `json:"created_at"`
}
