package models

import "time"

// Subscription represents a recurring monthly charge
type Subscription struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	BillingDay int       `json:"billing_day"`
	CreatedAt  time.Time `json:"created_at"`
}
