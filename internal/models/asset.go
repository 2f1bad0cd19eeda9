package models

import "time"

// Asset types
const (
	AssetCash       = "CASH"
	AssetBank       = "BANK"
	AssetGold       = "GOLD"
	AssetFX         = "FX"
	AssetCrypto     = "CRYPTO"
	AssetRealEstate = "REAL_ESTATE"
	AssetVehicle    = "VEHICLE"
)

// Asset represents something the user owns, valued in its own currency
type Asset struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Currency  string    `json:"currency"`
	Amount    float64   `json:"amount"`
	UnitPrice float64   `json:"unit_price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
