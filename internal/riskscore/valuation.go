// Package riskscore scores a user's financial health from their assets,
// conventional debts and credit-card activity. Like the card engine it
// is pure: market rates are an injected input, never fetched here.
package riskscore

import "github.com/oguzhantanitmis/finance.ogzie.com/internal/models"

// AssetValue converts an asset holding to TL using the supplied rates.
// Crypto is quoted in USD and converted twice. Unknown currencies fall
// back to the raw amount.
func AssetValue(amount float64, assetType, currency string, rates models.MarketRates) float64 {
	switch currency {
	case "TRY", "TL":
		return amount
	case "USD":
		return amount * rates.USD
	case "EUR":
		return amount * rates.EUR
	case "GBP":
		return amount * rates.GBP
	}
	if assetType == models.AssetGold || currency == "XAU" || currency == "GA" {
		return amount * rates.GA
	}
	switch currency {
	case "BTC":
		return amount * rates.BTC * rates.USD
	case "ETH":
		return amount * rates.ETH * rates.USD
	case "USDT":
		return amount * rates.USD
	}
	return amount
}

// isLiquid reports whether an asset type can cover short-term payments.
func isLiquid(assetType string) bool {
	switch assetType {
	case models.AssetCash, models.AssetBank, models.AssetGold, models.AssetFX, models.AssetCrypto:
		return true
	}
	return false
}
