package riskscore

import (
	"testing"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

var testRates = models.MarketRates{USD: 32.85, EUR: 35.40, GBP: 41.50, GA: 2450, BTC: 68500, ETH: 3500}

func tlAsset(amount float64) models.Asset {
	return models.Asset{Type: models.AssetBank, Currency: "TRY", Amount: amount}
}

func loan(balance float64, installments int) models.Debt {
	return models.Debt{Type: models.DebtLoan, RemainingBalance: balance, RemainingInstallments: installments}
}

func TestCalculate_HealthyPosition(t *testing.T) {
	got := Calculate(
		[]models.Asset{tlAsset(100000)},
		[]models.Debt{loan(10000, 12)},
		testRates,
		nil,
	)

	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
	if got.Level != LevelExcellent {
		t.Errorf("level = %s, want EXCELLENT", got.Level)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", got.Warnings)
	}
	if got.LeverageRatio != 0.1 {
		t.Errorf("leverage = %v, want 0.1", got.LeverageRatio)
	}
	if got.DebtServiceLoad != 10000.0/12 {
		t.Errorf("debt service load = %v", got.DebtServiceLoad)
	}
}

func TestCalculate_InsolventPosition(t *testing.T) {
	got := Calculate(
		[]models.Asset{tlAsset(1000)},
		[]models.Debt{loan(50000, 24), {Type: models.DebtKMH, RemainingBalance: 5000}},
		testRates,
		nil,
	)

	// Penalties: -40 insolvency, -30 leverage, -20 liquidity, -10 KMH.
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Level != LevelCritical {
		t.Errorf("level = %s, want CRITICAL", got.Level)
	}
	if len(got.Warnings) != 4 {
		t.Errorf("warnings = %d, want 4 (one per penalty): %v", len(got.Warnings), got.Warnings)
	}
}

func TestCalculate_WarningsLockStepWithPenalties(t *testing.T) {
	// Exactly one penalty: leverage between 0.5 and 0.8.
	got := Calculate(
		[]models.Asset{tlAsset(100000)},
		[]models.Debt{loan(60000, 12)},
		testRates,
		nil,
	)
	if got.Score != 85 {
		t.Errorf("score = %d, want 85", got.Score)
	}
	if len(got.Warnings) != 1 {
		t.Errorf("warnings = %d, want exactly 1: %v", len(got.Warnings), got.Warnings)
	}
}

func TestCalculate_HighCardUtilization(t *testing.T) {
	card := models.CardWithActivity{
		Card: models.CreditCard{TotalLimit: 10000},
		Transactions: []models.CardTransaction{
			{Type: models.TransactionPurchase, Amount: 9800},
			{Type: models.TransactionRefund, Amount: 200},
		},
	}

	got := Calculate([]models.Asset{tlAsset(1000000)}, nil, testRates, []models.CardWithActivity{card})

	if got.Score != 85 {
		t.Errorf("score = %d, want 85", got.Score)
	}
	found := false
	for _, w := range got.Warnings {
		if w != "" {
			found = true
		}
	}
	if !found || len(got.Warnings) != 1 {
		t.Errorf("expected a single utilization warning, got %v", got.Warnings)
	}
}

func TestCalculate_ScoreMonotonicInDebt(t *testing.T) {
	assets := []models.Asset{tlAsset(100000)}
	previous := 101
	for _, balance := range []float64{0, 20000, 60000, 90000, 150000, 500000} {
		got := Calculate(assets, []models.Debt{loan(balance, 12)}, testRates, nil)
		if got.Score > previous {
			t.Errorf("score rose from %d to %d when debt grew to %.0f", previous, got.Score, balance)
		}
		previous = got.Score
	}
}

func TestCalculate_ScoreMonotonicInLiquidAssets(t *testing.T) {
	debts := []models.Debt{loan(50000, 12)}
	previous := -1
	for _, amount := range []float64{1000, 10000, 60000, 120000, 1000000} {
		got := Calculate([]models.Asset{tlAsset(amount)}, debts, testRates, nil)
		if got.Score < previous {
			t.Errorf("score fell from %d to %d when assets grew to %.0f", previous, got.Score, amount)
		}
		previous = got.Score
	}
}

func TestCalculate_ScoreBounds(t *testing.T) {
	cases := []struct {
		assets []models.Asset
		debts  []models.Debt
	}{
		{nil, nil},
		{nil, []models.Debt{loan(1e9, 1)}},
		{[]models.Asset{tlAsset(1e9)}, nil},
		{[]models.Asset{tlAsset(0.01)}, []models.Debt{loan(1e9, 1), {Type: models.DebtKMH, RemainingBalance: 1e6}}},
	}
	for _, c := range cases {
		got := Calculate(c.assets, c.debts, testRates, nil)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("score %d out of [0,100] for assets=%v debts=%v", got.Score, c.assets, c.debts)
		}
	}
}

func TestCalculate_SentinelRatios(t *testing.T) {
	// Debt with no assets saturates leverage.
	got := Calculate(nil, []models.Debt{loan(1000, 10)}, testRates, nil)
	if got.LeverageRatio != 10 {
		t.Errorf("leverage sentinel = %v, want 10", got.LeverageRatio)
	}

	// No debt saturates liquidity.
	got = Calculate([]models.Asset{tlAsset(1000)}, nil, testRates, nil)
	if got.LiquidityRatio != 10 {
		t.Errorf("liquidity sentinel = %v, want 10", got.LiquidityRatio)
	}
}

func TestAssetValue(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		assetType string
		currency  string
		want      float64
	}{
		{"try passthrough", 500, models.AssetBank, "TRY", 500},
		{"usd", 100, models.AssetFX, "USD", 3285},
		{"eur", 100, models.AssetFX, "EUR", 3540},
		{"gold grams", 10, models.AssetGold, "GA", 24500},
		{"gold by type with unknown currency", 10, models.AssetGold, "GRAM", 24500},
		{"btc quoted in usd", 1, models.AssetCrypto, "BTC", 68500 * 32.85},
		{"unknown currency falls back", 750, models.AssetBank, "JPY", 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssetValue(tt.amount, tt.assetType, tt.currency, testRates)
			if got != tt.want {
				t.Errorf("AssetValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCardDebt(t *testing.T) {
	card := models.CardWithActivity{
		Transactions: []models.CardTransaction{
			{Type: models.TransactionPurchase, Amount: 1000},
			{Type: models.TransactionCashAdvance, Amount: 500},
			{Type: models.TransactionRefund, Amount: 100},
		},
		Payments: []models.CardPayment{{Amount: 1600}},
	}
	// Overpaid: debt clamps to zero.
	if got := CardDebt(card); got != 0 {
		t.Errorf("CardDebt = %v, want 0", got)
	}

	card.Payments = []models.CardPayment{{Amount: 400}}
	if got := CardDebt(card); got != 1000 {
		t.Errorf("CardDebt = %v, want 1000", got)
	}
}
