package insights

import (
	"strings"
	"testing"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

var rates = models.MarketRates{USD: 32.85, EUR: 35.40, GBP: 41.50, GA: 2450, BTC: 68500, ETH: 3500}

func hasInsight(list []models.Insight, titlePart string) bool {
	for _, ins := range list {
		if strings.Contains(ins.Title, titlePart) {
			return true
		}
	}
	return false
}

func TestGenerate_HealthyUserGetsSuccessInsight(t *testing.T) {
	got := Generate(Input{
		Assets: []models.Asset{{Type: models.AssetBank, Currency: "TRY", Amount: 500000}},
		Rates:  rates,
	})

	if !hasInsight(got, "Mükemmel") {
		t.Errorf("expected success insight for a healthy position, got %v", got)
	}
	for _, ins := range got {
		if ins.Type == models.InsightRisk {
			t.Errorf("unexpected risk insight: %+v", ins)
		}
	}
}

func TestGenerate_OverindebtedUserGetsRiskInsight(t *testing.T) {
	got := Generate(Input{
		Assets: []models.Asset{{Type: models.AssetBank, Currency: "TRY", Amount: 1000}},
		Debts:  []models.Debt{{Type: models.DebtLoan, RemainingBalance: 100000, RemainingInstallments: 12}},
		Rates:  rates,
	})

	if !hasInsight(got, "Yüksek Finansal Risk") {
		t.Errorf("expected risk insight, got %v", got)
	}
	if !hasInsight(got, "Nakit Akışı") {
		t.Errorf("expected liquidity insight, got %v", got)
	}
}

func TestGenerate_SubscriptionLoad(t *testing.T) {
	got := Generate(Input{
		Assets:        []models.Asset{{Type: models.AssetBank, Currency: "TRY", Amount: 10000}},
		Subscriptions: []models.Subscription{{Name: "Stream", Amount: 400}, {Name: "Music", Amount: 200}},
		Rates:         rates,
	})

	// 600 / 10000 = 6% of assets, above the 5% threshold.
	if !hasInsight(got, "Abonelik") {
		t.Errorf("expected subscription insight, got %v", got)
	}

	got = Generate(Input{
		Assets:        []models.Asset{{Type: models.AssetBank, Currency: "TRY", Amount: 100000}},
		Subscriptions: []models.Subscription{{Name: "Stream", Amount: 400}},
		Rates:         rates,
	})
	if hasInsight(got, "Abonelik") {
		t.Errorf("subscription insight below threshold: %v", got)
	}
}

func TestGenerate_CardUtilization(t *testing.T) {
	card := models.CardWithActivity{
		Card: models.CreditCard{CardName: "Platinum", TotalLimit: 10000},
		Transactions: []models.CardTransaction{
			{Type: models.TransactionPurchase, Amount: 8500},
		},
	}

	got := Generate(Input{
		Assets: []models.Asset{{Type: models.AssetBank, Currency: "TRY", Amount: 500000}},
		Cards:  []models.CardWithActivity{card},
		Rates:  rates,
	})

	if !hasInsight(got, "Platinum Limit") {
		t.Errorf("expected per-card utilization insight, got %v", got)
	}
}
