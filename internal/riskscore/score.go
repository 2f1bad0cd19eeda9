package riskscore

import (
	"math"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

// RiskLevel bands the 0-100 score.
type RiskLevel string

const (
	LevelExcellent RiskLevel = "EXCELLENT"
	LevelGood      RiskLevel = "GOOD"
	LevelModerate  RiskLevel = "MODERATE"
	LevelHigh      RiskLevel = "HIGH"
	LevelCritical  RiskLevel = "CRITICAL"
)

// ratioSaturated stands in for a ratio whose denominator is zero:
// maximal leverage when there are debts but no assets, maximal
// liquidity when there are no debts.
const ratioSaturated = 10.0

// kmhEstimatedMonthlyRate is the flat monthly load assumed for
// revolving overdraft (KMH) balances when estimating debt service.
const kmhEstimatedMonthlyRate = 0.05

// Analysis is the scored view of a user's financial position. Warnings
// correspond one-to-one, in order, with the penalties applied to the
// score.
type Analysis struct {
	Score           int       `json:"score"`
	Level           RiskLevel `json:"level"`
	LiquidityRatio  float64   `json:"liquidity_ratio"`
	LeverageRatio   float64   `json:"leverage_ratio"`
	DebtServiceLoad float64   `json:"debt_service_load"`
	Warnings        []string  `json:"warnings"`
}

// Calculate scores financial health from 0 (critical) to 100
// (excellent). The score starts at 100 and fixed penalties apply
// independently and cumulatively:
//
//	-40  debts exceed assets
//	-30  leverage above 0.8 (else -15 above 0.5)
//	-15  any card utilization above 90%
//	-20  liquidity below 0.2 while debt exceeds 5000
//	-10  a KMH balance above 1000
func Calculate(assets []models.Asset, debts []models.Debt, rates models.MarketRates, cards []models.CardWithActivity) Analysis {
	var totalAssetsTL, liquidAssetsTL float64
	for _, asset := range assets {
		value := AssetValue(asset.Amount, asset.Type, asset.Currency, rates)
		totalAssetsTL += value
		if isLiquid(asset.Type) {
			liquidAssetsTL += value
		}
	}

	var totalDebtTL, monthlyDebtPayment float64
	for _, debt := range debts {
		totalDebtTL += debt.RemainingBalance
		switch debt.Type {
		case models.DebtLoan:
			installments := debt.RemainingInstallments
			if installments <= 0 {
				installments = 12
			}
			monthlyDebtPayment += debt.RemainingBalance / float64(installments)
		case models.DebtKMH:
			monthlyDebtPayment += debt.RemainingBalance * kmhEstimatedMonthlyRate
		}
	}

	highUtilization := false
	for _, card := range cards {
		debt := CardDebt(card)
		totalDebtTL += debt

		minRate := 0.20
		if card.Card.TotalLimit > 50000 {
			minRate = 0.40
		}
		monthlyDebtPayment += debt * minRate

		if card.Card.TotalLimit > 0 && debt/card.Card.TotalLimit > 0.9 {
			highUtilization = true
		}
	}

	leverageRatio := ratioSaturated
	if totalAssetsTL > 0 {
		leverageRatio = totalDebtTL / totalAssetsTL
	} else if totalDebtTL == 0 {
		leverageRatio = 0
	}

	liquidityRatio := ratioSaturated
	if totalDebtTL > 0 {
		liquidityRatio = liquidAssetsTL / totalDebtTL
	}

	score := 100.0
	var warnings []string

	if totalAssetsTL < totalDebtTL {
		score -= 40
		warnings = append(warnings, "Teknik iflas: borçlarınız varlıklarınızdan fazla.")
	}

	if leverageRatio > 0.8 {
		score -= 30
		warnings = append(warnings, "Aşırı borçlanma: varlıklarınızın %80'inden fazlası kadar borcunuz var.")
	} else if leverageRatio > 0.5 {
		score -= 15
		warnings = append(warnings, "Yüksek borçluluk: borçlarınız varlıklarınızın yarısını aşıyor.")
	}

	if highUtilization {
		score -= 15
		warnings = append(warnings, "Limit alarmı: kredi kartı limitiniz %90'ın üzerinde dolu.")
	}

	if liquidityRatio < 0.2 && totalDebtTL > 5000 {
		score -= 20
		warnings = append(warnings, "Likidite krizi: acil ödemeler için yeterli nakdiniz yok.")
	}

	for _, debt := range debts {
		if debt.Type == models.DebtKMH && debt.RemainingBalance > 1000 {
			score -= 10
			warnings = append(warnings, "KMH alarmı: ek hesap faizi bütçenizi eritiyor.")
			break
		}
	}

	final := int(math.Max(0, math.Min(100, math.Round(score))))

	return Analysis{
		Score:           final,
		Level:           levelFor(final),
		LiquidityRatio:  liquidityRatio,
		LeverageRatio:   leverageRatio,
		DebtServiceLoad: monthlyDebtPayment,
		Warnings:        warnings,
	}
}

// CardDebt derives a card's outstanding debt from its activity:
// max(charges - refunds - payments, 0).
func CardDebt(card models.CardWithActivity) float64 {
	var charges, refunds, payments float64
	for _, txn := range card.Transactions {
		if txn.Type == models.TransactionRefund {
			refunds += txn.Amount
		} else {
			charges += txn.Amount
		}
	}
	for _, p := range card.Payments {
		payments += p.Amount
	}
	return math.Max(charges-refunds-payments, 0)
}

func levelFor(score int) RiskLevel {
	switch {
	case score >= 90:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 50:
		return LevelModerate
	case score >= 30:
		return LevelHigh
	default:
		return LevelCritical
	}
}
