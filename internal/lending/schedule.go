// Package lending computes installment-loan schedules and overdraft
// interest under Turkish rules, where KKDF and BSMV are levied on the
// interest portion of every installment.
package lending

import (
	"fmt"
	"math"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/riskscore"
)

// Installment is one row of an amortization plan. Interest and Tax are
// split out of the tax-inclusive interest charge for the month.
type Installment struct {
	Number             int     `json:"number"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	Tax                float64 `json:"tax"`
	RemainingPrincipal float64 `json:"remaining_principal"`
}

// Schedule is a complete equal-installment repayment plan.
type Schedule struct {
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalPayment   float64       `json:"total_payment"`
	Plan           []Installment `json:"plan"`
}

// KMHInterest is the daily-accrued cost of a revolving overdraft
// balance.
type KMHInterest struct {
	Interest  float64 `json:"interest"`
	Tax       float64 `json:"tax"`
	TotalCost float64 `json:"total_cost"`
}

// NetWorth summarizes assets against debts in TL.
type NetWorth struct {
	TotalAssets float64 `json:"total_assets"`
	TotalDebts  float64 `json:"total_debts"`
	NetWorth    float64 `json:"net_worth"`
}

// CalculateSchedule builds an equal-installment (annuity) plan. The
// bank quotes a monthly rate as a percentage scalar; the effective rate
// applied each month is rate * (1 + kkdf + bsmv) because taxes ride on
// the interest inside each installment. A zero rate produces equal
// principal-only installments.
func CalculateSchedule(principal, monthlyRate float64, installments int, kkdfRate, bsmvRate float64) (Schedule, error) {
	if principal <= 0 {
		return Schedule{}, fmt.Errorf("principal must be positive, got %.2f", principal)
	}
	if installments <= 0 {
		return Schedule{}, fmt.Errorf("installments must be positive, got %d", installments)
	}
	if monthlyRate < 0 {
		return Schedule{}, fmt.Errorf("monthly rate must not be negative, got %.2f", monthlyRate)
	}

	if monthlyRate == 0 {
		payment := principal / float64(installments)
		plan := make([]Installment, installments)
		for i := range plan {
			plan[i] = Installment{
				Number:             i + 1,
				Principal:          round2(payment),
				RemainingPrincipal: round2(principal - payment*float64(i+1)),
			}
		}
		return Schedule{MonthlyPayment: round2(payment), TotalPayment: round2(principal), Plan: plan}, nil
	}

	taxMultiplier := 1 + kkdfRate + bsmvRate
	effectiveRate := monthlyRate / 100 * taxMultiplier
	n := float64(installments)

	monthlyPayment := principal * (effectiveRate * math.Pow(1+effectiveRate, n)) / (math.Pow(1+effectiveRate, n) - 1)

	remaining := principal
	plan := make([]Installment, 0, installments)
	for i := 1; i <= installments; i++ {
		interestWithTax := remaining * effectiveRate
		principalPart := monthlyPayment - interestWithTax

		pureInterest := interestWithTax / taxMultiplier
		tax := interestWithTax - pureInterest

		remaining -= principalPart
		if remaining < 0 {
			remaining = 0
		}

		plan = append(plan, Installment{
			Number:             i,
			Principal:          round2(principalPart),
			Interest:           round2(pureInterest),
			Tax:                round2(tax),
			RemainingPrincipal: round2(remaining),
		})
	}

	return Schedule{
		MonthlyPayment: round2(monthlyPayment),
		TotalPayment:   round2(monthlyPayment * n),
		Plan:           plan,
	}, nil
}

// CalculateKMHInterest accrues overdraft interest daily: the monthly
// rate (a fraction here, e.g. 0.045) is divided by 30 and applied to
// the absolute drawn balance for the given days. Taxes are collected
// with the month-end sweep.
func CalculateKMHInterest(negativeBalance, monthlyRate float64, days int, kkdfRate, bsmvRate float64) KMHInterest {
	if monthlyRate <= 0 || days <= 0 {
		return KMHInterest{}
	}
	balance := math.Abs(negativeBalance)
	interest := balance * monthlyRate / 30 * float64(days)
	tax := interest * (kkdfRate + bsmvRate)
	return KMHInterest{
		Interest:  round2(interest),
		Tax:       round2(tax),
		TotalCost: round2(interest + tax),
	}
}

// CalculateNetWorth values all assets in TL with the supplied rates and
// nets them against total debt balances.
func CalculateNetWorth(assets []models.Asset, debts []models.Debt, rates models.MarketRates) NetWorth {
	var totalAssets float64
	for _, asset := range assets {
		if asset.Type == models.AssetGold && asset.UnitPrice > 0 {
			totalAssets += asset.Amount * asset.UnitPrice
			continue
		}
		totalAssets += riskscore.AssetValue(asset.Amount, asset.Type, asset.Currency, rates)
	}

	var totalDebts float64
	for _, debt := range debts {
		totalDebts += debt.RemainingBalance
	}

	return NetWorth{
		TotalAssets: round2(totalAssets),
		TotalDebts:  round2(totalDebts),
		NetWorth:    round2(totalAssets - totalDebts),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
