// Package insights derives dashboard findings from the risk score and
// raw positions. Generation is pure; persistence and deduplication are
// the service layer's job.
package insights

import (
	"fmt"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/riskscore"
)

// Input carries everything the generator looks at.
type Input struct {
	Assets        []models.Asset
	Debts         []models.Debt
	Subscriptions []models.Subscription
	Cards         []models.CardWithActivity
	Rates         models.MarketRates
}

// Generate produces the rule-based insight feed: risk-score extremes,
// subscription load against assets, tight liquidity, and per-card
// utilization warnings.
func Generate(in Input) []models.Insight {
	var result []models.Insight

	risk := riskscore.Calculate(in.Assets, in.Debts, in.Rates, in.Cards)
	if risk.Score < 40 {
		result = append(result, models.Insight{
			Title:   "Yüksek Finansal Risk",
			Content: fmt.Sprintf("Finansal risk skorun %d/100 seviyesinde. Borç yükün varlıklarına göre çok yüksek. Acilen bir ödeme planı oluşturmalısın.", risk.Score),
			Type:    models.InsightRisk,
		})
	} else if risk.Score > 80 {
		result = append(result, models.Insight{
			Title:   "Mükemmel Finansal Sağlık",
			Content: fmt.Sprintf("Tebrikler! %d skor ile finansal olarak çok güvenli bir noktadasın. Yatırımlarını çeşitlendirmeyi düşünebilirsin.", risk.Score),
			Type:    models.InsightSuccess,
		})
	}

	var totalSubs float64
	for _, sub := range in.Subscriptions {
		totalSubs += sub.Amount
	}
	var totalAssets float64
	for _, asset := range in.Assets {
		totalAssets += riskscore.AssetValue(asset.Amount, asset.Type, asset.Currency, in.Rates)
	}
	if totalSubs > 0 {
		base := totalAssets
		if base == 0 {
			base = 1
		}
		subRatio := totalSubs / base * 100
		if subRatio > 5 {
			result = append(result, models.Insight{
				Title:   "Abonelik Yükü Uyarısı",
				Content: fmt.Sprintf("Aboneliklerin aylık %.2f TL tutuyor. Bu, toplam varlığının %%%.1f'ine denk geliyor. Gereksiz abonelikleri iptal etmeyi düşün.", totalSubs, subRatio),
				Type:    models.InsightWarning,
			})
		}
	}

	if risk.LiquidityRatio < 1 {
		result = append(result, models.Insight{
			Title:   "Nakit Akışı Sıkışıklığı",
			Content: "Kısa vadeli likidite oranın 1'in altında. Ödemelerini yapmakta zorlanabilirsin, nakit rezervini artırmalısın.",
			Type:    models.InsightWarning,
		})
	}

	for _, card := range in.Cards {
		debt := riskscore.CardDebt(card)
		limit := card.Card.TotalLimit
		if limit == 0 {
			limit = 1
		}
		utilization := debt / limit * 100
		if utilization > 80 {
			result = append(result, models.Insight{
				Title:   fmt.Sprintf("%s Limit Uyarısı", card.Card.CardName),
				Content: fmt.Sprintf("%s kartının limitinin %%%.0f kadarını kullanmışsın. Bu durum kredi skorunu olumsuz etkileyebilir.", card.Card.CardName, utilization),
				Type:    models.InsightWarning,
			})
		}
	}

	return result
}
