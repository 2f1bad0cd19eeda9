package models

// MarketRates holds the conversion rates used to value assets in TL.
// USD, EUR and GBP are TL per unit; GA is TL per gram of gold; BTC and
// ETH are quoted in USD.
type MarketRates struct {
	USD float64 `json:"usd"`
	EUR float64 `json:"eur"`
	GBP float64 `json:"gbp"`
	GA  float64 `json:"ga"`
	BTC float64 `json:"btc"`
	ETH float64 `json:"eth"`
}
