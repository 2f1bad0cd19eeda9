package tcmb

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/config"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

// Client fetches daily exchange rates from the Central Bank of Turkey
// (today.xml bulletin). Gold and crypto are not published there, so
// those come from configured reference prices.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger

	goldGramTL float64
	btcUSD     float64
	ethUSD     float64
}

// NewClient initializes a new TCMB client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.TCMBURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:        log,
		goldGramTL: cfg.GoldGramPriceTL,
		btcUSD:     cfg.BTCPriceUSD,
		ethUSD:     cfg.ETHPriceUSD,
	}
}

// fetchBulletin downloads the raw daily bulletin XML
func (c *Client) fetchBulletin() ([]byte, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("TCMB XML response: %d bytes", len(body))
	return body, nil
}

// parseBulletin extracts forex selling rates for the tracked currencies
func parseBulletin(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	rates := make(map[string]float64)
	for _, currency := range doc.FindElements("//Currency") {
		code := currency.SelectAttrValue("CurrencyCode", "")
		if code != "USD" && code != "EUR" && code != "GBP" {
			continue
		}

		selling := currency.FindElement("./ForexSelling")
		if selling == nil || selling.Text() == "" {
			continue
		}
		rate, err := strconv.ParseFloat(selling.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s rate: %w", code, err)
		}

		// Some bulletin rows quote per 100 units.
		if unit := currency.FindElement("./Unit"); unit != nil {
			if u, err := strconv.ParseFloat(unit.Text(), 64); err == nil && u > 1 {
				rate /= u
			}
		}

		rates[code] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("no currency data found in bulletin")
	}
	return rates, nil
}

// GetMarketRates retrieves the current market rate table
func (c *Client) GetMarketRates() (models.MarketRates, error) {
	body, err := c.fetchBulletin()
	if err != nil {
		return models.MarketRates{}, err
	}

	parsed, err := parseBulletin(body)
	if err != nil {
		return models.MarketRates{}, err
	}

	rates := models.MarketRates{
		USD: parsed["USD"],
		EUR: parsed["EUR"],
		GBP: parsed["GBP"],
		GA:  c.goldGramTL,
		BTC: c.btcUSD,
		ETH: c.ethUSD,
	}

	c.log.Infof("Retrieved TCMB rates: USD=%.4f EUR=%.4f GBP=%.4f", rates.USD, rates.EUR, rates.GBP)
	return rates, nil
}
