package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBConn string

	LogLevel string

	// TCMB daily exchange rate feed
	TCMBURL string

	// Rates cache
	RedisAddr       string
	RatesCacheTTL   int // seconds
	GoldGramPriceTL float64
	BTCPriceUSD     float64
	ETHPriceUSD     float64

	// Default engine rates, overridable per deployment
	KKDFRate float64
	BSMVRate float64

	// SMTP for statement notifications
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	NotifyEmail  string

	// Cron expressions for the nightly jobs
	StatementCron string
	RatesCron     string
}

// NewConfig loads configuration from environment variables. A local
// .env file is applied first when present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=finance password=finance dbname=finance sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		TCMBURL:       getEnv("TCMB_URL", "https://www.tcmb.gov.tr/kurlar/today.xml"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "noreply@finance.ogzie.com"),
		NotifyEmail:   getEnv("NOTIFY_EMAIL", ""),
		StatementCron: getEnv("STATEMENT_CRON", "0 30 2 * * *"),
		RatesCron:     getEnv("RATES_CRON", "0 0 * * * *"),
	}

	var err error
	if cfg.RatesCacheTTL, err = getEnvInt("RATES_CACHE_TTL", 3600); err != nil {
		return nil, err
	}
	if cfg.GoldGramPriceTL, err = getEnvFloat("GOLD_GRAM_PRICE_TL", 2450); err != nil {
		return nil, err
	}
	if cfg.BTCPriceUSD, err = getEnvFloat("BTC_PRICE_USD", 68500); err != nil {
		return nil, err
	}
	if cfg.ETHPriceUSD, err = getEnvFloat("ETH_PRICE_USD", 3500); err != nil {
		return nil, err
	}
	if cfg.KKDFRate, err = getEnvFloat("KKDF_RATE", 0.15); err != nil {
		return nil, err
	}
	if cfg.BSMVRate, err = getEnvFloat("BSMV_RATE", 0.15); err != nil {
		return nil, err
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.KKDFRate <= 0 || cfg.BSMVRate <= 0 {
		return nil, fmt.Errorf("tax rates must be positive: kkdf=%v bsmv=%v", cfg.KKDFRate, cfg.BSMVRate)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
