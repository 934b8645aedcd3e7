package config

import (
	"os"

	"github.com/shopspring/decimal"
)

// Config holds runtime configuration parsed from environment variables. Only
// the demo entry point reads it; the checkout core takes plain parameters.
type Config struct {
	ShippingRatePerKg decimal.Decimal
	CatalogPath       string
	CustomerName      string
	CustomerBalance   decimal.Decimal
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		ShippingRatePerKg: envDecimal("SHIPPING_RATE_PER_KG", decimal.NewFromInt(30)),
		CatalogPath:       envOrDefault("CATALOG_PATH", ""),
		CustomerName:      envOrDefault("CUSTOMER_NAME", "John"),
		CustomerBalance:   envDecimal("CUSTOMER_BALANCE", decimal.NewFromInt(1000)),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return def
}
