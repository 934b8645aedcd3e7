package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"retail-checkout/internal/domain"
)

// entry is one catalog row as stored on disk. Price and weight are strings
// so the file keeps exact decimal values.
type entry struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Quantity int    `yaml:"quantity"`
	Expiry   string `yaml:"expiry,omitempty"`   // YYYY-MM-DD
	WeightKg string `yaml:"weightKg,omitempty"` // presence makes the product shippable
}

// Loader builds domain products from a YAML catalog.
type Loader struct {
	logger *log.Logger
}

func NewLoader(logger *log.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFile reads path and returns its products in file order.
func (l *Loader) LoadFile(path string) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return l.Load(data)
}

// Load parses a YAML list of catalog rows and validates each one.
func (l *Loader) Load(data []byte) ([]*domain.Product, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]*domain.Product, 0, len(entries))
	for i, e := range entries {
		p, err := e.toProduct()
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i, err)
		}
		products = append(products, p)
	}
	l.logger.Printf("loaded %d catalog products", len(products))
	return products, nil
}

func (e entry) toProduct() (*domain.Product, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, errors.New("name required")
	}
	price, err := decimal.NewFromString(e.Price)
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", e.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price %s is negative", price)
	}
	if e.Quantity < 0 {
		return nil, fmt.Errorf("quantity %d is negative", e.Quantity)
	}

	var expiry *time.Time
	if e.Expiry != "" {
		t, err := time.Parse("2006-01-02", e.Expiry)
		if err != nil {
			return nil, fmt.Errorf("expiry %q: %w", e.Expiry, err)
		}
		expiry = &t
	}

	var weight *decimal.Decimal
	if e.WeightKg != "" {
		w, err := decimal.NewFromString(e.WeightKg)
		if err != nil {
			return nil, fmt.Errorf("weightKg %q: %w", e.WeightKg, err)
		}
		if !w.IsPositive() {
			return nil, fmt.Errorf("weightKg %s must be positive", w)
		}
		weight = &w
	}

	switch {
	case expiry != nil && weight != nil:
		return domain.NewPerishableShippable(e.Name, price, e.Quantity, *expiry, *weight), nil
	case expiry != nil:
		return domain.NewPerishable(e.Name, price, e.Quantity, *expiry), nil
	case weight != nil:
		return domain.NewShippable(e.Name, price, e.Quantity, *weight), nil
	default:
		return domain.NewProduct(e.Name, price, e.Quantity), nil
	}
}

// Demo returns the built-in catalog used when no file is configured: two
// perishable shippables, a heavy shippable, and a non-shippable card.
func Demo(today time.Time) []*domain.Product {
	return []*domain.Product{
		domain.NewPerishableShippable("Cheese", decimal.NewFromInt(100), 10, today.AddDate(0, 0, 2), decimal.RequireFromString("0.2")),
		domain.NewPerishableShippable("Biscuits", decimal.NewFromInt(150), 5, today.AddDate(0, 0, 5), decimal.RequireFromString("0.7")),
		domain.NewShippable("TV", decimal.NewFromInt(1000), 3, decimal.NewFromInt(5)),
		domain.NewProduct("Scratch Card", decimal.NewFromInt(50), 100),
	}
}
