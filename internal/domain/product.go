package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item available for purchase. Capabilities are optional
// facets rather than subtypes: Expiry marks perishable goods, Shipping marks
// physical goods that incur freight. Either, both, or neither may be set.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Expiry   *time.Time
	Shipping *ShippingInfo
}

// ShippingInfo is the shippable facet: per-unit weight in kilograms.
type ShippingInfo struct {
	Weight decimal.Decimal
}

// Parcel is one physical unit of a shippable product, as handed to the
// shipping service.
type Parcel struct {
	Name   string
	Weight decimal.Decimal
}

// NewProduct returns a product with neither facet, such as a scratch card.
func NewProduct(name string, price decimal.Decimal, quantity int) *Product {
	return &Product{ID: uuid.NewString(), Name: name, Price: price, Quantity: quantity}
}

// NewPerishable returns a product that expires but does not ship.
func NewPerishable(name string, price decimal.Decimal, quantity int, expiry time.Time) *Product {
	p := NewProduct(name, price, quantity)
	p.Expiry = &expiry
	return p
}

// NewShippable returns a product that ships but does not expire.
func NewShippable(name string, price decimal.Decimal, quantity int, weightKg decimal.Decimal) *Product {
	p := NewProduct(name, price, quantity)
	p.Shipping = &ShippingInfo{Weight: weightKg}
	return p
}

// NewPerishableShippable returns a product with both facets, such as cheese.
func NewPerishableShippable(name string, price decimal.Decimal, quantity int, expiry time.Time, weightKg decimal.Decimal) *Product {
	p := NewPerishable(name, price, quantity, expiry)
	p.Shipping = &ShippingInfo{Weight: weightKg}
	return p
}

// ExpiredAt reports whether the product's expiry date lies strictly before
// today. Products without the perishable facet never expire.
func (p *Product) ExpiredAt(today time.Time) bool {
	return p.Expiry != nil && p.Expiry.Before(today)
}

// Shippable reports whether the product carries a shipping weight.
func (p *Product) Shippable() bool {
	return p.Shipping != nil
}

// Parcel returns one shipping unit of the product, or false when the product
// has no shipping facet.
func (p *Product) Parcel() (Parcel, bool) {
	if p.Shipping == nil {
		return Parcel{}, false
	}
	return Parcel{Name: p.Name, Weight: p.Shipping.Weight}, true
}

// Reduce decrements stock by n. It refuses a decrement that would drive stock
// negative and leaves the quantity untouched in that case.
func (p *Product) Reduce(n int) error {
	if n > p.Quantity {
		return &InsufficientStockError{Name: p.Name}
	}
	p.Quantity -= n
	return nil
}
