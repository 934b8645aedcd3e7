package domain

import (
	"fmt"
	"io"
)

// CartItem pairs a shared product reference with a requested quantity. The
// cart never copies product state; stock is read live at add and checkout.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Cart collects line items in insertion order. There is no de-duplication:
// adding the same product twice yields two line items. Items cannot be
// removed or updated once added.
type Cart struct {
	items []CartItem
	warn  io.Writer
}

// NewCart returns an empty cart. Stock warnings from Add are written to warn.
func NewCart(warn io.Writer) *Cart {
	return &Cart{warn: warn}
}

// Add appends a line item. Non-positive quantities are ignored. A request
// above current stock prints a warning and leaves the cart unchanged; this
// check is advisory, the authoritative one runs again at checkout against
// then-current stock.
func (c *Cart) Add(p *Product, quantity int) {
	if quantity <= 0 {
		return
	}
	if quantity > p.Quantity {
		fmt.Fprintf(c.warn, "Not enough stock for product: %s\n", p.Name)
		return
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []CartItem {
	return c.items
}

// Empty reports whether no items were successfully added.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
