package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds a buyer's identity and spendable balance. The balance
// persists across checkouts within a process run.
type Customer struct {
	ID      string
	Name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{ID: uuid.NewString(), Name: name, balance: balance}
}

// Balance returns the current spendable balance.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// HasSufficientBalance reports whether the customer can cover amount.
func (c *Customer) HasSufficientBalance(amount decimal.Decimal) bool {
	return c.balance.GreaterThanOrEqual(amount)
}

// Pay debits amount unconditionally. Callers verify sufficiency first, so a
// successful checkout never leaves the balance negative.
func (c *Customer) Pay(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
