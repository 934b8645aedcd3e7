package checkout

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"retail-checkout/internal/domain"
)

type shipper interface {
	Ship(parcels []domain.Parcel)
}

// Service runs the single-shot checkout workflow: validate the cart, price
// it, charge the customer, commit stock, then print the shipment notice and
// receipt. A Service is reusable across checkouts.
type Service struct {
	shipping shipper
	rate     decimal.Decimal // shipping cost per kilogram
	out      io.Writer
}

func New(shipping shipper, ratePerKg decimal.Decimal, out io.Writer) *Service {
	return &Service{shipping: shipping, rate: ratePerKg, out: out}
}

// Process checks out the cart for the customer as of today. Gates run in
// order: empty cart, per-item expiry and stock, affordability. Every gate
// runs before any mutation, so a returned error means stock and balance are
// exactly as they were. The caller decides how to present the error.
func (s *Service) Process(customer *domain.Customer, cart *domain.Cart, today time.Time) error {
	if cart.Empty() {
		return domain.ErrEmptyCart
	}

	var (
		subtotal  decimal.Decimal
		parcels   []domain.Parcel
		requested = make(map[*domain.Product]int)
	)
	for _, item := range cart.Items() {
		p := item.Product
		if p.ExpiredAt(today) {
			return &domain.ExpiredProductError{Name: p.Name}
		}
		// Duplicate line items share stock: gate on the running total for
		// the product, so the commit loop below can never fail midway.
		requested[p] += item.Quantity
		if requested[p] > p.Quantity {
			return &domain.InsufficientStockError{Name: p.Name}
		}
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if parcel, ok := p.Parcel(); ok {
			for i := 0; i < item.Quantity; i++ {
				parcels = append(parcels, parcel)
			}
		}
	}

	// Flat per-unit weight sum, not the per-name grouping the notice uses.
	var shipping decimal.Decimal
	for _, parcel := range parcels {
		shipping = shipping.Add(parcel.Weight.Mul(s.rate))
	}

	total := subtotal.Add(shipping)
	if !customer.HasSufficientBalance(total) {
		return domain.ErrInsufficientBalance
	}

	for _, item := range cart.Items() {
		if err := item.Product.Reduce(item.Quantity); err != nil {
			return err
		}
	}
	customer.Pay(total)

	if len(parcels) > 0 {
		s.shipping.Ship(parcels)
	}

	s.printReceipt(cart, subtotal, shipping, total, customer.Balance())
	return nil
}

func (s *Service) printReceipt(cart *domain.Cart, subtotal, shipping, total, balance decimal.Decimal) {
	fmt.Fprintln(s.out, "** Checkout receipt **")
	for _, item := range cart.Items() {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(s.out, "%dx %s %s\n", item.Quantity, item.Product.Name, lineTotal.StringFixed(0))
	}
	fmt.Fprintln(s.out, "----------------------")
	fmt.Fprintf(s.out, "Subtotal %s\n", subtotal.StringFixed(0))
	fmt.Fprintf(s.out, "Shipping %s\n", shipping.StringFixed(0))
	fmt.Fprintf(s.out, "Amount %s\n", total.StringFixed(0))
	fmt.Fprintf(s.out, "Balance left %s\n", balance.StringFixed(0))
}
