package shipping

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"retail-checkout/internal/domain"
)

// Service prints shipment notices for batches of parcels.
type Service struct {
	out io.Writer
}

func New(out io.Writer) *Service {
	return &Service{out: out}
}

// Ship prints the shipment notice: one line per distinct product name in
// first-seen order with the combined weight in grams, then the total package
// weight in kilograms. Parcels carry one entry per physical unit.
func (s *Service) Ship(parcels []domain.Parcel) {
	fmt.Fprintln(s.out, "** Shipment notice **")

	var (
		order  []string
		counts = make(map[string]int)
		unit   = make(map[string]decimal.Decimal)
		total  decimal.Decimal
	)
	for _, p := range parcels {
		if _, seen := counts[p.Name]; !seen {
			order = append(order, p.Name)
		}
		counts[p.Name]++
		unit[p.Name] = p.Weight
		total = total.Add(p.Weight)
	}

	grams := decimal.NewFromInt(1000)
	for _, name := range order {
		combined := unit[name].Mul(decimal.NewFromInt(int64(counts[name]))).Mul(grams)
		fmt.Fprintf(s.out, "%dx %s %sg\n", counts[name], name, combined.StringFixed(0))
	}

	fmt.Fprintf(s.out, "Total package weight %skg\n", total.StringFixed(2))
}
