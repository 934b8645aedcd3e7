package catalog

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader() *Loader {
	return NewLoader(log.New(io.Discard, "", 0))
}

func TestLoadBuildsFacets(t *testing.T) {
	data := []byte(`
- name: Cheese
  price: "100"
  quantity: 10
  expiry: "2026-03-03"
  weightKg: "0.2"
- name: TV
  price: "1000"
  quantity: 3
  weightKg: "5"
- name: Scratch Card
  price: "50"
  quantity: 100
`)

	products, err := testLoader().Load(data)
	require.NoError(t, err)
	require.Len(t, products, 3)

	cheese := products[0]
	assert.Equal(t, "Cheese", cheese.Name)
	assert.True(t, cheese.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 10, cheese.Quantity)
	require.NotNil(t, cheese.Expiry)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), *cheese.Expiry)
	require.True(t, cheese.Shippable())
	assert.True(t, cheese.Shipping.Weight.Equal(decimal.RequireFromString("0.2")))

	tv := products[1]
	assert.Nil(t, tv.Expiry)
	assert.True(t, tv.Shippable())

	card := products[2]
	assert.Nil(t, card.Expiry)
	assert.False(t, card.Shippable())
	assert.NotEmpty(t, card.ID)
}

func TestLoadRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"missing name", "- price: \"10\"\n  quantity: 1\n", "name required"},
		{"bad price", "- name: X\n  price: \"ten\"\n  quantity: 1\n", "price"},
		{"negative price", "- name: X\n  price: \"-1\"\n  quantity: 1\n", "negative"},
		{"negative quantity", "- name: X\n  price: \"1\"\n  quantity: -2\n", "negative"},
		{"bad expiry", "- name: X\n  price: \"1\"\n  quantity: 1\n  expiry: \"03/03/2026\"\n", "expiry"},
		{"zero weight", "- name: X\n  price: \"1\"\n  quantity: 1\n  weightKg: \"0\"\n", "must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := testLoader().Load([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "catalog row 0")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadReportsOffendingRow(t *testing.T) {
	data := []byte("- name: OK\n  price: \"1\"\n  quantity: 1\n- name: \"\"\n  price: \"1\"\n  quantity: 1\n")

	_, err := testLoader().Load(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog row 1")
}

func TestDemoCatalog(t *testing.T) {
	today := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	products := Demo(today)
	require.Len(t, products, 4)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Cheese", "Biscuits", "TV", "Scratch Card"}, names)

	for _, p := range products {
		assert.False(t, p.ExpiredAt(today), "%s must start unexpired", p.Name)
	}
	assert.True(t, products[0].Shippable())
	assert.False(t, products[3].Shippable())
}
