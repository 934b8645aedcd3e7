package domain

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	var warn bytes.Buffer
	cart := NewCart(&warn)
	cheese := NewProduct("Cheese", decimal.NewFromInt(100), 10)

	assert.True(t, cart.Empty())

	cart.Add(cheese, 2)
	require.Len(t, cart.Items(), 1)
	assert.False(t, cart.Empty())
	assert.Equal(t, 2, cart.Items()[0].Quantity)
	assert.Empty(t, warn.String())
}

func TestCartAddRejectsOverStock(t *testing.T) {
	var warn bytes.Buffer
	cart := NewCart(&warn)
	tv := NewShippable("TV", decimal.NewFromInt(1000), 3, decimal.NewFromInt(5))

	cart.Add(tv, 4)

	assert.True(t, cart.Empty(), "rejected add must not create a line item")
	assert.Equal(t, "Not enough stock for product: TV\n", warn.String())
}

func TestCartAddIgnoresNonPositiveQuantity(t *testing.T) {
	var warn bytes.Buffer
	cart := NewCart(&warn)
	cheese := NewProduct("Cheese", decimal.NewFromInt(100), 10)

	cart.Add(cheese, 0)
	cart.Add(cheese, -3)

	assert.True(t, cart.Empty())
	assert.Empty(t, warn.String())
}

func TestCartAddNoDeduplication(t *testing.T) {
	var warn bytes.Buffer
	cart := NewCart(&warn)
	cheese := NewProduct("Cheese", decimal.NewFromInt(100), 10)

	cart.Add(cheese, 1)
	cart.Add(cheese, 2)

	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
	assert.Equal(t, 2, cart.Items()[1].Quantity)
}

// The add-time stock check is advisory only: stock drained after Add is
// caught at checkout, not here. Last checkout wins.
func TestCartAddDoesNotReserveStock(t *testing.T) {
	var warn bytes.Buffer
	cart := NewCart(&warn)
	cheese := NewProduct("Cheese", decimal.NewFromInt(100), 10)

	cart.Add(cheese, 10)
	require.NoError(t, cheese.Reduce(6))

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 10, cart.Items()[0].Quantity)
	assert.Equal(t, 4, cheese.Quantity)
	assert.Empty(t, warn.String())
}
