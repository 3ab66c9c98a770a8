package checkout

import (
	"testing"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	panadol  = entities.Product{ID: 1, Name: entities.Text{En: "Panadol"}, Price: 15}
	vitaminC = entities.Product{ID: 2, Name: entities.Text{En: "Vitamin C"}, Price: 45}
)

func TestCart_AddItemMergesExisting(t *testing.T) {
	c := NewCart()
	c.AddItem(panadol, 1)
	c.AddItem(vitaminC, 1)
	c.AddItem(panadol, 2)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 4, c.Count())
	assert.Equal(t, 15*3+45, c.Subtotal())
}

func TestCart_AddItemIgnoresNonPositive(t *testing.T) {
	c := NewCart()
	c.AddItem(panadol, 0)
	c.AddItem(panadol, -3)

	assert.True(t, c.IsEmpty())
}

func TestCart_UpdateQuantity(t *testing.T) {
	testCases := []struct {
		name    string
		start   int
		delta   int
		wantLen int
		wantQty int
	}{
		{name: "increment", start: 1, delta: 1, wantLen: 1, wantQty: 2},
		{name: "decrement", start: 3, delta: -1, wantLen: 1, wantQty: 2},
		{name: "decrement to zero removes", start: 1, delta: -1, wantLen: 0},
		{name: "below zero removes", start: 2, delta: -5, wantLen: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCart()
			c.AddItem(panadol, tc.start)

			c.UpdateQuantity(panadol.ID, tc.delta)

			items := c.Items()
			require.Len(t, items, tc.wantLen)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantQty, items[0].Quantity)
			}
			for _, it := range items {
				assert.Positive(t, it.Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantityUnknownProduct(t *testing.T) {
	c := NewCart()
	c.AddItem(panadol, 1)

	c.UpdateQuantity(99, 1)

	assert.Equal(t, 1, c.Count())
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := NewCart()
	c.AddItem(panadol, 1)
	c.AddItem(vitaminC, 2)

	c.RemoveItem(panadol.ID)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, vitaminC.ID, c.Items()[0].ProductID)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Subtotal())
}
