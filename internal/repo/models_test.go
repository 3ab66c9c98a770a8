package repo

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRowConversion(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:             "ORD-1",
		TrackingID:     "TRK1",
		Address:        &entities.Address{ID: "addr_001", City: entities.Text{Ar: "الرياض", En: "Riyadh"}},
		DeliveryOption: entities.DeliveryOption{ID: entities.DeliverySameDay, Price: 25},
		PaymentMethod:  entities.PaymentCash,
		Subtotal:       30,
		DeliveryFee:    25,
		Total:          55,
		Status:         entities.OrderPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	row, err := OrderFromEntity(order)
	require.NoError(t, err)
	assert.False(t, row.TimeSlot.Valid)
	assert.True(t, row.Address.Valid)
	assert.False(t, row.Notes.Valid)

	items := []Item{{OrderID: "ORD-1", ProductID: 1, NameEn: "Panadol", Price: 15, Quantity: 2}}
	got, err := OrderToEntity(row, items)
	require.NoError(t, err)

	order.Items = []entities.CartItem{{ProductID: 1, Name: entities.Text{En: "Panadol"}, Price: 15, Quantity: 2}}
	assert.Equal(t, order, got)
}

func TestOrderToEntity_BrokenJSON(t *testing.T) {
	_, err := OrderToEntity(Order{ID: "x", DeliveryOption: "{"}, nil)
	assert.Error(t, err)
}
