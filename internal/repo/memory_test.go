package repo

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAddressRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryAddressRepo([]entities.Address{{ID: "a"}, {ID: "b"}})

	require.NoError(t, r.SaveAddress(ctx, entities.Address{ID: "c"}))
	require.NoError(t, r.SaveAddress(ctx, entities.Address{ID: "a", Phone: "+1"}))

	list, err := r.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "+1", list[0].Phone)

	require.NoError(t, r.DeleteAddress(ctx, "b"))
	assert.ErrorIs(t, r.DeleteAddress(ctx, "b"), entities.ErrAddressNotFound)

	_, err = r.GetAddress(ctx, "b")
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)
}

func TestMemoryOrderRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryOrderRepo()

	require.NoError(t, r.SaveOrder(ctx, entities.Order{ID: "1", TrackingID: "T1", Status: entities.OrderPending}))
	require.NoError(t, r.SaveOrder(ctx, entities.Order{ID: "2", TrackingID: "T2", Status: entities.OrderPending}))
	require.NoError(t, r.SaveOrder(ctx, entities.Order{ID: "1", TrackingID: "dup"}))

	got, err := r.GetOrderByTrackingID(ctx, "T2")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	require.NoError(t, r.UpdateOrderStatus(ctx, "1", entities.OrderCancelled, time.Now()))
	got, err = r.GetOrderByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderCancelled, got.Status)
	assert.Equal(t, "T1", got.TrackingID)

	err = r.UpdateOrderStatus(ctx, "1", entities.OrderConfirmed, time.Now())
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	assert.ErrorIs(t, r.UpdateOrderStatus(ctx, "404", entities.OrderCancelled, time.Now()), entities.ErrOrderNotFound)

	latest, err := r.LatestOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "2", latest[0].ID)

	all, err := r.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemorySlotRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemorySlotRepo()

	require.NoError(t, r.BookSlot(ctx, "s", 2))
	require.NoError(t, r.BookSlot(ctx, "s", 2))
	assert.ErrorIs(t, r.BookSlot(ctx, "s", 2), entities.ErrTimeSlotUnavailable)

	counts, err := r.BookedCounts(ctx, []string{"s", "other"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s": 2, "other": 0}, counts)

	require.NoError(t, r.ReleaseSlot(ctx, "s"))
	require.NoError(t, r.BookSlot(ctx, "s", 2))

	require.NoError(t, r.ReleaseSlot(ctx, "never-booked"))
	counts, err = r.BookedCounts(ctx, []string{"never-booked"})
	require.NoError(t, err)
	assert.Zero(t, counts["never-booked"])
}
