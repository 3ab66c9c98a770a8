package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryService_EstimateDeliveryFee(t *testing.T) {
	svc := service.NewDeliveryService(discardLogger(), repo.NewMemorySlotRepo(), 2)
	addr := catalog.SeedAddresses()[0]

	want := map[string]int{
		entities.DeliverySameDay:   25,
		entities.DeliveryExpress:   35,
		entities.DeliveryScheduled: 15,
		entities.DeliveryPickup:    0,
	}
	for _, opt := range svc.DeliveryOptions() {
		assert.Equal(t, want[opt.ID], svc.EstimateDeliveryFee(&addr, opt), opt.ID)
		assert.Equal(t, want[opt.ID], svc.EstimateDeliveryFee(nil, opt), opt.ID)
	}
}

func TestDeliveryService_GetTimeSlots(t *testing.T) {
	ctx := context.Background()
	svc := service.NewDeliveryService(discardLogger(), repo.NewMemorySlotRepo(), 2)

	t.Run("future day", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, 1)
		slots, err := svc.GetTimeSlots(ctx, date)
		require.NoError(t, err)
		require.Len(t, slots, 6)

		assert.Equal(t, "09:00 - 11:00", slots[0].Label)
		assert.Equal(t, "19:00 - 21:00", slots[5].Label)
		assert.Equal(t, date.Format(service.DateLayout)+"_09:00", slots[0].ID)
		for _, sl := range slots {
			assert.True(t, sl.Available, sl.ID)
			assert.Equal(t, 2, sl.Remaining, sl.ID)
		}
	})

	t.Run("past day", func(t *testing.T) {
		slots, err := svc.GetTimeSlots(ctx, time.Now().AddDate(0, 0, -1))
		require.NoError(t, err)
		for _, sl := range slots {
			assert.False(t, sl.Available, sl.ID)
		}
	})
}

func TestDeliveryService_BookTimeSlot(t *testing.T) {
	ctx := context.Background()
	svc := service.NewDeliveryService(discardLogger(), repo.NewMemorySlotRepo(), 2)

	slots, err := svc.GetTimeSlots(ctx, time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	id := slots[1].ID

	require.NoError(t, svc.BookTimeSlot(ctx, id))
	require.NoError(t, svc.BookTimeSlot(ctx, id))
	assert.ErrorIs(t, svc.BookTimeSlot(ctx, id), entities.ErrTimeSlotUnavailable)

	sl, err := svc.TimeSlot(ctx, id)
	require.NoError(t, err)
	assert.False(t, sl.Available)
	assert.Zero(t, sl.Remaining)

	require.NoError(t, svc.ReleaseTimeSlot(ctx, id))

	sl, err = svc.TimeSlot(ctx, id)
	require.NoError(t, err)
	assert.True(t, sl.Available)
	assert.Equal(t, 1, sl.Remaining)
}

func TestDeliveryService_TimeSlotErrors(t *testing.T) {
	ctx := context.Background()
	svc := service.NewDeliveryService(discardLogger(), repo.NewMemorySlotRepo(), 2)

	testCases := []struct {
		name string
		id   string
	}{
		{name: "garbage", id: "tomorrow"},
		{name: "bad time", id: "2030-01-01_25:00"},
		{name: "not a slot start", id: "2030-01-01_10:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.TimeSlot(ctx, tc.id)
			assert.ErrorIs(t, err, entities.ErrTimeSlotUnavailable)
		})
	}

	past := time.Now().AddDate(0, 0, -1).Format(service.DateLayout) + "_09:00"
	assert.ErrorIs(t, svc.BookTimeSlot(ctx, past), entities.ErrTimeSlotUnavailable)
}
