package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/events"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/cache"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowOrderRepo widens the window between reading an order and writing its status.
type slowOrderRepo struct {
	*repo.MemoryOrderRepo
}

func (r slowOrderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	time.Sleep(time.Millisecond)
	return r.MemoryOrderRepo.GetOrderByID(ctx, id)
}

func TestOrderService_ConcurrentCancelReleasesSlotOnce(t *testing.T) {
	ctx := context.Background()
	slotID := time.Now().AddDate(0, 0, 1).Format(service.DateLayout) + "_09:00"

	for range 20 {
		slots := repo.NewMemorySlotRepo()
		delivery := service.NewDeliveryService(discardLogger(), slots, 2)
		orders := service.NewOrderService(
			discardLogger(),
			trm.NewNopManager(),
			slowOrderRepo{repo.NewMemoryOrderRepo()},
			cache.NewLRUCache[[]byte](10, time.Minute),
			events.NopPublisher{},
			delivery,
			false,
		)

		draft := sampleDraft(t, "scheduled")
		draft.TimeSlot = &entities.TimeSlot{ID: slotID}

		first, err := orders.CreateOrder(ctx, draft)
		require.NoError(t, err)
		_, err = orders.CreateOrder(ctx, draft)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 4 {
			wg.Go(func() {
				orders.CancelOrder(ctx, first.ID)
			})
		}
		wg.Go(func() {
			orders.UpdateOrderStatus(ctx, first.ID, entities.OrderConfirmed)
		})
		wg.Wait()

		got, err := orders.GetOrder(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderCancelled, got.Status)

		counts, err := slots.BookedCounts(ctx, []string{slotID})
		require.NoError(t, err)
		assert.Equal(t, 1, counts[slotID])
	}
}
