package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/checkout"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/cache"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutDeps struct {
	orders    *repo.MemoryOrderRepo
	slots     *repo.MemorySlotRepo
	sessions  service.SessionStore
	addresses service.AddressBook
	delivery  service.DeliveryCatalog
	creator   checkout.OrderCreator
}

func newCheckoutDeps(t *testing.T, addresses []entities.Address) checkoutDeps {
	t.Helper()
	logger := discardLogger()

	events := mocks.NewMockEventPublisher(t)
	events.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	d := checkoutDeps{
		orders:    repo.NewMemoryOrderRepo(),
		slots:     repo.NewMemorySlotRepo(),
		sessions:  cache.NewLRUCache[*checkout.Session](10, time.Minute),
		addresses: service.NewAddressService(logger, repo.NewMemoryAddressRepo(addresses), false),
	}
	deliverySvc := service.NewDeliveryService(logger, d.slots, 1)
	d.delivery = deliverySvc
	d.creator = service.NewOrderService(logger, trm.NewNopManager(), d.orders, cache.NewLRUCache[[]byte](10, time.Minute), events, deliverySvc, false)
	return d
}

func TestCheckoutService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("default address preselected", func(t *testing.T) {
		d := newCheckoutDeps(t, catalog.SeedAddresses())
		svc := service.NewCheckoutService(discardLogger(), d.sessions, d.addresses, d.delivery, catalog.Static{}, d.creator, 50*time.Millisecond)

		sum, err := svc.StartSession(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, sum.ID)
		assert.Equal(t, checkout.StepCart, sum.Step)
		require.NotNil(t, sum.Address)
		assert.Equal(t, "addr_001", sum.Address.ID)
	})

	t.Run("empty address book", func(t *testing.T) {
		d := newCheckoutDeps(t, nil)
		svc := service.NewCheckoutService(discardLogger(), d.sessions, d.addresses, d.delivery, catalog.Static{}, d.creator, 50*time.Millisecond)

		sum, err := svc.StartSession(ctx)
		require.NoError(t, err)
		assert.Nil(t, sum.Address)
	})
}

func TestCheckoutService_UnknownSession(t *testing.T) {
	d := newCheckoutDeps(t, catalog.SeedAddresses())
	svc := service.NewCheckoutService(discardLogger(), d.sessions, d.addresses, d.delivery, catalog.Static{}, d.creator, 50*time.Millisecond)

	_, err := svc.Summary(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	_, err = svc.Continue(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestCheckoutService_Lookups(t *testing.T) {
	ctx := context.Background()
	d := newCheckoutDeps(t, catalog.SeedAddresses())
	svc := service.NewCheckoutService(discardLogger(), d.sessions, d.addresses, d.delivery, catalog.Static{}, d.creator, 50*time.Millisecond)

	sum, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, sum.ID, 999, 1)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)

	_, err = svc.SelectAddress(ctx, sum.ID, "missing")
	assert.ErrorIs(t, err, entities.ErrAddressNotFound)

	_, err = svc.SelectDeliveryOption(ctx, sum.ID, "drone")
	assert.ErrorIs(t, err, entities.ErrDeliveryOptionNotFound)

	past := time.Now().AddDate(0, 0, -1).Format(service.DateLayout) + "_09:00"
	_, err = svc.SelectTimeSlot(ctx, sum.ID, past)
	assert.ErrorIs(t, err, entities.ErrTimeSlotUnavailable)
}

func TestCheckoutService_Flow(t *testing.T) {
	ctx := context.Background()
	d := newCheckoutDeps(t, catalog.SeedAddresses())
	svc := service.NewCheckoutService(discardLogger(), d.sessions, d.addresses, d.delivery, catalog.Static{}, d.creator, 50*time.Millisecond)

	sum, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := sum.ID

	_, err = svc.Continue(ctx, id)
	assert.ErrorIs(t, err, checkout.ErrCartEmpty)

	sum, err = svc.AddItem(ctx, id, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 30, sum.Subtotal)
	assert.Equal(t, 30, sum.Total)

	sum, err = svc.AddItem(ctx, id, 1, 1)
	require.NoError(t, err)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, 3, sum.Items[0].Quantity)

	sum, err = svc.UpdateQuantity(ctx, id, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Items[0].Quantity)

	sum, err = svc.Continue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepDelivery, sum.Step)

	_, err = svc.Continue(ctx, id)
	assert.ErrorIs(t, err, checkout.ErrDeliveryOptionRequired)

	sum, err = svc.SelectDeliveryOption(ctx, id, entities.DeliveryScheduled)
	require.NoError(t, err)
	assert.Equal(t, 15, sum.DeliveryFee)
	assert.Equal(t, 45, sum.Total)

	_, err = svc.Continue(ctx, id)
	assert.ErrorIs(t, err, checkout.ErrTimeSlotRequired)

	slots, err := service.NewDeliveryService(discardLogger(), d.slots, 1).GetTimeSlots(ctx, time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
	slotID := slots[0].ID

	_, err = svc.SelectTimeSlot(ctx, id, slotID)
	require.NoError(t, err)

	sum, err = svc.Continue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepPayment, sum.Step)

	sum, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepDelivery, sum.Step)

	_, err = svc.Continue(ctx, id)
	require.NoError(t, err)

	_, err = svc.SetPayment(ctx, id, entities.PaymentCard, true, "leave at door")
	require.NoError(t, err)

	sum, err = svc.PlaceOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepConfirmation, sum.Step)
	assert.Empty(t, sum.Items)
	require.NotNil(t, sum.Order)
	assert.Equal(t, 45, sum.Order.Total)
	assert.Equal(t, 45, sum.Total)
	assert.Equal(t, entities.PaymentCard, sum.Order.PaymentMethod)
	assert.True(t, sum.Order.Contactless)

	stored, err := d.orders.GetOrderByID(ctx, sum.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, sum.Order.TrackingID, stored.TrackingID)

	slot, err := d.delivery.TimeSlot(ctx, slotID)
	require.NoError(t, err)
	assert.False(t, slot.Available)

	_, err = svc.Back(ctx, id)
	assert.ErrorIs(t, err, checkout.ErrCompleted)

	assert.Eventually(t, func() bool {
		sum, err := svc.Summary(ctx, id)
		return err == nil && sum.TrackingReady
	}, time.Second, 10*time.Millisecond)
}
