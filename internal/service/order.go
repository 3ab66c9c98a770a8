package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/trm"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	// SaveOrder is idempotent per order id
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByTrackingID(ctx context.Context, trackingID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, updatedAt time.Time) error
	ListOrders(ctx context.Context) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

type DeliveryPlanner interface {
	EstimateDeliveryFee(address *entities.Address, option entities.DeliveryOption) int
	BookTimeSlot(ctx context.Context, slotID string) error
	ReleaseTimeSlot(ctx context.Context, slotID string) error
}

type orderService struct {
	// mu serializes status changes so a slot is released at most once.
	mu sync.Mutex

	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	events    EventPublisher
	delivery  DeliveryPlanner
	strict    bool
	now       func() time.Time
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cache Cache,
	events EventPublisher,
	delivery DeliveryPlanner,
	strict bool,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		events:    events,
		delivery:  delivery,
		strict:    strict,
		now:       time.Now,
	}
}

// CreateOrder prices the draft and stores it as a pending order. The draft is not
// validated; checkout guards are responsible for that.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	now := s.now()
	subtotal := entities.Subtotal(draft.Items)
	fee := s.delivery.EstimateDeliveryFee(draft.Address, draft.DeliveryOption)

	order := entities.Order{
		ID:             newOrderID(),
		TrackingID:     newTrackingID(),
		Items:          draft.Items,
		Address:        draft.Address,
		DeliveryOption: draft.DeliveryOption,
		TimeSlot:       draft.TimeSlot,
		PaymentMethod:  draft.PaymentMethod,
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Total:          subtotal + fee,
		Contactless:    draft.Contactless,
		Notes:          draft.Notes,
		Status:         entities.OrderPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if order.TimeSlot != nil {
				if err := s.delivery.BookTimeSlot(ctx, order.TimeSlot.ID); err != nil {
					return fmt.Errorf("failed to book time slot: %w", err)
				}
			}
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			return nil
		})
	}

	if err := utils.Retry(retryConfig, fn, entities.ErrTimeSlotUnavailable); err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("tracking_id", order.TrackingID),
		slog.Int("total", order.Total),
	)

	s.cacheOrder(order)
	s.publish(ctx, entities.EventOrderCreated, order)
	return order, nil
}

// UpdateOrderStatus moves the order to status. Cancelled orders stay cancelled and
// give back their time slot. In lenient mode an unknown id returns a zero order.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, s.notFound(err, id)
	}
	if order.Status == status {
		return order, nil
	}
	if order.Status == entities.OrderCancelled {
		return entities.Order{}, fmt.Errorf("%w: order %s is cancelled", entities.ErrInvalidStatus, id)
	}

	now := s.now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateOrderStatus(ctx, id, status, now); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		if status == entities.OrderCancelled && order.TimeSlot != nil {
			if err := s.delivery.ReleaseTimeSlot(ctx, order.TimeSlot.ID); err != nil {
				return fmt.Errorf("failed to release time slot: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order status changed",
		slog.String("order_id", id),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)),
	)

	order.Status = status
	order.UpdatedAt = now
	s.cacheOrder(order)
	s.publish(ctx, entities.EventOrderStatusChanged, order)
	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.UpdateOrderStatus(ctx, id, entities.OrderCancelled)
}

// Reorder places a new pending order with the items, address, delivery option and
// payment of an earlier one. The old time slot is not carried over.
func (s *orderService) Reorder(ctx context.Context, id string) (entities.Order, error) {
	src, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, s.notFound(err, id)
	}

	draft := entities.OrderDraft{
		Items:          append([]entities.CartItem(nil), src.Items...),
		Address:        src.Address,
		DeliveryOption: src.DeliveryOption,
		PaymentMethod:  src.PaymentMethod,
		Contactless:    src.Contactless,
		Notes:          src.Notes,
	}
	return s.CreateOrder(ctx, draft)
}

// TrackOrder looks an order up by its customer facing tracking id.
func (s *orderService) TrackOrder(ctx context.Context, trackingID string) (entities.Order, error) {
	if data, ok := s.cache.Get(trackingID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("tracking_id", trackingID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByTrackingID(ctx, trackingID)
		return err
	}
	if err := utils.Retry(retryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

// WarmUpCache loads the latest count orders into the tracking cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, o := range orders {
		s.cacheOrder(o)
	}
	s.logger.Info("tracking cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(o entities.Order) {
	data, err := o.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", o.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(o.TrackingID, data)
}

// publish never fails the caller; the order is already stored.
func (s *orderService) publish(ctx context.Context, eventType string, o entities.Order) {
	event := entities.NewOrderEvent(eventType, o, s.now())
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", o.ID),
			slog.Any("error", err),
		)
	}
}

func (s *orderService) notFound(err error, id string) error {
	if !errors.Is(err, entities.ErrOrderNotFound) {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if s.strict {
		return err
	}
	s.logger.Debug("ignoring unknown order", slog.String("id", id))
	return nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newTrackingID() string {
	b := make([]byte, 10)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = trackingAlphabet[int(b[i])%len(trackingAlphabet)]
	}
	return "TRK" + string(b)
}
