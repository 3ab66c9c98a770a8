package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/checkout"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/google/uuid"
)

type SessionStore interface {
	Get(key string) (*checkout.Session, bool)
	Set(key string, value *checkout.Session)
}

type AddressBook interface {
	GetAddress(ctx context.Context, id string) (entities.Address, error)
	DefaultAddress(ctx context.Context) (entities.Address, bool, error)
}

type DeliveryCatalog interface {
	DeliveryOption(id string) (entities.DeliveryOption, error)
	TimeSlot(ctx context.Context, slotID string) (entities.TimeSlot, error)
	EstimateDeliveryFee(address *entities.Address, option entities.DeliveryOption) int
}

type ProductCatalog interface {
	Product(id int) (entities.Product, error)
}

// Summary is a session snapshot with the delivery fee and grand total applied.
type Summary struct {
	checkout.Snapshot
	DeliveryFee int
	Total       int
}

type checkoutService struct {
	logger        *slog.Logger
	sessions      SessionStore
	addresses     AddressBook
	delivery      DeliveryCatalog
	products      ProductCatalog
	orders        checkout.OrderCreator
	trackingDelay time.Duration
	onTracking    func(entities.Order)
}

func NewCheckoutService(
	logger *slog.Logger,
	sessions SessionStore,
	addresses AddressBook,
	delivery DeliveryCatalog,
	products ProductCatalog,
	orders checkout.OrderCreator,
	trackingDelay time.Duration,
) *checkoutService {
	s := &checkoutService{
		logger:        logger.With(slog.String("service", "checkout")),
		sessions:      sessions,
		addresses:     addresses,
		delivery:      delivery,
		products:      products,
		orders:        orders,
		trackingDelay: trackingDelay,
	}
	s.onTracking = func(o entities.Order) {
		s.logger.Debug("tracking view ready", slog.String("order_id", o.ID), slog.String("tracking_id", o.TrackingID))
	}
	return s
}

// StartSession opens a checkout at the cart step with the default address preselected.
func (s *checkoutService) StartSession(ctx context.Context) (Summary, error) {
	sess := checkout.NewSession(uuid.NewString(), s.trackingDelay, s.onTracking)

	addr, ok, err := s.addresses.DefaultAddress(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get default address: %w", err)
	}
	if ok {
		if err := sess.SelectAddress(addr); err != nil {
			return Summary{}, err
		}
	}

	s.sessions.Set(sess.ID(), sess)
	s.logger.Debug("checkout started", slog.String("session", sess.ID()))
	return s.summary(sess), nil
}

func (s *checkoutService) Summary(_ context.Context, sessionID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) AddItem(_ context.Context, sessionID string, productID, quantity int) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	p, err := s.products.Product(productID)
	if err != nil {
		return Summary{}, err
	}
	if err := sess.AddItem(p, quantity); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) UpdateQuantity(_ context.Context, sessionID string, productID, delta int) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	if err := sess.UpdateQuantity(productID, delta); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) SelectAddress(ctx context.Context, sessionID, addressID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	addr, err := s.addresses.GetAddress(ctx, addressID)
	if err != nil {
		return Summary{}, err
	}
	if err := sess.SelectAddress(addr); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) SelectDeliveryOption(_ context.Context, sessionID, optionID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	opt, err := s.delivery.DeliveryOption(optionID)
	if err != nil {
		return Summary{}, err
	}
	if err := sess.SelectDeliveryOption(opt); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

// SelectTimeSlot accepts only slots that are currently available.
func (s *checkoutService) SelectTimeSlot(ctx context.Context, sessionID, slotID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	slot, err := s.delivery.TimeSlot(ctx, slotID)
	if err != nil {
		return Summary{}, err
	}
	if !slot.Available {
		return Summary{}, entities.ErrTimeSlotUnavailable
	}
	if err := sess.SelectTimeSlot(slot); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) SetPayment(_ context.Context, sessionID string, method entities.PaymentMethod, contactless bool, notes string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	if err := sess.SetPayment(method, contactless, notes); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) Continue(_ context.Context, sessionID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	if _, err := sess.Continue(); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) Back(_ context.Context, sessionID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	if _, err := sess.Back(); err != nil {
		return Summary{}, err
	}
	return s.summary(sess), nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string) (Summary, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Summary{}, err
	}
	order, err := sess.PlaceOrder(ctx, s.orders)
	if err != nil {
		return Summary{}, err
	}
	s.logger.Info("checkout completed", slog.String("session", sessionID), slog.String("order_id", order.ID))
	return s.summary(sess), nil
}

func (s *checkoutService) session(id string) (*checkout.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return sess, nil
}

func (s *checkoutService) summary(sess *checkout.Session) Summary {
	snap := sess.Snapshot()
	sum := Summary{Snapshot: snap, Total: snap.Subtotal}

	if snap.Order != nil {
		sum.DeliveryFee = snap.Order.DeliveryFee
		sum.Total = snap.Order.Total
		return sum
	}
	if snap.DeliveryOption != nil {
		sum.DeliveryFee = s.delivery.EstimateDeliveryFee(snap.Address, *snap.DeliveryOption)
		sum.Total = snap.Subtotal + sum.DeliveryFee
	}
	return sum
}
