// Package checkout implements the cart → delivery → payment → confirmation flow.
//
// A Session is owned by one checkout and serializes every call on its own lock.
// Transitions move one step at a time; confirmation is terminal.
package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
)

type Step string

const (
	StepCart         Step = "cart"
	StepDelivery     Step = "delivery"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
}

type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	step      Step
	cart      *Cart

	address     *entities.Address
	option      *entities.DeliveryOption
	slot        *entities.TimeSlot
	payment     entities.PaymentMethod
	contactless bool
	notes       string

	order         *entities.Order
	trackingReady bool
	trackingDelay time.Duration
	onTracking    func(entities.Order)
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	ID             string
	Step           Step
	Items          []entities.CartItem
	ItemCount      int
	Subtotal       int
	Address        *entities.Address
	DeliveryOption *entities.DeliveryOption
	TimeSlot       *entities.TimeSlot
	PaymentMethod  entities.PaymentMethod
	Contactless    bool
	Notes          string
	Order          *entities.Order
	TrackingReady  bool
	CreatedAt      time.Time
}

// NewSession starts a checkout at the cart step. After an order is placed the session
// switches to order tracking once trackingDelay elapses and calls onTracking (may be nil).
func NewSession(id string, trackingDelay time.Duration, onTracking func(entities.Order)) *Session {
	return &Session{
		id:            id,
		createdAt:     time.Now(),
		step:          StepCart,
		cart:          NewCart(),
		payment:       entities.PaymentCash,
		trackingDelay: trackingDelay,
		onTracking:    onTracking,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) AddItem(p entities.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.cart.AddItem(p, quantity)
	return nil
}

func (s *Session) UpdateQuantity(productID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.cart.UpdateQuantity(productID, delta)
	return nil
}

func (s *Session) RemoveItem(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.cart.RemoveItem(productID)
	return nil
}

func (s *Session) SelectAddress(a entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.address = &a
	return nil
}

func (s *Session) SelectDeliveryOption(o entities.DeliveryOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.option = &o
	return nil
}

func (s *Session) SelectTimeSlot(slot entities.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.slot = &slot
	return nil
}

func (s *Session) SetPayment(method entities.PaymentMethod, contactless bool, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepConfirmation {
		return ErrCompleted
	}
	s.payment = method
	s.contactless = contactless
	s.notes = notes
	return nil
}

// Continue advances one step. A failed guard leaves the step unchanged and reports
// only the first failing condition.
func (s *Session) Continue() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepCart:
		if s.cart.IsEmpty() {
			return s.step, ErrCartEmpty
		}
		s.step = StepDelivery
	case StepDelivery:
		if err := s.deliveryGuard(); err != nil {
			return s.step, err
		}
		s.step = StepPayment
	case StepPayment:
		return s.step, ErrPlaceOrderRequired
	case StepConfirmation:
		return s.step, ErrCompleted
	}
	return s.step, nil
}

func (s *Session) Back() (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepDelivery:
		s.step = StepCart
	case StepPayment:
		s.step = StepDelivery
	case StepConfirmation:
		return s.step, ErrCompleted
	default:
		return s.step, ErrNoPreviousStep
	}
	return s.step, nil
}

// PlaceOrder checks the cart and delivery guards again, creates the order from the
// collected state, empties the cart and moves to confirmation.
func (s *Session) PlaceOrder(ctx context.Context, creator OrderCreator) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepConfirmation:
		return entities.Order{}, ErrCompleted
	case StepPayment:
	default:
		return entities.Order{}, ErrNotAtPayment
	}

	// the cart and selections stay editable after the guarded steps passed
	if s.cart.IsEmpty() {
		return entities.Order{}, ErrCartEmpty
	}
	if err := s.deliveryGuard(); err != nil {
		return entities.Order{}, err
	}

	order, err := creator.CreateOrder(ctx, s.draft())
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.order = &order
	s.cart.Clear()
	s.step = StepConfirmation
	time.AfterFunc(s.trackingDelay, s.showTracking)

	return order, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.id,
		Step:          s.step,
		Items:         s.cart.Items(),
		ItemCount:     s.cart.Count(),
		Subtotal:      s.cart.Subtotal(),
		PaymentMethod: s.payment,
		Contactless:   s.contactless,
		Notes:         s.notes,
		TrackingReady: s.trackingReady,
		CreatedAt:     s.createdAt,
	}
	if s.address != nil {
		a := *s.address
		snap.Address = &a
	}
	if s.option != nil {
		o := *s.option
		snap.DeliveryOption = &o
	}
	if s.slot != nil {
		sl := *s.slot
		snap.TimeSlot = &sl
	}
	if s.order != nil {
		o := *s.order
		snap.Order = &o
	}
	return snap
}

func (s *Session) deliveryGuard() error {
	if s.address == nil {
		return ErrAddressRequired
	}
	if s.option == nil {
		return ErrDeliveryOptionRequired
	}
	if s.option.RequiresTimeSlot() && s.slot == nil {
		return ErrTimeSlotRequired
	}
	return nil
}

func (s *Session) draft() entities.OrderDraft {
	d := entities.OrderDraft{
		Items:         s.cart.Items(),
		PaymentMethod: s.payment,
		Contactless:   s.contactless,
		Notes:         s.notes,
	}
	if s.address != nil {
		a := *s.address
		d.Address = &a
	}
	if s.option != nil {
		d.DeliveryOption = *s.option
		// a slot picked for another option is not booked
		if s.option.RequiresTimeSlot() && s.slot != nil {
			sl := *s.slot
			d.TimeSlot = &sl
		}
	}
	return d
}

func (s *Session) showTracking() {
	s.mu.Lock()
	s.trackingReady = true
	order := *s.order
	hook := s.onTracking
	s.mu.Unlock()

	if hook != nil {
		hook(order)
	}
}
