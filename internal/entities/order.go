package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

type Order struct {
	ID         string
	TrackingID string

	Items []CartItem

	// nil when checkout did not collect one
	Address        *Address
	DeliveryOption DeliveryOption
	TimeSlot       *TimeSlot

	PaymentMethod PaymentMethod
	Subtotal      int
	DeliveryFee   int
	Total         int
	Contactless   bool
	Notes         string

	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDraft is everything checkout collects before an order exists.
type OrderDraft struct {
	Items          []CartItem
	Address        *Address
	DeliveryOption DeliveryOption
	TimeSlot       *TimeSlot
	PaymentMethod  PaymentMethod
	Contactless    bool
	Notes          string
}

func Subtotal(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Total()
	}
	return total
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Address{})
	gob.Register(DeliveryOption{})
	gob.Register(TimeSlot{})
	gob.Register(CartItem{})
}
