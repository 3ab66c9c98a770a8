package entities

import "errors"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrAddressNotFound        = errors.New("address not found")
	ErrDeliveryOptionNotFound = errors.New("delivery option not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrTimeSlotUnavailable    = errors.New("time slot unavailable")
	ErrInvalidOrder           = errors.New("invalid order data")
	ErrInvalidStatus          = errors.New("invalid order status")
)

var ErrSessionNotFound = errors.New("checkout session not found")
