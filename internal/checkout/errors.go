package checkout

// GuardError is a user facing reason for a blocked transition. Key is a message
// catalog key.
type GuardError struct {
	Key string
}

func (e GuardError) Error() string {
	return e.Key
}

var (
	ErrCartEmpty              = GuardError{Key: "checkout.cart_empty"}
	ErrAddressRequired        = GuardError{Key: "checkout.address_required"}
	ErrDeliveryOptionRequired = GuardError{Key: "checkout.delivery_option_required"}
	ErrTimeSlotRequired       = GuardError{Key: "checkout.time_slot_required"}
	ErrNoPreviousStep         = GuardError{Key: "checkout.no_previous_step"}
	ErrPlaceOrderRequired     = GuardError{Key: "checkout.place_order_required"}
	ErrNotAtPayment           = GuardError{Key: "checkout.not_at_payment"}
	ErrCompleted              = GuardError{Key: "checkout.completed"}
)
