package entities

import "time"

const (
	DeliverySameDay   = "same_day"
	DeliveryExpress   = "express"
	DeliveryScheduled = "scheduled"
	DeliveryPickup    = "pickup"
)

type DeliveryOption struct {
	ID            string
	Name          Text
	Description   Text
	EstimatedTime Text
	Price         int
	Available     bool
}

// RequiresTimeSlot reports whether checkout must collect a time slot for the option.
func (o DeliveryOption) RequiresTimeSlot() bool {
	return o.ID == DeliveryScheduled
}

type TimeSlot struct {
	ID        string
	Date      time.Time
	Start     string
	End       string
	Label     string
	Available bool
	Remaining int
}
