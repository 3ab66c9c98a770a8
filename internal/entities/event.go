package entities

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type       string
	OrderID    string
	TrackingID string
	Status     OrderStatus
	Total      int
	OccurredAt time.Time
}

func NewOrderEvent(eventType string, o Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    o.ID,
		TrackingID: o.TrackingID,
		Status:     o.Status,
		Total:      o.Total,
		OccurredAt: at,
	}
}
