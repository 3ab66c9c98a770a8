package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
)

type Order struct {
	ID             string         `db:"id"`
	TrackingID     string         `db:"tracking_id"`
	Address        sql.NullString `db:"address"`
	DeliveryOption string         `db:"delivery_option"`
	TimeSlot       sql.NullString `db:"time_slot"`
	PaymentMethod  string         `db:"payment_method"`
	Subtotal       int            `db:"subtotal"`
	DeliveryFee    int            `db:"delivery_fee"`
	Total          int            `db:"total"`
	Contactless    bool           `db:"contactless"`
	Notes          sql.NullString `db:"notes"`
	Status         string         `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID   string         `db:"order_id"`
	ProductID int            `db:"product_id"`
	NameAr    string         `db:"name_ar"`
	NameEn    string         `db:"name_en"`
	Price     int            `db:"price"`
	Image     sql.NullString `db:"image"`
	Quantity  int            `db:"quantity"`
}

var orderColumns = []string{
	"id", "tracking_id", "address", "delivery_option", "time_slot",
	"payment_method", "subtotal", "delivery_fee", "total",
	"contactless", "notes", "status", "created_at", "updated_at",
}

var itemColumns = []string{
	"order_id", "product_id", "name_ar", "name_en", "price", "image", "quantity",
}

func ItemToEntity(i Item) entities.CartItem {
	return entities.CartItem{
		ProductID: i.ProductID,
		Name:      entities.Text{Ar: i.NameAr, En: i.NameEn},
		Price:     i.Price,
		Image:     nullStringToString(i.Image),
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	order := entities.Order{
		ID:            o.ID,
		TrackingID:    o.TrackingID,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		Contactless:   o.Contactless,
		Notes:         nullStringToString(o.Notes),
		Status:        entities.OrderStatus(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if err := json.Unmarshal([]byte(o.DeliveryOption), &order.DeliveryOption); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode delivery option: %w", err)
	}
	if o.Address.Valid {
		order.Address = new(entities.Address)
		if err := json.Unmarshal([]byte(o.Address.String), order.Address); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode address: %w", err)
		}
	}
	if o.TimeSlot.Valid {
		order.TimeSlot = new(entities.TimeSlot)
		if err := json.Unmarshal([]byte(o.TimeSlot.String), order.TimeSlot); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode time slot: %w", err)
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order, nil
}

func OrderFromEntity(o entities.Order) (Order, error) {
	option, err := json.Marshal(o.DeliveryOption)
	if err != nil {
		return Order{}, fmt.Errorf("failed to encode delivery option: %w", err)
	}
	row := Order{
		ID:             o.ID,
		TrackingID:     o.TrackingID,
		DeliveryOption: string(option),
		PaymentMethod:  string(o.PaymentMethod),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.Total,
		Contactless:    o.Contactless,
		Notes:          nullString(o.Notes),
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.Address != nil {
		data, err := json.Marshal(o.Address)
		if err != nil {
			return Order{}, fmt.Errorf("failed to encode address: %w", err)
		}
		row.Address = nullString(string(data))
	}
	if o.TimeSlot != nil {
		data, err := json.Marshal(o.TimeSlot)
		if err != nil {
			return Order{}, fmt.Errorf("failed to encode time slot: %w", err)
		}
		row.TimeSlot = nullString(string(data))
	}
	return row, nil
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
