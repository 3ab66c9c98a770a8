package handler

import (
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
)

// Text is a bilingual string
type Text struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Address is a saved delivery address
type Address struct {
	ID           string       `json:"id"`
	Title        Text         `json:"title"`
	Street       Text         `json:"street"`
	District     Text         `json:"district"`
	City         Text         `json:"city"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Phone        string       `json:"phone"`
	IsDefault    bool         `json:"is_default"`
	Instructions *Text        `json:"instructions,omitempty"`
}

// AddressRequest is the body of address create and update calls
type AddressRequest struct {
	Title        Text         `json:"title" validate:"required"`
	Street       Text         `json:"street" validate:"required"`
	District     Text         `json:"district"`
	City         Text         `json:"city" validate:"required"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	Phone        string       `json:"phone" validate:"required,e164"`
	IsDefault    bool         `json:"is_default"`
	Instructions *Text        `json:"instructions,omitempty" validate:"omitempty"`
}

// DeliveryOption is one of the fixed delivery methods
type DeliveryOption struct {
	ID            string `json:"id"`
	Name          Text   `json:"name"`
	Description   Text   `json:"description"`
	Price         int    `json:"price"`
	Available     bool   `json:"available"`
	EstimatedTime Text   `json:"estimated_time"`
}

type DeliveryFee struct {
	OptionID  string `json:"option_id"`
	AddressID string `json:"address_id,omitempty"`
	Fee       int    `json:"fee"`
}

// TimeSlot is a two hour delivery window
type TimeSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
}

type Product struct {
	ID                   int    `json:"id"`
	Name                 Text   `json:"name"`
	Category             Text   `json:"category"`
	Price                int    `json:"price"`
	Image                string `json:"image"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

type CartItem struct {
	ProductID int    `json:"product_id"`
	Name      Text   `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
}

// Order is a placed order
type Order struct {
	ID             string         `json:"id"`
	TrackingID     string         `json:"tracking_id"`
	Items          []CartItem     `json:"items"`
	Address        *Address       `json:"address,omitempty"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
	TimeSlot       *TimeSlot      `json:"time_slot,omitempty"`
	PaymentMethod  string         `json:"payment_method"`
	Subtotal       int            `json:"subtotal"`
	DeliveryFee    int            `json:"delivery_fee"`
	Total          int            `json:"total"`
	Contactless    bool           `json:"contactless"`
	Notes          string         `json:"notes,omitempty"`
	Status         string         `json:"status"`
	StatusLabel    string         `json:"status_label"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// CheckoutSummary is the state of a checkout session
type CheckoutSummary struct {
	ID             string          `json:"id"`
	Step           string          `json:"step"`
	Items          []CartItem      `json:"items"`
	ItemCount      int             `json:"item_count"`
	Subtotal       int             `json:"subtotal"`
	DeliveryFee    int             `json:"delivery_fee"`
	Total          int             `json:"total"`
	Address        *Address        `json:"address,omitempty"`
	DeliveryOption *DeliveryOption `json:"delivery_option,omitempty"`
	TimeSlot       *TimeSlot       `json:"time_slot,omitempty"`
	PaymentMethod  string          `json:"payment_method"`
	Contactless    bool            `json:"contactless"`
	Notes          string          `json:"notes,omitempty"`
	Order          *Order          `json:"order,omitempty"`
	TrackingReady  bool            `json:"tracking_ready"`
	Lang           string          `json:"lang"`
	Dir            string          `json:"dir"`
}

type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0,lte=99"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required,ne=0"`
}

type SelectAddressRequest struct {
	AddressID string `json:"address_id" validate:"required"`
}

type SelectDeliveryOptionRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}

type SelectTimeSlotRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
}

type PaymentRequest struct {
	Method      string `json:"method" validate:"required,oneof=cash card wallet"`
	Contactless bool   `json:"contactless"`
	Notes       string `json:"notes" validate:"max=500"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed preparing out_for_delivery delivered cancelled"`
}

// StatusUpdate is a Kafka message that moves an order to a new status
type StatusUpdate struct {
	OrderID string `json:"order_id" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=pending confirmed preparing out_for_delivery delivered cancelled"`
}

func TextToJSON(t entities.Text) Text {
	return Text{Ar: t.Ar, En: t.En}
}

func TextFromJSON(t Text) entities.Text {
	return entities.Text{Ar: t.Ar, En: t.En}
}

func AddressEntityToJSON(a entities.Address) Address {
	res := Address{
		ID:        a.ID,
		Title:     TextToJSON(a.Title),
		Street:    TextToJSON(a.Street),
		District:  TextToJSON(a.District),
		City:      TextToJSON(a.City),
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
	if a.Coordinates != nil {
		res.Coordinates = &Coordinates{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}
	if a.Instructions != nil {
		ins := TextToJSON(*a.Instructions)
		res.Instructions = &ins
	}
	return res
}

func AddressesEntityToJSON(list []entities.Address) []Address {
	res := make([]Address, len(list))
	for i, a := range list {
		res[i] = AddressEntityToJSON(a)
	}
	return res
}

func AddressRequestToFields(req AddressRequest) entities.AddressFields {
	f := entities.AddressFields{
		Title:     TextFromJSON(req.Title),
		Street:    TextFromJSON(req.Street),
		District:  TextFromJSON(req.District),
		City:      TextFromJSON(req.City),
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	}
	if req.Coordinates != nil {
		f.Coordinates = &entities.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	if req.Instructions != nil {
		ins := TextFromJSON(*req.Instructions)
		f.Instructions = &ins
	}
	return f
}

func DeliveryOptionEntityToJSON(o entities.DeliveryOption) DeliveryOption {
	return DeliveryOption{
		ID:            o.ID,
		Name:          TextToJSON(o.Name),
		Description:   TextToJSON(o.Description),
		Price:         o.Price,
		Available:     o.Available,
		EstimatedTime: TextToJSON(o.EstimatedTime),
	}
}

func TimeSlotEntityToJSON(s entities.TimeSlot) TimeSlot {
	return TimeSlot{
		ID:        s.ID,
		Date:      s.Date.Format(service.DateLayout),
		Start:     s.Start,
		End:       s.End,
		Label:     s.Label,
		Available: s.Available,
		Remaining: s.Remaining,
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:                   p.ID,
		Name:                 TextToJSON(p.Name),
		Category:             TextToJSON(p.Category),
		Price:                p.Price,
		Image:                p.Image,
		RequiresPrescription: p.RequiresPrescription,
	}
}

func CartItemsEntityToJSON(items []entities.CartItem) []CartItem {
	res := make([]CartItem, len(items))
	for i, it := range items {
		res[i] = CartItem{
			ProductID: it.ProductID,
			Name:      TextToJSON(it.Name),
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Total:     it.Total(),
		}
	}
	return res
}

func OrderEntityToJSON(o entities.Order, statusLabel string) Order {
	res := Order{
		ID:             o.ID,
		TrackingID:     o.TrackingID,
		Items:          CartItemsEntityToJSON(o.Items),
		DeliveryOption: DeliveryOptionEntityToJSON(o.DeliveryOption),
		PaymentMethod:  string(o.PaymentMethod),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.Total,
		Contactless:    o.Contactless,
		Notes:          o.Notes,
		Status:         string(o.Status),
		StatusLabel:    statusLabel,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.Address != nil {
		a := AddressEntityToJSON(*o.Address)
		res.Address = &a
	}
	if o.TimeSlot != nil {
		s := TimeSlotEntityToJSON(*o.TimeSlot)
		res.TimeSlot = &s
	}
	return res
}

func SummaryToJSON(s service.Summary, order *Order, lang, dir string) CheckoutSummary {
	res := CheckoutSummary{
		ID:            s.ID,
		Step:          string(s.Step),
		Items:         CartItemsEntityToJSON(s.Items),
		ItemCount:     s.ItemCount,
		Subtotal:      s.Subtotal,
		DeliveryFee:   s.DeliveryFee,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		Contactless:   s.Contactless,
		Notes:         s.Notes,
		Order:         order,
		TrackingReady: s.TrackingReady,
		Lang:          lang,
		Dir:           dir,
	}
	if s.Address != nil {
		a := AddressEntityToJSON(*s.Address)
		res.Address = &a
	}
	if s.DeliveryOption != nil {
		o := DeliveryOptionEntityToJSON(*s.DeliveryOption)
		res.DeliveryOption = &o
	}
	if s.TimeSlot != nil {
		sl := TimeSlotEntityToJSON(*s.TimeSlot)
		res.TimeSlot = &sl
	}
	return res
}
