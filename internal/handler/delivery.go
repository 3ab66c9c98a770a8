package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DeliveryService interface {
	DeliveryOptions() []entities.DeliveryOption
	DeliveryOption(id string) (entities.DeliveryOption, error)
	EstimateDeliveryFee(address *entities.Address, option entities.DeliveryOption) int
	GetTimeSlots(ctx context.Context, date time.Time) ([]entities.TimeSlot, error)
}

type AddressGetter interface {
	GetAddress(ctx context.Context, id string) (entities.Address, error)
}

type DeliveryHandler struct {
	responder
	validate  *validator.Validate
	svc       DeliveryService
	addresses AddressGetter
}

func NewDeliveryHandler(logger *slog.Logger, translator Translator, svc DeliveryService, addresses AddressGetter) *DeliveryHandler {
	return &DeliveryHandler{
		responder: responder{logger: logger.With(slog.String("handler", "delivery")), translator: translator},
		validate:  utils.NewValidator(),
		svc:       svc,
		addresses: addresses,
	}
}

func (h *DeliveryHandler) Init(r chi.Router) {
	r.Get("/delivery-options", h.ListDeliveryOptions)
	r.Get("/delivery-options/{id}/fee", h.EstimateDeliveryFee)
	r.Get("/time-slots", h.GetTimeSlots)
}

// ListDeliveryOptions returns the delivery methods.
// @Summary      List delivery options
// @Tags         delivery
// @Produce      json
// @Success      200  {array}   DeliveryOption
// @Router       /delivery-options [get]
func (h *DeliveryHandler) ListDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	options := h.svc.DeliveryOptions()
	res := make([]DeliveryOption, len(options))
	for i, o := range options {
		res[i] = DeliveryOptionEntityToJSON(o)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// EstimateDeliveryFee returns the fee of a delivery option for an address.
// @Summary      Estimate delivery fee
// @Tags         delivery
// @Produce      json
// @Param        id          path      string  true   "Delivery option ID"
// @Param        address_id  query     string  false  "Address ID"
// @Success      200  {object}  DeliveryFee
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /delivery-options/{id}/fee [get]
func (h *DeliveryHandler) EstimateDeliveryFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	option, err := h.svc.DeliveryOption(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to get delivery option")
		return
	}

	res := DeliveryFee{OptionID: option.ID}
	var address *entities.Address
	if id := r.URL.Query().Get("address_id"); id != "" {
		a, err := h.addresses.GetAddress(ctx, id)
		if err != nil {
			h.writeError(w, r, err, "failed to get address")
			return
		}
		address = &a
		res.AddressID = a.ID
	}

	res.Fee = h.svc.EstimateDeliveryFee(address, option)
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetTimeSlots returns the delivery windows of a day; today when date is omitted.
// @Summary      List time slots
// @Tags         delivery
// @Produce      json
// @Param        date  query     string  false  "Day in YYYY-MM-DD"
// @Success      200   {array}   TimeSlot
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Router       /time-slots [get]
func (h *DeliveryHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		if err := h.validate.Var(raw, "datetime="+service.DateLayout); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
		date, _ = time.ParseInLocation(service.DateLayout, raw, time.Local)
	}

	slots, err := h.svc.GetTimeSlots(ctx, date)
	if err != nil {
		h.writeError(w, r, err, "failed to get time slots")
		return
	}

	res := make([]TimeSlot, len(slots))
	for i, s := range slots {
		res[i] = TimeSlotEntityToJSON(s)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
