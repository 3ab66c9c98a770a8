package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	StartSession(ctx context.Context) (service.Summary, error)
	Summary(ctx context.Context, sessionID string) (service.Summary, error)
	AddItem(ctx context.Context, sessionID string, productID, quantity int) (service.Summary, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, delta int) (service.Summary, error)
	SelectAddress(ctx context.Context, sessionID, addressID string) (service.Summary, error)
	SelectDeliveryOption(ctx context.Context, sessionID, optionID string) (service.Summary, error)
	SelectTimeSlot(ctx context.Context, sessionID, slotID string) (service.Summary, error)
	SetPayment(ctx context.Context, sessionID string, method entities.PaymentMethod, contactless bool, notes string) (service.Summary, error)
	Continue(ctx context.Context, sessionID string) (service.Summary, error)
	Back(ctx context.Context, sessionID string) (service.Summary, error)
	PlaceOrder(ctx context.Context, sessionID string) (service.Summary, error)
}

type CheckoutHandler struct {
	responder
	validate *validator.Validate
	svc      CheckoutService
}

func NewCheckoutHandler(logger *slog.Logger, translator Translator, svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		responder: responder{logger: logger.With(slog.String("handler", "checkout")), translator: translator},
		validate:  utils.NewValidator(),
		svc:       svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetSummary)
			r.Post("/items", h.AddItem)
			r.Patch("/items/{product_id}", h.UpdateQuantity)
			r.Put("/address", h.SelectAddress)
			r.Put("/delivery-option", h.SelectDeliveryOption)
			r.Put("/time-slot", h.SelectTimeSlot)
			r.Put("/payment", h.SetPayment)
			r.Post("/continue", h.Continue)
			r.Post("/back", h.Back)
			r.Post("/place-order", h.PlaceOrder)
		})
	})
}

// StartSession opens a checkout at the cart step.
// @Summary      Start checkout
// @Tags         checkout
// @Produce      json
// @Success      201  {object}  CheckoutSummary
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.StartSession(r.Context())
	h.respond(w, r, sum, err, http.StatusCreated)
}

// GetSummary returns the checkout state.
// @Summary      Get checkout
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Checkout ID"
// @Success      200  {object}  CheckoutSummary
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /checkout/{id} [get]
func (h *CheckoutHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, sum, err, http.StatusOK)
}

// AddItem puts a product into the cart, merging with an existing line.
// @Summary      Add cart item
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Checkout ID"
// @Param        item  body      AddItemRequest  true  "Item"
// @Success      200   {object}  CheckoutSummary
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      404   {object}  utils.ErrorResponse
// @Failure      409   {object}  utils.ErrorResponse
// @Router       /checkout/{id}/items [post]
func (h *CheckoutHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.AddItem(r.Context(), chi.URLParam(r, "id"), req.ProductID, req.Quantity)
	h.respond(w, r, sum, err, http.StatusOK)
}

// UpdateQuantity changes a cart line by delta; the line is removed at zero.
// @Summary      Change item quantity
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id          path      string                 true  "Checkout ID"
// @Param        product_id  path      int                    true  "Product ID"
// @Param        delta       body      UpdateQuantityRequest  true  "Quantity change"
// @Success      200         {object}  CheckoutSummary
// @Failure      400         {object}  utils.ValidationErrorResponse
// @Failure      404         {object}  utils.ErrorResponse
// @Router       /checkout/{id}/items/{product_id} [patch]
func (h *CheckoutHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var req UpdateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), productID, req.Delta)
	h.respond(w, r, sum, err, http.StatusOK)
}

// SelectAddress picks the delivery address.
// @Summary      Select address
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Checkout ID"
// @Param        address  body      SelectAddressRequest  true  "Address"
// @Success      200      {object}  CheckoutSummary
// @Failure      404      {object}  utils.ErrorResponse
// @Router       /checkout/{id}/address [put]
func (h *CheckoutHandler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	var req SelectAddressRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.SelectAddress(r.Context(), chi.URLParam(r, "id"), req.AddressID)
	h.respond(w, r, sum, err, http.StatusOK)
}

// SelectDeliveryOption picks the delivery method.
// @Summary      Select delivery option
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Checkout ID"
// @Param        option  body      SelectDeliveryOptionRequest  true  "Delivery option"
// @Success      200     {object}  CheckoutSummary
// @Failure      404     {object}  utils.ErrorResponse
// @Router       /checkout/{id}/delivery-option [put]
func (h *CheckoutHandler) SelectDeliveryOption(w http.ResponseWriter, r *http.Request) {
	var req SelectDeliveryOptionRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.SelectDeliveryOption(r.Context(), chi.URLParam(r, "id"), req.OptionID)
	h.respond(w, r, sum, err, http.StatusOK)
}

// SelectTimeSlot picks a delivery window for scheduled delivery.
// @Summary      Select time slot
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Checkout ID"
// @Param        slot  body      SelectTimeSlotRequest  true  "Time slot"
// @Success      200   {object}  CheckoutSummary
// @Failure      409   {object}  utils.ErrorResponse
// @Router       /checkout/{id}/time-slot [put]
func (h *CheckoutHandler) SelectTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeSlotRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.SelectTimeSlot(r.Context(), chi.URLParam(r, "id"), req.SlotID)
	h.respond(w, r, sum, err, http.StatusOK)
}

// SetPayment records the payment method and delivery notes.
// @Summary      Set payment
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Checkout ID"
// @Param        payment  body      PaymentRequest  true  "Payment"
// @Success      200      {object}  CheckoutSummary
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Router       /checkout/{id}/payment [put]
func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.SetPayment(r.Context(), chi.URLParam(r, "id"), entities.PaymentMethod(req.Method), req.Contactless, req.Notes)
	h.respond(w, r, sum, err, http.StatusOK)
}

// Continue moves to the next step when the current one is complete.
// @Summary      Next step
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Checkout ID"
// @Success      200  {object}  CheckoutSummary
// @Failure      409  {object}  utils.ErrorResponse "Step incomplete"
// @Router       /checkout/{id}/continue [post]
func (h *CheckoutHandler) Continue(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Continue(r.Context(), chi.URLParam(r, "id"))
	if err == nil {
		checkoutTransitions.WithLabelValues(string(sum.Step)).Inc()
	}
	h.respond(w, r, sum, err, http.StatusOK)
}

// Back returns to the previous step.
// @Summary      Previous step
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Checkout ID"
// @Success      200  {object}  CheckoutSummary
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/{id}/back [post]
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Back(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, sum, err, http.StatusOK)
}

// PlaceOrder creates the order from the payment step.
// @Summary      Place order
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Checkout ID"
// @Success      201  {object}  CheckoutSummary
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /checkout/{id}/place-order [post]
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.PlaceOrder(r.Context(), chi.URLParam(r, "id"))
	if err == nil {
		ordersPlaced.Inc()
	}
	h.respond(w, r, sum, err, http.StatusCreated)
}

func (h *CheckoutHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := utils.DecodeBody(r, req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, r *http.Request, sum service.Summary, err error, code int) {
	if err != nil {
		h.writeError(w, r, err, "checkout failed")
		return
	}

	lang := h.lang(r)
	var order *Order
	if sum.Order != nil {
		o := OrderEntityToJSON(*sum.Order, h.statusLabel(lang, sum.Order.Status))
		order = &o
	}

	w.Header().Set("Content-Language", string(lang))
	utils.WriteJSON(w, SummaryToJSON(sum, order, string(lang), string(h.translator.Direction(lang))), code)
}
