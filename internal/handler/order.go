package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	TrackOrder(ctx context.Context, trackingID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
	Reorder(ctx context.Context, id string) (entities.Order, error)
}

type OrderHandler struct {
	responder
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, translator Translator, svc OrderService) *OrderHandler {
	return &OrderHandler{
		responder: responder{logger: logger.With(slog.String("handler", "order")), translator: translator},
		validate:  utils.NewValidator(),
		svc:       svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/track/{tracking_id}", h.TrackOrder)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/status", h.UpdateOrderStatus)
		r.Post("/{id}/cancel", h.CancelOrder)
		r.Post("/{id}/reorder", h.Reorder)
	})
}

// ListOrders returns all orders, oldest first.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.writeError(w, r, err, "failed to list orders")
		return
	}

	lang := h.lang(r)
	res := make([]Order, len(orders))
	for i, o := range orders {
		res[i] = OrderEntityToJSON(o, h.statusLabel(lang, o.Status))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder returns an order by id.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, order, err, http.StatusOK)
}

// TrackOrder returns an order by its tracking id.
// @Summary      Track order
// @Tags         orders
// @Produce      json
// @Param        tracking_id  path      string  true  "Tracking ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/track/{tracking_id} [get]
func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	trackingRequestsInProgress.Inc()
	defer trackingRequestsInProgress.Dec()

	start := time.Now()
	order, err := h.svc.TrackOrder(r.Context(), chi.URLParam(r, "tracking_id"))
	trackingRequestDuration.Observe(time.Since(start).Seconds())

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrOrderNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	trackingRequestTotal.WithLabelValues(strconv.Itoa(status)).Inc()

	h.respond(w, r, order, err, http.StatusOK)
}

// UpdateOrderStatus moves an order to a new status. Unknown ids answer 204 unless
// strict ids are enabled.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Order ID"
// @Param        status  body      StatusRequest  true  "Status"
// @Success      200     {object}  Order
// @Success      204
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      404     {object}  utils.ErrorResponse
// @Failure      422     {object}  utils.ErrorResponse
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), entities.OrderStatus(req.Status))
	h.respondMutation(w, r, order, err, http.StatusOK)
}

// CancelOrder cancels an order and frees its time slot.
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Success      204
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	h.respondMutation(w, r, order, err, http.StatusOK)
}

// Reorder places a new order with the contents of an earlier one.
// @Summary      Reorder
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      201  {object}  Order
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id}/reorder [post]
func (h *OrderHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.Reorder(r.Context(), chi.URLParam(r, "id"))
	if err == nil && order.ID != "" {
		ordersPlaced.Inc()
	}
	h.respondMutation(w, r, order, err, http.StatusCreated)
}

// respondMutation answers 204 when the service ignored an unknown id.
func (h *OrderHandler) respondMutation(w http.ResponseWriter, r *http.Request, order entities.Order, err error, code int) {
	if err == nil && order.ID == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.respond(w, r, order, err, code)
}

func (h *OrderHandler) respond(w http.ResponseWriter, r *http.Request, order entities.Order, err error, code int) {
	if err != nil {
		h.writeError(w, r, err, "order request failed")
		return
	}
	lang := h.lang(r)
	w.Header().Set("Content-Language", string(lang))
	utils.WriteJSON(w, OrderEntityToJSON(order, h.statusLabel(lang, order.Status)), code)
}
