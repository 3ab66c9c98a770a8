package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AddressService interface {
	ListAddresses(ctx context.Context) ([]entities.Address, error)
	GetAddress(ctx context.Context, id string) (entities.Address, error)
	AddAddress(ctx context.Context, fields entities.AddressFields) (entities.Address, error)
	UpdateAddress(ctx context.Context, id string, fields entities.AddressFields) error
	DeleteAddress(ctx context.Context, id string) error
	SetDefaultAddress(ctx context.Context, id string) error
}

type AddressHandler struct {
	responder
	validate *validator.Validate
	svc      AddressService
}

func NewAddressHandler(logger *slog.Logger, translator Translator, svc AddressService) *AddressHandler {
	return &AddressHandler{
		responder: responder{logger: logger.With(slog.String("handler", "address")), translator: translator},
		validate:  utils.NewValidator(),
		svc:       svc,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", h.ListAddresses)
		r.Post("/", h.AddAddress)
		r.Get("/{id}", h.GetAddress)
		r.Put("/{id}", h.UpdateAddress)
		r.Delete("/{id}", h.DeleteAddress)
		r.Post("/{id}/default", h.SetDefaultAddress)
	})
}

// ListAddresses returns saved addresses in insertion order.
// @Summary      List addresses
// @Tags         addresses
// @Produce      json
// @Success      200  {array}   Address
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /addresses [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)
}

// GetAddress returns one address.
// @Summary      Get address
// @Tags         addresses
// @Produce      json
// @Param        id   path      string  true  "Address ID"
// @Success      200  {object}  Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{id} [get]
func (h *AddressHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAddress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to get address")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusOK)
}

// AddAddress saves a new address. The first address, or one sent with
// is_default, becomes the default.
// @Summary      Add address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        address  body      AddressRequest  true  "Address"
// @Success      201      {object}  Address
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Router       /addresses [post]
func (h *AddressHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	a, err := h.svc.AddAddress(r.Context(), AddressRequestToFields(req))
	if err != nil {
		h.writeError(w, r, err, "failed to add address")
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(a), http.StatusCreated)
}

// UpdateAddress replaces the editable fields and returns the address book.
// @Summary      Update address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Address ID"
// @Param        address  body      AddressRequest  true  "Address"
// @Success      200      {array}   Address
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse
// @Router       /addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.svc.UpdateAddress(r.Context(), chi.URLParam(r, "id"), AddressRequestToFields(req)); err != nil {
		h.writeError(w, r, err, "failed to update address")
		return
	}
	h.writeList(w, r)
}

// DeleteAddress removes an address and returns the address book.
// @Summary      Delete address
// @Tags         addresses
// @Produce      json
// @Param        id   path      string  true  "Address ID"
// @Success      200  {array}   Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAddress(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "failed to delete address")
		return
	}
	h.writeList(w, r)
}

// SetDefaultAddress makes the address the only default.
// @Summary      Set default address
// @Tags         addresses
// @Produce      json
// @Param        id   path      string  true  "Address ID"
// @Success      200  {array}   Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{id}/default [post]
func (h *AddressHandler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SetDefaultAddress(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "failed to set default address")
		return
	}
	h.writeList(w, r)
}

func (h *AddressHandler) decode(w http.ResponseWriter, r *http.Request) (AddressRequest, bool) {
	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return req, false
	}
	return req, true
}

func (h *AddressHandler) writeList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAddresses(r.Context())
	if err != nil {
		h.writeError(w, r, err, "failed to list addresses")
		return
	}
	utils.WriteJSON(w, AddressesEntityToJSON(list), http.StatusOK)
}
