package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/checkout"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/i18n"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
)

type Translator interface {
	Translate(lang i18n.Language, key string) string
	Direction(lang i18n.Language) i18n.Direction
	Negotiate(explicit, acceptLanguage string) i18n.Language
}

var errorKeys = []struct {
	err  error
	key  string
	code int
}{
	{entities.ErrSessionNotFound, "checkout.not_found", http.StatusNotFound},
	{entities.ErrOrderNotFound, "error.order_not_found", http.StatusNotFound},
	{entities.ErrAddressNotFound, "error.address_not_found", http.StatusNotFound},
	{entities.ErrDeliveryOptionNotFound, "error.delivery_option_not_found", http.StatusNotFound},
	{entities.ErrProductNotFound, "error.product_not_found", http.StatusNotFound},
	{entities.ErrTimeSlotUnavailable, "error.time_slot_unavailable", http.StatusConflict},
	{entities.ErrInvalidStatus, "error.invalid_status", http.StatusUnprocessableEntity},
}

// responder writes localized JSON errors. Language comes from ?lang= or
// Accept-Language.
type responder struct {
	logger     *slog.Logger
	translator Translator
}

func (h responder) lang(r *http.Request) i18n.Language {
	return h.translator.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}

func (h responder) statusLabel(lang i18n.Language, status entities.OrderStatus) string {
	return h.translator.Translate(lang, "order.status."+string(status))
}

func (h responder) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	lang := h.lang(r)
	w.Header().Set("Content-Language", string(lang))

	var guard checkout.GuardError
	if errors.As(err, &guard) {
		utils.WriteCodedError(w, guard.Key, h.translator.Translate(lang, guard.Key), http.StatusConflict)
		return
	}

	for _, e := range errorKeys {
		if errors.Is(err, e.err) {
			utils.WriteCodedError(w, e.key, h.translator.Translate(lang, e.key), e.code)
			return
		}
	}

	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	utils.WriteCodedError(w, "error.internal", h.translator.Translate(lang, "error.internal"), http.StatusInternalServerError)
}
