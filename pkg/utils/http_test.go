package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Phone string `json:"phone" validate:"required,e164"`
	Notes string `json:"notes,omitempty" validate:"max=3"`
}

func TestDecodeBody(t *testing.T) {
	var req request
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"+966500000001"}`))
	require.NoError(t, DecodeBody(r, &req))
	assert.Equal(t, "+966500000001", req.Phone)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"+966500000001","extra":1}`))
	assert.Error(t, DecodeBody(r, &req))
}

func TestWriteValidationError(t *testing.T) {
	err := NewValidator().Struct(request{Phone: "0500", Notes: "long"})
	require.Error(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(w, err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"invalid request","fields":{"phone":"e164","notes":"max"}}`, w.Body.String())
}

func TestWriteCodedError(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteCodedError(w, "checkout.cart_empty", "Your cart is empty", http.StatusConflict))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Your cart is empty","code":"checkout.cart_empty"}`, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, WriteError(w, "boom", http.StatusInternalServerError))
	assert.JSONEq(t, `{"message":"boom"}`, w.Body.String())
}
