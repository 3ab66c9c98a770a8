package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/i18n"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, h interface{ Init(r chi.Router) }, req *http.Request) (int, string) {
	t.Helper()
	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{ID: "ORD-1", TrackingID: "TRK1", Status: entities.OrderPreparing, Total: 55}

	testCases := []struct {
		name         string
		id           string
		lang         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "ORD-1",
			lang: "en",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status_label":"Preparing"`,
		},
		{
			name: "success in arabic",
			id:   "ORD-1",
			lang: "ar",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status_label":"قيد التحضير"`,
		},
		{
			name: "not found",
			id:   "nope",
			lang: "en",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "nope").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"error.order_not_found"`,
		},
		{
			name: "internal error",
			id:   "ORD-1",
			lang: "en",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "ORD-1").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), i18n.New(i18n.Arabic), svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.id+"?lang="+tc.lang, nil)
			status, body := serve(t, h, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "ORD-1", resp["id"])
				assert.Equal(t, float64(55), resp["total"])
			}
		})
	}
}

func TestOrderHandler_TrackOrder(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().TrackOrder(mock.Anything, "TRK1").Return(entities.Order{ID: "ORD-1", TrackingID: "TRK1", Status: entities.OrderOutForDelivery}, nil).Once()
	svc.EXPECT().TrackOrder(mock.Anything, "TRK2").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	h := handler.NewOrderHandler(discardLogger(), i18n.New(i18n.Arabic), svc)

	req := httptest.NewRequest(http.MethodGet, "/orders/track/TRK1", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	status, body := serve(t, h, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status_label":"Out for delivery"`)

	req = httptest.NewRequest(http.MethodGet, "/orders/track/TRK2", nil)
	status, body = serve(t, h, req)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"message":"الطلب غير موجود"`)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ListOrders(mock.Anything).Return([]entities.Order{{ID: "ORD-1"}, {ID: "ORD-2"}}, nil).Once()

	h := handler.NewOrderHandler(discardLogger(), i18n.New(i18n.Arabic), svc)

	status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusOK, status)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp, 2)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "ORD-1",
			body: `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, "ORD-1", entities.OrderDelivered).
					Return(entities.Order{ID: "ORD-1", Status: entities.OrderDelivered}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"delivered"`,
		},
		{
			name:         "unknown status rejected",
			id:           "ORD-1",
			body:         `{"status":"lost"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"status":"oneof"`,
		},
		{
			name:         "malformed body",
			id:           "ORD-1",
			body:         `{"status":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "unknown id ignored",
			id:   "missing",
			body: `{"status":"confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, "missing", entities.OrderConfirmed).
					Return(entities.Order{}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "cancelled order",
			id:   "ORD-1",
			body: `{"status":"confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, "ORD-1", entities.OrderConfirmed).
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"error.invalid_status"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), i18n.New(i18n.Arabic), svc)

			req := httptest.NewRequest(http.MethodPatch, "/orders/"+tc.id+"/status", strings.NewReader(tc.body))
			status, body := serve(t, h, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CancelAndReorder(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CancelOrder(mock.Anything, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderCancelled}, nil).Once()
	svc.EXPECT().Reorder(mock.Anything, "ORD-1").Return(entities.Order{ID: "ORD-2", Status: entities.OrderPending}, nil).Once()
	svc.EXPECT().Reorder(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	h := handler.NewOrderHandler(discardLogger(), i18n.New(i18n.Arabic), svc)

	status, body := serve(t, h, httptest.NewRequest(http.MethodPost, "/orders/ORD-1/cancel", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"cancelled"`)

	status, body = serve(t, h, httptest.NewRequest(http.MethodPost, "/orders/ORD-1/reorder", nil))
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, body, `"id":"ORD-2"`)

	status, _ = serve(t, h, httptest.NewRequest(http.MethodPost, "/orders/missing/reorder", nil))
	assert.Equal(t, http.StatusNotFound, status)
}
