package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/handler"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/i18n"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/repo"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryHandler() *handler.DeliveryHandler {
	addresses := service.NewAddressService(discardLogger(), repo.NewMemoryAddressRepo(catalog.SeedAddresses()), false)
	delivery := service.NewDeliveryService(discardLogger(), repo.NewMemorySlotRepo(), 3)
	return handler.NewDeliveryHandler(discardLogger(), i18n.New(i18n.Arabic), delivery, addresses)
}

func TestDeliveryHandler_ListDeliveryOptions(t *testing.T) {
	status, body := serve(t, newDeliveryHandler(), httptest.NewRequest(http.MethodGet, "/delivery-options", nil))
	require.Equal(t, http.StatusOK, status)

	var options []handler.DeliveryOption
	require.NoError(t, json.Unmarshal([]byte(body), &options))
	require.Len(t, options, 4)

	prices := map[string]int{}
	for _, o := range options {
		prices[o.ID] = o.Price
	}
	assert.Equal(t, map[string]int{"same_day": 25, "express": 35, "scheduled": 15, "pickup": 0}, prices)
}

func TestDeliveryHandler_EstimateDeliveryFee(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		wantStatus int
		wantFee    int
	}{
		{name: "without address", path: "/delivery-options/express/fee", wantStatus: http.StatusOK, wantFee: 35},
		{name: "with address", path: "/delivery-options/same_day/fee?address_id=addr_002", wantStatus: http.StatusOK, wantFee: 25},
		{name: "unknown address", path: "/delivery-options/same_day/fee?address_id=nope", wantStatus: http.StatusNotFound},
		{name: "unknown option", path: "/delivery-options/drone/fee", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := serve(t, newDeliveryHandler(), httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.wantStatus, status)

			if tc.wantStatus == http.StatusOK {
				var fee handler.DeliveryFee
				require.NoError(t, json.Unmarshal([]byte(body), &fee))
				assert.Equal(t, tc.wantFee, fee.Fee)
			}
		})
	}
}

func TestDeliveryHandler_GetTimeSlots(t *testing.T) {
	date := time.Now().AddDate(0, 0, 1).Format(service.DateLayout)

	status, body := serve(t, newDeliveryHandler(), httptest.NewRequest(http.MethodGet, "/time-slots?date="+date, nil))
	require.Equal(t, http.StatusOK, status)

	var slots []handler.TimeSlot
	require.NoError(t, json.Unmarshal([]byte(body), &slots))
	require.Len(t, slots, 6)
	assert.Equal(t, date, slots[0].Date)
	assert.Equal(t, "09:00 - 11:00", slots[0].Label)
	assert.True(t, slots[0].Available)
	assert.Equal(t, 3, slots[0].Remaining)

	status, _ = serve(t, newDeliveryHandler(), httptest.NewRequest(http.MethodGet, "/time-slots?date=18-10-2026", nil))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = serve(t, newDeliveryHandler(), httptest.NewRequest(http.MethodGet, "/time-slots", nil))
	assert.Equal(t, http.StatusOK, status)
}
