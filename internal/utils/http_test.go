// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/bakery-orders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "message",
			data:     models.MessageResponse{Message: "Order deleted"},
			status:   http.StatusOK,
			wantBody: `{"message":"Order deleted"}`,
		},
		{
			name: "order list",
			data: []models.Order{{
				ID: 4, Customer: "Ann", Item: "Rye", Quantity: 1, Status: "Pending",
				CreatedAt: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
			}},
			status:   http.StatusOK,
			wantBody: `[{"id":4,"customer":"Ann","item":"Rye","quantity":1,"status":"Pending","created_at":"2026-05-01T08:00:00Z"}]`,
		},
		{
			name:     "empty list stays an array",
			data:     []models.Order{},
			status:   http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "custom status",
			data:     models.HealthResponse{Status: "unavailable"},
			status:   http.StatusServiceUnavailable,
			wantBody: `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unserializable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "user not found", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"user not found"}`, w.Body.String())
}
