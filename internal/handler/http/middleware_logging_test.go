// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger attaches a logger writing into buf, the way withTraceID
// does for real requests.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "list orders",
			method: http.MethodGet,
			path:   "/api/orders",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/orders"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:   "rejected login",
			method: http.MethodPost,
			path:   "/api/login",
			status: http.StatusBadRequest,
			body:   `{"error":"incorrect password"}`,
			wantContains: []string{
				`"method":"POST"`,
				`"status":400`,
			},
		},
		{
			name:   "missing order",
			method: http.MethodDelete,
			path:   "/api/orders/42?force=1",
			status: http.StatusNotFound,
			wantContains: []string{
				`"uri":"/api/orders/42?force=1"`,
				`"status":404`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, requestWithLogger(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, requestWithLogger(http.MethodGet, "/api/health", &buf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":1024`)
}

func TestWithLogging_NoHandlerWrite(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	rec := httptest.NewRecorder()
	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, requestWithLogger(http.MethodGet, "/api/health", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("oven on fire")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))
	})
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("ok"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, 2, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}
