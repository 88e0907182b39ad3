// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/service"
	"github.com/MKhiriev/bakery-orders/internal/utils"
)

const internalErrorMessage = "internal server error"

// authErrorStatusMap keeps every client-side auth failure at 400, which is
// what the bakery frontend expects.
var authErrorStatusMap = map[error]int{
	service.ErrInvalidInput: http.StatusBadRequest,
	service.ErrConflict:     http.StatusBadRequest,
	service.ErrNotFound:     http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusBadRequest,
}

var orderErrorStatusMap = map[error]int{
	service.ErrInvalidInput: http.StatusBadRequest,
	service.ErrNotFound:     http.StatusNotFound,
}

func statusFromError(err error, statusMap map[error]int) int {
	for target, status := range statusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the client-safe message of err. Internal
// failures are logged and replaced by a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, statusMap map[error]int) {
	log := logger.FromRequest(r)

	status := statusFromError(err, statusMap)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		utils.WriteError(w, internalErrorMessage, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}

// outcomeFromError labels the result of an auth attempt for metrics.
func outcomeFromError(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, service.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, service.ErrConflict):
		return "conflict"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.Is(err, service.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}
