// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/utils"
	"github.com/MKhiriev/bakery-orders/models"
)

const invalidJSONMessage = "invalid JSON was passed"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.metrics.observeAuth("register", "invalid_input")
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.Register(ctx, req)
	h.metrics.observeAuth("register", outcomeFromError(err))
	if err != nil {
		writeServiceError(w, r, err, authErrorStatusMap)
		return
	}

	log.Info().Str("username", req.Username).Msg("user registered")
	if _, err = utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing register response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.metrics.observeAuth("login", "invalid_input")
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	h.metrics.observeAuth("login", outcomeFromError(err))
	if err != nil {
		writeServiceError(w, r, err, authErrorStatusMap)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	resp := models.LoginResponse{Message: "Login successful", User: user}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}
