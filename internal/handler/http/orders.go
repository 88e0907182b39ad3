// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/utils"
	"github.com/MKhiriev/bakery-orders/models"
	"github.com/go-chi/chi/v5"
)

const invalidOrderIDMessage = "invalid order id"

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	orders, err := h.services.OrderService.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, orderErrorStatusMap)
		return
	}

	if _, err = utils.WriteJSON(w, orders, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing orders")
	}
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.CreateOrder(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, orderErrorStatusMap)
		return
	}

	log.Info().Int64("order_id", order.ID).Msg("order created")
	if _, err = utils.WriteJSON(w, order, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing created order")
	}
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, orderErrorStatusMap)
		return
	}

	if _, err = utils.WriteJSON(w, order, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing order")
	}
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	if err := h.services.OrderService.UpdateOrder(r.Context(), id, req); err != nil {
		writeServiceError(w, r, err, orderErrorStatusMap)
		return
	}

	log.Info().Int64("order_id", id).Msg("order updated")
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "Order updated"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing update response")
	}
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := orderIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.OrderService.DeleteOrder(r.Context(), id); err != nil {
		writeServiceError(w, r, err, orderErrorStatusMap)
		return
	}

	log.Info().Int64("order_id", id).Msg("order deleted")
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: "Order deleted"}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete response")
	}
}

// orderIDFromRequest reads the {id} URL parameter. On failure it writes a
// 400 response and returns false.
func orderIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Str("id", raw).Msg(invalidOrderIDMessage)
		utils.WriteError(w, invalidOrderIDMessage, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
