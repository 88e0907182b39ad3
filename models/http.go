// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RegisterRequest is the payload accepted by the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string         `json:"message"`
	User    UserProjection `json:"user"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-safe error description.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// OrderRequest is the payload used to create or update an order.
//
// The bakery frontend historically sent customerName/product/orderDate when
// creating orders and customer/item when editing them; both spellings are
// accepted.
type OrderRequest struct {
	Customer  string     `json:"customer"`
	Item      string     `json:"item"`
	Quantity  int        `json:"quantity"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// orderRequestWire mirrors every JSON spelling an order may arrive in.
type orderRequestWire struct {
	Customer     string     `json:"customer"`
	CustomerName string     `json:"customerName"`
	Item         string     `json:"item"`
	Product      string     `json:"product"`
	Quantity     int        `json:"quantity"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"created_at"`
	OrderDate    *time.Time `json:"orderDate"`
}

// UnmarshalJSON accepts both the current and the legacy field names.
func (o *OrderRequest) UnmarshalJSON(b []byte) error {
	var wire orderRequestWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	*o = OrderRequest{
		Customer:  firstNonEmpty(wire.Customer, wire.CustomerName),
		Item:      firstNonEmpty(wire.Item, wire.Product),
		Quantity:  wire.Quantity,
		Status:    wire.Status,
		CreatedAt: wire.CreatedAt,
	}
	if o.CreatedAt == nil {
		o.CreatedAt = wire.OrderDate
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
