// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the bakery REST API.
//
// [ServerAdapter] hides the transport from callers such as the command-line
// client. Non-2xx responses are mapped to the sentinel errors in errors.go so
// that callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/bakery-orders/models"
)

// ServerAdapter talks to a running bakery server.
type ServerAdapter interface {
	// Register creates a new user account.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login verifies credentials and returns the user's public projection.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProjection, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	UpdateOrder(ctx context.Context, id int64, req models.OrderRequest) error
	DeleteOrder(ctx context.Context, id int64) error

	// Health returns nil when the server and its database are reachable.
	Health(ctx context.Context) error

	// Version returns the build metadata reported by the server.
	Version(ctx context.Context) (models.VersionResponse, error)
}
