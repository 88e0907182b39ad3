// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bakery-orders/models"
)

// AuthService registers users and verifies their credentials.
type AuthService interface {
	// Register stores a new user with a bcrypt-hashed password.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login checks the password of an existing user and returns the user's
	// public projection.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProjection, error)
}

// OrderService manages bakery orders.
type OrderService interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	UpdateOrder(ctx context.Context, id int64, req models.OrderRequest) error
	DeleteOrder(ctx context.Context, id int64) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the server's dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// Pinger is implemented by storage that can verify its connection.
type Pinger interface {
	Ping(ctx context.Context) error
}
