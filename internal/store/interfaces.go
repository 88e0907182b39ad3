// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/bakery-orders/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists bakery user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned UserID
	// and CreatedAt. A taken username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user whose username matches exactly, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// OrderRepository persists bakery orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]models.Order, error)

	GetOrder(ctx context.Context, id int64) (models.Order, error)

	// UpdateOrder overwrites customer, item and quantity of the order with
	// order.ID. Status is only written when non-empty.
	UpdateOrder(ctx context.Context, order models.Order) error

	DeleteOrder(ctx context.Context, id int64) error
}

// ErrorClassificator interprets driver errors for a specific SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a unique
	// constraint.
	IsUniqueViolation(err error) bool
}
