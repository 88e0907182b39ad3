// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
)

// Storages bundles the repositories sharing one database pool.
type Storages struct {
	UserRepository  UserRepository
	OrderRepository OrderRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		OrderRepository: NewOrderRepository(db, log),
		db:              db,
	}
}

// Ping verifies the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
