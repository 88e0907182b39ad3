// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
)

// NewConnectPostgres opens a pgx-backed pool for cfg.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openAndPing(ctx, cfg, log, "NewConnectPostgres")
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Str("db", cfg.String()).Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, log), nil
}
