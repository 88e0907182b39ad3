// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
)

// NewConnectSQLite opens a SQLite database file for local development.
// The file is created on first use.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openAndPing(ctx, cfg, log, "NewConnectSQLite")
	if err != nil {
		return nil, err
	}

	// a single writer avoids SQLITE_BUSY under concurrent requests
	conn.SetMaxOpenConns(1)
	log.Debug().Str("func", "NewConnectSQLite").Str("db", cfg.String()).Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, log), nil
}
