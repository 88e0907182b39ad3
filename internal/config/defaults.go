// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"
)

// Defaults returns the configuration used when nothing else is provided:
// a local Postgres on the standard port and the HTTP API on port 5000.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:         "info",
			PasswordHashCost: 10,
			HashConcurrency:  runtime.NumCPU(),
			StoreTimeout:     5 * time.Second,
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				Host:         "localhost",
				Port:         5432,
				User:         "postgres",
				Name:         "bakery_db",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
	}
}
