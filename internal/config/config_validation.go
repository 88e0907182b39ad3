// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if app.PasswordHashCost < bcrypt.MinCost || app.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d is outside [%d, %d]",
			ErrInvalidAppConfigs, app.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if app.HashConcurrency < 1 {
		return fmt.Errorf("%w: hash concurrency must be positive", ErrInvalidAppConfigs)
	}
	if app.StoreTimeout <= 0 {
		return fmt.Errorf("%w: store timeout must be positive", ErrInvalidAppConfigs)
	}

	db := cfg.Storage.DB
	switch db.Driver {
	case DriverPostgres:
		if db.DSN == "" && (db.Host == "" || db.Name == "" || db.Port == 0) {
			return fmt.Errorf("%w: either DSN or host, port and name are required", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if db.DSN == "" && db.Name == "" {
			return fmt.Errorf("%w: either DSN or name is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	srv := cfg.Server
	if srv.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if srv.RequestTimeout <= 0 || srv.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
