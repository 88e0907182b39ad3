// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
)

type healthService struct {
	db           Pinger
	storeTimeout time.Duration
	logger       *logger.Logger
}

// NewHealthService checks db on every call to Check.
func NewHealthService(db Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		db:           db,
		storeTimeout: cfg.StoreTimeout,
		logger:       logger,
	}
}

func (h *healthService) Check(ctx context.Context) error {
	pingCtx, cancel := withStoreTimeout(ctx, h.storeTimeout)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: database ping failed: %w", ErrInternal, err)
	}

	return nil
}
