// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/store"
	"github.com/MKhiriev/bakery-orders/models"
)

// Services groups every service the HTTP layer depends on.
type Services struct {
	AuthService    AuthService
	OrderService   OrderService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		OrderService:   NewOrderService(storages.OrderRepository, cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, cfg.App, logger),
	}, nil
}
