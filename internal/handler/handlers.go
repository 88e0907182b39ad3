// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers exposed by the server.
package handler

import (
	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/handler/http"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
