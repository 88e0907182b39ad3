// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/utils"
	"github.com/MKhiriev/bakery-orders/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the server at address.
// A bare host:port is treated as http. Each request is bounded by timeout
// unless it is zero.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("func", "NewHTTPServerAdapter").Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}

func orderPath(id int64) string {
	return "/api/orders/" + strconv.FormatInt(id, 10)
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserProjection, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.UserProjection{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProjection{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)

	resp, err := h.request(ctx).
		SetResult(&orders).
		Get("/api/orders")
	if err != nil {
		return nil, fmt.Errorf("list orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h *httpServerAdapter) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	var order models.Order

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&order).
		Post("/api/orders")
	if err != nil {
		return models.Order{}, fmt.Errorf("create order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

func (h *httpServerAdapter) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	var order models.Order

	resp, err := h.request(ctx).
		SetResult(&order).
		Get(orderPath(id))
	if err != nil {
		return models.Order{}, fmt.Errorf("get order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

func (h *httpServerAdapter) UpdateOrder(ctx context.Context, id int64, req models.OrderRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Put(orderPath(id))
	if err != nil {
		return fmt.Errorf("update order request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteOrder(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		Delete(orderPath(id))
	if err != nil {
		return fmt.Errorf("delete order request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
