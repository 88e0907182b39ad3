// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/store"
	"github.com/MKhiriev/bakery-orders/models"
)

type orderService struct {
	orderRepository store.OrderRepository
	storeTimeout    time.Duration
	now             func() time.Time
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService backed by orderRepository.
func NewOrderService(orderRepository store.OrderRepository, cfg config.App, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		storeTimeout:    cfg.StoreTimeout,
		now:             time.Now,
		logger:          logger,
	}
}

// CreateOrder stores a new order. Status defaults to "Pending" and the
// creation time to now.
func (o *orderService) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	log := logger.FromContext(ctx)

	if !validOrder(req) {
		return models.Order{}, ErrInvalidOrder
	}

	order := models.Order{
		Customer:  req.Customer,
		Item:      req.Item,
		Quantity:  req.Quantity,
		Status:    req.Status,
		CreatedAt: o.now(),
	}
	if order.Status == "" {
		order.Status = models.DefaultOrderStatus
	}
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		order.CreatedAt = *req.CreatedAt
	}
	order.CreatedAt = order.CreatedAt.UTC()

	storeCtx, cancel := withStoreTimeout(ctx, o.storeTimeout)
	defer cancel()

	created, err := o.orderRepository.CreateOrder(storeCtx, order)
	if err != nil {
		log.Err(err).Str("func", "orderService.CreateOrder").Msg("order creation failed")
		return models.Order{}, fmt.Errorf("%w: order creation failed: %w", ErrInternal, err)
	}

	log.Info().Str("func", "orderService.CreateOrder").Int64("order_id", created.ID).Msg("order created")
	return created, nil
}

// ListOrders returns every order, newest first.
func (o *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	storeCtx, cancel := withStoreTimeout(ctx, o.storeTimeout)
	defer cancel()

	orders, err := o.orderRepository.ListOrders(storeCtx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "orderService.ListOrders").Msg("listing orders failed")
		return nil, fmt.Errorf("%w: listing orders failed: %w", ErrInternal, err)
	}

	return orders, nil
}

func (o *orderService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	storeCtx, cancel := withStoreTimeout(ctx, o.storeTimeout)
	defer cancel()

	order, err := o.orderRepository.GetOrder(storeCtx, id)
	if err != nil {
		return models.Order{}, o.storeError(ctx, "orderService.GetOrder", id, err)
	}

	return order, nil
}

// UpdateOrder replaces customer, item and quantity of order id. Status is
// changed only when req carries one; the creation time is never changed.
func (o *orderService) UpdateOrder(ctx context.Context, id int64, req models.OrderRequest) error {
	if !validOrder(req) {
		return ErrInvalidOrder
	}

	storeCtx, cancel := withStoreTimeout(ctx, o.storeTimeout)
	defer cancel()

	err := o.orderRepository.UpdateOrder(storeCtx, models.Order{
		ID:       id,
		Customer: req.Customer,
		Item:     req.Item,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return o.storeError(ctx, "orderService.UpdateOrder", id, err)
	}

	return nil
}

func (o *orderService) DeleteOrder(ctx context.Context, id int64) error {
	storeCtx, cancel := withStoreTimeout(ctx, o.storeTimeout)
	defer cancel()

	if err := o.orderRepository.DeleteOrder(storeCtx, id); err != nil {
		return o.storeError(ctx, "orderService.DeleteOrder", id, err)
	}

	return nil
}

func (o *orderService) storeError(ctx context.Context, funcName string, id int64, err error) error {
	if errors.Is(err, store.ErrOrderNotFound) {
		return ErrOrderNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("order_id", id).Msg("order store call failed")
	return fmt.Errorf("%w: %s: %w", ErrInternal, funcName, err)
}

func validOrder(req models.OrderRequest) bool {
	return req.Customer != "" && req.Item != "" && req.Quantity > 0
}
