// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/models"
)

// orderRepository is the SQL-backed implementation of [OrderRepository].
type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateOrder inserts order and returns it with the generated ID.
func (o *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateOrderQuery(o.builder, order)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.CreateOrder").Msg("failed to create query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = o.QueryRowContext(ctx, query, args...).Scan(&order.ID); err != nil {
		log.Err(err).Str("func", "orderRepository.CreateOrder").Str("customer", order.Customer).Msg("failed to insert order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return order, nil
}

// ListOrders returns all orders, newest first. The result is never nil.
func (o *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(o.builder)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.ListOrders").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := o.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.ListOrders").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		if err = scanOrder(rows, &order); err != nil {
			log.Err(err).Str("func", "orderRepository.ListOrders").Int("scanned", len(orders)).Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "orderRepository.ListOrders").Msg("error iterating order rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

// GetOrder returns the order with id or [ErrOrderNotFound].
func (o *orderRepository) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetOrderQuery(o.builder, id)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.GetOrder").Msg("failed to create query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var order models.Order
	err = scanOrder(o.QueryRowContext(ctx, query, args...), &order)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Order{}, ErrOrderNotFound
	case err != nil:
		log.Err(err).Str("func", "orderRepository.GetOrder").Int64("order_id", id).Msg("failed to get order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// UpdateOrder rewrites the order with order.ID. [ErrOrderNotFound] is
// returned when no row was affected.
func (o *orderRepository) UpdateOrder(ctx context.Context, order models.Order) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOrderQuery(o.builder, order)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.UpdateOrder").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return o.execAffectingOne(ctx, "orderRepository.UpdateOrder", order.ID, query, args)
}

// DeleteOrder removes the order with id. [ErrOrderNotFound] is returned when
// no row was affected.
func (o *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOrderQuery(o.builder, id)
	if err != nil {
		log.Err(err).Str("func", "orderRepository.DeleteOrder").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return o.execAffectingOne(ctx, "orderRepository.DeleteOrder", id, query, args)
}

func (o *orderRepository) execAffectingOne(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := o.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("order_id", id).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("order_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, order *models.Order) error {
	return row.Scan(&order.ID, &order.Customer, &order.Item, &order.Quantity, &order.Status, &order.CreatedAt)
}
