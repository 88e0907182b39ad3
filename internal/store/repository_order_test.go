// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/models"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, config.DriverPostgres)
	return &orderRepository{DB: db, logger: logger.Nop()}, mock
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_Success(t *testing.T) {
	repo, mock := newTestOrderRepo(t)
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	order := models.Order{Customer: "Ann", Item: "Baguette", Quantity: 3, Status: "Pending", CreatedAt: at}

	mock.ExpectQuery(`INSERT INTO orders \(customer,item,quantity,status,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("Ann", "Baguette", 3, "Pending", at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.CreateOrder(context.Background(), order)

	require.NoError(t, err)
	order.ID = 11
	assert.Equal(t, order, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_DBError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("boom"))

	_, err := repo.CreateOrder(context.Background(), models.Order{Customer: "Ann"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────────────────────────────────────
// ListOrders
// ─────────────────────────────────────────────────────────────────────────────

func TestListOrders_Success(t *testing.T) {
	repo, mock := newTestOrderRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, customer, item, quantity, status, created_at FROM orders ORDER BY created_at DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(2, "Bob", "Croissant", 6, "Ready", now).
			AddRow(1, "Ann", "Baguette", 3, "Pending", now.Add(-time.Hour)))

	orders, err := repo.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, "Croissant", orders[0].Item)
	assert.Equal(t, "Pending", orders[1].Status)
}

func TestListOrders_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("SELECT id").WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := repo.ListOrders(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestListOrders_QueryError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("SELECT id").WillReturnError(errors.New("boom"))

	_, err := repo.ListOrders(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListOrders_ScanError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow("not-a-number", "Ann", "Baguette", 3, "Pending", time.Now()))

	_, err := repo.ListOrders(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListOrders_RowError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, "Ann", "Baguette", 3, "Pending", time.Now()).
			RowError(0, errors.New("connection reset")))

	_, err := repo.ListOrders(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetOrder
// ─────────────────────────────────────────────────────────────────────────────

func TestGetOrder(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(5, "Ann", "Baguette", 3, "Pending", now))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs(int64(5)).
					WillReturnRows(sqlmock.NewRows(orderColumns))
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs(int64(5)).
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestOrderRepo(t)
			tt.setup(mock)

			order, err := repo.GetOrder(context.Background(), 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.Order{ID: 5, Customer: "Ann", Item: "Baguette", Quantity: 3, Status: "Pending", CreatedAt: now}, order)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateOrder / DeleteOrder
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateOrder_WithoutStatus(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectExec(`UPDATE orders SET customer = \$1, item = \$2, quantity = \$3 WHERE id = \$4`).
		WithArgs("Ann", "Rye", 2, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOrder(context.Background(), models.Order{ID: 3, Customer: "Ann", Item: "Rye", Quantity: 2})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrder_WithStatus(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectExec(`UPDATE orders SET customer = \$1, item = \$2, quantity = \$3, status = \$4 WHERE id = \$5`).
		WithArgs("Ann", "Rye", 2, "Ready", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOrder(context.Background(), models.Order{ID: 3, Customer: "Ann", Item: "Rye", Quantity: 2, Status: "Ready"})

	require.NoError(t, err)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrder(context.Background(), models.Order{ID: 404, Customer: "Ann", Item: "Rye", Quantity: 1})

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrder_ExecError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectExec("UPDATE orders").WillReturnError(errors.New("boom"))

	err := repo.UpdateOrder(context.Background(), models.Order{ID: 1})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeleteOrder(t *testing.T) {
	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{"deleted", func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) }, nil},
		{"missing", func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) }, ErrOrderNotFound},
		{"rows affected error", func(e *sqlmock.ExpectedExec) {
			e.WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
		}, ErrExecutingStatement},
		{"exec error", func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("boom")) }, ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestOrderRepo(t)
			tt.result(mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).WithArgs(int64(9)))

			err := repo.DeleteOrder(context.Background(), 9)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
