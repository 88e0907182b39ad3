// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/models"
)

func TestNewStorages_WiresRepositories(t *testing.T) {
	db, _ := newTestDB(t, config.DriverPostgres)

	s := newStorages(db, logger.Nop())

	require.NotNil(t, s.UserRepository)
	require.NotNil(t, s.OrderRepository)
	assert.Equal(t, config.DriverPostgres, db.Driver())
}

func TestStorages_Ping(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	s := newStorages(newDB(conn, config.DriverPostgres, logger.Nop()), logger.Nop())

	mock.ExpectPing()
	assert.NoError(t, s.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("db down"))
	assert.Error(t, s.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "bakery.sqlite"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLiteStorages_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Positive(t, alice.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "alice", Email: "other@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "bob", Email: "alice@x.com", PasswordHash: "h3"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, found.UserID)
	assert.Equal(t, "h1", found.PasswordHash)

	_, err = s.UserRepository.FindUserByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteStorages_Orders(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.OrderRepository

	older := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	first, err := repo.CreateOrder(ctx, models.Order{Customer: "Ann", Item: "Baguette", Quantity: 2, Status: "Pending", CreatedAt: older})
	require.NoError(t, err)
	second, err := repo.CreateOrder(ctx, models.Order{Customer: "Bob", Item: "Croissant", Quantity: 6, Status: "Pending", CreatedAt: newer})
	require.NoError(t, err)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.True(t, orders[1].CreatedAt.Equal(older))

	require.NoError(t, repo.UpdateOrder(ctx, models.Order{ID: first.ID, Customer: "Ann", Item: "Rye", Quantity: 1}))
	got, err := repo.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rye", got.Item)
	assert.Equal(t, "Pending", got.Status)

	require.NoError(t, repo.DeleteOrder(ctx, first.ID))
	_, err = repo.GetOrder(ctx, first.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, repo.DeleteOrder(ctx, first.ID), ErrOrderNotFound)
}
