// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bakery-orders/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h", CreatedAt: at}

	query, args, err := buildCreateUserQuery(dollar, user)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,email,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING id", query)
	assert.Equal(t, []any{"alice", "alice@x.com", "h", at}, args)
}

func Test_buildFindUserByUsernameQuery_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{"postgres", dollar, "username = $1"},
		{"sqlite", question, "username = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserByUsernameQuery(tt.builder, "alice")

			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
			assert.Contains(t, query, "FROM users")
			for _, c := range userColumns {
				assert.Contains(t, query, c)
			}
			assert.Equal(t, []any{"alice"}, args)
		})
	}
}

func Test_buildCreateOrderQuery(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	order := models.Order{Customer: "Ann", Item: "Baguette", Quantity: 2, Status: "Pending", CreatedAt: at}

	query, args, err := buildCreateOrderQuery(question, order)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO orders (customer,item,quantity,status,created_at) VALUES (?,?,?,?,?) RETURNING id", query)
	assert.Equal(t, []any{"Ann", "Baguette", 2, "Pending", at}, args)
}

func Test_buildListOrdersQuery_NewestFirst(t *testing.T) {
	query, args, err := buildListOrdersQuery(dollar)

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, id DESC"), query)
}

func Test_buildUpdateOrderQuery(t *testing.T) {
	tests := []struct {
		name      string
		order     models.Order
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "status untouched when empty",
			order:     models.Order{ID: 4, Customer: "Ann", Item: "Rye", Quantity: 1},
			wantQuery: "UPDATE orders SET customer = $1, item = $2, quantity = $3 WHERE id = $4",
			wantArgs:  []any{"Ann", "Rye", 1, int64(4)},
		},
		{
			name:      "status set when provided",
			order:     models.Order{ID: 4, Customer: "Ann", Item: "Rye", Quantity: 1, Status: "Done"},
			wantQuery: "UPDATE orders SET customer = $1, item = $2, quantity = $3, status = $4 WHERE id = $5",
			wantArgs:  []any{"Ann", "Rye", 1, "Done", int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateOrderQuery(dollar, tt.order)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildGetAndDeleteOrderQuery(t *testing.T) {
	query, args, err := buildGetOrderQuery(dollar, 8)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, customer, item, quantity, status, created_at FROM orders WHERE id = $1", query)
	assert.Equal(t, []any{int64(8)}, args)

	query, args, err = buildDeleteOrderQuery(question, 8)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM orders WHERE id = ?", query)
	assert.Equal(t, []any{int64(8)}, args)
}
