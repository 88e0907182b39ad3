// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/bakery-orders/models"
)

var (
	userColumns  = []string{"id", "username", "email", "password_hash", "created_at"}
	orderColumns = []string{"id", "customer", "item", "quantity", "status", "created_at"}
)

// buildCreateUserQuery returns an INSERT that yields the generated id.
// Both PostgreSQL and SQLite (3.35+) support RETURNING.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCreateOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Insert(order.TableName()).
		Columns("customer", "item", "quantity", "status", "created_at").
		Values(order.Customer, order.Item, order.Quantity, order.Status, order.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildListOrdersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(orderColumns...).
		From(models.Order{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetOrderQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(orderColumns...).
		From(models.Order{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateOrderQuery leaves status untouched when order.Status is empty.
func buildUpdateOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	update := b.Update(order.TableName()).
		Set("customer", order.Customer).
		Set("item", order.Item).
		Set("quantity", order.Quantity)

	if order.Status != "" {
		update = update.Set("status", order.Status)
	}

	return update.Where(sq.Eq{"id": order.ID}).ToSql()
}

func buildDeleteOrderQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Order{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
