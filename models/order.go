// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultOrderStatus is assigned to orders created without an explicit status.
const DefaultOrderStatus = "Pending"

// Order is a single customer order placed with the bakery.
type Order struct {
	ID        int64     `json:"id"`
	Customer  string    `json:"customer"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
