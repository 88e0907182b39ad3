// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered bakery staff account.
// PasswordHash is a bcrypt digest and is never serialized to clients.
type User struct {
	// UserID is assigned by the store on creation.
	UserID int64 `json:"id"`

	// Username is unique across all users and is the login identifier.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Projection returns the public view of the user returned after login.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserProjection is the minimal user representation handed back to callers.
// It deliberately has no password field.
type UserProjection struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
