// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/bakery-orders/internal/store"
	"github.com/MKhiriev/bakery-orders/models"
)

// memoryUserRepository is an in-memory store.UserRepository enforcing the
// same uniqueness rules as the users table.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
	emails map[string]struct{}
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		users:  make(map[string]models.User),
		emails: make(map[string]struct{}),
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return models.User{}, store.ErrUserAlreadyExists
	}
	if _, ok := m.emails[user.Email]; ok {
		return models.User{}, store.ErrUserAlreadyExists
	}

	m.nextID++
	user.UserID = m.nextID
	m.users[user.Username] = user
	m.emails[user.Email] = struct{}{}

	return user, nil
}

func (m *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}

	return user, nil
}

func (m *memoryUserRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memoryUserRepository) hashOf(username string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[username].PasswordHash
}
