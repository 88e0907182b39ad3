// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), hash)

	ok, err := CheckPassword(hash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_FreshSaltEveryCall(t *testing.T) {
	first, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_CostIsEncoded(t *testing.T) {
	hash, err := HashPassword("x", 5)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "secret")

	assert.False(t, ok)
	assert.Error(t, err)
}
