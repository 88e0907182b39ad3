// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/bakery-orders/internal/config"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/store"
	"github.com/MKhiriev/bakery-orders/internal/utils"
	"github.com/MKhiriev/bakery-orders/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor for new password hashes.
	hashCost int

	// hashLimiter caps the number of bcrypt computations running at once.
	hashLimiter *semaphore.Weighted

	// storeTimeout bounds every repository call.
	storeTimeout time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	concurrency := cfg.HashConcurrency
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		hashLimiter:    semaphore.NewWeighted(int64(concurrency)),
		storeTimeout:   cfg.StoreTimeout,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns:
//   - ErrAllFieldsRequired if username, email or password is empty.
//   - ErrPasswordTooLong if bcrypt cannot digest the password.
//   - ErrUserExists if the username or email is taken.
//   - ErrInternal wrapping the cause for any other failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Debug().Str("func", "authService.Register").Msg("missing registration fields")
		return ErrAllFieldsRequired
	}

	hash, err := a.hashPassword(ctx, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return fmt.Errorf("%w: hashing password: %w", ErrInternal, err)
	}

	storeCtx, cancel := withStoreTimeout(ctx, a.storeTimeout)
	defer cancel()

	_, err = a.userRepository.CreateUser(storeCtx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrUserAlreadyExists):
		log.Info().Str("func", "authService.Register").Str("username", req.Username).Msg("username or email already exists")
		return ErrUserExists
	case err != nil:
		log.Err(err).Str("func", "authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return fmt.Errorf("%w: user creation ended with error: %w", ErrInternal, err)
	}

	log.Info().Str("func", "authService.Register").Str("username", req.Username).Msg("user registered")
	return nil
}

// Login authenticates an existing user.
//
// Returns the user's public projection or:
//   - ErrAllFieldsRequired if username or password is empty.
//   - ErrUserNotFound if no user has that exact username.
//   - ErrIncorrectPassword if the password does not match the stored hash.
//   - ErrInternal wrapping the cause for any other failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.UserProjection, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Debug().Str("func", "authService.Login").Msg("missing login fields")
		return models.UserProjection{}, ErrAllFieldsRequired
	}

	storeCtx, cancel := withStoreTimeout(ctx, a.storeTimeout)
	defer cancel()

	user, err := a.userRepository.FindUserByUsername(storeCtx, req.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Info().Str("func", "authService.Login").Str("username", req.Username).Msg("user not found")
		return models.UserProjection{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "authService.Login").Str("username", req.Username).Msg("user search by username failed")
		return models.UserProjection{}, fmt.Errorf("%w: user search by username failed: %w", ErrInternal, err)
	}

	ok, err := a.checkPassword(ctx, user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("id", user.UserID).Msg("password verification failed")
		return models.UserProjection{}, fmt.Errorf("%w: password verification failed: %w", ErrInternal, err)
	}
	if !ok {
		log.Info().Str("func", "authService.Login").Int64("id", user.UserID).Msg("wrong password")
		return models.UserProjection{}, ErrIncorrectPassword
	}

	return user.Projection(), nil
}

func (a *authService) hashPassword(ctx context.Context, password string) (string, error) {
	if err := a.hashLimiter.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer a.hashLimiter.Release(1)

	return utils.HashPassword(password, a.hashCost)
}

func (a *authService) checkPassword(ctx context.Context, hash, password string) (bool, error) {
	if err := a.hashLimiter.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer a.hashLimiter.Release(1)

	return utils.CheckPassword(hash, password)
}
