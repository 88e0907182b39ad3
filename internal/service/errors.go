// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Error kinds. Every error returned by a service matches exactly one of them
// via [errors.Is].
var (
	// ErrInvalidInput means a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means the request collides with existing data.
	ErrConflict = errors.New("conflict")

	// ErrNotFound means the addressed user or order does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the supplied credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal wraps unexpected store or runtime failures. Its message
	// carries the cause and must not be shown to clients.
	ErrInternal = errors.New("internal error")
)

// Client-facing errors. Their messages are safe to return over the API.
var (
	ErrAllFieldsRequired = kindError(ErrInvalidInput, "all fields required")
	ErrPasswordTooLong   = kindError(ErrInvalidInput, "password is too long")
	ErrInvalidOrder      = kindError(ErrInvalidInput, "customer, item and a positive quantity are required")
	ErrUserExists        = kindError(ErrConflict, "username or email already exists")
	ErrUserNotFound      = kindError(ErrNotFound, "user not found")
	ErrOrderNotFound     = kindError(ErrNotFound, "order not found")
	ErrIncorrectPassword = kindError(ErrUnauthorized, "incorrect password")
)

// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when neither
// the build nor the configuration carries a version.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")

// serviceError is a client-safe message bound to one error kind.
type serviceError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

func (e *serviceError) Error() string {
	return e.msg
}

func (e *serviceError) Unwrap() error {
	return e.kind
}
