// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the bakery backend.
//
// It owns the listener lifecycle: startup, stop signals and graceful
// shutdown bounded by the configured shutdown timeout.
package server
