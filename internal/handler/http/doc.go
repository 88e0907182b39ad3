// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the bakery backend.
//
// It wires the chi router, request handlers for registration, login and
// orders, and the middleware chain: panic recovery, CORS, trace IDs, access
// logging and Prometheus metrics. Handlers decode requests, delegate to the
// service layer and translate service error kinds into HTTP statuses.
package http
