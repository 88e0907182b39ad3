// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getOrder)
				r.Put("/", h.updateOrder)
				r.Delete("/", h.deleteOrder)
			})
		})
	})

	return router
}
