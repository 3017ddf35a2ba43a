// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressLevel is the gzip level used for API and static responses.
const compressLevel = 5

var compressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"application/yaml",
	"image/svg+xml",
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressLevel, compressibleTypes...))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/config/diff", h.getConfigDiff)
		r.Get("/config/{mode}", h.getConfig)
		r.Get("/rules/match", h.matchRule)
	})

	if h.distPath != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.distPath)))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
