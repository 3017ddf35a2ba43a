// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of 405 when the requested method is not
// registered for the path. Routes of mounted subrouters are included in the
// lookup; only exact patterns are compared.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegistered(router, r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func methodRegistered(router chi.Routes, method, path string) bool {
	found := false
	_ = chi.Walk(router, func(m string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == path && m == method {
			found = true
		}
		return nil
	})

	return found
}
