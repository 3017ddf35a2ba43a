// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides HTTP helpers shared by the server handlers and the
// client adapter.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// HTML characters are not escaped, so rule tests and loader queries keep
// their literal "&", "<" and ">" characters. If marshaling fails, it
// responds with 500 Internal Server Error and returns a wrapped error.
//
//	WriteJSON(w, rule, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
