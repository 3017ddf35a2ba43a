// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bundle-config/internal/assembler"
	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/service"
	"github.com/MKhiriev/go-bundle-config/models"
)

var errorStatusMap = map[error]int{
	models.ErrUnknownMode:    http.StatusBadRequest,
	encoder.ErrUnknownFormat: http.StatusBadRequest,

	service.ErrValidationUnknownMode: http.StatusBadRequest,
	service.ErrValidationEmptyPath:   http.StatusBadRequest,
	service.ErrNoRuleMatched:         http.StatusNotFound,
	service.ErrValidationBundle:      http.StatusInternalServerError,

	assembler.ErrInvalidBuildConfig: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server side failures
// are reported without details.
func (h *Handler) writeError(w http.ResponseWriter, _ *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
