// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bundle-config/internal/encoder"
	"github.com/MKhiriev/go-bundle-config/internal/logger"
	"github.com/MKhiriev/go-bundle-config/internal/utils"
	"github.com/MKhiriev/go-bundle-config/models"
	"github.com/go-chi/chi/v5"
)

const (
	modeURLParam    = "mode"
	formatQueryKey  = "format"
	modeQueryKey    = "mode"
	pathQueryKey    = "path"
	diffContentType = "text/plain; charset=utf-8"
)

// getConfig renders the configuration of the mode in the URL, in the format
// given by the "format" query parameter (json by default).
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	mode, err := models.ParseMode(chi.URLParam(r, modeURLParam))
	if err != nil {
		log.Err(err).Msg("invalid mode requested")
		h.writeError(w, r, err)
		return
	}

	format, err := encoder.ParseFormat(r.URL.Query().Get(formatQueryKey))
	if err != nil {
		log.Err(err).Msg("invalid format requested")
		h.writeError(w, r, err)
		return
	}

	data, err := h.services.ConfigService.Render(r.Context(), mode, format)
	if err != nil {
		log.Err(err).Str("mode", mode.String()).Msg("error rendering configuration")
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) getConfigDiff(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.ConfigService.Diff(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error computing configuration diff")
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", diffContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

// matchRule returns the first transform rule handling the "path" query
// parameter. "mode" is optional.
func (h *Handler) matchRule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := models.Mode(query.Get(modeQueryKey))

	rule, err := h.services.ConfigService.Match(r.Context(), mode, query.Get(pathQueryKey))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error matching transform rule")
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, rule, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing matched rule")
	}
}
