// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(resp.String())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
