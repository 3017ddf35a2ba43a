// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It serves the build output directory and a read-only API for the
// assembled bundler configuration: rendering per mode, the development vs
// production diff, and transform rule lookup. Request tracing, access
// logging and response compression are handled here before requests reach
// the service layer.
package http
