// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server that exposes the configuration API and
// the output directory.
//
// The server stops gracefully when its context is cancelled or the process
// receives SIGINT, SIGTERM or SIGQUIT.
package server
