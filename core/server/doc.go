// Package server holds configuration for the webhook trigger server.
//
// The server exposes the per-job trigger endpoints registered by the
// feature loader plus the Prometheus metrics endpoint. It is a
// machine-facing surface: every route except /metrics sits behind the
// API-key middleware.
package server
