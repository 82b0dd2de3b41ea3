// Package api provides the HTTP API layer for the OMX store registry
// service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the registry query routes over the store
// instances loaded at startup. Two named deployments of the registry,
// "platform" and "vendor", are hosted side by side and selected by the
// {instance} path segment.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/{instance}/attributes       - service-scoped attributes
//   - GET /v1/{instance}/roles            - codec roles with ordered nodes
//   - GET /v1/{instance}/prefix           - the configured node-name prefix
//   - GET /v1/{instance}/providers/{name} - resolve a provider by name
//
// System endpoints (no rate limiting):
//   - GET /health  - health check (liveness probe)
//   - GET /ready   - readiness check
//   - GET /metrics - Prometheus metrics
//
// A provider lookup miss returns 404 with a structured NOT_FOUND body;
// absence is a normal outcome and is always distinguishable from an
// internal fault (5xx).
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/omx-store/pkg/api.version=1.0.0'"
package api
