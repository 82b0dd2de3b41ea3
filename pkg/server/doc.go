// Package server provides a reusable HTTP server with middleware for
// rate limiting, request ID propagation, API version negotiation, panic
// recovery, Prometheus metrics, structured error responses, and graceful
// shutdown. Application packages register their route handlers through
// options; see pkg/api for the registry wiring.
package server
