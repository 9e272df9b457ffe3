// Package server provides the binexpr HTTP service.
//
// The service exposes expression simplification and rendering over JSON:
//
//	POST /v1/simplify   parse, simplify, and render an expression
//	POST /v1/render     parse and render an expression without rewriting
//	GET  /v1/history    query recorded simplifications (when history is on)
//	GET  /healthz       liveness probe
//	GET  /metrics       Prometheus metrics (when enabled)
//
// Requests pass through a middleware chain (recovery, request ID, logging,
// metrics), and the server shuts down gracefully on SIGINT, SIGTERM, or
// context cancellation.
package server
