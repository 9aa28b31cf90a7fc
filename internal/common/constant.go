// Package common contains shared constants used across SnipShare components.
package common

const (
	// APIKeyHeaderName carries the bearer API key on outbound requests.
	APIKeyHeaderName = "X-API-Key"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
