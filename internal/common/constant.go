// Package common contains shared constants, sentinel errors, and small
// helpers used by both the resumerag client and the local backend double.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates client and server log lines.
	RequestIDHeaderName = "X-Request-ID"
)

// Durable session keys. The client stores exactly these two values.
const (
	StorageKeyToken = "authToken"
	StorageKeyUser  = "authUser"
)
