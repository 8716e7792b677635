// Package clients provides the HTTP transport used by upstream adapters.
package clients

import "errors"

// Client errors represent failures in the HTTP client layer.
// These are distinct from domain errors - they represent infrastructure failures
// that should be translated to domain errors by the calling adapter.
var (
	// ErrTransport wraps every failure to complete an HTTP exchange
	// (DNS, connect, TLS, timeout, cancellation). The original error is wrapped too.
	ErrTransport = errors.New("transport failure")
)
