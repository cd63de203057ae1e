package provider

import "errors"

// Common errors for the content provider.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("provider API key is not set")
	// ErrUnavailable indicates the remote provider could not be reached
	// or rejected the request (network or credential failure).
	ErrUnavailable = errors.New("content provider is unavailable")
	// ErrNoResult indicates the provider answered with an empty payload.
	ErrNoResult = errors.New("content provider returned no result")
	// ErrStreamClosed indicates a finished stream was read again.
	ErrStreamClosed = errors.New("message stream is closed")
)

// IsRecoverableError checks if an error leaves the client usable.
func IsRecoverableError(err error) bool {
	if err == nil {
		return true
	}
	// A missing key never recovers within the process lifetime.
	return !errors.Is(err, ErrMissingAPIKey)
}
