package subledger

import (
	"errors"
	"fmt"
)

// APIError represents an error response from the Subledger API. The server
// reports failures with a JSON body carrying an "exception" message.
type APIError struct {
	StatusCode int    `json:"-"`
	Exception  string `json:"exception"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Exception == "" {
		return fmt.Sprintf("subledger: request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("subledger: %s (status: %d)", e.Exception, e.StatusCode)
}

// Static errors for the transport taxonomy and client-side guards.
var (
	// ErrTransportUnavailable reports that no HTTP transport could be used
	// to carry the request. Terminal, never retried.
	ErrTransportUnavailable = errors.New("HTTP transport unavailable")

	// ErrRequestTimeout reports that the configured request timeout elapsed
	// before the request completed; the in-flight request was aborted.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrCredentialsRequired reports that an operation needs credentials
	// which have not been configured on the client. This is a client-side
	// guard only; the server enforces authentication regardless.
	ErrCredentialsRequired = errors.New("credentials required: call SetCredentials first")

	// ErrBaseURLRequired reports a configuration without a usable base URL.
	ErrBaseURLRequired = errors.New("base URL is required")

	// ErrConfigRequired reports a nil configuration.
	ErrConfigRequired = errors.New("config is required")
)

// IsTimeout checks whether the error reports an aborted request.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrRequestTimeout)
}

// IsTransportUnavailable checks whether the error reports a transport that
// could not carry the request at all.
func IsTransportUnavailable(err error) bool {
	return errors.Is(err, ErrTransportUnavailable)
}

// IsNotFound checks whether the error is an API error with a 404 status.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}

	return false
}

// IsUnauthorized checks whether the error is an API error with a 401 status.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}

	return false
}
