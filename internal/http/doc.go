// Package http implements the HTTP transport core of the Subledger client:
// request dispatch through hashicorp/go-retryablehttp, HTTP Basic credential
// headers, response normalization into the subledger error taxonomy, and an
// interceptor chain for request/response observation.
//
// The client never retries by default; WithRetryConfig opts in to
// transparent retries of transport errors and 5xx/429 responses.
package http
