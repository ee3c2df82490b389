package sbclient

import (
	"fmt"
	"strings"

	"github.com/subledger-io/subledger-go/internal/client"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// New creates a new Subledger API client from the given configuration.
//
// An empty BaseURL selects subledger.DefaultBaseURL. A base URL without a
// scheme is assumed to be https. Construction never performs network I/O.
func New(config *subledger.Config) (subledger.Client, error) {
	if config == nil {
		return nil, subledger.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithCredentials creates a client for the given endpoint authenticated
// with an identity key and secret. An empty baseURL selects
// subledger.DefaultBaseURL.
func NewWithCredentials(baseURL, key, secret string) (subledger.Client, error) {
	return New(&subledger.Config{
		BaseURL: baseURL,
		Key:     key,
		Secret:  secret,
	})
}

// NewWithEndpoint creates an unauthenticated client for the given endpoint.
// Only identity creation is usable until credentials are supplied through
// SetCredentials.
func NewWithEndpoint(baseURL string) (subledger.Client, error) {
	return New(&subledger.Config{BaseURL: baseURL})
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return subledger.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
