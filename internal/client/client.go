package client

import (
	"time"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// core carries the pieces shared by every navigator: the transport, the
// logger for deprecation warnings, and the clock used for timestamp
// defaults.
type core struct {
	http   *http.Client
	logger subledger.Logger
	now    func() time.Time
}

// warnDeprecated emits the single consistent deprecation warning used by all
// retained legacy operations. Advisory only; never affects the error channel.
func (c *core) warnDeprecated(operation, replacement string) {
	if c.logger == nil {
		return
	}

	c.logger.Warn("deprecated operation", map[string]interface{}{
		"operation":   operation,
		"replacement": replacement,
	})
}

// Client implements subledger.Client.
type Client struct {
	core *core
}

// buildHTTPOptions converts the public configuration into transport options.
func buildHTTPOptions(config *subledger.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := 30 * time.Second

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.LegacyFormEncoding {
		opts = append(opts, http.WithFormEncodedBodies())
	}

	return opts
}

// New creates a new Subledger API client. Construction performs no network
// calls.
func New(config *subledger.Config) (*Client, error) {
	if config == nil {
		return nil, subledger.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, subledger.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, buildHTTPOptions(config)...)

	if config.Key != "" || config.Secret != "" {
		httpClient.SetCredentials(config.Key, config.Secret)
	}

	return &Client{
		core: &core{
			http:   httpClient,
			logger: config.Logger,
			now:    func() time.Time { return time.Now().UTC() },
		},
	}, nil
}

// SetCredentials implements subledger.Client.SetCredentials.
func (c *Client) SetCredentials(key, secret string) {
	c.core.http.SetCredentials(key, secret)
}

// HasCredentials implements subledger.Client.HasCredentials.
func (c *Client) HasCredentials() bool {
	return c.core.http.HasCredentials()
}

// Organizations implements subledger.Client.Organizations.
func (c *Client) Organizations() subledger.OrganizationsClient {
	return &OrganizationsClient{core: c.core, path: resourcePath{}.collection("orgs")}
}

// Organization implements subledger.Client.Organization.
func (c *Client) Organization(orgID string) subledger.OrganizationClient {
	return &OrganizationClient{core: c.core, path: resourcePath{}.item("orgs", orgID)}
}

// Orgs is the short spelling of Organizations.
func (c *Client) Orgs() subledger.OrganizationsClient {
	return c.Organizations()
}

// Org is the short spelling of Organization.
func (c *Client) Org(orgID string) subledger.OrganizationClient {
	return c.Organization(orgID)
}

// Identities implements subledger.Client.Identities.
func (c *Client) Identities() subledger.IdentitiesClient {
	return &IdentitiesClient{core: c.core, path: resourcePath{}.collection("identities")}
}

// Identity implements subledger.Client.Identity.
func (c *Client) Identity(identityID string) subledger.IdentityClient {
	return &IdentityClient{core: c.core, path: resourcePath{}.item("identities", identityID)}
}

// loggerAdapter adapts subledger.Logger to http.Logger.
type loggerAdapter struct {
	logger subledger.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
