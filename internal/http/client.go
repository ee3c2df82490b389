package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/subledger-io/subledger-go/pkg/subledger"
)

const defaultUserAgent = "subledger-go"

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// DecodeJSON unmarshals the response body into v. An empty body decodes to
// the zero value without error; a non-empty body that is not valid JSON is a
// contract violation and fails loudly.
func (r *Response) DecodeJSON(v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}

// credentials is the key/secret pair sent as HTTP Basic auth.
type credentials struct {
	key    string
	secret string
}

// Client dispatches requests against the Subledger API.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client

	mu    sync.RWMutex
	creds *credentials

	userAgent   string
	logger      Logger
	debug       bool
	timeout     time.Duration
	formEncoded bool

	interceptors *InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout aborts requests that have not completed within d. Zero
// disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetryConfig opts in to transparent retries of transport errors and
// 5xx/429 responses.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
		c.httpClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	}
}

// WithFormEncodedBodies selects the legacy wire protocol: POST/PATCH bodies
// are sent as application/x-www-form-urlencoded.
func WithFormEncodedBodies() Option {
	return func(c *Client) {
		c.formEncoded = true
	}
}

// WithRequestInterceptor appends a request interceptor.
func WithRequestInterceptor(interceptor RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(interceptor)
	}
}

// WithResponseInterceptor appends a response interceptor.
func WithResponseInterceptor(interceptor ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddResponseInterceptor(interceptor)
	}
}

// neverRetry is the default retry policy: fail fast, propagating only
// context cancellation.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// NewClient creates a new API transport rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.Logger = nil
	// Keep the response for status normalization even when retries give up.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		userAgent:    defaultUserAgent,
		interceptors: NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		client.interceptors.AddRequestInterceptor(LoggingRequestInterceptor(client.logger))
		client.interceptors.AddResponseInterceptor(LoggingResponseInterceptor(client.logger))
	}

	return client
}

// SetCredentials stores the key/secret pair used for HTTP Basic auth on
// every subsequent request. The last write wins; requests already in flight
// keep the credentials they were sent with.
func (c *Client) SetCredentials(key, secret string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds = &credentials{key: key, secret: secret}
}

// HasCredentials reports whether a credential pair is configured.
func (c *Client) HasCredentials() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.creds != nil
}

func (c *Client) basicAuthHeader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.creds == nil {
		return ""
	}

	token := base64.StdEncoding.EncodeToString([]byte(c.creds.key + ":" + c.creds.secret))

	return "Basic " + token
}

// encodeBody serializes the request body. GET requests never carry a body.
func (c *Client) encodeBody(req *Request) ([]byte, string, error) {
	if req.Body == nil || req.Method == http.MethodGet {
		return nil, "", nil
	}

	if c.formEncoded {
		encoded, err := formEncode(req.Body)
		if err != nil {
			return nil, "", err
		}

		return []byte(encoded), "application/x-www-form-urlencoded", nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return encoded, "application/json", nil
}

// formEncode renders an arbitrary body as a URL-encoded form, the wire
// format of the first-generation API.
func formEncode(body interface{}) (string, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request body: %w", err)
	}

	var fields map[string]interface{}

	err = json.Unmarshal(encoded, &fields)
	if err != nil {
		return "", fmt.Errorf("form-encoding request body: %w", err)
	}

	values := url.Values{}

	for key, value := range fields {
		switch v := value.(type) {
		case string:
			values.Set(key, v)
		case float64:
			values.Set(key, strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%f", v), "0"), "."))
		default:
			nested, err := json.Marshal(v)
			if err != nil {
				return "", fmt.Errorf("form-encoding field %q: %w", key, err)
			}

			values.Set(key, string(nested))
		}
	}

	return values.Encode(), nil
}

// Do dispatches the request and normalizes the outcome. A successful call
// returns the response; HTTP failures return both the response and a
// *subledger.APIError; transport failures return the matching sentinel.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, err
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", subledger.ErrTransportUnavailable, err)
	}

	c.setHeaders(httpReq, req, contentType)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil && httpResp == nil {
		return nil, c.classifyTransportError(ctx, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.classifyTransportError(ctx, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	outcome := c.normalize(resp)

	err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp, outcome)
	if err != nil {
		return resp, err
	}

	return resp, outcome
}

// setHeaders applies the standard header set, any per-request headers, and
// the Authorization header when credentials are configured. The legacy
// protocol never authenticated.
func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request, contentType string) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Requested-With", "XMLHttpRequest")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	} else {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !c.formEncoded {
		if auth := c.basicAuthHeader(); auth != "" {
			httpReq.Header.Set("Authorization", auth)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// classifyTransportError distinguishes the timeout abort from a transport
// that could not carry the request at all.
func (c *Client) classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", subledger.ErrRequestTimeout, err)
	}

	return fmt.Errorf("%w: %v", subledger.ErrTransportUnavailable, err)
}

// IsSuccess reports whether the status code classifies as a successful call:
// any 2xx status, or 304. A missing status (0) is never a success.
func IsSuccess(status int) bool {
	return (status >= 200 && status < 300) || status == http.StatusNotModified
}

// normalize classifies the response by status code and extracts the server's
// exception message from failed calls. The extraction is best effort: a
// failure body that is empty or not JSON yields an APIError with an empty
// exception.
func (c *Client) normalize(resp *Response) error {
	if IsSuccess(resp.StatusCode) {
		return nil
	}

	apiErr := &subledger.APIError{StatusCode: resp.StatusCode}

	if len(resp.Body) > 0 {
		_ = json.Unmarshal(resp.Body, apiErr)
	}

	return apiErr
}

// Get performs a GET request. Any body-like data is never sent on the wire.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostWithQuery performs a POST request with query parameters.
func (c *Client) PostWithQuery(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// bodyPreview truncates a body for debug logging.
func bodyPreview(body []byte) string {
	const maxPreview = 512

	if len(body) > maxPreview {
		return string(body[:maxPreview]) + "..."
	}

	return string(body)
}
