package http

import (
	"context"
	"fmt"
)

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response has been normalized.
// outcome is nil for successful calls and the normalized error otherwise.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response, outcome error) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor appends a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response, outcome error) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp, outcome)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingRequestInterceptor logs outgoing requests.
func LoggingRequestInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"query":  req.Query.Encode(),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs normalized responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response, outcome error) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
			"body":        bodyPreview(resp.Body),
		}

		if outcome != nil {
			fields["error"] = outcome.Error()
			logger.Error("HTTP Response", fields)
		} else {
			logger.Debug("HTTP Response", fields)
		}

		return nil
	}
}
