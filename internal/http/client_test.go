package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sbhttp "github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func (l *MockLogger) messages(level string) []string {
	var msgs []string

	for _, entry := range l.logs {
		if entry["level"] == level {
			msgs = append(msgs, entry["msg"].(string))
		}
	}

	return msgs
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request with standard headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/books", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "XMLHttpRequest", request.Header.Get("X-Requested-With"))
			assert.Equal(t, "subledger-go", request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("Authorization"))

			response := map[string]string{"id": "b1"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &sbhttp.Request{
			Method: "GET",
			Path:   "/books",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = resp.DecodeJSON(&result)
		require.NoError(t, err)
		assert.Equal(t, "b1", result["id"])
	})

	t.Run("basic auth header after SetCredentials", func(t *testing.T) {
		t.Parallel()

		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("k:s"))

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expected, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)
		assert.False(t, client.HasCredentials())

		client.SetCredentials("k", "s")
		assert.True(t, client.HasCredentials())

		_, err := client.Get(context.Background(), "/orgs", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "active", request.URL.Query().Get("state"))
			assert.Equal(t, "ending", request.URL.Query().Get("action"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		query := url.Values{}
		query.Set("state", "active")
		query.Set("action", "ending")

		_, err := client.Get(context.Background(), "/books", query)
		require.NoError(t, err)
	})

	t.Run("POST sends JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "main ledger", body["description"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/books", map[string]string{"description": "main ledger"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("form-encoded legacy mode", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Empty(t, request.Header.Get("Authorization"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "main ledger", request.PostForm.Get("description"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL, sbhttp.WithFormEncodedBodies())
		client.SetCredentials("k", "s")

		_, err := client.Post(context.Background(), "/books", map[string]string{"description": "main ledger"})
		require.NoError(t, err)
	})

	t.Run("error response with exception field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]string{"exception": "description is required"})
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/books", map[string]string{})
		require.Error(t, err)
		require.NotNil(t, resp)

		var apiErr *subledger.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "description is required", apiErr.Exception)
	})

	t.Run("error response with non-JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("<html>boom</html>"))
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/books", nil)
		require.Error(t, err)

		var apiErr *subledger.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Empty(t, apiErr.Exception)
	})

	t.Run("empty body success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/books", nil)
		require.NoError(t, err)

		var result map[string]string

		err = resp.DecodeJSON(&result)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("304 is a success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotModified)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/books", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	})

	t.Run("transport failure maps to sentinel", func(t *testing.T) {
		t.Parallel()

		// Closed server port.
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := sbhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/books", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, subledger.ErrTransportUnavailable)
	})

	t.Run("timeout maps to timeout sentinel", func(t *testing.T) {
		t.Parallel()

		started := time.Now()
		blocked := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			<-blocked
		}))
		defer server.Close()
		defer close(blocked)

		client := sbhttp.NewClient(server.URL, sbhttp.WithTimeout(10*time.Millisecond))

		_, err := client.Get(context.Background(), "/books", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, subledger.ErrRequestTimeout)
		assert.Less(t, time.Since(started), 2*time.Second)
	})

	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/books", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries when opted in", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if calls.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL,
			sbhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "/books", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "acme-billing/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := sbhttp.NewClient(server.URL, sbhttp.WithUserAgent("acme-billing/1.0"))

		_, err := client.Get(context.Background(), "/books", nil)
		require.NoError(t, err)
	})
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"active_book":{"id":"b1"}}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := sbhttp.NewClient(server.URL, sbhttp.WithLogger(logger), sbhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/books", nil)
	require.NoError(t, err)

	msgs := logger.messages("debug")
	assert.Contains(t, msgs, "HTTP Request")
	assert.Contains(t, msgs, "HTTP Response")
}

func TestClient_DebugLoggingOnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"exception":"no such book"}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := sbhttp.NewClient(server.URL, sbhttp.WithLogger(logger), sbhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/books/missing", nil)
	require.Error(t, err)

	msgs := logger.messages("error")
	assert.Contains(t, msgs, "HTTP Response")
}

func TestIsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"200 OK", 200, true},
		{"201 Created", 201, true},
		{"204 No Content", 204, true},
		{"299 edge of range", 299, true},
		{"304 Not Modified", 304, true},
		{"199 below range", 199, false},
		{"300 Multiple Choices", 300, false},
		{"301 Moved Permanently", 301, false},
		{"400 Bad Request", 400, false},
		{"404 Not Found", 404, false},
		{"500 Internal Server Error", 500, false},
		{"0 missing status", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sbhttp.IsSuccess(tt.status))
		})
	}
}

func TestResponse_DecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("invalid JSON fails", func(t *testing.T) {
		t.Parallel()

		resp := &sbhttp.Response{StatusCode: 200, Body: []byte("not json")}

		var result map[string]string

		err := resp.DecodeJSON(&result)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing response body")
	})

	t.Run("envelope decodes", func(t *testing.T) {
		t.Parallel()

		resp := &sbhttp.Response{StatusCode: 200, Body: []byte(`{"active_book":{"id":"b1","version":1}}`)}

		var result subledger.BookResponse

		err := resp.DecodeJSON(&result)
		require.NoError(t, err)
		require.NotNil(t, result.ActiveBook)
		assert.Equal(t, "b1", result.ActiveBook.ID)
	})
}
