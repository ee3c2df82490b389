//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/subledger-io/subledger-go/pkg/sbclient"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIEndpoint string
	Key         string
	Secret      string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("SUBLEDGER_API"),
		Key:         os.Getenv("SUBLEDGER_KEY"),
		Secret:      os.Getenv("SUBLEDGER_SECRET"),
		Verbose:     os.Getenv("SUBLEDGER_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when required configuration is absent.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIEndpoint == "" || c.Key == "" || c.Secret == "" {
		t.Skip("Skipping integration test: SUBLEDGER_API, SUBLEDGER_KEY, and SUBLEDGER_SECRET must be set")
	}
}

// NewClient builds a client from the test configuration.
func (c *TestConfig) NewClient(t *testing.T) subledger.Client {
	t.Helper()

	config := &subledger.Config{
		BaseURL: c.APIEndpoint,
		Key:     c.Key,
		Secret:  c.Secret,
		Timeout: 30 * time.Second,
	}

	if c.Verbose {
		config.Debug = true
		config.Logger = &testLogger{t: t}
	}

	client, err := sbclient.New(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique name for test resources.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// testLogger routes client logs through the test log.
type testLogger struct {
	t *testing.T
}

func (l *testLogger) log(level, msg string, fields map[string]interface{}) {
	l.t.Logf("[%s] %s %v", level, msg, fields)
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }
