package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/subledger-io/subledger-go/pkg/sbclient"
	"github.com/subledger-io/subledger-go/pkg/subledger"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrOrgRequired         = errors.New("organization is required (use --org or 'subledger config set org <id>')")
	ErrBookRequired        = errors.New("book is required (use --book or 'subledger config set book <id>')")
	ErrDescriptionRequired = errors.New("description is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrLinesFileRequired   = errors.New("a lines file is required (--lines-file)")
	ErrNoLinesInFile       = errors.New("lines file contains no lines")
	ErrInvalidAtTimestamp  = errors.New("invalid --at timestamp, expected RFC3339")
	ErrConfigKeyUnknown    = errors.New("unknown config key")
)

// createClient builds an API client from the effective configuration.
func createClient() (subledger.Client, error) {
	config := &subledger.Config{
		BaseURL: viper.GetString("api"),
		Key:     viper.GetString("key"),
		Secret:  viper.GetString("secret"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	client, err := sbclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// requireOrg resolves the target organization ID from the flag or config.
func requireOrg(orgFlag string) (string, error) {
	if orgFlag != "" {
		return orgFlag, nil
	}

	if org := viper.GetString("org"); org != "" {
		return org, nil
	}

	return "", ErrOrgRequired
}

// requireBook resolves the target book ID from the flag or config.
func requireBook(bookFlag string) (string, error) {
	if bookFlag != "" {
		return bookFlag, nil
	}

	if book := viper.GetString("book"); book != "" {
		return book, nil
	}

	return "", ErrBookRequired
}

// parseAtFlag parses the --at timestamp flag. Empty means "now" and is left
// to the client's own defaulting.
func parseAtFlag(at string) (time.Time, error) {
	if at == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidAtTimestamp, at)
	}

	return parsed, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderStructured renders data as JSON or YAML, returning false when the
// requested format is the table default.
func renderStructured[T any](data T) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, StandardJSONRenderer(data)
	case OutputFormatYAML:
		return true, StandardYAMLRenderer(data)
	default:
		return false, nil
	}
}

// formatValue renders a monetary value for table output.
func formatValue(value subledger.Value) string {
	if value.Type == "" {
		return NotAvailable
	}

	return fmt.Sprintf("%s %s", value.Amount, value.Type)
}

// formatTimestamp renders a timestamp for table output.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.UTC().Format("2006-01-02 15:04:05")
}

// orDefault substitutes N/A for empty strings in table cells.
func orDefault(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }
