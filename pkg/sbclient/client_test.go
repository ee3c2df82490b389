package sbclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config is rejected", func(t *testing.T) {
		t.Parallel()

		c, err := New(nil)
		require.ErrorIs(t, err, subledger.ErrConfigRequired)
		assert.Nil(t, c)
	})

	t.Run("empty base URL selects the hosted endpoint", func(t *testing.T) {
		t.Parallel()

		c, err := New(&subledger.Config{})
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("caller's config is not mutated", func(t *testing.T) {
		t.Parallel()

		config := &subledger.Config{BaseURL: "example.com/"}

		_, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, "example.com/", config.BaseURL)
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	c, err := NewWithCredentials("https://api.example.com", "key", "secret")
	require.NoError(t, err)
	assert.True(t, c.HasCredentials())
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	c, err := NewWithEndpoint("https://api.example.com")
	require.NoError(t, err)
	assert.False(t, c.HasCredentials())
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty selects the default", "", subledger.DefaultBaseURL},
		{"trailing slash is trimmed", "https://api.example.com/", "https://api.example.com"},
		{"bare host gets https", "api.example.com", "https://api.example.com"},
		{"http is preserved", "http://localhost:8080", "http://localhost:8080"},
		{"https is preserved", "https://api.example.com/v1", "https://api.example.com/v1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, normalizeBaseURL(test.input))
		})
	}
}
