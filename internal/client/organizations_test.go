package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

func TestOrganizationsClient_List(t *testing.T) {
	t.Parallel()
	t.Run("filters are passed through without defaults", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_orgs": [{"id": "o1"}]}`)

		result, err := c.Organizations().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Organizations(), 1)

		req := rec.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/orgs", req.Path)
		assert.Empty(t, req.Query.Get("state"))
		assert.Empty(t, req.Query.Get("action"))
		assert.Empty(t, req.Query.Get("description"))
	})

	t.Run("explicit filters appear verbatim", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"archived_orgs": []}`)

		params := (&subledger.ListParams{}).
			WithState(subledger.StateArchived).
			WithAction(subledger.ActionStarting).
			WithDescription("m")

		_, err := c.Organizations().List(context.Background(), params)
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, subledger.StateArchived, req.Query.Get("state"))
		assert.Equal(t, subledger.ActionStarting, req.Query.Get("action"))
		assert.Equal(t, "m", req.Query.Get("description"))
	})
}

func TestOrganizationsClient_Create(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusCreated, `{"active_org": {"id": "o1", "description": "acme", "version": 1}}`)

	result, err := c.Organizations().Create(context.Background(), &subledger.OrganizationCreateRequest{
		Description: "acme",
		Reference:   "https://acme.example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Organization())
	assert.Equal(t, "o1", result.Organization().ID)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/orgs", req.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "acme", body["description"])
	assert.Equal(t, "https://acme.example.com", body["reference"])
}

func TestOrganizationClient(t *testing.T) {
	t.Parallel()
	t.Run("get", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_org": {"id": "o1"}}`)

		result, err := c.Organization("o1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "o1", result.Organization().ID)

		req := rec.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/orgs/o1", req.Path)
	})

	t.Run("update sends the version for optimistic locking", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_org": {"id": "o1", "version": 2}}`)

		_, err := c.Organization("o1").Update(context.Background(), &subledger.OrganizationUpdateRequest{
			Description: "renamed",
			Version:     2,
		})
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/orgs/o1", req.Path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(req.Body, &body))
		assert.Equal(t, "renamed", body["description"])
		assert.InDelta(t, 2, body["version"], 0)
	})

	t.Run("organization identifiers are escaped in paths", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_org": {"id": "o 1"}}`)

		_, err := c.Organization("o 1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o 1", rec.last(t).Path)
	})
}
