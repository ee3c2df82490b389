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

func TestBooksClient_List(t *testing.T) {
	t.Parallel()
	t.Run("fills active ending description defaults", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_books": [{"id": "b1"}]}`)

		result, err := c.Org("o1").Books().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Books(), 1)

		req := rec.last(t)
		assert.Equal(t, "/orgs/o1/books", req.Path)
		assert.Equal(t, subledger.StateActive, req.Query.Get("state"))
		assert.Equal(t, subledger.ActionEnding, req.Query.Get("action"))
		assert.Equal(t, "255", req.Query.Get("description"))
	})

	t.Run("starting direction flips the description cursor", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_books": []}`)

		params := (&subledger.ListParams{}).WithAction(subledger.ActionStarting)

		_, err := c.Org("o1").Books().List(context.Background(), params)
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, subledger.ActionStarting, req.Query.Get("action"))
		assert.Equal(t, "0", req.Query.Get("description"))
	})
}

func TestBooksClient_Create(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusCreated, `{"active_book": {"id": "b1", "description": "general ledger"}}`)

	result, err := c.Org("o1").Books().Create(context.Background(), &subledger.BookCreateRequest{
		Description: "general ledger",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", result.Book().ID)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/orgs/o1/books", req.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "general ledger", body["description"])
}

func TestBookClient(t *testing.T) {
	t.Parallel()
	t.Run("get", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_book": {"id": "b1"}}`)

		result, err := c.Org("o1").Book("b1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "b1", result.Book().ID)
		assert.Equal(t, "/orgs/o1/books/b1", rec.last(t).Path)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_book": {"id": "b1", "version": 3}}`)

		_, err := c.Org("o1").Book("b1").Update(context.Background(), &subledger.BookUpdateRequest{
			Description: "renamed",
			Version:     3,
		})
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/orgs/o1/books/b1", req.Path)
	})

	t.Run("activate and archive post to the state actions", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"archived_book": {"id": "b1"}}`)

		result, err := c.Org("o1").Book("b1").Archive(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result.ArchivedBook)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/orgs/o1/books/b1/archive", req.Path)
		assert.Empty(t, req.Body)

		_, err = c.Org("o1").Book("b1").Activate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/activate", rec.last(t).Path)
	})

	t.Run("sibling navigators keep independent paths", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{}`)

		book := c.Org("o1").Book("b1")

		_, err := book.Account("a1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1", rec.last(t).Path)

		_, err = book.JournalEntry("j1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/journal_entries/j1", rec.last(t).Path)

		_, err = book.Category("c1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/categories/c1", rec.last(t).Path)

		_, err = book.Report("r1").Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1", rec.last(t).Path)
	})
}
