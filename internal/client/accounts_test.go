package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

func TestAccountsClient(t *testing.T) {
	t.Parallel()
	t.Run("list fills account defaults", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_accounts": [{"id": "a1"}]}`)

		result, err := c.Org("o1").Book("b1").Accounts().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Accounts(), 1)

		req := rec.last(t)
		assert.Equal(t, "/orgs/o1/books/b1/accounts", req.Path)
		assert.Equal(t, subledger.StateActive, req.Query.Get("state"))
		assert.Equal(t, subledger.ActionEnding, req.Query.Get("action"))
		assert.Equal(t, "255", req.Query.Get("description"))
	})

	t.Run("create sends the normal balance", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusCreated, `{"active_account": {"id": "a1", "normal_balance": "debit"}}`)

		result, err := c.Org("o1").Book("b1").Accounts().Create(context.Background(), &subledger.AccountCreateRequest{
			Description:   "cash",
			NormalBalance: "debit",
		})
		require.NoError(t, err)
		assert.Equal(t, "debit", result.Account().NormalBalance)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)

		var body map[string]string
		require.NoError(t, json.Unmarshal(req.Body, &body))
		assert.Equal(t, "cash", body["description"])
		assert.Equal(t, "debit", body["normal_balance"])
	})
}

func TestAccountClient(t *testing.T) {
	t.Parallel()
	t.Run("balance queries the given timestamp", func(t *testing.T) {
		t.Parallel()

		payload := `{"balance": {"debit_value": {"type": "debit", "amount": "100"}, "credit_value": {"type": "credit", "amount": "0"}, "value": {"type": "debit", "amount": "100"}}}`
		c, rec := newTestClient(t, http.StatusOK, payload)

		at := time.Date(2025, 3, 14, 11, 30, 0, 0, time.UTC)

		result, err := c.Org("o1").Book("b1").Account("a1").Balance(context.Background(), at)
		require.NoError(t, err)
		assert.Equal(t, "100", result.Balance.Value.Amount)

		req := rec.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/balance", req.Path)
		assert.Equal(t, "2025-03-14T11:30:00Z", req.Query.Get("at"))
	})

	t.Run("balance defaults a zero timestamp to now", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"balance": {}}`)

		before := time.Now().UTC()

		_, err := c.Org("o1").Book("b1").Account("a1").Balance(context.Background(), time.Time{})
		require.NoError(t, err)

		at, err := time.Parse(time.RFC3339Nano, rec.last(t).Query.Get("at"))
		require.NoError(t, err)
		assert.False(t, at.Before(before.Truncate(time.Second)))
	})

	t.Run("first and last line", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"first_line": {"id": "l1"}, "last_line": {"id": "l9"}}`)

		result, err := c.Org("o1").Book("b1").Account("a1").FirstAndLastLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "l1", result.FirstLine.ID)
		assert.Equal(t, "l9", result.LastLine.ID)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/first_and_last_line", rec.last(t).Path)
	})

	t.Run("activate and archive", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_account": {"id": "a1"}}`)

		_, err := c.Org("o1").Book("b1").Account("a1").Activate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/activate", rec.last(t).Path)

		_, err = c.Org("o1").Book("b1").Account("a1").Archive(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/archive", rec.last(t).Path)
	})
}

func TestAccountLinesClient_List(t *testing.T) {
	t.Parallel()
	t.Run("fills timestamp paging defaults without a state filter", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"posted_lines": [{"id": "l1"}]}`)

		result, err := c.Org("o1").Book("b1").Account("a1").Lines().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Lines(), 1)

		req := rec.last(t)
		assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/lines", req.Path)
		assert.Empty(t, req.Query.Get("state"), "account lines are not filtered by state")
		assert.Equal(t, subledger.ActionEnding, req.Query.Get("action"))
		assert.NotEmpty(t, req.Query.Get("effective_at"))
	})

	t.Run("explicit effective_at is preserved", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"posted_lines": []}`)

		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		params := (&subledger.ListParams{}).WithEffectiveAt(at)

		_, err := c.Org("o1").Book("b1").Account("a1").Lines().List(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T03:04:05Z", rec.last(t).Query.Get("effective_at"))
	})
}

func TestAccountLineClient_Get(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, `{"posted_line": {"id": "l1"}}`)

	result, err := c.Org("o1").Book("b1").Account("a1").Line("l1").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "l1", result.Line().ID)
	assert.Equal(t, "/orgs/o1/books/b1/accounts/a1/lines/l1", rec.last(t).Path)
}
