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

func TestReportsClient(t *testing.T) {
	t.Parallel()
	t.Run("list fills active ending description defaults", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_reports": [{"id": "r1"}]}`)

		result, err := c.Org("o1").Book("b1").Reports().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Reports(), 1)

		req := rec.last(t)
		assert.Equal(t, "/orgs/o1/books/b1/reports", req.Path)
		assert.Equal(t, subledger.StateActive, req.Query.Get("state"))
		assert.Equal(t, subledger.ActionEnding, req.Query.Get("action"))
		assert.Equal(t, "255", req.Query.Get("description"))
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusCreated, `{"active_report": {"id": "r1", "description": "balance sheet"}}`)

		result, err := c.Org("o1").Book("b1").Reports().Create(context.Background(), &subledger.ReportCreateRequest{
			Description: "balance sheet",
		})
		require.NoError(t, err)
		assert.Equal(t, "r1", result.Report().ID)
		assert.Equal(t, "/orgs/o1/books/b1/reports", rec.last(t).Path)
	})
}

func TestReportClient(t *testing.T) {
	t.Parallel()
	t.Run("attach names the category in the body", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_report": {"id": "r1"}}`)

		_, err := c.Org("o1").Book("b1").Report("r1").Attach(context.Background(), "c1")
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1/attach", req.Path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(req.Body, &body))
		assert.Equal(t, "c1", body["category"])
	})

	t.Run("detach names the category in the body", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"active_report": {"id": "r1"}}`)

		_, err := c.Org("o1").Book("b1").Report("r1").Detach(context.Background(), "c1")
		require.NoError(t, err)

		req := rec.last(t)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1/detach", req.Path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(req.Body, &body))
		assert.Equal(t, "c1", body["category"])
	})

	t.Run("render posts with the rendering timestamp", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"building_report_rendering": {"id": "rr1"}}`)

		at := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

		result, err := c.Org("o1").Book("b1").Report("r1").Render(context.Background(), at)
		require.NoError(t, err)
		assert.Equal(t, "rr1", result.ReportRendering().ID)

		req := rec.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1/render", req.Path)
		assert.Equal(t, "2025-12-31T23:59:59Z", req.Query.Get("at"))
	})

	t.Run("render defaults a zero timestamp to now", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"building_report_rendering": {"id": "rr1"}}`)

		_, err := c.Org("o1").Book("b1").Report("r1").Render(context.Background(), time.Time{})
		require.NoError(t, err)

		_, err = time.Parse(time.RFC3339Nano, rec.last(t).Query.Get("at"))
		require.NoError(t, err)
	})

	t.Run("state transitions", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestClient(t, http.StatusOK, `{"archived_report": {"id": "r1"}}`)

		result, err := c.Org("o1").Book("b1").Report("r1").Archive(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result.ArchivedReport)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1/archive", rec.last(t).Path)

		_, err = c.Org("o1").Book("b1").Report("r1").Activate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/orgs/o1/books/b1/reports/r1/activate", rec.last(t).Path)
	})
}

func TestReportRenderingClient_Get(t *testing.T) {
	t.Parallel()

	c, rec := newTestClient(t, http.StatusOK, `{"completed_report_rendering": {"id": "rr1"}}`)

	result, err := c.Org("o1").Book("b1").ReportRendering("rr1").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rr1", result.ReportRendering().ID)

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/orgs/o1/books/b1/report_renderings/rr1", req.Path)
}
