package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// ReportsClient implements subledger.ReportsClient.
type ReportsClient struct {
	core *core
	path resourcePath
}

// List implements subledger.ReportsClient.List.
func (c *ReportsClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.ReportsResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListReports, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var result subledger.ReportsResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing reports list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.ReportsClient.Create.
func (c *ReportsClient) Create(ctx context.Context, request *subledger.ReportCreateRequest) (*subledger.ReportResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}

	return decodeReport(resp)
}

// ReportClient implements subledger.ReportClient.
type ReportClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.ReportClient.Get.
func (c *ReportClient) Get(ctx context.Context) (*subledger.ReportResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	return decodeReport(resp)
}

// Update implements subledger.ReportClient.Update.
func (c *ReportClient) Update(ctx context.Context, request *subledger.ReportUpdateRequest) (*subledger.ReportResponse, error) {
	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating report: %w", err)
	}

	return decodeReport(resp)
}

// Activate implements subledger.ReportClient.Activate.
func (c *ReportClient) Activate(ctx context.Context) (*subledger.ReportResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating report: %w", err)
	}

	return decodeReport(resp)
}

// Archive implements subledger.ReportClient.Archive.
func (c *ReportClient) Archive(ctx context.Context) (*subledger.ReportResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving report: %w", err)
	}

	return decodeReport(resp)
}

// Attach implements subledger.ReportClient.Attach.
func (c *ReportClient) Attach(ctx context.Context, categoryID string) (*subledger.ReportResponse, error) {
	body := map[string]string{"category": categoryID}

	resp, err := c.core.http.Post(ctx, c.path.action("attach"), body)
	if err != nil {
		return nil, fmt.Errorf("attaching category to report: %w", err)
	}

	return decodeReport(resp)
}

// Detach implements subledger.ReportClient.Detach.
func (c *ReportClient) Detach(ctx context.Context, categoryID string) (*subledger.ReportResponse, error) {
	body := map[string]string{"category": categoryID}

	resp, err := c.core.http.Post(ctx, c.path.action("detach"), body)
	if err != nil {
		return nil, fmt.Errorf("detaching category from report: %w", err)
	}

	return decodeReport(resp)
}

// Render implements subledger.ReportClient.Render. A zero at means "now".
func (c *ReportClient) Render(ctx context.Context, at time.Time) (*subledger.ReportRenderingResponse, error) {
	if at.IsZero() {
		at = c.core.now()
	}

	query := url.Values{}
	query.Set("at", at.UTC().Format(time.RFC3339Nano))

	resp, err := c.core.http.PostWithQuery(ctx, c.path.action("render"), query, nil)
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return decodeReportRendering(resp)
}

// ReportRenderingClient implements subledger.ReportRenderingClient.
type ReportRenderingClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.ReportRenderingClient.Get.
func (c *ReportRenderingClient) Get(ctx context.Context) (*subledger.ReportRenderingResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting report rendering: %w", err)
	}

	return decodeReportRendering(resp)
}

func decodeReport(resp *http.Response) (*subledger.ReportResponse, error) {
	var result subledger.ReportResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing report response: %w", err)
	}

	return &result, nil
}

func decodeReportRendering(resp *http.Response) (*subledger.ReportRenderingResponse, error) {
	var result subledger.ReportRenderingResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing report rendering response: %w", err)
	}

	return &result, nil
}
