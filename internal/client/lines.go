package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// AccountLinesClient implements subledger.AccountLinesClient. Account lines
// are the posted-line history of an account, paged chronologically by
// effective_at.
type AccountLinesClient struct {
	core *core
	path resourcePath
}

// List implements subledger.AccountLinesClient.List.
func (c *AccountLinesClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.LinesResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListAccountLines, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing account lines: %w", err)
	}

	var result subledger.LinesResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing account lines response: %w", err)
	}

	return &result, nil
}

// AccountLineClient implements subledger.AccountLineClient.
type AccountLineClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.AccountLineClient.Get.
func (c *AccountLineClient) Get(ctx context.Context) (*subledger.LineResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting account line: %w", err)
	}

	return decodeLine(resp)
}

func decodeLine(resp *http.Response) (*subledger.LineResponse, error) {
	var result subledger.LineResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing line response: %w", err)
	}

	return &result, nil
}
