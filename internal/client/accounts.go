package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// AccountsClient implements subledger.AccountsClient.
type AccountsClient struct {
	core *core
	path resourcePath
}

// List implements subledger.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.AccountsResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListAccounts, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	var result subledger.AccountsResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing accounts list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, request *subledger.AccountCreateRequest) (*subledger.AccountResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return decodeAccount(resp)
}

// AccountClient implements subledger.AccountClient.
type AccountClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*subledger.AccountResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return decodeAccount(resp)
}

// Update implements subledger.AccountClient.Update.
func (c *AccountClient) Update(ctx context.Context, request *subledger.AccountUpdateRequest) (*subledger.AccountResponse, error) {
	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return decodeAccount(resp)
}

// Activate implements subledger.AccountClient.Activate.
func (c *AccountClient) Activate(ctx context.Context) (*subledger.AccountResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating account: %w", err)
	}

	return decodeAccount(resp)
}

// Archive implements subledger.AccountClient.Archive.
func (c *AccountClient) Archive(ctx context.Context) (*subledger.AccountResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving account: %w", err)
	}

	return decodeAccount(resp)
}

// Balance implements subledger.AccountClient.Balance. A zero at means "now".
func (c *AccountClient) Balance(ctx context.Context, at time.Time) (*subledger.BalanceResponse, error) {
	if at.IsZero() {
		at = c.core.now()
	}

	query := url.Values{}
	query.Set("at", at.UTC().Format(time.RFC3339Nano))

	resp, err := c.core.http.Get(ctx, c.path.action("balance"), query)
	if err != nil {
		return nil, fmt.Errorf("getting account balance: %w", err)
	}

	var result subledger.BalanceResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing balance response: %w", err)
	}

	return &result, nil
}

// FirstAndLastLine implements subledger.AccountClient.FirstAndLastLine.
func (c *AccountClient) FirstAndLastLine(ctx context.Context) (*subledger.FirstAndLastLineResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.action("first_and_last_line"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting first and last line: %w", err)
	}

	var result subledger.FirstAndLastLineResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing first and last line response: %w", err)
	}

	return &result, nil
}

// Lines implements subledger.AccountClient.Lines.
func (c *AccountClient) Lines() subledger.AccountLinesClient {
	return &AccountLinesClient{core: c.core, path: c.path.collection("lines")}
}

// Line implements subledger.AccountClient.Line.
func (c *AccountClient) Line(lineID string) subledger.AccountLineClient {
	return &AccountLineClient{core: c.core, path: c.path.item("lines", lineID)}
}

func decodeAccount(resp *http.Response) (*subledger.AccountResponse, error) {
	var result subledger.AccountResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &result, nil
}
