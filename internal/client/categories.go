package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// CategoriesClient implements subledger.CategoriesClient.
type CategoriesClient struct {
	core *core
	path resourcePath
}

// List implements subledger.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.CategoriesResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListCategories, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	var result subledger.CategoriesResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing categories list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.CategoriesClient.Create.
func (c *CategoriesClient) Create(ctx context.Context, request *subledger.CategoryCreateRequest) (*subledger.CategoryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return decodeCategory(resp)
}

// CategoryClient implements subledger.CategoryClient.
type CategoryClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.CategoryClient.Get.
func (c *CategoryClient) Get(ctx context.Context) (*subledger.CategoryResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}

	return decodeCategory(resp)
}

// Update implements subledger.CategoryClient.Update.
func (c *CategoryClient) Update(ctx context.Context, request *subledger.CategoryUpdateRequest) (*subledger.CategoryResponse, error) {
	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return decodeCategory(resp)
}

// Activate implements subledger.CategoryClient.Activate.
func (c *CategoryClient) Activate(ctx context.Context) (*subledger.CategoryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating category: %w", err)
	}

	return decodeCategory(resp)
}

// Archive implements subledger.CategoryClient.Archive.
func (c *CategoryClient) Archive(ctx context.Context) (*subledger.CategoryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving category: %w", err)
	}

	return decodeCategory(resp)
}

// Attach implements subledger.CategoryClient.Attach.
func (c *CategoryClient) Attach(ctx context.Context, accountID string) (*subledger.CategoryResponse, error) {
	body := map[string]string{"account": accountID}

	resp, err := c.core.http.Post(ctx, c.path.action("attach"), body)
	if err != nil {
		return nil, fmt.Errorf("attaching category to account: %w", err)
	}

	return decodeCategory(resp)
}

// Detach implements subledger.CategoryClient.Detach.
func (c *CategoryClient) Detach(ctx context.Context, accountID string) (*subledger.CategoryResponse, error) {
	body := map[string]string{"account": accountID}

	resp, err := c.core.http.Post(ctx, c.path.action("detach"), body)
	if err != nil {
		return nil, fmt.Errorf("detaching category from account: %w", err)
	}

	return decodeCategory(resp)
}

func decodeCategory(resp *http.Response) (*subledger.CategoryResponse, error) {
	var result subledger.CategoryResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing category response: %w", err)
	}

	return &result, nil
}
