package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// OrganizationsClient implements subledger.OrganizationsClient.
type OrganizationsClient struct {
	core *core
	path resourcePath
}

// List implements subledger.OrganizationsClient.List. Organization listings
// have no default-filling policy; filters are passed through as given.
func (c *OrganizationsClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.OrganizationsResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var result subledger.OrganizationsResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, request *subledger.OrganizationCreateRequest) (*subledger.OrganizationResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	var result subledger.OrganizationResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &result, nil
}

// OrganizationClient implements subledger.OrganizationClient.
type OrganizationClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.OrganizationClient.Get.
func (c *OrganizationClient) Get(ctx context.Context) (*subledger.OrganizationResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	var result subledger.OrganizationResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &result, nil
}

// Update implements subledger.OrganizationClient.Update.
func (c *OrganizationClient) Update(ctx context.Context, request *subledger.OrganizationUpdateRequest) (*subledger.OrganizationResponse, error) {
	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	var result subledger.OrganizationResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &result, nil
}

// Books implements subledger.OrganizationClient.Books.
func (c *OrganizationClient) Books() subledger.BooksClient {
	return &BooksClient{core: c.core, path: c.path.collection("books")}
}

// Book implements subledger.OrganizationClient.Book.
func (c *OrganizationClient) Book(bookID string) subledger.BookClient {
	return &BookClient{core: c.core, path: c.path.item("books", bookID)}
}
