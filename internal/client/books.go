package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// BooksClient implements subledger.BooksClient.
type BooksClient struct {
	core *core
	path resourcePath
}

// List implements subledger.BooksClient.List.
func (c *BooksClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.BooksResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListBooks, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	var result subledger.BooksResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing books list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.BooksClient.Create.
func (c *BooksClient) Create(ctx context.Context, request *subledger.BookCreateRequest) (*subledger.BookResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating book: %w", err)
	}

	var result subledger.BookResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing book response: %w", err)
	}

	return &result, nil
}

// BookClient implements subledger.BookClient.
type BookClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.BookClient.Get.
func (c *BookClient) Get(ctx context.Context) (*subledger.BookResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting book: %w", err)
	}

	return decodeBook(resp)
}

// Update implements subledger.BookClient.Update.
func (c *BookClient) Update(ctx context.Context, request *subledger.BookUpdateRequest) (*subledger.BookResponse, error) {
	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating book: %w", err)
	}

	return decodeBook(resp)
}

// Activate implements subledger.BookClient.Activate.
func (c *BookClient) Activate(ctx context.Context) (*subledger.BookResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating book: %w", err)
	}

	return decodeBook(resp)
}

// Archive implements subledger.BookClient.Archive.
func (c *BookClient) Archive(ctx context.Context) (*subledger.BookResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving book: %w", err)
	}

	return decodeBook(resp)
}

// Accounts implements subledger.BookClient.Accounts.
func (c *BookClient) Accounts() subledger.AccountsClient {
	return &AccountsClient{core: c.core, path: c.path.collection("accounts")}
}

// Account implements subledger.BookClient.Account.
func (c *BookClient) Account(accountID string) subledger.AccountClient {
	return &AccountClient{core: c.core, path: c.path.item("accounts", accountID)}
}

// JournalEntries implements subledger.BookClient.JournalEntries.
func (c *BookClient) JournalEntries() subledger.JournalEntriesClient {
	return &JournalEntriesClient{core: c.core, path: c.path.collection("journal_entries")}
}

// JournalEntry implements subledger.BookClient.JournalEntry.
func (c *BookClient) JournalEntry(journalEntryID string) subledger.JournalEntryClient {
	return &JournalEntryClient{core: c.core, path: c.path.item("journal_entries", journalEntryID)}
}

// Categories implements subledger.BookClient.Categories.
func (c *BookClient) Categories() subledger.CategoriesClient {
	return &CategoriesClient{core: c.core, path: c.path.collection("categories")}
}

// Category implements subledger.BookClient.Category.
func (c *BookClient) Category(categoryID string) subledger.CategoryClient {
	return &CategoryClient{core: c.core, path: c.path.item("categories", categoryID)}
}

// Reports implements subledger.BookClient.Reports.
func (c *BookClient) Reports() subledger.ReportsClient {
	return &ReportsClient{core: c.core, path: c.path.collection("reports")}
}

// Report implements subledger.BookClient.Report.
func (c *BookClient) Report(reportID string) subledger.ReportClient {
	return &ReportClient{core: c.core, path: c.path.item("reports", reportID)}
}

// ReportRendering implements subledger.BookClient.ReportRendering.
func (c *BookClient) ReportRendering(renderingID string) subledger.ReportRenderingClient {
	return &ReportRenderingClient{core: c.core, path: c.path.item("report_renderings", renderingID)}
}

func decodeBook(resp *http.Response) (*subledger.BookResponse, error) {
	var result subledger.BookResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing book response: %w", err)
	}

	return &result, nil
}
