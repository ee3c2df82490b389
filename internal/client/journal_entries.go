package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// JournalEntriesClient implements subledger.JournalEntriesClient.
type JournalEntriesClient struct {
	core *core
	path resourcePath
}

// List implements subledger.JournalEntriesClient.List.
func (c *JournalEntriesClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.JournalEntriesResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListJournalEntries, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.path.String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}

	var result subledger.JournalEntriesResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing journal entries list response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.JournalEntriesClient.Create.
func (c *JournalEntriesClient) Create(ctx context.Context, request *subledger.JournalEntryCreateRequest) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// CreateAndPost implements subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntriesClient) CreateAndPost(ctx context.Context, request *subledger.JournalEntryCreateAndPostRequest) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("create_and_post"), request)
	if err != nil {
		return nil, fmt.Errorf("creating and posting journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// JournalEntryClient implements subledger.JournalEntryClient.
type JournalEntryClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.JournalEntryClient.Get.
func (c *JournalEntryClient) Get(ctx context.Context) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// Post implements subledger.JournalEntryClient.Post.
func (c *JournalEntryClient) Post(ctx context.Context) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("posting journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// Update implements subledger.JournalEntryClient.Update.
//
// Deprecated: prefer subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntryClient) Update(ctx context.Context, request *subledger.JournalEntryUpdateRequest) (*subledger.JournalEntryResponse, error) {
	c.core.warnDeprecated("journalEntry.update", "journalEntries.createAndPost")

	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// Activate implements subledger.JournalEntryClient.Activate.
func (c *JournalEntryClient) Activate(ctx context.Context) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// Archive implements subledger.JournalEntryClient.Archive.
func (c *JournalEntryClient) Archive(ctx context.Context) (*subledger.JournalEntryResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving journal entry: %w", err)
	}

	return decodeJournalEntry(resp)
}

// Balance implements subledger.JournalEntryClient.Balance.
func (c *JournalEntryClient) Balance(ctx context.Context) (*subledger.BalanceResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.action("balance"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting journal entry balance: %w", err)
	}

	var result subledger.BalanceResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing balance response: %w", err)
	}

	return &result, nil
}

// Progress implements subledger.JournalEntryClient.Progress.
func (c *JournalEntryClient) Progress(ctx context.Context) (*subledger.ProgressResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.action("progress"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting journal entry progress: %w", err)
	}

	var result subledger.ProgressResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing progress response: %w", err)
	}

	return &result, nil
}

// Lines implements subledger.JournalEntryClient.Lines.
func (c *JournalEntryClient) Lines() subledger.JournalEntryLinesClient {
	return &JournalEntryLinesClient{core: c.core, entryPath: c.path}
}

// Line implements subledger.JournalEntryClient.Line.
func (c *JournalEntryClient) Line(lineID string) subledger.JournalEntryLineClient {
	return &JournalEntryLineClient{core: c.core, path: c.path.item("lines", lineID)}
}

// JournalEntryLinesClient implements subledger.JournalEntryLinesClient.
// Line creation posts to the entry's create_line action rather than the
// lines collection, so the client keeps the entry path.
type JournalEntryLinesClient struct {
	core      *core
	entryPath resourcePath
}

// List implements subledger.JournalEntryLinesClient.List.
func (c *JournalEntryLinesClient) List(ctx context.Context, params *subledger.ListParams) (*subledger.LinesResponse, error) {
	params = subledger.ApplyListDefaults(subledger.ListJournalEntryLines, params, c.core.now())

	resp, err := c.core.http.Get(ctx, c.entryPath.collection("lines").String(), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing journal entry lines: %w", err)
	}

	var result subledger.LinesResponse

	err = resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing journal entry lines response: %w", err)
	}

	return &result, nil
}

// Create implements subledger.JournalEntryLinesClient.Create.
//
// Deprecated: prefer subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntryLinesClient) Create(ctx context.Context, request *subledger.LineInput) (*subledger.LineResponse, error) {
	c.core.warnDeprecated("journalEntry.line.create", "journalEntries.createAndPost")

	resp, err := c.core.http.Post(ctx, c.entryPath.action("create_line"), request)
	if err != nil {
		return nil, fmt.Errorf("creating journal entry line: %w", err)
	}

	return decodeLine(resp)
}

// JournalEntryLineClient implements subledger.JournalEntryLineClient.
type JournalEntryLineClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.JournalEntryLineClient.Get.
func (c *JournalEntryLineClient) Get(ctx context.Context) (*subledger.LineResponse, error) {
	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting journal entry line: %w", err)
	}

	return decodeLine(resp)
}

// Update implements subledger.JournalEntryLineClient.Update.
//
// Deprecated: prefer subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntryLineClient) Update(ctx context.Context, request *subledger.LineUpdateRequest) (*subledger.LineResponse, error) {
	c.core.warnDeprecated("journalEntry.line.update", "journalEntries.createAndPost")

	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating journal entry line: %w", err)
	}

	return decodeLine(resp)
}

// Activate implements subledger.JournalEntryLineClient.Activate.
//
// Deprecated: prefer subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntryLineClient) Activate(ctx context.Context) (*subledger.LineResponse, error) {
	c.core.warnDeprecated("journalEntry.line.activate", "journalEntries.createAndPost")

	resp, err := c.core.http.Post(ctx, c.path.action("activate"), nil)
	if err != nil {
		return nil, fmt.Errorf("activating journal entry line: %w", err)
	}

	return decodeLine(resp)
}

// Archive implements subledger.JournalEntryLineClient.Archive.
//
// Deprecated: prefer subledger.JournalEntriesClient.CreateAndPost.
func (c *JournalEntryLineClient) Archive(ctx context.Context) (*subledger.LineResponse, error) {
	c.core.warnDeprecated("journalEntry.line.archive", "journalEntries.createAndPost")

	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving journal entry line: %w", err)
	}

	return decodeLine(resp)
}

func decodeJournalEntry(resp *http.Response) (*subledger.JournalEntryResponse, error) {
	var result subledger.JournalEntryResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing journal entry response: %w", err)
	}

	return &result, nil
}
