package subledger

import (
	"time"
)

// Value represents a monetary value on the debit or credit side.
type Value struct {
	Type   string `json:"type"   yaml:"type"` // "debit", "credit" or "zero"
	Amount string `json:"amount" yaml:"amount"`
}

// Balance represents the balance of an account or journal entry.
type Balance struct {
	DebitValue  Value `json:"debit_value"  yaml:"debit_value"`
	CreditValue Value `json:"credit_value" yaml:"credit_value"`
	Value       Value `json:"value"        yaml:"value"`
}

// Organization is the top-level container for books and identities.
type Organization struct {
	ID          string `json:"id"                    yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Reference   string `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Version     int    `json:"version,omitempty"     yaml:"version,omitempty"`
}

// Book is a ledger container under an organization.
type Book struct {
	ID          string `json:"id"                    yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Reference   string `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Version     int    `json:"version,omitempty"     yaml:"version,omitempty"`
}

// Account is a ledger account within a book.
type Account struct {
	ID            string   `json:"id"                       yaml:"id"`
	Description   string   `json:"description,omitempty"    yaml:"description,omitempty"`
	Reference     string   `json:"reference,omitempty"      yaml:"reference,omitempty"`
	NormalBalance string   `json:"normal_balance,omitempty" yaml:"normal_balance,omitempty"` // "debit" or "credit"
	Version       int      `json:"version,omitempty"        yaml:"version,omitempty"`
	Balance       *Balance `json:"balance,omitempty"        yaml:"balance,omitempty"`
}

// JournalEntry is a transaction grouping one or more lines. It transitions
// active -> posting -> posted, or active -> archived.
type JournalEntry struct {
	ID          string    `json:"id"                     yaml:"id"`
	Description string    `json:"description,omitempty"  yaml:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"    yaml:"reference,omitempty"`
	EffectiveAt time.Time `json:"effective_at,omitempty" yaml:"effective_at,omitempty"`
	Version     int       `json:"version,omitempty"      yaml:"version,omitempty"`
	Balance     *Balance  `json:"balance,omitempty"      yaml:"balance,omitempty"`
}

// Line is a single debit or credit entry referencing an account.
type Line struct {
	ID           string    `json:"id"                      yaml:"id"`
	Account      string    `json:"account,omitempty"       yaml:"account,omitempty"`
	JournalEntry string    `json:"journal_entry,omitempty" yaml:"journal_entry,omitempty"`
	Description  string    `json:"description,omitempty"   yaml:"description,omitempty"`
	Reference    string    `json:"reference,omitempty"     yaml:"reference,omitempty"`
	Value        Value     `json:"value"                   yaml:"value"`
	Order        string    `json:"order,omitempty"         yaml:"order,omitempty"`
	EffectiveAt  time.Time `json:"effective_at,omitempty"  yaml:"effective_at,omitempty"`
	Balance      *Balance  `json:"balance,omitempty"       yaml:"balance,omitempty"`
	Version      int       `json:"version,omitempty"       yaml:"version,omitempty"`
}

// Category is a grouping construct attachable to accounts, used for
// reporting rollups.
type Category struct {
	ID          string `json:"id"                    yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Reference   string `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Version     int    `json:"version,omitempty"     yaml:"version,omitempty"`
}

// Report is a report definition within a book.
type Report struct {
	ID          string `json:"id"                    yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Reference   string `json:"reference,omitempty"   yaml:"reference,omitempty"`
	Version     int    `json:"version,omitempty"     yaml:"version,omitempty"`
}

// ReportRendering is the asynchronously produced output of rendering a
// report. State transitions building -> completed.
type ReportRendering struct {
	ID          string    `json:"id"                     yaml:"id"`
	Description string    `json:"description,omitempty"  yaml:"description,omitempty"`
	Report      string    `json:"report,omitempty"       yaml:"report,omitempty"`
	State       string    `json:"state,omitempty"        yaml:"state,omitempty"`
	EffectiveAt time.Time `json:"effective_at,omitempty" yaml:"effective_at,omitempty"`
	Version     int       `json:"version,omitempty"      yaml:"version,omitempty"`
}

// Identity is an authentication principal.
type Identity struct {
	ID          string `json:"id"                    yaml:"id"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     int    `json:"version,omitempty"     yaml:"version,omitempty"`
}

// Key is a credential pair issued for an identity. Secret is only returned
// on creation.
type Key struct {
	ID       string `json:"id"                 yaml:"id"`
	Identity string `json:"identity,omitempty" yaml:"identity,omitempty"`
	Secret   string `json:"secret,omitempty"   yaml:"secret,omitempty"`
	Version  int    `json:"version,omitempty"  yaml:"version,omitempty"`
}

// The API wraps every resource payload in an envelope whose key carries the
// resource state ("active_book", "archived_book", ...). The *Response types
// below model those envelopes; the Resource accessors return whichever side
// is populated.

// OrganizationResponse is the envelope for a single organization.
type OrganizationResponse struct {
	ActiveOrg   *Organization `json:"active_org,omitempty"   yaml:"active_org,omitempty"`
	ArchivedOrg *Organization `json:"archived_org,omitempty" yaml:"archived_org,omitempty"`
}

// Organization returns the organization regardless of state, or nil.
func (r *OrganizationResponse) Organization() *Organization {
	if r.ActiveOrg != nil {
		return r.ActiveOrg
	}

	return r.ArchivedOrg
}

// OrganizationsResponse is the envelope for an organization listing.
type OrganizationsResponse struct {
	ActiveOrgs   []Organization `json:"active_orgs,omitempty"   yaml:"active_orgs,omitempty"`
	ArchivedOrgs []Organization `json:"archived_orgs,omitempty" yaml:"archived_orgs,omitempty"`
}

// Organizations returns the listed organizations regardless of state.
func (r *OrganizationsResponse) Organizations() []Organization {
	if len(r.ActiveOrgs) > 0 {
		return r.ActiveOrgs
	}

	return r.ArchivedOrgs
}

// BookResponse is the envelope for a single book.
type BookResponse struct {
	ActiveBook   *Book `json:"active_book,omitempty"   yaml:"active_book,omitempty"`
	ArchivedBook *Book `json:"archived_book,omitempty" yaml:"archived_book,omitempty"`
}

// Book returns the book regardless of state, or nil.
func (r *BookResponse) Book() *Book {
	if r.ActiveBook != nil {
		return r.ActiveBook
	}

	return r.ArchivedBook
}

// BooksResponse is the envelope for a book listing.
type BooksResponse struct {
	ActiveBooks   []Book `json:"active_books,omitempty"   yaml:"active_books,omitempty"`
	ArchivedBooks []Book `json:"archived_books,omitempty" yaml:"archived_books,omitempty"`
}

// Books returns the listed books regardless of state.
func (r *BooksResponse) Books() []Book {
	if len(r.ActiveBooks) > 0 {
		return r.ActiveBooks
	}

	return r.ArchivedBooks
}

// AccountResponse is the envelope for a single account.
type AccountResponse struct {
	ActiveAccount   *Account `json:"active_account,omitempty"   yaml:"active_account,omitempty"`
	ArchivedAccount *Account `json:"archived_account,omitempty" yaml:"archived_account,omitempty"`
}

// Account returns the account regardless of state, or nil.
func (r *AccountResponse) Account() *Account {
	if r.ActiveAccount != nil {
		return r.ActiveAccount
	}

	return r.ArchivedAccount
}

// AccountsResponse is the envelope for an account listing.
type AccountsResponse struct {
	ActiveAccounts   []Account `json:"active_accounts,omitempty"   yaml:"active_accounts,omitempty"`
	ArchivedAccounts []Account `json:"archived_accounts,omitempty" yaml:"archived_accounts,omitempty"`
}

// Accounts returns the listed accounts regardless of state.
func (r *AccountsResponse) Accounts() []Account {
	if len(r.ActiveAccounts) > 0 {
		return r.ActiveAccounts
	}

	return r.ArchivedAccounts
}

// JournalEntryResponse is the envelope for a single journal entry.
type JournalEntryResponse struct {
	ActiveJournalEntry   *JournalEntry `json:"active_journal_entry,omitempty"   yaml:"active_journal_entry,omitempty"`
	ArchivedJournalEntry *JournalEntry `json:"archived_journal_entry,omitempty" yaml:"archived_journal_entry,omitempty"`
	PostingJournalEntry  *JournalEntry `json:"posting_journal_entry,omitempty"  yaml:"posting_journal_entry,omitempty"`
	PostedJournalEntry   *JournalEntry `json:"posted_journal_entry,omitempty"   yaml:"posted_journal_entry,omitempty"`
}

// JournalEntry returns the journal entry regardless of state, or nil.
func (r *JournalEntryResponse) JournalEntry() *JournalEntry {
	switch {
	case r.ActiveJournalEntry != nil:
		return r.ActiveJournalEntry
	case r.PostingJournalEntry != nil:
		return r.PostingJournalEntry
	case r.PostedJournalEntry != nil:
		return r.PostedJournalEntry
	default:
		return r.ArchivedJournalEntry
	}
}

// JournalEntriesResponse is the envelope for a journal entry listing.
type JournalEntriesResponse struct {
	ActiveJournalEntries   []JournalEntry `json:"active_journal_entries,omitempty"   yaml:"active_journal_entries,omitempty"`
	ArchivedJournalEntries []JournalEntry `json:"archived_journal_entries,omitempty" yaml:"archived_journal_entries,omitempty"`
	PostedJournalEntries   []JournalEntry `json:"posted_journal_entries,omitempty"   yaml:"posted_journal_entries,omitempty"`
}

// JournalEntries returns the listed journal entries regardless of state.
func (r *JournalEntriesResponse) JournalEntries() []JournalEntry {
	switch {
	case len(r.ActiveJournalEntries) > 0:
		return r.ActiveJournalEntries
	case len(r.PostedJournalEntries) > 0:
		return r.PostedJournalEntries
	default:
		return r.ArchivedJournalEntries
	}
}

// LineResponse is the envelope for a single line.
type LineResponse struct {
	ActiveLine   *Line `json:"active_line,omitempty"   yaml:"active_line,omitempty"`
	ArchivedLine *Line `json:"archived_line,omitempty" yaml:"archived_line,omitempty"`
	PostedLine   *Line `json:"posted_line,omitempty"   yaml:"posted_line,omitempty"`
}

// Line returns the line regardless of state, or nil.
func (r *LineResponse) Line() *Line {
	switch {
	case r.ActiveLine != nil:
		return r.ActiveLine
	case r.PostedLine != nil:
		return r.PostedLine
	default:
		return r.ArchivedLine
	}
}

// LinesResponse is the envelope for a line listing.
type LinesResponse struct {
	ActiveLines   []Line `json:"active_lines,omitempty"   yaml:"active_lines,omitempty"`
	ArchivedLines []Line `json:"archived_lines,omitempty" yaml:"archived_lines,omitempty"`
	PostedLines   []Line `json:"posted_lines,omitempty"   yaml:"posted_lines,omitempty"`
}

// Lines returns the listed lines regardless of state.
func (r *LinesResponse) Lines() []Line {
	switch {
	case len(r.PostedLines) > 0:
		return r.PostedLines
	case len(r.ActiveLines) > 0:
		return r.ActiveLines
	default:
		return r.ArchivedLines
	}
}

// FirstAndLastLineResponse carries the chronologically first and last posted
// lines of an account.
type FirstAndLastLineResponse struct {
	FirstLine *Line `json:"first_line,omitempty" yaml:"first_line,omitempty"`
	LastLine  *Line `json:"last_line,omitempty"  yaml:"last_line,omitempty"`
}

// BalanceResponse is the envelope for a balance computation.
type BalanceResponse struct {
	Balance Balance `json:"balance" yaml:"balance"`
}

// ProgressResponse reports the posting progress of a journal entry.
type ProgressResponse struct {
	Progress Progress `json:"progress" yaml:"progress"`
}

// Progress carries the completion percentage of an asynchronous posting.
type Progress struct {
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// CategoryResponse is the envelope for a single category.
type CategoryResponse struct {
	ActiveCategory   *Category `json:"active_category,omitempty"   yaml:"active_category,omitempty"`
	ArchivedCategory *Category `json:"archived_category,omitempty" yaml:"archived_category,omitempty"`
}

// Category returns the category regardless of state, or nil.
func (r *CategoryResponse) Category() *Category {
	if r.ActiveCategory != nil {
		return r.ActiveCategory
	}

	return r.ArchivedCategory
}

// CategoriesResponse is the envelope for a category listing.
type CategoriesResponse struct {
	ActiveCategories   []Category `json:"active_categories,omitempty"   yaml:"active_categories,omitempty"`
	ArchivedCategories []Category `json:"archived_categories,omitempty" yaml:"archived_categories,omitempty"`
}

// Categories returns the listed categories regardless of state.
func (r *CategoriesResponse) Categories() []Category {
	if len(r.ActiveCategories) > 0 {
		return r.ActiveCategories
	}

	return r.ArchivedCategories
}

// ReportResponse is the envelope for a single report.
type ReportResponse struct {
	ActiveReport   *Report `json:"active_report,omitempty"   yaml:"active_report,omitempty"`
	ArchivedReport *Report `json:"archived_report,omitempty" yaml:"archived_report,omitempty"`
}

// Report returns the report regardless of state, or nil.
func (r *ReportResponse) Report() *Report {
	if r.ActiveReport != nil {
		return r.ActiveReport
	}

	return r.ArchivedReport
}

// ReportsResponse is the envelope for a report listing.
type ReportsResponse struct {
	ActiveReports   []Report `json:"active_reports,omitempty"   yaml:"active_reports,omitempty"`
	ArchivedReports []Report `json:"archived_reports,omitempty" yaml:"archived_reports,omitempty"`
}

// Reports returns the listed reports regardless of state.
func (r *ReportsResponse) Reports() []Report {
	if len(r.ActiveReports) > 0 {
		return r.ActiveReports
	}

	return r.ArchivedReports
}

// ReportRenderingResponse is the envelope for a report rendering.
type ReportRenderingResponse struct {
	BuildingReportRendering  *ReportRendering `json:"building_report_rendering,omitempty"  yaml:"building_report_rendering,omitempty"`
	CompletedReportRendering *ReportRendering `json:"completed_report_rendering,omitempty" yaml:"completed_report_rendering,omitempty"`
}

// ReportRendering returns the rendering regardless of state, or nil.
func (r *ReportRenderingResponse) ReportRendering() *ReportRendering {
	if r.CompletedReportRendering != nil {
		return r.CompletedReportRendering
	}

	return r.BuildingReportRendering
}

// IdentityResponse is the envelope for an identity. Key creation responses
// piggyback the issued active key, which carries the secret exactly once.
type IdentityResponse struct {
	Identity  *Identity `json:"identity,omitempty"   yaml:"identity,omitempty"`
	ActiveKey *Key      `json:"active_key,omitempty" yaml:"active_key,omitempty"`
}

// KeyResponse is the envelope for an identity key.
type KeyResponse struct {
	ActiveKey   *Key `json:"active_key,omitempty"   yaml:"active_key,omitempty"`
	ArchivedKey *Key `json:"archived_key,omitempty" yaml:"archived_key,omitempty"`
}

// Key returns the key regardless of state, or nil.
func (r *KeyResponse) Key() *Key {
	if r.ActiveKey != nil {
		return r.ActiveKey
	}

	return r.ArchivedKey
}

// Request types

// OrganizationCreateRequest creates an organization.
type OrganizationCreateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// OrganizationUpdateRequest updates an organization. Version must match the
// current resource version.
type OrganizationUpdateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Version     int    `json:"version"`
}

// BookCreateRequest creates a book.
type BookCreateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// BookUpdateRequest updates a book.
type BookUpdateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Version     int    `json:"version"`
}

// AccountCreateRequest creates an account.
type AccountCreateRequest struct {
	Description   string `json:"description,omitempty"`
	Reference     string `json:"reference,omitempty"`
	NormalBalance string `json:"normal_balance"` // "debit" or "credit"
}

// AccountUpdateRequest updates an account.
type AccountUpdateRequest struct {
	Description   string `json:"description,omitempty"`
	Reference     string `json:"reference,omitempty"`
	NormalBalance string `json:"normal_balance,omitempty"`
	Version       int    `json:"version"`
}

// JournalEntryCreateRequest creates a draft journal entry.
type JournalEntryCreateRequest struct {
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	EffectiveAt time.Time `json:"effective_at"`
}

// LineInput is a line supplied when creating or posting a journal entry.
type LineInput struct {
	Account     string `json:"account"`
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Value       Value  `json:"value"`
	Order       string `json:"order,omitempty"`
}

// JournalEntryCreateAndPostRequest creates a journal entry together with its
// lines and posts it in a single call.
type JournalEntryCreateAndPostRequest struct {
	Description string      `json:"description,omitempty"`
	Reference   string      `json:"reference,omitempty"`
	EffectiveAt time.Time   `json:"effective_at"`
	Lines       []LineInput `json:"lines"`
}

// JournalEntryUpdateRequest updates a draft journal entry.
//
// Deprecated: draft mutation is retained for backward compatibility; prefer
// JournalEntriesClient.CreateAndPost.
type JournalEntryUpdateRequest struct {
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	EffectiveAt time.Time `json:"effective_at,omitempty"`
	Version     int       `json:"version"`
}

// LineUpdateRequest updates a draft journal entry line.
//
// Deprecated: line mutation is retained for backward compatibility; prefer
// JournalEntriesClient.CreateAndPost.
type LineUpdateRequest struct {
	Account     string `json:"account,omitempty"`
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Value       *Value `json:"value,omitempty"`
	Order       string `json:"order,omitempty"`
	Version     int    `json:"version"`
}

// CategoryCreateRequest creates a category.
type CategoryCreateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// CategoryUpdateRequest updates a category.
type CategoryUpdateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Version     int    `json:"version"`
}

// ReportCreateRequest creates a report definition.
type ReportCreateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// ReportUpdateRequest updates a report definition.
type ReportUpdateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Version     int    `json:"version"`
}

// IdentityCreateRequest creates an identity and its first active key.
type IdentityCreateRequest struct {
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// IdentityUpdateRequest updates an identity.
type IdentityUpdateRequest struct {
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Version     int    `json:"version"`
}

// KeyCreateRequest creates a new key for an identity.
type KeyCreateRequest struct {
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference,omitempty"`
}
