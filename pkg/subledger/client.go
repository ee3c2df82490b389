package subledger

import (
	"context"
	"time"
)

// DefaultBaseURL is the versioned API root used when no base URL is
// configured.
const DefaultBaseURL = "https://api.subledger.com/v2"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Credentials (Key/Secret) are optional at construction time; they can be
// supplied later through Client.SetCredentials. Requests sent while
// credentials are configured carry an HTTP Basic Authorization header.
type Config struct {
	// BaseURL is the API root. Defaults to DefaultBaseURL; a trailing slash
	// is trimmed. Legacy account URLs of the form
	// https://myAccount.api.boocx.com/v1 are accepted unchanged.
	BaseURL string

	// Key and Secret are the identity key credentials.
	Key    string
	Secret string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Timeout aborts any request that has not completed within the given
	// duration. Zero disables the timeout.
	Timeout time.Duration

	// Logger receives debug/warn output, including deprecation warnings.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool

	// RetryMax enables transparent retries of failed requests when greater
	// than zero. The client never retries by default.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// LegacyFormEncoding selects the first-generation wire protocol:
	// POST/PATCH bodies are sent as application/x-www-form-urlencoded and
	// no Authorization header is attached.
	LegacyFormEncoding bool
}

// Client is the top-level navigator over the Subledger resource hierarchy.
//
// Organization and Org are dual spellings of the same navigator, as are
// Organizations and Orgs.
type Client interface {
	// SetCredentials stores the key/secret pair used for HTTP Basic
	// authentication on every subsequent request. Callable multiple times;
	// the last write wins. No format validation is performed.
	SetCredentials(key, secret string)

	// HasCredentials reports whether a credential pair is configured.
	HasCredentials() bool

	Organizations() OrganizationsClient
	Organization(orgID string) OrganizationClient
	Orgs() OrganizationsClient
	Org(orgID string) OrganizationClient

	Identities() IdentitiesClient
	Identity(identityID string) IdentityClient
}

// OrganizationsClient operates on the organization collection.
type OrganizationsClient interface {
	List(ctx context.Context, params *ListParams) (*OrganizationsResponse, error)
	Create(ctx context.Context, request *OrganizationCreateRequest) (*OrganizationResponse, error)
}

// OrganizationClient operates on a single organization and exposes its books.
type OrganizationClient interface {
	Get(ctx context.Context) (*OrganizationResponse, error)
	Update(ctx context.Context, request *OrganizationUpdateRequest) (*OrganizationResponse, error)

	Books() BooksClient
	Book(bookID string) BookClient
}

// BooksClient operates on the book collection of an organization.
type BooksClient interface {
	List(ctx context.Context, params *ListParams) (*BooksResponse, error)
	Create(ctx context.Context, request *BookCreateRequest) (*BookResponse, error)
}

// BookClient operates on a single book and exposes its accounts, journal
// entries, categories and reports.
type BookClient interface {
	Get(ctx context.Context) (*BookResponse, error)
	Update(ctx context.Context, request *BookUpdateRequest) (*BookResponse, error)
	Activate(ctx context.Context) (*BookResponse, error)
	Archive(ctx context.Context) (*BookResponse, error)

	Accounts() AccountsClient
	Account(accountID string) AccountClient
	JournalEntries() JournalEntriesClient
	JournalEntry(journalEntryID string) JournalEntryClient
	Categories() CategoriesClient
	Category(categoryID string) CategoryClient
	Reports() ReportsClient
	Report(reportID string) ReportClient
	ReportRendering(renderingID string) ReportRenderingClient
}

// AccountsClient operates on the account collection of a book.
type AccountsClient interface {
	List(ctx context.Context, params *ListParams) (*AccountsResponse, error)
	Create(ctx context.Context, request *AccountCreateRequest) (*AccountResponse, error)
}

// AccountClient operates on a single account and exposes its lines.
type AccountClient interface {
	Get(ctx context.Context) (*AccountResponse, error)
	Update(ctx context.Context, request *AccountUpdateRequest) (*AccountResponse, error)
	Activate(ctx context.Context) (*AccountResponse, error)
	Archive(ctx context.Context) (*AccountResponse, error)

	// Balance reports the account balance at the given time. A zero time
	// means "now".
	Balance(ctx context.Context, at time.Time) (*BalanceResponse, error)

	// FirstAndLastLine fetches the chronologically first and last posted
	// lines of the account.
	FirstAndLastLine(ctx context.Context) (*FirstAndLastLineResponse, error)

	Lines() AccountLinesClient
	Line(lineID string) AccountLineClient
}

// AccountLinesClient operates on the posted line collection of an account.
type AccountLinesClient interface {
	List(ctx context.Context, params *ListParams) (*LinesResponse, error)
}

// AccountLineClient operates on a single account line.
type AccountLineClient interface {
	Get(ctx context.Context) (*LineResponse, error)
}

// JournalEntriesClient operates on the journal entry collection of a book.
type JournalEntriesClient interface {
	List(ctx context.Context, params *ListParams) (*JournalEntriesResponse, error)
	Create(ctx context.Context, request *JournalEntryCreateRequest) (*JournalEntryResponse, error)

	// CreateAndPost creates a journal entry together with its lines and
	// posts it in a single call.
	CreateAndPost(ctx context.Context, request *JournalEntryCreateAndPostRequest) (*JournalEntryResponse, error)
}

// JournalEntryClient operates on a single journal entry and exposes its
// lines.
type JournalEntryClient interface {
	Get(ctx context.Context) (*JournalEntryResponse, error)

	// Post transitions a draft journal entry to posted.
	Post(ctx context.Context) (*JournalEntryResponse, error)

	// Update mutates a draft journal entry.
	//
	// Deprecated: prefer JournalEntriesClient.CreateAndPost. Retained for
	// backward compatibility; emits a warning through the configured
	// Logger.
	Update(ctx context.Context, request *JournalEntryUpdateRequest) (*JournalEntryResponse, error)

	Activate(ctx context.Context) (*JournalEntryResponse, error)
	Archive(ctx context.Context) (*JournalEntryResponse, error)
	Balance(ctx context.Context) (*BalanceResponse, error)

	// Progress reports the completion percentage of an asynchronous post.
	Progress(ctx context.Context) (*ProgressResponse, error)

	Lines() JournalEntryLinesClient
	Line(lineID string) JournalEntryLineClient
}

// JournalEntryLinesClient operates on the line collection of a journal
// entry.
type JournalEntryLinesClient interface {
	List(ctx context.Context, params *ListParams) (*LinesResponse, error)

	// Create adds a line to a draft journal entry.
	//
	// Deprecated: prefer JournalEntriesClient.CreateAndPost.
	Create(ctx context.Context, request *LineInput) (*LineResponse, error)
}

// JournalEntryLineClient operates on a single journal entry line.
type JournalEntryLineClient interface {
	Get(ctx context.Context) (*LineResponse, error)

	// Update mutates a draft line.
	//
	// Deprecated: prefer JournalEntriesClient.CreateAndPost.
	Update(ctx context.Context, request *LineUpdateRequest) (*LineResponse, error)

	// Activate reactivates an archived draft line.
	//
	// Deprecated: prefer JournalEntriesClient.CreateAndPost.
	Activate(ctx context.Context) (*LineResponse, error)

	// Archive archives a draft line.
	//
	// Deprecated: prefer JournalEntriesClient.CreateAndPost.
	Archive(ctx context.Context) (*LineResponse, error)
}

// CategoriesClient operates on the category collection of a book.
type CategoriesClient interface {
	List(ctx context.Context, params *ListParams) (*CategoriesResponse, error)
	Create(ctx context.Context, request *CategoryCreateRequest) (*CategoryResponse, error)
}

// CategoryClient operates on a single category.
type CategoryClient interface {
	Get(ctx context.Context) (*CategoryResponse, error)
	Update(ctx context.Context, request *CategoryUpdateRequest) (*CategoryResponse, error)
	Activate(ctx context.Context) (*CategoryResponse, error)
	Archive(ctx context.Context) (*CategoryResponse, error)

	// Attach attaches the category to an account.
	Attach(ctx context.Context, accountID string) (*CategoryResponse, error)

	// Detach detaches the category from an account.
	Detach(ctx context.Context, accountID string) (*CategoryResponse, error)
}

// ReportsClient operates on the report collection of a book.
type ReportsClient interface {
	List(ctx context.Context, params *ListParams) (*ReportsResponse, error)
	Create(ctx context.Context, request *ReportCreateRequest) (*ReportResponse, error)
}

// ReportClient operates on a single report definition.
type ReportClient interface {
	Get(ctx context.Context) (*ReportResponse, error)
	Update(ctx context.Context, request *ReportUpdateRequest) (*ReportResponse, error)
	Activate(ctx context.Context) (*ReportResponse, error)
	Archive(ctx context.Context) (*ReportResponse, error)

	// Attach attaches a category to the report.
	Attach(ctx context.Context, categoryID string) (*ReportResponse, error)

	// Detach detaches a category from the report.
	Detach(ctx context.Context, categoryID string) (*ReportResponse, error)

	// Render kicks off an asynchronous rendering of the report at the given
	// time. A zero time means "now". Poll the returned rendering until its
	// state is completed.
	Render(ctx context.Context, at time.Time) (*ReportRenderingResponse, error)
}

// ReportRenderingClient operates on a single report rendering. Renderings
// are produced by ReportClient.Render and are read-only.
type ReportRenderingClient interface {
	Get(ctx context.Context) (*ReportRenderingResponse, error)
}

// IdentitiesClient operates on the identity collection. Creating an identity
// is the bootstrap path for obtaining credentials and therefore requires
// none.
type IdentitiesClient interface {
	Create(ctx context.Context, request *IdentityCreateRequest) (*IdentityResponse, error)
}

// IdentityClient operates on a single identity and its keys. Item-level
// identity operations require credentials; without them they fail with
// ErrCredentialsRequired before any request is sent.
type IdentityClient interface {
	Get(ctx context.Context) (*IdentityResponse, error)
	Update(ctx context.Context, request *IdentityUpdateRequest) (*IdentityResponse, error)

	Keys() IdentityKeysClient
	Key(keyID string) IdentityKeyClient
}

// IdentityKeysClient operates on the key collection of an identity.
type IdentityKeysClient interface {
	Create(ctx context.Context, request *KeyCreateRequest) (*KeyResponse, error)
}

// IdentityKeyClient operates on a single identity key.
type IdentityKeyClient interface {
	Get(ctx context.Context) (*KeyResponse, error)
	Archive(ctx context.Context) (*KeyResponse, error)
}
