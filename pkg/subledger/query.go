package subledger

import (
	"net/url"
	"time"
)

// Resource states used for listing filters.
const (
	StateActive   = "active"
	StateArchived = "archived"
	StatePosted   = "posted"
	StatePosting  = "posting"
)

// Pagination directions accepted by collection listings.
const (
	ActionEnding   = "ending"
	ActionBefore   = "before"
	ActionStarting = "starting"
	ActionAfter    = "after"
)

// Description cursor extremes. Collections paged by description use a byte
// cursor; 255 (0xFF) pages from the end, 0 pages from the start.
const (
	descriptionCursorMax = "255"
	descriptionCursorMin = "0"
)

// ListKind identifies a collection listing for default-filling purposes.
// Each kind carries its own default state, pagination action and cursor.
type ListKind int

const (
	// ListBooks pages books by description cursor.
	ListBooks ListKind = iota
	// ListAccounts pages accounts by description cursor.
	ListAccounts
	// ListCategories pages categories by description cursor.
	ListCategories
	// ListReports pages reports by description cursor.
	ListReports
	// ListJournalEntries pages journal entries by effective_at timestamp.
	ListJournalEntries
	// ListAccountLines pages account lines by effective_at timestamp.
	ListAccountLines
	// ListJournalEntryLines pages journal entry lines in posting order.
	ListJournalEntryLines
)

// cursorKind selects which cursor field a listing defaults when none was
// supplied.
type cursorKind int

const (
	cursorNone cursorKind = iota
	cursorDescription
	cursorEffectiveAt
)

type listDefaults struct {
	state  string
	action string
	cursor cursorKind
}

// listPolicies is the per-resource default-filling table. The source API
// duplicates this logic inside every collection getter; here it is the single
// authority for all listings.
var listPolicies = map[ListKind]listDefaults{
	ListBooks:             {state: StateActive, action: ActionEnding, cursor: cursorDescription},
	ListAccounts:          {state: StateActive, action: ActionEnding, cursor: cursorDescription},
	ListCategories:        {state: StateActive, action: ActionEnding, cursor: cursorDescription},
	ListReports:           {state: StateActive, action: ActionEnding, cursor: cursorDescription},
	ListJournalEntries:    {state: StateActive, action: ActionEnding, cursor: cursorEffectiveAt},
	ListAccountLines:      {action: ActionEnding, cursor: cursorEffectiveAt},
	ListJournalEntryLines: {state: StatePosted, action: ActionStarting},
}

// ListParams carries the filters of a collection listing. The zero value (or
// a nil pointer) lists with the resource's defaults.
type ListParams struct {
	// State filters by resource state ("active", "archived", "posted").
	State string
	// Action selects the pagination direction ("ending", "before",
	// "starting", "after").
	Action string
	// Description is the description cursor for collections paged
	// alphabetically.
	Description string
	// EffectiveAt is the timestamp cursor for collections paged
	// chronologically.
	EffectiveAt time.Time
}

// NewListParams creates empty listing parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithState sets the state filter.
func (p *ListParams) WithState(state string) *ListParams {
	p.State = state

	return p
}

// WithAction sets the pagination direction.
func (p *ListParams) WithAction(action string) *ListParams {
	p.Action = action

	return p
}

// WithDescription sets the description cursor.
func (p *ListParams) WithDescription(cursor string) *ListParams {
	p.Description = cursor

	return p
}

// WithEffectiveAt sets the timestamp cursor.
func (p *ListParams) WithEffectiveAt(at time.Time) *ListParams {
	p.EffectiveAt = at

	return p
}

// ToValues converts the parameters to url.Values. Only set fields are
// encoded; timestamps are rendered as RFC 3339 in UTC.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.State != "" {
		values.Set("state", p.State)
	}

	if p.Action != "" {
		values.Set("action", p.Action)
	}

	if p.Description != "" {
		values.Set("description", p.Description)
	}

	if !p.EffectiveAt.IsZero() {
		values.Set("effective_at", p.EffectiveAt.UTC().Format(time.RFC3339Nano))
	}

	return values
}

// ApplyListDefaults returns a copy of params with the kind's defaults filled
// in. Only absent fields receive defaults; explicit values are never
// overwritten. A nil params means "list with defaults only". The now argument
// supplies the timestamp cursor for chronologically paged collections.
func ApplyListDefaults(kind ListKind, params *ListParams, now time.Time) *ListParams {
	var filled ListParams
	if params != nil {
		filled = *params
	}

	policy, ok := listPolicies[kind]
	if !ok {
		return &filled
	}

	if filled.State == "" && policy.state != "" {
		filled.State = policy.state
	}

	if filled.Action == "" && policy.action != "" {
		filled.Action = policy.action
	}

	switch policy.cursor {
	case cursorDescription:
		if filled.Description == "" {
			switch filled.Action {
			case ActionStarting, ActionAfter:
				filled.Description = descriptionCursorMin
			default:
				filled.Description = descriptionCursorMax
			}
		}
	case cursorEffectiveAt:
		if filled.EffectiveAt.IsZero() {
			filled.EffectiveAt = now
		}
	case cursorNone:
	}

	return &filled
}
