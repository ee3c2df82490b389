package subledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

func TestApplyListDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("books default to active ending with max description cursor", func(t *testing.T) {
		t.Parallel()

		filled := subledger.ApplyListDefaults(subledger.ListBooks, nil, now)
		assert.Equal(t, subledger.StateActive, filled.State)
		assert.Equal(t, subledger.ActionEnding, filled.Action)
		assert.Equal(t, "255", filled.Description)
		assert.True(t, filled.EffectiveAt.IsZero())
	})

	t.Run("description-paged kinds share the same defaults", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []subledger.ListKind{
			subledger.ListBooks,
			subledger.ListAccounts,
			subledger.ListCategories,
			subledger.ListReports,
		} {
			filled := subledger.ApplyListDefaults(kind, nil, now)
			assert.Equal(t, subledger.StateActive, filled.State)
			assert.Equal(t, subledger.ActionEnding, filled.Action)
			assert.Equal(t, "255", filled.Description)
		}
	})

	t.Run("starting direction defaults the min description cursor", func(t *testing.T) {
		t.Parallel()

		params := subledger.NewListParams().WithAction(subledger.ActionStarting)
		filled := subledger.ApplyListDefaults(subledger.ListAccounts, params, now)
		assert.Equal(t, "0", filled.Description)

		params = subledger.NewListParams().WithAction(subledger.ActionAfter)
		filled = subledger.ApplyListDefaults(subledger.ListAccounts, params, now)
		assert.Equal(t, "0", filled.Description)
	})

	t.Run("journal entries default the effective_at cursor to now", func(t *testing.T) {
		t.Parallel()

		filled := subledger.ApplyListDefaults(subledger.ListJournalEntries, nil, now)
		assert.Equal(t, subledger.StateActive, filled.State)
		assert.Equal(t, subledger.ActionEnding, filled.Action)
		assert.Empty(t, filled.Description)
		assert.Equal(t, now, filled.EffectiveAt)
	})

	t.Run("account lines have no state default", func(t *testing.T) {
		t.Parallel()

		filled := subledger.ApplyListDefaults(subledger.ListAccountLines, nil, now)
		assert.Empty(t, filled.State)
		assert.Equal(t, subledger.ActionEnding, filled.Action)
		assert.Equal(t, now, filled.EffectiveAt)
	})

	t.Run("journal entry lines default to posted starting without cursor", func(t *testing.T) {
		t.Parallel()

		filled := subledger.ApplyListDefaults(subledger.ListJournalEntryLines, nil, now)
		assert.Equal(t, subledger.StatePosted, filled.State)
		assert.Equal(t, subledger.ActionStarting, filled.Action)
		assert.Empty(t, filled.Description)
		assert.True(t, filled.EffectiveAt.IsZero())
	})

	t.Run("explicit values are never overwritten", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		params := subledger.NewListParams().
			WithState(subledger.StateArchived).
			WithAction(subledger.ActionBefore).
			WithDescription("m")
		filled := subledger.ApplyListDefaults(subledger.ListBooks, params, now)
		assert.Equal(t, subledger.StateArchived, filled.State)
		assert.Equal(t, subledger.ActionBefore, filled.Action)
		assert.Equal(t, "m", filled.Description)

		params = subledger.NewListParams().WithEffectiveAt(at)
		filled = subledger.ApplyListDefaults(subledger.ListJournalEntries, params, now)
		assert.Equal(t, at, filled.EffectiveAt)
	})

	t.Run("input params are not mutated", func(t *testing.T) {
		t.Parallel()

		params := subledger.NewListParams()
		_ = subledger.ApplyListDefaults(subledger.ListBooks, params, now)
		assert.Empty(t, params.State)
		assert.Empty(t, params.Action)
		assert.Empty(t, params.Description)
	})
}

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("nil params encode empty", func(t *testing.T) {
		t.Parallel()

		var params *subledger.ListParams

		values := params.ToValues()
		assert.Empty(t, values)
	})

	t.Run("zero fields are omitted", func(t *testing.T) {
		t.Parallel()

		values := subledger.NewListParams().WithState(subledger.StateActive).ToValues()
		assert.Equal(t, "active", values.Get("state"))
		assert.NotContains(t, values, "action")
		assert.NotContains(t, values, "description")
		assert.NotContains(t, values, "effective_at")
	})

	t.Run("timestamps encode as RFC3339 UTC", func(t *testing.T) {
		t.Parallel()

		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		at := time.Date(2025, 3, 14, 7, 30, 0, 0, loc)
		values := subledger.NewListParams().WithEffectiveAt(at).ToValues()
		assert.Equal(t, "2025-03-14T11:30:00Z", values.Get("effective_at"))
	})
}
