package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcePath(t *testing.T) {
	t.Parallel()
	t.Run("builds nested collection and item segments", func(t *testing.T) {
		t.Parallel()

		p := resourcePath{}.item("orgs", "o1").item("books", "b1")

		assert.Equal(t, "/orgs/o1/books/b1", p.String())
		assert.Equal(t, "/orgs/o1/books/b1/accounts", p.collection("accounts").String())
		assert.Equal(t, "/orgs/o1/books/b1/activate", p.action("activate"))
	})

	t.Run("path escapes item identifiers", func(t *testing.T) {
		t.Parallel()

		p := resourcePath{}.item("orgs", "o 1/x")

		assert.Equal(t, "/orgs/o%201%2Fx", p.String())
	})

	t.Run("navigation steps never mutate the parent", func(t *testing.T) {
		t.Parallel()

		book := resourcePath{}.item("orgs", "o1").item("books", "b1")

		accounts := book.collection("accounts")
		entries := book.collection("journal_entries")

		assert.Equal(t, "/orgs/o1/books/b1/accounts", accounts.String())
		assert.Equal(t, "/orgs/o1/books/b1/journal_entries", entries.String())
		assert.Equal(t, "/orgs/o1/books/b1", book.String())
	})

	t.Run("rebuilding the same path is deterministic", func(t *testing.T) {
		t.Parallel()

		first := resourcePath{}.item("orgs", "o1").item("books", "b1").item("accounts", "a1")
		second := resourcePath{}.item("orgs", "o1").item("books", "b1").item("accounts", "a1")

		assert.Equal(t, first.String(), second.String())
	})
}
