package library

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, titles ...string) *Catalog {
	t.Helper()
	c := NewCatalog()
	for _, title := range titles {
		c.AddBook(title, "Author of "+title)
	}
	return c
}

func TestAddBookAssignsSequentialIDs(t *testing.T) {
	c := NewCatalog()

	first := c.AddBook("Dune", "Herbert")
	second := c.AddBook("", "")
	third := c.AddBook("  Emma ", " Austen")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(3), third.ID)
	assert.False(t, first.Issued)
	assert.Equal(t, "  Emma ", third.Title, "title stored verbatim")
	assert.Equal(t, " Austen", third.Author, "author stored verbatim")
	assert.Equal(t, 3, c.Len())
}

func TestListBooksEmpty(t *testing.T) {
	c := NewCatalog()

	books := c.ListBooks()
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestListBooksKeepsInsertionOrder(t *testing.T) {
	c := newCatalog(t, "A", "B", "C")

	_, err := c.IssueBook(2)
	require.NoError(t, err)
	_, err = c.IssueBook(1)
	require.NoError(t, err)
	_, err = c.ReturnBook(2)
	require.NoError(t, err)

	books := c.ListBooks()
	require.Len(t, books, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{books[0].Title, books[1].Title, books[2].Title})
	assert.True(t, books[0].Issued)
	assert.False(t, books[1].Issued)
	assert.False(t, books[2].Issued)
}

func TestListBooksReturnsCopies(t *testing.T) {
	c := newCatalog(t, "A")

	books := c.ListBooks()
	books[0].Issued = true
	books[0].Title = "changed"

	got, err := c.GetBook(1)
	require.NoError(t, err)
	assert.False(t, got.Issued)
	assert.Equal(t, "A", got.Title)
}

func TestIssueBook(t *testing.T) {
	c := newCatalog(t, "Dune")

	b, err := c.IssueBook(1)
	require.NoError(t, err)
	assert.True(t, b.Issued)
	assert.Equal(t, "Dune", b.Title)

	b, err = c.IssueBook(1)
	assert.ErrorIs(t, err, ErrAlreadyIssued)
	assert.Equal(t, "Dune", b.Title, "title available for the message")

	got, err := c.GetBook(1)
	require.NoError(t, err)
	assert.True(t, got.Issued)
}

func TestReturnBook(t *testing.T) {
	c := newCatalog(t, "Dune")

	b, err := c.ReturnBook(1)
	assert.ErrorIs(t, err, ErrNotIssued)
	assert.Equal(t, "Dune", b.Title)
	assert.False(t, b.Issued)

	_, err = c.IssueBook(1)
	require.NoError(t, err)

	b, err = c.ReturnBook(1)
	require.NoError(t, err)
	assert.False(t, b.Issued)

	got, err := c.GetBook(1)
	require.NoError(t, err)
	assert.Equal(t, "Available", got.Status())
}

func TestUnknownIDNotFound(t *testing.T) {
	c := newCatalog(t, "A", "B")
	before := c.ListBooks()

	for _, id := range []int64{0, -1, 3, 1 << 40} {
		_, err := c.IssueBook(id)
		assert.ErrorIs(t, err, ErrNotFound, "issue %d", id)

		_, err = c.ReturnBook(id)
		assert.ErrorIs(t, err, ErrNotFound, "return %d", id)

		_, err = c.GetBook(id)
		assert.ErrorIs(t, err, ErrNotFound, "get %d", id)
	}

	assert.Equal(t, before, c.ListBooks())
}

func TestDuneScenario(t *testing.T) {
	c := NewCatalog()

	b := c.AddBook("Dune", "Herbert")
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, "Available", b.Status())

	b, err := c.IssueBook(1)
	require.NoError(t, err)
	assert.Equal(t, "Issued", b.Status())

	_, err = c.IssueBook(1)
	assert.ErrorIs(t, err, ErrAlreadyIssued)

	b, err = c.ReturnBook(1)
	require.NoError(t, err)
	assert.Equal(t, "Available", b.Status())

	_, err = c.IssueBook(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookString(t *testing.T) {
	b := Book{ID: 7, Title: "Dune", Author: "Herbert"}
	assert.Equal(t, "ID: 7 | Title: Dune | Author: Herbert | Status: Available", b.String())

	b.Issued = true
	assert.Equal(t, "ID: 7 | Title: Dune | Author: Herbert | Status: Issued", b.String())
}

func TestCatalogLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewCatalog(WithLogger(logger))

	c.AddBook("Dune", "Herbert")
	_, _ = c.IssueBook(1)
	_, _ = c.ReturnBook(1)

	out := buf.String()
	assert.Contains(t, out, `msg="book added" id=1 title=Dune`)
	assert.Contains(t, out, `msg="book issued" id=1`)
	assert.Contains(t, out, `msg="book returned" id=1`)
}
