package library

import (
	"io"
	"log/slog"
)

// Catalog owns the in-memory book records and hands out sequential IDs.
// It is not safe for concurrent use; the shell is its only caller.
type Catalog struct {
	books  []*Book
	nextID int64
	logger *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog returns an empty catalog whose first book gets ID 1.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		nextID: 1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// AddBook appends a new available book and returns a copy of it.
// Title and author are stored as given, empty strings included.
func (c *Catalog) AddBook(title, author string) Book {
	b := &Book{ID: c.nextID, Title: title, Author: author}
	c.nextID++
	c.books = append(c.books, b)

	c.logger.Debug("book added", slog.Int64("id", b.ID), slog.String("title", b.Title))
	return *b
}

// ListBooks returns copies of every book in insertion order.
// The slice is empty, never nil, when the catalog holds no books.
func (c *Catalog) ListBooks() []Book {
	books := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		books = append(books, *b)
	}
	return books
}

// GetBook looks up a single book without changing it.
func (c *Catalog) GetBook(id int64) (Book, error) {
	b := c.findByID(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

// Len reports how many books have been added.
func (c *Catalog) Len() int { return len(c.books) }

// ---------------------------------------------------------------------------
// Circulation
// ---------------------------------------------------------------------------

// IssueBook marks the book as issued.
//
// It returns ErrNotFound when id is unknown and ErrAlreadyIssued when the book
// is already out. Whenever the book exists the returned copy is populated, even
// alongside an error, so callers can report its title.
func (c *Catalog) IssueBook(id int64) (Book, error) {
	b := c.findByID(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	if b.Issued {
		return *b, ErrAlreadyIssued
	}

	b.Issued = true
	c.logger.Debug("book issued", slog.Int64("id", b.ID))
	return *b, nil
}

// ReturnBook marks an issued book as available again.
// It mirrors IssueBook, reporting ErrNotIssued for a book that is not out.
func (c *Catalog) ReturnBook(id int64) (Book, error) {
	b := c.findByID(id)
	if b == nil {
		return Book{}, ErrNotFound
	}
	if !b.Issued {
		return *b, ErrNotIssued
	}

	b.Issued = false
	c.logger.Debug("book returned", slog.Int64("id", b.ID))
	return *b, nil
}

func (c *Catalog) findByID(id int64) *Book {
	for _, b := range c.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}
