package shell

import (
	"errors"
	"log/slog"

	"library-inventory/library"
)

func (s *Shell) handleAddBook() error {
	// Drop whatever followed the choice on its line.
	if _, err := s.in.Line(); err != nil {
		return err
	}

	s.out.print("Enter book title: ")
	title, err := s.in.Line()
	if err != nil {
		return err
	}

	s.out.print("Enter book author: ")
	author, err := s.in.Line()
	if err != nil {
		return err
	}

	b := s.catalog.AddBook(title, author)
	s.out.printf("Book added successfully: %s\n", b)
	return nil
}

func (s *Shell) handleListBooks() {
	books := s.catalog.ListBooks()
	if len(books) == 0 {
		s.out.println("No books in the library.")
		return
	}

	s.out.println()
	s.out.println("--- List of Books ---")
	for _, b := range books {
		s.out.println(b)
	}
}

func (s *Shell) handleIssueBook() error {
	s.out.print("Enter the ID of the book to issue: ")
	id, ok, err := s.in.Int()
	if err != nil {
		return err
	}
	if !ok {
		s.out.println("Invalid ID format.")
		return nil
	}

	b, err := s.catalog.IssueBook(id)
	s.reportIssue(id, b, err)
	return nil
}

func (s *Shell) reportIssue(id int64, b library.Book, err error) {
	switch {
	case err == nil:
		s.out.printf("Book \"%s\" issued successfully.\n", b.Title)
	case errors.Is(err, library.ErrAlreadyIssued):
		s.out.printf("Book \"%s\" is already issued.\n", b.Title)
	case errors.Is(err, library.ErrNotFound):
		s.out.printf("Book with ID %d not found.\n", id)
	default:
		s.out.printf("Error issuing book: %v\n", err)
	}
	s.logOutcome("issue", id, err)
}

func (s *Shell) handleReturnBook() error {
	s.out.print("Enter the ID of the book to return: ")
	id, ok, err := s.in.Int()
	if err != nil {
		return err
	}
	if !ok {
		s.out.println("Invalid ID format.")
		return nil
	}

	b, err := s.catalog.ReturnBook(id)
	s.reportReturn(id, b, err)
	return nil
}

func (s *Shell) reportReturn(id int64, b library.Book, err error) {
	switch {
	case err == nil:
		s.out.printf("Book \"%s\" returned successfully.\n", b.Title)
	case errors.Is(err, library.ErrNotIssued):
		s.out.printf("Book \"%s\" was not issued.\n", b.Title)
	case errors.Is(err, library.ErrNotFound):
		s.out.printf("Book with ID %d not found.\n", id)
	default:
		s.out.printf("Error returning book: %v\n", err)
	}
	s.logOutcome("return", id, err)
}

func (s *Shell) logOutcome(op string, id int64, err error) {
	switch {
	case err == nil:
		s.logger.Debug("request applied", slog.String("op", op), slog.Int64("id", id))
	case errors.Is(err, library.ErrNotFound), errors.Is(err, library.ErrAlreadyIssued), errors.Is(err, library.ErrNotIssued):
		s.logger.Debug("request rejected", slog.String("op", op), slog.Int64("id", id), slog.String("reason", err.Error()))
	default:
		s.logger.Error("catalog failure", slog.String("op", op), slog.Int64("id", id), slog.Any("error", err))
	}
}
