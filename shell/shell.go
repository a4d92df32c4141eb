// Package shell drives the library catalog from a numbered text menu.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"library-inventory/library"
)

// Menu choices.
const (
	choiceAdd int64 = iota + 1
	choiceList
	choiceIssue
	choiceReturn
	choiceExit
)

type state int

const (
	stateMenuPrompt state = iota
	stateAwaitChoice
	stateDispatch
	stateExit
)

// Shell reads menu choices from an input stream and applies them to a Catalog.
type Shell struct {
	catalog *library.Catalog
	in      *Input
	out     *printer
	logger  *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a shell bound to the given catalog and streams.
func New(catalog *library.Catalog, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		catalog: catalog,
		in:      NewInput(in),
		out:     &printer{w: out},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops over the menu until the user picks Exit or the input ends.
// End of input is a normal exit. Only stream failures are returned.
func (s *Shell) Run() error {
	var (
		st     = stateMenuPrompt
		choice int64
		valid  bool
	)

	for st != stateExit {
		switch st {
		case stateMenuPrompt:
			s.printMenu()
			st = stateAwaitChoice

		case stateAwaitChoice:
			var err error
			choice, valid, err = s.in.Int()
			if err != nil {
				return s.finish(err)
			}
			st = stateDispatch

		case stateDispatch:
			if !valid {
				s.printInvalidChoice()
				st = stateMenuPrompt
				break
			}
			next, err := s.dispatch(choice)
			if err != nil {
				return s.finish(err)
			}
			st = next
		}

		if s.out.err != nil {
			s.logger.Error("write output failed", slog.Any("error", s.out.err))
			return fmt.Errorf("write output: %w", s.out.err)
		}
	}

	s.logger.Debug("session ended", slog.Int("books", s.catalog.Len()))
	return nil
}

func (s *Shell) dispatch(choice int64) (state, error) {
	s.logger.Debug("dispatch", slog.Int64("choice", choice))

	var err error
	switch choice {
	case choiceAdd:
		err = s.handleAddBook()
	case choiceList:
		s.handleListBooks()
	case choiceIssue:
		err = s.handleIssueBook()
	case choiceReturn:
		err = s.handleReturnBook()
	case choiceExit:
		s.out.println("Exiting... Thank you for using the Library Management System.")
		return stateExit, nil
	default:
		s.printInvalidChoice()
	}
	if err != nil {
		return stateExit, err
	}
	return stateMenuPrompt, nil
}

// finish maps end of input to a clean exit and wraps anything else.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed", slog.Int("books", s.catalog.Len()))
		return nil
	}
	s.logger.Error("read input failed", slog.Any("error", err))
	return fmt.Errorf("read input: %w", err)
}

func (s *Shell) printInvalidChoice() {
	s.out.println("Invalid choice. Please enter a number between 1 and 5.")
}

func (s *Shell) printMenu() {
	s.out.println()
	s.out.println("===== LIBRARY MANAGEMENT SYSTEM =====")
	s.out.println("1. Add a Book")
	s.out.println("2. View All Books")
	s.out.println("3. Issue a Book")
	s.out.println("4. Return a Book")
	s.out.println("5. Exit")
	s.out.print("Enter your choice: ")
}

// printer remembers the first write error so handlers can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprint(p.w, a...)
	}
}

func (p *printer) println(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, a...)
	}
}

func (p *printer) printf(format string, a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}
