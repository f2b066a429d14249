package cli

import (
	"context"
	"fmt"

	"github.com/mrlokans/readtracker/internal/tracker"
)

// AddBookCommand adds a book, optionally starting it right away.
type AddBookCommand struct {
	base
	Title        string
	Author       string
	TotalPages   int
	StartReading bool
}

func NewAddBookCommand() *AddBookCommand {
	return &AddBookCommand{}
}

func (cmd *AddBookCommand) ParseFlags(args []string) error {
	fs := newFlagSet("add-book", "Add a book to the reading list.")
	cmd.register(fs)
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author")
	fs.IntVar(&cmd.TotalPages, "pages", 0, "Total number of pages (0 = unknown)")
	fs.BoolVar(&cmd.StartReading, "start", false, "Mark the book as currently reading")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Title == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	return nil
}

func (cmd *AddBookCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	book, err := svc.AddBook(context.Background(), tracker.NewBook{
		Title:        cmd.Title,
		Author:       cmd.Author,
		TotalPages:   optionalInt(cmd.TotalPages, 0),
		StartReading: cmd.StartReading,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out(), "Added book %d: %s (%s)\n", book.ID, book.Title, book.Status)
	return nil
}

// ProgressCommand records a reading session for a book.
type ProgressCommand struct {
	base
	BookID  uint
	Pages   int
	Minutes int
}

func NewProgressCommand() *ProgressCommand {
	return &ProgressCommand{}
}

func (cmd *ProgressCommand) ParseFlags(args []string) error {
	fs := newFlagSet("progress", "Record pages read in a book today.")
	cmd.register(fs)
	fs.UintVar(&cmd.BookID, "book", 0, "Book ID (required)")
	fs.IntVar(&cmd.Pages, "pages", 0, "Pages read in this session (required)")
	fs.IntVar(&cmd.Minutes, "minutes", -1, "Minutes spent (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return requireID("book", cmd.BookID)
}

func (cmd *ProgressCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	if _, err := svc.RecordBookProgress(ctx, cmd.BookID, tracker.ProgressEntry{
		PagesRead:    cmd.Pages,
		MinutesSpent: optionalInt(cmd.Minutes, -1),
	}); err != nil {
		return err
	}

	book, err := svc.GetBookDetails(ctx, cmd.BookID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out(), "%s: page %d, progress %s\n", book.Title, book.CurrentPage, book.ProgressLabel())
	return nil
}

// FinishCommand marks a book as finished.
type FinishCommand struct {
	base
	BookID uint
	Rating int
	Notes  string
}

func NewFinishCommand() *FinishCommand {
	return &FinishCommand{}
}

func (cmd *FinishCommand) ParseFlags(args []string) error {
	fs := newFlagSet("finish", "Mark a book as finished today.")
	cmd.register(fs)
	fs.UintVar(&cmd.BookID, "book", 0, "Book ID (required)")
	fs.IntVar(&cmd.Rating, "rating", -1, "Rating from 0 to 5 (optional)")
	fs.StringVar(&cmd.Notes, "notes", "", "Closing notes")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return requireID("book", cmd.BookID)
}

func (cmd *FinishCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	book, err := svc.FinishBook(context.Background(), cmd.BookID, tracker.BookFinish{
		Rating: optionalInt(cmd.Rating, -1),
		Notes:  cmd.Notes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out(), "Finished %s\n", book.Title)
	return nil
}
