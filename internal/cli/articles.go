package cli

import (
	"context"
	"fmt"

	"github.com/mrlokans/readtracker/internal/tracker"
)

// AddArticleCommand saves an article for later.
type AddArticleCommand struct {
	base
	Title  string
	Author string
	Source string
	URL    string
}

func NewAddArticleCommand() *AddArticleCommand {
	return &AddArticleCommand{}
}

func (cmd *AddArticleCommand) ParseFlags(args []string) error {
	fs := newFlagSet("add-article", "Save an article to read later.")
	cmd.register(fs)
	fs.StringVar(&cmd.Title, "title", "", "Article title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Article author")
	fs.StringVar(&cmd.Source, "source", "", "Publication or site")
	fs.StringVar(&cmd.URL, "url", "", "Link to the article")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Title == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	return nil
}

func (cmd *AddArticleCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	article, err := svc.AddArticle(context.Background(), tracker.NewArticle{
		Title:  cmd.Title,
		Author: cmd.Author,
		Source: cmd.Source,
		URL:    cmd.URL,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out(), "Added article %d: %s\n", article.ID, article.Title)
	return nil
}

// MarkReadCommand marks an article as read.
type MarkReadCommand struct {
	base
	ArticleID uint
	Rating    int
	Notes     string
	Minutes   int
}

func NewMarkReadCommand() *MarkReadCommand {
	return &MarkReadCommand{}
}

func (cmd *MarkReadCommand) ParseFlags(args []string) error {
	fs := newFlagSet("mark-read", "Mark an article as read.")
	cmd.register(fs)
	fs.UintVar(&cmd.ArticleID, "article", 0, "Article ID (required)")
	fs.IntVar(&cmd.Rating, "rating", -1, "Rating from 0 to 5 (optional)")
	fs.StringVar(&cmd.Notes, "notes", "", "Notes about the article")
	fs.IntVar(&cmd.Minutes, "minutes", 0, "Minutes spent reading")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return requireID("article", cmd.ArticleID)
}

func (cmd *MarkReadCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	minutes := cmd.Minutes
	article, err := svc.MarkArticleRead(context.Background(), cmd.ArticleID, tracker.ArticleRead{
		Rating:       optionalInt(cmd.Rating, -1),
		Notes:        cmd.Notes,
		MinutesSpent: &minutes,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out(), "Marked %s as read\n", article.Title)
	return nil
}
