package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/tracker"
)

// ListCommand prints books or articles as a table.
type ListCommand struct {
	base
	Status   string
	Articles bool
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := newFlagSet("list", "List books (default) or articles.")
	cmd.register(fs)
	fs.StringVar(&cmd.Status, "status", "", "Filter: all, reading, paused, unread, finished (articles: read, unread)")
	fs.BoolVar(&cmd.Articles, "articles", false, "List articles instead of books")

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	if cmd.Articles {
		status, err := parseArticleStatus(cmd.Status)
		if err != nil {
			return err
		}
		articles, err := svc.ListArticles(ctx, status)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.out(), RenderArticles(articles))
		return nil
	}

	filter, err := reading.ParseBookFilter(cmd.Status)
	if err != nil {
		return err
	}
	books, err := svc.ListBooks(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.out(), RenderBooks(books))
	return nil
}

func parseArticleStatus(s string) (reading.ArticleStatus, error) {
	switch status := reading.ArticleStatus(s); status {
	case "", "all":
		return "", nil
	case reading.ArticleStatusRead, reading.ArticleStatusUnread:
		return status, nil
	default:
		return "", fmt.Errorf("unknown article status %q", s)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderBooks formats books as a table with status and progress columns.
func RenderBooks(books []tracker.BookView) string {
	if len(books) == 0 {
		return mutedStyle.Render("No books found.")
	}

	t := newTable("ID", "Title", "Author", "Status", "Page", "Progress")
	for _, b := range books {
		t.Row(
			strconv.FormatUint(uint64(b.ID), 10),
			b.Title,
			b.Author,
			string(b.Status),
			pageLabel(b),
			b.ProgressLabel(),
		)
	}
	return t.Render()
}

// RenderArticles formats articles as a table.
func RenderArticles(articles []tracker.ArticleView) string {
	if len(articles) == 0 {
		return mutedStyle.Render("No articles found.")
	}

	t := newTable("ID", "Title", "Source", "Status", "Rating")
	for _, a := range articles {
		rating := "-"
		if a.Rating != nil {
			rating = strconv.Itoa(*a.Rating) + "/5"
		}
		t.Row(
			strconv.FormatUint(uint64(a.ID), 10),
			a.Title,
			a.Source,
			string(a.Status),
			rating,
		)
	}
	return t.Render()
}

func pageLabel(b tracker.BookView) string {
	if b.TotalPages == nil {
		return strconv.Itoa(b.CurrentPage)
	}
	return fmt.Sprintf("%d/%d", b.CurrentPage, *b.TotalPages)
}
