package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/utils"
)

// MarkdownExporter writes a reading journal: one note per book, one note
// listing the articles, and an index linking them.
type MarkdownExporter struct {
	OutputDir     string
	ExportPath    string
	IndexFileName string
}

func NewMarkdownExporter(outputDir string, exportPath string) *MarkdownExporter {
	return &MarkdownExporter{
		OutputDir:     outputDir,
		ExportPath:    exportPath,
		IndexFileName: "index.md",
	}
}

func (exporter *MarkdownExporter) ensureDirs() (string, error) {
	if _, err := os.Stat(exporter.OutputDir); err != nil {
		return "", fmt.Errorf("output directory is not accessible: %w", err)
	}

	booksDir := filepath.Join(exporter.OutputDir, exporter.ExportPath, "books")
	if err := os.MkdirAll(booksDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(exporter.OutputDir, exporter.ExportPath), nil
}

func (exporter *MarkdownExporter) Export(report *Report) (ExportResult, error) {
	result := ExportResult{}

	exportDir, err := exporter.ensureDirs()
	if err != nil {
		return result, err
	}

	for _, entry := range report.Books {
		path := filepath.Join(exportDir, "books", bookFileName(entry)+".md")
		if err := os.WriteFile(path, []byte(GenerateBookMarkdown(entry, report)), 0644); err != nil {
			return result, fmt.Errorf("failed to write book note %q: %w", entry.Book.Title, err)
		}
		result.BooksProcessed++
		result.SessionsProcessed += len(entry.Sessions)
		result.Files = append(result.Files, path)
	}

	articlesPath := filepath.Join(exportDir, "articles.md")
	if err := os.WriteFile(articlesPath, []byte(GenerateArticlesMarkdown(report)), 0644); err != nil {
		return result, fmt.Errorf("failed to write articles note: %w", err)
	}
	for _, entry := range report.Articles {
		result.ArticlesProcessed++
		result.SessionsProcessed += len(entry.Sessions)
	}
	result.Files = append(result.Files, articlesPath)

	indexPath := filepath.Join(exportDir, exporter.IndexFileName)
	if err := os.WriteFile(indexPath, []byte(GenerateIndexMarkdown(report)), 0644); err != nil {
		return result, fmt.Errorf("failed to write index: %w", err)
	}
	result.Files = append(result.Files, indexPath)

	return result, nil
}

// bookFileName keeps notes for books sharing a title apart.
func bookFileName(entry BookEntry) string {
	return fmt.Sprintf("%s (%d)", utils.SanitizeFilename(entry.Book.Title), entry.Book.ID)
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

func fmtInt(i int) string {
	return strconv.Itoa(i)
}

func GenerateBookMarkdown(entry BookEntry, report *Report) string {
	var builder strings.Builder
	book := entry.Book

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: reading_journal\n")
	fmt.Fprintf(&builder, "created_at: %s\n", report.GeneratedAt.Format(reading.DayLayout))
	fmt.Fprintf(&builder, "title: %s\n", quote(book.Title))
	fmt.Fprintf(&builder, "author: %s\n", quote(book.Author))
	fmt.Fprintf(&builder, "status: %s\n", entry.Status)
	fmt.Fprintf(&builder, "tags: reading, books\n")
	fmt.Fprintf(&builder, "---\n\n")

	fmt.Fprintf(&builder, "# %s\n\n", book.Title)
	fmt.Fprintf(&builder, "- **Progress:** %s", entry.Progress)
	if book.TotalPages != nil {
		fmt.Fprintf(&builder, " (%d/%d pages)", book.CurrentPage, *book.TotalPages)
	} else {
		fmt.Fprintf(&builder, " (%d pages)", book.CurrentPage)
	}
	fmt.Fprintf(&builder, "\n")
	fmt.Fprintf(&builder, "- **Started:** %s\n", formatDate(book.StartDate))
	fmt.Fprintf(&builder, "- **Finished:** %s\n", formatDate(book.EndDate))
	fmt.Fprintf(&builder, "- **Rating:** %s\n\n", formatRating(book.Rating))

	if book.Notes != "" {
		fmt.Fprintf(&builder, "## Notes\n\n%s\n\n", book.Notes)
	}

	fmt.Fprintf(&builder, "## Sessions\n\n")
	if len(entry.Sessions) == 0 {
		fmt.Fprintf(&builder, "No reading sessions recorded.\n")
		return builder.String()
	}
	fmt.Fprintf(&builder, "| Date | Pages | Minutes |\n")
	fmt.Fprintf(&builder, "|------|-------|---------|\n")
	for _, session := range entry.Sessions {
		fmt.Fprintf(&builder, "| %s | %d | %s |\n",
			session.Date.Local().Format("2006-01-02 15:04"), session.PagesRead, formatMinutes(session.MinutesSpent))
	}
	return builder.String()
}

func GenerateArticlesMarkdown(report *Report) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: reading_journal\n")
	fmt.Fprintf(&builder, "created_at: %s\n", report.GeneratedAt.Format(reading.DayLayout))
	fmt.Fprintf(&builder, "tags: reading, articles\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# Articles\n\n")

	if len(report.Articles) == 0 {
		fmt.Fprintf(&builder, "No articles saved.\n")
		return builder.String()
	}

	for _, entry := range report.Articles {
		article := entry.Article
		check := " "
		if entry.Status == reading.ArticleStatusRead {
			check = "x"
		}
		title := article.Title
		if article.URL != "" {
			title = fmt.Sprintf("[%s](%s)", article.Title, article.URL)
		}
		fmt.Fprintf(&builder, "- [%s] %s", check, title)
		if article.Author != "" {
			fmt.Fprintf(&builder, " by %s", article.Author)
		}
		if article.Source != "" {
			fmt.Fprintf(&builder, " (%s)", article.Source)
		}
		if entry.Status == reading.ArticleStatusRead {
			fmt.Fprintf(&builder, " read %s, rating %s", formatDate(article.ReadDate), formatRating(article.Rating))
		}
		fmt.Fprintf(&builder, "\n")
		if article.Notes != "" {
			fmt.Fprintf(&builder, "  > %s\n", strings.ReplaceAll(article.Notes, "\n", "\n  > "))
		}
	}
	return builder.String()
}

func GenerateIndexMarkdown(report *Report) string {
	var builder strings.Builder
	summary := report.Summary

	fmt.Fprintf(&builder, "# Reading journal\n\n")
	fmt.Fprintf(&builder, "Generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&builder, "## Summary\n\n")
	fmt.Fprintf(&builder, "| Books | Count |\n|-------|-------|\n")
	fmt.Fprintf(&builder, "| Reading | %d |\n", summary.ReadingBooks)
	fmt.Fprintf(&builder, "| Paused | %d |\n", summary.PausedBooks)
	fmt.Fprintf(&builder, "| Unread | %d |\n", summary.UnreadBooks)
	fmt.Fprintf(&builder, "| Finished | %d |\n\n", summary.FinishedBooks)
	fmt.Fprintf(&builder, "Articles: %d read, %d unread\n\n", summary.ReadArticles, summary.UnreadArticles)

	fmt.Fprintf(&builder, "## Books\n\n")
	for _, entry := range report.Books {
		fmt.Fprintf(&builder, "- [[books/%s|%s]] %s, %s\n", bookFileName(entry), entry.Book.Title, entry.Status, entry.Progress)
	}

	activity := report.Activity
	fmt.Fprintf(&builder, "\n## Activity %s to %s\n\n", activity.From, activity.To)
	fmt.Fprintf(&builder, "| Date | Pages | Article minutes |\n|------|-------|-----------------|\n")
	for _, row := range activityRows(activity) {
		fmt.Fprintf(&builder, "| %s | %d | %d |\n", row.date, row.pages, row.minutes)
	}
	return builder.String()
}

type activityRow struct {
	date    string
	pages   int
	minutes int
}

// activityRows lines up both series over every day of the window.
func activityRows(activity reading.Activity) []activityRow {
	pages := reading.FillDays(activity.Pages, activity.From, activity.To)
	minutes := reading.FillDays(activity.Minutes, activity.From, activity.To)

	rows := make([]activityRow, len(pages))
	for i := range pages {
		rows[i] = activityRow{date: pages[i].Date, pages: pages[i].Total}
		if i < len(minutes) {
			rows[i].minutes = minutes[i].Total
		}
	}
	return rows
}
