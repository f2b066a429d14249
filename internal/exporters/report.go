package exporters

import (
	"time"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

// Report is a snapshot of the reading journal handed to exporters.
type Report struct {
	GeneratedAt time.Time
	Summary     reading.SummaryCounts
	Activity    reading.Activity
	Books       []BookEntry
	Articles    []ArticleEntry
}

// BookEntry is one book with its derived values and full session history.
type BookEntry struct {
	Book     entities.Book
	Status   reading.BookStatus
	Progress string
	Sessions []entities.ReadingSession
}

// ArticleEntry is one article with its derived status and sessions.
type ArticleEntry struct {
	Article  entities.Article
	Status   reading.ArticleStatus
	Sessions []entities.ArticleReadingSession
}

type ReportExporter interface {
	Export(report *Report) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed    int      `json:"books_processed"`
	ArticlesProcessed int      `json:"articles_processed"`
	SessionsProcessed int      `json:"sessions_processed"`
	Files             []string `json:"files"`
}

// Add folds another exporter's result into r.
func (r *ExportResult) Add(other ExportResult) {
	r.BooksProcessed += other.BooksProcessed
	r.ArticlesProcessed += other.ArticlesProcessed
	r.SessionsProcessed += other.SessionsProcessed
	r.Files = append(r.Files, other.Files...)
}

// MultiExporter runs several exporters over the same report and stops at
// the first failure.
type MultiExporter []ReportExporter

func (m MultiExporter) Export(report *Report) (ExportResult, error) {
	var total ExportResult
	for _, exporter := range m {
		result, err := exporter.Export(report)
		if err != nil {
			return total, err
		}
		total.Add(result)
	}
	return total, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

func formatRating(rating *int) string {
	if rating == nil {
		return "-"
	}
	return fmtInt(*rating) + "/5"
}

func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return fmtInt(*minutes)
}

// Export format names accepted by the CLI, the API and the scheduler.
const (
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
)

// NewExporterSet returns one exporter per supported format writing below
// outputDir.
func NewExporterSet(outputDir string) map[string]ReportExporter {
	return map[string]ReportExporter{
		FormatMarkdown: NewMarkdownExporter(outputDir, "journal"),
		FormatXLSX:     NewXLSXExporter(outputDir, ""),
	}
}
