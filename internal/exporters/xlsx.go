package exporters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	booksSheet    = "Books"
	articlesSheet = "Articles"
	activitySheet = "Activity"
)

// XLSXExporter writes the report as a workbook with one sheet each for
// books, articles and daily activity.
type XLSXExporter struct {
	OutputDir string
	FileName  string
}

func NewXLSXExporter(outputDir string, fileName string) *XLSXExporter {
	if fileName == "" {
		fileName = "reading-report.xlsx"
	}
	return &XLSXExporter{OutputDir: outputDir, FileName: fileName}
}

func (exporter *XLSXExporter) Export(report *Report) (ExportResult, error) {
	result := ExportResult{}

	if err := os.MkdirAll(exporter.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := BuildWorkbook(report)
	if err != nil {
		return result, err
	}
	defer f.Close()

	path := filepath.Join(exporter.OutputDir, exporter.FileName)
	if err := f.SaveAs(path); err != nil {
		return result, fmt.Errorf("failed to save workbook: %w", err)
	}

	result.BooksProcessed = len(report.Books)
	result.ArticlesProcessed = len(report.Articles)
	for _, entry := range report.Books {
		result.SessionsProcessed += len(entry.Sessions)
	}
	for _, entry := range report.Articles {
		result.SessionsProcessed += len(entry.Sessions)
	}
	result.Files = append(result.Files, path)
	return result, nil
}

// BuildWorkbook renders the report into an in-memory workbook.
// The caller closes the returned file.
func BuildWorkbook(report *Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", booksSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{articlesSheet, activitySheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	var bookRows [][]any
	for _, entry := range report.Books {
		book := entry.Book
		var totalPages any
		if book.TotalPages != nil {
			totalPages = *book.TotalPages
		}
		var rating any
		if book.Rating != nil {
			rating = *book.Rating
		}
		bookRows = append(bookRows, []any{
			book.ID, book.Title, book.Author, string(entry.Status),
			book.CurrentPage, totalPages, entry.Progress,
			formatDate(book.StartDate), formatDate(book.EndDate), rating, len(entry.Sessions),
		})
	}

	var articleRows [][]any
	for _, entry := range report.Articles {
		article := entry.Article
		var rating any
		if article.Rating != nil {
			rating = *article.Rating
		}
		minutes := 0
		for _, s := range entry.Sessions {
			minutes += s.MinutesSpent
		}
		articleRows = append(articleRows, []any{
			article.ID, article.Title, article.Author, article.Source, article.URL,
			string(entry.Status), formatDate(article.ReadDate), rating, minutes,
		})
	}

	var activity [][]any
	for _, row := range activityRows(report.Activity) {
		activity = append(activity, []any{row.date, row.pages, row.minutes})
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{booksSheet, []string{"ID", "Title", "Author", "Status", "Current Page", "Total Pages", "Progress", "Started", "Finished", "Rating", "Sessions"}, bookRows},
		{articlesSheet, []string{"ID", "Title", "Author", "Source", "URL", "Status", "Read", "Rating", "Minutes"}, articleRows},
		{activitySheet, []string{"Date", "Pages", "Article Minutes"}, activity},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}
