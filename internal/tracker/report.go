package tracker

import (
	"context"

	"github.com/mrlokans/readtracker/internal/exporters"
	"github.com/mrlokans/readtracker/internal/reading"
)

// BuildReport collects every item with its history, the summary counts and
// the activity of the last days into one snapshot for exporters.
func (s *Service) BuildReport(ctx context.Context, days int) (*exporters.Report, error) {
	activity, err := s.AggregateActivity(ctx, days)
	if err != nil {
		return nil, err
	}
	summary, err := s.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	r := s.repos(ctx)
	report := &exporters.Report{
		GeneratedAt: s.now(),
		Summary:     summary,
		Activity:    *activity,
	}

	books, err := s.ListBooks(ctx, reading.FilterAll)
	if err != nil {
		return nil, err
	}
	for _, view := range books {
		history, err := r.sessions.BookSessions(view.ID)
		if err != nil {
			return nil, storageErr(err, "load reading history")
		}
		report.Books = append(report.Books, exporters.BookEntry{
			Book:     view.Book,
			Status:   view.Status,
			Progress: view.ProgressLabel(),
			Sessions: history,
		})
	}

	articles, err := s.ListArticles(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, view := range articles {
		history, err := r.sessions.ArticleSessions(view.ID)
		if err != nil {
			return nil, storageErr(err, "load article reading history")
		}
		report.Articles = append(report.Articles, exporters.ArticleEntry{
			Article:  view.Article,
			Status:   view.Status,
			Sessions: history,
		})
	}

	return report, nil
}
