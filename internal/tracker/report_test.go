package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readtracker/internal/reading"
)

func TestBuildReport(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	dune := addBook(t, svc, "Dune", intPtr(600), true)
	_, err := svc.RecordBookProgress(ctx, dune.ID, ProgressEntry{PagesRead: 150})
	require.NoError(t, err)
	addBook(t, svc, "Queued", nil, false)

	article := addArticle(t, svc, "On Distributed Systems")
	_, err = svc.MarkArticleRead(ctx, article.ID, ArticleRead{MinutesSpent: intPtr(20)})
	require.NoError(t, err)

	report, err := svc.BuildReport(ctx, 30)
	require.NoError(t, err)

	assert.True(t, report.GeneratedAt.Equal(testToday))
	assert.Equal(t, int64(1), report.Summary.ReadingBooks)
	assert.Equal(t, int64(1), report.Summary.UnreadBooks)
	assert.Equal(t, 30, report.Activity.Days)
	assert.Equal(t, []reading.DailyTotal{{Date: "2026-05-20", Total: 150}}, report.Activity.Pages)

	require.Len(t, report.Books, 2)
	assert.Equal(t, "Dune", report.Books[0].Book.Title)
	assert.Equal(t, "25.0%", report.Books[0].Progress)
	assert.Len(t, report.Books[0].Sessions, 1)
	assert.Equal(t, "-", report.Books[1].Progress)

	require.Len(t, report.Articles, 1)
	assert.Equal(t, reading.ArticleStatusRead, report.Articles[0].Status)
	assert.Len(t, report.Articles[0].Sessions, 1)

	_, err = svc.BuildReport(ctx, -1)
	assert.True(t, IsValidation(err))
}
