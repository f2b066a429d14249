package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/tracker"
)

func TestStatsController_Summary(t *testing.T) {
	router, svc := setupTestRouter(t, nil)
	ctx := context.Background()

	_, err := svc.AddBook(ctx, tracker.NewBook{Title: "Reading", StartReading: true})
	require.NoError(t, err)
	_, err = svc.AddBook(ctx, tracker.NewBook{Title: "Queued"})
	require.NoError(t, err)
	_, err = svc.AddArticle(ctx, tracker.NewArticle{Title: "Later"})
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, "/api/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decode[SummaryResponse](t, w)
	assert.Equal(t, int64(1), summary.ReadingBooks)
	assert.Equal(t, int64(1), summary.UnreadBooks)
	assert.Equal(t, int64(1), summary.UnreadArticles)
	assert.Equal(t, int64(2), summary.TotalBooks)
	assert.Equal(t, int64(1), summary.TotalArticles)
}

func TestStatsController_Activity(t *testing.T) {
	router, svc := setupTestRouter(t, nil)
	ctx := context.Background()

	book, err := svc.AddBook(ctx, tracker.NewBook{Title: "Active", StartReading: true})
	require.NoError(t, err)
	_, err = svc.RecordBookProgress(ctx, book.ID, tracker.ProgressEntry{PagesRead: 12})
	require.NoError(t, err)
	today := time.Now().Format(reading.DayLayout)

	w := doRequest(t, router, http.MethodGet, "/api/stats/activity", nil)
	require.Equal(t, http.StatusOK, w.Code)
	activity := decode[reading.Activity](t, w)
	assert.Equal(t, 7, activity.Days)
	assert.Equal(t, []reading.DailyTotal{{Date: today, Total: 12}}, activity.Pages)

	w = doRequest(t, router, http.MethodGet, "/api/stats/activity?days=2&fill=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	filled := decode[reading.Activity](t, w)
	assert.Len(t, filled.Pages, 3)
	assert.Len(t, filled.Minutes, 3)

	w = doRequest(t, router, http.MethodGet, "/api/stats/activity?days=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/stats/activity?days=week", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
