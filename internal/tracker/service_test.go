package tracker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readtracker/internal/database"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func intPtr(i int) *int { return &i }

var testToday = time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)

func setupTestService(t *testing.T) (*Service, *fakeClock, *database.Database) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tracker.db")

	db, err := database.NewDatabase(dbPath, database.WithLogLevel(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := &fakeClock{now: testToday}
	return NewService(db, WithClock(clock.Now)), clock, db
}

func addBook(t *testing.T, svc *Service, title string, totalPages *int, startReading bool) *BookView {
	t.Helper()
	book, err := svc.AddBook(context.Background(), NewBook{
		Title:        title,
		TotalPages:   totalPages,
		StartReading: startReading,
	})
	require.NoError(t, err)
	return book
}

func addArticle(t *testing.T, svc *Service, title string) *ArticleView {
	t.Helper()
	article, err := svc.AddArticle(context.Background(), NewArticle{Title: title})
	require.NoError(t, err)
	return article
}
