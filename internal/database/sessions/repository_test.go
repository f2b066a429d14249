package sessions

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "sessions.db"), database.WithLogLevel(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB), db.DB
}

func TestRepository_BookSessions_NewestFirst(t *testing.T) {
	repo, db := setupTestDB(t)

	book := &entities.Book{Title: "History"}
	require.NoError(t, db.Create(book).Error)

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i, pages := range []int{10, 20, 30} {
		require.NoError(t, repo.CreateBookSession(&entities.ReadingSession{
			BookID: book.ID, Date: base.AddDate(0, 0, i), PagesRead: pages,
		}))
	}

	sessions, err := repo.BookSessions(book.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, 30, sessions[0].PagesRead)
	assert.Equal(t, 10, sessions[2].PagesRead)

	count, err := repo.CountBookSessions(book.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRepository_CreateBookSession_StoresUTC(t *testing.T) {
	repo, db := setupTestDB(t)

	book := &entities.Book{Title: "Zones"}
	require.NoError(t, db.Create(book).Error)

	local := time.Date(2026, 4, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	session := &entities.ReadingSession{BookID: book.ID, Date: local, PagesRead: 1}
	require.NoError(t, repo.CreateBookSession(session))

	sessions, err := repo.BookSessions(book.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, local.Equal(sessions[0].Date))
}

func TestRepository_SessionsBetween(t *testing.T) {
	repo, db := setupTestDB(t)

	book := &entities.Book{Title: "Range"}
	require.NoError(t, db.Create(book).Error)
	article := &entities.Article{Title: "Range"}
	require.NoError(t, db.Create(article).Error)

	from := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	dates := []time.Time{
		from.Add(-time.Second),
		from,
		from.Add(36 * time.Hour),
		to,
	}
	for _, d := range dates {
		require.NoError(t, repo.CreateBookSession(&entities.ReadingSession{BookID: book.ID, Date: d, PagesRead: 1}))
		require.NoError(t, repo.CreateArticleSession(&entities.ArticleReadingSession{ArticleID: article.ID, Date: d, MinutesSpent: 1}))
	}

	bookSessions, err := repo.BookSessionsBetween(from, to)
	require.NoError(t, err)
	require.Len(t, bookSessions, 2)
	assert.True(t, from.Equal(bookSessions[0].Date))

	articleSessions, err := repo.ArticleSessionsBetween(from, to)
	require.NoError(t, err)
	assert.Len(t, articleSessions, 2)
}

func TestRepository_CreateArticleSession_RequiresArticle(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateArticleSession(&entities.ArticleReadingSession{
		ArticleID: 404, Date: time.Now(), MinutesSpent: 5,
	})
	assert.Error(t, err)
}
