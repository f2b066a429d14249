package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readtracker/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewDatabase_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"books", "articles", "reading_sessions", "article_reading_sessions"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestNewDatabase_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	db, err := NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&entities.Book{Title: "Persisted"}).Error)
	require.NoError(t, db.Close())

	db, err = NewDatabase(dbPath, WithLogLevel(logger.Silent))
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Book{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewDatabase_ForeignKeysEnabled(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	require.NoError(t, db.DB.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestNewDatabase_InMemory(t *testing.T) {
	db, err := NewDatabase(":memory:", WithLogLevel(logger.Silent))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.DB.Create(&entities.Article{Title: "In memory"}).Error)

	var count int64
	require.NoError(t, db.DB.Model(&entities.Article{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSessionRequiresExistingBook(t *testing.T) {
	db := setupTestDB(t)

	err := db.DB.Omit("Book").Create(&entities.ReadingSession{
		BookID:    999,
		Date:      time.Now().UTC(),
		PagesRead: 10,
	}).Error
	assert.Error(t, err, "orphan session must violate the foreign key")
}

func TestDeleteBook_CascadesSessions(t *testing.T) {
	db := setupTestDB(t)

	book := &entities.Book{Title: "Cascade"}
	require.NoError(t, db.DB.Create(book).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.DB.Omit("Book").Create(&entities.ReadingSession{
			BookID: book.ID, Date: time.Now().UTC(), PagesRead: 5,
		}).Error)
	}

	require.NoError(t, db.DB.Delete(&entities.Book{}, book.ID).Error)

	var count int64
	require.NoError(t, db.DB.Model(&entities.ReadingSession{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteArticle_CascadesSessions(t *testing.T) {
	db := setupTestDB(t)

	article := &entities.Article{Title: "Cascade"}
	require.NoError(t, db.DB.Create(article).Error)
	require.NoError(t, db.DB.Omit("Article").Create(&entities.ArticleReadingSession{
		ArticleID: article.ID, Date: time.Now().UTC(), MinutesSpent: 12,
	}).Error)

	require.NoError(t, db.DB.Delete(&entities.Article{}, article.ID).Error)

	var count int64
	require.NoError(t, db.DB.Model(&entities.ArticleReadingSession{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "./a.db?_foreign_keys=on", dsn("./a.db"))
	assert.Equal(t, "./a.db?cache=shared&_foreign_keys=on", dsn("./a.db?cache=shared"))
}
