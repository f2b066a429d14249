// Package sessions stores book and article reading sessions.
//
// Sessions are append-only: the repository offers inserts and reads but no
// update or delete. Rows are removed only by the ON DELETE CASCADE foreign
// key when their parent item is deleted.
package sessions

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/readtracker/internal/entities"
)

// Repository handles reading session persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBookSession appends a book session. Date is stored in UTC.
func (r *Repository) CreateBookSession(session *entities.ReadingSession) error {
	session.Date = session.Date.UTC()
	return r.db.Omit("Book").Create(session).Error
}

// CreateArticleSession appends an article session. Date is stored in UTC.
func (r *Repository) CreateArticleSession(session *entities.ArticleReadingSession) error {
	session.Date = session.Date.UTC()
	return r.db.Omit("Article").Create(session).Error
}

// BookSessions returns a book's sessions, most recent first.
func (r *Repository) BookSessions(bookID uint) ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Where("book_id = ?", bookID).Order("date DESC").Order("id DESC").Find(&sessions).Error
	return sessions, err
}

// ArticleSessions returns an article's sessions, most recent first.
func (r *Repository) ArticleSessions(articleID uint) ([]entities.ArticleReadingSession, error) {
	var sessions []entities.ArticleReadingSession
	err := r.db.Where("article_id = ?", articleID).Order("date DESC").Order("id DESC").Find(&sessions).Error
	return sessions, err
}

// BookSessionsBetween returns book sessions dated in [from, to), oldest first.
func (r *Repository) BookSessionsBetween(from, to time.Time) ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC").Order("id ASC").Find(&sessions).Error
	return sessions, err
}

// ArticleSessionsBetween returns article sessions dated in [from, to), oldest first.
func (r *Repository) ArticleSessionsBetween(from, to time.Time) ([]entities.ArticleReadingSession, error) {
	var sessions []entities.ArticleReadingSession
	err := r.db.Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC").Order("id ASC").Find(&sessions).Error
	return sessions, err
}

// CountBookSessions returns how many sessions a book has.
func (r *Repository) CountBookSessions(bookID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ReadingSession{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}

// CountArticleSessions returns how many sessions an article has.
func (r *Repository) CountArticleSessions(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.ArticleReadingSession{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}
