// Package articles provides database operations for articles.
package articles

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

// Repository handles all article database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new articles repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(article *entities.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article, returning gorm.ErrRecordNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Article, error) {
	var article entities.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update writes the given columns of an article.
// Returns gorm.ErrRecordNotFound when no article has that ID.
func (r *Repository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&entities.Article{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkRead flags the article as read and overwrites its read date, rating and
// notes. A nil rating clears any earlier one.
func (r *Repository) MarkRead(id uint, readAt time.Time, rating *int, notes string) error {
	return r.Update(id, map[string]any{
		"is_read":   true,
		"read_date": readAt,
		"rating":    rating,
		"notes":     notes,
	})
}

// Delete removes an article together with its sessions.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns articles unread first, then newest first.
// An empty status returns every article.
func (r *Repository) List(status reading.ArticleStatus) ([]entities.Article, error) {
	query := r.db.Model(&entities.Article{})
	switch status {
	case reading.ArticleStatusRead:
		query = query.Where("is_read = ?", true)
	case reading.ArticleStatusUnread:
		query = query.Where("is_read = ?", false)
	}

	var articles []entities.Article
	err := query.Order("is_read ASC").Order("added_date DESC").Order("id DESC").Find(&articles).Error
	return articles, err
}

// CountByStatus returns read and unread article counts.
func (r *Repository) CountByStatus() (read int64, unread int64, err error) {
	err = r.db.Model(&entities.Article{}).Where("is_read = ?", true).Count(&read).Error
	if err != nil {
		return
	}
	err = r.db.Model(&entities.Article{}).Where("is_read = ?", false).Count(&unread).Error
	return
}
