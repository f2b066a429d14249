// Package books provides database operations for books.
//
// Listings are filtered and ordered in SQL with the same precedence the
// status resolver in internal/reading uses, so a book always appears under
// the filter matching its resolved status.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	reading, err := repo.List(reading.FilterReading)
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

// statusRankSQL mirrors reading.ResolveBookStatus and reading.BookStatus.Rank.
const statusRankSQL = `CASE
	WHEN is_currently_reading = 1 THEN 1
	WHEN end_date IS NOT NULL THEN 4
	WHEN start_date IS NULL THEN 3
	ELSE 2
END`

var rankToStatus = map[int]reading.BookStatus{
	1: reading.BookStatusReading,
	2: reading.BookStatusPaused,
	3: reading.BookStatusUnread,
	4: reading.BookStatusFinished,
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. AddedDate is stamped by the database layer.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book, returning gorm.ErrRecordNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Update writes the given columns of a book.
// Returns gorm.ErrRecordNotFound when no book has that ID.
func (r *Repository) Update(id uint, fields map[string]any) error {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddPages advances current_page by pages and marks the book as being read.
// start_date is left untouched.
func (r *Repository) AddPages(id uint, pages int) error {
	return r.Update(id, map[string]any{
		"current_page":         gorm.Expr("current_page + ?", pages),
		"is_currently_reading": true,
	})
}

// Delete removes a book; its sessions go with it through the FK cascade.
// Returns gorm.ErrRecordNotFound when no book has that ID.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns the books matching filter in display order:
// by status rank then newest first for FilterAll, and by the filter's
// relevant date (newest first) otherwise.
func (r *Repository) List(filter reading.BookFilter) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{})

	switch filter {
	case reading.FilterReading:
		query = query.Scopes(withStatus(reading.BookStatusReading)).Order("start_date DESC")
	case reading.FilterPaused:
		query = query.Scopes(withStatus(reading.BookStatusPaused)).Order("start_date DESC")
	case reading.FilterFinished:
		query = query.Scopes(withStatus(reading.BookStatusFinished)).Order("end_date DESC")
	case reading.FilterUnread:
		query = query.Scopes(withStatus(reading.BookStatusUnread)).Order("added_date DESC")
	default:
		query = query.Order(statusRankSQL).Order("added_date DESC")
	}

	var books []entities.Book
	err := query.Order("id DESC").Find(&books).Error
	return books, err
}

// CountByStatus returns the number of books in each status.
// Statuses with no books are present with a zero count.
func (r *Repository) CountByStatus() (map[reading.BookStatus]int64, error) {
	var rows []struct {
		StatusRank int
		Total      int64
	}
	err := r.db.Model(&entities.Book{}).
		Select(statusRankSQL + " AS status_rank, COUNT(*) AS total").
		Group("status_rank").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[reading.BookStatus]int64, len(rankToStatus))
	for _, status := range rankToStatus {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[rankToStatus[row.StatusRank]] = row.Total
	}
	return counts, nil
}

func withStatus(status reading.BookStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch status {
		case reading.BookStatusReading:
			return db.Where("is_currently_reading = ?", true)
		case reading.BookStatusFinished:
			return db.Where("is_currently_reading = ? AND end_date IS NOT NULL", false)
		case reading.BookStatusUnread:
			return db.Where("is_currently_reading = ? AND end_date IS NULL AND start_date IS NULL", false)
		default:
			return db.Where("is_currently_reading = ? AND end_date IS NULL AND start_date IS NOT NULL", false)
		}
	}
}
