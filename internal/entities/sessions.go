package entities

import "time"

// ReadingSession records pages read in a book on a given date.
// Rows are append-only and disappear only together with their book.
type ReadingSession struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookID       uint      `gorm:"not null;index" json:"book_id"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	PagesRead    int       `gorm:"not null" json:"pages_read"`
	MinutesSpent *int      `json:"minutes_spent,omitempty"`

	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

// ArticleReadingSession records time spent on an article.
type ArticleReadingSession struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ArticleID    uint      `gorm:"not null;index" json:"article_id"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	MinutesSpent int       `gorm:"not null" json:"minutes_spent"`

	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}
