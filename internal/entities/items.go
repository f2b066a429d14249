package entities

import (
	"time"
)

// Book is a long-form work read incrementally over many sessions.
// Status and progress are derived on read (see internal/reading) and never stored.
type Book struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Title              string     `gorm:"not null;size:512" json:"title"`
	Author             string     `gorm:"size:256" json:"author,omitempty"`
	TotalPages         *int       `json:"total_pages,omitempty"`
	CurrentPage        int        `gorm:"not null;default:0" json:"current_page"`
	StartDate          *time.Time `gorm:"index" json:"start_date,omitempty"`
	EndDate            *time.Time `gorm:"index" json:"end_date,omitempty"`
	IsCurrentlyReading bool       `gorm:"not null;default:false;index" json:"is_currently_reading"`
	Rating             *int       `json:"rating,omitempty"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`
	AddedDate          time.Time  `gorm:"not null;autoCreateTime;<-:create;index" json:"added_date"`
}

// Article is a short work read in a single sitting.
type Article struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null;size:512" json:"title"`
	Author    string     `gorm:"size:256" json:"author,omitempty"`
	Source    string     `gorm:"size:256" json:"source,omitempty"`
	URL       string     `gorm:"size:2048" json:"url,omitempty"`
	ReadDate  *time.Time `json:"read_date,omitempty"`
	IsRead    bool       `gorm:"not null;default:false;index" json:"is_read"`
	Rating    *int       `json:"rating,omitempty"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	AddedDate time.Time  `gorm:"not null;autoCreateTime;<-:create;index" json:"added_date"`
}
