package reading

import (
	"fmt"
	"strings"

	"github.com/mrlokans/readtracker/internal/entities"
)

// BookStatus is the lifecycle state of a book.
type BookStatus string

const (
	BookStatusReading  BookStatus = "reading"
	BookStatusPaused   BookStatus = "paused"
	BookStatusUnread   BookStatus = "unread"
	BookStatusFinished BookStatus = "finished"
)

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	ArticleStatusUnread ArticleStatus = "unread"
	ArticleStatusRead   ArticleStatus = "read"
)

// ResolveBookStatus maps stored book fields to a status.
// Precedence: currently reading, then finished (end date set),
// then unread (no start date), otherwise paused.
func ResolveBookStatus(book *entities.Book) BookStatus {
	switch {
	case book.IsCurrentlyReading:
		return BookStatusReading
	case book.EndDate != nil:
		return BookStatusFinished
	case book.StartDate == nil:
		return BookStatusUnread
	default:
		return BookStatusPaused
	}
}

// ResolveArticleStatus maps stored article fields to a status.
func ResolveArticleStatus(article *entities.Article) ArticleStatus {
	if article.IsRead {
		return ArticleStatusRead
	}
	return ArticleStatusUnread
}

// Rank orders statuses for the combined book listing:
// reading < paused < unread < finished.
func (s BookStatus) Rank() int {
	switch s {
	case BookStatusReading:
		return 1
	case BookStatusPaused:
		return 2
	case BookStatusUnread:
		return 3
	default:
		return 4
	}
}

// BookFilter selects a subset of books for listing.
type BookFilter string

const (
	FilterAll      BookFilter = "all"
	FilterReading  BookFilter = "reading"
	FilterPaused   BookFilter = "paused"
	FilterUnread   BookFilter = "unread"
	FilterFinished BookFilter = "finished"
)

// ParseBookFilter accepts a filter name, case-insensitively.
// An empty string means FilterAll.
func ParseBookFilter(s string) (BookFilter, error) {
	switch f := BookFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterReading, FilterPaused, FilterUnread, FilterFinished:
		return f, nil
	default:
		return "", fmt.Errorf("unknown book filter %q", s)
	}
}

// Matches reports whether a book with the given status belongs to the filter.
func (f BookFilter) Matches(status BookStatus) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return string(f) == string(status)
}
