package reading

import (
	"github.com/shopspring/decimal"

	"github.com/mrlokans/readtracker/internal/entities"
)

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns current_page / total_pages * 100 rounded to one
// decimal place. ok is false when the book has no positive page count, in
// which case progress is undefined rather than an error. Values above 100 are
// returned as-is for books read past their stated length.
func ProgressPercent(book *entities.Book) (percent float64, ok bool) {
	if book.TotalPages == nil || *book.TotalPages <= 0 {
		return 0, false
	}
	pct := decimal.NewFromInt(int64(book.CurrentPage)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(*book.TotalPages))).
		Round(1)
	f, _ := pct.Float64()
	return f, true
}

// ProgressLabel formats progress for display, "-" when undefined.
func ProgressLabel(book *entities.Book) string {
	pct, ok := ProgressPercent(book)
	if !ok {
		return "-"
	}
	return decimal.NewFromFloat(pct).StringFixed(1) + "%"
}

// PagesRemaining returns how many pages are left, never negative.
// ok is false when the book has no positive page count.
func PagesRemaining(book *entities.Book) (int, bool) {
	if book.TotalPages == nil || *book.TotalPages <= 0 {
		return 0, false
	}
	remaining := *book.TotalPages - book.CurrentPage
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
