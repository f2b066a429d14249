package tracker

import (
	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

// BookView is a stored book plus the values derived from it.
type BookView struct {
	entities.Book
	Status   reading.BookStatus `json:"status"`
	Progress *float64           `json:"progress_percent,omitempty"`
}

// NewBookView derives status and progress for a book.
func NewBookView(book entities.Book) BookView {
	view := BookView{
		Book:   book,
		Status: reading.ResolveBookStatus(&book),
	}
	if pct, ok := reading.ProgressPercent(&book); ok {
		view.Progress = &pct
	}
	return view
}

// ProgressLabel formats the view's progress for display.
func (v BookView) ProgressLabel() string {
	return reading.ProgressLabel(&v.Book)
}

// ArticleView is a stored article plus its derived status.
type ArticleView struct {
	entities.Article
	Status reading.ArticleStatus `json:"status"`
}

// NewArticleView derives the status of an article.
func NewArticleView(article entities.Article) ArticleView {
	return ArticleView{
		Article: article,
		Status:  reading.ResolveArticleStatus(&article),
	}
}

func bookViews(books []entities.Book) []BookView {
	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = NewBookView(b)
	}
	return views
}

func articleViews(articles []entities.Article) []ArticleView {
	views := make([]ArticleView, len(articles))
	for i, a := range articles {
		views[i] = NewArticleView(a)
	}
	return views
}
