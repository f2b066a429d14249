package tracker

import (
	"context"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

// ListBooks returns the books matching filter in display order.
func (s *Service) ListBooks(ctx context.Context, filter reading.BookFilter) ([]BookView, error) {
	books, err := s.repos(ctx).books.List(filter)
	if err != nil {
		return nil, storageErr(err, "list books")
	}
	return bookViews(books), nil
}

// ListArticles returns articles unread first, newest first within each group.
// An empty status lists every article.
func (s *Service) ListArticles(ctx context.Context, status reading.ArticleStatus) ([]ArticleView, error) {
	articles, err := s.repos(ctx).articles.List(status)
	if err != nil {
		return nil, storageErr(err, "list articles")
	}
	return articleViews(articles), nil
}

func (s *Service) GetBookDetails(ctx context.Context, id uint) (*BookView, error) {
	book, err := s.getBook(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewBookView(*book)
	return &view, nil
}

func (s *Service) GetArticleDetails(ctx context.Context, id uint) (*ArticleView, error) {
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewArticleView(*article)
	return &view, nil
}

// GetReadingHistory returns a book's sessions, newest first.
func (s *Service) GetReadingHistory(ctx context.Context, bookID uint) ([]entities.ReadingSession, error) {
	r := s.repos(ctx)
	if _, err := r.books.GetByID(bookID); err != nil {
		return nil, storageErr(asNotFound(err, "book", bookID), "load book")
	}
	history, err := r.sessions.BookSessions(bookID)
	if err != nil {
		return nil, storageErr(err, "load reading history")
	}
	return history, nil
}

// GetArticleReadingHistory returns an article's sessions, newest first.
func (s *Service) GetArticleReadingHistory(ctx context.Context, articleID uint) ([]entities.ArticleReadingSession, error) {
	r := s.repos(ctx)
	if _, err := r.articles.GetByID(articleID); err != nil {
		return nil, storageErr(asNotFound(err, "article", articleID), "load article")
	}
	history, err := r.sessions.ArticleSessions(articleID)
	if err != nil {
		return nil, storageErr(err, "load article reading history")
	}
	return history, nil
}

// GetSummaryCounts counts books per status and articles per status.
func (s *Service) GetSummaryCounts(ctx context.Context) (reading.SummaryCounts, error) {
	r := s.repos(ctx)

	byStatus, err := r.books.CountByStatus()
	if err != nil {
		return reading.SummaryCounts{}, storageErr(err, "count books")
	}
	read, unread, err := r.articles.CountByStatus()
	if err != nil {
		return reading.SummaryCounts{}, storageErr(err, "count articles")
	}

	return reading.SummaryCounts{
		ReadingBooks:   byStatus[reading.BookStatusReading],
		PausedBooks:    byStatus[reading.BookStatusPaused],
		UnreadBooks:    byStatus[reading.BookStatusUnread],
		FinishedBooks:  byStatus[reading.BookStatusFinished],
		ReadArticles:   read,
		UnreadArticles: unread,
	}, nil
}

func (s *Service) getBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.repos(ctx).books.GetByID(id)
	if err != nil {
		return nil, storageErr(asNotFound(err, "book", id), "load book")
	}
	return book, nil
}
