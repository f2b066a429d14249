package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/tracker"
)

// Each controller depends on the narrow slice of the tracker it uses.
// *tracker.Service satisfies all of them.

// BookStore provides book commands and queries.
type BookStore interface {
	AddBook(ctx context.Context, req tracker.NewBook) (*tracker.BookView, error)
	EditBook(ctx context.Context, id uint, req tracker.BookEdit) (*tracker.BookView, error)
	DeleteBook(ctx context.Context, id uint) error
	FinishBook(ctx context.Context, id uint, req tracker.BookFinish) (*tracker.BookView, error)
	PauseBook(ctx context.Context, id uint) (*tracker.BookView, error)
	RecordBookProgress(ctx context.Context, bookID uint, entry tracker.ProgressEntry) (*entities.ReadingSession, error)
	ListBooks(ctx context.Context, filter reading.BookFilter) ([]tracker.BookView, error)
	GetBookDetails(ctx context.Context, id uint) (*tracker.BookView, error)
	GetReadingHistory(ctx context.Context, bookID uint) ([]entities.ReadingSession, error)
}

// ArticleStore provides article commands and queries.
type ArticleStore interface {
	AddArticle(ctx context.Context, req tracker.NewArticle) (*tracker.ArticleView, error)
	EditArticle(ctx context.Context, id uint, req tracker.NewArticle) (*tracker.ArticleView, error)
	DeleteArticle(ctx context.Context, id uint) error
	MarkArticleRead(ctx context.Context, articleID uint, read tracker.ArticleRead) (*entities.Article, error)
	ListArticles(ctx context.Context, status reading.ArticleStatus) ([]tracker.ArticleView, error)
	GetArticleDetails(ctx context.Context, id uint) (*tracker.ArticleView, error)
	GetArticleReadingHistory(ctx context.Context, articleID uint) ([]entities.ArticleReadingSession, error)
}

// StatsStore provides the read-side aggregates.
type StatsStore interface {
	GetSummaryCounts(ctx context.Context) (reading.SummaryCounts, error)
	AggregateActivity(ctx context.Context, days int) (*reading.Activity, error)
}

// TaskQueue accepts background tasks and reports their state.
type TaskQueue interface {
	Enqueue(ctx context.Context, tasks ...backlite.Task) ([]string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping() error
}
