package tracker

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readtracker/internal/entities"
	"github.com/mrlokans/readtracker/internal/reading"
)

func TestAddBook(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("unread by default", func(t *testing.T) {
		book, err := svc.AddBook(ctx, NewBook{Title: "  Neuromancer ", Author: " William Gibson"})
		require.NoError(t, err)

		assert.NotZero(t, book.ID)
		assert.Equal(t, "Neuromancer", book.Title)
		assert.Equal(t, "William Gibson", book.Author)
		assert.Equal(t, reading.BookStatusUnread, book.Status)
		assert.Nil(t, book.StartDate)
		assert.Nil(t, book.Progress)
		assert.False(t, book.AddedDate.IsZero())
	})

	t.Run("start reading sets start date", func(t *testing.T) {
		book, err := svc.AddBook(ctx, NewBook{Title: "Started", TotalPages: intPtr(200), StartReading: true})
		require.NoError(t, err)

		assert.Equal(t, reading.BookStatusReading, book.Status)
		require.NotNil(t, book.StartDate)
		assert.True(t, book.StartDate.Equal(testToday))
		require.NotNil(t, book.Progress)
		assert.Equal(t, 0.0, *book.Progress)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := []struct {
			name  string
			req   NewBook
			field string
		}{
			{"empty title", NewBook{Title: ""}, "title"},
			{"blank title", NewBook{Title: "   "}, "title"},
			{"long title", NewBook{Title: strings.Repeat("x", 513)}, "title"},
			{"zero pages", NewBook{Title: "T", TotalPages: intPtr(0)}, "total_pages"},
			{"negative pages", NewBook{Title: "T", TotalPages: intPtr(-10)}, "total_pages"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.AddBook(ctx, tc.req)
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.field, vErr.Field)
			})
		}

		books, err := svc.ListBooks(ctx, reading.FilterAll)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestEditBook(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	book := addBook(t, svc, "Draft", intPtr(300), false)
	_, err := svc.RecordBookProgress(ctx, book.ID, ProgressEntry{PagesRead: 30})
	require.NoError(t, err)

	t.Run("keeps current page when omitted", func(t *testing.T) {
		got, err := svc.EditBook(ctx, book.ID, BookEdit{Title: "Final", Author: "Someone", TotalPages: intPtr(120)})
		require.NoError(t, err)

		assert.Equal(t, "Final", got.Title)
		assert.Equal(t, "Someone", got.Author)
		assert.Equal(t, 30, got.CurrentPage)
		assert.Equal(t, 25.0, *got.Progress)
	})

	t.Run("sets current page and clears total pages", func(t *testing.T) {
		got, err := svc.EditBook(ctx, book.ID, BookEdit{Title: "Final", CurrentPage: intPtr(5)})
		require.NoError(t, err)

		assert.Equal(t, 5, got.CurrentPage)
		assert.Nil(t, got.TotalPages)
		assert.Nil(t, got.Progress)
	})

	t.Run("rejects negative current page", func(t *testing.T) {
		_, err := svc.EditBook(ctx, book.ID, BookEdit{Title: "Final", CurrentPage: intPtr(-1)})
		assert.True(t, IsValidation(err))
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := svc.EditBook(ctx, 999, BookEdit{Title: "Ghost"})
		assert.True(t, IsNotFound(err))
	})
}

func TestDeleteBook_CascadesSessions(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	keep := addBook(t, svc, "Keep", nil, true)
	drop := addBook(t, svc, "Drop", nil, true)
	for i := 0; i < 3; i++ {
		_, err := svc.RecordBookProgress(ctx, drop.ID, ProgressEntry{PagesRead: 10})
		require.NoError(t, err)
	}
	_, err := svc.RecordBookProgress(ctx, keep.ID, ProgressEntry{PagesRead: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, drop.ID))

	var orphaned int64
	require.NoError(t, db.DB.Model(&entities.ReadingSession{}).Where("book_id = ?", drop.ID).Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	_, err = svc.GetReadingHistory(ctx, drop.ID)
	assert.True(t, IsNotFound(err))

	history, err := svc.GetReadingHistory(ctx, keep.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	assert.True(t, IsNotFound(svc.DeleteBook(ctx, drop.ID)))
}

func TestDeleteArticle_CascadesSessions(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	article := addArticle(t, svc, "Gone")
	_, err := svc.MarkArticleRead(ctx, article.ID, ArticleRead{MinutesSpent: intPtr(12)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteArticle(ctx, article.ID))

	var orphaned int64
	require.NoError(t, db.DB.Model(&entities.ArticleReadingSession{}).Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	_, err = svc.GetArticleDetails(ctx, article.ID)
	assert.True(t, IsNotFound(err))
}

func TestFinishBook(t *testing.T) {
	svc, clock, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("finishes a book being read", func(t *testing.T) {
		book := addBook(t, svc, "Reading", intPtr(100), true)
		started := *book.StartDate
		clock.now = testToday.AddDate(0, 0, 3)
		defer func() { clock.now = testToday }()

		got, err := svc.FinishBook(ctx, book.ID, BookFinish{Rating: intPtr(5), Notes: "loved it"})
		require.NoError(t, err)

		assert.Equal(t, reading.BookStatusFinished, got.Status)
		assert.False(t, got.IsCurrentlyReading)
		require.NotNil(t, got.EndDate)
		assert.True(t, got.EndDate.Equal(clock.now))
		assert.True(t, got.StartDate.Equal(started))
		assert.Equal(t, 5, *got.Rating)
		assert.Equal(t, "loved it", got.Notes)
	})

	t.Run("backfills start date of an unstarted book", func(t *testing.T) {
		book := addBook(t, svc, "Never Started", nil, false)

		got, err := svc.FinishBook(ctx, book.ID, BookFinish{})
		require.NoError(t, err)

		assert.Equal(t, reading.BookStatusFinished, got.Status)
		require.NotNil(t, got.StartDate)
		assert.True(t, got.StartDate.Equal(*got.EndDate))
		assert.Nil(t, got.Rating)

		unread, err := svc.ListBooks(ctx, reading.FilterUnread)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("rejects rating out of range", func(t *testing.T) {
		book := addBook(t, svc, "Rated", nil, true)

		_, err := svc.FinishBook(ctx, book.ID, BookFinish{Rating: intPtr(9)})
		assert.True(t, IsValidation(err))

		got, err := svc.GetBookDetails(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, reading.BookStatusReading, got.Status)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := svc.FinishBook(ctx, 999, BookFinish{})
		assert.True(t, IsNotFound(err))
	})
}

func TestPauseBook(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	book := addBook(t, svc, "Paused", nil, true)
	got, err := svc.PauseBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.BookStatusPaused, got.Status)

	// recording again resumes it
	_, err = svc.RecordBookProgress(ctx, book.ID, ProgressEntry{PagesRead: 1})
	require.NoError(t, err)
	resumed, err := svc.GetBookDetails(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.BookStatusReading, resumed.Status)

	unstarted := addBook(t, svc, "Unstarted", nil, false)
	got, err = svc.PauseBook(ctx, unstarted.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.BookStatusUnread, got.Status)

	_, err = svc.PauseBook(ctx, 999)
	assert.True(t, IsNotFound(err))
}

func TestAddAndEditArticle(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	article, err := svc.AddArticle(ctx, NewArticle{Title: "Consensus", Source: "blog", URL: "https://example.com/raft"})
	require.NoError(t, err)
	assert.Equal(t, reading.ArticleStatusUnread, article.Status)

	_, err = svc.AddArticle(ctx, NewArticle{Title: "Bad", URL: "not a url"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "url", vErr.Field)

	_, err = svc.AddArticle(ctx, NewArticle{})
	assert.True(t, IsValidation(err))

	edited, err := svc.EditArticle(ctx, article.ID, NewArticle{Title: "Consensus, revisited", Author: "Ongaro"})
	require.NoError(t, err)
	assert.Equal(t, "Consensus, revisited", edited.Title)
	assert.Equal(t, "Ongaro", edited.Author)
	assert.Empty(t, edited.URL)

	_, err = svc.EditArticle(ctx, 999, NewArticle{Title: "Ghost"})
	assert.True(t, IsNotFound(err))
}
