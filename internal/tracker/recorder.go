package tracker

import (
	"context"
	"log"

	"github.com/mrlokans/readtracker/internal/entities"
)

// RecordBookProgress appends a reading session to a book and advances its
// current page by the pages read, marking it as currently reading. Both writes
// happen in one transaction. start_date is not backfilled.
func (s *Service) RecordBookProgress(ctx context.Context, bookID uint, entry ProgressEntry) (*entities.ReadingSession, error) {
	if err := fromValidation(entry.Validate()); err != nil {
		return nil, err
	}

	session := &entities.ReadingSession{
		BookID:       bookID,
		Date:         s.now(),
		PagesRead:    entry.PagesRead,
		MinutesSpent: entry.MinutesSpent,
	}

	err := s.inTx(ctx, func(r repos) error {
		if _, err := r.books.GetByID(bookID); err != nil {
			return asNotFound(err, "book", bookID)
		}
		if err := r.sessions.CreateBookSession(session); err != nil {
			return err
		}
		return asNotFound(r.books.AddPages(bookID, entry.PagesRead), "book", bookID)
	})
	if err != nil {
		return nil, storageErr(err, "record book progress")
	}

	log.Printf("[TRACKER] Recorded %d pages for book %d", entry.PagesRead, bookID)
	return session, nil
}

// MarkArticleRead flags an article as read now with the given rating and
// notes. When minutes spent is positive an article session is appended in the
// same transaction. Marking an already read article again overwrites the read
// fields and appends another session.
func (s *Service) MarkArticleRead(ctx context.Context, articleID uint, read ArticleRead) (*entities.Article, error) {
	if err := fromValidation(read.Validate()); err != nil {
		return nil, err
	}

	now := s.now()
	err := s.inTx(ctx, func(r repos) error {
		if err := r.articles.MarkRead(articleID, now.UTC(), read.Rating, read.Notes); err != nil {
			return asNotFound(err, "article", articleID)
		}
		if read.MinutesSpent == nil || *read.MinutesSpent == 0 {
			return nil
		}
		return r.sessions.CreateArticleSession(&entities.ArticleReadingSession{
			ArticleID:    articleID,
			Date:         now,
			MinutesSpent: *read.MinutesSpent,
		})
	})
	if err != nil {
		return nil, storageErr(err, "mark article read")
	}

	log.Printf("[TRACKER] Marked article %d as read", articleID)
	return s.getArticle(ctx, articleID)
}
