package tracker

import (
	"context"
	"log"

	"github.com/mrlokans/readtracker/internal/entities"
)

// AddBook stores a new book. With StartReading set the book starts out as
// currently reading with today's start date.
func (s *Service) AddBook(ctx context.Context, req NewBook) (*BookView, error) {
	req = req.normalized()
	if err := fromValidation(req.Validate()); err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:      req.Title,
		Author:     req.Author,
		TotalPages: req.TotalPages,
	}
	if req.StartReading {
		started := s.now().UTC()
		book.StartDate = &started
		book.IsCurrentlyReading = true
	}

	if err := s.repos(ctx).books.Create(book); err != nil {
		return nil, storageErr(err, "add book")
	}

	log.Printf("[TRACKER] Added book %d %q", book.ID, book.Title)
	view := NewBookView(*book)
	return &view, nil
}

// EditBook replaces a book's title, author and total pages, and sets the
// current page when one is given.
func (s *Service) EditBook(ctx context.Context, id uint, req BookEdit) (*BookView, error) {
	req = req.normalized()
	if err := fromValidation(req.Validate()); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":       req.Title,
		"author":      req.Author,
		"total_pages": req.TotalPages,
	}
	if req.CurrentPage != nil {
		fields["current_page"] = *req.CurrentPage
	}

	if err := s.repos(ctx).books.Update(id, fields); err != nil {
		return nil, storageErr(asNotFound(err, "book", id), "edit book")
	}
	return s.GetBookDetails(ctx, id)
}

// DeleteBook removes a book and, through the cascade, all of its sessions.
func (s *Service) DeleteBook(ctx context.Context, id uint) error {
	if err := s.repos(ctx).books.Delete(id); err != nil {
		return storageErr(asNotFound(err, "book", id), "delete book")
	}
	log.Printf("[TRACKER] Deleted book %d", id)
	return nil
}

// FinishBook marks a book as finished today. A book finished without ever
// being started gets the same start date, so it can never look unread.
// Rating and notes overwrite stored values only when provided.
func (s *Service) FinishBook(ctx context.Context, id uint, req BookFinish) (*BookView, error) {
	if err := fromValidation(req.Validate()); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	err := s.inTx(ctx, func(r repos) error {
		book, err := r.books.GetByID(id)
		if err != nil {
			return asNotFound(err, "book", id)
		}

		fields := map[string]any{
			"end_date":             now,
			"is_currently_reading": false,
		}
		if book.StartDate == nil {
			fields["start_date"] = now
		}
		if req.Rating != nil {
			fields["rating"] = *req.Rating
		}
		if req.Notes != "" {
			fields["notes"] = req.Notes
		}
		return r.books.Update(id, fields)
	})
	if err != nil {
		return nil, storageErr(err, "finish book")
	}

	log.Printf("[TRACKER] Finished book %d", id)
	return s.GetBookDetails(ctx, id)
}

// PauseBook stops a book from being currently read. A started book then
// resolves to paused; other books keep their status.
func (s *Service) PauseBook(ctx context.Context, id uint) (*BookView, error) {
	err := s.repos(ctx).books.Update(id, map[string]any{"is_currently_reading": false})
	if err != nil {
		return nil, storageErr(asNotFound(err, "book", id), "pause book")
	}
	return s.GetBookDetails(ctx, id)
}
