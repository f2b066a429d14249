// Package tracker implements the commands and queries of the reading tracker
// on top of the database layer.
//
// Commands validate their input first and write nothing when validation
// fails. Writes that touch more than one row run in a single transaction.
// Derived values (status, progress, activity) are computed on every read.
package tracker

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/database/articles"
	"github.com/mrlokans/readtracker/internal/database/books"
	"github.com/mrlokans/readtracker/internal/database/sessions"
)

// Service is the entry point for presentation layers (HTTP, CLI).
type Service struct {
	db  *database.Database
	now func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now, mainly for tests. The clock's location decides
// which calendar day a session belongs to in activity reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a tracker over an open database handle.
func NewService(db *database.Database, opts ...Option) *Service {
	s := &Service{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type repos struct {
	books    *books.Repository
	articles *articles.Repository
	sessions *sessions.Repository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		books:    books.NewRepository(db),
		articles: articles.NewRepository(db),
		sessions: sessions.NewRepository(db),
	}
}

// repos returns repositories bound to ctx outside of any transaction.
func (s *Service) repos(ctx context.Context) repos {
	return newRepos(s.db.DB.WithContext(ctx))
}

// inTx runs fn with repositories bound to one transaction.
func (s *Service) inTx(ctx context.Context, fn func(r repos) error) error {
	return s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepos(tx))
	})
}
