// Package database provides the data access layer for the tracker.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, foreign keys, migrations
//	├── books/           # Book CRUD, status-filtered listings, counters
//	├── articles/        # Article CRUD and listings
//	└── sessions/        # Append-only reading sessions and range queries
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over a *gorm.DB. Because the
// repositories only hold the handle they are given, they can be built on a
// transaction to group writes:
//
//	db, err := database.NewDatabase("./reading.db")
//
//	err = db.DB.Transaction(func(tx *gorm.DB) error {
//		if err := sessions.NewRepository(tx).CreateBookSession(s); err != nil {
//			return err
//		}
//		return books.NewRepository(tx).AddPages(bookID, s.PagesRead)
//	})
//
// # Schema
//
// The schema is created by AutoMigrate on first use. Session tables carry
// ON DELETE CASCADE foreign keys to their parent item; enforcement relies on
// SQLite's foreign_keys pragma, which NewDatabase enables on every connection
// and verifies before returning.
//
// All timestamps are written in UTC so that lexical ordering of the stored
// values matches chronological ordering.
package database
