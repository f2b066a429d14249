// Package interfaces holds compile-time checks tying concrete types to the
// interfaces they are wired through.
//
// The tracker service is the single implementation behind every store the
// HTTP controllers use (BookStore, ArticleStore, StatsStore) and behind the
// ReportBuilder the export task depends on. The task client satisfies both
// the HTTP TaskQueue and the scheduler's Enqueuer.
//
// When adding an implementation, add a line to checks.go:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
package interfaces
