package reading

// SummaryCounts is the headline count of items per status.
type SummaryCounts struct {
	ReadingBooks   int64 `json:"reading_books"`
	PausedBooks    int64 `json:"paused_books"`
	UnreadBooks    int64 `json:"unread_books"`
	FinishedBooks  int64 `json:"finished_books"`
	ReadArticles   int64 `json:"read_articles"`
	UnreadArticles int64 `json:"unread_articles"`
}

// TotalBooks returns the number of books across all statuses.
func (s SummaryCounts) TotalBooks() int64 {
	return s.ReadingBooks + s.PausedBooks + s.UnreadBooks + s.FinishedBooks
}

// TotalArticles returns the number of articles across both statuses.
func (s SummaryCounts) TotalArticles() int64 {
	return s.ReadArticles + s.UnreadArticles
}
