package http

// RouterConfig contains the dependencies needed to build the router.
type RouterConfig struct {
	Books    BookStore
	Articles ArticleStore
	Stats    StatsStore

	// Database is used by the health check.
	Database Pinger

	// TaskQueue is optional; report export endpoints answer 503 without it.
	TaskQueue TaskQueue

	// ActivityDays is the default window for activity and export requests.
	ActivityDays int

	// ReadOnly rejects every request that would change tracker data.
	ReadOnly bool

	Version string
}
