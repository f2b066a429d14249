package config

const (
	// DefaultDatabasePath is the default path for the tracker database
	DefaultDatabasePath = "./readtracker.db"

	// DefaultReportsDir is where exported reports are written by default
	DefaultReportsDir = "./reports"

	// DefaultActivityDays is the activity window used when none is given
	DefaultActivityDays = 7
)
