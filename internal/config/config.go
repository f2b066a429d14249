package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Reports
		ReportSync
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		ReadOnly                 bool // Reject API writes, e.g. when serving a copied database
	}
	Database struct {
		Path string
	}
	Reports struct {
		OutputDir    string // Directory receiving markdown and xlsx reports
		ActivityDays int    // Default activity window for stats and exports
	}
	ReportSync struct {
		Enabled  bool
		Schedule string   // Cron format: "0 21 * * *" = daily at 21:00
		Formats  []string // Empty means every format
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

// LoadDotEnv reads KEY=value pairs from the given files into the process
// environment. Variables already set win, and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("read_only", false)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("reports_output_dir", DefaultReportsDir)
	v.SetDefault("activity_days", DefaultActivityDays)
	v.SetDefault("report_sync_enabled", false)
	v.SetDefault("report_sync_schedule", "0 21 * * *") // Daily at 21:00
	v.SetDefault("report_sync_formats", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			ReadOnly:                 v.GetBool("READ_ONLY"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Reports: Reports{
			OutputDir:    v.GetString("REPORTS_OUTPUT_DIR"),
			ActivityDays: v.GetInt("ACTIVITY_DAYS"),
		},
		ReportSync: ReportSync{
			Enabled:  v.GetBool("REPORT_SYNC_ENABLED"),
			Schedule: v.GetString("REPORT_SYNC_SCHEDULE"),
			Formats:  splitList(v.GetString("REPORT_SYNC_FORMATS")),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// splitList parses a comma-separated env value, dropping blanks.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
