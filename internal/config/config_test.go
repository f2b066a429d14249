package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.False(t, cfg.Global.ReadOnly)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultReportsDir, cfg.Reports.OutputDir)
	assert.Equal(t, 7, cfg.Reports.ActivityDays)
	assert.False(t, cfg.ReportSync.Enabled)
	assert.Equal(t, "0 21 * * *", cfg.ReportSync.Schedule)
	assert.Empty(t, cfg.ReportSync.Formats)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 1, cfg.Tasks.Workers)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/data/books.db")
	t.Setenv("ACTIVITY_DAYS", "30")
	t.Setenv("REPORT_SYNC_ENABLED", "true")
	t.Setenv("REPORT_SYNC_FORMATS", "markdown, xlsx ,")
	t.Setenv("TASK_CLEANUP_INTERVAL", "30m")
	t.Setenv("READ_ONLY", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/data/books.db", cfg.Database.Path)
	assert.Equal(t, 30, cfg.Reports.ActivityDays)
	assert.True(t, cfg.ReportSync.Enabled)
	assert.Equal(t, []string{"markdown", "xlsx"}, cfg.ReportSync.Formats)
	assert.Equal(t, 30*time.Minute, cfg.Tasks.CleanupInterval)
	assert.True(t, cfg.Global.ReadOnly)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("REPORTS_OUTPUT_DIR=/srv/reports\nHOST=127.0.0.1\n"), 0644))

	// variables already in the environment take precedence
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("REPORTS_OUTPUT_DIR", "")
	os.Unsetenv("REPORTS_OUTPUT_DIR")

	require.NoError(t, LoadDotEnv(envFile))
	cfg := NewConfig()

	assert.Equal(t, "/srv/reports", cfg.Reports.OutputDir)
	assert.Equal(t, "10.0.0.1", cfg.HTTP.Host)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
