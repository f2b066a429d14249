package interfaces

// Compile-time interface checks. A missing method fails the build here
// rather than at the wiring site in entrypoint.

import (
	"github.com/mrlokans/readtracker/internal/cli"
	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/exporters"
	"github.com/mrlokans/readtracker/internal/http"
	"github.com/mrlokans/readtracker/internal/scheduler"
	"github.com/mrlokans/readtracker/internal/tasks"
	"github.com/mrlokans/readtracker/internal/tracker"
)

// =============================================================================
// Tracker
// =============================================================================

var _ http.BookStore = (*tracker.Service)(nil)
var _ http.ArticleStore = (*tracker.Service)(nil)
var _ http.StatsStore = (*tracker.Service)(nil)
var _ tasks.ReportBuilder = (*tracker.Service)(nil)

var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ http.TaskQueue = (*tasks.Client)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)

// =============================================================================
// Reports
// =============================================================================

var _ exporters.ReportExporter = (*exporters.MarkdownExporter)(nil)
var _ exporters.ReportExporter = (*exporters.XLSXExporter)(nil)
var _ exporters.ReportExporter = exporters.MultiExporter(nil)

// =============================================================================
// CLI
// =============================================================================

var _ cli.Command = (*cli.AddBookCommand)(nil)
var _ cli.Command = (*cli.ProgressCommand)(nil)
var _ cli.Command = (*cli.FinishCommand)(nil)
var _ cli.Command = (*cli.AddArticleCommand)(nil)
var _ cli.Command = (*cli.MarkReadCommand)(nil)
var _ cli.Command = (*cli.ListCommand)(nil)
var _ cli.Command = (*cli.StatsCommand)(nil)
var _ cli.Command = (*cli.ExportCommand)(nil)
