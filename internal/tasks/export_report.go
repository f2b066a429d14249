package tasks

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/readtracker/internal/exporters"
)

// ReportBuilder produces the snapshot that gets exported.
type ReportBuilder interface {
	BuildReport(ctx context.Context, days int) (*exporters.Report, error)
}

// ExportReportTask writes the reading report in the requested formats.
// No formats means every configured format.
type ExportReportTask struct {
	Days    int      `json:"days"`
	Formats []string `json:"formats,omitempty"`
	Trigger string   `json:"trigger,omitempty"`
}

func (t ExportReportTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_report",
		MaxAttempts: 2,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RunExport builds the report once and hands it to each selected exporter.
func RunExport(ctx context.Context, builder ReportBuilder, set map[string]exporters.ReportExporter, task ExportReportTask) (exporters.ExportResult, error) {
	selected, err := selectExporters(set, task.Formats)
	if err != nil {
		return exporters.ExportResult{}, err
	}

	report, err := builder.BuildReport(ctx, task.Days)
	if err != nil {
		return exporters.ExportResult{}, fmt.Errorf("build report: %w", err)
	}

	result, err := selected.Export(report)
	if err != nil {
		return result, fmt.Errorf("export report: %w", err)
	}
	return result, nil
}

func selectExporters(set map[string]exporters.ReportExporter, formats []string) (exporters.MultiExporter, error) {
	if len(formats) == 0 {
		for name := range set {
			formats = append(formats, name)
		}
		sort.Strings(formats)
	}

	selected := make(exporters.MultiExporter, 0, len(formats))
	for _, name := range formats {
		exporter, ok := set[name]
		if !ok {
			return nil, fmt.Errorf("unknown export format %q", name)
		}
		selected = append(selected, exporter)
	}
	return selected, nil
}

func ExportReportProcessor(builder ReportBuilder, set map[string]exporters.ReportExporter) backlite.QueueProcessor[ExportReportTask] {
	return func(ctx context.Context, task ExportReportTask) error {
		if builder == nil {
			return fmt.Errorf("report builder not configured")
		}

		start := time.Now()
		result, err := RunExport(ctx, builder, set, task)
		if err != nil {
			return err
		}

		log.Printf("[TASK] Exported report (%s): %d books, %d articles, %d sessions, %d files in %v",
			task.Trigger, result.BooksProcessed, result.ArticlesProcessed, result.SessionsProcessed,
			len(result.Files), time.Since(start).Round(time.Millisecond))
		return nil
	}
}

func NewExportReportQueue(builder ReportBuilder, set map[string]exporters.ReportExporter) backlite.Queue {
	return backlite.NewQueue(ExportReportProcessor(builder, set))
}
