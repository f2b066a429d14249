package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/readtracker/internal/config"
	"github.com/mrlokans/readtracker/internal/reading"
)

const maxBarWidth = 40

// StatsCommand prints the summary counts and per-day activity bars.
type StatsCommand struct {
	base
	Days int
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := newFlagSet("stats", "Show reading statistics and recent activity.")
	cmd.register(fs)
	fs.IntVar(&cmd.Days, "days", config.DefaultActivityDays, "Number of days of activity to show")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Days < 0 {
		return fmt.Errorf("-days cannot be negative")
	}
	return nil
}

func (cmd *StatsCommand) Run() error {
	svc, closeDB, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	counts, err := svc.GetSummaryCounts(ctx)
	if err != nil {
		return err
	}
	activity, err := svc.AggregateActivity(ctx, cmd.Days)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.out(), RenderStats(counts, activity))
	return nil
}

// RenderStats draws the summary box followed by one bar per day of the
// activity window, days without sessions included.
func RenderStats(counts reading.SummaryCounts, activity *reading.Activity) string {
	summary := strings.Join([]string{
		titleStyle.Render("Books"),
		fmt.Sprintf("Reading   %d", counts.ReadingBooks),
		fmt.Sprintf("Paused    %d", counts.PausedBooks),
		fmt.Sprintf("Unread    %d", counts.UnreadBooks),
		fmt.Sprintf("Finished  %d", counts.FinishedBooks),
		"",
		titleStyle.Render("Articles"),
		fmt.Sprintf("Read      %d", counts.ReadArticles),
		fmt.Sprintf("Unread    %d", counts.UnreadArticles),
	}, "\n")

	sections := []string{boxStyle.Render(summary)}
	if activity != nil {
		sections = append(sections,
			titleStyle.Render(fmt.Sprintf("Activity %s to %s", activity.From, activity.To)),
			renderSeries("Pages read", pagesStyle, reading.FillDays(activity.Pages, activity.From, activity.To), "p"),
			renderSeries("Article minutes", timeStyle, reading.FillDays(activity.Minutes, activity.From, activity.To), "m"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderSeries(label string, style lipgloss.Style, series []reading.DailyTotal, unit string) string {
	peak := 0
	for _, d := range series {
		if d.Total > peak {
			peak = d.Total
		}
	}

	var sb strings.Builder
	sb.WriteString(mutedStyle.Render(label))
	for _, d := range series {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s %s %d%s", d.Date, style.Render(bar(d.Total, peak)), d.Total, unit))
	}
	return sb.String()
}

// bar scales value against peak to at most maxBarWidth cells. Non-zero
// values always get at least one cell.
func bar(value, peak int) string {
	if value <= 0 || peak <= 0 {
		return ""
	}
	width := value * maxBarWidth / peak
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}
