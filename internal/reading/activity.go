package reading

import (
	"sort"
	"time"

	"github.com/mrlokans/readtracker/internal/entities"
)

// DayLayout is the calendar-day format used for activity buckets.
const DayLayout = "2006-01-02"

// DailyTotal is the sum of a quantity over one calendar day.
type DailyTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// Activity holds the two per-day series for a reporting window.
// Series are sparse: days without sessions are absent and should be read as zero.
type Activity struct {
	Days    int          `json:"days"`
	From    string       `json:"from"`
	To      string       `json:"to"`
	Pages   []DailyTotal `json:"pages"`
	Minutes []DailyTotal `json:"minutes"`
}

// Window returns the instant range covering the calendar days
// [today-days, today] in now's location. end is exclusive (next midnight).
func Window(now time.Time, days int) (start, end time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, 1)
}

// SumPagesByDay buckets book sessions by calendar day in loc, keeping only
// sessions inside [start, end).
func SumPagesByDay(sessions []entities.ReadingSession, start, end time.Time, loc *time.Location) []DailyTotal {
	totals := make(map[string]int)
	for _, s := range sessions {
		if inWindow(s.Date, start, end) {
			totals[s.Date.In(loc).Format(DayLayout)] += s.PagesRead
		}
	}
	return sortedTotals(totals)
}

// SumMinutesByDay buckets article sessions by calendar day in loc.
func SumMinutesByDay(sessions []entities.ArticleReadingSession, start, end time.Time, loc *time.Location) []DailyTotal {
	totals := make(map[string]int)
	for _, s := range sessions {
		if inWindow(s.Date, start, end) {
			totals[s.Date.In(loc).Format(DayLayout)] += s.MinutesSpent
		}
	}
	return sortedTotals(totals)
}

// FillDays expands a sparse series into one entry per day of the window,
// zero where the series has no value. Used by chart and sheet renderers.
func FillDays(series []DailyTotal, from, to string) []DailyTotal {
	start, err := time.Parse(DayLayout, from)
	if err != nil {
		return series
	}
	end, err := time.Parse(DayLayout, to)
	if err != nil {
		return series
	}

	byDate := make(map[string]int, len(series))
	for _, d := range series {
		byDate[d.Date] = d.Total
	}

	var filled []DailyTotal
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayLayout)
		filled = append(filled, DailyTotal{Date: key, Total: byDate[key]})
	}
	return filled
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func sortedTotals(totals map[string]int) []DailyTotal {
	series := make([]DailyTotal, 0, len(totals))
	for date, total := range totals {
		series = append(series, DailyTotal{Date: date, Total: total})
	}
	// DayLayout sorts lexically in chronological order
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}
