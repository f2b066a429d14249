package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readtracker/internal/reading"
)

type StatsController struct {
	store       StatsStore
	defaultDays int
}

func NewStatsController(store StatsStore, defaultDays int) *StatsController {
	return &StatsController{store: store, defaultDays: defaultDays}
}

// SummaryResponse is the headline counts plus totals.
type SummaryResponse struct {
	reading.SummaryCounts
	TotalBooks    int64 `json:"total_books"`
	TotalArticles int64 `json:"total_articles"`
}

// Summary handles GET /api/stats/summary
func (sc *StatsController) Summary(c *gin.Context) {
	counts, err := sc.store.GetSummaryCounts(c.Request.Context())
	if err != nil {
		respondTrackerError(c, err, "summary counts")
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{
		SummaryCounts: counts,
		TotalBooks:    counts.TotalBooks(),
		TotalArticles: counts.TotalArticles(),
	})
}

// Activity handles GET /api/stats/activity?days=N. With fill=true every day
// of the window is returned, zero-valued where nothing was read.
func (sc *StatsController) Activity(c *gin.Context) {
	days := sc.defaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "days must be an integer")
			return
		}
		days = parsed
	}

	activity, err := sc.store.AggregateActivity(c.Request.Context(), days)
	if err != nil {
		respondTrackerError(c, err, "aggregate activity")
		return
	}

	if c.Query("fill") == "true" {
		activity.Pages = reading.FillDays(activity.Pages, activity.From, activity.To)
		activity.Minutes = reading.FillDays(activity.Minutes, activity.From, activity.To)
	}
	c.JSON(http.StatusOK, activity)
}
