package tracker

import (
	"context"

	"github.com/mrlokans/readtracker/internal/reading"
)

// AggregateActivity sums pages read per day and article minutes per day over
// the calendar days [today-days, today], both inclusive. Days are taken in the
// service clock's location. The series are sparse and ascending.
func (s *Service) AggregateActivity(ctx context.Context, days int) (*reading.Activity, error) {
	if days < 0 {
		return nil, &ValidationError{Field: "days", Reason: "days cannot be negative"}
	}

	now := s.now()
	start, end := reading.Window(now, days)
	r := s.repos(ctx)

	bookSessions, err := r.sessions.BookSessionsBetween(start, end)
	if err != nil {
		return nil, storageErr(err, "load book sessions")
	}
	articleSessions, err := r.sessions.ArticleSessionsBetween(start, end)
	if err != nil {
		return nil, storageErr(err, "load article sessions")
	}

	loc := now.Location()
	return &reading.Activity{
		Days:    days,
		From:    start.Format(reading.DayLayout),
		To:      end.AddDate(0, 0, -1).Format(reading.DayLayout),
		Pages:   reading.SumPagesByDay(bookSessions, start, end, loc),
		Minutes: reading.SumMinutesByDay(articleSessions, start, end, loc),
	}, nil
}
