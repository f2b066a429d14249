package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readtracker/internal/tasks"
)

type fakeQueue struct {
	mu    sync.Mutex
	tasks []backlite.Task
	err   error
}

func (q *fakeQueue) Enqueue(_ context.Context, ts ...backlite.Task) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, ts...)
	return []string{"task-1"}, nil
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 21 * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("every day"))
	assert.Error(t, ValidateSchedule("0 0 0 * * *"))
}

func TestDescribeSchedule(t *testing.T) {
	assert.Equal(t, "Daily at midnight", DescribeSchedule("0 0 * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * *", DescribeSchedule("5 4 * * *"))
}

func TestNextRunTime(t *testing.T) {
	from := time.Date(2026, 5, 20, 15, 30, 0, 0, time.UTC)

	next, err := NextRunTime("0 21 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 20, 21, 0, 0, 0, time.UTC), next)

	_, err = NextRunTime("bogus", from)
	assert.Error(t, err)
}

func TestReportExportScheduler_Disabled(t *testing.T) {
	s := NewReportExportScheduler(&fakeQueue{}, ReportExportConfig{Enabled: false, Schedule: "0 0 * * *"})

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestReportExportScheduler_InvalidSchedule(t *testing.T) {
	s := NewReportExportScheduler(&fakeQueue{}, ReportExportConfig{Enabled: true, Schedule: "nope"})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
	assert.False(t, s.IsRunning())
}

func TestReportExportScheduler_StartStop(t *testing.T) {
	s := NewReportExportScheduler(&fakeQueue{}, ReportExportConfig{Enabled: true, Schedule: "0 0 * * *", Days: 30})

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NotNil(t, s.NextRun())
	assert.True(t, s.NextRun().After(time.Now()))

	// starting twice is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestReportExportScheduler_StopsWithContext(t *testing.T) {
	s := NewReportExportScheduler(&fakeQueue{}, ReportExportConfig{Enabled: true, Schedule: "0 0 * * *"})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestReportExportScheduler_RunNow(t *testing.T) {
	queue := &fakeQueue{}
	s := NewReportExportScheduler(queue, ReportExportConfig{Days: 14, Formats: []string{"xlsx"}})

	id, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, tasks.ExportReportTask{Days: 14, Formats: []string{"xlsx"}, Trigger: "manual"}, queue.tasks[0])
}

func TestReportExportScheduler_RunNowErrors(t *testing.T) {
	_, err := NewReportExportScheduler(nil, ReportExportConfig{}).RunNow(context.Background())
	assert.Error(t, err)

	queue := &fakeQueue{err: errors.New("queue full")}
	_, err = NewReportExportScheduler(queue, ReportExportConfig{}).RunNow(context.Background())
	assert.ErrorContains(t, err, "queue full")
}
