package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/readtracker/internal/tasks"
)

// Enqueuer accepts tasks for background execution.
type Enqueuer interface {
	Enqueue(ctx context.Context, tasks ...backlite.Task) ([]string, error)
}

// ReportExportConfig controls the periodic report export.
type ReportExportConfig struct {
	Enabled  bool
	Schedule string
	Days     int
	Formats  []string
}

// ReportExportScheduler enqueues an export task on a cron schedule. The
// export itself runs on the task queue.
type ReportExportScheduler struct {
	queue  Enqueuer
	config ReportExportConfig

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewReportExportScheduler(queue Enqueuer, cfg ReportExportConfig) *ReportExportScheduler {
	return &ReportExportScheduler{
		queue:  queue,
		config: cfg,
		cron:   cron.New(cron.WithParser(parser)),
	}
}

// Start registers the export job and starts cron. A disabled export is not
// an error. The scheduler stops by itself when ctx is cancelled.
func (s *ReportExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.config.Enabled {
		log.Printf("[SCHEDULER] Report export disabled")
		return nil
	}
	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.enqueue(context.Background(), "schedule"); err != nil {
			log.Printf("[SCHEDULER] Report export: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule report export: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	next, _ := NextRunTime(s.config.Schedule, time.Now())
	log.Printf("[SCHEDULER] Report export started with schedule '%s' (%s). Next run: %v",
		s.config.Schedule, DescribeSchedule(s.config.Schedule), next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job to finish and stops cron.
func (s *ReportExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false
	log.Printf("[SCHEDULER] Report export stopped")
}

// RunNow enqueues an export immediately and returns the task ID.
func (s *ReportExportScheduler) RunNow(ctx context.Context) (string, error) {
	return s.enqueue(ctx, "manual")
}

func (s *ReportExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the next scheduled export, or nil when not running.
func (s *ReportExportScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *ReportExportScheduler) enqueue(ctx context.Context, trigger string) (string, error) {
	if s.queue == nil {
		return "", fmt.Errorf("task queue not configured")
	}

	ids, err := s.queue.Enqueue(ctx, tasks.ExportReportTask{
		Days:    s.config.Days,
		Formats: s.config.Formats,
		Trigger: trigger,
	})
	if err != nil {
		return "", err
	}
	log.Printf("[SCHEDULER] Enqueued report export %s (%s)", ids[0], trigger)
	return ids[0], nil
}
