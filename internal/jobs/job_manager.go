package jobs

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Schedule is shared by every backlog job.
type Schedule struct {
	// Spec is a cron expression with a seconds field.
	Spec string

	// Threshold is how long an order may wait before it counts as backlog.
	Threshold time.Duration
}

func (s Schedule) validate() error {
	if s.Threshold <= 0 {
		return errors.New("backlog threshold must be positive")
	}
	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(s.Spec); err != nil {
		return fmt.Errorf("invalid backlog schedule %q: %w", s.Spec, err)
	}
	return nil
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inboxBacklogJob  *BacklogJob
	reviewBacklogJob *BacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(handler StaleOrdersQueryHandler, schedule Schedule, logger *zap.Logger) (*JobManager, error) {
	if err := schedule.validate(); err != nil {
		return nil, err
	}
	return &JobManager{
		inboxBacklogJob:  NewInboxBacklogJob(handler, schedule, logger),
		reviewBacklogJob: NewReviewBacklogJob(handler, schedule, logger),
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inboxBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start inbox backlog job: %w", err)
	}

	if err := jm.reviewBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.inboxBacklogJob.Stop()
		return fmt.Errorf("failed to start review backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inboxBacklogJob.Stop()
	jm.reviewBacklogJob.Stop()
}
