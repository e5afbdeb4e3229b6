package jobs

import (
	"context"
	"time"

	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	inboxQueue  = "inbox"
	reviewQueue = "review"
)

// StaleOrdersQueryHandler is the read side the backlog jobs depend on.
type StaleOrdersQueryHandler interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.StaleOrderView, error)
}

// BacklogJob reports how many orders in one status have waited longer than the threshold.
type BacklogJob struct {
	queue     string
	status    order.Status
	spec      string
	threshold time.Duration
	handler   StaleOrdersQueryHandler
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewInboxBacklogJob watches orders no admin has assigned yet.
func NewInboxBacklogJob(handler StaleOrdersQueryHandler, schedule Schedule, logger *zap.Logger) *BacklogJob {
	return newBacklogJob(inboxQueue, order.PendingAssignment, handler, schedule, logger)
}

// NewReviewBacklogJob watches finished work waiting for admin approval.
func NewReviewBacklogJob(handler StaleOrdersQueryHandler, schedule Schedule, logger *zap.Logger) *BacklogJob {
	return newBacklogJob(reviewQueue, order.CompletedByTailor, handler, schedule, logger)
}

func newBacklogJob(
	queue string,
	status order.Status,
	handler StaleOrdersQueryHandler,
	schedule Schedule,
	logger *zap.Logger,
) *BacklogJob {
	return &BacklogJob{
		queue:     queue,
		status:    status,
		spec:      schedule.Spec,
		threshold: schedule.Threshold,
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", queue+"_backlog_job")),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *BacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("backlog check failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("backlog job started", zap.String("schedule", j.spec), zap.Duration("threshold", j.threshold))
	return nil
}

// Stop waits for a running check to finish.
func (j *BacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("backlog job stopped")
}

// Run performs a single check and returns the stale orders it found.
func (j *BacklogJob) Run(ctx context.Context) ([]queries.StaleOrderView, error) {
	query, err := queries.NewGetStaleOrdersQuery(j.status, j.threshold)
	if err != nil {
		return nil, err
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	metrics.OrderBacklog.WithLabelValues(j.queue).Set(float64(len(stale)))
	if len(stale) > 0 {
		j.logger.Warn("orders are waiting too long",
			zap.String("status", j.status.String()),
			zap.Int("count", len(stale)),
			zap.String("oldest_order_id", stale[0].ID.String()),
			zap.Time("oldest_updated_at", stale[0].UpdatedAt),
		)
	}
	return stale, nil
}
