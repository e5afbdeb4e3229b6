// Package jobs provides scheduled background tasks for the tailoring service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3. The jobs are
// read-only reporters: they never move an order through its lifecycle.
//
// # Available Jobs
//
// 1. InboxBacklogJob - counts PendingAssignment orders nobody has assigned for too long
// 2. ReviewBacklogJob - counts CompletedByTailor orders waiting too long for admin review
//
// Each run sets the order_backlog gauge for its queue and logs a warning when the queue is not
// empty.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(staleOrdersHandler, jobs.Schedule{
//		Spec:      "0 */5 * * * *",
//		Threshold: 24 * time.Hour,
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. The default runs every five minutes.
package jobs
