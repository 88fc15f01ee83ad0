package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many orders sit in each status.
// The report gives operators a cheap pulse of the order pipeline without
// querying the database by hand.
type StatusReportJob struct {
	handler  queries.GetStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusReportJob creates a job that logs the per-status order counts on
// the given cron schedule.
func NewStatusReportJob(
	handler queries.GetStatusSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatusReportJob {
	return &StatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job on its schedule.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetStatusSummaryQuery()

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(summary)*2)
		for _, row := range summary {
			attrs = append(attrs, string(row.Status), row.Count)
		}
		j.logger.InfoContext(ctx, "Order status report", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
