package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// StatusCounter is satisfied by queries.GetStatusCountsQueryHandler.
type StatusCounter interface {
	Handle(ctx context.Context, query queries.GetStatusCountsQuery) (services.StatusCounts, error)
}

// StatusStatsJob logs the per-status order counts on a schedule.
type StatusStatsJob struct {
	counter  StatusCounter
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusStatsJob prepares the job; the schedule is parsed by Start.
func NewStatusStatsJob(counter StatusCounter, schedule string, logger *slog.Logger) *StatusStatsJob {
	return &StatusStatsJob{
		counter:  counter,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_stats_job"),
	}
}

// Start registers the job and starts the scheduler. An invalid schedule is
// returned as an error.
func (j *StatusStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StatusStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status stats job stopped")
}

func (j *StatusStatsJob) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	counts, err := j.counter.Handle(ctx, queries.NewGetStatusCountsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status stats job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(counts)+2)
	attrs = append(attrs, "total", counts.Total())
	for name, n := range counts.ByName() {
		attrs = append(attrs, name, n)
	}
	j.logger.InfoContext(ctx, "Order status counts", attrs...)
}
