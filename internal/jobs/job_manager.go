package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background schedulers of the order desk. main starts
// them after the HTTP server is wired and stops them during shutdown.
type JobManager struct {
	stats  *StatusStatsJob
	logger *slog.Logger
}

// NewJobManager prepares the jobs without starting them.
func NewJobManager(counter StatusCounter, statsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		stats:  NewStatusStatsJob(counter, statsSchedule, logger),
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll schedules every job. Nothing is left running when it fails.
func (m *JobManager) StartAll() error {
	if err := m.stats.Start(); err != nil {
		return fmt.Errorf("start status stats job (schedule %q): %w", m.stats.schedule, err)
	}
	m.logger.Info("Jobs started", "status_stats_schedule", m.stats.schedule)
	return nil
}

// StopAll waits for running jobs to return.
func (m *JobManager) StopAll() {
	m.stats.Stop()
	m.logger.Info("Jobs stopped")
}
