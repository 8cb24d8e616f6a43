// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StatusStatsJob periodically logs how many orders sit in each status. The
// figures come from the same CountByStatus aggregation the dashboard uses.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use the six-field cron syntax with seconds, or descriptors such
// as "@every 30s".
package jobs
