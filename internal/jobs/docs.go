// Package jobs provides scheduled background tasks for vendorflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// PerformanceSnapshotJob runs RecordPerformanceSnapshotsCommand on the configured
// schedule and appends the current metrics of every vendor to the performance
// history.
//
// # Usage
//
//	snapshots := jobs.NewPerformanceSnapshotJob(&handler, cfg.PerformanceSnapshotSchedule, cronMetrics, logger)
//	jobManager := jobs.NewJobManager(snapshots)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged, counted in vendorflow_job_failure_total and retried at
// the next tick. An invalid schedule fails StartAll.
package jobs
