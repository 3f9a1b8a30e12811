package jobs

import (
	"context"
	"time"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const performanceSnapshotJobName = "performance_snapshot"

// SnapshotRecorder writes one performance record per vendor and reports how many
// were written.
type SnapshotRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordPerformanceSnapshotsCommand) (int, error)
}

// PerformanceSnapshotJob appends the current metrics of every vendor to the
// performance history on a cron schedule.
type PerformanceSnapshotJob struct {
	handler  SnapshotRecorder
	schedule string
	cron     *cron.Cron
	metrics  *metrics.CronJobMetrics
	logger   zerolog.Logger
}

// NewPerformanceSnapshotJob schedules handler with a six-field cron spec
// (seconds first), e.g. "0 0 0 * * *" for midnight.
func NewPerformanceSnapshotJob(
	handler SnapshotRecorder,
	schedule string,
	m *metrics.CronJobMetrics,
	logger zerolog.Logger,
) *PerformanceSnapshotJob {
	return &PerformanceSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		metrics:  m,
		logger:   logger.With().Str("component", "performance_snapshot_job").Logger(),
	}
}

// Start registers the schedule and starts the cron scheduler.
func (j *PerformanceSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("performance snapshot job started")
	return nil
}

// Run records one round of snapshots.
func (j *PerformanceSnapshotJob) Run(ctx context.Context) error {
	started := time.Now()
	recorded, err := j.handler.Handle(ctx, commands.NewRecordPerformanceSnapshotsCommand())
	j.metrics.ObserveDuration(performanceSnapshotJobName, time.Since(started))

	if err != nil {
		j.metrics.IncFailure(performanceSnapshotJobName)
		j.logger.Error().Err(err).Msg("performance snapshot job failed")
		return err
	}

	j.metrics.IncSuccess(performanceSnapshotJobName)
	j.logger.Info().Int("vendors", recorded).Msg("performance snapshots recorded")
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *PerformanceSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("performance snapshot job stopped")
}
