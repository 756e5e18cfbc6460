// Package job contains the scheduled maintenance jobs run by the web server's
// cron scheduler.
package job

import (
	"portfolio/database"
	"portfolio/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file so the
// on-disk db stays compact between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	logger.Debug("running wal checkpoint")
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
