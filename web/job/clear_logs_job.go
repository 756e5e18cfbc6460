package job

import (
	"os"

	"portfolio/logger"
)

// ClearLogsJob rotates the panel log: the current file is appended to a
// .prev file and truncated, keeping one generation of history.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run implements cron.Job.
func (j *ClearLogsJob) Run() {
	logPath := logger.GetLogPath()
	prevPath := logPath + ".prev"

	if err := os.Truncate(prevPath, 0); err != nil && !os.IsNotExist(err) {
		logger.Warning("clear logs job err:", err)
	}

	prevFile, err := os.OpenFile(prevPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	defer prevFile.Close()

	current, err := os.ReadFile(logPath)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}

	if _, err = prevFile.Write(current); err != nil {
		logger.Warning("clear logs job err:", err)
	}

	if err = os.Truncate(logPath, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
