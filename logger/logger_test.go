package logger

import (
	"fmt"
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestGetLogsHonorsCount(t *testing.T) {
	InitLogger(logging.ERROR)
	t.Cleanup(func() { os.RemoveAll("log") })
	for i := 0; i < 5; i++ {
		Warning("buffered entry", i)
	}

	logs := GetLogs(3, "INFO")
	assert.Len(t, logs, 3)
}

func TestGetLogsFiltersByLevel(t *testing.T) {
	InitLogger(logging.ERROR)
	t.Cleanup(func() { os.RemoveAll("log") })
	marker := fmt.Sprintf("debug-only-%d", len(logBuffer))
	Debug(marker)

	// A DEBUG entry is above the INFO threshold and stays hidden.
	for _, line := range GetLogs(len(logBuffer), "INFO") {
		assert.NotContains(t, line, marker)
	}
	assert.Contains(t, GetLogs(1, "DEBUG")[0], marker)
}
