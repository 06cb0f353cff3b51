package pipeline

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	runTimestampLayoutConstant       = "2006-01-02_15-04-05"
	runDirectoryTemplateConstant     = "run_%s"
	runLogFileTemplateConstant       = "pipeline_log_%s.txt"
	augmentedDatasetFileNameConstant = "logistics_augmented.csv"
)

// RunDirectory returns the run output directory for a start time.
func RunDirectory(outputRoot string, startedAt time.Time) string {
	return filepath.Join(outputRoot, fmt.Sprintf(runDirectoryTemplateConstant, startedAt.Format(runTimestampLayoutConstant)))
}

// RunLogFilePath returns the run log file path for a start time.
func RunLogFilePath(logDirectory string, startedAt time.Time) string {
	return filepath.Join(logDirectory, fmt.Sprintf(runLogFileTemplateConstant, startedAt.Format(runTimestampLayoutConstant)))
}
