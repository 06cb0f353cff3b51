package pipeline

import "time"

// StageSummary records the outcome of one stage.
type StageSummary struct {
	Name      string
	Group     Group
	Required  bool
	Status    StageStatus
	Duration  time.Duration
	Artifacts []string
	Warnings  []string
	Error     string
}

// Summary records the outcome of a run.
type Summary struct {
	RunID         string
	InputPath     string
	RunDirectory  string
	LogFilePath   string
	AugmentedPath string
	StartedAt     time.Time
	FinishedAt    time.Time
	Records       int
	Stages        []StageSummary
	Aborted       bool
}

// Count returns the number of stages with the given status.
func (summary Summary) Count(status StageStatus) int {
	count := 0
	for _, stage := range summary.Stages {
		if stage.Status == status {
			count++
		}
	}
	return count
}

// Succeeded reports whether every stage succeeded.
func (summary Summary) Succeeded() bool {
	return !summary.Aborted && summary.Count(StageStatusSucceeded) == len(summary.Stages)
}

// Stage returns the summary of the named stage.
func (summary Summary) Stage(stageName string) (StageSummary, bool) {
	for _, stage := range summary.Stages {
		if stage.Name == stageName {
			return stage, true
		}
	}
	return StageSummary{}, false
}

// Duration returns the wall time of the run.
func (summary Summary) Duration() time.Duration {
	return summary.FinishedAt.Sub(summary.StartedAt)
}
