package pipeline

import "time"

// StageStatus describes how a stage ended.
type StageStatus string

// Supported stage statuses.
const (
	StageStatusSucceeded StageStatus = StageStatus("succeeded")
	StageStatusFailed    StageStatus = StageStatus("failed")
	StageStatusSkipped   StageStatus = StageStatus("skipped")
)

// StageEvent describes a stage lifecycle transition.
type StageEvent struct {
	Name      string
	Group     Group
	Required  bool
	Position  int
	Total     int
	Duration  time.Duration
	Artifacts []string
}

// StageEventObserver receives stage lifecycle notifications.
type StageEventObserver interface {
	StageStarted(event StageEvent)
	StageSucceeded(event StageEvent)
	StageWarned(event StageEvent, message string)
	StageFailed(event StageEvent, failure error)
	StageSkipped(event StageEvent)
}

// CompositeObserver fans events out to several observers.
type CompositeObserver []StageEventObserver

// StageStarted notifies every observer.
func (observers CompositeObserver) StageStarted(event StageEvent) {
	for _, observer := range observers {
		if observer != nil {
			observer.StageStarted(event)
		}
	}
}

// StageSucceeded notifies every observer.
func (observers CompositeObserver) StageSucceeded(event StageEvent) {
	for _, observer := range observers {
		if observer != nil {
			observer.StageSucceeded(event)
		}
	}
}

// StageWarned notifies every observer.
func (observers CompositeObserver) StageWarned(event StageEvent, message string) {
	for _, observer := range observers {
		if observer != nil {
			observer.StageWarned(event, message)
		}
	}
}

// StageFailed notifies every observer.
func (observers CompositeObserver) StageFailed(event StageEvent, failure error) {
	for _, observer := range observers {
		if observer != nil {
			observer.StageFailed(event, failure)
		}
	}
}

// StageSkipped notifies every observer.
func (observers CompositeObserver) StageSkipped(event StageEvent) {
	for _, observer := range observers {
		if observer != nil {
			observer.StageSkipped(event)
		}
	}
}
