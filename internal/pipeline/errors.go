package pipeline

import "errors"

// Sentinel errors reported by the pipeline.
var (
	ErrUnknownStage        = errors.New("unknown stage")
	ErrRequiredStageFailed = errors.New("required stage failed")
	ErrEmptySelection      = errors.New("stage selection is empty")
)
