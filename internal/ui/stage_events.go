package ui

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/pipeline"
)

const (
	stagePositionTemplateConstant          = "[%d/%d] "
	stageStartedMessageTemplateConstant    = "Starting %s (%s)"
	stageSucceededMessageTemplateConstant  = "Completed %s in %s"
	stageArtifactsSuffixTemplateConstant   = ", %d artifact(s)"
	stageWarnedMessageTemplateConstant     = "%s: %s"
	stageFailedMessageTemplateConstant     = "%s failed: %s"
	stageRequiredSuffixConstant            = " (required)"
	stageSkippedMessageTemplateConstant    = "Skipped %s"
	unknownStageFailureMessageConstant     = "unknown error"
	stageDurationRoundingConstant          = time.Millisecond
	emptyStringConstant                    = ""
	stageEventStageFieldConstant           = "stage"
	stageEventGroupFieldConstant           = "group"
	stageEventDurationFieldConstant        = "duration"
	stageEventArtifactsFieldConstant       = "artifacts"
	stageEventRequiredFieldConstant        = "required"
	stageEventPositionOmittedTotalConstant = 0
)

// StageEventFormatter builds human-readable messages for stage lifecycle events.
type StageEventFormatter struct{}

// BuildStartedMessage formats the message describing a stage about to run.
func (formatter StageEventFormatter) BuildStartedMessage(event pipeline.StageEvent) string {
	return formatter.formatPosition(event) + fmt.Sprintf(stageStartedMessageTemplateConstant, event.Name, event.Group)
}

// BuildSucceededMessage formats the message describing a completed stage.
func (formatter StageEventFormatter) BuildSucceededMessage(event pipeline.StageEvent) string {
	message := fmt.Sprintf(stageSucceededMessageTemplateConstant, event.Name, event.Duration.Round(stageDurationRoundingConstant))
	if len(event.Artifacts) > 0 {
		message += fmt.Sprintf(stageArtifactsSuffixTemplateConstant, len(event.Artifacts))
	}
	return formatter.formatPosition(event) + message
}

// BuildWarningMessage formats a warning raised by a successful stage.
func (formatter StageEventFormatter) BuildWarningMessage(event pipeline.StageEvent, warning string) string {
	return formatter.formatPosition(event) + fmt.Sprintf(stageWarnedMessageTemplateConstant, event.Name, warning)
}

// BuildFailureMessage formats the message describing a failed stage.
func (formatter StageEventFormatter) BuildFailureMessage(event pipeline.StageEvent, failure error) string {
	failureMessage := unknownStageFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	requiredSuffix := emptyStringConstant
	if event.Required {
		requiredSuffix = stageRequiredSuffixConstant
	}
	return formatter.formatPosition(event) + fmt.Sprintf(stageFailedMessageTemplateConstant, event.Name, failureMessage) + requiredSuffix
}

// BuildSkippedMessage formats the message describing a skipped stage.
func (formatter StageEventFormatter) BuildSkippedMessage(event pipeline.StageEvent) string {
	return formatter.formatPosition(event) + fmt.Sprintf(stageSkippedMessageTemplateConstant, event.Name)
}

func (formatter StageEventFormatter) formatPosition(event pipeline.StageEvent) string {
	if event.Total == stageEventPositionOmittedTotalConstant {
		return emptyStringConstant
	}
	return fmt.Sprintf(stagePositionTemplateConstant, event.Position, event.Total)
}

// ConsoleStageEventLogger renders stage lifecycle events using a zap logger configured for human-readable output.
type ConsoleStageEventLogger struct {
	logger    *zap.Logger
	formatter StageEventFormatter
}

// NewConsoleStageEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleStageEventLogger(logger *zap.Logger) *ConsoleStageEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleStageEventLogger{logger: logger, formatter: StageEventFormatter{}}
}

// StageStarted implements pipeline.StageEventObserver by logging stage start notifications.
func (eventLogger *ConsoleStageEventLogger) StageStarted(event pipeline.StageEvent) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(event),
		zap.String(stageEventStageFieldConstant, event.Name),
		zap.String(stageEventGroupFieldConstant, string(event.Group)),
	)
}

// StageSucceeded implements pipeline.StageEventObserver by logging stage completion notifications.
func (eventLogger *ConsoleStageEventLogger) StageSucceeded(event pipeline.StageEvent) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildSucceededMessage(event),
		zap.String(stageEventStageFieldConstant, event.Name),
		zap.Duration(stageEventDurationFieldConstant, event.Duration),
		zap.Strings(stageEventArtifactsFieldConstant, event.Artifacts),
	)
}

// StageWarned implements pipeline.StageEventObserver by logging stage warnings.
func (eventLogger *ConsoleStageEventLogger) StageWarned(event pipeline.StageEvent, warning string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildWarningMessage(event, warning),
		zap.String(stageEventStageFieldConstant, event.Name),
	)
}

// StageFailed implements pipeline.StageEventObserver by logging stage failures.
func (eventLogger *ConsoleStageEventLogger) StageFailed(event pipeline.StageEvent, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildFailureMessage(event, failure),
		zap.String(stageEventStageFieldConstant, event.Name),
		zap.Bool(stageEventRequiredFieldConstant, event.Required),
	)
}

// StageSkipped implements pipeline.StageEventObserver by logging skipped stages.
func (eventLogger *ConsoleStageEventLogger) StageSkipped(event pipeline.StageEvent) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildSkippedMessage(event),
		zap.String(stageEventStageFieldConstant, event.Name),
	)
}
