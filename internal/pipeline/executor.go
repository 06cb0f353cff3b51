package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/report"
	"github.com/temirov/logicost/internal/utils"
)

const (
	runDirectoryPermissionsConstant         = 0o755
	runDirectoryErrorTemplateConstant       = "unable to create run directory %s: %w"
	runLogErrorTemplateConstant             = "unable to open run log: %w"
	datasetLoadErrorTemplateConstant        = "unable to load dataset: %w"
	requiredStageFailureTemplateConstant    = "%w: %s: %w"
	runCancelledTemplateConstant            = "pipeline cancelled before stage %s: %w"
	stageColumnsErrorTemplateConstant       = "stage %s: %w"
	artifactWriteErrorTemplateConstant      = "stage %s: unable to write %s: %w"
	executorMissingStagesMessageConstant    = "pipeline executor requires at least one stage"
	runStartedLogTemplateConstant           = "Pipeline run %s started with input %s"
	runFinishedLogTemplateConstant          = "Pipeline run %s finished: %d succeeded, %d failed, %d skipped"
	stageStartedLogTemplateConstant         = "Starting: %s"
	stageCompletedLogTemplateConstant       = "Completed: %s (%s)"
	stageFailedLogTemplateConstant          = "Failed: %s: %v"
	stageWarningLogTemplateConstant         = "Warning: %s: %s"
	stageSkippedLogTemplateConstant         = "Skipped: %s"
	datasetLoadFailedLogTemplateConstant    = "Failed to load dataset: %v"
	augmentedWriteFailedLogTemplateConstant = "Unable to write augmented dataset: %v"
	historyRecordFailedMessageConstant      = "unable to record run history"
	runStartedMessageConstant               = "pipeline run started"
	stageCompletedMessageConstant           = "stage completed"
	runIdentifierFieldConstant              = "run_id"
	runDirectoryFieldConstant               = "run_directory"
	stageDurationFieldConstant              = "duration"
	stageArtifactsFieldConstant             = "artifacts"
)

// RunRecorder persists run summaries.
type RunRecorder interface {
	RecordRun(executionContext context.Context, summary Summary) error
}

// Dependencies configures collaborators shared by every run.
type Dependencies struct {
	Logger      *zap.Logger
	Observer    StageEventObserver
	Recorder    RunRecorder
	Clock       func() time.Time
	RunLogLevel utils.LogLevel
}

// RunOptions captures the per-run inputs.
type RunOptions struct {
	InputPath         string
	OutputRoot        string
	LogDirectory      string
	Selector          string
	WriteIntermediate bool
}

// RunOptionsFromConfiguration derives run options from configuration.
func RunOptionsFromConfiguration(configuration Configuration) RunOptions {
	sanitized := configuration.Sanitize()
	return RunOptions{
		InputPath:         sanitized.InputPath,
		OutputRoot:        sanitized.OutputRoot,
		LogDirectory:      sanitized.LogDirectory,
		Selector:          sanitized.Stages,
		WriteIntermediate: sanitized.WriteIntermediate,
	}
}

// Executor runs configured stages in canonical order.
type Executor struct {
	stages        []ConfiguredStage
	dependencies  Dependencies
	loggerFactory *utils.LoggerFactory
}

// NewExecutor constructs an Executor instance.
func NewExecutor(stages []ConfiguredStage, dependencies Dependencies) *Executor {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Clock == nil {
		dependencies.Clock = time.Now
	}
	if len(dependencies.RunLogLevel) == 0 {
		dependencies.RunLogLevel = utils.LogLevelInfo
	}
	observers := CompositeObserver{}
	if dependencies.Observer != nil {
		observers = append(observers, dependencies.Observer)
	}
	dependencies.Observer = observers
	return &Executor{
		stages:        append([]ConfiguredStage{}, stages...),
		dependencies:  dependencies,
		loggerFactory: utils.NewLoggerFactory(),
	}
}

// Execute runs the selected stages against the input dataset. The returned summary is populated even
// when an error is returned, unless the selector is invalid.
func (executor *Executor) Execute(executionContext context.Context, options RunOptions) (Summary, error) {
	if len(executor.stages) == 0 {
		return Summary{}, errors.New(executorMissingStagesMessageConstant)
	}
	selectedStages, selectionError := SelectStages(options.Selector, executor.stages)
	if selectionError != nil {
		return Summary{}, selectionError
	}

	startedAt := executor.dependencies.Clock()
	summary := Summary{
		RunID:        uuid.NewString(),
		InputPath:    options.InputPath,
		RunDirectory: RunDirectory(options.OutputRoot, startedAt),
		LogFilePath:  RunLogFilePath(options.LogDirectory, startedAt),
		StartedAt:    startedAt,
	}

	runLogger, runLoggerError := executor.loggerFactory.CreateRunLogger(summary.LogFilePath, executor.dependencies.RunLogLevel)
	if runLoggerError != nil {
		return summary, fmt.Errorf(runLogErrorTemplateConstant, runLoggerError)
	}
	defer runLogger.Close()
	runLog := runLogger.Logger.Sugar()

	if directoryError := os.MkdirAll(summary.RunDirectory, runDirectoryPermissionsConstant); directoryError != nil {
		return summary, fmt.Errorf(runDirectoryErrorTemplateConstant, summary.RunDirectory, directoryError)
	}
	runLog.Infof(runStartedLogTemplateConstant, summary.RunID, options.InputPath)
	executor.dependencies.Logger.Debug(runStartedMessageConstant,
		zap.String(runIdentifierFieldConstant, summary.RunID),
		zap.String(runDirectoryFieldConstant, summary.RunDirectory),
	)

	var runError error
	currentDataset, loadError := dataset.LoadFile(options.InputPath)
	if loadError != nil {
		runLog.Errorf(datasetLoadFailedLogTemplateConstant, loadError)
		summary.Aborted = true
		runError = fmt.Errorf(datasetLoadErrorTemplateConstant, loadError)
	} else {
		summary.Records = currentDataset.Len()
	}

	environment := &Environment{Logger: executor.dependencies.Logger, RunDirectory: summary.RunDirectory}
	datasetChanged := false
	for stageIndex, stage := range selectedStages {
		event := StageEvent{
			Name:     stage.Name(),
			Group:    stage.Group(),
			Required: stage.Required,
			Position: stageIndex + 1,
			Total:    len(selectedStages),
		}
		stageSummary := StageSummary{Name: stage.Name(), Group: stage.Group(), Required: stage.Required}

		if !summary.Aborted {
			if contextError := executionContext.Err(); contextError != nil {
				summary.Aborted = true
				runError = fmt.Errorf(runCancelledTemplateConstant, stage.Name(), contextError)
			}
		}
		if summary.Aborted {
			stageSummary.Status = StageStatusSkipped
			summary.Stages = append(summary.Stages, stageSummary)
			executor.dependencies.Observer.StageSkipped(event)
			runLog.Infof(stageSkippedLogTemplateConstant, stage.Name())
			continue
		}

		executor.dependencies.Observer.StageStarted(event)
		runLog.Infof(stageStartedLogTemplateConstant, stage.Name())
		stageStartedAt := executor.dependencies.Clock()
		result, artifactPaths, stageError := executor.runStage(executionContext, environment, stage, currentDataset, options)
		event.Duration = executor.dependencies.Clock().Sub(stageStartedAt)
		stageSummary.Duration = event.Duration

		if stageError != nil {
			stageSummary.Status = StageStatusFailed
			stageSummary.Error = stageError.Error()
			summary.Stages = append(summary.Stages, stageSummary)
			executor.dependencies.Observer.StageFailed(event, stageError)
			runLog.Errorf(stageFailedLogTemplateConstant, stage.Name(), stageError)
			if stage.Required {
				summary.Aborted = true
				runError = fmt.Errorf(requiredStageFailureTemplateConstant, ErrRequiredStageFailed, stage.Name(), stageError)
			}
			continue
		}

		if result.Dataset != nil {
			currentDataset = result.Dataset
			datasetChanged = true
		}
		if result.Recommendation != nil {
			environment.Recommendations = append(environment.Recommendations, report.ModuleTable{ModuleName: stage.Name(), Table: result.Recommendation})
		}
		for _, warning := range result.Warnings {
			executor.dependencies.Observer.StageWarned(event, warning)
			runLog.Warnf(stageWarningLogTemplateConstant, stage.Name(), warning)
		}
		event.Artifacts = artifactPaths
		stageSummary.Status = StageStatusSucceeded
		stageSummary.Artifacts = artifactPaths
		stageSummary.Warnings = result.Warnings
		summary.Stages = append(summary.Stages, stageSummary)
		executor.dependencies.Observer.StageSucceeded(event)
		runLog.Infof(stageCompletedLogTemplateConstant, stage.Name(), event.Duration.Round(time.Millisecond))
		executor.dependencies.Logger.Debug(stageCompletedMessageConstant,
			zap.String(stageFieldConstant, stage.Name()),
			zap.Duration(stageDurationFieldConstant, event.Duration),
			zap.Strings(stageArtifactsFieldConstant, artifactPaths),
		)
	}

	if datasetChanged && !summary.Aborted {
		augmentedPath := filepath.Join(summary.RunDirectory, augmentedDatasetFileNameConstant)
		if writeError := currentDataset.WriteCSVFile(augmentedPath); writeError != nil {
			runLog.Warnf(augmentedWriteFailedLogTemplateConstant, writeError)
		} else {
			summary.AugmentedPath = augmentedPath
		}
	}

	summary.FinishedAt = executor.dependencies.Clock()
	runLog.Infof(runFinishedLogTemplateConstant, summary.RunID,
		summary.Count(StageStatusSucceeded), summary.Count(StageStatusFailed), summary.Count(StageStatusSkipped))

	if executor.dependencies.Recorder != nil {
		if recordError := executor.dependencies.Recorder.RecordRun(context.WithoutCancel(executionContext), summary); recordError != nil {
			executor.dependencies.Logger.Warn(historyRecordFailedMessageConstant, zap.Error(recordError))
		}
	}
	return summary, runError
}

func (executor *Executor) runStage(executionContext context.Context, environment *Environment, stage ConfiguredStage, source *dataset.Dataset, options RunOptions) (Result, []string, error) {
	if requireError := source.Require(stage.RequiredColumns()...); requireError != nil {
		return Result{}, nil, fmt.Errorf(stageColumnsErrorTemplateConstant, stage.Name(), requireError)
	}
	result, executeError := stage.Execute(executionContext, environment, source)
	if executeError != nil {
		return Result{}, nil, executeError
	}

	artifactPaths := make([]string, 0, len(result.Tables)+len(result.Documents)+1)
	for _, table := range result.Tables {
		writtenPath, writeError := table.WriteCSVFile(environment.RunDirectory)
		if writeError != nil {
			return Result{}, nil, fmt.Errorf(artifactWriteErrorTemplateConstant, stage.Name(), table.FileName, writeError)
		}
		artifactPaths = append(artifactPaths, writtenPath)
	}
	for _, document := range result.Documents {
		writtenPath, writeError := document.WriteFile(environment.RunDirectory)
		if writeError != nil {
			return Result{}, nil, fmt.Errorf(artifactWriteErrorTemplateConstant, stage.Name(), document.FileName, writeError)
		}
		artifactPaths = append(artifactPaths, writtenPath)
	}
	if options.WriteIntermediate && result.Dataset != nil && len(result.Snapshot) > 0 {
		snapshotPath := filepath.Join(environment.RunDirectory, result.Snapshot)
		if writeError := result.Dataset.WriteCSVFile(snapshotPath); writeError != nil {
			return Result{}, nil, fmt.Errorf(artifactWriteErrorTemplateConstant, stage.Name(), result.Snapshot, writeError)
		}
		artifactPaths = append(artifactPaths, snapshotPath)
	}
	return result, artifactPaths, nil
}
