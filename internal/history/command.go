package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandUseConstant              = "history [run-id]"
	commandShortDescriptionConstant = "List recent pipeline runs"
	commandLongDescriptionConstant  = "history lists recent pipeline runs recorded in the history database, or the stage outcomes of one run when a run identifier is given."
	flagLimitNameConstant           = "limit"
	flagLimitDescriptionConstant    = "Maximum number of runs to list"
	flagDatabaseNameConstant        = "database"
	flagDatabaseDescriptionConstant = "Path to the history database"
	tooManyArgumentsMessageConstant = "history accepts at most one run identifier"
	historyDisabledMessageConstant  = "run history is disabled; set history.enabled to true"
	commandExecutionErrorTemplate   = "history lookup failed: %w"
	noRunsMessageConstant           = "No runs recorded in %s\n"
	runListHeaderTemplateConstant   = "%-36s  %-19s  %8s  %9s  %6s  %7s  %s\n"
	runListRowTemplateConstant      = "%-36s  %-19s  %8d  %9d  %6d  %7d  %s\n"
	stageListTitleTemplateConstant  = "Run %s started %s (%d records) %s\n"
	stageListHeaderTemplateConstant = "%3s  %-30s  %-12s  %-9s  %10s  %9s  %s\n"
	stageListRowTemplateConstant    = "%3d  %-30s  %-12s  %-9s  %10s  %9d  %s\n"
	displayTimestampLayoutConstant  = "2006-01-02 15:04:05"
	runStatusCompletedConstant      = "completed"
	runStatusAbortedConstant        = "aborted"
	runStatusWithFailuresConstant   = "completed with failures"
	runListedMessageConstant        = "history listed"
	historyDatabaseFieldConstant    = "database"
	historyCountFieldConstant       = "runs"
	stageDurationRoundingConstant   = time.Millisecond
)

var (
	errTooManyArguments = errors.New(tooManyArgumentsMessageConstant)
	errHistoryDisabled  = errors.New(historyDisabledMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the history cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
}

// Build constructs the history command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Int(flagLimitNameConstant, 0, flagLimitDescriptionConstant)
	command.Flags().String(flagDatabaseNameConstant, "", flagDatabaseDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 1 {
		return errTooManyArguments
	}

	configuration := builder.resolveConfiguration()
	if databaseValue, _ := command.Flags().GetString(flagDatabaseNameConstant); len(strings.TrimSpace(databaseValue)) > 0 {
		configuration.DatabasePath = strings.TrimSpace(databaseValue)
		configuration.Enabled = true
	}
	if limitValue, _ := command.Flags().GetInt(flagLimitNameConstant); limitValue > 0 {
		configuration.ListLimit = limitValue
	}
	if !configuration.Enabled {
		return errHistoryDisabled
	}

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	store, openError := OpenStore(executionContext, configuration.DatabasePath)
	if openError != nil {
		return fmt.Errorf(commandExecutionErrorTemplate, openError)
	}
	defer store.Close()

	output := command.OutOrStdout()
	if len(arguments) == 1 {
		if printError := printStages(executionContext, store, strings.TrimSpace(arguments[0]), output); printError != nil {
			return fmt.Errorf(commandExecutionErrorTemplate, printError)
		}
		return nil
	}

	runs, listError := store.RecentRuns(executionContext, configuration.ListLimit)
	if listError != nil {
		return fmt.Errorf(commandExecutionErrorTemplate, listError)
	}
	builder.resolveLogger().Debug(runListedMessageConstant,
		zap.String(historyDatabaseFieldConstant, configuration.DatabasePath),
		zap.Int(historyCountFieldConstant, len(runs)),
	)
	printRuns(runs, configuration.DatabasePath, output)
	return nil
}

func printRuns(runs []RunRecord, databasePath string, output io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintf(output, noRunsMessageConstant, databasePath)
		return
	}
	fmt.Fprintf(output, runListHeaderTemplateConstant, "RUN ID", "STARTED", "RECORDS", "SUCCEEDED", "FAILED", "SKIPPED", "STATUS")
	for _, run := range runs {
		fmt.Fprintf(output, runListRowTemplateConstant,
			run.RunID,
			run.StartedAt.Local().Format(displayTimestampLayoutConstant),
			run.Records,
			run.Succeeded,
			run.Failed,
			run.Skipped,
			runStatus(run),
		)
	}
}

func printStages(executionContext context.Context, store *Store, runID string, output io.Writer) error {
	run, runError := store.Run(executionContext, runID)
	if runError != nil {
		return runError
	}
	stages, stagesError := store.StageRuns(executionContext, runID)
	if stagesError != nil {
		return stagesError
	}

	fmt.Fprintf(output, stageListTitleTemplateConstant, run.RunID, run.StartedAt.Local().Format(displayTimestampLayoutConstant), run.Records, runStatus(run))
	fmt.Fprintf(output, stageListHeaderTemplateConstant, "#", "STAGE", "GROUP", "STATUS", "DURATION", "ARTIFACTS", "ERROR")
	for _, stage := range stages {
		fmt.Fprintf(output, stageListRowTemplateConstant,
			stage.Position,
			stage.Name,
			stage.Group,
			stage.Status,
			stage.Duration.Round(stageDurationRoundingConstant),
			stage.Artifacts,
			stage.Error,
		)
	}
	return nil
}

func runStatus(run RunRecord) string {
	switch {
	case run.Aborted:
		return runStatusAbortedConstant
	case run.Failed > 0:
		return runStatusWithFailuresConstant
	default:
		return runStatusCompletedConstant
	}
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
