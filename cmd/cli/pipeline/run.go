package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/history"
	"github.com/temirov/logicost/internal/pipeline"
	"github.com/temirov/logicost/internal/ui"
	"github.com/temirov/logicost/internal/utils"
	flagutils "github.com/temirov/logicost/internal/utils/flags"
)

const (
	commandUseConstant                  = "run"
	commandShortDescriptionConstant     = "Run the cost metrics and prescriptive pipeline"
	commandLongDescriptionConstant      = "run loads the trip dataset, computes cost metrics, and writes prescriptive recommendations into a timestamped run directory."
	stageFlagNameConstant               = "stage"
	stageFlagDescriptionConstant        = "Stages to run:"
	inputFlagNameConstant               = "input"
	inputFlagDescriptionConstant        = "Path to the raw trip CSV"
	outputFlagNameConstant              = "output"
	outputFlagDescriptionConstant       = "Root directory receiving run directories"
	logDirectoryFlagNameConstant        = "log-dir"
	logDirectoryFlagDescriptionConstant = "Directory receiving run log files"
	intermediateFlagNameConstant        = "write-intermediate"
	intermediateFlagDescriptionConstant = "Write the augmented dataset after every metric stage"
	noHistoryFlagNameConstant           = "no-history"
	noHistoryFlagDescriptionConstant    = "Do not record the run in the history database"
	pipelineFailedErrorTemplateConstant = "pipeline run failed: %w"
	historyUnavailableMessageConstant   = "run history unavailable"
	historyDatabaseFieldConstant        = "database"
	runSummaryOutputTemplateConstant    = "%s\n"
	runConfigurationMessageConstant     = "pipeline run configuration"
	configurationFileFieldConstant      = "config_file"
	selectorFieldConstant               = "stages"
	inputFieldConstant                  = "input"
)

// CommandBuilder assembles the run command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	Clock                        func() time.Time
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	stageUsage := flagutils.SelectorUsage{
		DefaultKeyword: pipeline.SelectorAll,
		Keywords:       []string{pipeline.SelectorAll, string(pipeline.GroupAnalysis), string(pipeline.GroupPrescriptive)},
		Names:          pipeline.StageNames(pipeline.StandardStages(pipeline.DefaultStageSettings())),
	}
	command.Flags().String(stageFlagNameConstant, "", stageUsage.Describe(stageFlagDescriptionConstant))
	command.Flags().String(inputFlagNameConstant, "", inputFlagDescriptionConstant)
	command.Flags().String(outputFlagNameConstant, "", outputFlagDescriptionConstant)
	command.Flags().String(logDirectoryFlagNameConstant, "", logDirectoryFlagDescriptionConstant)
	command.Flags().Bool(intermediateFlagNameConstant, false, intermediateFlagDescriptionConstant)
	command.Flags().Bool(noHistoryFlagNameConstant, false, noHistoryFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := resolveLogger(builder.LoggerProvider)
	configuration := builder.resolveConfiguration()

	pipelineConfiguration := configuration.Pipeline
	pipelineConfiguration.Stages = stringFlagOverride(command, stageFlagNameConstant, pipelineConfiguration.Stages)
	pipelineConfiguration.InputPath = stringFlagOverride(command, inputFlagNameConstant, pipelineConfiguration.InputPath)
	pipelineConfiguration.OutputRoot = stringFlagOverride(command, outputFlagNameConstant, pipelineConfiguration.OutputRoot)
	pipelineConfiguration.LogDirectory = stringFlagOverride(command, logDirectoryFlagNameConstant, pipelineConfiguration.LogDirectory)
	pipelineConfiguration.WriteIntermediate = boolFlagOverride(command, intermediateFlagNameConstant, pipelineConfiguration.WriteIntermediate)
	configuration.Pipeline = pipelineConfiguration
	if metadata, metadataAvailable := utils.NewCommandContextAccessor().ExecutionMetadata(command.Context()); metadataAvailable {
		logger.Debug(runConfigurationMessageConstant,
			zap.String(configurationFileFieldConstant, metadata.ConfigurationFilePath),
			zap.String(selectorFieldConstant, pipelineConfiguration.Stages),
			zap.String(inputFieldConstant, pipelineConfiguration.InputPath),
		)
	}
	recordHistory := configuration.History.Enabled && !boolFlagOverride(command, noHistoryFlagNameConstant, false)

	output := command.OutOrStdout()
	observers := pipeline.CompositeObserver{ui.NewStagePrinter(output, !color.NoColor)}
	if builder.humanReadableLogging() {
		observers = append(observers, ui.NewConsoleStageEventLogger(logger))
	}

	dependencies := pipeline.Dependencies{
		Logger:      logger,
		Observer:    observers,
		Clock:       builder.Clock,
		RunLogLevel: utils.LogLevelInfo,
	}
	if recordHistory {
		store, storeError := history.OpenStore(command.Context(), configuration.History.DatabasePath)
		if storeError != nil {
			logger.Warn(historyUnavailableMessageConstant, zap.String(historyDatabaseFieldConstant, configuration.History.DatabasePath), zap.Error(storeError))
		} else {
			defer store.Close()
			dependencies.Recorder = store
		}
	}

	executor := pipeline.NewExecutor(pipeline.StandardStages(configuration.StageSettings()), dependencies)
	summary, runError := executor.Execute(command.Context(), pipeline.RunOptionsFromConfiguration(configuration.Pipeline))
	if len(summary.RunID) > 0 {
		printSummary(output, summary)
	}
	if runError != nil {
		return fmt.Errorf(pipelineFailedErrorTemplateConstant, runError)
	}
	return nil
}

func printSummary(output io.Writer, summary pipeline.Summary) {
	fmt.Fprintf(output, runSummaryOutputTemplateConstant, ui.RunSummaryRenderer{}.Render(summary))
}

func (builder *CommandBuilder) humanReadableLogging() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().Sanitize()
	}
	return builder.ConfigurationProvider().Sanitize()
}
