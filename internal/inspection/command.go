package inspection

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandUseConstant                 = "inspect [dataset]"
	commandShortDescriptionConstant    = "Profile a raw trip dataset"
	commandLongDescriptionConstant     = "inspect reports per-column statistics of a raw trip dataset and lists required columns that are missing."
	flagOutputNameConstant             = "output"
	flagOutputDescriptionConstant      = "Directory receiving " + ProfileFileNameConstant
	tooManyArgumentsMessageConstant    = "inspect accepts at most one dataset path"
	missingInputMessageConstant        = "dataset path required; provide a positional argument or configure pipeline.input"
	inspectionErrorTemplateConstant    = "inspection failed: %w"
	profileHeaderTemplateConstant      = "%s: %d rows, %d columns\n"
	columnRowTemplateConstant          = "%-28s  %-7s  %7s  %7s  %8s  %12s  %12s  %12s  %12s  %12s\n"
	missingRequiredTemplateConstant    = "Missing required columns: %s\n"
	profileWrittenTemplateConstant     = "Profile written to %s\n"
	missingRequiredSeparatorConstant   = ", "
	inspectionCompletedMessageConstant = "dataset inspected"
	inspectionPathFieldConstant        = "path"
	inspectionRowsFieldConstant        = "rows"
)

var (
	errTooManyArguments = errors.New(tooManyArgumentsMessageConstant)
	errMissingInput     = errors.New(missingInputMessageConstant)
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the inspect cobra command.
type CommandBuilder struct {
	LoggerProvider    LoggerProvider
	InputPathProvider func() string
}

// Build constructs the inspect command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 1 {
		return errTooManyArguments
	}

	inputPath := ""
	if len(arguments) == 1 {
		inputPath = strings.TrimSpace(arguments[0])
	} else if builder.InputPathProvider != nil {
		inputPath = strings.TrimSpace(builder.InputPathProvider())
	}
	if len(inputPath) == 0 {
		return errMissingInput
	}

	profile, inspectionError := InspectFile(inputPath)
	if inspectionError != nil {
		return fmt.Errorf(inspectionErrorTemplateConstant, inspectionError)
	}
	builder.resolveLogger().Debug(inspectionCompletedMessageConstant,
		zap.String(inspectionPathFieldConstant, inputPath),
		zap.Int(inspectionRowsFieldConstant, profile.Rows),
	)

	output := command.OutOrStdout()
	printProfile(inputPath, profile, output)

	outputDirectory, _ := command.Flags().GetString(flagOutputNameConstant)
	if trimmedDirectory := strings.TrimSpace(outputDirectory); len(trimmedDirectory) > 0 {
		writtenPath, writeError := profile.Table().WriteCSVFile(trimmedDirectory)
		if writeError != nil {
			return fmt.Errorf(inspectionErrorTemplateConstant, writeError)
		}
		fmt.Fprintf(output, profileWrittenTemplateConstant, writtenPath)
	}
	return nil
}

func printProfile(inputPath string, profile Profile, output io.Writer) {
	table := profile.Table()
	fmt.Fprintf(output, profileHeaderTemplateConstant, inputPath, profile.Rows, len(profile.Columns))
	headerCells := make([]any, len(table.Header))
	for cellIndex, cell := range table.Header {
		headerCells[cellIndex] = cell
	}
	fmt.Fprintf(output, columnRowTemplateConstant, headerCells...)
	for _, row := range table.Rows {
		rowCells := make([]any, len(row))
		for cellIndex, cell := range row {
			rowCells[cellIndex] = cell
		}
		fmt.Fprintf(output, columnRowTemplateConstant, rowCells...)
	}
	if len(profile.MissingRequiredColumns) > 0 {
		fmt.Fprintf(output, missingRequiredTemplateConstant, strings.Join(profile.MissingRequiredColumns, missingRequiredSeparatorConstant))
	}
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
