package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/temirov/logicost/internal/pipeline"
)

const (
	printerLineTemplateConstant = "%s %s\n"
	printerStartedTagConstant   = "RUN "
	printerSucceededTagConstant = "OK  "
	printerWarningTagConstant   = "WARN"
	printerFailedTagConstant    = "FAIL"
	printerSkippedTagConstant   = "SKIP"
)

// StagePrinter writes one colored line per stage event to a terminal.
type StagePrinter struct {
	writer         io.Writer
	formatter      StageEventFormatter
	startedColor   *color.Color
	succeededColor *color.Color
	warningColor   *color.Color
	failedColor    *color.Color
	skippedColor   *color.Color
}

// NewStagePrinter constructs a StagePrinter. Colors are disabled when enableColor is false.
func NewStagePrinter(writer io.Writer, enableColor bool) *StagePrinter {
	printer := &StagePrinter{
		writer:         writer,
		formatter:      StageEventFormatter{},
		startedColor:   color.New(color.FgCyan),
		succeededColor: color.New(color.FgGreen, color.Bold),
		warningColor:   color.New(color.FgYellow),
		failedColor:    color.New(color.FgRed, color.Bold),
		skippedColor:   color.New(color.FgHiBlack),
	}
	for _, colorizer := range []*color.Color{printer.startedColor, printer.succeededColor, printer.warningColor, printer.failedColor, printer.skippedColor} {
		if enableColor {
			colorizer.EnableColor()
		} else {
			colorizer.DisableColor()
		}
	}
	return printer
}

// StageStarted implements pipeline.StageEventObserver.
func (printer *StagePrinter) StageStarted(event pipeline.StageEvent) {
	printer.printLine(printer.startedColor, printerStartedTagConstant, printer.formatter.BuildStartedMessage(event))
}

// StageSucceeded implements pipeline.StageEventObserver.
func (printer *StagePrinter) StageSucceeded(event pipeline.StageEvent) {
	printer.printLine(printer.succeededColor, printerSucceededTagConstant, printer.formatter.BuildSucceededMessage(event))
}

// StageWarned implements pipeline.StageEventObserver.
func (printer *StagePrinter) StageWarned(event pipeline.StageEvent, warning string) {
	printer.printLine(printer.warningColor, printerWarningTagConstant, printer.formatter.BuildWarningMessage(event, warning))
}

// StageFailed implements pipeline.StageEventObserver.
func (printer *StagePrinter) StageFailed(event pipeline.StageEvent, failure error) {
	printer.printLine(printer.failedColor, printerFailedTagConstant, printer.formatter.BuildFailureMessage(event, failure))
}

// StageSkipped implements pipeline.StageEventObserver.
func (printer *StagePrinter) StageSkipped(event pipeline.StageEvent) {
	printer.printLine(printer.skippedColor, printerSkippedTagConstant, printer.formatter.BuildSkippedMessage(event))
}

func (printer *StagePrinter) printLine(colorizer *color.Color, tag string, message string) {
	if printer == nil || printer.writer == nil {
		return
	}
	fmt.Fprintf(printer.writer, printerLineTemplateConstant, colorizer.Sprint(tag), message)
}
