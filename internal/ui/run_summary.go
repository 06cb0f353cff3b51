package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/logicost/internal/pipeline"
)

const (
	summaryTitleTemplateConstant      = "Run %s"
	summaryStageHeaderConstant        = "Stage"
	summaryGroupHeaderConstant        = "Group"
	summaryStatusHeaderConstant       = "Status"
	summaryDurationHeaderConstant     = "Duration"
	summaryArtifactsHeaderConstant    = "Artifacts"
	summaryTotalsTemplateConstant     = "%d succeeded, %d failed, %d skipped in %s"
	summaryLocationTemplateConstant   = "Outputs: %s"
	summaryLogTemplateConstant        = "Log: %s"
	summaryAbortedMessageConstant     = "Run aborted"
	summaryColumnSeparatorConstant    = " "
	summaryLineSeparatorConstant      = "\n"
	summaryCellPaddingConstant        = 1
	summaryDurationRoundingConstant   = time.Millisecond
	summaryEmptyRunIdentifierConstant = "-"
	summaryStatusColumnIndexConstant  = 2
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#38A169", Dark: "#48BB78"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#D69E2E", Dark: "#F6E05E"}
	colorError   = lipgloss.AdaptiveColor{Light: "#E53E3E", Dark: "#FC8181"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#718096", Dark: "#A0AEC0"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#CBD5E0", Dark: "#4A5568"}

	summaryTitleStyle  = lipgloss.NewStyle().Bold(true)
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, summaryCellPaddingConstant)
	summaryCellStyle   = lipgloss.NewStyle().Padding(0, summaryCellPaddingConstant)
	summaryMutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	summaryPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
)

// RunSummaryRenderer renders a pipeline run summary as a bordered table.
type RunSummaryRenderer struct{}

// Render returns the rendered summary.
func (renderer RunSummaryRenderer) Render(summary pipeline.Summary) string {
	headers := []string{summaryStageHeaderConstant, summaryGroupHeaderConstant, summaryStatusHeaderConstant, summaryDurationHeaderConstant, summaryArtifactsHeaderConstant}
	rows := make([][]string, 0, len(summary.Stages))
	for _, stage := range summary.Stages {
		rows = append(rows, []string{
			stage.Name,
			string(stage.Group),
			string(stage.Status),
			stage.Duration.Round(summaryDurationRoundingConstant).String(),
			fmt.Sprintf("%d", len(stage.Artifacts)),
		})
	}

	widths := make([]int, len(headers))
	for columnIndex, header := range headers {
		widths[columnIndex] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for columnIndex, cell := range row {
			if cellWidth := lipgloss.Width(cell); cellWidth > widths[columnIndex] {
				widths[columnIndex] = cellWidth
			}
		}
	}
	for columnIndex := range widths {
		widths[columnIndex] += 2 * summaryCellPaddingConstant
	}

	lines := make([]string, 0, len(rows)+6)
	runIdentifier := summary.RunID
	if len(runIdentifier) == 0 {
		runIdentifier = summaryEmptyRunIdentifierConstant
	}
	lines = append(lines, summaryTitleStyle.Render(fmt.Sprintf(summaryTitleTemplateConstant, runIdentifier)))

	headerCells := make([]string, len(headers))
	for columnIndex, header := range headers {
		headerCells[columnIndex] = summaryHeaderStyle.Width(widths[columnIndex]).Render(header)
	}
	lines = append(lines, strings.Join(headerCells, summaryColumnSeparatorConstant))

	for rowIndex, row := range rows {
		cells := make([]string, len(row))
		for columnIndex, cell := range row {
			style := summaryCellStyle.Width(widths[columnIndex])
			if columnIndex == summaryStatusColumnIndexConstant {
				style = style.Foreground(statusColor(summary.Stages[rowIndex].Status))
			}
			cells[columnIndex] = style.Render(cell)
		}
		lines = append(lines, strings.Join(cells, summaryColumnSeparatorConstant))
	}

	totals := fmt.Sprintf(summaryTotalsTemplateConstant,
		summary.Count(pipeline.StageStatusSucceeded),
		summary.Count(pipeline.StageStatusFailed),
		summary.Count(pipeline.StageStatusSkipped),
		summary.Duration().Round(summaryDurationRoundingConstant),
	)
	lines = append(lines, totals)
	if summary.Aborted {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorError).Bold(true).Render(summaryAbortedMessageConstant))
	}
	if len(summary.RunDirectory) > 0 {
		lines = append(lines, summaryMutedStyle.Render(fmt.Sprintf(summaryLocationTemplateConstant, summary.RunDirectory)))
	}
	if len(summary.LogFilePath) > 0 {
		lines = append(lines, summaryMutedStyle.Render(fmt.Sprintf(summaryLogTemplateConstant, summary.LogFilePath)))
	}
	return summaryPanelStyle.Render(strings.Join(lines, summaryLineSeparatorConstant))
}

func statusColor(status pipeline.StageStatus) lipgloss.TerminalColor {
	switch status {
	case pipeline.StageStatusSucceeded:
		return colorSuccess
	case pipeline.StageStatusFailed:
		return colorError
	case pipeline.StageStatusSkipped:
		return colorWarning
	default:
		return colorMuted
	}
}
