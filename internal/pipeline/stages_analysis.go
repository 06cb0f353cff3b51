package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	cleanSnapshotFileNameConstant        = "cleaned_logistics_data.csv"
	snapshotFileNameTemplateConstant     = "%s_features.csv"
	cleanDroppedWarningTemplateConstant  = "dropped %d rows with unparseable timestamps and %d duplicate rows"
	cleanCompletedMessageConstant        = "dataset cleaned"
	cleanInputRecordsFieldConstant       = "input_records"
	cleanOutputRecordsFieldConstant      = "output_records"
	cleanSynthesizedColumnsFieldConstant = "synthesized_columns"
	metricStageComputedMessageConstant   = "metric columns appended"
	metricStageColumnsFieldConstant      = "columns"
	metricColumnsReusedWarningConstant   = "reusing existing columns: %s"
	metricColumnsSeparatorConstant       = ", "
	stageFieldConstant                   = "stage"
)

type cleanStage struct {
	options dataset.CleanOptions
}

func (stage cleanStage) Name() string { return StageClean }

func (stage cleanStage) Group() Group { return GroupAnalysis }

func (stage cleanStage) RequiredColumns() []string { return dataset.RequiredColumns }

func (stage cleanStage) Execute(_ context.Context, environment *Environment, source *dataset.Dataset) (Result, error) {
	cleaned, cleanReport := dataset.Clean(source, stage.options)
	environment.Logger.Info(cleanCompletedMessageConstant,
		zap.String(stageFieldConstant, stage.Name()),
		zap.Int(cleanInputRecordsFieldConstant, cleanReport.InputRecords),
		zap.Int(cleanOutputRecordsFieldConstant, cleanReport.OutputRecords),
		zap.Strings(cleanSynthesizedColumnsFieldConstant, cleanReport.SynthesizedColumns),
	)
	result := Result{Dataset: cleaned, Snapshot: cleanSnapshotFileNameConstant}
	if droppedRecords := cleanReport.DroppedInvalidTimestamps + cleanReport.DroppedDuplicates; droppedRecords > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(cleanDroppedWarningTemplateConstant, cleanReport.DroppedInvalidTimestamps, cleanReport.DroppedDuplicates))
	}
	return result, nil
}

type metricStage struct {
	name       string
	calculator metrics.Calculator
}

func (stage metricStage) Name() string { return stage.name }

func (stage metricStage) Group() Group { return GroupAnalysis }

func (stage metricStage) RequiredColumns() []string { return stage.calculator.RequiredColumns() }

func (stage metricStage) Execute(_ context.Context, environment *Environment, source *dataset.Dataset) (Result, error) {
	outputColumns := stage.calculator.OutputColumns()
	if len(outputColumns) > 0 && source.Require(outputColumns...) == nil {
		return Result{Warnings: []string{fmt.Sprintf(metricColumnsReusedWarningConstant, strings.Join(outputColumns, metricColumnsSeparatorConstant))}}, nil
	}
	extended, computeError := stage.calculator.Compute(source)
	if computeError != nil {
		return Result{}, computeError
	}
	environment.Logger.Debug(metricStageComputedMessageConstant,
		zap.String(stageFieldConstant, stage.Name()),
		zap.Strings(metricStageColumnsFieldConstant, stage.calculator.OutputColumns()),
	)
	return Result{Dataset: extended, Snapshot: fmt.Sprintf(snapshotFileNameTemplateConstant, stage.Name())}, nil
}

type correlationStage struct{}

func (stage correlationStage) Name() string { return StageCorrelation }

func (stage correlationStage) Group() Group { return GroupAnalysis }

func (stage correlationStage) RequiredColumns() []string { return nil }

func (stage correlationStage) Execute(_ context.Context, _ *Environment, source *dataset.Dataset) (Result, error) {
	matrix, matrixError := report.CorrelationMatrix(source)
	if matrixError != nil {
		return Result{}, matrixError
	}
	return Result{Tables: []*report.Table{matrix}}, nil
}

type textReportStage struct {
	configuration report.TextReportConfiguration
}

func (stage textReportStage) Name() string { return StageReport }

func (stage textReportStage) Group() Group { return GroupAnalysis }

func (stage textReportStage) RequiredColumns() []string { return report.TextReportRequiredColumns }

func (stage textReportStage) Execute(_ context.Context, _ *Environment, source *dataset.Dataset) (Result, error) {
	document, buildError := report.BuildTextReport(source, stage.configuration)
	if buildError != nil {
		return Result{}, buildError
	}
	return Result{Documents: []report.Document{document}}, nil
}
