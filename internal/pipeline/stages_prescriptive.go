package pipeline

import (
	"context"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/prescriptive"
	"github.com/temirov/logicost/internal/report"
)

const combineNoRecommendationsWarningConstant = "no prescriptive recommendations available to combine"

type prescriptiveStage struct {
	analyzer prescriptive.Analyzer
}

func (stage prescriptiveStage) Name() string { return stage.analyzer.Name() }

func (stage prescriptiveStage) Group() Group { return GroupPrescriptive }

func (stage prescriptiveStage) RequiredColumns() []string { return stage.analyzer.RequiredColumns() }

func (stage prescriptiveStage) Execute(_ context.Context, _ *Environment, source *dataset.Dataset) (Result, error) {
	outcome, analyzeError := stage.analyzer.Analyze(source)
	if analyzeError != nil {
		return Result{}, analyzeError
	}
	return Result{Tables: outcome.Tables, Recommendation: outcome.Recommendation, Warnings: outcome.Warnings}, nil
}

type combineStage struct{}

func (stage combineStage) Name() string { return StageCombine }

func (stage combineStage) Group() Group { return GroupPrescriptive }

func (stage combineStage) RequiredColumns() []string { return nil }

func (stage combineStage) Execute(_ context.Context, environment *Environment, _ *dataset.Dataset) (Result, error) {
	if len(environment.Recommendations) == 0 {
		return Result{Warnings: []string{combineNoRecommendationsWarningConstant}}, nil
	}
	return Result{Tables: []*report.Table{report.MasterSummary(environment.Recommendations)}}, nil
}
