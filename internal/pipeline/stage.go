package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/report"
)

// Group categorizes stages for selection.
type Group string

// Supported stage groups.
const (
	GroupAnalysis     Group = Group("analysis")
	GroupPrescriptive Group = Group("prescriptive")
)

// Canonical stage names.
const (
	StageClean                        = "clean"
	StageFuel                         = "fuel"
	StageHandling                     = "handling"
	StageAssetUtilization             = "asset_utilization"
	StageInventory                    = "inventory"
	StageDelay                        = "delay"
	StageCorrelation                  = "correlation"
	StageReport                       = "report"
	StageTraffic                      = "traffic"
	StageWaitingTime                  = "waiting_time"
	StageAssetUtilizationOptimization = "asset_utilization_optimization"
	StageWeather                      = "weather"
	StageDriverPerformance            = "driver_performance"
	StageCombine                      = "combine"
)

// Stage is one named step of the pipeline.
type Stage interface {
	Name() string
	Group() Group
	RequiredColumns() []string
	Execute(executionContext context.Context, environment *Environment, source *dataset.Dataset) (Result, error)
}

// Result carries what a stage produced. A nil Dataset leaves the current dataset unchanged.
// Snapshot names the file the resulting dataset is written to when intermediate output is enabled.
type Result struct {
	Dataset        *dataset.Dataset
	Snapshot       string
	Tables         []*report.Table
	Documents      []report.Document
	Recommendation *report.Table
	Warnings       []string
}

// Environment exposes run-scoped collaborators to stages.
type Environment struct {
	Logger          *zap.Logger
	RunDirectory    string
	Recommendations []report.ModuleTable
}

// ConfiguredStage pairs a stage with its failure policy.
type ConfiguredStage struct {
	Stage
	Required bool
}
