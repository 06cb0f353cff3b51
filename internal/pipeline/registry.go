package pipeline

import (
	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/prescriptive"
	"github.com/temirov/logicost/internal/report"
)

// StageSettings carries the configuration of every standard stage.
type StageSettings struct {
	Clean        dataset.CleanOptions
	Metrics      metrics.Configuration
	Prescriptive prescriptive.Configuration
	TextReport   report.TextReportConfiguration
	Required     map[string]bool
}

// DefaultStageSettings returns the standard stage configuration.
func DefaultStageSettings() StageSettings {
	return StageSettings{
		Metrics:      metrics.DefaultConfiguration(),
		Prescriptive: prescriptive.DefaultConfiguration(),
		TextReport:   report.DefaultTextReportConfiguration(),
	}
}

var defaultRequiredStages = map[string]bool{
	StageClean:            true,
	StageFuel:             true,
	StageHandling:         true,
	StageAssetUtilization: true,
	StageInventory:        true,
	StageDelay:            true,
}

// StageRequiredByDefault reports whether a stage aborts the run on failure unless configured otherwise.
func StageRequiredByDefault(stageName string) bool {
	return defaultRequiredStages[stageName]
}

// StandardStages returns every stage in canonical order.
func StandardStages(settings StageSettings) []ConfiguredStage {
	metricsConfiguration := settings.Metrics.Sanitize()
	analyzers := prescriptive.StandardAnalyzers(settings.Prescriptive)

	stages := []Stage{
		cleanStage{options: settings.Clean},
		metricStage{name: StageFuel, calculator: metrics.NewFuelCostCalculator(metricsConfiguration.Fuel)},
		metricStage{name: StageHandling, calculator: metrics.NewHandlingCostCalculator(metricsConfiguration.Handling)},
		metricStage{name: StageAssetUtilization, calculator: metrics.NewUtilizationCostCalculator(metricsConfiguration.Utilization)},
		metricStage{name: StageInventory, calculator: metrics.NewInventoryHoldingCostCalculator(metricsConfiguration.Inventory)},
		metricStage{name: StageDelay, calculator: metrics.NewDelayPenaltyCalculator(metricsConfiguration.Delay)},
		correlationStage{},
		textReportStage{configuration: settings.TextReport},
	}
	for _, analyzer := range analyzers {
		stages = append(stages, prescriptiveStage{analyzer: analyzer})
	}
	stages = append(stages, combineStage{})

	configured := make([]ConfiguredStage, 0, len(stages))
	for _, stage := range stages {
		required := StageRequiredByDefault(stage.Name())
		if override, overridden := settings.Required[stage.Name()]; overridden {
			required = override
		}
		configured = append(configured, ConfiguredStage{Stage: stage, Required: required})
	}
	return configured
}
