package pipeline

import (
	"github.com/temirov/logicost/internal/history"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/pipeline"
	"github.com/temirov/logicost/internal/prescriptive"
	"github.com/temirov/logicost/internal/report"
)

// CommandConfiguration captures configuration values consumed by the run command.
type CommandConfiguration struct {
	Pipeline     pipeline.Configuration
	Metrics      metrics.Configuration
	Prescriptive prescriptive.Configuration
	Report       report.TextReportConfiguration
	History      history.Configuration
}

// DefaultCommandConfiguration provides default run command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Pipeline:     pipeline.DefaultConfiguration(),
		Metrics:      metrics.DefaultConfiguration(),
		Prescriptive: prescriptive.DefaultConfiguration(),
		Report:       report.DefaultTextReportConfiguration(),
		History:      history.DefaultConfiguration(),
	}
}

// Sanitize normalizes configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Pipeline = configuration.Pipeline.Sanitize()
	sanitized.Metrics = configuration.Metrics.Sanitize()
	sanitized.Prescriptive = configuration.Prescriptive.Sanitize()
	sanitized.History = configuration.History.Sanitize()
	return sanitized
}

// StageSettings derives the stage settings for a run.
func (configuration CommandConfiguration) StageSettings() pipeline.StageSettings {
	sanitized := configuration.Sanitize()
	settings := pipeline.DefaultStageSettings()
	settings.Clean.DriverPoolSize = sanitized.Pipeline.DriverPoolSize
	settings.Metrics = sanitized.Metrics
	settings.Prescriptive = sanitized.Prescriptive
	settings.TextReport = sanitized.Report
	settings.Required = sanitized.Pipeline.Required
	return settings
}
