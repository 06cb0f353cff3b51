package pipeline

import "strings"

const (
	defaultOutputRootConstant   = "data/processed"
	defaultLogDirectoryConstant = "logs"
	defaultInputPathConstant    = "data/raw/smart_logistics_dataset.csv"
	defaultDriverPoolSize       = 10
)

// Configuration describes where a run reads and writes and which stages it executes.
type Configuration struct {
	InputPath         string          `mapstructure:"input"`
	OutputRoot        string          `mapstructure:"output_root"`
	LogDirectory      string          `mapstructure:"log_directory"`
	Stages            string          `mapstructure:"stages"`
	WriteIntermediate bool            `mapstructure:"write_intermediate"`
	DriverPoolSize    int             `mapstructure:"driver_pool_size"`
	Required          map[string]bool `mapstructure:"required"`
}

// DefaultConfiguration returns the standard run layout.
func DefaultConfiguration() Configuration {
	return Configuration{
		InputPath:      defaultInputPathConstant,
		OutputRoot:     defaultOutputRootConstant,
		LogDirectory:   defaultLogDirectoryConstant,
		Stages:         SelectorAll,
		DriverPoolSize: defaultDriverPoolSize,
		Required:       map[string]bool{},
	}
}

// Sanitize trims paths and applies defaults to empty values.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	configuration.InputPath = strings.TrimSpace(configuration.InputPath)
	configuration.OutputRoot = strings.TrimSpace(configuration.OutputRoot)
	configuration.LogDirectory = strings.TrimSpace(configuration.LogDirectory)
	configuration.Stages = strings.TrimSpace(configuration.Stages)
	if len(configuration.InputPath) == 0 {
		configuration.InputPath = defaults.InputPath
	}
	if len(configuration.OutputRoot) == 0 {
		configuration.OutputRoot = defaults.OutputRoot
	}
	if len(configuration.LogDirectory) == 0 {
		configuration.LogDirectory = defaults.LogDirectory
	}
	if len(configuration.Stages) == 0 {
		configuration.Stages = defaults.Stages
	}
	if configuration.DriverPoolSize <= 0 {
		configuration.DriverPoolSize = defaults.DriverPoolSize
	}
	normalizedRequired := make(map[string]bool, len(configuration.Required))
	for stageName, required := range configuration.Required {
		normalizedRequired[strings.ToLower(strings.TrimSpace(stageName))] = required
	}
	configuration.Required = normalizedRequired
	return configuration
}
