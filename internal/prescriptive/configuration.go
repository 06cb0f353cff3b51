package prescriptive

// Configuration holds thresholds shared by the prescriptive analyzers.
type Configuration struct {
	MinimumTrips                int     `mapstructure:"min_trips"`
	EfficiencyEpsilon           float64 `mapstructure:"efficiency_epsilon"`
	AssetLowQuantile            float64 `mapstructure:"asset_low_quantile"`
	AssetHighQuantile           float64 `mapstructure:"asset_high_quantile"`
	DriverMinimumUtilization    float64 `mapstructure:"driver_minimum_utilization"`
	DriverHighPerformerRatio    float64 `mapstructure:"driver_high_performer_ratio"`
	DriverAveragePerformerRatio float64 `mapstructure:"driver_average_performer_ratio"`
}

// DefaultConfiguration returns the standard thresholds.
func DefaultConfiguration() Configuration {
	return Configuration{
		MinimumTrips:                5,
		EfficiencyEpsilon:           1e-5,
		AssetLowQuantile:            0.33,
		AssetHighQuantile:           0.67,
		DriverMinimumUtilization:    50,
		DriverHighPerformerRatio:    1.1,
		DriverAveragePerformerRatio: 0.9,
	}
}

// Sanitize replaces out-of-range values with defaults.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	if configuration.MinimumTrips < 1 {
		configuration.MinimumTrips = defaults.MinimumTrips
	}
	if configuration.EfficiencyEpsilon <= 0 {
		configuration.EfficiencyEpsilon = defaults.EfficiencyEpsilon
	}
	if configuration.AssetLowQuantile <= 0 || configuration.AssetHighQuantile >= 1 || configuration.AssetHighQuantile <= configuration.AssetLowQuantile {
		configuration.AssetLowQuantile = defaults.AssetLowQuantile
		configuration.AssetHighQuantile = defaults.AssetHighQuantile
	}
	if configuration.DriverMinimumUtilization < 0 {
		configuration.DriverMinimumUtilization = defaults.DriverMinimumUtilization
	}
	if configuration.DriverAveragePerformerRatio <= 0 || configuration.DriverHighPerformerRatio < configuration.DriverAveragePerformerRatio {
		configuration.DriverHighPerformerRatio = defaults.DriverHighPerformerRatio
		configuration.DriverAveragePerformerRatio = defaults.DriverAveragePerformerRatio
	}
	return configuration
}
