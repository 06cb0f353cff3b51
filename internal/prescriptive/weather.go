package prescriptive

import (
	"math"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	// WeatherAnalyzerNameConstant identifies the weather band analyzer.
	WeatherAnalyzerNameConstant = "weather"
	// WeatherResultsFileNameConstant names the weather band recommendation.
	WeatherResultsFileNameConstant = "weather_optimization_results.csv"
	// WeatherDetailsFileNameConstant names the per-band statistics.
	WeatherDetailsFileNameConstant = "weather_optimization_results_details.csv"

	weatherEfficiencyScaleConstant = 100.0
)

// TemperatureBinning buckets temperatures in degrees Celsius.
var TemperatureBinning = Binning{
	Lowest: math.Inf(-1),
	Bins: []Bin{
		{Label: "<=20°C", Upper: 20},
		{Label: "20-25°C", Upper: 25},
		{Label: "25-30°C", Upper: 30},
		{Label: "30-35°C", Upper: 35},
		{Label: ">35°C", Upper: math.Inf(1)},
	},
}

// HumidityBinning buckets relative humidity in percent.
var HumidityBinning = Binning{
	Lowest: math.Inf(-1),
	Bins: []Bin{
		{Label: "<=40%", Upper: 40},
		{Label: "40-60%", Upper: 60},
		{Label: "60-80%", Upper: 80},
		{Label: ">80%", Upper: math.Inf(1)},
	},
}

type weatherBand struct {
	temperatureBin int
	humidityBin    int
}

// WeatherAnalyzer recommends the temperature and humidity band with the lowest cost per unit of utilization.
type WeatherAnalyzer struct {
	configuration Configuration
}

// NewWeatherAnalyzer constructs a WeatherAnalyzer.
func NewWeatherAnalyzer(configuration Configuration) WeatherAnalyzer {
	return WeatherAnalyzer{configuration: configuration.Sanitize()}
}

// Name identifies the analyzer.
func (analyzer WeatherAnalyzer) Name() string {
	return WeatherAnalyzerNameConstant
}

// RequiredColumns lists the consumed columns.
func (analyzer WeatherAnalyzer) RequiredColumns() []string {
	return []string{
		dataset.ColumnTemperature,
		dataset.ColumnHumidity,
		dataset.ColumnAssetUtilization,
		metrics.ColumnIdleCost,
		metrics.ColumnCostPerAssetUtilization,
	}
}

// Analyze groups trips into weather bands.
func (analyzer WeatherAnalyzer) Analyze(source *dataset.Dataset) (Outcome, error) {
	if requireError := requireAnalyzerColumns(analyzer, source); requireError != nil {
		return Outcome{}, requireError
	}
	columns, columnError := loadColumns(analyzer, source,
		dataset.ColumnTemperature,
		dataset.ColumnHumidity,
		dataset.ColumnAssetUtilization,
		metrics.ColumnIdleCost,
		metrics.ColumnCostPerAssetUtilization,
	)
	if columnError != nil {
		return Outcome{}, columnError
	}
	temperatures, humidities, utilizations, idleCosts, costs := columns[0], columns[1], columns[2], columns[3], columns[4]

	efficiencies := make([]float64, len(costs))
	for recordIndex := range costs {
		efficiencies[recordIndex] = WeatherEfficiency(utilizations[recordIndex], costs[recordIndex], idleCosts[recordIndex])
	}

	groups := groupIndexes(len(costs), func(recordIndex int) (weatherBand, bool) {
		temperatureBin, temperatureFound := TemperatureBinning.Locate(temperatures[recordIndex])
		humidityBin, humidityFound := HumidityBinning.Locate(humidities[recordIndex])
		return weatherBand{temperatureBin: temperatureBin, humidityBin: humidityBin}, temperatureFound && humidityFound
	}, func(first weatherBand, second weatherBand) bool {
		if first.temperatureBin != second.temperatureBin {
			return first.temperatureBin < second.temperatureBin
		}
		return first.humidityBin < second.humidityBin
	})

	details := report.NewTable(WeatherDetailsFileNameConstant, "Temp_Range", "Humidity_Range", "Avg_Cost", "Avg_Efficiency", "Avg_Utilization", "Trips")
	eligible := make([]recordGroup[weatherBand], 0, len(groups))
	for _, bandGroup := range groups {
		if len(bandGroup.indexes) < analyzer.configuration.MinimumTrips {
			continue
		}
		eligible = append(eligible, bandGroup)
		details.AppendRow(
			TemperatureBinning.Label(bandGroup.key.temperatureBin),
			HumidityBinning.Label(bandGroup.key.humidityBin),
			report.FormatDecimal(meanAt(costs, bandGroup.indexes)),
			report.FormatDecimal(meanAt(efficiencies, bandGroup.indexes)),
			report.FormatDecimal(meanAt(utilizations, bandGroup.indexes)),
			report.FormatInteger(len(bandGroup.indexes)),
		)
	}
	if len(eligible) == 0 {
		return noEligibleGroupOutcome(analyzer.Name(), analyzer.configuration.MinimumTrips), nil
	}

	bestIndex := argMinimum(len(eligible), func(index int) float64 { return meanAt(costs, eligible[index].indexes) })
	best := eligible[bestIndex]
	optimalCost := meanAt(costs, best.indexes)
	currentCost := meanOf(costs)

	results := report.NewTable(WeatherResultsFileNameConstant,
		"Optimal_Temp_Range",
		"Optimal_Humidity_Range",
		"Min_Avg_Cost_per_Unit",
		"Current_Avg_Cost_per_Unit",
		"Estimated_Savings_Per_Unit",
		"Optimal_Avg_Efficiency",
		"Current_Avg_Efficiency",
		"Trips_Analyzed",
	)
	results.AppendRow(
		TemperatureBinning.Label(best.key.temperatureBin),
		HumidityBinning.Label(best.key.humidityBin),
		report.FormatDecimal(optimalCost),
		report.FormatDecimal(currentCost),
		report.FormatDecimal(currentCost-optimalCost),
		report.FormatDecimal(meanAt(efficiencies, best.indexes)),
		report.FormatDecimal(meanOf(efficiencies)),
		report.FormatInteger(len(best.indexes)),
	)
	return Outcome{Recommendation: results, Tables: []*report.Table{results, details}}, nil
}

// WeatherEfficiency rewards utilization and penalizes cost and idle time.
func WeatherEfficiency(utilization float64, costPerUtilization float64, idleCost float64) float64 {
	return utilization / (costPerUtilization + 1) * (1 / (idleCost + 1)) * weatherEfficiencyScaleConstant
}
