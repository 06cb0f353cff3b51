package prescriptive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/prescriptive"
)

func TestWeatherAnalyzerSelectsLowestCostBand(testInstance *testing.T) {
	source := buildTripDataset(testInstance, joinTrips(
		repeatTrip(testTrip{assetID: "Truck_1", temperature: 22, humidity: 50, utilization: 80, cost: 2, idleCost: 10}, 5),
		repeatTrip(testTrip{assetID: "Truck_2", temperature: 32, humidity: 85, utilization: 80, cost: 1, idleCost: 10}, 5),
		repeatTrip(testTrip{assetID: "Truck_3", temperature: 40, humidity: 10, utilization: 80, cost: 0.1, idleCost: 0}, 1),
	))

	outcome, analyzeError := prescriptive.NewWeatherAnalyzer(prescriptive.DefaultConfiguration()).Analyze(source)
	require.NoError(testInstance, analyzeError)
	require.True(testInstance, outcome.HasRecommendation())

	results := outcome.Recommendation
	requireCell(testInstance, results, 0, "Optimal_Temp_Range", "30-35°C")
	requireCell(testInstance, results, 0, "Optimal_Humidity_Range", ">80%")
	requireCell(testInstance, results, 0, "Min_Avg_Cost_per_Unit", "1.00")
	requireCell(testInstance, results, 0, "Optimal_Avg_Efficiency", "363.64")
	requireCell(testInstance, results, 0, "Trips_Analyzed", "5")

	details := outcome.Tables[1]
	require.Equal(testInstance, prescriptive.WeatherDetailsFileNameConstant, details.FileName)
	require.Equal(testInstance, 2, details.Len())
	requireCell(testInstance, details, 0, "Temp_Range", "20-25°C")
	requireCell(testInstance, details, 0, "Avg_Efficiency", "242.42")
}

func TestWeatherEfficiency(testInstance *testing.T) {
	require.InDelta(testInstance, 363.636, prescriptive.WeatherEfficiency(80, 1, 10), 1e-3)
	require.InDelta(testInstance, 100, prescriptive.WeatherEfficiency(1, 0, 0), 1e-9)
}
