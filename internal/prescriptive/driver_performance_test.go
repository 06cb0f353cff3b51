package prescriptive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/prescriptive"
)

func TestDriverTierIsPureFunctionOfInputs(testInstance *testing.T) {
	thresholds := prescriptive.DriverTierThresholds{MinimumUtilization: 50, HighPerformerRatio: 1.1, AveragePerformerRatio: 0.9}
	testCases := []struct {
		name               string
		averageEfficiency  float64
		fleetMean          float64
		averageUtilization float64
		expectedTier       string
	}{
		{name: "well above mean", averageEfficiency: 150, fleetMean: 100, averageUtilization: 80, expectedTier: prescriptive.DriverTierHighPerformer},
		{name: "exactly high ratio", averageEfficiency: 110, fleetMean: 100, averageUtilization: 80, expectedTier: prescriptive.DriverTierHighPerformer},
		{name: "exactly average ratio", averageEfficiency: 90, fleetMean: 100, averageUtilization: 80, expectedTier: prescriptive.DriverTierAverage},
		{name: "below mean", averageEfficiency: 50, fleetMean: 100, averageUtilization: 80, expectedTier: prescriptive.DriverTierUnderperformer},
		{name: "low utilization overrides efficiency", averageEfficiency: 500, fleetMean: 100, averageUtilization: 49.9, expectedTier: prescriptive.DriverTierUnderperformer},
		{name: "zero fleet mean", averageEfficiency: 0, fleetMean: 0, averageUtilization: 80, expectedTier: prescriptive.DriverTierAverage},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			firstTier := prescriptive.DriverTier(testCase.averageEfficiency, testCase.fleetMean, testCase.averageUtilization, thresholds)
			secondTier := prescriptive.DriverTier(testCase.averageEfficiency, testCase.fleetMean, testCase.averageUtilization, thresholds)
			require.Equal(testInstance, testCase.expectedTier, firstTier)
			require.Equal(testInstance, firstTier, secondTier)
		})
	}
}

func TestDriverPerformanceAnalyzer(testInstance *testing.T) {
	source := buildTripDataset(testInstance, []testTrip{
		{assetID: "Truck_1", driverID: "D_2", utilization: 80, waitingTime: 1, idleCost: 1},
		{assetID: "Truck_2", driverID: "D_1", utilization: 90, waitingTime: 0, idleCost: 0},
		{assetID: "Truck_3", driverID: "D_3", utilization: 40, waitingTime: 0, idleCost: 0},
	})

	analyzer := prescriptive.NewDriverPerformanceAnalyzer(prescriptive.DefaultConfiguration())
	outcome, analyzeError := analyzer.Analyze(source)
	require.NoError(testInstance, analyzeError)
	require.Len(testInstance, outcome.Tables, 2)

	summary := outcome.Tables[0]
	require.Equal(testInstance, prescriptive.DriverPerformanceSummaryFileNameConstant, summary.FileName)
	requireCell(testInstance, summary, 0, "Driver_ID", "D_1")
	requireCell(testInstance, summary, 0, "Avg_Efficiency", "9000.00")
	requireCell(testInstance, summary, 0, "Performance_Tier", prescriptive.DriverTierHighPerformer)
	requireCell(testInstance, summary, 1, "Performance_Tier", prescriptive.DriverTierUnderperformer)
	requireCell(testInstance, summary, 2, "Performance_Tier", prescriptive.DriverTierUnderperformer)

	insights := outcome.Recommendation
	require.Equal(testInstance, prescriptive.DriverPerformanceInsightsFileNameConstant, insights.FileName)
	requireCell(testInstance, insights, 0, "Benchmark_Driver", "D_1")
	requireCell(testInstance, insights, 0, "Benchmark_Avg_Idle_Cost", "0.00")
	requireCell(testInstance, insights, 0, "Optimal_Avg_Efficiency", "5000.00")
	requireCell(testInstance, insights, 0, "Estimated_Improvement_If_Low_Reaches_Optimal", "2000.00")
	requireCell(testInstance, insights, 0, "Low_Performers_Count", "2")
	requireCell(testInstance, insights, 0, "Drivers_Analyzed", "3")
}
