package prescriptive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/prescriptive"
)

func TestAssetUtilizationAnalyzer(testInstance *testing.T) {
	source := buildTripDataset(testInstance, []testTrip{
		{assetID: "Truck_C", utilization: 30, cost: 3, idleCost: 30},
		{assetID: "Truck_A", utilization: 90, cost: 1, idleCost: 10},
		{assetID: "Truck_B", utilization: 60, cost: 2, idleCost: 20},
	})

	outcome, analyzeError := prescriptive.NewAssetUtilizationAnalyzer(prescriptive.DefaultConfiguration()).Analyze(source)
	require.NoError(testInstance, analyzeError)
	require.Len(testInstance, outcome.Tables, 3)

	results := outcome.Recommendation
	requireCell(testInstance, results, 0, "Optimal_Utilization_Range", "80-100%")
	requireCell(testInstance, results, 0, "Min_Avg_Cost_per_Unit", "1.00")
	requireCell(testInstance, results, 0, "Current_Avg_Cost_per_Unit", "2.00")
	requireCell(testInstance, results, 0, "Estimated_Savings_Per_Unit", "1.00")
	requireCell(testInstance, results, 0, "Samples_Analyzed", "1")

	assetSummary := outcome.Tables[1]
	require.Equal(testInstance, prescriptive.AssetUtilizationAssetSummaryFileNameConstant, assetSummary.FileName)
	requireCell(testInstance, assetSummary, 0, "Asset_ID", "Truck_A")
	requireCell(testInstance, assetSummary, 0, "Efficiency_Score", "90.00")
	requireCell(testInstance, assetSummary, 0, "Performance_Tier", prescriptive.AssetTierHighPerformer)
	requireCell(testInstance, assetSummary, 1, "Performance_Tier", prescriptive.AssetTierModeratePerformer)
	requireCell(testInstance, assetSummary, 2, "Performance_Tier", prescriptive.AssetTierUnderperformer)

	costSummary := outcome.Tables[2]
	require.Equal(testInstance, 3, costSummary.Len())
	requireCell(testInstance, costSummary, 0, "Utilization_Range", "0-40%")
	requireCell(testInstance, costSummary, 1, "Utilization_Range", "40-60%")
	requireCell(testInstance, costSummary, 2, "Utilization_Range", "80-100%")
}

func TestAssetUtilizationAnalyzerOnEmptyDataset(testInstance *testing.T) {
	outcome, analyzeError := prescriptive.NewAssetUtilizationAnalyzer(prescriptive.DefaultConfiguration()).Analyze(buildTripDataset(testInstance, nil))
	require.NoError(testInstance, analyzeError)
	require.False(testInstance, outcome.HasRecommendation())
	require.Len(testInstance, outcome.Warnings, 1)
}

func TestAssetTier(testInstance *testing.T) {
	require.Equal(testInstance, prescriptive.AssetTierHighPerformer, prescriptive.AssetTier(50.4, 23.2, 50.4))
	require.Equal(testInstance, prescriptive.AssetTierUnderperformer, prescriptive.AssetTier(23.2, 23.2, 50.4))
	require.Equal(testInstance, prescriptive.AssetTierModeratePerformer, prescriptive.AssetTier(30, 23.2, 50.4))
	require.Equal(testInstance, 90.0, prescriptive.EfficiencyScore(90, 1, 1e-5))
}
