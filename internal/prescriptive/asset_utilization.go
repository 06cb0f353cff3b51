package prescriptive

import (
	"math"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	// AssetUtilizationAnalyzerNameConstant identifies the utilization range analyzer.
	AssetUtilizationAnalyzerNameConstant = "asset_utilization_optimization"
	// AssetUtilizationResultsFileNameConstant names the utilization range recommendation.
	AssetUtilizationResultsFileNameConstant = "asset_utilization_optimization_results.csv"
	// AssetUtilizationAssetSummaryFileNameConstant names the per-asset efficiency table.
	AssetUtilizationAssetSummaryFileNameConstant = "asset_utilization_optimization_results_asset_summary.csv"
	// AssetUtilizationCostSummaryFileNameConstant names the per-range cost table.
	AssetUtilizationCostSummaryFileNameConstant = "asset_utilization_optimization_results_cost_summary.csv"

	// AssetTierHighPerformer labels assets at or above the upper efficiency quantile.
	AssetTierHighPerformer = "High Performer"
	// AssetTierModeratePerformer labels assets between the quantiles.
	AssetTierModeratePerformer = "Moderate Performer"
	// AssetTierUnderperformer labels assets at or below the lower efficiency quantile.
	AssetTierUnderperformer = "Underperformer"
)

// UtilizationBinning buckets utilization expressed as a fraction of full capacity.
var UtilizationBinning = Binning{
	Lowest: 0,
	Bins: []Bin{
		{Label: "0-40%", Upper: 0.4},
		{Label: "40-60%", Upper: 0.6},
		{Label: "60-80%", Upper: 0.8},
		{Label: "80-100%", Upper: 1.0},
		{Label: "100%+", Upper: math.Inf(1)},
	},
}

// AssetUtilizationAnalyzer recommends the utilization range with the lowest cost per unit of utilization
// and tiers assets by efficiency.
type AssetUtilizationAnalyzer struct {
	configuration Configuration
}

// NewAssetUtilizationAnalyzer constructs an AssetUtilizationAnalyzer.
func NewAssetUtilizationAnalyzer(configuration Configuration) AssetUtilizationAnalyzer {
	return AssetUtilizationAnalyzer{configuration: configuration.Sanitize()}
}

// Name identifies the analyzer.
func (analyzer AssetUtilizationAnalyzer) Name() string {
	return AssetUtilizationAnalyzerNameConstant
}

// RequiredColumns lists the consumed columns.
func (analyzer AssetUtilizationAnalyzer) RequiredColumns() []string {
	return []string{dataset.ColumnAssetID, dataset.ColumnAssetUtilization, metrics.ColumnCostPerAssetUtilization, metrics.ColumnIdleCost}
}

// Analyze summarizes assets and utilization ranges.
func (analyzer AssetUtilizationAnalyzer) Analyze(source *dataset.Dataset) (Outcome, error) {
	if requireError := requireAnalyzerColumns(analyzer, source); requireError != nil {
		return Outcome{}, requireError
	}
	if source.Len() == 0 {
		return emptyDatasetOutcome(analyzer.Name()), nil
	}
	columns, columnError := loadColumns(analyzer, source, dataset.ColumnAssetUtilization, metrics.ColumnCostPerAssetUtilization, metrics.ColumnIdleCost)
	if columnError != nil {
		return Outcome{}, columnError
	}
	utilizations, costs, idleCosts := columns[0], columns[1], columns[2]
	records := source.Records()

	assetSummary := analyzer.summarizeAssets(records, utilizations, costs, idleCosts)

	rangeGroups := groupIndexes(len(records), func(recordIndex int) (int, bool) {
		return UtilizationBinning.Locate(utilizations[recordIndex] / 100)
	}, func(first int, second int) bool { return first < second })

	costSummary := report.NewTable(AssetUtilizationCostSummaryFileNameConstant, "Utilization_Range", "Avg_Cost", "Avg_Utilization", "Samples")
	for _, rangeGroup := range rangeGroups {
		costSummary.AppendRow(
			UtilizationBinning.Label(rangeGroup.key),
			report.FormatDecimal(meanAt(costs, rangeGroup.indexes)),
			report.FormatDecimal(meanAt(utilizations, rangeGroup.indexes)),
			report.FormatInteger(len(rangeGroup.indexes)),
		)
	}

	if len(rangeGroups) == 0 {
		return emptyDatasetOutcome(analyzer.Name()), nil
	}
	bestIndex := argMinimum(len(rangeGroups), func(index int) float64 { return meanAt(costs, rangeGroups[index].indexes) })
	best := rangeGroups[bestIndex]
	optimalAverage := meanAt(costs, best.indexes)
	currentAverage := meanOf(costs)

	results := report.NewTable(AssetUtilizationResultsFileNameConstant,
		"Optimal_Utilization_Range",
		"Min_Avg_Cost_per_Unit",
		"Current_Avg_Cost_per_Unit",
		"Estimated_Savings_Per_Unit",
		"Samples_Analyzed",
	)
	results.AppendRow(
		UtilizationBinning.Label(best.key),
		report.FormatDecimal(optimalAverage),
		report.FormatDecimal(currentAverage),
		report.FormatDecimal(currentAverage-optimalAverage),
		report.FormatInteger(len(best.indexes)),
	)
	return Outcome{Recommendation: results, Tables: []*report.Table{results, assetSummary, costSummary}}, nil
}

func (analyzer AssetUtilizationAnalyzer) summarizeAssets(records []dataset.TripRecord, utilizations []float64, costs []float64, idleCosts []float64) *report.Table {
	assetGroups := groupIndexes(len(records), func(recordIndex int) (string, bool) {
		return records[recordIndex].AssetID, true
	}, func(first string, second string) bool { return first < second })

	efficiencyScores := make([]float64, len(assetGroups))
	for groupIndex, assetGroup := range assetGroups {
		efficiencyScores[groupIndex] = EfficiencyScore(meanAt(utilizations, assetGroup.indexes), meanAt(costs, assetGroup.indexes), analyzer.configuration.EfficiencyEpsilon)
	}
	lowCut := linearQuantile(efficiencyScores, analyzer.configuration.AssetLowQuantile)
	highCut := linearQuantile(efficiencyScores, analyzer.configuration.AssetHighQuantile)

	summary := report.NewTable(AssetUtilizationAssetSummaryFileNameConstant,
		"Asset_ID",
		"Avg_Utilization",
		"Avg_Cost_per_Util",
		"Avg_Idle_Cost",
		"Trips",
		"Efficiency_Score",
		"Performance_Tier",
	)
	for groupIndex, assetGroup := range assetGroups {
		summary.AppendRow(
			assetGroup.key,
			report.FormatDecimal(meanAt(utilizations, assetGroup.indexes)),
			report.FormatDecimal(meanAt(costs, assetGroup.indexes)),
			report.FormatDecimal(meanAt(idleCosts, assetGroup.indexes)),
			report.FormatInteger(len(assetGroup.indexes)),
			report.FormatDecimal(efficiencyScores[groupIndex]),
			AssetTier(efficiencyScores[groupIndex], lowCut, highCut),
		)
	}
	return summary
}

// EfficiencyScore is utilization per unit of cost, rounded to two decimals.
func EfficiencyScore(averageUtilization float64, averageCost float64, epsilon float64) float64 {
	return dataset.Round2(averageUtilization / (averageCost + epsilon))
}

// AssetTier classifies an efficiency score against the lower and upper quantile cuts.
func AssetTier(efficiencyScore float64, lowCut float64, highCut float64) string {
	switch {
	case efficiencyScore >= highCut:
		return AssetTierHighPerformer
	case efficiencyScore <= lowCut:
		return AssetTierUnderperformer
	default:
		return AssetTierModeratePerformer
	}
}
