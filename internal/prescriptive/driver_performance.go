package prescriptive

import (
	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	// DriverPerformanceAnalyzerNameConstant identifies the driver analyzer.
	DriverPerformanceAnalyzerNameConstant = "driver_performance"
	// DriverPerformanceSummaryFileNameConstant names the per-driver table.
	DriverPerformanceSummaryFileNameConstant = "driver_performance_summary.csv"
	// DriverPerformanceInsightsFileNameConstant names the fleet insight row.
	DriverPerformanceInsightsFileNameConstant = "driver_performance_insights.csv"

	// DriverTierHighPerformer labels drivers well above the fleet mean.
	DriverTierHighPerformer = "High Performer"
	// DriverTierAverage labels drivers near the fleet mean.
	DriverTierAverage = "Average"
	// DriverTierUnderperformer labels drivers below the fleet mean or below minimum utilization.
	DriverTierUnderperformer = "Underperformer"

	driverEfficiencyScaleConstant = 100.0
)

// DriverTierThresholds are the fixed cuts of driver classification.
type DriverTierThresholds struct {
	MinimumUtilization    float64
	HighPerformerRatio    float64
	AveragePerformerRatio float64
}

// DriverPerformanceAnalyzer scores drivers by efficiency, tiers them against the fleet mean,
// and names the driver with the lowest average idle cost as benchmark.
type DriverPerformanceAnalyzer struct {
	configuration Configuration
}

// NewDriverPerformanceAnalyzer constructs a DriverPerformanceAnalyzer.
func NewDriverPerformanceAnalyzer(configuration Configuration) DriverPerformanceAnalyzer {
	return DriverPerformanceAnalyzer{configuration: configuration.Sanitize()}
}

// Name identifies the analyzer.
func (analyzer DriverPerformanceAnalyzer) Name() string {
	return DriverPerformanceAnalyzerNameConstant
}

// RequiredColumns lists the consumed columns.
func (analyzer DriverPerformanceAnalyzer) RequiredColumns() []string {
	return []string{dataset.ColumnDriverID, dataset.ColumnAssetUtilization, dataset.ColumnWaitingTime, metrics.ColumnIdleCost}
}

// Thresholds returns the tier cuts in effect.
func (analyzer DriverPerformanceAnalyzer) Thresholds() DriverTierThresholds {
	return DriverTierThresholds{
		MinimumUtilization:    analyzer.configuration.DriverMinimumUtilization,
		HighPerformerRatio:    analyzer.configuration.DriverHighPerformerRatio,
		AveragePerformerRatio: analyzer.configuration.DriverAveragePerformerRatio,
	}
}

// Analyze summarizes every driver.
func (analyzer DriverPerformanceAnalyzer) Analyze(source *dataset.Dataset) (Outcome, error) {
	if requireError := requireAnalyzerColumns(analyzer, source); requireError != nil {
		return Outcome{}, requireError
	}
	if source.Len() == 0 {
		return emptyDatasetOutcome(analyzer.Name()), nil
	}
	columns, columnError := loadColumns(analyzer, source, dataset.ColumnAssetUtilization, dataset.ColumnWaitingTime, metrics.ColumnIdleCost)
	if columnError != nil {
		return Outcome{}, columnError
	}
	utilizations, waitingTimes, idleCosts := columns[0], columns[1], columns[2]
	records := source.Records()

	efficiencies := make([]float64, len(records))
	for recordIndex := range records {
		efficiencies[recordIndex] = DriverEfficiency(utilizations[recordIndex], waitingTimes[recordIndex], idleCosts[recordIndex])
	}

	driverGroups := groupIndexes(len(records), func(recordIndex int) (string, bool) {
		return records[recordIndex].DriverID, true
	}, func(first string, second string) bool { return first < second })

	averageEfficiencies := make([]float64, len(driverGroups))
	for groupIndex, driverGroup := range driverGroups {
		averageEfficiencies[groupIndex] = meanAt(efficiencies, driverGroup.indexes)
	}
	fleetMeanEfficiency := meanOf(averageEfficiencies)
	thresholds := analyzer.Thresholds()

	summary := report.NewTable(DriverPerformanceSummaryFileNameConstant,
		"Driver_ID",
		"Avg_Efficiency",
		"Avg_Asset_Utilization",
		"Avg_Waiting_Time",
		"Avg_Idle_Cost",
		"Trips",
		"Performance_Tier",
	)
	lowPerformerEfficiencies := make([]float64, 0)
	for groupIndex, driverGroup := range driverGroups {
		averageUtilization := meanAt(utilizations, driverGroup.indexes)
		tier := DriverTier(averageEfficiencies[groupIndex], fleetMeanEfficiency, averageUtilization, thresholds)
		if tier == DriverTierUnderperformer {
			lowPerformerEfficiencies = append(lowPerformerEfficiencies, averageEfficiencies[groupIndex])
		}
		summary.AppendRow(
			driverGroup.key,
			report.FormatDecimal(averageEfficiencies[groupIndex]),
			report.FormatDecimal(averageUtilization),
			report.FormatDecimal(meanAt(waitingTimes, driverGroup.indexes)),
			report.FormatDecimal(meanAt(idleCosts, driverGroup.indexes)),
			report.FormatInteger(len(driverGroup.indexes)),
			tier,
		)
	}

	benchmarkIndex := argMinimum(len(driverGroups), func(index int) float64 { return meanAt(idleCosts, driverGroups[index].indexes) })
	benchmark := driverGroups[benchmarkIndex]
	optimalEfficiency := dataset.Round2(fleetMeanEfficiency)
	estimatedImprovement := 0.0
	if len(lowPerformerEfficiencies) > 0 {
		estimatedImprovement = optimalEfficiency - meanOf(lowPerformerEfficiencies)
	}

	insights := report.NewTable(DriverPerformanceInsightsFileNameConstant,
		"Benchmark_Driver",
		"Benchmark_Avg_Idle_Cost",
		"Optimal_Avg_Efficiency",
		"Estimated_Improvement_If_Low_Reaches_Optimal",
		"Low_Performers_Count",
		"Drivers_Analyzed",
	)
	insights.AppendRow(
		benchmark.key,
		report.FormatDecimal(meanAt(idleCosts, benchmark.indexes)),
		report.FormatDecimal(optimalEfficiency),
		report.FormatDecimal(estimatedImprovement),
		report.FormatInteger(len(lowPerformerEfficiencies)),
		report.FormatInteger(len(driverGroups)),
	)
	return Outcome{Recommendation: insights, Tables: []*report.Table{summary, insights}}, nil
}

// DriverEfficiency rewards utilization and penalizes waiting and idle cost.
func DriverEfficiency(utilization float64, waitingTime float64, idleCost float64) float64 {
	return utilization / (waitingTime + 1) * (1 / (idleCost + 1)) * driverEfficiencyScaleConstant
}

// DriverTier classifies a driver from its average efficiency, the fleet mean efficiency, and its average
// utilization. A non-positive fleet mean classifies every sufficiently utilized driver as Average.
func DriverTier(averageEfficiency float64, fleetMeanEfficiency float64, averageUtilization float64, thresholds DriverTierThresholds) string {
	if averageUtilization < thresholds.MinimumUtilization {
		return DriverTierUnderperformer
	}
	ratio := 1.0
	if fleetMeanEfficiency > 0 {
		ratio = averageEfficiency / fleetMeanEfficiency
	}
	switch {
	case ratio >= thresholds.HighPerformerRatio:
		return DriverTierHighPerformer
	case ratio >= thresholds.AveragePerformerRatio:
		return DriverTierAverage
	default:
		return DriverTierUnderperformer
	}
}
