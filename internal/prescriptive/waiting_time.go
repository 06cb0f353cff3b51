package prescriptive

import (
	"math"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	// WaitingTimeAnalyzerNameConstant identifies the waiting bucket analyzer.
	WaitingTimeAnalyzerNameConstant = "waiting_time"
	// WaitingTimeResultsFileNameConstant names the waiting bucket recommendation.
	WaitingTimeResultsFileNameConstant = "waiting_time_optimization_results.csv"
	// WaitingTimeDetailsFileNameConstant names the per-bucket statistics.
	WaitingTimeDetailsFileNameConstant = "waiting_time_optimization_results_details.csv"
)

// WaitingTimeBinning buckets waiting minutes into ten-minute ranges up to an hour.
var WaitingTimeBinning = Binning{
	Lowest: 0,
	Bins: []Bin{
		{Label: "0-10", Upper: 10},
		{Label: "10-20", Upper: 20},
		{Label: "20-30", Upper: 30},
		{Label: "30-40", Upper: 40},
		{Label: "40-50", Upper: 50},
		{Label: "50-60", Upper: 60},
		{Label: "60+", Upper: math.Inf(1)},
	},
}

// WaitingTimeAnalyzer recommends the waiting time bucket with the lowest average delay penalty.
type WaitingTimeAnalyzer struct {
	configuration Configuration
}

// NewWaitingTimeAnalyzer constructs a WaitingTimeAnalyzer.
func NewWaitingTimeAnalyzer(configuration Configuration) WaitingTimeAnalyzer {
	return WaitingTimeAnalyzer{configuration: configuration.Sanitize()}
}

// Name identifies the analyzer.
func (analyzer WaitingTimeAnalyzer) Name() string {
	return WaitingTimeAnalyzerNameConstant
}

// RequiredColumns lists the consumed columns.
func (analyzer WaitingTimeAnalyzer) RequiredColumns() []string {
	return []string{dataset.ColumnWaitingTime, metrics.ColumnDelayPenaltyCost}
}

// Analyze buckets trips by waiting time.
func (analyzer WaitingTimeAnalyzer) Analyze(source *dataset.Dataset) (Outcome, error) {
	if requireError := requireAnalyzerColumns(analyzer, source); requireError != nil {
		return Outcome{}, requireError
	}
	columns, columnError := loadColumns(analyzer, source, dataset.ColumnWaitingTime, metrics.ColumnDelayPenaltyCost)
	if columnError != nil {
		return Outcome{}, columnError
	}
	waitingTimes, penalties := columns[0], columns[1]

	groups := groupIndexes(len(waitingTimes), func(recordIndex int) (int, bool) {
		return WaitingTimeBinning.Locate(waitingTimes[recordIndex])
	}, func(first int, second int) bool { return first < second })

	details := report.NewTable(WaitingTimeDetailsFileNameConstant, "Waiting_Range", "Avg_Penalty", "Total_Penalty", "Trips")
	eligible := make([]recordGroup[int], 0, len(groups))
	for _, binGroup := range groups {
		if len(binGroup.indexes) < analyzer.configuration.MinimumTrips {
			continue
		}
		eligible = append(eligible, binGroup)
		details.AppendRow(
			WaitingTimeBinning.Label(binGroup.key),
			report.FormatDecimal(meanAt(penalties, binGroup.indexes)),
			report.FormatDecimal(sumAt(penalties, binGroup.indexes)),
			report.FormatInteger(len(binGroup.indexes)),
		)
	}
	if len(eligible) == 0 {
		return noEligibleGroupOutcome(analyzer.Name(), analyzer.configuration.MinimumTrips), nil
	}

	bestIndex := argMinimum(len(eligible), func(index int) float64 { return meanAt(penalties, eligible[index].indexes) })
	best := eligible[bestIndex]
	optimalAverage := meanAt(penalties, best.indexes)
	currentAverage := meanOf(penalties)

	results := report.NewTable(WaitingTimeResultsFileNameConstant,
		"Optimal_Waiting_Range",
		"Min_Avg_Penalty",
		"Current_Avg_Penalty",
		"Estimated_Savings_Per_Trip",
		"Trips_Analyzed",
	)
	results.AppendRow(
		WaitingTimeBinning.Label(best.key),
		report.FormatDecimal(optimalAverage),
		report.FormatDecimal(currentAverage),
		report.FormatDecimal(currentAverage-optimalAverage),
		report.FormatInteger(len(best.indexes)),
	)
	return Outcome{Recommendation: results, Tables: []*report.Table{results, details}}, nil
}
