package prescriptive

import (
	"time"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

const (
	// TrafficAnalyzerNameConstant identifies the dispatch slot analyzer.
	TrafficAnalyzerNameConstant = "traffic"
	// TrafficResultsFileNameConstant names the dispatch slot recommendations.
	TrafficResultsFileNameConstant = "traffic_optimization_results.csv"

	trafficDayColumnConstant      = "Day_Of_Week"
	trafficHourColumnConstant     = "Recommended_Hour"
	trafficStatusColumnConstant   = "Traffic_Status"
	trafficPenaltyColumnConstant  = "Min_Avg_Penalty"
	trafficTotalColumnConstant    = "Total_Penalty"
	trafficTripsColumnConstant    = "Trips_Analyzed"
	trafficWeightedColumnConstant = "Weighted_Penalty"
	trafficRankColumnConstant     = "Rank"
)

type dispatchSlot struct {
	weekday       time.Weekday
	hour          int
	trafficStatus string
}

type dispatchSlotSummary struct {
	slot            dispatchSlot
	averagePenalty  float64
	totalPenalty    float64
	trips           int
	weightedPenalty float64
}

// TrafficAnalyzer recommends, for each weekday, the dispatch hour and traffic condition with the lowest
// trip-weighted delay penalty.
type TrafficAnalyzer struct {
	configuration Configuration
}

// NewTrafficAnalyzer constructs a TrafficAnalyzer.
func NewTrafficAnalyzer(configuration Configuration) TrafficAnalyzer {
	return TrafficAnalyzer{configuration: configuration.Sanitize()}
}

// Name identifies the analyzer.
func (analyzer TrafficAnalyzer) Name() string {
	return TrafficAnalyzerNameConstant
}

// RequiredColumns lists the consumed columns.
func (analyzer TrafficAnalyzer) RequiredColumns() []string {
	return []string{dataset.ColumnTimestamp, dataset.ColumnTrafficStatus, metrics.ColumnDelayPenaltyCost}
}

// Analyze groups trips by weekday, hour, and traffic status.
func (analyzer TrafficAnalyzer) Analyze(source *dataset.Dataset) (Outcome, error) {
	if requireError := requireAnalyzerColumns(analyzer, source); requireError != nil {
		return Outcome{}, requireError
	}
	columns, columnError := loadColumns(analyzer, source, metrics.ColumnDelayPenaltyCost)
	if columnError != nil {
		return Outcome{}, columnError
	}
	penalties := columns[0]
	records := source.Records()

	groups := groupIndexes(len(records), func(recordIndex int) (dispatchSlot, bool) {
		record := records[recordIndex]
		return dispatchSlot{weekday: record.Weekday(), hour: record.Hour(), trafficStatus: record.TrafficStatus}, record.TimestampValid
	}, lessDispatchSlot)

	summaries := make([]dispatchSlotSummary, 0, len(groups))
	maximumTrips := 0
	for _, slotGroup := range groups {
		if len(slotGroup.indexes) < analyzer.configuration.MinimumTrips {
			continue
		}
		summaries = append(summaries, dispatchSlotSummary{
			slot:           slotGroup.key,
			averagePenalty: meanAt(penalties, slotGroup.indexes),
			totalPenalty:   sumAt(penalties, slotGroup.indexes),
			trips:          len(slotGroup.indexes),
		})
		if len(slotGroup.indexes) > maximumTrips {
			maximumTrips = len(slotGroup.indexes)
		}
	}
	if len(summaries) == 0 {
		return noEligibleGroupOutcome(analyzer.Name(), analyzer.configuration.MinimumTrips), nil
	}
	for summaryIndex := range summaries {
		summaries[summaryIndex].weightedPenalty = summaries[summaryIndex].averagePenalty * float64(summaries[summaryIndex].trips) / float64(maximumTrips)
	}

	selected := make([]dispatchSlotSummary, 0, 7)
	for groupStart := 0; groupStart < len(summaries); {
		groupEnd := groupStart
		for groupEnd < len(summaries) && summaries[groupEnd].slot.weekday == summaries[groupStart].slot.weekday {
			groupEnd++
		}
		daySummaries := summaries[groupStart:groupEnd]
		bestIndex := argMinimum(len(daySummaries), func(index int) float64 { return daySummaries[index].weightedPenalty })
		selected = append(selected, daySummaries[bestIndex])
		groupStart = groupEnd
	}

	averagePenalties := make([]float64, len(selected))
	for selectedIndex, summary := range selected {
		averagePenalties[selectedIndex] = summary.averagePenalty
	}
	ranks := competitionRanks(averagePenalties)

	results := report.NewTable(TrafficResultsFileNameConstant,
		trafficDayColumnConstant,
		trafficHourColumnConstant,
		trafficStatusColumnConstant,
		trafficPenaltyColumnConstant,
		trafficTotalColumnConstant,
		trafficTripsColumnConstant,
		trafficWeightedColumnConstant,
		trafficRankColumnConstant,
	)
	for selectedIndex, summary := range selected {
		results.AppendRow(
			summary.slot.weekday.String(),
			report.FormatInteger(summary.slot.hour),
			summary.slot.trafficStatus,
			report.FormatDecimal(summary.averagePenalty),
			report.FormatDecimal(summary.totalPenalty),
			report.FormatInteger(summary.trips),
			report.FormatDecimal(summary.weightedPenalty),
			report.FormatInteger(ranks[selectedIndex]),
		)
	}
	return Outcome{Recommendation: results, Tables: []*report.Table{results}}, nil
}

// mondayFirstIndex maps Monday to zero and Sunday to six.
func mondayFirstIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

func lessDispatchSlot(first dispatchSlot, second dispatchSlot) bool {
	if first.weekday != second.weekday {
		return mondayFirstIndex(first.weekday) < mondayFirstIndex(second.weekday)
	}
	if first.hour != second.hour {
		return first.hour < second.hour
	}
	return first.trafficStatus < second.trafficStatus
}
