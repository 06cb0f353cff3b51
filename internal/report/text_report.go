package report

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
)

const (
	// TextReportFileNameConstant names the plain-text performance report.
	TextReportFileNameConstant = "summary_report.txt"

	textReportTitleConstant               = "=== LOGISTICS PERFORMANCE REPORT ==="
	textReportInsightsTitleConstant       = "=== INSIGHTS & RECOMMENDATIONS ==="
	textReportWaitingLineTemplateConstant = "Average Waiting Time: %.2f minutes"
	textReportFuelLineTemplateConstant    = "Average Fuel Cost Estimate: %s%.2f"
	textReportUtilLineTemplateConstant    = "Average Asset Utilization: %.2f%%"
	textReportTripsLineTemplateConstant   = "Trips Analyzed: %d"
	textReportInsightPrefixConstant       = "- "
	fuelCostHighInsightConstant           = "Fuel costs are relatively high. Consider optimizing routes or reducing idle time."
	fuelCostControlledInsightConstant     = "Fuel costs appear under control compared to utilization."
	waitingHighInsightConstant            = "High waiting time indicates potential scheduling inefficiencies."
	waitingLowInsightConstant             = "Waiting time is well managed."
	waitingModerateInsightConstant        = "Waiting times are moderate. Continuous monitoring recommended."
	utilizationLowInsightConstant         = "Asset utilization is low; consider better load distribution."
	utilizationHighInsightConstant        = "Assets are highly utilized; monitor for overuse or maintenance needs."
	utilizationBalancedInsightConstant    = "Asset utilization is at a healthy balance."
	textReportColumnErrorTemplateConstant = "text report: %w"
)

// TextReportConfiguration holds the insight thresholds of the text report.
type TextReportConfiguration struct {
	CurrencySymbol  string  `mapstructure:"currency_symbol"`
	FuelCostHigh    float64 `mapstructure:"fuel_cost_high"`
	WaitingTimeHigh float64 `mapstructure:"waiting_time_high"`
	WaitingTimeLow  float64 `mapstructure:"waiting_time_low"`
	UtilizationLow  float64 `mapstructure:"utilization_low"`
	UtilizationHigh float64 `mapstructure:"utilization_high"`
}

// DefaultTextReportConfiguration returns the standard insight thresholds.
func DefaultTextReportConfiguration() TextReportConfiguration {
	return TextReportConfiguration{
		CurrencySymbol:  "₹",
		FuelCostHigh:    160,
		WaitingTimeHigh: 40,
		WaitingTimeLow:  25,
		UtilizationLow:  70,
		UtilizationHigh: 85,
	}
}

// TextReportRequiredColumns lists the columns the text report reads.
var TextReportRequiredColumns = []string{dataset.ColumnWaitingTime, dataset.ColumnAssetUtilization, metrics.ColumnFuelCost}

// BuildTextReport summarizes average waiting time, fuel cost, and utilization with threshold insights.
func BuildTextReport(source *dataset.Dataset, configuration TextReportConfiguration) (Document, error) {
	averages := make(map[string]float64, len(TextReportRequiredColumns))
	for _, columnName := range TextReportRequiredColumns {
		values, columnError := source.Column(columnName)
		if columnError != nil {
			return Document{}, fmt.Errorf(textReportColumnErrorTemplateConstant, columnError)
		}
		averages[columnName] = mean(values)
	}
	averageWaiting := averages[dataset.ColumnWaitingTime]
	averageUtilization := averages[dataset.ColumnAssetUtilization]
	averageFuel := averages[metrics.ColumnFuelCost]

	printer := message.NewPrinter(language.English)
	lines := []string{
		textReportTitleConstant,
		"",
		printer.Sprintf(textReportTripsLineTemplateConstant, source.Len()),
		printer.Sprintf(textReportWaitingLineTemplateConstant, averageWaiting),
		printer.Sprintf(textReportFuelLineTemplateConstant, configuration.CurrencySymbol, averageFuel),
		printer.Sprintf(textReportUtilLineTemplateConstant, averageUtilization),
		"",
		textReportInsightsTitleConstant,
	}
	for _, insight := range Insights(averageFuel, averageWaiting, averageUtilization, configuration) {
		lines = append(lines, textReportInsightPrefixConstant+insight)
	}
	return Document{FileName: TextReportFileNameConstant, Body: strings.Join(lines, "\n") + "\n"}, nil
}

// Insights returns the fuel, waiting, and utilization commentary for the given averages.
func Insights(averageFuel float64, averageWaiting float64, averageUtilization float64, configuration TextReportConfiguration) []string {
	insights := make([]string, 0, 3)
	if averageFuel > configuration.FuelCostHigh {
		insights = append(insights, fuelCostHighInsightConstant)
	} else {
		insights = append(insights, fuelCostControlledInsightConstant)
	}

	switch {
	case averageWaiting > configuration.WaitingTimeHigh:
		insights = append(insights, waitingHighInsightConstant)
	case averageWaiting < configuration.WaitingTimeLow:
		insights = append(insights, waitingLowInsightConstant)
	default:
		insights = append(insights, waitingModerateInsightConstant)
	}

	switch {
	case averageUtilization < configuration.UtilizationLow:
		insights = append(insights, utilizationLowInsightConstant)
	case averageUtilization > configuration.UtilizationHigh:
		insights = append(insights, utilizationHighInsightConstant)
	default:
		insights = append(insights, utilizationBalancedInsightConstant)
	}
	return insights
}

func mean(values []float64) float64 {
	var sum float64
	var count int
	for _, value := range values {
		if math.IsNaN(value) {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
