package metrics

import "github.com/temirov/logicost/internal/dataset"

const delayCalculatorNameConstant = "delay_penalty"

// DelayPenaltyCalculator prices operational disruption from waiting, traffic, and flagged delays.
type DelayPenaltyCalculator struct {
	configuration DelayConfiguration
}

// NewDelayPenaltyCalculator constructs a DelayPenaltyCalculator.
func NewDelayPenaltyCalculator(configuration DelayConfiguration) DelayPenaltyCalculator {
	return DelayPenaltyCalculator{configuration: configuration}
}

// Name identifies the calculator.
func (calculator DelayPenaltyCalculator) Name() string {
	return delayCalculatorNameConstant
}

// RequiredColumns lists the consumed columns.
func (calculator DelayPenaltyCalculator) RequiredColumns() []string {
	return []string{dataset.ColumnWaitingTime, dataset.ColumnTrafficStatus, dataset.ColumnLogisticsDelay}
}

// OutputColumns lists the appended columns.
func (calculator DelayPenaltyCalculator) OutputColumns() []string {
	return []string{ColumnDelayPenaltyCost}
}

// Compute appends Delay_Penalty_Cost.
func (calculator DelayPenaltyCalculator) Compute(source *dataset.Dataset) (*dataset.Dataset, error) {
	if requireError := requireColumns(calculator, source); requireError != nil {
		return nil, requireError
	}
	penalty := func(record dataset.TripRecord, _ int) float64 {
		settings := calculator.configuration
		return settings.BasePenalty +
			record.WaitingTime*settings.WaitingRate*settings.Traffic.For(record.TrafficStatus) +
			indicator(record.Delayed(), settings.DelaySurcharge)
	}
	return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{penalty})
}
