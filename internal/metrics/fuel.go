package metrics

import (
	"math"

	"github.com/temirov/logicost/internal/dataset"
)

const (
	fuelCalculatorNameConstant = "fuel_cost_estimate"
	minutesPerHourConstant     = 60.0
	percentScaleConstant       = 100.0
)

// FuelCostCalculator estimates fuel cost per trip. Recorded fuel volume is priced directly;
// otherwise cost grows with under-utilization, traffic, and waiting time.
type FuelCostCalculator struct {
	configuration FuelConfiguration
}

// NewFuelCostCalculator constructs a FuelCostCalculator.
func NewFuelCostCalculator(configuration FuelConfiguration) FuelCostCalculator {
	return FuelCostCalculator{configuration: configuration}
}

// Name identifies the calculator.
func (calculator FuelCostCalculator) Name() string {
	return fuelCalculatorNameConstant
}

// RequiredColumns lists the consumed columns.
func (calculator FuelCostCalculator) RequiredColumns() []string {
	return []string{dataset.ColumnAssetUtilization, dataset.ColumnWaitingTime, dataset.ColumnTrafficStatus}
}

// OutputColumns lists the appended columns.
func (calculator FuelCostCalculator) OutputColumns() []string {
	return []string{ColumnFuelCost}
}

// Compute appends fuel_cost_estimate.
func (calculator FuelCostCalculator) Compute(source *dataset.Dataset) (*dataset.Dataset, error) {
	if requireError := requireColumns(calculator, source); requireError != nil {
		return nil, requireError
	}
	if source.HasColumn(dataset.ColumnFuelVolume) {
		return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{calculator.pricedVolume})
	}
	return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{calculator.estimate})
}

func (calculator FuelCostCalculator) pricedVolume(record dataset.TripRecord, _ int) float64 {
	if !record.HasFuelVolume() {
		return 0
	}
	return record.FuelVolume * calculator.configuration.UnitPrice
}

func (calculator FuelCostCalculator) estimate(record dataset.TripRecord, _ int) float64 {
	utilizationFactor := math.Max(0, 1+(1-record.AssetUtilization/percentScaleConstant))
	waitingFactor := 1 + calculator.configuration.WaitingSurchargeRate*(record.WaitingTime/minutesPerHourConstant)
	return calculator.configuration.BaseCost * utilizationFactor * calculator.configuration.Traffic.For(record.TrafficStatus) * waitingFactor
}
