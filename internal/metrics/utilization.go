package metrics

import "github.com/temirov/logicost/internal/dataset"

const utilizationCalculatorNameConstant = "asset_utilization"

// UtilizationCostCalculator appends Idle_Cost and Cost_per_Asset_Utilization.
// It depends on fuel_cost_estimate.
type UtilizationCostCalculator struct {
	configuration UtilizationConfiguration
}

// NewUtilizationCostCalculator constructs a UtilizationCostCalculator.
func NewUtilizationCostCalculator(configuration UtilizationConfiguration) UtilizationCostCalculator {
	return UtilizationCostCalculator{configuration: configuration}
}

// Name identifies the calculator.
func (calculator UtilizationCostCalculator) Name() string {
	return utilizationCalculatorNameConstant
}

// RequiredColumns lists the consumed columns.
func (calculator UtilizationCostCalculator) RequiredColumns() []string {
	return []string{ColumnFuelCost, dataset.ColumnWaitingTime, dataset.ColumnAssetUtilization}
}

// OutputColumns lists the appended columns.
func (calculator UtilizationCostCalculator) OutputColumns() []string {
	return []string{ColumnIdleCost, ColumnCostPerAssetUtilization}
}

// Compute appends Idle_Cost and Cost_per_Asset_Utilization. Non-positive utilization yields zero cost.
func (calculator UtilizationCostCalculator) Compute(source *dataset.Dataset) (*dataset.Dataset, error) {
	if requireError := requireColumns(calculator, source); requireError != nil {
		return nil, requireError
	}
	fuelCosts, columnError := source.Column(ColumnFuelCost)
	if columnError != nil {
		return nil, columnError
	}

	idleCost := func(record dataset.TripRecord, _ int) float64 {
		return record.WaitingTime * calculator.configuration.IdleCostRate
	}
	costPerUtilization := func(record dataset.TripRecord, recordIndex int) float64 {
		if record.AssetUtilization <= 0 {
			return 0
		}
		return (fuelCosts[recordIndex] + idleCost(record, recordIndex)) / record.AssetUtilization
	}
	return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{idleCost, costPerUtilization})
}
