package metrics

import "github.com/temirov/logicost/internal/dataset"

const inventoryCalculatorNameConstant = "inventory_holding_cost"

// InventoryHoldingCostCalculator prices inventory held while an asset waits.
type InventoryHoldingCostCalculator struct {
	configuration InventoryConfiguration
}

// NewInventoryHoldingCostCalculator constructs an InventoryHoldingCostCalculator.
func NewInventoryHoldingCostCalculator(configuration InventoryConfiguration) InventoryHoldingCostCalculator {
	return InventoryHoldingCostCalculator{configuration: configuration}
}

// Name identifies the calculator.
func (calculator InventoryHoldingCostCalculator) Name() string {
	return inventoryCalculatorNameConstant
}

// RequiredColumns lists the consumed columns.
func (calculator InventoryHoldingCostCalculator) RequiredColumns() []string {
	return []string{dataset.ColumnInventoryLevel, dataset.ColumnWaitingTime}
}

// OutputColumns lists the appended columns.
func (calculator InventoryHoldingCostCalculator) OutputColumns() []string {
	return []string{ColumnInventoryHoldingCost}
}

// Compute appends Inventory_Holding_Cost.
func (calculator InventoryHoldingCostCalculator) Compute(source *dataset.Dataset) (*dataset.Dataset, error) {
	if requireError := requireColumns(calculator, source); requireError != nil {
		return nil, requireError
	}
	holdingCost := func(record dataset.TripRecord, _ int) float64 {
		return record.InventoryLevel * calculator.configuration.HoldingRate * (1 + record.WaitingTime/minutesPerHourConstant)
	}
	return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{holdingCost})
}
