package metrics

import (
	"fmt"
	"math"

	"github.com/temirov/logicost/internal/dataset"
)

// Derived column names.
const (
	ColumnFuelCost                    = "fuel_cost_estimate"
	ColumnHandlingCost                = "handling_cost_estimate"
	ColumnIdleCost                    = "Idle_Cost"
	ColumnCostPerAssetUtilization     = "Cost_per_Asset_Utilization"
	ColumnInventoryHoldingCost        = "Inventory_Holding_Cost"
	ColumnDelayPenaltyCost            = "Delay_Penalty_Cost"
	metricAppendErrorTemplateConstant = "metric %s: %w"
)

// Calculator appends one or more derived cost columns to a dataset.
type Calculator interface {
	Name() string
	RequiredColumns() []string
	OutputColumns() []string
	Compute(source *dataset.Dataset) (*dataset.Dataset, error)
}

type columnFormula func(record dataset.TripRecord, recordIndex int) float64

// appendColumns evaluates each formula for every record and appends the rounded, non-negative results.
func appendColumns(calculatorName string, source *dataset.Dataset, columnNames []string, formulas []columnFormula) (*dataset.Dataset, error) {
	records := source.Records()
	result := source
	for formulaIndex, formula := range formulas {
		values := make([]float64, len(records))
		for recordIndex, record := range records {
			values[recordIndex] = normalizeCost(formula(record, recordIndex))
		}
		extended, appendError := result.WithColumn(columnNames[formulaIndex], values)
		if appendError != nil {
			return nil, fmt.Errorf(metricAppendErrorTemplateConstant, calculatorName, appendError)
		}
		result = extended
	}
	return result, nil
}

func normalizeCost(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return dataset.Round2(value)
}

func indicator(condition bool, amount float64) float64 {
	if condition {
		return amount
	}
	return 0
}

func requireColumns(calculator Calculator, source *dataset.Dataset) error {
	if requireError := source.Require(calculator.RequiredColumns()...); requireError != nil {
		return fmt.Errorf(metricAppendErrorTemplateConstant, calculator.Name(), requireError)
	}
	return nil
}

// StandardCalculators returns the five calculators in dependency order.
func StandardCalculators(configuration Configuration) []Calculator {
	return []Calculator{
		NewFuelCostCalculator(configuration.Fuel),
		NewHandlingCostCalculator(configuration.Handling),
		NewUtilizationCostCalculator(configuration.Utilization),
		NewInventoryHoldingCostCalculator(configuration.Inventory),
		NewDelayPenaltyCalculator(configuration.Delay),
	}
}
