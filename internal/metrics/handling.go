package metrics

import "github.com/temirov/logicost/internal/dataset"

const handlingCalculatorNameConstant = "handling_cost_estimate"

// HandlingCostCalculator estimates handling cost from waiting, delay, climate, and load complexity.
type HandlingCostCalculator struct {
	configuration HandlingConfiguration
}

// NewHandlingCostCalculator constructs a HandlingCostCalculator.
func NewHandlingCostCalculator(configuration HandlingConfiguration) HandlingCostCalculator {
	return HandlingCostCalculator{configuration: configuration}
}

// Name identifies the calculator.
func (calculator HandlingCostCalculator) Name() string {
	return handlingCalculatorNameConstant
}

// RequiredColumns lists the consumed columns.
func (calculator HandlingCostCalculator) RequiredColumns() []string {
	return []string{
		dataset.ColumnWaitingTime,
		dataset.ColumnLogisticsDelay,
		dataset.ColumnTemperature,
		dataset.ColumnHumidity,
		dataset.ColumnInventoryLevel,
		dataset.ColumnTrafficStatus,
	}
}

// OutputColumns lists the appended columns.
func (calculator HandlingCostCalculator) OutputColumns() []string {
	return []string{ColumnHandlingCost}
}

// Compute appends handling_cost_estimate.
func (calculator HandlingCostCalculator) Compute(source *dataset.Dataset) (*dataset.Dataset, error) {
	if requireError := requireColumns(calculator, source); requireError != nil {
		return nil, requireError
	}
	return appendColumns(calculator.Name(), source, calculator.OutputColumns(), []columnFormula{calculator.estimate})
}

func (calculator HandlingCostCalculator) estimate(record dataset.TripRecord, _ int) float64 {
	settings := calculator.configuration
	temperatureOutOfRange := record.Temperature < settings.TemperatureMinimum || record.Temperature > settings.TemperatureMaximum
	humidityOutOfRange := record.Humidity > settings.HumidityMaximum || record.Humidity < settings.HumidityMinimum

	subtotal := settings.BaseCost +
		record.WaitingTime*settings.WaitingRate +
		indicator(record.Delayed(), settings.DelaySurcharge) +
		indicator(temperatureOutOfRange, settings.TemperatureSurcharge) +
		indicator(humidityOutOfRange, settings.HumiditySurcharge) +
		indicator(record.InventoryLevel > settings.InventoryThreshold, settings.ComplexityFee)
	return subtotal * settings.Traffic.For(record.TrafficStatus)
}
