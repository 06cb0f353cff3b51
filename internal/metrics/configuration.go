package metrics

import "github.com/temirov/logicost/internal/dataset"

// TrafficMultipliers scales a cost by traffic status.
type TrafficMultipliers struct {
	Clear  float64 `mapstructure:"clear"`
	Detour float64 `mapstructure:"detour"`
	Heavy  float64 `mapstructure:"heavy"`
	Other  float64 `mapstructure:"other"`
}

// For returns the multiplier for a traffic status.
func (multipliers TrafficMultipliers) For(trafficStatus string) float64 {
	switch trafficStatus {
	case dataset.TrafficClear:
		return multipliers.Clear
	case dataset.TrafficDetour:
		return multipliers.Detour
	case dataset.TrafficHeavy:
		return multipliers.Heavy
	default:
		return multipliers.Other
	}
}

// FuelConfiguration parameterizes the fuel cost estimate.
type FuelConfiguration struct {
	BaseCost             float64            `mapstructure:"base_cost"`
	UnitPrice            float64            `mapstructure:"unit_price"`
	WaitingSurchargeRate float64            `mapstructure:"waiting_surcharge_rate"`
	Traffic              TrafficMultipliers `mapstructure:"traffic"`
}

// HandlingConfiguration parameterizes the handling cost estimate.
type HandlingConfiguration struct {
	BaseCost             float64            `mapstructure:"base_cost"`
	WaitingRate          float64            `mapstructure:"waiting_rate"`
	DelaySurcharge       float64            `mapstructure:"delay_surcharge"`
	TemperatureSurcharge float64            `mapstructure:"temperature_surcharge"`
	TemperatureMinimum   float64            `mapstructure:"temperature_minimum"`
	TemperatureMaximum   float64            `mapstructure:"temperature_maximum"`
	HumiditySurcharge    float64            `mapstructure:"humidity_surcharge"`
	HumidityMinimum      float64            `mapstructure:"humidity_minimum"`
	HumidityMaximum      float64            `mapstructure:"humidity_maximum"`
	ComplexityFee        float64            `mapstructure:"complexity_fee"`
	InventoryThreshold   float64            `mapstructure:"inventory_threshold"`
	Traffic              TrafficMultipliers `mapstructure:"traffic"`
}

// UtilizationConfiguration parameterizes idle cost and cost per utilization.
type UtilizationConfiguration struct {
	IdleCostRate float64 `mapstructure:"idle_cost_rate"`
}

// InventoryConfiguration parameterizes the inventory holding cost.
type InventoryConfiguration struct {
	HoldingRate float64 `mapstructure:"holding_rate"`
}

// DelayConfiguration parameterizes the delay penalty cost.
type DelayConfiguration struct {
	BasePenalty    float64            `mapstructure:"base_penalty"`
	WaitingRate    float64            `mapstructure:"waiting_rate"`
	DelaySurcharge float64            `mapstructure:"delay_surcharge"`
	Traffic        TrafficMultipliers `mapstructure:"traffic"`
}

// Configuration groups every metric rate.
type Configuration struct {
	Fuel        FuelConfiguration        `mapstructure:"fuel"`
	Handling    HandlingConfiguration    `mapstructure:"handling"`
	Utilization UtilizationConfiguration `mapstructure:"utilization"`
	Inventory   InventoryConfiguration   `mapstructure:"inventory"`
	Delay       DelayConfiguration       `mapstructure:"delay"`
}

// DefaultConfiguration returns the standard cost model.
func DefaultConfiguration() Configuration {
	return Configuration{
		Fuel: FuelConfiguration{
			BaseCost:             100,
			UnitPrice:            1.5,
			WaitingSurchargeRate: 0.1,
			Traffic:              defaultCostTrafficMultipliers(),
		},
		Handling: HandlingConfiguration{
			BaseCost:             50,
			WaitingRate:          0.2,
			DelaySurcharge:       30,
			TemperatureSurcharge: 20,
			TemperatureMinimum:   18,
			TemperatureMaximum:   27,
			HumiditySurcharge:    15,
			HumidityMinimum:      40,
			HumidityMaximum:      75,
			ComplexityFee:        10,
			InventoryThreshold:   400,
			Traffic:              TrafficMultipliers{Clear: 1.0, Detour: 1.1, Heavy: 1.2, Other: 1.0},
		},
		Utilization: UtilizationConfiguration{IdleCostRate: 2},
		Inventory:   InventoryConfiguration{HoldingRate: 0.05},
		Delay: DelayConfiguration{
			BasePenalty:    50,
			WaitingRate:    2.5,
			DelaySurcharge: 75,
			Traffic:        defaultCostTrafficMultipliers(),
		},
	}
}

func defaultCostTrafficMultipliers() TrafficMultipliers {
	return TrafficMultipliers{Clear: 1.0, Detour: 1.2, Heavy: 1.5, Other: 1.0}
}

// Sanitize replaces unset traffic multipliers with their defaults.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	configuration.Fuel.Traffic = configuration.Fuel.Traffic.withDefaults(defaults.Fuel.Traffic)
	configuration.Handling.Traffic = configuration.Handling.Traffic.withDefaults(defaults.Handling.Traffic)
	configuration.Delay.Traffic = configuration.Delay.Traffic.withDefaults(defaults.Delay.Traffic)
	return configuration
}

func (multipliers TrafficMultipliers) withDefaults(defaults TrafficMultipliers) TrafficMultipliers {
	replaceUnset := func(value float64, fallback float64) float64 {
		if value <= 0 {
			return fallback
		}
		return value
	}
	return TrafficMultipliers{
		Clear:  replaceUnset(multipliers.Clear, defaults.Clear),
		Detour: replaceUnset(multipliers.Detour, defaults.Detour),
		Heavy:  replaceUnset(multipliers.Heavy, defaults.Heavy),
		Other:  replaceUnset(multipliers.Other, defaults.Other),
	}
}
