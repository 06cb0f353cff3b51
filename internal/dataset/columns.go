package dataset

import "strings"

// Source column names recognized in trip datasets.
const (
	ColumnTimestamp        = "Timestamp"
	ColumnAssetID          = "Asset_ID"
	ColumnDriverID         = "Driver_ID"
	ColumnInventoryLevel   = "Inventory_Level"
	ColumnTemperature      = "Temperature"
	ColumnHumidity         = "Humidity"
	ColumnTrafficStatus    = "Traffic_Status"
	ColumnWaitingTime      = "Waiting_Time"
	ColumnAssetUtilization = "Asset_Utilization"
	ColumnLogisticsDelay   = "Logistics_Delay"
	ColumnFuelVolume       = "Fuel_Volume"
	ColumnDelayReason      = "Logistics_Delay_Reason"
)

// Traffic status values with dedicated cost multipliers.
const (
	TrafficClear  = "Clear"
	TrafficDetour = "Detour"
	TrafficHeavy  = "Heavy"
)

const unknownDelayReasonConstant = "Unknown"

// RequiredColumns lists the source columns every input dataset must provide.
var RequiredColumns = []string{
	ColumnTimestamp,
	ColumnAssetID,
	ColumnInventoryLevel,
	ColumnTemperature,
	ColumnHumidity,
	ColumnTrafficStatus,
	ColumnWaitingTime,
	ColumnLogisticsDelay,
}

// OptionalColumns lists recognized source columns that may be absent.
var OptionalColumns = []string{
	ColumnAssetUtilization,
	ColumnDriverID,
	ColumnFuelVolume,
	ColumnDelayReason,
}

var numericSourceColumns = map[string]func(record TripRecord) float64{
	ColumnInventoryLevel:   func(record TripRecord) float64 { return record.InventoryLevel },
	ColumnTemperature:      func(record TripRecord) float64 { return record.Temperature },
	ColumnHumidity:         func(record TripRecord) float64 { return record.Humidity },
	ColumnWaitingTime:      func(record TripRecord) float64 { return record.WaitingTime },
	ColumnAssetUtilization: func(record TripRecord) float64 { return record.AssetUtilization },
	ColumnLogisticsDelay:   func(record TripRecord) float64 { return record.LogisticsDelay },
	ColumnFuelVolume:       func(record TripRecord) float64 { return record.FuelVolume },
}

func recognizedColumn(columnName string) bool {
	for _, knownName := range append(append([]string{}, RequiredColumns...), OptionalColumns...) {
		if knownName == columnName {
			return true
		}
	}
	return false
}

func canonicalColumnName(rawName string) string {
	trimmedName := strings.TrimSpace(strings.TrimPrefix(rawName, "\uFEFF"))
	for _, knownName := range append(append([]string{}, RequiredColumns...), OptionalColumns...) {
		if strings.EqualFold(knownName, trimmedName) {
			return knownName
		}
	}
	return trimmedName
}
