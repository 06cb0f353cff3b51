package dataset

import (
	"math"
	"time"
)

// TripRecord is one typed row of the source dataset. Numeric fields hold NaN while missing;
// cleaning replaces every NaN except FuelVolume, which stays NaN when no volume was recorded.
type TripRecord struct {
	Timestamp        time.Time
	TimestampValid   bool
	AssetID          string
	DriverID         string
	InventoryLevel   float64
	Temperature      float64
	Humidity         float64
	TrafficStatus    string
	WaitingTime      float64
	AssetUtilization float64
	LogisticsDelay   float64
	FuelVolume       float64
	DelayReason      string

	sourceCells []string
}

// Delayed reports whether the trip was flagged as a logistics delay.
func (record TripRecord) Delayed() bool {
	return record.LogisticsDelay == 1
}

// HasFuelVolume reports whether a fuel volume was recorded for the trip.
func (record TripRecord) HasFuelVolume() bool {
	return !math.IsNaN(record.FuelVolume)
}

// Hour returns the dispatch hour of day.
func (record TripRecord) Hour() int {
	return record.Timestamp.Hour()
}

// Weekday returns the dispatch day of week.
func (record TripRecord) Weekday() time.Weekday {
	return record.Timestamp.Weekday()
}
