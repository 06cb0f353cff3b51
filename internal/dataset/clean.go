package dataset

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
)

const (
	defaultDriverPoolSizeConstant    = 10
	driverIdentifierTemplateConstant = "D_%d"
	duplicateKeySeparatorConstant    = "\x1f"
	synthesizedUtilizationFloor      = 20.0
	synthesizedUtilizationCeiling    = 100.0
	synthesizedUtilizationWaitWeight = 0.3
)

// CleanOptions controls dataset cleaning.
type CleanOptions struct {
	DriverPoolSize int
}

// CleanReport summarizes the changes made by Clean.
type CleanReport struct {
	InputRecords             int
	OutputRecords            int
	DroppedInvalidTimestamps int
	DroppedDuplicates        int
	ImputedValues            map[string]int
	ClampedValues            map[string]int
	SynthesizedColumns       []string
}

// Clean returns a cleaned copy of the dataset. Rows with unparseable timestamps and exact
// duplicate rows are dropped, missing values are imputed, negative quantities are clamped,
// and Asset_Utilization and Driver_ID are synthesized when the source lacks them.
func Clean(source *Dataset, options CleanOptions) (*Dataset, CleanReport) {
	driverPoolSize := options.DriverPoolSize
	if driverPoolSize <= 0 {
		driverPoolSize = defaultDriverPoolSizeConstant
	}

	report := CleanReport{
		InputRecords:  source.Len(),
		ImputedValues: map[string]int{},
		ClampedValues: map[string]int{},
	}

	seenRows := make(map[string]struct{}, source.Len())
	records := make([]TripRecord, 0, source.Len())
	for _, record := range source.records {
		if !record.TimestampValid {
			report.DroppedInvalidTimestamps++
			continue
		}
		rowKey := strings.Join(record.sourceCells, duplicateKeySeparatorConstant)
		if _, seen := seenRows[rowKey]; seen {
			report.DroppedDuplicates++
			continue
		}
		seenRows[rowKey] = struct{}{}
		records = append(records, record)
	}

	utilizationPresent := source.presentColumns[ColumnAssetUtilization]
	numericFields := map[string]func(record *TripRecord) *float64{
		ColumnInventoryLevel: func(record *TripRecord) *float64 { return &record.InventoryLevel },
		ColumnTemperature:    func(record *TripRecord) *float64 { return &record.Temperature },
		ColumnHumidity:       func(record *TripRecord) *float64 { return &record.Humidity },
		ColumnWaitingTime:    func(record *TripRecord) *float64 { return &record.WaitingTime },
	}
	if utilizationPresent {
		numericFields[ColumnAssetUtilization] = func(record *TripRecord) *float64 { return &record.AssetUtilization }
	}

	for _, columnName := range sortedKeys(numericFields) {
		fieldAccessor := numericFields[columnName]
		observedValues := make([]float64, 0, len(records))
		for recordIndex := range records {
			if value := *fieldAccessor(&records[recordIndex]); !math.IsNaN(value) {
				observedValues = append(observedValues, value)
			}
		}
		columnMedian := Median(observedValues)
		for recordIndex := range records {
			field := fieldAccessor(&records[recordIndex])
			if math.IsNaN(*field) {
				*field = columnMedian
				report.ImputedValues[columnName]++
			}
		}
	}

	for recordIndex := range records {
		record := &records[recordIndex]
		if len(record.DelayReason) == 0 {
			record.DelayReason = unknownDelayReasonConstant
			report.ImputedValues[ColumnDelayReason]++
		}
		if len(record.TrafficStatus) == 0 {
			record.TrafficStatus = TrafficClear
			report.ImputedValues[ColumnTrafficStatus]++
		}
		if math.IsNaN(record.LogisticsDelay) {
			record.LogisticsDelay = 0
			report.ImputedValues[ColumnLogisticsDelay]++
		}
		clampNegative(&record.WaitingTime, ColumnWaitingTime, report.ClampedValues)
		clampNegative(&record.InventoryLevel, ColumnInventoryLevel, report.ClampedValues)
		clampNegative(&record.FuelVolume, ColumnFuelVolume, report.ClampedValues)
		if utilizationPresent {
			clampNegative(&record.AssetUtilization, ColumnAssetUtilization, report.ClampedValues)
		} else {
			record.AssetUtilization = SynthesizeUtilization(record.WaitingTime)
		}
		if len(record.DriverID) == 0 {
			record.DriverID = AssignDriver(*record, driverPoolSize)
			report.ImputedValues[ColumnDriverID]++
		}
	}

	header := append([]string(nil), source.sourceHeader...)
	for _, optionalColumn := range []string{ColumnAssetUtilization, ColumnDriverID, ColumnDelayReason} {
		if !source.presentColumns[optionalColumn] {
			header = append(header, optionalColumn)
			report.SynthesizedColumns = append(report.SynthesizedColumns, optionalColumn)
		}
	}

	report.OutputRecords = len(records)
	return source.withRecords(header, records), report
}

// SynthesizeUtilization estimates asset utilization from waiting time.
func SynthesizeUtilization(waitingTime float64) float64 {
	estimate := synthesizedUtilizationCeiling - synthesizedUtilizationWaitWeight*waitingTime
	return math.Max(synthesizedUtilizationFloor, math.Min(synthesizedUtilizationCeiling, estimate))
}

// AssignDriver derives a stable driver identifier from the asset and timestamp of a record.
func AssignDriver(record TripRecord, driverPoolSize int) string {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(record.AssetID))
	_, _ = hasher.Write([]byte(duplicateKeySeparatorConstant))
	_, _ = hasher.Write([]byte(record.Timestamp.UTC().Format(timestampOutputLayoutConstant)))
	return fmt.Sprintf(driverIdentifierTemplateConstant, int(hasher.Sum32()%uint32(driverPoolSize))+1)
}

// Median returns the median of the values, or zero when there are none.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sortedValues := append([]float64(nil), values...)
	sort.Float64s(sortedValues)
	middleIndex := len(sortedValues) / 2
	if len(sortedValues)%2 == 1 {
		return sortedValues[middleIndex]
	}
	return (sortedValues[middleIndex-1] + sortedValues[middleIndex]) / 2
}

func clampNegative(field *float64, columnName string, counters map[string]int) {
	if *field < 0 {
		*field = 0
		counters[columnName]++
	}
}

func sortedKeys[Value any](values map[string]Value) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
