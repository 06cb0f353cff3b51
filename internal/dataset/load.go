package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	inputNotFoundErrorTemplateConstant   = "%w: %s: %v"
	readHeaderErrorTemplateConstant      = "unable to read dataset header: %w"
	malformedRowErrorTemplateConstant    = "%w: line %d: %v"
	duplicateHeaderErrorTemplateConstant = "%w: %s appears more than once in header"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// LoadFile reads a trip dataset from a CSV file.
func LoadFile(filePath string) (*Dataset, error) {
	inputFile, openError := os.Open(filePath)
	if openError != nil {
		if errors.Is(openError, fs.ErrNotExist) || errors.Is(openError, fs.ErrPermission) {
			return nil, fmt.Errorf(inputNotFoundErrorTemplateConstant, ErrInputNotFound, filePath, openError)
		}
		return nil, openError
	}
	defer inputFile.Close()
	return Load(inputFile)
}

// Load reads a trip dataset from CSV content with a header row.
func Load(reader io.Reader) (*Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	rawHeader, headerError := csvReader.Read()
	if headerError != nil {
		if errors.Is(headerError, io.EOF) {
			return nil, ErrEmptyHeader
		}
		return nil, fmt.Errorf(readHeaderErrorTemplateConstant, headerError)
	}

	header := make([]string, len(rawHeader))
	columnIndexes := make(map[string]int, len(rawHeader))
	for columnIndex, rawName := range rawHeader {
		columnName := canonicalColumnName(rawName)
		if _, exists := columnIndexes[columnName]; exists {
			return nil, fmt.Errorf(duplicateHeaderErrorTemplateConstant, ErrDuplicateColumn, columnName)
		}
		header[columnIndex] = columnName
		columnIndexes[columnName] = columnIndex
	}

	skeleton := New(header, nil)
	if requireError := skeleton.Require(RequiredColumns...); requireError != nil {
		return nil, requireError
	}

	records := make([]TripRecord, 0)
	for {
		cells, readError := csvReader.Read()
		if errors.Is(readError, io.EOF) {
			break
		}
		if readError != nil {
			return nil, fmt.Errorf(malformedRowErrorTemplateConstant, ErrMalformedRow, len(records)+2, readError)
		}
		records = append(records, parseRecord(cells, columnIndexes))
	}
	return New(header, records), nil
}

func parseRecord(cells []string, columnIndexes map[string]int) TripRecord {
	cell := func(columnName string) string {
		columnIndex, present := columnIndexes[columnName]
		if !present || columnIndex >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[columnIndex])
	}

	timestamp, timestampValid := parseTimestamp(cell(ColumnTimestamp))
	return TripRecord{
		Timestamp:        timestamp,
		TimestampValid:   timestampValid,
		AssetID:          cell(ColumnAssetID),
		DriverID:         cell(ColumnDriverID),
		InventoryLevel:   parseNumber(cell(ColumnInventoryLevel)),
		Temperature:      parseNumber(cell(ColumnTemperature)),
		Humidity:         parseNumber(cell(ColumnHumidity)),
		TrafficStatus:    cell(ColumnTrafficStatus),
		WaitingTime:      parseNumber(cell(ColumnWaitingTime)),
		AssetUtilization: parseNumber(cell(ColumnAssetUtilization)),
		LogisticsDelay:   parseNumber(cell(ColumnLogisticsDelay)),
		FuelVolume:       parseNumber(cell(ColumnFuelVolume)),
		DelayReason:      cell(ColumnDelayReason),
		sourceCells:      append([]string(nil), cells...),
	}
}

func parseNumber(rawValue string) float64 {
	if len(rawValue) == 0 {
		return math.NaN()
	}
	parsedValue, parseError := strconv.ParseFloat(rawValue, 64)
	if parseError != nil || math.IsInf(parsedValue, 0) {
		return math.NaN()
	}
	return parsedValue
}

func parseTimestamp(rawValue string) (time.Time, bool) {
	if len(rawValue) == 0 {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		parsedTime, parseError := time.Parse(layout, rawValue)
		if parseError == nil {
			return parsedTime, true
		}
	}
	return time.Time{}, false
}
