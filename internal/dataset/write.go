package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/temirov/logicost/internal/utils"
)

const timestampOutputLayoutConstant = "2006-01-02 15:04:05"

// WriteCSV writes source columns followed by derived columns.
func (dataset *Dataset) WriteCSV(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	if writeError := csvWriter.Write(dataset.Header()); writeError != nil {
		return writeError
	}
	for recordIndex, record := range dataset.records {
		row := make([]string, 0, len(dataset.sourceHeader)+len(dataset.derivedNames))
		for columnIndex, columnName := range dataset.sourceHeader {
			row = append(row, renderSourceCell(record, columnName, columnIndex))
		}
		for _, columnName := range dataset.derivedNames {
			row = append(row, FormatNumber(dataset.derivedColumns[columnName][recordIndex]))
		}
		if writeError := csvWriter.Write(row); writeError != nil {
			return writeError
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteCSVFile writes the dataset to a file atomically.
func (dataset *Dataset) WriteCSVFile(filePath string) error {
	return utils.WriteFileAtomically(filePath, dataset.WriteCSV)
}

// FormatNumber renders a float without trailing zeros; NaN renders as an empty cell.
func FormatNumber(value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func renderSourceCell(record TripRecord, columnName string, columnIndex int) string {
	switch columnName {
	case ColumnTimestamp:
		if record.TimestampValid {
			return record.Timestamp.Format(timestampOutputLayoutConstant)
		}
	case ColumnAssetID:
		return record.AssetID
	case ColumnDriverID:
		return record.DriverID
	case ColumnTrafficStatus:
		return record.TrafficStatus
	case ColumnDelayReason:
		return record.DelayReason
	}
	if accessor, numeric := numericSourceColumns[columnName]; numeric {
		return FormatNumber(accessor(record))
	}
	if columnIndex < len(record.sourceCells) {
		return record.sourceCells[columnIndex]
	}
	return ""
}
