package dataset

import (
	"fmt"
	"math"
	"strings"
)

const (
	missingColumnsErrorTemplateConstant  = "%w: %s"
	duplicateColumnErrorTemplateConstant = "%w: %s"
	lengthMismatchErrorTemplateConstant  = "%w: column %s has %d values for %d records"
	unknownNumericColumnTemplateConstant = "%w: %s"
	missingColumnsSeparatorConstant      = ", "
)

// Dataset is an ordered, immutable collection of trip records plus derived metric columns.
type Dataset struct {
	sourceHeader   []string
	presentColumns map[string]bool
	records        []TripRecord
	derivedNames   []string
	derivedColumns map[string][]float64
}

// New builds a dataset from a source header and typed records.
func New(sourceHeader []string, records []TripRecord) *Dataset {
	presentColumns := make(map[string]bool, len(sourceHeader))
	for _, columnName := range sourceHeader {
		presentColumns[columnName] = true
	}
	return &Dataset{
		sourceHeader:   append([]string(nil), sourceHeader...),
		presentColumns: presentColumns,
		records:        append([]TripRecord(nil), records...),
		derivedColumns: map[string][]float64{},
	}
}

// Len returns the number of records.
func (dataset *Dataset) Len() int {
	return len(dataset.records)
}

// Records returns a copy of the records in dataset order.
func (dataset *Dataset) Records() []TripRecord {
	return append([]TripRecord(nil), dataset.records...)
}

// Header returns the source columns followed by derived columns in insertion order.
func (dataset *Dataset) Header() []string {
	header := make([]string, 0, len(dataset.sourceHeader)+len(dataset.derivedNames))
	header = append(header, dataset.sourceHeader...)
	header = append(header, dataset.derivedNames...)
	return header
}

// DerivedColumnNames returns the derived column names in insertion order.
func (dataset *Dataset) DerivedColumnNames() []string {
	return append([]string(nil), dataset.derivedNames...)
}

// HasColumn reports whether the dataset provides the named source or derived column.
func (dataset *Dataset) HasColumn(columnName string) bool {
	if dataset.presentColumns[columnName] {
		return true
	}
	_, derived := dataset.derivedColumns[columnName]
	return derived
}

// Require verifies that every named column is present.
func (dataset *Dataset) Require(columnNames ...string) error {
	missingColumns := make([]string, 0)
	for _, columnName := range columnNames {
		if !dataset.HasColumn(columnName) {
			missingColumns = append(missingColumns, columnName)
		}
	}
	if len(missingColumns) > 0 {
		return fmt.Errorf(missingColumnsErrorTemplateConstant, ErrMissingColumn, strings.Join(missingColumns, missingColumnsSeparatorConstant))
	}
	return nil
}

// Column returns a copy of a derived column, a numeric source column, or a pass-through
// column whose non-empty cells all parse as numbers.
func (dataset *Dataset) Column(columnName string) ([]float64, error) {
	if derivedValues, derived := dataset.derivedColumns[columnName]; derived {
		return append([]float64(nil), derivedValues...), nil
	}
	if accessor, numeric := numericSourceColumns[columnName]; numeric && dataset.presentColumns[columnName] {
		values := make([]float64, len(dataset.records))
		for recordIndex, record := range dataset.records {
			values[recordIndex] = accessor(record)
		}
		return values, nil
	}
	if values, numeric := dataset.passThroughValues(columnName); numeric {
		return values, nil
	}
	return nil, fmt.Errorf(unknownNumericColumnTemplateConstant, ErrMissingColumn, columnName)
}

// NumericColumnNames returns present numeric source columns, numeric pass-through columns,
// then derived columns.
func (dataset *Dataset) NumericColumnNames() []string {
	names := make([]string, 0, len(dataset.sourceHeader)+len(dataset.derivedNames))
	for _, columnName := range dataset.sourceHeader {
		if _, numeric := numericSourceColumns[columnName]; numeric {
			names = append(names, columnName)
			continue
		}
		if _, numeric := dataset.passThroughValues(columnName); numeric && len(dataset.records) > 0 {
			names = append(names, columnName)
		}
	}
	return append(names, dataset.derivedNames...)
}

// passThroughValues parses an unrecognized source column. Empty cells become NaN; any other
// unparseable cell marks the column as non-numeric.
func (dataset *Dataset) passThroughValues(columnName string) ([]float64, bool) {
	if !dataset.presentColumns[columnName] || recognizedColumn(columnName) {
		return nil, false
	}
	columnIndex := -1
	for headerIndex, headerName := range dataset.sourceHeader {
		if headerName == columnName {
			columnIndex = headerIndex
			break
		}
	}
	if columnIndex < 0 {
		return nil, false
	}
	values := make([]float64, len(dataset.records))
	observedValues := 0
	for recordIndex, record := range dataset.records {
		rawValue := ""
		if columnIndex < len(record.sourceCells) {
			rawValue = strings.TrimSpace(record.sourceCells[columnIndex])
		}
		values[recordIndex] = parseNumber(rawValue)
		if len(rawValue) == 0 {
			continue
		}
		if math.IsNaN(values[recordIndex]) {
			return nil, false
		}
		observedValues++
	}
	return values, observedValues > 0 || len(dataset.records) == 0
}

// WithColumn returns a new dataset extended with a derived column.
func (dataset *Dataset) WithColumn(columnName string, values []float64) (*Dataset, error) {
	if dataset.HasColumn(columnName) {
		return nil, fmt.Errorf(duplicateColumnErrorTemplateConstant, ErrDuplicateColumn, columnName)
	}
	if len(values) != len(dataset.records) {
		return nil, fmt.Errorf(lengthMismatchErrorTemplateConstant, ErrLengthMismatch, columnName, len(values), len(dataset.records))
	}
	extended := dataset.shallowCopy()
	extended.derivedNames = append(extended.derivedNames, columnName)
	extended.derivedColumns[columnName] = append([]float64(nil), values...)
	return extended, nil
}

func (dataset *Dataset) withRecords(sourceHeader []string, records []TripRecord) *Dataset {
	rebuilt := New(sourceHeader, records)
	for _, columnName := range dataset.derivedNames {
		if len(dataset.derivedColumns[columnName]) == len(records) {
			rebuilt.derivedNames = append(rebuilt.derivedNames, columnName)
			rebuilt.derivedColumns[columnName] = dataset.derivedColumns[columnName]
		}
	}
	return rebuilt
}

func (dataset *Dataset) shallowCopy() *Dataset {
	derivedColumns := make(map[string][]float64, len(dataset.derivedColumns)+1)
	for columnName, values := range dataset.derivedColumns {
		derivedColumns[columnName] = values
	}
	return &Dataset{
		sourceHeader:   dataset.sourceHeader,
		presentColumns: dataset.presentColumns,
		records:        dataset.records,
		derivedNames:   append([]string(nil), dataset.derivedNames...),
		derivedColumns: derivedColumns,
	}
}

// Round2 rounds a value to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
