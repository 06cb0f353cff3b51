package report

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"

	"github.com/temirov/logicost/internal/utils"
)

const (
	twoDecimalPrecisionConstant = 2
	floatFormatConstant         = 'f'
)

// Table is a named CSV artifact.
type Table struct {
	FileName string
	Header   []string
	Rows     [][]string
}

// NewTable constructs an empty table with the provided header.
func NewTable(fileName string, header ...string) *Table {
	return &Table{FileName: fileName, Header: append([]string(nil), header...)}
}

// AppendRow adds a row of cells.
func (table *Table) AppendRow(cells ...string) {
	table.Rows = append(table.Rows, append([]string(nil), cells...))
}

// Len returns the number of rows.
func (table *Table) Len() int {
	return len(table.Rows)
}

// Value returns the cell in the named column of the given row.
func (table *Table) Value(rowIndex int, columnName string) (string, bool) {
	if rowIndex < 0 || rowIndex >= len(table.Rows) {
		return "", false
	}
	for columnIndex, headerName := range table.Header {
		if headerName == columnName && columnIndex < len(table.Rows[rowIndex]) {
			return table.Rows[rowIndex][columnIndex], true
		}
	}
	return "", false
}

// WriteCSV writes the header followed by every row.
func (table *Table) WriteCSV(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	if writeError := csvWriter.Write(table.Header); writeError != nil {
		return writeError
	}
	if writeError := csvWriter.WriteAll(table.Rows); writeError != nil {
		return writeError
	}
	return csvWriter.Error()
}

// WriteCSVFile atomically writes the table into directory and returns the file path.
func (table *Table) WriteCSVFile(directory string) (string, error) {
	targetPath := filepath.Join(directory, table.FileName)
	if writeError := utils.WriteFileAtomically(targetPath, table.WriteCSV); writeError != nil {
		return "", writeError
	}
	return targetPath, nil
}

// FormatDecimal renders a value with two decimal places.
func FormatDecimal(value float64) string {
	return strconv.FormatFloat(value, floatFormatConstant, twoDecimalPrecisionConstant, 64)
}

// FormatInteger renders an integer cell.
func FormatInteger(value int) string {
	return strconv.Itoa(value)
}
