package report

import (
	"math"

	"github.com/temirov/logicost/internal/dataset"
)

const (
	// CorrelationFileNameConstant names the correlation matrix artifact.
	CorrelationFileNameConstant  = "correlation_results.csv"
	correlationPrecisionConstant = 4
)

// CorrelationMatrix computes pairwise Pearson coefficients across every numeric column of the dataset.
// Columns without variance produce empty cells.
func CorrelationMatrix(source *dataset.Dataset) (*Table, error) {
	columnNames := source.NumericColumnNames()
	columns := make([][]float64, len(columnNames))
	for columnIndex, columnName := range columnNames {
		values, columnError := source.Column(columnName)
		if columnError != nil {
			return nil, columnError
		}
		columns[columnIndex] = values
	}

	table := NewTable(CorrelationFileNameConstant, append([]string{""}, columnNames...)...)
	for rowIndex, rowName := range columnNames {
		row := make([]string, 0, len(columnNames)+1)
		row = append(row, rowName)
		for columnIndex := range columnNames {
			coefficient, defined := PearsonCoefficient(columns[rowIndex], columns[columnIndex])
			if !defined {
				row = append(row, "")
				continue
			}
			row = append(row, formatCoefficient(coefficient))
		}
		table.AppendRow(row...)
	}
	return table, nil
}

// PearsonCoefficient returns the correlation of two equal-length series, skipping pairs with a NaN member.
func PearsonCoefficient(first []float64, second []float64) (float64, bool) {
	var count, sumFirst, sumSecond float64
	for index := range first {
		if index >= len(second) || math.IsNaN(first[index]) || math.IsNaN(second[index]) {
			continue
		}
		count++
		sumFirst += first[index]
		sumSecond += second[index]
	}
	if count < 2 {
		return 0, false
	}
	meanFirst := sumFirst / count
	meanSecond := sumSecond / count

	var covariance, varianceFirst, varianceSecond float64
	for index := range first {
		if index >= len(second) || math.IsNaN(first[index]) || math.IsNaN(second[index]) {
			continue
		}
		deviationFirst := first[index] - meanFirst
		deviationSecond := second[index] - meanSecond
		covariance += deviationFirst * deviationSecond
		varianceFirst += deviationFirst * deviationFirst
		varianceSecond += deviationSecond * deviationSecond
	}
	if varianceFirst == 0 || varianceSecond == 0 {
		return 0, false
	}
	coefficient := covariance / math.Sqrt(varianceFirst*varianceSecond)
	return math.Max(-1, math.Min(1, coefficient)), true
}

func formatCoefficient(coefficient float64) string {
	scale := math.Pow(10, correlationPrecisionConstant)
	return dataset.FormatNumber(math.Round(coefficient*scale) / scale)
}
