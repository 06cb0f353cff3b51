package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/report"
)

func TestTableWriteCSVFile(testInstance *testing.T) {
	table := report.NewTable("waiting_time_optimization_results.csv", "Optimal_Waiting_Range", "Min_Avg_Penalty")
	table.AppendRow("0-10", report.FormatDecimal(52.456))

	outputDirectory := filepath.Join(testInstance.TempDir(), "run")
	writtenPath, writeError := table.WriteCSVFile(outputDirectory)
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, filepath.Join(outputDirectory, table.FileName), writtenPath)

	content, readError := os.ReadFile(writtenPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "Optimal_Waiting_Range,Min_Avg_Penalty\n0-10,52.46\n", string(content))
}

func TestTableValue(testInstance *testing.T) {
	table := report.NewTable("details.csv", "Range", "Trips")
	table.AppendRow("10-20", report.FormatInteger(7))

	value, found := table.Value(0, "Trips")
	require.True(testInstance, found)
	require.Equal(testInstance, "7", value)

	_, missingColumn := table.Value(0, "Penalty")
	require.False(testInstance, missingColumn)
	_, missingRow := table.Value(3, "Trips")
	require.False(testInstance, missingRow)
}

func TestDocumentWriteFile(testInstance *testing.T) {
	document := report.Document{FileName: "summary_report.txt", Body: "hello\n"}
	writtenPath, writeError := document.WriteFile(testInstance.TempDir())
	require.NoError(testInstance, writeError)

	content, readError := os.ReadFile(writtenPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "hello\n", string(content))
}
