package inspection_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/inspection"
)

const testDatasetConstant = `Timestamp,Asset_ID,Inventory_Level,Temperature,Humidity,Traffic_Status,Waiting_Time,Logistics_Delay
2024-03-04 08:00:00,Truck_1,100,20.5,50,Clear,10,0
2024-03-04 09:00:00,Truck_2,200,,60,Heavy,20,1
2024-03-04 10:00:00,Truck_1,300,25.5,70,Clear,30,0
`

func findColumn(testInstance *testing.T, profile inspection.Profile, columnName string) inspection.ColumnProfile {
	testInstance.Helper()
	for _, column := range profile.Columns {
		if column.Name == columnName {
			return column
		}
	}
	require.FailNow(testInstance, "column not profiled", columnName)
	return inspection.ColumnProfile{}
}

func TestInspectProfilesColumns(testInstance *testing.T) {
	profile, inspectionError := inspection.Inspect(strings.NewReader(testDatasetConstant))
	require.NoError(testInstance, inspectionError)
	require.Equal(testInstance, 3, profile.Rows)
	require.Len(testInstance, profile.Columns, 8)
	require.Empty(testInstance, profile.MissingRequiredColumns)

	testCases := []struct {
		column         string
		numeric        bool
		count          int
		missing        int
		distinct       int
		expectedMean   float64
		expectedMedian float64
		expectedMin    float64
		expectedMax    float64
		expectedStd    float64
	}{
		{column: "Inventory_Level", numeric: true, count: 3, distinct: 3, expectedMean: 200, expectedMedian: 200, expectedMin: 100, expectedMax: 300, expectedStd: 100},
		{column: "Temperature", numeric: true, count: 2, missing: 1, distinct: 2, expectedMean: 23, expectedMedian: 23, expectedMin: 20.5, expectedMax: 25.5, expectedStd: math.Sqrt(12.5)},
		{column: "Waiting_Time", numeric: true, count: 3, distinct: 3, expectedMean: 20, expectedMedian: 20, expectedMin: 10, expectedMax: 30, expectedStd: 10},
		{column: "Asset_ID", count: 3, distinct: 2},
		{column: "Traffic_Status", count: 3, distinct: 2},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.column, func(testInstance *testing.T) {
			column := findColumn(testInstance, profile, testCase.column)
			require.Equal(testInstance, testCase.numeric, column.Numeric)
			require.Equal(testInstance, testCase.count, column.Count)
			require.Equal(testInstance, testCase.missing, column.Missing)
			require.Equal(testInstance, testCase.distinct, column.Distinct)
			if !testCase.numeric {
				require.True(testInstance, math.IsNaN(column.Mean))
				return
			}
			require.InDelta(testInstance, testCase.expectedMean, column.Mean, 1e-9)
			require.InDelta(testInstance, testCase.expectedMedian, column.Median, 1e-9)
			require.InDelta(testInstance, testCase.expectedMin, column.Min, 1e-9)
			require.InDelta(testInstance, testCase.expectedMax, column.Max, 1e-9)
			require.InDelta(testInstance, testCase.expectedStd, column.StdDev, 1e-9)
		})
	}
}

func TestInspectListsMissingRequiredColumns(testInstance *testing.T) {
	content := "Timestamp,Asset_ID,Waiting_Time\n2024-03-04 08:00:00,Truck_1,10\n"

	profile, inspectionError := inspection.Inspect(strings.NewReader(content))
	require.NoError(testInstance, inspectionError)
	require.Equal(testInstance, []string{
		dataset.ColumnInventoryLevel,
		dataset.ColumnTemperature,
		dataset.ColumnHumidity,
		dataset.ColumnTrafficStatus,
		dataset.ColumnLogisticsDelay,
	}, profile.MissingRequiredColumns)
}

func TestInspectFileReportsMissingInput(testInstance *testing.T) {
	_, inspectionError := inspection.InspectFile(filepath.Join(testInstance.TempDir(), "absent.csv"))
	require.ErrorIs(testInstance, inspectionError, dataset.ErrInputNotFound)
}

func TestProfileTableFormatsStatistics(testInstance *testing.T) {
	profile, inspectionError := inspection.Inspect(strings.NewReader(testDatasetConstant))
	require.NoError(testInstance, inspectionError)

	table := profile.Table()
	require.Equal(testInstance, inspection.ProfileFileNameConstant, table.FileName)
	require.Equal(testInstance, 8, table.Len())
	require.Equal(testInstance, []string{"Temperature", "float", "2", "1", "2", "23.00", "3.54", "20.50", "25.50", "23.00"}, table.Rows[3])
	require.Equal(testInstance, "", table.Rows[1][5])
}

func writeTestDataset(testInstance *testing.T) string {
	testInstance.Helper()
	inputPath := filepath.Join(testInstance.TempDir(), "trips.csv")
	require.NoError(testInstance, os.WriteFile(inputPath, []byte(testDatasetConstant), 0o644))
	return inputPath
}
