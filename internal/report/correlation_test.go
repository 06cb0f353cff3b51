package report_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/report"
)

func TestPearsonCoefficient(testInstance *testing.T) {
	testCases := []struct {
		name            string
		first           []float64
		second          []float64
		expected        float64
		expectedDefined bool
	}{
		{name: "perfect positive", first: []float64{1, 2, 3, 4}, second: []float64{2, 4, 6, 8}, expected: 1, expectedDefined: true},
		{name: "perfect negative", first: []float64{1, 2, 3}, second: []float64{3, 2, 1}, expected: -1, expectedDefined: true},
		{name: "constant series", first: []float64{1, 2, 3}, second: []float64{5, 5, 5}, expectedDefined: false},
		{name: "too few pairs", first: []float64{1, math.NaN()}, second: []float64{2, 3}, expectedDefined: false},
		{name: "missing values skipped", first: []float64{1, math.NaN(), 2, 3}, second: []float64{10, 99, 20, 30}, expected: 1, expectedDefined: true},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			coefficient, defined := report.PearsonCoefficient(testCase.first, testCase.second)
			require.Equal(testInstance, testCase.expectedDefined, defined)
			if testCase.expectedDefined {
				require.InDelta(testInstance, testCase.expected, coefficient, 1e-9)
			}
		})
	}
}

func TestCorrelationMatrixCoversNumericColumns(testInstance *testing.T) {
	content := strings.Join([]string{
		"Timestamp,Asset_ID,Inventory_Level,Temperature,Humidity,Traffic_Status,Waiting_Time,Logistics_Delay",
		"2024-03-04 08:00:00,Truck_1,100,20,50,Clear,10,0",
		"2024-03-04 09:00:00,Truck_2,200,22,40,Heavy,20,1",
		"2024-03-04 10:00:00,Truck_3,300,24,30,Detour,30,0",
	}, "\n")
	loadedDataset, loadError := dataset.Load(strings.NewReader(content))
	require.NoError(testInstance, loadError)

	matrix, matrixError := report.CorrelationMatrix(loadedDataset)
	require.NoError(testInstance, matrixError)
	require.Equal(testInstance, report.CorrelationFileNameConstant, matrix.FileName)
	require.Equal(testInstance, []string{"", "Inventory_Level", "Temperature", "Humidity", "Waiting_Time", "Logistics_Delay"}, matrix.Header)
	require.Equal(testInstance, 5, matrix.Len())

	inventoryWaiting, found := matrix.Value(0, "Waiting_Time")
	require.True(testInstance, found)
	require.Equal(testInstance, "1", inventoryWaiting)

	inventoryHumidity, _ := matrix.Value(0, "Humidity")
	require.Equal(testInstance, "-1", inventoryHumidity)
}
