package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
	"github.com/temirov/logicost/internal/report"
)

func TestInsights(testInstance *testing.T) {
	configuration := report.DefaultTextReportConfiguration()
	testCases := []struct {
		name               string
		averageFuel        float64
		averageWaiting     float64
		averageUtilization float64
		expected           []string
	}{
		{
			name:               "costly and slow",
			averageFuel:        200,
			averageWaiting:     45,
			averageUtilization: 60,
			expected: []string{
				"Fuel costs are relatively high. Consider optimizing routes or reducing idle time.",
				"High waiting time indicates potential scheduling inefficiencies.",
				"Asset utilization is low; consider better load distribution.",
			},
		},
		{
			name:               "healthy fleet",
			averageFuel:        120,
			averageWaiting:     10,
			averageUtilization: 80,
			expected: []string{
				"Fuel costs appear under control compared to utilization.",
				"Waiting time is well managed.",
				"Asset utilization is at a healthy balance.",
			},
		},
		{
			name:               "moderate and saturated",
			averageFuel:        160,
			averageWaiting:     30,
			averageUtilization: 90,
			expected: []string{
				"Fuel costs appear under control compared to utilization.",
				"Waiting times are moderate. Continuous monitoring recommended.",
				"Assets are highly utilized; monitor for overuse or maintenance needs.",
			},
		},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, report.Insights(testCase.averageFuel, testCase.averageWaiting, testCase.averageUtilization, configuration))
		})
	}
}

func TestBuildTextReport(testInstance *testing.T) {
	content := strings.Join([]string{
		"Timestamp,Asset_ID,Inventory_Level,Temperature,Humidity,Traffic_Status,Waiting_Time,Logistics_Delay,Asset_Utilization",
		"2024-03-04 08:00:00,Truck_1,100,20,50,Clear,10,0,80",
		"2024-03-04 09:00:00,Truck_2,200,22,40,Heavy,20,1,90",
	}, "\n")
	loadedDataset, loadError := dataset.Load(strings.NewReader(content))
	require.NoError(testInstance, loadError)

	_, missingError := report.BuildTextReport(loadedDataset, report.DefaultTextReportConfiguration())
	require.ErrorIs(testInstance, missingError, dataset.ErrMissingColumn)

	withFuel, extendError := loadedDataset.WithColumn(metrics.ColumnFuelCost, []float64{1500, 1000.5})
	require.NoError(testInstance, extendError)

	document, buildError := report.BuildTextReport(withFuel, report.DefaultTextReportConfiguration())
	require.NoError(testInstance, buildError)
	require.Equal(testInstance, report.TextReportFileNameConstant, document.FileName)
	require.Contains(testInstance, document.Body, "Average Waiting Time: 15.00 minutes")
	require.Contains(testInstance, document.Body, "Average Fuel Cost Estimate: ₹1,250.25")
	require.Contains(testInstance, document.Body, "Average Asset Utilization: 85.00%")
	require.Contains(testInstance, document.Body, "- Fuel costs are relatively high.")
}
