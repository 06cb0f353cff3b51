package prescriptive_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/metrics"
)

const tripHeaderConstant = "Timestamp,Asset_ID,Driver_ID,Inventory_Level,Temperature,Humidity,Traffic_Status,Waiting_Time,Logistics_Delay,Asset_Utilization"

type testTrip struct {
	timestamp     string
	assetID       string
	driverID      string
	temperature   float64
	humidity      float64
	trafficStatus string
	waitingTime   float64
	utilization   float64
	penalty       float64
	cost          float64
	idleCost      float64
}

func repeatTrip(trip testTrip, count int) []testTrip {
	trips := make([]testTrip, count)
	for index := range trips {
		trips[index] = trip
	}
	return trips
}

func joinTrips(groups ...[]testTrip) []testTrip {
	joined := make([]testTrip, 0)
	for _, group := range groups {
		joined = append(joined, group...)
	}
	return joined
}

func buildTripDataset(testInstance *testing.T, trips []testTrip) *dataset.Dataset {
	testInstance.Helper()
	lines := []string{tripHeaderConstant}
	penalties := make([]float64, len(trips))
	costs := make([]float64, len(trips))
	idleCosts := make([]float64, len(trips))
	for tripIndex, trip := range trips {
		timestamp := trip.timestamp
		if len(timestamp) == 0 {
			timestamp = "2024-03-04 08:00:00"
		}
		trafficStatus := trip.trafficStatus
		if len(trafficStatus) == 0 {
			trafficStatus = dataset.TrafficClear
		}
		lines = append(lines, fmt.Sprintf("%s,%s,%s,100,%g,%g,%s,%g,0,%g",
			timestamp, trip.assetID, trip.driverID, trip.temperature, trip.humidity, trafficStatus, trip.waitingTime, trip.utilization))
		penalties[tripIndex] = trip.penalty
		costs[tripIndex] = trip.cost
		idleCosts[tripIndex] = trip.idleCost
	}

	loadedDataset, loadError := dataset.Load(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	require.NoError(testInstance, loadError)

	withPenalty, penaltyError := loadedDataset.WithColumn(metrics.ColumnDelayPenaltyCost, penalties)
	require.NoError(testInstance, penaltyError)
	withIdle, idleError := withPenalty.WithColumn(metrics.ColumnIdleCost, idleCosts)
	require.NoError(testInstance, idleError)
	withCost, costError := withIdle.WithColumn(metrics.ColumnCostPerAssetUtilization, costs)
	require.NoError(testInstance, costError)
	return withCost
}

func requireCell(testInstance *testing.T, table interface {
	Value(rowIndex int, columnName string) (string, bool)
}, rowIndex int, columnName string, expected string) {
	testInstance.Helper()
	value, found := table.Value(rowIndex, columnName)
	require.True(testInstance, found, columnName)
	require.Equal(testInstance, expected, value, columnName)
}
