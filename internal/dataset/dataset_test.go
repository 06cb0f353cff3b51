package dataset_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/dataset"
)

func loadSmallDataset(testInstance *testing.T) *dataset.Dataset {
	testInstance.Helper()
	filePath := writeTestDataset(testInstance,
		testHeaderConstant,
		"2024-03-04 08:15:00,Truck_1,120,22.5,55,Heavy,30,1,80,In Transit",
		"2024-03-04 09:00:00,Truck_2,50,19,45,Clear,12.5,0,75,Delivered",
	)
	loadedDataset, loadError := dataset.LoadFile(filePath)
	require.NoError(testInstance, loadError)
	return loadedDataset
}

func TestWithColumnReturnsNewDataset(testInstance *testing.T) {
	original := loadSmallDataset(testInstance)

	extended, extendError := original.WithColumn("Fuel_Cost", []float64{10.5, 20})
	require.NoError(testInstance, extendError)
	require.False(testInstance, original.HasColumn("Fuel_Cost"))
	require.True(testInstance, extended.HasColumn("Fuel_Cost"))
	require.Equal(testInstance, []string{"Fuel_Cost"}, extended.DerivedColumnNames())

	values, columnError := extended.Column("Fuel_Cost")
	require.NoError(testInstance, columnError)
	require.Equal(testInstance, []float64{10.5, 20}, values)

	values[0] = 999
	unchanged, _ := extended.Column("Fuel_Cost")
	require.Equal(testInstance, 10.5, unchanged[0])
}

func TestWithColumnErrors(testInstance *testing.T) {
	original := loadSmallDataset(testInstance)

	_, lengthError := original.WithColumn("Fuel_Cost", []float64{1})
	require.ErrorIs(testInstance, lengthError, dataset.ErrLengthMismatch)

	_, sourceDuplicateError := original.WithColumn(dataset.ColumnWaitingTime, []float64{1, 2})
	require.ErrorIs(testInstance, sourceDuplicateError, dataset.ErrDuplicateColumn)

	extended, extendError := original.WithColumn("Fuel_Cost", []float64{1, 2})
	require.NoError(testInstance, extendError)
	_, derivedDuplicateError := extended.WithColumn("Fuel_Cost", []float64{1, 2})
	require.ErrorIs(testInstance, derivedDuplicateError, dataset.ErrDuplicateColumn)
}

func TestColumnReadsNumericSourceColumns(testInstance *testing.T) {
	original := loadSmallDataset(testInstance)

	waitingTimes, columnError := original.Column(dataset.ColumnWaitingTime)
	require.NoError(testInstance, columnError)
	require.Equal(testInstance, []float64{30, 12.5}, waitingTimes)

	_, missingError := original.Column(dataset.ColumnFuelVolume)
	require.ErrorIs(testInstance, missingError, dataset.ErrMissingColumn)

	require.ErrorIs(testInstance, original.Require("Fuel_Cost", dataset.ColumnAssetID), dataset.ErrMissingColumn)
	require.NoError(testInstance, original.Require(dataset.ColumnAssetID))
}

func TestWriteCSVIncludesPassThroughAndDerivedColumns(testInstance *testing.T) {
	extended, extendError := loadSmallDataset(testInstance).WithColumn("Fuel_Cost", []float64{10.5, 20})
	require.NoError(testInstance, extendError)

	var buffer bytes.Buffer
	require.NoError(testInstance, extended.WriteCSV(&buffer))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(testInstance, lines, 3)
	require.Equal(testInstance, testHeaderConstant+",Fuel_Cost", lines[0])
	require.Equal(testInstance, "2024-03-04 08:15:00,Truck_1,120,22.5,55,Heavy,30,1,80,In Transit,10.5", lines[1])
	require.Equal(testInstance, "2024-03-04 09:00:00,Truck_2,50,19,45,Clear,12.5,0,75,Delivered,20", lines[2])
}

func TestWriteCSVFileIsAtomic(testInstance *testing.T) {
	outputPath := filepath.Join(testInstance.TempDir(), "nested", "augmented.csv")
	require.NoError(testInstance, loadSmallDataset(testInstance).WriteCSVFile(outputPath))

	content, readError := os.ReadFile(outputPath)
	require.NoError(testInstance, readError)
	require.True(testInstance, strings.HasPrefix(string(content), testHeaderConstant))

	entries, listError := os.ReadDir(filepath.Dir(outputPath))
	require.NoError(testInstance, listError)
	require.Len(testInstance, entries, 1)
}

func TestRound2(testInstance *testing.T) {
	require.Equal(testInstance, 1.24, dataset.Round2(1.236))
	require.Equal(testInstance, 0.0, dataset.Round2(0.001))
}

func TestColumnReadsNumericPassThroughColumns(testInstance *testing.T) {
	filePath := writeTestDataset(testInstance,
		testHeaderConstant+",Delay_Penalty_Cost",
		"2024-03-04 08:15:00,Truck_1,120,22.5,55,Heavy,30,1,80,In Transit,237.5",
		"2024-03-04 09:00:00,Truck_2,50,19,45,Clear,12.5,0,75,Delivered,",
	)
	loadedDataset, loadError := dataset.LoadFile(filePath)
	require.NoError(testInstance, loadError)

	penalties, columnError := loadedDataset.Column("Delay_Penalty_Cost")
	require.NoError(testInstance, columnError)
	require.Len(testInstance, penalties, 2)
	require.Equal(testInstance, 237.5, penalties[0])
	require.True(testInstance, math.IsNaN(penalties[1]))

	_, textError := loadedDataset.Column("Shipment_Status")
	require.ErrorIs(testInstance, textError, dataset.ErrMissingColumn)
	_, identifierError := loadedDataset.Column(dataset.ColumnAssetID)
	require.ErrorIs(testInstance, identifierError, dataset.ErrMissingColumn)

	require.Contains(testInstance, loadedDataset.NumericColumnNames(), "Delay_Penalty_Cost")
	require.NotContains(testInstance, loadedDataset.NumericColumnNames(), "Shipment_Status")

	_, duplicateError := loadedDataset.WithColumn("Delay_Penalty_Cost", []float64{1, 2})
	require.ErrorIs(testInstance, duplicateError, dataset.ErrDuplicateColumn)
}
