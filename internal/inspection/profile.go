package inspection

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/report"
)

const (
	// ProfileFileNameConstant names the inspection artifact.
	ProfileFileNameConstant = "data_inspection.csv"

	openErrorTemplateConstant   = "%w: %s: %w"
	parseErrorTemplateConstant  = "unable to parse dataset: %w"
	emptyDatasetMessageConstant = "dataset has no columns"
)

var nanCellValues = []string{"", "NA", "NaN", "nan", "<nil>"}

var errEmptyDataset = errors.New(emptyDatasetMessageConstant)

// ColumnProfile summarizes one column.
type ColumnProfile struct {
	Name     string
	Type     string
	Numeric  bool
	Count    int
	Missing  int
	Distinct int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	Median   float64
}

// Profile summarizes a dataset.
type Profile struct {
	Rows                   int
	Columns                []ColumnProfile
	MissingRequiredColumns []string
}

// InspectFile profiles the CSV file at filePath.
func InspectFile(filePath string) (Profile, error) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return Profile{}, fmt.Errorf(openErrorTemplateConstant, dataset.ErrInputNotFound, filePath, openError)
	}
	defer fileHandle.Close()
	return Inspect(fileHandle)
}

// Inspect profiles CSV content with a header row.
func Inspect(reader io.Reader) (Profile, error) {
	frame := dataframe.ReadCSV(reader,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanCellValues),
	)
	if frame.Err != nil {
		return Profile{}, fmt.Errorf(parseErrorTemplateConstant, frame.Err)
	}
	if frame.Ncol() == 0 {
		return Profile{}, errEmptyDataset
	}

	profile := Profile{Rows: frame.Nrow()}
	presentColumns := make(map[string]struct{}, frame.Ncol())
	for _, columnName := range frame.Names() {
		presentColumns[strings.ToLower(strings.TrimSpace(columnName))] = struct{}{}
		profile.Columns = append(profile.Columns, profileColumn(frame.Col(columnName)))
	}
	for _, requiredColumn := range dataset.RequiredColumns {
		if _, present := presentColumns[strings.ToLower(requiredColumn)]; !present {
			profile.MissingRequiredColumns = append(profile.MissingRequiredColumns, requiredColumn)
		}
	}
	return profile, nil
}

func profileColumn(column series.Series) ColumnProfile {
	columnProfile := ColumnProfile{Name: column.Name, Type: string(column.Type())}
	missingFlags := column.IsNaN()
	for _, missing := range missingFlags {
		if missing {
			columnProfile.Missing++
		}
	}
	columnProfile.Count = column.Len() - columnProfile.Missing

	switch column.Type() {
	case series.Int, series.Float:
		columnProfile.Numeric = true
		values := column.Float()
		present := make([]float64, 0, columnProfile.Count)
		for valueIndex, value := range values {
			if missingFlags[valueIndex] || math.IsNaN(value) {
				continue
			}
			present = append(present, value)
		}
		columnProfile.Distinct = distinctFloats(present)
		if len(present) == 0 {
			columnProfile.Mean, columnProfile.StdDev = math.NaN(), math.NaN()
			columnProfile.Min, columnProfile.Max, columnProfile.Median = math.NaN(), math.NaN(), math.NaN()
			return columnProfile
		}
		presentSeries := series.Floats(present)
		columnProfile.Mean = presentSeries.Mean()
		columnProfile.StdDev = presentSeries.StdDev()
		columnProfile.Min = presentSeries.Min()
		columnProfile.Max = presentSeries.Max()
		columnProfile.Median = presentSeries.Median()
	default:
		records := column.Records()
		distinct := make(map[string]struct{}, len(records))
		for recordIndex, record := range records {
			if missingFlags[recordIndex] {
				continue
			}
			distinct[record] = struct{}{}
		}
		columnProfile.Distinct = len(distinct)
		columnProfile.Mean, columnProfile.StdDev = math.NaN(), math.NaN()
		columnProfile.Min, columnProfile.Max, columnProfile.Median = math.NaN(), math.NaN(), math.NaN()
	}
	return columnProfile
}

func distinctFloats(values []float64) int {
	distinct := make(map[float64]struct{}, len(values))
	for _, value := range values {
		distinct[value] = struct{}{}
	}
	return len(distinct)
}

// Table renders the profile as a report table, one row per column.
func (profile Profile) Table() *report.Table {
	table := report.NewTable(ProfileFileNameConstant, "Column", "Type", "Count", "Missing", "Distinct", "Mean", "Std", "Min", "Max", "Median")
	for _, column := range profile.Columns {
		table.AppendRow(
			column.Name,
			column.Type,
			report.FormatInteger(column.Count),
			report.FormatInteger(column.Missing),
			report.FormatInteger(column.Distinct),
			formatStatistic(column.Mean),
			formatStatistic(column.StdDev),
			formatStatistic(column.Min),
			formatStatistic(column.Max),
			formatStatistic(column.Median),
		)
	}
	return table
}

func formatStatistic(value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	return report.FormatDecimal(value)
}
