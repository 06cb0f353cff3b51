package prescriptive

import (
	"fmt"

	"github.com/temirov/logicost/internal/dataset"
	"github.com/temirov/logicost/internal/report"
)

const (
	analyzerErrorTemplateConstant          = "%s analysis: %w"
	noEligibleGroupWarningTemplateConstant = "%s: no group has at least %d trips; no recommendation produced"
	noRecordsWarningTemplateConstant       = "%s: dataset is empty; no recommendation produced"
)

// Analyzer produces a recommendation from a dataset carrying cost columns.
type Analyzer interface {
	Name() string
	RequiredColumns() []string
	Analyze(source *dataset.Dataset) (Outcome, error)
}

// Outcome carries the artifacts of one analysis. Recommendation is nil when no group qualified;
// Tables then holds nothing and Warnings explains why.
type Outcome struct {
	Recommendation *report.Table
	Tables         []*report.Table
	Warnings       []string
}

// HasRecommendation reports whether a recommendation was produced.
func (outcome Outcome) HasRecommendation() bool {
	return outcome.Recommendation != nil
}

func noEligibleGroupOutcome(analyzerName string, minimumTrips int) Outcome {
	return Outcome{Warnings: []string{fmt.Sprintf(noEligibleGroupWarningTemplateConstant, analyzerName, minimumTrips)}}
}

func emptyDatasetOutcome(analyzerName string) Outcome {
	return Outcome{Warnings: []string{fmt.Sprintf(noRecordsWarningTemplateConstant, analyzerName)}}
}

func requireAnalyzerColumns(analyzer Analyzer, source *dataset.Dataset) error {
	if requireError := source.Require(analyzer.RequiredColumns()...); requireError != nil {
		return fmt.Errorf(analyzerErrorTemplateConstant, analyzer.Name(), requireError)
	}
	return nil
}

func loadColumns(analyzer Analyzer, source *dataset.Dataset, columnNames ...string) ([][]float64, error) {
	columns := make([][]float64, len(columnNames))
	for columnIndex, columnName := range columnNames {
		values, columnError := source.Column(columnName)
		if columnError != nil {
			return nil, fmt.Errorf(analyzerErrorTemplateConstant, analyzer.Name(), columnError)
		}
		columns[columnIndex] = values
	}
	return columns, nil
}

// StandardAnalyzers returns the five analyzers in canonical order.
func StandardAnalyzers(configuration Configuration) []Analyzer {
	return []Analyzer{
		NewTrafficAnalyzer(configuration),
		NewWaitingTimeAnalyzer(configuration),
		NewAssetUtilizationAnalyzer(configuration),
		NewWeatherAnalyzer(configuration),
		NewDriverPerformanceAnalyzer(configuration),
	}
}
