package report

const (
	// MasterSummaryFileNameConstant names the merged prescriptive summary.
	MasterSummaryFileNameConstant = "prescriptive_master_summary.csv"
	// ModuleNameColumnConstant labels the originating module of each merged row.
	ModuleNameColumnConstant = "Module_Name"
)

// ModuleTable associates a recommendation table with the module that produced it.
type ModuleTable struct {
	ModuleName string
	Table      *Table
}

// MasterSummary merges recommendation tables into one table. The header is Module_Name followed by
// the union of all column names in first-seen order; cells absent from a source table are empty.
func MasterSummary(moduleTables []ModuleTable) *Table {
	header := []string{ModuleNameColumnConstant}
	columnPositions := map[string]int{ModuleNameColumnConstant: 0}
	for _, moduleTable := range moduleTables {
		if moduleTable.Table == nil {
			continue
		}
		for _, columnName := range moduleTable.Table.Header {
			if _, known := columnPositions[columnName]; !known {
				columnPositions[columnName] = len(header)
				header = append(header, columnName)
			}
		}
	}

	summary := NewTable(MasterSummaryFileNameConstant, header...)
	for _, moduleTable := range moduleTables {
		if moduleTable.Table == nil {
			continue
		}
		for _, sourceRow := range moduleTable.Table.Rows {
			mergedRow := make([]string, len(header))
			mergedRow[0] = moduleTable.ModuleName
			for columnIndex, columnName := range moduleTable.Table.Header {
				if columnIndex < len(sourceRow) {
					mergedRow[columnPositions[columnName]] = sourceRow[columnIndex]
				}
			}
			summary.AppendRow(mergedRow...)
		}
	}
	return summary
}
