package history_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/logicost/internal/history"
)

func executeHistoryCommand(testInstance *testing.T, configuration history.Configuration, arguments ...string) (string, error) {
	testInstance.Helper()
	builder := history.CommandBuilder{
		LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
		ConfigurationProvider: func() history.Configuration { return configuration },
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	command.SetArgs(arguments)
	outputBuffer := &strings.Builder{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)

	executionError := command.Execute()
	return outputBuffer.String(), executionError
}

func TestHistoryCommandListsRuns(testInstance *testing.T) {
	store, databasePath := openTestStore(testInstance)
	baseTime := time.Date(2024, time.May, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(testInstance, store.RecordRun(context.Background(), testSummary("first-run", baseTime)))
	require.NoError(testInstance, store.RecordRun(context.Background(), testSummary("second-run", baseTime.Add(time.Minute))))

	testCases := []struct {
		name              string
		arguments         []string
		expectedFragments []string
		absentFragments   []string
	}{
		{
			name:              "list_all",
			arguments:         []string{},
			expectedFragments: []string{"RUN ID", "first-run", "second-run", "completed with failures"},
		},
		{
			name:              "list_limited",
			arguments:         []string{"--limit", "1"},
			expectedFragments: []string{"second-run"},
			absentFragments:   []string{"first-run"},
		},
		{
			name:              "stage_details",
			arguments:         []string{"first-run"},
			expectedFragments: []string{"Run first-run", "clean", "traffic", "missing column: Delay_Penalty_Cost", "1.5s"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			configuration := history.Configuration{Enabled: true, DatabasePath: databasePath}
			output, executionError := executeHistoryCommand(testInstance, configuration, testCase.arguments...)
			require.NoError(testInstance, executionError)
			for _, expectedFragment := range testCase.expectedFragments {
				require.Contains(testInstance, output, expectedFragment)
			}
			for _, absentFragment := range testCase.absentFragments {
				require.NotContains(testInstance, output, absentFragment)
			}
		})
	}
}

func TestHistoryCommandReportsEmptyDatabase(testInstance *testing.T) {
	databasePath := filepath.Join(testInstance.TempDir(), "history.db")

	output, executionError := executeHistoryCommand(testInstance, history.Configuration{}, "--database", databasePath)
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, output, "No runs recorded in "+databasePath)
}

func TestHistoryCommandErrors(testInstance *testing.T) {
	databasePath := filepath.Join(testInstance.TempDir(), "history.db")

	testCases := []struct {
		name          string
		configuration history.Configuration
		arguments     []string
		expectedError string
	}{
		{
			name:          "disabled",
			configuration: history.Configuration{Enabled: false, DatabasePath: databasePath},
			expectedError: "run history is disabled; set history.enabled to true",
		},
		{
			name:          "too_many_arguments",
			configuration: history.Configuration{Enabled: true, DatabasePath: databasePath},
			arguments:     []string{"one", "two"},
			expectedError: "history accepts at most one run identifier",
		},
		{
			name:          "unknown_run",
			configuration: history.Configuration{Enabled: true, DatabasePath: databasePath},
			arguments:     []string{"missing"},
			expectedError: "history lookup failed: run not found: missing",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, executionError := executeHistoryCommand(testInstance, testCase.configuration, testCase.arguments...)
			require.EqualError(testInstance, executionError, testCase.expectedError)
		})
	}
}

func TestConfigurationSanitize(testInstance *testing.T) {
	sanitized := history.Configuration{DatabasePath: "  ", ListLimit: -3}.Sanitize()
	require.Equal(testInstance, history.DefaultConfiguration().DatabasePath, sanitized.DatabasePath)
	require.Equal(testInstance, 10, sanitized.ListLimit)
	require.False(testInstance, sanitized.Enabled)
}
