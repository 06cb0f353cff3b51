package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/history"
	"github.com/temirov/logicost/internal/pipeline"
)

func openTestStore(testInstance *testing.T) (*history.Store, string) {
	testInstance.Helper()
	databasePath := filepath.Join(testInstance.TempDir(), "nested", "history.db")
	store, openError := history.OpenStore(context.Background(), databasePath)
	require.NoError(testInstance, openError)
	testInstance.Cleanup(func() { require.NoError(testInstance, store.Close()) })
	return store, databasePath
}

func testSummary(runID string, startedAt time.Time) pipeline.Summary {
	return pipeline.Summary{
		RunID:        runID,
		InputPath:    "data/raw/trips.csv",
		RunDirectory: "data/processed/run_" + runID,
		LogFilePath:  "logs/pipeline_log_" + runID + ".txt",
		StartedAt:    startedAt,
		FinishedAt:   startedAt.Add(2 * time.Second),
		Records:      120,
		Stages: []pipeline.StageSummary{
			{Name: pipeline.StageClean, Group: pipeline.GroupAnalysis, Required: true, Status: pipeline.StageStatusSucceeded, Duration: 1500 * time.Millisecond, Artifacts: []string{"a.csv"}},
			{Name: pipeline.StageTraffic, Group: pipeline.GroupPrescriptive, Status: pipeline.StageStatusFailed, Error: "stage traffic: missing column: Delay_Penalty_Cost"},
			{Name: pipeline.StageCombine, Group: pipeline.GroupPrescriptive, Status: pipeline.StageStatusSucceeded, Warnings: []string{"no recommendations"}},
		},
	}
}

func TestStoreRecordsAndListsRuns(testInstance *testing.T) {
	store, _ := openTestStore(testInstance)
	executionContext := context.Background()
	baseTime := time.Date(2024, time.May, 6, 7, 8, 9, 0, time.UTC)

	require.NoError(testInstance, store.RecordRun(executionContext, testSummary("first", baseTime)))
	require.NoError(testInstance, store.RecordRun(executionContext, testSummary("second", baseTime.Add(time.Hour))))
	require.NoError(testInstance, store.RecordRun(executionContext, testSummary("third", baseTime.Add(500*time.Millisecond))))

	runs, listError := store.RecentRuns(executionContext, 2)
	require.NoError(testInstance, listError)
	require.Len(testInstance, runs, 2)
	require.Equal(testInstance, "second", runs[0].RunID)
	require.Equal(testInstance, "third", runs[1].RunID)

	run := runs[0]
	require.Equal(testInstance, 120, run.Records)
	require.Equal(testInstance, 2, run.Succeeded)
	require.Equal(testInstance, 1, run.Failed)
	require.Equal(testInstance, 0, run.Skipped)
	require.False(testInstance, run.Aborted)
	require.True(testInstance, baseTime.Add(time.Hour).Equal(run.StartedAt))
	require.Equal(testInstance, 2*time.Second, run.Duration())
}

func TestStoreReturnsStageRunsInOrder(testInstance *testing.T) {
	store, _ := openTestStore(testInstance)
	executionContext := context.Background()
	require.NoError(testInstance, store.RecordRun(executionContext, testSummary("run", time.Now())))

	stages, stagesError := store.StageRuns(executionContext, "run")
	require.NoError(testInstance, stagesError)
	require.Equal(testInstance, []history.StageRecord{
		{RunID: "run", Position: 1, Name: "clean", Group: "analysis", Required: true, Status: "succeeded", Duration: 1500 * time.Millisecond, Artifacts: 1},
		{RunID: "run", Position: 2, Name: "traffic", Group: "prescriptive", Status: "failed", Error: "stage traffic: missing column: Delay_Penalty_Cost"},
		{RunID: "run", Position: 3, Name: "combine", Group: "prescriptive", Status: "succeeded", Warnings: 1},
	}, stages)
}

func TestStoreReplacesRecordedRun(testInstance *testing.T) {
	store, _ := openTestStore(testInstance)
	executionContext := context.Background()
	summary := testSummary("run", time.Now())
	require.NoError(testInstance, store.RecordRun(executionContext, summary))

	summary.Stages = summary.Stages[:1]
	summary.Aborted = true
	require.NoError(testInstance, store.RecordRun(executionContext, summary))

	run, runError := store.Run(executionContext, "run")
	require.NoError(testInstance, runError)
	require.True(testInstance, run.Aborted)

	stages, stagesError := store.StageRuns(executionContext, "run")
	require.NoError(testInstance, stagesError)
	require.Len(testInstance, stages, 1)
}

func TestStoreReportsUnknownRun(testInstance *testing.T) {
	store, _ := openTestStore(testInstance)

	_, runError := store.Run(context.Background(), "missing")
	require.ErrorIs(testInstance, runError, history.ErrRunNotFound)
}

func TestStoreRecordsExecutorRuns(testInstance *testing.T) {
	store, _ := openTestStore(testInstance)
	var recorder pipeline.RunRecorder = store
	require.NoError(testInstance, recorder.RecordRun(context.Background(), pipeline.Summary{RunID: "empty", StartedAt: time.Now(), FinishedAt: time.Now()}))

	runs, listError := store.RecentRuns(context.Background(), 10)
	require.NoError(testInstance, listError)
	require.Len(testInstance, runs, 1)
}
