package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/temirov/logicost/internal/pipeline"
)

const (
	sqliteDriverNameConstant             = "sqlite"
	databaseDirectoryPermissionsConstant = 0o755
	timestampLayoutConstant              = time.RFC3339Nano
	openErrorTemplateConstant            = "open history database %s: %w"
	directoryErrorTemplateConstant       = "create history directory %s: %w"
	pragmaErrorTemplateConstant          = "enable WAL: %w"
	migrationErrorTemplateConstant       = "run history migrations: %w"
	recordErrorTemplateConstant          = "record run %s: %w"
	queryErrorTemplateConstant           = "query history: %w"
	scanErrorTemplateConstant            = "scan history row: %w"
	runNotFoundErrorTemplateConstant     = "%w: %s"
	walPragmaConstant                    = "PRAGMA journal_mode=WAL"
	foreignKeysPragmaConstant            = "PRAGMA foreign_keys=ON"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id         TEXT PRIMARY KEY,
    input_path     TEXT NOT NULL,
    run_directory  TEXT NOT NULL,
    log_file_path  TEXT NOT NULL DEFAULT '',
    augmented_path TEXT NOT NULL DEFAULT '',
    started_at     TEXT NOT NULL,
    finished_at    TEXT NOT NULL,
    records        INTEGER NOT NULL DEFAULT 0,
    succeeded      INTEGER NOT NULL DEFAULT 0,
    failed         INTEGER NOT NULL DEFAULT 0,
    skipped        INTEGER NOT NULL DEFAULT 0,
    aborted        INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS stage_runs (
    run_id      TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    stage_name  TEXT NOT NULL,
    stage_group TEXT NOT NULL,
    required    INTEGER NOT NULL DEFAULT 0,
    status      TEXT NOT NULL,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    artifacts   INTEGER NOT NULL DEFAULT 0,
    warnings    INTEGER NOT NULL DEFAULT 0,
    error       TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (run_id, position)
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// ErrRunNotFound indicates that no run matches the requested identifier.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is one persisted run.
type RunRecord struct {
	RunID         string
	InputPath     string
	RunDirectory  string
	LogFilePath   string
	AugmentedPath string
	StartedAt     time.Time
	FinishedAt    time.Time
	Records       int
	Succeeded     int
	Failed        int
	Skipped       int
	Aborted       bool
}

// Duration returns the wall time of the run.
func (record RunRecord) Duration() time.Duration {
	return record.FinishedAt.Sub(record.StartedAt)
}

// StageRecord is one persisted stage outcome.
type StageRecord struct {
	RunID     string
	Position  int
	Name      string
	Group     string
	Required  bool
	Status    string
	Duration  time.Duration
	Artifacts int
	Warnings  int
	Error     string
}

// Store provides SQLite-backed storage for run history.
type Store struct {
	database *sql.DB
}

// OpenStore opens (or creates) the history database at databasePath and runs migrations.
func OpenStore(executionContext context.Context, databasePath string) (*Store, error) {
	databaseDirectory := filepath.Dir(databasePath)
	if directoryError := os.MkdirAll(databaseDirectory, databaseDirectoryPermissionsConstant); directoryError != nil {
		return nil, fmt.Errorf(directoryErrorTemplateConstant, databaseDirectory, directoryError)
	}

	database, openError := sql.Open(sqliteDriverNameConstant, databasePath)
	if openError != nil {
		return nil, fmt.Errorf(openErrorTemplateConstant, databasePath, openError)
	}

	if _, pragmaError := database.ExecContext(executionContext, walPragmaConstant); pragmaError != nil {
		database.Close()
		return nil, fmt.Errorf(pragmaErrorTemplateConstant, pragmaError)
	}
	if _, pragmaError := database.ExecContext(executionContext, foreignKeysPragmaConstant); pragmaError != nil {
		database.Close()
		return nil, fmt.Errorf(pragmaErrorTemplateConstant, pragmaError)
	}
	if _, migrationError := database.ExecContext(executionContext, schema); migrationError != nil {
		database.Close()
		return nil, fmt.Errorf(migrationErrorTemplateConstant, migrationError)
	}

	return &Store{database: database}, nil
}

// RecordRun implements pipeline.RunRecorder. Recording the same run twice replaces the earlier entry.
func (store *Store) RecordRun(executionContext context.Context, summary pipeline.Summary) error {
	transaction, beginError := store.database.BeginTx(executionContext, nil)
	if beginError != nil {
		return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, beginError)
	}
	defer transaction.Rollback()

	if _, deleteError := transaction.ExecContext(executionContext, `DELETE FROM stage_runs WHERE run_id = ?`, summary.RunID); deleteError != nil {
		return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, deleteError)
	}

	_, insertError := transaction.ExecContext(executionContext, `
		INSERT OR REPLACE INTO runs (
			run_id, input_path, run_directory, log_file_path, augmented_path,
			started_at, finished_at, records,
			succeeded, failed, skipped, aborted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID, summary.InputPath, summary.RunDirectory, summary.LogFilePath, summary.AugmentedPath,
		formatTimestamp(summary.StartedAt), formatTimestamp(summary.FinishedAt), summary.Records,
		summary.Count(pipeline.StageStatusSucceeded), summary.Count(pipeline.StageStatusFailed), summary.Count(pipeline.StageStatusSkipped),
		summary.Aborted,
	)
	if insertError != nil {
		return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, insertError)
	}

	statement, prepareError := transaction.PrepareContext(executionContext, `
		INSERT INTO stage_runs (
			run_id, position, stage_name, stage_group, required,
			status, duration_ms, artifacts, warnings, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if prepareError != nil {
		return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, prepareError)
	}
	defer statement.Close()

	for stageIndex, stage := range summary.Stages {
		if _, stageError := statement.ExecContext(executionContext,
			summary.RunID, stageIndex+1, stage.Name, string(stage.Group), stage.Required,
			string(stage.Status), stage.Duration.Milliseconds(), len(stage.Artifacts), len(stage.Warnings), stage.Error,
		); stageError != nil {
			return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, stageError)
		}
	}

	if commitError := transaction.Commit(); commitError != nil {
		return fmt.Errorf(recordErrorTemplateConstant, summary.RunID, commitError)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (store *Store) RecentRuns(executionContext context.Context, limit int) ([]RunRecord, error) {
	rows, queryError := store.database.QueryContext(executionContext, `
		SELECT run_id, input_path, run_directory, log_file_path, augmented_path,
		       started_at, finished_at, records,
		       succeeded, failed, skipped, aborted
		FROM runs
		ORDER BY started_at DESC, run_id ASC
		LIMIT ?`, limit)
	if queryError != nil {
		return nil, fmt.Errorf(queryErrorTemplateConstant, queryError)
	}
	defer rows.Close()

	records := make([]RunRecord, 0)
	for rows.Next() {
		record, scanError := scanRun(rows)
		if scanError != nil {
			return nil, scanError
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Run returns the run with the given identifier.
func (store *Store) Run(executionContext context.Context, runID string) (RunRecord, error) {
	row := store.database.QueryRowContext(executionContext, `
		SELECT run_id, input_path, run_directory, log_file_path, augmented_path,
		       started_at, finished_at, records,
		       succeeded, failed, skipped, aborted
		FROM runs
		WHERE run_id = ?`, runID)
	record, scanError := scanRun(row)
	if errors.Is(scanError, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf(runNotFoundErrorTemplateConstant, ErrRunNotFound, runID)
	}
	return record, scanError
}

// StageRuns returns the stage outcomes of a run in execution order.
func (store *Store) StageRuns(executionContext context.Context, runID string) ([]StageRecord, error) {
	rows, queryError := store.database.QueryContext(executionContext, `
		SELECT run_id, position, stage_name, stage_group, required,
		       status, duration_ms, artifacts, warnings, error
		FROM stage_runs
		WHERE run_id = ?
		ORDER BY position ASC`, runID)
	if queryError != nil {
		return nil, fmt.Errorf(queryErrorTemplateConstant, queryError)
	}
	defer rows.Close()

	records := make([]StageRecord, 0)
	for rows.Next() {
		var record StageRecord
		var durationMilliseconds int64
		if scanError := rows.Scan(
			&record.RunID, &record.Position, &record.Name, &record.Group, &record.Required,
			&record.Status, &durationMilliseconds, &record.Artifacts, &record.Warnings, &record.Error,
		); scanError != nil {
			return nil, fmt.Errorf(scanErrorTemplateConstant, scanError)
		}
		record.Duration = time.Duration(durationMilliseconds) * time.Millisecond
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (store *Store) Close() error {
	return store.database.Close()
}

type rowScanner interface {
	Scan(destinations ...any) error
}

func scanRun(scanner rowScanner) (RunRecord, error) {
	var record RunRecord
	var startedAt, finishedAt string
	if scanError := scanner.Scan(
		&record.RunID, &record.InputPath, &record.RunDirectory, &record.LogFilePath, &record.AugmentedPath,
		&startedAt, &finishedAt, &record.Records,
		&record.Succeeded, &record.Failed, &record.Skipped, &record.Aborted,
	); scanError != nil {
		if errors.Is(scanError, sql.ErrNoRows) {
			return RunRecord{}, scanError
		}
		return RunRecord{}, fmt.Errorf(scanErrorTemplateConstant, scanError)
	}
	if parsed, parseError := time.Parse(timestampLayoutConstant, startedAt); parseError == nil {
		record.StartedAt = parsed
	}
	if parsed, parseError := time.Parse(timestampLayoutConstant, finishedAt); parseError == nil {
		record.FinishedAt = parsed
	}
	return record, nil
}

func formatTimestamp(timestamp time.Time) string {
	return timestamp.UTC().Format(timestampLayoutConstant)
}
