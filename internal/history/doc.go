// Package history persists pipeline run summaries in a SQLite database and
// exposes the history cobra command for browsing recent runs.
package history
