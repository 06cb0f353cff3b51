// Package pipeline sequences the cleaning, metric, reporting, and prescriptive stages
// over one dataset. Stages run in a fixed canonical order on a single goroutine; the
// executor owns the dataset, swaps in each stage's result, writes the stage artifacts
// into a timestamped run directory, and reports lifecycle events to an observer.
package pipeline
