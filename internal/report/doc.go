// Package report holds tabular artifacts and the run-level reports built from them:
// the numeric correlation matrix, the plain-text performance report, and the master
// summary that merges prescriptive recommendations.
package report
