// Package dataset loads logistics trip records from CSV, cleans them, and
// carries derived metric columns alongside the immutable source rows.
//
// A Dataset is never modified once built: cleaning and column derivation
// return new Dataset values that share the underlying records.
package dataset
