// Package inspection profiles raw trip datasets before they enter the pipeline.
//
// Profiles are computed with gota dataframes: numeric columns report count,
// mean, standard deviation, extrema, and median, while text columns report
// their distinct value count. Missing required columns are listed so that a
// dataset can be checked before a run.
package inspection
