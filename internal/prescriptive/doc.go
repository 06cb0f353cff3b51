// Package prescriptive turns per-trip cost columns into recommendations. Each analyzer
// groups trips along one dimension (dispatch slot, waiting bucket, utilization range,
// weather band, or driver), averages a target cost per group, and selects the group
// with the lowest average.
//
// Group order is deterministic: bins in ascending order, weekdays Monday first and then
// hour, identifiers lexically. When several groups share the minimum, the first one wins.
package prescriptive
