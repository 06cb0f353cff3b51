// Package metrics derives per-trip logistics cost columns: fuel, handling,
// idle and utilization cost, inventory holding cost, and delay penalty.
package metrics
