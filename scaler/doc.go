// Package scaler sums periodic scaler readouts per (source id, channel).
//
// Every PeriodicScalers event carries the counters of one source; the source
// is identified by the event's body header. Totals are kept as uint64 so long
// runs of 32-bit counters do not wrap.
//
// Aggregation is available sequentially (Add) and fanned out over a worker
// pool (AddParallel). Both produce identical totals.
package scaler
