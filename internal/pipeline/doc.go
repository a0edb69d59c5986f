// Package pipeline orchestrates file discovery, per-image processing, and
// counter aggregation for both the serial baseline and the parallel
// benchmark run.
//
// The serial baseline is the one-worker degenerate case of the same
// partitioning logic, so the two variants share every line of per-image
// code; only the worker count differs. Counters merge through a commutative,
// associative reduction, which is what makes baseline and parallel results
// comparable regardless of partition scheme or completion order.
package pipeline
