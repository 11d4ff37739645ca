// Package telemetry provides search.Observer implementations that export
// search runs to Prometheus and OpenTelemetry.
//
// # Description
//
// Metrics counts runs by strategy and outcome, nodes generated and expanded,
// and records run duration and ramification histograms. Tracing opens one
// span per run named "search.<strategy>" and closes it with the final
// counters as attributes. Multi fans a run out to several observers.
//
// # Outcomes
//
//   - found: a goal was reached.
//   - exhausted: the frontier emptied without a goal.
//   - error: the run was aborted (limit, cancellation, hook or cost error).
//
// # Thread Safety
//
// All observers are safe for concurrent searches.
package telemetry
