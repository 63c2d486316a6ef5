// Package metrics exposes search statistics as Prometheus collectors on a
// caller-owned registry. *Metrics implements planner.Recorder, so it plugs
// into a search with planner.WithRecorder, and ObserveOracle folds in the
// distance oracle's counters. Write dumps everything in the text
// exposition format; there is no HTTP endpoint.
package metrics
