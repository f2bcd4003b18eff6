// Package analyze provides measurement helpers for choosing pipeline
// parameters: magnitude statistics, dominant-color extraction, and
// cluster-based threshold suggestions.
//
// Everything here is advisory. The pipeline performs no validation or
// auto-tuning of its own; these helpers exist so a caller can look at an
// image before deciding on thresholds, instead of picking them by eye.
package analyze
