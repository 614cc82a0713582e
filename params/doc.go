/*
Package params defines the immutable parameter set that governs the
integer-valued leaky-integrate-and-fire network: membrane thresholds,
refractory periods, plasticity windows, pruning cadence, and world sizing.

# Overview

Every other package in this module takes a params.Parameters value by copy
rather than reading package-level constants. This keeps the tick engine
pure and lets tests exercise alternate timings (short pruning periods,
tiny eligibility windows) without touching global state.

# Launch-time overrides

The shipped defaults match the reference configuration. A TOML file can
overlay a subset of fields at process launch via LoadOverrides; anything
not present in the file keeps its default value. Unknown keys are treated
as a configuration fault and rejected rather than silently ignored.
*/
package params
