/*
Package world implements the one-dimensional track described in
SPEC_FULL.md §4.F: an agent, a timed food-or-danger target, the four-bit
sensor readout fed into the network's sensor neurons, and the reward/penalty
computation that drives R-STDP.

World owns no goroutines and is not safe for concurrent use; like brain, it
is meant to be driven by a single simulation loop, one Update call per tick.
*/
package world
