/*
Package brain implements the tick engine described in SPEC_FULL.md §4.E:
the single ordered pass of neuron integration, synaptic propagation and
plasticity, pruning/rewiring, causal back-tracing, and history shift that
makes up one indivisible simulated tick.

# Single-threaded by design

A Brain has no internal concurrency and no goroutines of its own. Step is
meant to be called once per tick from the driver's simulation loop; all
mutation for tick t completes before Step returns, so the caller may safely
read the resulting state (for a snapshot, say) before calling Step again.

# Dense index addressing

Neurons and Synapses are held in flat slices, addressed by integer index,
never by pointer or string ID — see the neuron and synapse packages' design
notes for why.
*/
package brain
