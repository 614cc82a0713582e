/*
Package topology builds the initial synaptic wiring described in
SPEC_FULL.md §4.D: six fixed, non-plastic sensor/motor wires, a randomized
hidden-to-hidden mesh at a fixed connection density, and a fallback wire for
any motor that the random draw left with no incoming connection.

Build takes an explicit int64 seed and derives its own *rand.Rand from it,
so the returned Topology — and therefore an entire Brain built from its
Synapses — can be reconstructed byte-for-byte from (Parameters, Seed) alone;
this package never reads global randomness. The driver advances a seed
family by a counter on every reset, so each epoch gets a fresh but
individually reproducible topology.

*/
package topology
