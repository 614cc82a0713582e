/*
Package synapse defines the per-synapse state and the reward/penalty
modulated spike-timing-dependent plasticity (R-STDP) rule described in
SPEC_FULL.md §4.C/§4.E.

# Binary conduction, integer confidence

Unlike a floating-point synaptic weight, a Synapse here conducts or it
doesn't: Active is a pure function of Confidence crossing ConfidenceThr.
Confidence itself is bounded, integer, and moves in unit steps driven by
eligibility traces and a global reward/penalty gate supplied by the caller
each tick — the synapse never decides on its own whether reward or penalty
is in effect.

# Ownership

A Synapse is owned by its source neuron's outgoing list and addressed by
position within that list, never by pointer. Pruning mutates Target and
resets learning state in place; a Synapse is never destroyed.
*/
package synapse
