package synapse

import "github.com/evgenyagantaev/binary-rstdp/params"

// Synapse is the dense, index-addressed state of a single outgoing
// connection. It carries no pointer to its source or target neuron — only
// the target's index — per the "indices, never back-pointers" design note.
type Synapse struct {
	Target     int
	Confidence int
	Active     bool

	LTPTimer int
	LTDTimer int

	EligibleForLTP      bool
	EligibleForLTD      bool
	EligibilityLTPTimer int
	EligibilityLTDTimer int

	ConfidenceLeakTimer int

	RewardAcceptor  bool
	PenaltyAcceptor bool

	RewardInertiaCounter  int
	PenaltyInertiaCounter int

	TicksSinceLTP int

	// Highlighted is set by the causal tracer during phase 4 of the tick
	// that just produced a motor spike, and cleared at the start of the
	// next tick (phase 0).
	Highlighted bool

	// Plastic is false for the fixed sensor->fanout and fanin->motor
	// wires: such a synapse is exempt from plasticity, leak, and pruning,
	// and its Confidence never changes after construction.
	Plastic bool
}

// New constructs a synapse with the given target and initial confidence.
// Non-plastic synapses get no eligibility/inertia state since they never
// participate in plasticity; plastic synapses start with a full confidence
// leak countdown and both acceptors open.
func New(p params.Parameters, target, confidence int, plastic bool) Synapse {
	s := Synapse{
		Target:     target,
		Confidence: confidence,
		Plastic:    plastic,
	}
	if plastic {
		s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
		s.RewardAcceptor = true
		s.PenaltyAcceptor = true
	}
	s.recomputeActive(p)
	return s
}

// recomputeActive re-derives Active from Confidence. Called after every
// mutation of Confidence so the invariant active <=> confidence >= thr
// holds at every observable point.
func (s *Synapse) recomputeActive(p params.Parameters) {
	s.Active = s.Confidence >= p.ConfidenceThr
}

// ClearHighlight resets the transient per-tick trace marker. Called once
// per synapse at the start of every tick (phase 0).
func (s *Synapse) ClearHighlight() {
	s.Highlighted = false
}
