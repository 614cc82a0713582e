package neuron

import "github.com/evgenyagantaev/binary-rstdp/params"

// Contribution names a single conducting delivery: which source neuron, and
// which position in that source's outgoing synapse list, delivered a spike.
// Synapses are never referenced by pointer — only by (source index, position)
// — so history entries stay valid across pruning/rewiring, which mutates a
// synapse's target in place without changing its position.
type Contribution struct {
	Source  int
	Synapse int
}

// Neuron is the dense, role-agnostic per-neuron state described in
// SPEC_FULL.md §4.B. Which behavior applies to a given index (sensor,
// motor, fanout, fanin, hidden) is decided by the caller via
// params.Parameters' role-range helpers, never by a field on this struct.
type Neuron struct {
	Voltage         int
	RefractoryTimer int
	SpikedThisStep  bool
	InputBuffer     int
	LeakTimer       int

	// ContribHistory[d] and SpikeHistory[d] describe the tick that
	// occurred d ticks ago, per the end-of-tick shift convention in
	// spec.md §4.E phase 5.
	ContribHistory [][]Contribution
	SpikeHistory   []bool

	// nextContributors accumulates this tick's deliveries during phase 2,
	// and is moved into ContribHistory[0] by ShiftHistory at phase 5.
	nextContributors []Contribution
}

// New creates a resting neuron with history slices sized for maxHistory
// ticks, all initialized to the no-activity resting state.
func New(maxHistory int) Neuron {
	return Neuron{
		ContribHistory: make([][]Contribution, maxHistory),
		SpikeHistory:   make([]bool, maxHistory),
	}
}

// Deliver increments the input buffer by one conducting spike and records
// the (source, synapse-position) pair that caused it, for later causal
// tracing. Called during phase 2 once per active synapse whose source
// spiked this tick.
func (n *Neuron) Deliver(source, synapseIndex int) {
	n.InputBuffer++
	n.nextContributors = append(n.nextContributors, Contribution{Source: source, Synapse: synapseIndex})
}

// Integrate runs phase 1 of the tick for this neuron: refractory handling,
// input integration, threshold firing, and the membrane leak rule. It
// returns whether the neuron spiked this tick.
//
// isSensor and externalInput model the world's sensory drive: a sensor
// neuron with externalInput > 0 immediately crosses threshold regardless of
// its input buffer, per spec.md §4.E phase 1.
func (n *Neuron) Integrate(p params.Parameters, isSensor bool, externalInput int) bool {
	n.SpikedThisStep = false

	if n.RefractoryTimer > 0 {
		n.RefractoryTimer--
		n.Voltage = p.VRest
		n.InputBuffer = 0
		n.LeakTimer = p.MembraneDecayPeriod
		return false
	}

	sensorPulse := isSensor && externalInput > 0
	hasInput := n.InputBuffer > 0 || sensorPulse

	n.Voltage += n.InputBuffer
	if sensorPulse {
		n.Voltage += p.VThresh
	}
	n.InputBuffer = 0

	spiked := false
	if n.Voltage >= p.VThresh {
		n.Voltage = p.VRest
		spiked = true
		n.RefractoryTimer = p.Refractory
	}
	n.SpikedThisStep = spiked

	switch {
	case hasInput || spiked:
		n.LeakTimer = p.MembraneDecayPeriod
	case n.Voltage > p.VRest:
		n.LeakTimer--
		if n.LeakTimer <= 0 {
			n.Voltage--
			n.LeakTimer = p.MembraneDecayPeriod
		}
	default:
		n.LeakTimer = p.MembraneDecayPeriod
	}

	return spiked
}

// ShiftHistory performs phase 5: it moves ContribHistory and SpikeHistory
// one slot toward higher indices, dropping the oldest entry, and installs
// this tick's deliveries and spike flag at index 0.
func (n *Neuron) ShiftHistory() {
	for i := len(n.ContribHistory) - 1; i > 0; i-- {
		n.ContribHistory[i] = n.ContribHistory[i-1]
		n.SpikeHistory[i] = n.SpikeHistory[i-1]
	}
	n.ContribHistory[0] = n.nextContributors
	n.SpikeHistory[0] = n.SpikedThisStep
	n.nextContributors = nil
}
