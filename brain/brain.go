package brain

import (
	"math/rand"

	"github.com/evgenyagantaev/binary-rstdp/neuron"
	"github.com/evgenyagantaev/binary-rstdp/params"
	"github.com/evgenyagantaev/binary-rstdp/synapse"
)

// Brain holds the entire simulated network: dense neuron state and, per
// source neuron, its outgoing synapse list. Synapses[i][k] is owned by
// neuron i and never referenced from anywhere else except by the
// (source, position) pairs recorded in neuron.Contribution.
type Brain struct {
	Params   params.Parameters
	Neurons  []neuron.Neuron
	Synapses [][]synapse.Synapse
}

// New builds a Brain from an already-wired synapse list, typically produced
// by topology.Build. Every neuron starts at rest.
func New(p params.Parameters, synapses [][]synapse.Synapse) *Brain {
	neurons := make([]neuron.Neuron, p.BrainSize)
	for i := range neurons {
		neurons[i] = neuron.New(p.MaxHistory)
	}
	return &Brain{Params: p, Neurons: neurons, Synapses: synapses}
}

// PruneEvent describes a rewiring decision made during a tick, for logging
// and snapshotting. OldTarget == NewTarget marks the forced no-op case.
type PruneEvent struct {
	Source    int
	Position  int
	OldTarget int
	NewTarget int
}

// TickResult summarizes the externally observable outcome of one Step call:
// whether each motor fired, and whether a synapse was pruned.
type TickResult struct {
	MotorSpiked [2]bool
	Pruned      *PruneEvent
}

// InjectRandomActivity adds count extra input pulses to random hidden
// neurons. It must be called before Step for the tick in which the pulses
// should take effect, since Step's phase 1 consumes InputBuffer and clears
// it for every neuron it visits. rng is supplied by the caller so injection
// stays reproducible from a seed, per the topology package's design note.
func (b *Brain) InjectRandomActivity(rng *rand.Rand, count int) []int {
	lo, hi := b.Params.HiddenStart(), b.Params.BrainSize
	if hi <= lo {
		return nil
	}
	hit := make([]int, 0, count)
	for k := 0; k < count; k++ {
		idx := lo + rng.Intn(hi-lo)
		b.Neurons[idx].InputBuffer++
		hit = append(hit, idx)
	}
	return hit
}

// Step runs one full tick: highlight clear, neuron integration, synaptic
// propagation and plasticity, pruning, causal tracing, and history shift, in
// that fixed order. sensorInput[k] is the pulse delivered to sensor k this
// tick; reward and penalty are the tick's global reinforcement gates; tick
// is the caller's monotonic tick counter, used to gate pruning's period.
func (b *Brain) Step(sensorInput [4]int, reward, penalty bool, rng *rand.Rand, tick int) TickResult {
	p := b.Params

	// Phase 0: clear last tick's trace highlight.
	for src := range b.Synapses {
		list := b.Synapses[src]
		for i := range list {
			list[i].ClearHighlight()
		}
	}

	// Phase 1: neuron integration.
	for i := range b.Neurons {
		isSensor := p.IsSensor(i)
		external := 0
		if isSensor {
			external = sensorInput[i-p.SensorStart()]
		}
		b.Neurons[i].Integrate(p, isSensor, external)
	}

	// Phase 2: propagation, delivery, and plasticity, with pruning
	// candidate tracking folded into the same walk.
	candidateSource, candidatePos, candidateMax := -1, -1, -1
	for i := range b.Neurons {
		sourceSpiked := b.Neurons[i].SpikedThisStep
		list := b.Synapses[i]
		for idx := range list {
			s := &list[idx]
			if sourceSpiked && s.Active {
				b.Neurons[s.Target].Deliver(i, idx)
			}
			targetSpiked := b.Neurons[s.Target].SpikedThisStep
			s.Advance(p, sourceSpiked, targetSpiked, reward, penalty)

			if s.Plastic && s.TicksSinceLTP > candidateMax {
				candidateMax = s.TicksSinceLTP
				candidateSource, candidatePos = i, idx
			}
		}
	}

	// Phase 3: pruning, gated on the period and on a candidate existing.
	var pruned *PruneEvent
	if p.PruningPeriod > 0 && tick%p.PruningPeriod == 0 && candidateSource >= 0 {
		pruned = b.prune(rng, candidateSource, candidatePos)
	}

	// Phase 4: causal tracing from any motor that spiked this tick, reading
	// pre-shift history.
	for m := p.MotorStart(); m < p.MotorEnd(); m++ {
		if b.Neurons[m].SpikedThisStep {
			b.trace(m)
		}
	}

	// Phase 5: shift history for every neuron.
	result := TickResult{Pruned: pruned}
	for k := 0; k < p.MotorCount(); k++ {
		result.MotorSpiked[k] = b.Neurons[p.MotorStart()+k].SpikedThisStep
	}
	for i := range b.Neurons {
		b.Neurons[i].ShiftHistory()
	}

	return result
}
