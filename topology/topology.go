package topology

import (
	"math/rand"

	"github.com/evgenyagantaev/binary-rstdp/params"
	"github.com/evgenyagantaev/binary-rstdp/synapse"
)

// Report summarizes what Build did, for a one-line startup log entry.
type Report struct {
	Deterministic int
	Random        int
	// ForcedFallback lists the motor-fanin indices (10, 11) that had no
	// incoming synapse after the random pass and needed a forced wire.
	ForcedFallback []int
}

// Topology is the complete, reproducible result of one Build call: the
// seed that produced it, the outgoing synapse list for every source
// neuron, and a summary report. Two Build calls given the same Parameters
// and Seed always produce byte-for-byte identical Synapses, since Build
// reads no randomness other than the *rand.Rand it derives from Seed.
type Topology struct {
	Seed     int64
	Synapses [][]synapse.Synapse
	Report   Report
}

// deterministicWire is one of the six fixed, non-plastic links spec.md
// §4.D step 1 mandates: sensors to their dedicated fanout neuron, and
// motor-fanin neurons to their dedicated motor.
type deterministicWire struct {
	source, target int
}

// Build constructs the outgoing synapse list for every neuron (indexed by
// source), applying the deterministic wires, the randomized hidden mesh,
// and the motor fallback pass, in that order. It seeds its own *rand.Rand
// from seed and reads no other source of randomness, so the returned
// Topology is a pure, reproducible function of (p, seed) — a Brain built
// from it can be reconstructed byte-for-byte by calling Build again with
// the same arguments.
func Build(p params.Parameters, seed int64) Topology {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]synapse.Synapse, p.BrainSize)

	report := Report{}

	for _, w := range deterministicWires(p) {
		out[w.source] = append(out[w.source], synapse.New(p, w.target, p.ConfidenceMax, false))
		report.Deterministic++
	}

	hiddenLo, hiddenHi := p.FanoutStart(), p.BrainSize // 6..N-1
	for i := hiddenLo; i < hiddenHi; i++ {
		for j := hiddenLo; j < hiddenHi; j++ {
			if i == j {
				continue
			}
			if !permittedPair(p, i, j) {
				continue
			}
			if rng.Float64() >= p.ConnectionDensity {
				continue
			}
			confidence := p.ConfidenceInitLo
			if span := p.ConfidenceInitHi - p.ConfidenceInitLo; span > 0 {
				confidence += rng.Intn(span + 1)
			}
			out[i] = append(out[i], synapse.New(p, j, confidence, true))
			report.Random++
		}
	}

	for _, m := range []int{p.FaninStart(), p.FaninStart() + 1} {
		if hasIncoming(out, m) {
			continue
		}
		lo, hi := p.HiddenStart(), p.HiddenStart()+18 // 12..29 per spec.md §4.D step 3
		if hi > p.BrainSize {
			hi = p.BrainSize
		}
		source := lo + rng.Intn(hi-lo)
		out[source] = append(out[source], synapse.New(p, m, p.ConfidenceThr, true))
		report.ForcedFallback = append(report.ForcedFallback, m)
	}

	return Topology{Seed: seed, Synapses: out, Report: report}
}

func deterministicWires(p params.Parameters) []deterministicWire {
	sensors := p.SensorStart()
	fanout := p.FanoutStart()
	fanin := p.FaninStart()
	motor := p.MotorStart()

	wires := make([]deterministicWire, 0, p.SensorCount()+p.FaninCount())
	for k := 0; k < p.SensorCount(); k++ {
		wires = append(wires, deterministicWire{source: sensors + k, target: fanout + k})
	}
	for k := 0; k < p.FaninCount(); k++ {
		wires = append(wires, deterministicWire{source: fanin + k, target: motor + k})
	}
	return wires
}

// permittedPair applies spec.md §4.D step 2's directional constraints to a
// candidate (source, target) pair drawn from the hidden index range.
func permittedPair(p params.Parameters, i, j int) bool {
	if p.IsFanout(j) {
		return false // no incoming to sensor-fanout except from its dedicated sensor
	}
	if p.IsFanin(i) {
		return false // no outgoing from motor-fanin except to its motor
	}
	if (p.IsFanout(i) || p.IsFanin(i)) && (p.IsFanout(j) || p.IsFanin(j)) {
		return false // the fixed first layer must not be wired to itself
	}
	return true
}

// PermittedRewireTargets returns the admissible new targets for a pruning
// candidate owned by source, honoring the same directional constraints as
// Build and excluding any target already present among source's outgoing
// synapses (including the candidate's own current target).
func PermittedRewireTargets(p params.Parameters, source int, outgoing []synapse.Synapse) []int {
	taken := make(map[int]bool, len(outgoing))
	for _, s := range outgoing {
		taken[s.Target] = true
	}

	candidates := make([]int, 0, p.BrainSize-p.FanoutStart())
	for j := p.FanoutStart(); j < p.BrainSize; j++ {
		if j == source || taken[j] {
			continue
		}
		if !permittedPair(p, source, j) {
			continue
		}
		candidates = append(candidates, j)
	}
	return candidates
}

func hasIncoming(out [][]synapse.Synapse, target int) bool {
	for _, list := range out {
		for _, s := range list {
			if s.Target == target {
				return true
			}
		}
	}
	return false
}
