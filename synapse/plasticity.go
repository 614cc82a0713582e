package synapse

import "github.com/evgenyagantaev/binary-rstdp/params"

// Advance runs phase 2's plasticity bookkeeping for one synapse on one
// tick: trace decay, inertia/eligibility countdowns, trace creation from
// this tick's pre/post spikes, and at most one reward- or penalty-driven
// confidence step. It is a no-op for non-plastic synapses.
//
// sourceSpiked and targetSpiked describe whether the synapse's source and
// target neuron spiked this tick (after delivery has already happened);
// reward and penalty are the tick's global reinforcement gates, latched by
// the caller from the previous tick's world update.
func (s *Synapse) Advance(p params.Parameters, sourceSpiked, targetSpiked, reward, penalty bool) {
	if !s.Plastic {
		return
	}

	s.TicksSinceLTP++

	if s.LTPTimer > 0 {
		s.LTPTimer--
	}
	if s.LTDTimer > 0 {
		s.LTDTimer--
	}

	if s.RewardInertiaCounter > 0 {
		s.RewardInertiaCounter--
		if s.RewardInertiaCounter == 0 {
			s.RewardAcceptor = true
		}
	}
	if s.PenaltyInertiaCounter > 0 {
		s.PenaltyInertiaCounter--
		if s.PenaltyInertiaCounter == 0 {
			s.PenaltyAcceptor = true
		}
	}

	if s.EligibilityLTPTimer > 0 {
		s.EligibilityLTPTimer--
		if s.EligibilityLTPTimer == 0 {
			s.EligibleForLTP = false
		}
	}
	if s.EligibilityLTDTimer > 0 {
		s.EligibilityLTDTimer--
		if s.EligibilityLTDTimer == 0 {
			s.EligibleForLTD = false
		}
	}

	// Trace creation: a pre-spike opens an LTD-eligibility window if the
	// post side fired recently; a post-spike opens an LTP-eligibility
	// window if the pre side fired recently. This is the causal ordering
	// check underlying spike-timing dependent plasticity.
	if sourceSpiked {
		s.LTPTimer = p.SpikeTraceWindow
		if s.LTDTimer > 0 {
			s.EligibleForLTD = true
			s.EligibilityLTDTimer = p.EligibilityTraceWindow
		}
	}
	if targetSpiked {
		s.LTDTimer = p.SpikeTraceWindow
		if s.LTPTimer > 0 {
			s.EligibleForLTP = true
			s.EligibilityLTPTimer = p.EligibilityTraceWindow
		}
	}

	switch {
	case reward && s.RewardAcceptor:
		s.applyReward(p)
	case penalty && s.PenaltyAcceptor:
		s.applyPenalty(p)
	}

	s.ConfidenceLeakTimer--
	if s.ConfidenceLeakTimer <= 0 {
		s.Confidence >>= 1
		s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
	}

	s.recomputeActive(p)
}

// applyReward implements the reward arm: LTP is tried before LTD, and at
// most one confidence step is taken. ticksSinceLTP resets whenever the
// synapse was LTP-eligible at a reward moment, whether or not the
// confidence cap actually let the step through.
func (s *Synapse) applyReward(p params.Parameters) {
	modified := false

	if s.EligibleForLTP {
		s.TicksSinceLTP = 0
		if s.Confidence < p.ConfidenceMax {
			s.Confidence++
			s.EligibleForLTP = false
			s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
			modified = true
		}
	} else if s.EligibleForLTD && s.Confidence > 0 {
		s.Confidence--
		s.EligibleForLTD = false
		s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
		modified = true
	}

	if modified {
		s.PenaltyAcceptor = false
		s.PenaltyInertiaCounter = p.ReinforcementInertia
	}
}

// applyPenalty implements the penalty arm. LTP+penalty reduces confidence
// on a recently-effective path; LTD+penalty is intentionally ignored, but
// the LTD eligibility is still cleared, per spec.md §4.E and §9's explicit
// preserved asymmetry.
func (s *Synapse) applyPenalty(p params.Parameters) {
	modified := false

	if s.EligibleForLTP && s.Confidence > 0 {
		s.Confidence--
		s.EligibleForLTP = false
		s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
		modified = true
	} else if s.EligibleForLTD {
		s.EligibleForLTD = false
	}

	if modified {
		s.RewardAcceptor = false
		s.RewardInertiaCounter = p.ReinforcementInertia
	}
}
