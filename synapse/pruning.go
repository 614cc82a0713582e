package synapse

import "github.com/evgenyagantaev/binary-rstdp/params"

// Rewire retargets a pruned synapse in place: it is never destroyed. The
// new target and the decision of whether rewiring is even possible (the
// "no real change" case where the candidate is a motor's only remaining
// incoming synapse) are decided by the caller — topology's directional
// constraints are a network-wide property, not something a single synapse
// can evaluate in isolation.
//
// Rewire always resets the synapse's learning state, even when newTarget
// equals the current Target, matching spec.md §4.E phase 3's "no real
// change, but the learning state is reset" case.
func (s *Synapse) Rewire(p params.Parameters, newTarget int) {
	s.Target = newTarget
	s.Confidence = 1
	s.LTPTimer = 0
	s.LTDTimer = 0
	s.EligibleForLTP = false
	s.EligibleForLTD = false
	s.EligibilityLTPTimer = 0
	s.EligibilityLTDTimer = 0
	s.ConfidenceLeakTimer = p.ConfidenceLeakPeriod
	s.RewardAcceptor = true
	s.PenaltyAcceptor = true
	s.RewardInertiaCounter = 0
	s.PenaltyInertiaCounter = 0
	s.TicksSinceLTP = 0
	s.recomputeActive(p)
}
