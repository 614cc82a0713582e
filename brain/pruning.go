package brain

import (
	"math/rand"

	"github.com/evgenyagantaev/binary-rstdp/topology"
)

// prune retargets the synapse at (source, position) — the one with the
// largest TicksSinceLTP found during this tick's phase 2 walk. One case
// leaves the candidate untouched without resetting its learning state: no
// permitted target exists at all. The motor-only-incoming case is instead a
// forced no-op that still resets learning state, per spec.md §4.E phase 3.
func (b *Brain) prune(rng *rand.Rand, source, position int) *PruneEvent {
	p := b.Params
	list := b.Synapses[source]
	cand := &list[position]
	oldTarget := cand.Target

	if p.IsFanin(oldTarget) && b.onlyIncoming(oldTarget, source, position) {
		cand.Rewire(p, oldTarget)
		return &PruneEvent{Source: source, Position: position, OldTarget: oldTarget, NewTarget: oldTarget}
	}

	permitted := topology.PermittedRewireTargets(p, source, list)
	if len(permitted) == 0 {
		return nil
	}

	newTarget := permitted[rng.Intn(len(permitted))]
	cand.Rewire(p, newTarget)
	return &PruneEvent{Source: source, Position: position, OldTarget: oldTarget, NewTarget: newTarget}
}

// onlyIncoming reports whether target has no incoming synapse other than
// the one at (excludeSource, excludePosition).
func (b *Brain) onlyIncoming(target, excludeSource, excludePosition int) bool {
	for src, list := range b.Synapses {
		for idx, s := range list {
			if src == excludeSource && idx == excludePosition {
				continue
			}
			if s.Target == target {
				return false
			}
		}
	}
	return true
}
