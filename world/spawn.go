package world

import (
	"math/rand"

	"github.com/evgenyagantaev/binary-rstdp/params"
)

// spawn draws a new target regime uniformly from {NONE, FOOD, DANGER}, a
// lifetime for it, and, for FOOD/DANGER, a position at either end of the
// track. The agent is returned to the centre whenever a new regime begins.
func (w *World) spawn(p params.Parameters, rng *rand.Rand) {
	w.Target = Target(rng.Intn(3))
	w.AgentPos = p.WorldSize / 2

	switch w.Target {
	case TargetNone:
		w.TargetTimer = lifetime(rng) / 3
		w.TargetPos = 0
	default:
		w.TargetTimer = lifetime(rng)
		if rng.Intn(2) == 0 {
			w.TargetPos = 0
		} else {
			w.TargetPos = p.WorldSize - 1
		}
	}
}

// lifetime draws a tick count uniformly from [3000, 5000], the duration
// spec.md assigns to a freshly spawned FOOD or DANGER target.
func lifetime(rng *rand.Rand) int {
	const lo, hi = 3000, 5000
	return lo + rng.Intn(hi-lo+1)
}
