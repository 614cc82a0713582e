package world

import (
	"math/rand"

	"github.com/evgenyagantaev/binary-rstdp/params"
)

// Target names what the agent is currently chasing or avoiding.
type Target int

const (
	TargetNone Target = iota
	TargetFood
	TargetDanger
)

// World is the agent's track: its position, the current target, and the
// running counters a snapshot reports.
type World struct {
	AgentPos    int
	Target      Target
	TargetPos   int
	TargetTimer int

	FoodEatenCount  int
	DangerHitCount  int
	FoodTimeTotal   int
	DangerTimeTotal int
}

// New places the agent at the centre of the track with no active target;
// the first Update call spawns one immediately since TargetTimer starts
// expired.
func New(p params.Parameters) *World {
	return &World{
		AgentPos: p.WorldSize / 2,
		Target:   TargetNone,
	}
}

// Update applies one tick of world dynamics: movement (or drift, absent a
// target), the reward/penalty rule for the active target, collision
// handling, and target expiry/respawn. left and right are the network's
// motor spikes for this tick, already de-conflicted by the caller (the
// driver cancels a simultaneous double-fire before calling Update).
func (w *World) Update(p params.Parameters, left, right bool, rng *rand.Rand) (reward, penalty bool) {
	switch w.Target {
	case TargetNone:
		w.driftTowardCentre(p)
	case TargetFood:
		reward, penalty = w.updateTowardTarget(p, left, right, true)
	case TargetDanger:
		reward, penalty = w.updateTowardTarget(p, left, right, false)
	}

	switch w.Target {
	case TargetFood:
		w.FoodTimeTotal++
	case TargetDanger:
		w.DangerTimeTotal++
	}

	w.TargetTimer--
	if w.TargetTimer <= 0 {
		w.spawn(p, rng)
	}

	return reward, penalty
}

// updateTowardTarget handles the FOOD and DANGER branches, which share the
// same distance-delta reward rule with the comparison direction flipped.
func (w *World) updateTowardTarget(p params.Parameters, left, right, rewardOnApproach bool) (reward, penalty bool) {
	prevDist := abs(w.AgentPos - w.TargetPos)
	w.applyMovement(left, right, p)
	currDist := abs(w.AgentPos - w.TargetPos)

	approached := currDist < prevDist
	receded := currDist > prevDist
	switch {
	case approached:
		reward, penalty = rewardOnApproach, !rewardOnApproach
	case receded:
		reward, penalty = !rewardOnApproach, rewardOnApproach
	}

	if currDist == 0 {
		if rewardOnApproach {
			w.FoodEatenCount++
		} else {
			w.DangerHitCount++
		}
		reward, penalty = rewardOnApproach, !rewardOnApproach
		w.AgentPos = p.WorldSize / 2
	}

	return reward, penalty
}

func (w *World) applyMovement(left, right bool, p params.Parameters) {
	switch {
	case left:
		w.AgentPos--
	case right:
		w.AgentPos++
	}
	if w.AgentPos < 0 {
		w.AgentPos = 0
	}
	if w.AgentPos > p.WorldSize-1 {
		w.AgentPos = p.WorldSize - 1
	}
}

func (w *World) driftTowardCentre(p params.Parameters) {
	centre := p.WorldSize / 2
	switch {
	case w.AgentPos < centre:
		w.AgentPos++
	case w.AgentPos > centre:
		w.AgentPos--
	}
}

// FoodEaten reports how many times the agent has reached a FOOD target.
func (w *World) FoodEaten() int { return w.FoodEatenCount }

// DangerHit reports how many times the agent has reached a DANGER target.
func (w *World) DangerHit() int { return w.DangerHitCount }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
