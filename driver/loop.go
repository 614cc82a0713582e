package driver

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/evgenyagantaev/binary-rstdp/brain"
	"github.com/evgenyagantaev/binary-rstdp/corelog"
	"github.com/evgenyagantaev/binary-rstdp/params"
	"github.com/evgenyagantaev/binary-rstdp/snapshot"
	"github.com/evgenyagantaev/binary-rstdp/topology"
	"github.com/evgenyagantaev/binary-rstdp/world"
)

// pauseSpinInterval is how often the simulation loop wakes up to re-check
// the atomics while paused, per §5.
const pauseSpinInterval = 100 * time.Millisecond

// Run is the outer loop: it builds a brain and world, runs the inner tick
// loop until stop or reset, and — on reset — rebuilds and runs again. Each
// epoch (the initial run and every post-reset rebuild) is seeded from seed
// advanced by an epoch counter, so no two epochs in one process lifetime
// replay the same random sequence, but every epoch is individually
// reproducible from (Parameters, its epoch seed). Run returns when
// ctrl.Running() goes false, or immediately on an invariant violation (a
// fatal, unrecoverable condition per §7).
func Run(p params.Parameters, seed int64, ctrl *Control, enc *snapshot.Encoder, log *corelog.Sink) error {
	for epoch := int64(0); ctrl.Running(); epoch++ {
		if err := runEpoch(p, seed+epoch, ctrl, enc, log); err != nil {
			return err
		}
	}
	log.Infof("driver: stopped")
	return nil
}

// runEpoch constructs a fresh brain and world from epochSeed and runs ticks
// until the simulation should stop or a reset has been requested, returning
// nil in both cases; Run decides which one happened by re-checking
// ctrl.Running().
func runEpoch(p params.Parameters, epochSeed int64, ctrl *Control, enc *snapshot.Encoder, log *corelog.Sink) error {
	top := topology.Build(p, epochSeed)
	log.Infof("topology: seed=%d %d deterministic, %d random, %d forced-fallback wires",
		top.Seed, top.Report.Deterministic, top.Report.Random, len(top.Report.ForcedFallback))

	rng := rand.New(rand.NewSource(epochSeed))
	b := brain.New(p, top.Synapses)
	w := world.New(p)

	var reward, penalty bool
	var rewardSum, penaltySum int
	tick := 0

	for ctrl.Running() {
		// (1) emit snapshot
		rec := snapshot.Build(tick, reward, penalty, rewardSum, penaltySum, w.Stats(), b.Neurons, b.Synapses)
		if err := enc.Emit(rec); err != nil {
			log.Errorf("snapshot: %v", err)
		}

		// (2) pause spin
		for ctrl.Paused() && ctrl.Running() && !ctrl.ResetRequested() {
			time.Sleep(pauseSpinInterval)
		}
		if !ctrl.Running() {
			return nil
		}
		if ctrl.ConsumeReset() {
			return nil
		}

		// (3) pacing delay
		time.Sleep(ctrl.Delay())

		// (4) gather sensors, inject random activity
		sensors := w.Sensors()
		if p.RandomActivityPeriod > 0 && tick%p.RandomActivityPeriod == 0 {
			b.InjectRandomActivity(rng, p.RandomActivityCount)
		}

		// (5) run brain step with the reward/penalty latched last tick
		result := b.Step(sensors, reward, penalty, rng, tick)

		// (6) read motor spikes, cancel a simultaneous double-fire
		left, right := result.MotorSpiked[0], result.MotorSpiked[1]
		if left && right {
			left, right = false, false
		}

		// (7) run world update
		reward, penalty = w.Update(p, left, right, rng)

		// (8) latch counters
		if reward {
			rewardSum++
		}
		if penalty {
			penaltySum++
		}

		if p.DebugAssertions {
			if err := b.CheckInvariants(); err != nil {
				log.Fatalf("invariant violation at tick %d: %v", tick, err)
				return fmt.Errorf("driver: invariant violation at tick %d: %w", tick, err)
			}
		}

		tick++
	}

	return nil
}
