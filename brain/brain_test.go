package brain

import (
	"math/rand"
	"testing"

	"github.com/evgenyagantaev/binary-rstdp/neuron"
	"github.com/evgenyagantaev/binary-rstdp/params"
	"github.com/evgenyagantaev/binary-rstdp/synapse"
	"github.com/evgenyagantaev/binary-rstdp/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrain(p params.Parameters, seed int64) *Brain {
	return New(p, topology.Build(p, seed).Synapses)
}

func TestStepZeroInputNeverSpikesOrFaultsInvariants(t *testing.T) {
	p := params.Default()
	b := newTestBrain(p, 1)
	rng := rand.New(rand.NewSource(2))

	for tick := 0; tick < 50; tick++ {
		result := b.Step([4]int{0, 0, 0, 0}, false, false, rng, tick)
		assert.False(t, result.MotorSpiked[0])
		assert.False(t, result.MotorSpiked[1])
		require.NoError(t, b.CheckInvariants())
	}
}

func TestStepSensorDriveEventuallySpikesFanout(t *testing.T) {
	p := params.Default()
	b := newTestBrain(p, 3)
	rng := rand.New(rand.NewSource(4))

	fanout := p.FanoutStart()
	spiked := false
	for tick := 0; tick < 40 && !spiked; tick++ {
		b.Step([4]int{1, 0, 0, 0}, false, false, rng, tick)
		spiked = b.Neurons[fanout].SpikedThisStep
	}
	assert.True(t, spiked, "fanout neuron never spiked under sustained sensor drive")
}

func TestPruneRewiresCandidateToPermittedTarget(t *testing.T) {
	p := params.Default()
	b := New(p, make([][]synapse.Synapse, p.BrainSize))
	b.Synapses[12] = []synapse.Synapse{synapse.New(p, 13, 3, true)}
	rng := rand.New(rand.NewSource(5))

	event := b.prune(rng, 12, 0)

	require.NotNil(t, event)
	assert.Equal(t, 13, event.OldTarget)
	assert.NotEqual(t, 13, event.NewTarget)
	assert.NotEqual(t, 12, event.NewTarget)
	assert.False(t, p.IsFanout(event.NewTarget))

	rewired := b.Synapses[12][0]
	assert.Equal(t, 1, rewired.Confidence)
	assert.Equal(t, 0, rewired.TicksSinceLTP)
	assert.True(t, rewired.RewardAcceptor)
	assert.True(t, rewired.PenaltyAcceptor)
}

func TestPruneForcesNoOpWhenFaninHasOnlyOneIncoming(t *testing.T) {
	p := params.Default()
	b := New(p, make([][]synapse.Synapse, p.BrainSize))
	// 12 -> 10 (fanin) is the only synapse anywhere that feeds fanin 10, which
	// in turn is the sole path to motor 4 via the fixed non-plastic wire.
	b.Synapses[p.HiddenStart()] = []synapse.Synapse{synapse.New(p, p.FaninStart(), 2, true)}
	rng := rand.New(rand.NewSource(6))

	event := b.prune(rng, p.HiddenStart(), 0)

	require.NotNil(t, event)
	assert.Equal(t, p.FaninStart(), event.OldTarget)
	assert.Equal(t, event.OldTarget, event.NewTarget)
	assert.Equal(t, 1, b.Synapses[p.HiddenStart()][0].Confidence)
}

func TestPruneLeavesCandidateUntouchedWhenNoTargetIsEligible(t *testing.T) {
	p := params.Default()
	b := New(p, make([][]synapse.Synapse, p.BrainSize))

	source := p.HiddenStart()
	full := topology.PermittedRewireTargets(p, source, nil)
	require.NotEmpty(t, full)

	outgoing := make([]synapse.Synapse, 0, len(full))
	position := -1
	for i, target := range full {
		if !p.IsFanin(target) && position < 0 {
			position = i
		}
		outgoing = append(outgoing, synapse.New(p, target, 2, true))
	}
	require.GreaterOrEqual(t, position, 0, "need a non-fanin candidate to isolate the no-eligible-target case")
	b.Synapses[source] = outgoing
	rng := rand.New(rand.NewSource(7))

	before := b.Synapses[source][position]
	event := b.prune(rng, source, position)

	assert.Nil(t, event)
	assert.Equal(t, before, b.Synapses[source][position])
}

func TestTraceHighlightsContributingSynapsesAcrossTwoHops(t *testing.T) {
	p := params.Default()
	b := New(p, make([][]synapse.Synapse, p.BrainSize))

	motor := p.MotorStart()
	b.Synapses[20] = []synapse.Synapse{synapse.New(p, motor, 3, true)}
	b.Synapses[25] = []synapse.Synapse{synapse.New(p, 20, 2, true)}

	b.Neurons[motor].ContribHistory[0] = []neuron.Contribution{{Source: 20, Synapse: 0}}
	b.Neurons[20].SpikeHistory[0] = true
	b.Neurons[20].ContribHistory[1] = []neuron.Contribution{{Source: 25, Synapse: 0}}
	b.Neurons[25].SpikeHistory[1] = false

	b.trace(motor)

	assert.True(t, b.Synapses[20][0].Highlighted)
	assert.True(t, b.Synapses[25][0].Highlighted)
}

func TestTraceStopsAtMaxTraceDepth(t *testing.T) {
	p := params.Default()
	p.MaxTrace = 0
	b := New(p, make([][]synapse.Synapse, p.BrainSize))

	motor := p.MotorStart()
	b.Synapses[20] = []synapse.Synapse{synapse.New(p, motor, 3, true)}
	b.Synapses[25] = []synapse.Synapse{synapse.New(p, 20, 2, true)}

	b.Neurons[motor].ContribHistory[0] = []neuron.Contribution{{Source: 20, Synapse: 0}}
	b.Neurons[20].SpikeHistory[0] = true
	b.Neurons[20].ContribHistory[1] = []neuron.Contribution{{Source: 25, Synapse: 0}}

	b.trace(motor)

	assert.True(t, b.Synapses[20][0].Highlighted)
	assert.False(t, b.Synapses[25][0].Highlighted, "tracing must not exceed MaxTrace hops")
}

func TestInjectRandomActivityOnlyTargetsHiddenNeurons(t *testing.T) {
	p := params.Default()
	b := newTestBrain(p, 8)
	rng := rand.New(rand.NewSource(9))

	hit := b.InjectRandomActivity(rng, 5)
	require.Len(t, hit, 5)
	for _, idx := range hit {
		assert.True(t, p.IsHidden(idx))
		assert.GreaterOrEqual(t, b.Neurons[idx].InputBuffer, 1)
	}
}
