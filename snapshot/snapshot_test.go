package snapshot

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/evgenyagantaev/binary-rstdp/neuron"
	"github.com/evgenyagantaev/binary-rstdp/params"
	"github.com/evgenyagantaev/binary-rstdp/synapse"
	"github.com/evgenyagantaev/binary-rstdp/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapsDenseStateToContractualFields(t *testing.T) {
	p := params.Default()
	neurons := []neuron.Neuron{neuron.New(p.MaxHistory), neuron.New(p.MaxHistory)}
	neurons[0].Voltage = 1
	neurons[1].SpikedThisStep = true

	synapses := [][]synapse.Synapse{
		{synapse.New(p, 1, 3, true)},
		nil,
	}

	stats := world.Stats{AgentPos: 10, TargetType: 1, TargetPos: 0, Distance: 10, FoodEaten: 2, DangerHit: 0, FoodTime: 100, DangerTime: 5}

	rec := Build(42, true, false, 7, 1, stats, neurons, synapses)

	assert.Equal(t, 42, rec.T)
	assert.True(t, rec.Reward)
	assert.False(t, rec.Penalty)
	assert.Equal(t, 7, rec.RewardSum)
	assert.Equal(t, 1, rec.PenaltySum)
	assert.Equal(t, 100, rec.FoodTime)
	assert.Equal(t, 5, rec.DangerTime)
	assert.Equal(t, WorldRecord{Agent: 10, Target: 0, Type: 1, Food: 2, Danger: 0, Dist: 10}, rec.World)
	require.Len(t, rec.Neurons, 2)
	assert.Equal(t, NeuronRecord{ID: 0, V: 1, S: false}, rec.Neurons[0])
	assert.Equal(t, NeuronRecord{ID: 1, V: 0, S: true}, rec.Neurons[1])
	require.Len(t, rec.Synapses, 1)
	assert.Equal(t, SynapseRecord{S: 0, T: 1, C: 3, A: true, B: false}, rec.Synapses[0])
}

func TestEmitWritesOneJSONLinePerRecordWithContractualKeys(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 0)

	require.NoError(t, enc.Emit(Record{T: 1}))
	require.NoError(t, enc.Emit(Record{T: 2}))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &decoded))
	for _, key := range []string{"t", "reward", "penalty", "reward_sum", "penalty_sum", "food_time", "danger_time", "world", "neurons", "synapses"} {
		assert.Contains(t, decoded, key)
	}
}

func TestRecentReturnsBoundedRingInInsertionOrder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 3)

	for tick := 0; tick < 5; tick++ {
		require.NoError(t, enc.Emit(Record{T: tick}))
	}

	recent := enc.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{recent[0].T, recent[1].T, recent[2].T})
}

func TestRecentDisabledWhenRingCapIsZero(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, 0)
	require.NoError(t, enc.Emit(Record{T: 1}))
	assert.Empty(t, enc.Recent())
}
