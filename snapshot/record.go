package snapshot

import (
	"github.com/evgenyagantaev/binary-rstdp/neuron"
	"github.com/evgenyagantaev/binary-rstdp/synapse"
	"github.com/evgenyagantaev/binary-rstdp/world"
)

// WorldRecord is the nested "world" object of a Record. Field names are
// contractual per §6 and must not be renamed.
type WorldRecord struct {
	Agent  int `json:"agent"`
	Target int `json:"target"`
	Type   int `json:"type"`
	Food   int `json:"food"`
	Danger int `json:"danger"`
	Dist   int `json:"dist"`
}

// NeuronRecord is one entry of a Record's "neurons" array.
type NeuronRecord struct {
	ID int  `json:"id"`
	V  int  `json:"v"`
	S  bool `json:"s"`
}

// SynapseRecord is one entry of a Record's "synapses" array.
type SynapseRecord struct {
	S int  `json:"s"`
	T int  `json:"t"`
	C int  `json:"c"`
	A bool `json:"a"`
	B bool `json:"b"`
}

// Record is one tick's complete snapshot, ready for JSON encoding.
type Record struct {
	T          int             `json:"t"`
	Reward     bool            `json:"reward"`
	Penalty    bool            `json:"penalty"`
	RewardSum  int             `json:"reward_sum"`
	PenaltySum int             `json:"penalty_sum"`
	FoodTime   int             `json:"food_time"`
	DangerTime int             `json:"danger_time"`
	World      WorldRecord     `json:"world"`
	Neurons    []NeuronRecord  `json:"neurons"`
	Synapses   []SynapseRecord `json:"synapses"`
}

// Build assembles a Record from the dense network and world state the
// driver holds after running one tick.
func Build(tick int, reward, penalty bool, rewardSum, penaltySum int, w world.Stats, neurons []neuron.Neuron, synapses [][]synapse.Synapse) Record {
	neuronRecords := make([]NeuronRecord, len(neurons))
	for i, n := range neurons {
		neuronRecords[i] = NeuronRecord{ID: i, V: n.Voltage, S: n.SpikedThisStep}
	}

	synapseRecords := make([]SynapseRecord, 0)
	for source, list := range synapses {
		for _, s := range list {
			synapseRecords = append(synapseRecords, SynapseRecord{
				S: source,
				T: s.Target,
				C: s.Confidence,
				A: s.Active,
				B: s.Highlighted,
			})
		}
	}

	return Record{
		T:          tick,
		Reward:     reward,
		Penalty:    penalty,
		RewardSum:  rewardSum,
		PenaltySum: penaltySum,
		FoodTime:   w.FoodTime,
		DangerTime: w.DangerTime,
		World: WorldRecord{
			Agent:  w.AgentPos,
			Target: w.TargetPos,
			Type:   w.TargetType,
			Food:   w.FoodEaten,
			Danger: w.DangerHit,
			Dist:   w.Distance,
		},
		Neurons:  neuronRecords,
		Synapses: synapseRecords,
	}
}
