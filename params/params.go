package params

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Parameters is the central, immutable record controlling network and world
// dynamics. Values are copied, never shared by pointer, so a Brain and a
// World constructed from the same Parameters cannot observe a mutation made
// through another holder's copy.
type Parameters struct {
	VThresh    int `toml:"v_thresh"`
	VRest      int `toml:"v_rest"`
	Refractory int `toml:"refractory_period"`

	MembraneDecayPeriod int `toml:"membrane_decay_period"`

	ConfidenceMax   int `toml:"confidence_max"`
	ConfidenceThr   int `toml:"confidence_thr"`
	ConfidenceInitLo int `toml:"confidence_init_lo"`
	ConfidenceInitHi int `toml:"confidence_init_hi"`

	SpikeTraceWindow       int `toml:"spike_trace_window"`
	EligibilityTraceWindow int `toml:"eligibility_trace_window"`
	ConfidenceLeakPeriod   int `toml:"confidence_leak_period"`
	ReinforcementInertia   int `toml:"reinforcement_inertia_period"`

	PruningPeriod int `toml:"pruning_period"`

	WorldSize          int     `toml:"world_size"`
	BrainSize          int     `toml:"brain_size"`
	ConnectionDensity  float64 `toml:"connection_density"`

	RandomActivityCount  int `toml:"random_activity_count"`
	RandomActivityPeriod int `toml:"random_activity_period"`

	MaxHistory int `toml:"max_history"`
	MaxTrace   int `toml:"max_trace"`

	// DebugAssertions enables the O(N) per-tick invariant walk described in
	// SPEC_FULL.md's supplement to the tick engine. Off by default.
	DebugAssertions bool `toml:"debug_assertions"`
}

// Sensor / motor / fanout / fanin / hidden index boundaries, derived from
// BrainSize in the shipped configuration (36 neurons). These are expressed
// as methods rather than constants because a future override of BrainSize
// must keep the hidden range in sync with it.

// SensorCount is the number of external-input-only neurons (indices 0..3).
func (p Parameters) SensorCount() int { return 4 }

// MotorCount is the number of world-readout neurons (indices 4..5).
func (p Parameters) MotorCount() int { return 2 }

// FanoutCount is the number of sensor-fanout neurons (indices 6..9).
func (p Parameters) FanoutCount() int { return 4 }

// FaninCount is the number of motor-fanin neurons (indices 10..11).
func (p Parameters) FaninCount() int { return 2 }

// SensorStart/End etc. define the half-open index ranges for each role.
func (p Parameters) SensorStart() int { return 0 }
func (p Parameters) SensorEnd() int   { return p.SensorStart() + p.SensorCount() }

func (p Parameters) MotorStart() int { return p.SensorEnd() }
func (p Parameters) MotorEnd() int   { return p.MotorStart() + p.MotorCount() }

func (p Parameters) FanoutStart() int { return p.MotorEnd() }
func (p Parameters) FanoutEnd() int   { return p.FanoutStart() + p.FanoutCount() }

func (p Parameters) FaninStart() int { return p.FanoutEnd() }
func (p Parameters) FaninEnd() int   { return p.FaninStart() + p.FaninCount() }

func (p Parameters) HiddenStart() int { return p.FaninEnd() }
func (p Parameters) HiddenEnd() int   { return p.BrainSize }

// IsSensor, IsMotor, IsFanout, IsFanin, IsHidden classify a neuron index by
// range rather than by subtype, per the "encode role as a function of index
// range" design note.
func (p Parameters) IsSensor(i int) bool { return i >= p.SensorStart() && i < p.SensorEnd() }
func (p Parameters) IsMotor(i int) bool  { return i >= p.MotorStart() && i < p.MotorEnd() }
func (p Parameters) IsFanout(i int) bool { return i >= p.FanoutStart() && i < p.FanoutEnd() }
func (p Parameters) IsFanin(i int) bool  { return i >= p.FaninStart() && i < p.FaninEnd() }
func (p Parameters) IsHidden(i int) bool { return i >= p.HiddenStart() && i < p.HiddenEnd() }

// Default returns the shipped reference configuration from spec.md §4.A.
func Default() Parameters {
	return Parameters{
		VThresh:    2,
		VRest:      0,
		Refractory: 1,

		MembraneDecayPeriod: 750,

		ConfidenceMax:    5,
		ConfidenceThr:    1,
		ConfidenceInitLo: 1,
		ConfidenceInitHi: 5,

		SpikeTraceWindow:       10,
		EligibilityTraceWindow: 100,
		ConfidenceLeakPeriod:   5300,
		ReinforcementInertia:   10,

		PruningPeriod: 150,

		WorldSize:         60,
		BrainSize:         36,
		ConnectionDensity: 0.1,

		RandomActivityCount:  1,
		RandomActivityPeriod: 5,

		MaxHistory: 32,
		MaxTrace:   12,
	}
}

// LoadOverrides merges a TOML file onto the default parameter set. Keys
// absent from the file keep their default values; keys present in the file
// that do not name a known field are a configuration fault and are
// rejected, never silently dropped.
func LoadOverrides(path string) (Parameters, error) {
	p := Default()
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Parameters{}, fmt.Errorf("params: decoding %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Parameters{}, fmt.Errorf("params: %s contains unknown keys: %v", path, undecoded)
	}
	return p, nil
}
