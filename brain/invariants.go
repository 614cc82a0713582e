package brain

import "fmt"

// CheckInvariants walks the whole network and returns the first violation
// of an invariant spec.md and its design notes call out as always true.
// It is O(synapses + neurons) and meant to be called from the driver loop
// only when Parameters.DebugAssertions is set — the reference build never
// pays for it.
func (b *Brain) CheckInvariants() error {
	p := b.Params

	for src, list := range b.Synapses {
		for idx, s := range list {
			if s.Confidence < 0 || s.Confidence > p.ConfidenceMax {
				return fmt.Errorf("brain: synapse %d[%d]: confidence %d out of range [0,%d]", src, idx, s.Confidence, p.ConfidenceMax)
			}
			if s.Active != (s.Confidence >= p.ConfidenceThr) {
				return fmt.Errorf("brain: synapse %d[%d]: active=%v inconsistent with confidence %d", src, idx, s.Active, s.Confidence)
			}
			if p.IsSensor(s.Target) {
				return fmt.Errorf("brain: synapse %d[%d]: targets sensor %d", src, idx, s.Target)
			}
			if s.Target == p.MotorStart() && src != p.FaninStart() {
				return fmt.Errorf("brain: synapse %d[%d]: only fanin %d may drive motor %d, got source %d", src, idx, p.FaninStart(), s.Target, src)
			}
			if s.Target == p.MotorStart()+1 && src != p.FaninStart()+1 {
				return fmt.Errorf("brain: synapse %d[%d]: only fanin %d may drive motor %d, got source %d", src, idx, p.FaninStart()+1, s.Target, src)
			}
		}
	}

	for m := p.MotorStart(); m < p.MotorEnd(); m++ {
		if !b.hasAnyIncoming(m) {
			return fmt.Errorf("brain: motor %d has no incoming synapse", m)
		}
	}

	for i, n := range b.Neurons {
		if n.RefractoryTimer > 0 && (n.Voltage != p.VRest || n.InputBuffer != 0) {
			return fmt.Errorf("brain: neuron %d: refractory but voltage=%d inputBuffer=%d", i, n.Voltage, n.InputBuffer)
		}
	}

	return nil
}

func (b *Brain) hasAnyIncoming(target int) bool {
	for _, list := range b.Synapses {
		for _, s := range list {
			if s.Target == target {
				return true
			}
		}
	}
	return false
}
