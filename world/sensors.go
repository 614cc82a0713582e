package world

// Sensors returns the four-bit readout — FoodLeft, FoodRight, DangerLeft,
// DangerRight, in that order — fed into the network's sensor neurons.
// Exactly one bit is set when a target is active; all four are zero when
// the target regime is NONE.
func (w *World) Sensors() [4]int {
	var s [4]int
	if w.Target == TargetNone {
		return s
	}

	diff := w.TargetPos - w.AgentPos
	switch w.Target {
	case TargetFood:
		switch {
		case diff < 0:
			s[0] = 1 // FoodLeft
		case diff > 0:
			s[1] = 1 // FoodRight
		}
	case TargetDanger:
		switch {
		case diff < 0:
			s[2] = 1 // DangerLeft
		case diff > 0:
			s[3] = 1 // DangerRight
		}
	}
	return s
}

// Stats is the snapshot-facing summary of world state for one tick.
type Stats struct {
	AgentPos   int
	TargetType int
	TargetPos  int
	Distance   int
	FoodEaten  int
	DangerHit  int
	FoodTime   int
	DangerTime int
}

// Stats reports the fields the snapshot encoder's world object needs.
func (w *World) Stats() Stats {
	dist := 0
	if w.Target != TargetNone {
		dist = abs(w.AgentPos - w.TargetPos)
	}
	return Stats{
		AgentPos:   w.AgentPos,
		TargetType: int(w.Target),
		TargetPos:  w.TargetPos,
		Distance:   dist,
		FoodEaten:  w.FoodEatenCount,
		DangerHit:  w.DangerHitCount,
		FoodTime:   w.FoodTimeTotal,
		DangerTime: w.DangerTimeTotal,
	}
}
