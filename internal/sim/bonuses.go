package sim

// Bonuses are the aggregate multipliers derived from buildings, active
// policies, completed R&D and temporary boosts. Nothing here is persisted;
// the weekly pass and release scoring both recompute it from scratch, so
// the calculation must stay free of randomness.
type Bonuses struct {
	DevSpeed             float64
	ReviewScore          float64
	RnDSpeed             float64
	DepartmentEfficiency map[string]float64
}

// CalculateBonuses derives the current multipliers. boostDeltas maps
// department name to the transient efficiency delta contributed by active
// temporary boosts; the caller decides which boosts count (the weekly pass
// uses post-decrement survivors, release scoring uses the live set).
func CalculateBonuses(s *State, boostDeltas map[string]float64) Bonuses {
	b := Bonuses{
		DevSpeed:             1.0,
		RnDSpeed:             1.0,
		DepartmentEfficiency: make(map[string]float64, len(boostDeltas)),
	}
	for name, delta := range boostDeltas {
		b.DepartmentEfficiency[name] = delta
	}

	for _, bld := range s.Buildings {
		switch bld.Type {
		case BuildingLab:
			b.RnDSpeed += 0.2
		case BuildingMotionCapture:
			b.ReviewScore += 5
		}
	}

	for _, p := range s.ActivePolicies {
		switch p.PolicyID {
		case PolicyAIDev:
			b.DevSpeed += 0.25
		case PolicyQAReinforcement:
			b.ReviewScore += 10
		case PolicySalaryNegotiation:
			for _, d := range s.Departments {
				b.DepartmentEfficiency[d.Name] += 5
			}
		}
	}

	for _, r := range s.CompletedRnD {
		switch r.ID {
		case RnDEngine:
			b.DevSpeed += 0.15
		case RnDAISupport:
			b.DevSpeed += 0.10
		case RnDAINPC:
			b.ReviewScore += 5
		case RnDPhysics:
			b.ReviewScore += 3
		}
	}

	return b
}

// activeBoostDeltas sums the live (pre-decrement) efficiency boosts per
// department, skipping departments that no longer exist.
func (s *State) activeBoostDeltas() map[string]float64 {
	deltas := make(map[string]float64)
	for _, b := range s.Boosts {
		if b.Kind != BoostEfficiency || b.WeeksRemaining <= 0 {
			continue
		}
		if s.Department(b.DepartmentName) == nil {
			continue
		}
		deltas[b.DepartmentName] += b.Amount
	}
	return deltas
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
