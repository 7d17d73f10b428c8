package game

type Stats struct {
	Score        int
	Combo        int
	MaxCombo     int
	Hits         int
	TotalSpawned int
	PerfectCount int
	GreatCount   int
	GoodCount    int
	MissCount    int
}

// Accuracy as a percentage of spawned notes that were hit,
// 100 before anything has spawned.
func (s Stats) Accuracy() float64 {
	if s.TotalSpawned == 0 {
		return 100
	}
	return float64(s.Hits) / float64(s.TotalSpawned) * 100
}

// Record applies a judgement to the aggregates. None is ignored.
func (s *Stats) Record(j Judgement) {
	switch j {
	case None:
		return
	case Miss:
		s.MissCount++
		s.Combo = 0
	default:
		switch j {
		case Perfect:
			s.PerfectCount++
		case Great:
			s.GreatCount++
		case Good:
			s.GoodCount++
		}
		s.Score += j.Points()
		s.Combo++
		s.Hits++
	}
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
}
