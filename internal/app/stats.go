package app

// Stats is in-memory bookkeeping for the current session.
type Stats struct {
	RoundsPlayed int
	BestScore    int
	LastScore    int
	FoodEaten    int
}

func (s *Stats) recordFood(score int) {
	s.FoodEaten++
	if score > s.BestScore {
		s.BestScore = score
	}
}

func (s *Stats) endRound(score int) {
	s.RoundsPlayed++
	s.LastScore = score
	if score > s.BestScore {
		s.BestScore = score
	}
}
