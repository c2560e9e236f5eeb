package game

import (
	"math/rand"

	"rps_game/internal/domain"
)

// CounterStrategy plays the move that beats the human's previous move,
// assuming people tend to repeat themselves. Without history it plays randomly.
type CounterStrategy struct {
	rng     *rand.Rand
	last    domain.Move
	hasLast bool
}

func NewCounterStrategy(seed int64) *CounterStrategy {
	return &CounterStrategy{rng: newRand(seed)}
}

func (s *CounterStrategy) Kind() StrategyKind {
	return KindCounter
}

func (s *CounterStrategy) SelectMove() domain.Move {
	if !s.hasLast {
		return randomMove(s.rng)
	}
	return domain.Beats(s.last)
}

// RecordHumanMove remembers m for the next SelectMove call.
func (s *CounterStrategy) RecordHumanMove(m domain.Move) {
	if !m.Valid() {
		panic("game: RecordHumanMove with invalid move " + string(m))
	}
	s.last = m
	s.hasLast = true
}

// LastHumanMove returns the recorded move, if any.
func (s *CounterStrategy) LastHumanMove() (domain.Move, bool) {
	return s.last, s.hasLast
}
