package game

import (
	"math/rand"

	"rps_game/internal/domain"
)

// RandomStrategy picks uniformly among the three moves.
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(seed int64) *RandomStrategy {
	return &RandomStrategy{rng: newRand(seed)}
}

func (s *RandomStrategy) Kind() StrategyKind {
	return KindRandom
}

func (s *RandomStrategy) SelectMove() domain.Move {
	return randomMove(s.rng)
}
