package game

import "rps_game/internal/domain"

// FixedStrategy always plays the same move. Handy for tests and debugging.
type FixedStrategy struct {
	move domain.Move
}

func NewFixedStrategy(m domain.Move) *FixedStrategy {
	if !m.Valid() {
		panic("game: fixed strategy with invalid move " + string(m))
	}
	return &FixedStrategy{move: m}
}

func (s *FixedStrategy) Kind() StrategyKind {
	return KindFixed
}

func (s *FixedStrategy) SelectMove() domain.Move {
	return s.move
}
