package service

import (
	"rps_game/internal/domain"
	"rps_game/internal/game"
	"rps_game/internal/logger"
)

// RoundService plays single rounds. It holds no state of its own.
type RoundService struct{}

func NewRoundService() *RoundService {
	return &RoundService{}
}

// PlayRound asks the strategy for the opponent's move and resolves the round.
// It does not feed the human move back to the strategy; callers using a
// game.MoveRecorder must do that themselves once the round is handled.
func (s *RoundService) PlayRound(human domain.Move, strategy game.Strategy) domain.Round {
	opponent := strategy.SelectMove()
	round := domain.NewRound(human, opponent)

	logger.Debug("round played", "strategy", strategy.Kind(), "round", round.ToDetails())
	return round
}
