package service

import (
	"fmt"

	"rps_game/internal/domain"
	"rps_game/internal/game"
	"rps_game/internal/metrics"
)

// Match is one player's run of rounds against a single strategy: the
// orchestration step that ties the round use case to the score tracker.
type Match struct {
	rounds   *RoundService
	strategy game.Strategy
	tracker  *ScoreTracker
}

func NewMatch(rounds *RoundService, strategy game.Strategy) *Match {
	return &Match{
		rounds:   rounds,
		strategy: strategy,
		tracker:  NewScoreTracker(),
	}
}

// Play resolves one round, scores it and lets a learning strategy see the
// human's move. Invalid input is rejected before it reaches the resolver.
func (m *Match) Play(move domain.Move) (domain.Round, error) {
	if !move.Valid() {
		return domain.Round{}, fmt.Errorf("%w: %q", domain.ErrInvalidMove, string(move))
	}

	round := m.rounds.PlayRound(move, m.strategy)
	if err := m.tracker.Update(round.Outcome()); err != nil {
		return domain.Round{}, err
	}
	if rec, ok := m.strategy.(game.MoveRecorder); ok {
		rec.RecordHumanMove(move)
	}

	metrics.RoundsTotal.WithLabelValues(string(m.strategy.Kind()), string(round.Outcome())).Inc()
	return round, nil
}

func (m *Match) Reset() {
	m.tracker.Reset()
}

func (m *Match) Score() Score {
	return m.tracker.Snapshot()
}

func (m *Match) Strategy() game.StrategyKind {
	return m.strategy.Kind()
}
