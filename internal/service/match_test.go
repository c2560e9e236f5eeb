package service

import (
	"errors"
	"testing"

	"rps_game/internal/domain"
	"rps_game/internal/game"
)

func TestMatchPlayScoresRounds(t *testing.T) {
	m := NewMatch(NewRoundService(), game.NewFixedStrategy(domain.MoveRock))

	for _, mv := range []domain.Move{domain.MovePaper, domain.MovePaper, domain.MoveScissors, domain.MoveRock} {
		if _, err := m.Play(mv); err != nil {
			t.Fatalf("Play(%s): %v", mv, err)
		}
	}

	sc := m.Score()
	if sc.Wins != 2 || sc.Losses != 1 || sc.Ties != 1 || sc.Rounds != 4 {
		t.Fatalf("score = %+v", sc)
	}
	if sc.Standing != StandingPlayerAhead {
		t.Fatalf("standing = %s", sc.Standing)
	}

	m.Reset()
	if sc := m.Score(); sc.Rounds != 0 || sc.Standing != StandingTied {
		t.Fatalf("score after reset = %+v", sc)
	}
}

func TestMatchFeedsCounterStrategy(t *testing.T) {
	m := NewMatch(NewRoundService(), game.NewCounterStrategy(5))

	if _, err := m.Play(domain.MoveRock); err != nil {
		t.Fatalf("Play: %v", err)
	}
	// the counter now expects rock again and answers with paper
	r, err := m.Play(domain.MoveScissors)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if r.OpponentMove() != domain.MovePaper {
		t.Fatalf("opponent played %s; want paper", r.OpponentMove())
	}
	if r.Outcome() != domain.OutcomeWinner {
		t.Fatalf("outcome = %s; want win", r.Outcome())
	}
}

func TestMatchRejectsInvalidMove(t *testing.T) {
	m := NewMatch(NewRoundService(), game.NewRandomStrategy(1))
	if _, err := m.Play(domain.Move("spock")); !errors.Is(err, domain.ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if m.Score().Rounds != 0 {
		t.Fatalf("invalid move was scored")
	}
}
