package service

import (
	"errors"
	"fmt"

	"rps_game/internal/domain"
)

var ErrInvalidOutcome = errors.New("invalid outcome")

// Standing - кто ведёт в счёте
type Standing string

const (
	StandingPlayerAhead   Standing = "player_ahead"
	StandingOpponentAhead Standing = "opponent_ahead"
	StandingTied          Standing = "tied"
)

// Message returns the fixed text shown for the standing.
func (s Standing) Message() string {
	switch s {
	case StandingPlayerAhead:
		return "You're in the lead!"
	case StandingOpponentAhead:
		return "The computer is winning!"
	default:
		return "It's tied!"
	}
}

// Score is a read-only snapshot of a tracker.
type Score struct {
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Ties     int      `json:"ties"`
	Rounds   int      `json:"rounds"`
	Standing Standing `json:"standing"`
	Message  string   `json:"message"`
}

// ScoreTracker counts outcomes from the human player's side.
// It is not safe for concurrent use; sessions guard it with their own lock.
type ScoreTracker struct {
	wins   int
	losses int
	ties   int
}

func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

func (t *ScoreTracker) Update(o domain.Outcome) error {
	switch o {
	case domain.OutcomeWinner:
		t.wins++
	case domain.OutcomeLoser:
		t.losses++
	case domain.OutcomeDraw:
		t.ties++
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, string(o))
	}
	return nil
}

func (t *ScoreTracker) Reset() {
	t.wins = 0
	t.losses = 0
	t.ties = 0
}

func (t *ScoreTracker) Wins() int   { return t.wins }
func (t *ScoreTracker) Losses() int { return t.losses }
func (t *ScoreTracker) Ties() int   { return t.ties }

func (t *ScoreTracker) RoundsPlayed() int {
	return t.wins + t.losses + t.ties
}

// Standing compares wins and losses only; ties never break a tie.
func (t *ScoreTracker) Standing() Standing {
	if t.wins > t.losses {
		return StandingPlayerAhead
	}
	if t.losses > t.wins {
		return StandingOpponentAhead
	}
	return StandingTied
}

func (t *ScoreTracker) Snapshot() Score {
	st := t.Standing()
	return Score{
		Wins:     t.wins,
		Losses:   t.losses,
		Ties:     t.ties,
		Rounds:   t.RoundsPlayed(),
		Standing: st,
		Message:  st.Message(),
	}
}
