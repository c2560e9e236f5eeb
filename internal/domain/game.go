package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Move - ход игрока
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// AllMoves is the closed set of moves in selection order.
var AllMoves = [3]Move{MoveRock, MovePaper, MoveScissors}

var ErrInvalidMove = errors.New("invalid move")

// Valid reports whether m is one of the three known moves.
func (m Move) Valid() bool {
	switch m {
	case MoveRock, MovePaper, MoveScissors:
		return true
	}
	return false
}

// Symbol returns the glyph used by the console renderer.
func (m Move) Symbol() string {
	switch m {
	case MoveRock:
		return "🪨"
	case MovePaper:
		return "📄"
	case MoveScissors:
		return "✂️"
	}
	panic(fmt.Sprintf("domain: invalid move %q", string(m)))
}

// ParseMove maps user input (full name, initial or 1-based menu number) to a Move.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r", "1":
		return MoveRock, nil
	case "paper", "p", "2":
		return MovePaper, nil
	case "scissors", "s", "3":
		return MoveScissors, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// Beats returns the move that defeats m.
func Beats(m Move) Move {
	switch m {
	case MoveRock:
		return MovePaper
	case MovePaper:
		return MoveScissors
	case MoveScissors:
		return MoveRock
	}
	panic(fmt.Sprintf("domain: invalid move %q", string(m)))
}

// Outcome - результат раунда с точки зрения игрока
type Outcome string

const (
	OutcomeWinner Outcome = "win"
	OutcomeLoser  Outcome = "lose"
	OutcomeDraw   Outcome = "draw"
)

// Valid reports whether o is one of the three known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWinner, OutcomeLoser, OutcomeDraw:
		return true
	}
	return false
}

// Resolve decides the round from the human player's side.
func Resolve(human, opponent Move) Outcome {
	if !human.Valid() || !opponent.Valid() {
		panic(fmt.Sprintf("domain: invalid moves %q vs %q", string(human), string(opponent)))
	}

	if human == opponent {
		return OutcomeDraw
	}
	if Beats(human) == opponent {
		return OutcomeLoser
	}
	return OutcomeWinner
}

// Round - один сыгранный раунд. Outcome is fixed at construction.
type Round struct {
	human    Move
	opponent Move
	outcome  Outcome
}

func NewRound(human, opponent Move) Round {
	return Round{
		human:    human,
		opponent: opponent,
		outcome:  Resolve(human, opponent),
	}
}

func (r Round) HumanMove() Move    { return r.human }
func (r Round) OpponentMove() Move { return r.opponent }
func (r Round) Outcome() Outcome   { return r.outcome }

// ToDetails returns the round as a flat map for logs and API payloads.
func (r Round) ToDetails() map[string]interface{} {
	return map[string]interface{}{
		"move":    r.human,
		"bot":     r.opponent,
		"outcome": r.outcome,
	}
}
