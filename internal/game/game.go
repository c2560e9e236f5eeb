package game

import (
	"math/rand"
	"time"

	"rps_game/internal/domain"
)

// StrategyKind names an opponent strategy.
type StrategyKind string

const (
	KindRandom  StrategyKind = "random"
	KindCounter StrategyKind = "counter"
	KindFixed   StrategyKind = "fixed"
)

// Kinds lists the strategies the factory can build.
var Kinds = []StrategyKind{KindRandom, KindCounter, KindFixed}

// Strategy picks the opponent's move for the next round.
type Strategy interface {
	Kind() StrategyKind
	SelectMove() domain.Move
}

// MoveRecorder is implemented by strategies that learn from the human's moves.
// The orchestrator calls RecordHumanMove after each round.
type MoveRecorder interface {
	RecordHumanMove(m domain.Move)
}

// newRand returns a generator for seed; zero means seed from the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randomMove(r *rand.Rand) domain.Move {
	return domain.AllMoves[r.Intn(len(domain.AllMoves))]
}
