package game

import (
	"errors"
	"fmt"

	"rps_game/internal/domain"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory builds strategies. Seed 0 seeds from the clock; a non-zero seed
// makes every strategy built by this factory reproducible.
type Factory struct {
	seed      int64
	fixedMove domain.Move
}

func NewFactory(seed int64, fixedMove domain.Move) *Factory {
	if fixedMove == "" {
		fixedMove = domain.MoveRock
	}
	return &Factory{seed: seed, fixedMove: fixedMove}
}

// ParseKind validates a strategy name.
func ParseKind(s string) (StrategyKind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}

func (f *Factory) CreateStrategy(kind StrategyKind) (Strategy, error) {
	switch kind {
	case KindRandom:
		return NewRandomStrategy(f.seed), nil
	case KindCounter:
		return NewCounterStrategy(f.seed), nil
	case KindFixed:
		if !f.fixedMove.Valid() {
			return nil, fmt.Errorf("fixed strategy: %w: %s", domain.ErrInvalidMove, f.fixedMove)
		}
		return NewFixedStrategy(f.fixedMove), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
	}
}
