package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"rps_game/internal/domain"
	"rps_game/internal/game"
	"rps_game/internal/logger"
	"rps_game/internal/metrics"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is an in-memory match owned by one client. Sessions live only as
// long as the process and are evicted after a period of inactivity.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	match      *Match
	lastActive time.Time
}

func (s *Session) Strategy() game.StrategyKind {
	return s.match.Strategy()
}

// PlayResult is the outcome of one round plus the score after it.
type PlayResult struct {
	Move    domain.Move    `json:"move"`
	Bot     domain.Move    `json:"bot"`
	Outcome domain.Outcome `json:"outcome"`
	Score   Score          `json:"score"`
}

// SessionService keeps sessions keyed by id.
type SessionService struct {
	factory  *game.Factory
	rounds   *RoundService
	sessions map[string]*Session
	mu       sync.RWMutex
	now      func() time.Time
	onEvict  func(id string)
}

func NewSessionService(factory *game.Factory) *SessionService {
	return &SessionService{
		factory:  factory,
		rounds:   NewRoundService(),
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// OnEvict registers fn to run for every session removed by Cleanup,
// after the session table lock is released.
func (s *SessionService) OnEvict(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

func (s *SessionService) Create(kind game.StrategyKind) (*Session, error) {
	strategy, err := s.factory.CreateStrategy(kind)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &Session{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		match:      NewMatch(s.rounds, strategy),
		lastActive: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	metrics.SessionsActive.Inc()
	logger.Info("session created", "session_id", sess.ID, "strategy", kind)
	return sess, nil
}

func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Play runs one round in the session. Rounds of a session never overlap.
func (s *SessionService) Play(id string, move domain.Move) (*PlayResult, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	round, err := sess.match.Play(move)
	if err != nil {
		return nil, err
	}
	sess.lastActive = s.now()

	return &PlayResult{
		Move:    round.HumanMove(),
		Bot:     round.OpponentMove(),
		Outcome: round.Outcome(),
		Score:   sess.match.Score(),
	}, nil
}

func (s *SessionService) Score(id string) (Score, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Score{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.match.Score(), nil
}

func (s *SessionService) Reset(id string) (Score, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Score{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.match.Reset()
	sess.lastActive = s.now()
	logger.Info("score reset", "session_id", id)
	return sess.match.Score(), nil
}

func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	metrics.SessionsActive.Dec()
	logger.Info("session deleted", "session_id", id)
	return nil
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup evicts sessions idle for longer than ttl and returns how many went.
func (s *SessionService) Cleanup(ttl time.Duration) int {
	s.mu.Lock()
	now := s.now()
	var evicted []string
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastActive)
		sess.mu.Unlock()

		if idle > ttl {
			delete(s.sessions, id)
			metrics.SessionsActive.Dec()
			evicted = append(evicted, id)
		}
	}
	remaining := len(s.sessions)
	onEvict := s.onEvict
	s.mu.Unlock()

	if len(evicted) > 0 {
		logger.Info("stale sessions removed", "count", len(evicted), "remaining", remaining)
	}
	if onEvict != nil {
		for _, id := range evicted {
			onEvict(id)
		}
	}
	return len(evicted)
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (s *SessionService) StartCleanup(ctx context.Context, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup(ttl)
			}
		}
	}()
}
