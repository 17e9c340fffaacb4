package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Token ties a scheduled AI decision to the session and turn it was
// computed for. A decision whose token no longer matches the live game is
// stale and must be discarded, never applied.
type Token struct {
	Session uuid.UUID
	Turn    int
}

// TokenFor captures the current session/turn identity of a game.
func TokenFor(g *Game) Token {
	return Token{Session: g.ID, Turn: g.CurrentTurnIndex}
}

// Scheduler runs the AI "thinking" delay as a cancelable task. Cancel
// aborts the delay of the task in flight; a task that outlives its token
// (the session was reset or the turn moved on) is dropped at fire time.
type Scheduler struct {
	log    *logrus.Logger
	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewScheduler(log *logrus.Logger) *Scheduler {
	return &Scheduler{log: log}
}

// Run blocks for delay, then applies fn if token still matches the game
// returned by live. It reports whether fn was applied.
func (s *Scheduler) Run(ctx context.Context, token Token, delay time.Duration, live func() *Game, fn func()) bool {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		s.log.Debugf("scheduler: ai task for turn %d cancelled", token.Turn)
		return false
	}

	g := live()
	if g == nil || g.ID != token.Session || g.CurrentTurnIndex != token.Turn || g.Status != StatusPlaying {
		s.log.Debugf("scheduler: dropping stale ai task for turn %d", token.Turn)
		return false
	}
	fn()
	return true
}

// Cancel aborts the task currently in flight, if any.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
