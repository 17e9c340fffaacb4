package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crazy-eights/internal/config"
)

func schedulerFixture(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	g, err := NewBuilder(cfg, testLogger(), rand.New(rand.NewSource(1))).
		WithPlayers(2).WithHuman(false).Build()
	require.NoError(t, err)
	return g
}

func TestSchedulerApplies(t *testing.T) {
	// GIVEN a live session and a task for its current turn
	g := schedulerFixture(t)
	s := NewScheduler(testLogger())
	applied := false

	// WHEN the delay elapses
	ok := s.Run(context.Background(), TokenFor(g), time.Millisecond, func() *Game { return g }, func() {
		applied = true
	})

	// THEN the decision is applied
	require.True(t, ok)
	assert.True(t, applied)
}

func TestSchedulerCancel(t *testing.T) {
	// GIVEN a task with a long thinking delay
	g := schedulerFixture(t)
	s := NewScheduler(testLogger())
	applied := false
	result := make(chan bool, 1)

	go func() {
		result <- s.Run(context.Background(), TokenFor(g), 10*time.Second, func() *Game { return g }, func() {
			applied = true
		})
	}()

	// WHEN the task is cancelled mid-delay
	time.Sleep(50 * time.Millisecond)
	s.Cancel()

	// THEN it returns promptly without applying
	select {
	case ok := <-result:
		assert.False(t, ok)
		assert.False(t, applied)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled task did not return")
	}
}

func TestSchedulerDropsStaleTurn(t *testing.T) {
	// GIVEN a token captured for a turn the game has since moved past
	g := schedulerFixture(t)
	s := NewScheduler(testLogger())
	stale := Token{Session: g.ID, Turn: g.CurrentTurnIndex + 1}
	applied := false

	ok := s.Run(context.Background(), stale, time.Millisecond, func() *Game { return g }, func() {
		applied = true
	})

	// THEN the decision is discarded, not applied to the wrong turn
	assert.False(t, ok)
	assert.False(t, applied)
}

func TestSchedulerDropsReplacedSession(t *testing.T) {
	// GIVEN a token from a session that was reset before the task fired
	old := schedulerFixture(t)
	replacement := schedulerFixture(t)
	s := NewScheduler(testLogger())
	applied := false

	ok := s.Run(context.Background(), TokenFor(old), time.Millisecond, func() *Game { return replacement }, func() {
		applied = true
	})

	// THEN the stale decision never touches the new session
	assert.False(t, ok)
	assert.False(t, applied)
}
