package game

import (
	"fmt"
	"math/rand"
	"testing"

	"crazy-eights/internal/ai"
	"crazy-eights/internal/config"
)

func TestRunAutoplay(t *testing.T) {
	policy := ai.NewPolicy(testLogger())

	// GIVEN all-AI sessions across a spread of seeds and table sizes
	for _, players := range []int{2, 3, 4} {
		for seed := int64(1); seed <= 8; seed++ {
			t.Run(fmt.Sprintf("%d players seed %d", players, seed), func(t *testing.T) {
				cfg := config.Default()
				g, err := NewBuilder(cfg, testLogger(), rand.New(rand.NewSource(seed))).
					WithPlayers(players).WithHuman(false).Build()
				if err != nil {
					t.Fatalf("failed to build game: %v", err)
				}

				// WHEN the session runs to completion
				winner := g.RunAutoplay(policy, DefaultTurnCap)

				// THEN the 52-card set is conserved no matter the outcome
				if totalCards(g) != 52 {
					t.Errorf("expected 52 cards tracked, got %d", totalCards(g))
				}

				if winner == NoWinner {
					// A stalled game: the draw pile ran dry and nobody
					// could play. The session simply never terminated.
					if g.Status != StatusPlaying {
						t.Errorf("a stalled game should still be playing, got %s", g.Status)
					}
					return
				}

				if g.Status != StatusLost {
					t.Errorf("an all-AI session can only end lost, got %s", g.Status)
				}
				if g.WinnerID != winner {
					t.Errorf("winner mismatch: %d vs %d", g.WinnerID, winner)
				}
				if len(g.Players[winner].Hand) != 0 {
					t.Errorf("the winner should hold no cards, has %d", len(g.Players[winner].Hand))
				}
			})
		}
	}
}

func TestRunAutoplayRefusesHumanSeats(t *testing.T) {
	// GIVEN a session with a human at the table
	cfg := config.Default()
	g, err := NewBuilder(cfg, testLogger(), rand.New(rand.NewSource(1))).WithPlayers(2).Build()
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}

	// WHEN autoplay is asked to run it
	winner := g.RunAutoplay(ai.NewPolicy(testLogger()), DefaultTurnCap)

	// THEN it refuses rather than acting for the human
	if winner != NoWinner {
		t.Errorf("expected no winner, got %d", winner)
	}
	if g.Status != StatusPlaying {
		t.Errorf("expected the session untouched, got %s", g.Status)
	}
}

func TestApplyDecision(t *testing.T) {
	policy := ai.NewPolicy(testLogger())

	t.Run("a wild decision commits with its nominated suit", func(t *testing.T) {
		cfg := config.Default()
		g, err := NewBuilder(cfg, testLogger(), rand.New(rand.NewSource(3))).
			WithPlayers(2).WithHuman(false).Build()
		if err != nil {
			t.Fatalf("failed to build game: %v", err)
		}

		// Drive turns until the policy plays an eight or the game ends.
		for i := 0; i < DefaultTurnCap && g.Status == StatusPlaying; i++ {
			p := g.CurrentPlayer()
			d := policy.Decide(p.Hand, g.TopCard(), g.ActiveSuit)
			if !g.ApplyDecision(d) {
				t.Fatal("engine rejected a policy decision")
			}
			// An AI decision must never leave the session suspended.
			if g.Status == StatusWaitingForSuit {
				t.Fatal("ApplyDecision left the session waiting for a suit")
			}
		}
	})
}
