package ai

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"crazy-eights/internal/deck"
)

func testPolicy() *Policy {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewPolicy(log)
}

func newSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestDecideDrawsWithNoLegalCard(t *testing.T) {
	// GIVEN a hand with nothing playable on a diamond five
	policy := testPolicy()
	hand := []deck.Card{
		deck.NewCard(deck.Spades, deck.Three),
		deck.NewCard(deck.Clubs, deck.Seven),
	}
	top := deck.NewCard(deck.Diamonds, deck.Five)

	// WHEN the policy decides
	d := policy.Decide(hand, &top, deck.NoSuit)

	// THEN it draws
	if !d.Draw {
		t.Errorf("expected a draw decision, got play %s", d.Card)
	}
}

func TestDecidePrefersNonEight(t *testing.T) {
	// GIVEN a playable seven and a playable eight
	policy := testPolicy()
	hand := []deck.Card{
		deck.NewCard(deck.Hearts, deck.Eight),
		deck.NewCard(deck.Diamonds, deck.Seven),
	}
	top := deck.NewCard(deck.Diamonds, deck.Five)

	// WHEN the policy decides
	d := policy.Decide(hand, &top, deck.NoSuit)

	// THEN it saves the eight
	if d.Draw {
		t.Fatal("expected a play decision, got draw")
	}
	if d.Card.ID != "diamonds-7" {
		t.Errorf("expected diamonds-7, got %s", d.Card.ID)
	}
	if d.ChosenSuit != deck.NoSuit {
		t.Errorf("expected no suit nomination for a non-eight, got %s", d.ChosenSuit)
	}
}

func TestDecidePlaysEightWhenOnlyLegal(t *testing.T) {
	// GIVEN the scenario: hand ♠3 ♥8 ♣3 against a ♦5 with no active suit
	policy := testPolicy()
	hand := []deck.Card{
		deck.NewCard(deck.Spades, deck.Three),
		deck.NewCard(deck.Hearts, deck.Eight),
		deck.NewCard(deck.Clubs, deck.Three),
	}
	top := deck.NewCard(deck.Diamonds, deck.Five)

	// WHEN the policy decides
	d := policy.Decide(hand, &top, deck.NoSuit)

	// THEN only the eight is legal, so it is played
	if d.Draw {
		t.Fatal("expected a play decision, got draw")
	}
	if d.Card.ID != "hearts-8" {
		t.Fatalf("expected hearts-8, got %s", d.Card.ID)
	}

	t.Run("the suit tie resolves by enumeration order", func(t *testing.T) {
		// Remaining hand is one spade and one club; clubs precedes
		// spades in the suit enumeration, so clubs wins the tie.
		if d.ChosenSuit != deck.Clubs {
			t.Errorf("expected clubs, got %s", d.ChosenSuit)
		}
	})
}

func TestDecideNominatesMostHeldSuit(t *testing.T) {
	// GIVEN an eight and a hand dominated by spades
	policy := testPolicy()
	hand := []deck.Card{
		deck.NewCard(deck.Hearts, deck.Eight),
		deck.NewCard(deck.Hearts, deck.Two),
		deck.NewCard(deck.Spades, deck.Four),
		deck.NewCard(deck.Spades, deck.Nine),
	}
	top := deck.NewCard(deck.Diamonds, deck.Five)

	// WHEN the policy decides
	d := policy.Decide(hand, &top, deck.NoSuit)

	// THEN the eight nominates spades, not counting the eight itself
	if d.Card.ID != "hearts-8" {
		t.Fatalf("expected hearts-8, got %s", d.Card.ID)
	}
	if d.ChosenSuit != deck.Spades {
		t.Errorf("expected spades, got %s", d.ChosenSuit)
	}
}

func TestDecideRespectsActiveSuit(t *testing.T) {
	// GIVEN a hand that matches the top card's suit but not the override
	policy := testPolicy()
	hand := []deck.Card{
		deck.NewCard(deck.Diamonds, deck.Seven),
	}
	top := deck.NewCard(deck.Diamonds, deck.Five)

	// WHEN spades was called by a preceding eight
	d := policy.Decide(hand, &top, deck.Spades)

	// THEN the diamond is no longer playable
	if !d.Draw {
		t.Errorf("expected a draw decision under the spades override, got play %s", d.Card)
	}
}

func TestNamePool(t *testing.T) {
	// GIVEN a pool over a two-name list with a fixed seed
	pool := NewNamePool(newSeededRand(), []string{"Ada", "Alan"})

	// WHEN more names are requested than the pool holds
	first, second, third := pool.Next(), pool.Next(), pool.Next()

	// THEN names carry the AI suffix and the pool wraps around
	if first != "Ada (AI)" && first != "Alan (AI)" {
		t.Errorf("unexpected name %q", first)
	}
	if first == second {
		t.Errorf("expected distinct names, got %q twice", first)
	}
	if third != first {
		t.Errorf("expected the pool to wrap, got %q then %q", first, third)
	}
}
