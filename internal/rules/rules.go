// Package rules holds the shared Crazy Eights rule predicates. The engine,
// the AI policy and the CLI playable-card indicator must all agree on what a
// legal move is, so the predicate lives here exactly once.
package rules

import (
	"sort"

	"crazy-eights/internal/deck"
)

// IsValidMove reports whether card may be played onto top given an optional
// active suit override (deck.NoSuit when none). An Eight is always legal.
// For any other card the required suit is the override when set, else the
// top card's suit; matching the top card's rank is also legal.
func IsValidMove(card deck.Card, top *deck.Card, active deck.Suit) bool {
	if card.Rank == deck.Eight {
		return true
	}
	if top == nil {
		return false
	}
	required := top.Suit
	if active != deck.NoSuit {
		required = active
	}
	return card.Suit == required || card.Rank == top.Rank
}

// suit display priority for the human hand: spades, hearts, clubs, diamonds.
var sortSuitOrder = map[deck.Suit]int{
	deck.Spades:   0,
	deck.Hearts:   1,
	deck.Clubs:    2,
	deck.Diamonds: 3,
}

// SortHand returns a new slice ordered for display: all Eights after all
// non-Eights, then by suit priority (spades, hearts, clubs, diamonds), then
// by rank (A low, K high). Deterministic; the input is never mutated.
// Applied to the human hand only - AI hands are evaluated by predicate, not
// position.
func SortHand(hand []deck.Card) []deck.Card {
	sorted := make([]deck.Card, len(hand))
	copy(sorted, hand)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.Rank == deck.Eight) != (b.Rank == deck.Eight) {
			return b.Rank == deck.Eight
		}
		if a.Suit != b.Suit {
			return sortSuitOrder[a.Suit] < sortSuitOrder[b.Suit]
		}
		return a.Rank < b.Rank
	})
	return sorted
}
