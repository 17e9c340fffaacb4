package deck

import (
	"fmt"
	"math/rand"
)

// Suit identifies one of the four card suits using a typed enum.
// The declaration order is the canonical enumeration order for the
// whole application; the AI's suit tie-break depends on it.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NoSuit is the sentinel for "no active suit override".
const NoSuit Suit = -1

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "none"
	}
}

// Symbol returns the single-glyph representation of the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit prints in red on a real deck.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Suits returns the four suits in enumeration order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Rank identifies one of the thirteen card ranks.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}[r]
}

// Ranks returns the thirteen ranks in enumeration order (A low, K high).
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Card is a single playing card. Cards are immutable once created; a card
// belongs to exactly one container (deck, a hand, or the discard pile) at
// any point in a session.
type Card struct {
	ID   string
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Suit.Symbol() + c.Rank.String()
}

// NewCard creates a card with its deterministic identity.
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		ID:   fmt.Sprintf("%s-%s", suit, rank),
		Suit: suit,
		Rank: rank,
	}
}

// New returns the full 52-card deck, one card per suit/rank combination,
// in fixed enumeration order (suit-major).
func New() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle returns a new slice with the same cards in a uniformly random
// permutation (Fisher-Yates). The input is never mutated.
func Shuffle(r *rand.Rand, cards []Card) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
