// Package ai implements the opponent decision policy: a single greedy
// heuristic, intentionally not minimax and with no card counting. The
// policy is fully deterministic for a given hand and table state so its
// behavior can be pinned down in tests.
package ai

import (
	"github.com/sirupsen/logrus"

	"crazy-eights/internal/deck"
	"crazy-eights/internal/rules"
)

// Decision is the outcome of one policy evaluation: either draw a card, or
// play Card (with ChosenSuit nominated when Card is an Eight).
type Decision struct {
	Draw       bool
	Card       deck.Card
	ChosenSuit deck.Suit
}

// Policy chooses moves for AI-controlled players.
type Policy struct {
	log *logrus.Logger
}

func NewPolicy(log *logrus.Logger) *Policy {
	return &Policy{log: log}
}

// Decide evaluates the hand against the table state:
//  1. collect the legal cards,
//  2. none legal -> draw,
//  3. prefer the first non-Eight in hand order over any Eight,
//  4. an Eight nominates the suit the hand holds the most of once the
//     Eight itself is removed, ties to the earliest suit in enumeration
//     order (hearts, diamonds, clubs, spades).
func (p *Policy) Decide(hand []deck.Card, top *deck.Card, active deck.Suit) Decision {
	var legal []deck.Card
	for _, c := range hand {
		if rules.IsValidMove(c, top, active) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		p.log.Debugf("ai: no legal card against %v (active %s), drawing", top, active)
		return Decision{Draw: true}
	}

	choice := legal[0]
	for _, c := range legal {
		if c.Rank != deck.Eight {
			choice = c
			break
		}
	}

	if choice.Rank != deck.Eight {
		p.log.Debugf("ai: playing %s", choice)
		return Decision{Card: choice, ChosenSuit: deck.NoSuit}
	}

	suit := bestSuit(hand, choice)
	p.log.Debugf("ai: playing wild %s, nominating %s", choice, suit)
	return Decision{Card: choice, ChosenSuit: suit}
}

// bestSuit counts the suits of the hand minus the Eight about to be played
// and returns the most frequent one. With strict-greater comparison over
// the fixed enumeration order, ties resolve to the earliest suit.
func bestSuit(hand []deck.Card, playing deck.Card) deck.Suit {
	counts := make(map[deck.Suit]int, 4)
	for _, c := range hand {
		if c.ID == playing.ID {
			continue
		}
		counts[c.Suit]++
	}
	best := deck.Hearts
	for _, s := range deck.Suits() {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
