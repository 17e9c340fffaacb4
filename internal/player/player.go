// Package player holds the per-seat state of a game session.
package player

import (
	"crazy-eights/internal/deck"
)

// Player is one seat at the table. The engine treats human and AI seats
// identically; IsHuman only decides who supplies the next action (a prompt
// or the AI policy) and whether the hand is kept display-sorted.
type Player struct {
	ID      int
	Name    string
	IsHuman bool
	Hand    []deck.Card
}

// New creates a player with an empty hand.
func New(id int, name string, isHuman bool) *Player {
	return &Player{ID: id, Name: name, IsHuman: isHuman}
}

// Holds returns the card with the given id, if present in the hand.
func (p *Player) Holds(cardID string) (deck.Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return deck.Card{}, false
}

// Remove takes the card with the given id out of the hand. It reports
// whether the card was present.
func (p *Player) Remove(cardID string) (deck.Card, bool) {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c, true
		}
	}
	return deck.Card{}, false
}

// Add appends a card to the hand.
func (p *Player) Add(card deck.Card) {
	p.Hand = append(p.Hand, card)
}
