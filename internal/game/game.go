package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crazy-eights/internal/deck"
	"crazy-eights/internal/events"
	"crazy-eights/internal/player"
	"crazy-eights/internal/rules"
)

// Status is the session state machine:
// setup -> playing <-> waiting_for_suit, with terminal won/lost reachable
// only from playing (a play is the only transition that can empty a hand).
type Status int

const (
	StatusSetup Status = iota
	StatusPlaying
	StatusWaitingForSuit
	StatusWon
	StatusLost
)

func (s Status) String() string {
	return []string{"setup", "playing", "waiting_for_suit", "won", "lost"}[s]
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// NoWinner is the WinnerID value while the session is undecided.
const NoWinner = -1

// Game is the single mutable session state. All transitions go through the
// methods below; each one either commits a complete consistent snapshot and
// publishes events, or is a logged no-op. Invalid calls never panic -
// precondition failures mean a caller acted out of turn, which the engine
// absorbs silently per the game's error model.
type Game struct {
	ID               uuid.UUID
	Deck             []deck.Card
	DiscardPile      []deck.Card
	Players          []*player.Player
	CurrentTurnIndex int
	Status           Status
	ActiveSuit       deck.Suit
	LastAction       string
	WinnerID         int

	pendingWild  *deck.Card
	EventManager *events.Manager
	log          *logrus.Logger
}

// TopCard returns the top of the discard pile, nil when it is empty.
func (g *Game) TopCard() *deck.Card {
	if len(g.DiscardPile) == 0 {
		return nil
	}
	return &g.DiscardPile[len(g.DiscardPile)-1]
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *player.Player {
	return g.Players[g.CurrentTurnIndex]
}

// HumanPlayer returns the human seat, nil in an all-AI session.
func (g *Game) HumanPlayer() *player.Player {
	for _, p := range g.Players {
		if p.IsHuman {
			return p
		}
	}
	return nil
}

// PendingWild returns the Eight held aside while waiting for a suit choice.
func (g *Game) PendingWild() *deck.Card {
	return g.pendingWild
}

// Play attempts to play the identified card for the given player. An Eight
// does not commit here: the session moves to waiting_for_suit with the card
// held aside (still in the hand) until ChooseSuit or CancelWild resolves it.
func (g *Game) Play(playerIndex int, cardID string) bool {
	if g.Status != StatusPlaying {
		g.log.Debugf("engine: play ignored, status is %s", g.Status)
		return false
	}
	if playerIndex != g.CurrentTurnIndex {
		g.log.Debugf("engine: play ignored, not player %d's turn", playerIndex)
		return false
	}
	p := g.Players[playerIndex]
	card, ok := p.Holds(cardID)
	if !ok {
		g.log.Debugf("engine: play ignored, %s does not hold %s", p.Name, cardID)
		return false
	}
	if !rules.IsValidMove(card, g.TopCard(), g.ActiveSuit) {
		g.log.Debugf("engine: play ignored, %s is not legal", card)
		return false
	}

	if card.Rank == deck.Eight {
		g.pendingWild = &card
		g.Status = StatusWaitingForSuit
		g.EventManager.Publish(events.WildPendingEvent{PlayerName: p.Name, Card: card})
		return true
	}

	g.commitPlay(playerIndex, card, deck.NoSuit)
	return true
}

// ChooseSuit commits the pending Eight with the nominated suit. Legality
// was already established when the Eight entered the pending state.
func (g *Game) ChooseSuit(suit deck.Suit) bool {
	if g.Status != StatusWaitingForSuit || g.pendingWild == nil {
		g.log.Debugf("engine: suit choice ignored, status is %s", g.Status)
		return false
	}
	if suit == deck.NoSuit {
		g.log.Debug("engine: suit choice ignored, no suit supplied")
		return false
	}
	g.Status = StatusPlaying
	g.commitPlay(g.CurrentTurnIndex, *g.pendingWild, suit)
	return true
}

// CancelWild reverts waiting_for_suit back to playing. The Eight is not
// consumed and the turn does not advance.
func (g *Game) CancelWild() bool {
	if g.Status != StatusWaitingForSuit {
		g.log.Debugf("engine: cancel ignored, status is %s", g.Status)
		return false
	}
	p := g.CurrentPlayer()
	g.pendingWild = nil
	g.Status = StatusPlaying
	g.EventManager.Publish(events.WildCancelledEvent{PlayerName: p.Name})
	return true
}

// Draw pops one card from the deck into the acting player's hand and
// advances the turn. An empty deck is not an error: the turn is skipped.
// Drawing never ends the game and never touches the active suit.
func (g *Game) Draw(playerIndex int) bool {
	if g.Status != StatusPlaying {
		g.log.Debugf("engine: draw ignored, status is %s", g.Status)
		return false
	}
	if playerIndex != g.CurrentTurnIndex {
		g.log.Debugf("engine: draw ignored, not player %d's turn", playerIndex)
		return false
	}
	p := g.Players[playerIndex]

	if len(g.Deck) == 0 {
		g.LastAction = fmt.Sprintf("Draw pile is empty, %s skips the turn.", p.Name)
		g.advanceTurn(playerIndex)
		g.EventManager.Publish(events.DeckEmptyEvent{PlayerName: p.Name})
		g.publishTurnStart()
		return true
	}

	card := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	p.Add(card)
	if p.IsHuman {
		p.Hand = rules.SortHand(p.Hand)
	}
	g.LastAction = fmt.Sprintf("%s drew a card.", p.Name)
	g.advanceTurn(playerIndex)
	g.EventManager.Publish(events.CardDrawnEvent{PlayerName: p.Name, HandSize: len(p.Hand), DeckSize: len(g.Deck)})
	if p.IsHuman {
		g.EventManager.Publish(events.HumanHandEvent{PlayerName: p.Name, Hand: p.Hand})
	}
	g.publishTurnStart()
	return true
}

// commitPlay applies a validated play: the card moves from the hand to the
// discard top, the active suit becomes whatever the caller supplied (NoSuit
// clears a previous override, so a nomination lasts exactly until the next
// committed play), and the session either terminates or the turn advances.
func (g *Game) commitPlay(playerIndex int, card deck.Card, chosen deck.Suit) {
	p := g.Players[playerIndex]
	p.Remove(card.ID)
	g.DiscardPile = append(g.DiscardPile, card)
	g.ActiveSuit = chosen
	g.pendingWild = nil

	if chosen != deck.NoSuit {
		g.LastAction = fmt.Sprintf("%s played %s and called %s.", p.Name, card, chosen.Symbol())
	} else {
		g.LastAction = fmt.Sprintf("%s played %s.", p.Name, card)
	}

	if len(p.Hand) == 0 {
		if p.IsHuman {
			g.Status = StatusWon
		} else {
			g.Status = StatusLost
		}
		g.WinnerID = p.ID
		g.EventManager.Publish(events.CardPlayedEvent{PlayerName: p.Name, Card: card, ChosenSuit: chosen, HandSize: 0})
		g.EventManager.Publish(events.GameOverEvent{
			WinnerID:    p.ID,
			WinnerName:  p.Name,
			HumanWon:    p.IsHuman,
			HumanPlayed: g.HumanPlayer() != nil,
		})
		return
	}

	g.advanceTurn(playerIndex)
	g.EventManager.Publish(events.CardPlayedEvent{PlayerName: p.Name, Card: card, ChosenSuit: chosen, HandSize: len(p.Hand)})
	g.publishTurnStart()
}

func (g *Game) advanceTurn(playerIndex int) {
	g.CurrentTurnIndex = (playerIndex + 1) % len(g.Players)
}

func (g *Game) publishTurnStart() {
	p := g.CurrentPlayer()
	g.EventManager.Publish(events.TurnStartEvent{PlayerName: p.Name, PlayerID: p.ID, IsHuman: p.IsHuman})
}
