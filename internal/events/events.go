package events

import (
	"crazy-eights/internal/deck"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events. The engine
// publishes an event after each transition commits, so listeners only ever
// observe consistent snapshots.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types ---

// GameReadyEvent is published once a session is built and cards are dealt.
type GameReadyEvent struct {
	PlayerNames []string
	TopCard     deck.Card
	DeckSize    int
}

// TurnStartEvent marks the beginning of a player's turn.
type TurnStartEvent struct {
	PlayerName string
	PlayerID   int
	IsHuman    bool
}

// CardPlayedEvent is published when a play commits. ChosenSuit is
// deck.NoSuit unless the played card was an Eight.
type CardPlayedEvent struct {
	PlayerName string
	Card       deck.Card
	ChosenSuit deck.Suit
	HandSize   int
}

// CardDrawnEvent is published after a successful draw.
type CardDrawnEvent struct {
	PlayerName string
	HandSize   int
	DeckSize   int
}

// DeckEmptyEvent is published when a draw finds the deck empty and the turn
// is skipped instead.
type DeckEmptyEvent struct {
	PlayerName string
}

// WildPendingEvent is published when an Eight is played and the engine is
// waiting for a suit choice.
type WildPendingEvent struct {
	PlayerName string
	Card       deck.Card
}

// WildCancelledEvent is published when a pending Eight is taken back.
type WildCancelledEvent struct {
	PlayerName string
}

// HumanHandEvent carries the human player's freshly sorted hand.
type HumanHandEvent struct {
	PlayerName string
	Hand       []deck.Card
}

// GameOverEvent is published exactly once, on the terminal transition.
// HumanPlayed distinguishes interactive sessions from headless batches so
// the stats recorder can ignore the latter.
type GameOverEvent struct {
	WinnerID    int
	WinnerName  string
	HumanWon    bool
	HumanPlayed bool
}
