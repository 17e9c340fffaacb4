package game

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crazy-eights/internal/ai"
	"crazy-eights/internal/config"
	"crazy-eights/internal/deck"
	"crazy-eights/internal/events"
	"crazy-eights/internal/player"
	"crazy-eights/internal/rules"
)

// Builder provides a step-by-step API for constructing a Game session.
type Builder struct {
	cfg          *config.Config
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	numPlayers   int
	withHuman    bool
}

// NewBuilder creates a new Builder with its required dependencies.
func NewBuilder(cfg *config.Config, logger *logrus.Logger, r *rand.Rand) *Builder {
	return &Builder{
		cfg:          cfg,
		log:          logger,
		rand:         r,
		eventManager: events.NewManager(),
		withHuman:    true,
	}
}

// EventManager exposes the bus so listeners can subscribe before Build.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

// WithPlayers sets the total table size, human included.
func (b *Builder) WithPlayers(n int) *Builder {
	b.numPlayers = n
	return b
}

// WithHuman controls whether seat 0 is human-controlled. All-AI sessions
// are used by sim mode and tests.
func (b *Builder) WithHuman(human bool) *Builder {
	b.withHuman = human
	return b
}

// Build shuffles a fresh deck, seats the players, deals each one a hand,
// flips the first non-Eight as the discard seed and returns the session in
// playing state with seat 0 to act.
func (b *Builder) Build() (*Game, error) {
	if b.numPlayers < b.cfg.MinPlayers || b.numPlayers > b.cfg.MaxPlayers {
		return nil, errors.New("invalid number of players")
	}
	if b.numPlayers*b.cfg.HandSize+1 > 52 {
		return nil, errors.New("not enough cards to deal that table")
	}

	g := &Game{
		ID:           uuid.New(),
		Deck:         deck.Shuffle(b.rand, deck.New()),
		Status:       StatusSetup,
		ActiveSuit:   deck.NoSuit,
		WinnerID:     NoWinner,
		EventManager: b.eventManager,
		log:          b.log,
	}

	names := ai.NewNamePool(b.rand, b.cfg.AINames)
	for i := 0; i < b.numPlayers; i++ {
		if i == 0 && b.withHuman {
			g.Players = append(g.Players, player.New(i, "You", true))
			continue
		}
		g.Players = append(g.Players, player.New(i, names.Next(), false))
	}

	for _, p := range g.Players {
		p.Hand = b.dealHand(g)
		if p.IsHuman {
			p.Hand = rules.SortHand(p.Hand)
		}
		b.log.Debugf("builder: dealt %d cards to %s", len(p.Hand), p.Name)
	}

	g.DiscardPile = []deck.Card{b.flipSeed(g)}
	g.Status = StatusPlaying
	g.LastAction = "New game. " + g.CurrentPlayer().Name + " to act."

	playerNames := make([]string, len(g.Players))
	for i, p := range g.Players {
		playerNames[i] = p.Name
	}
	b.eventManager.Publish(events.GameReadyEvent{
		PlayerNames: playerNames,
		TopCard:     *g.TopCard(),
		DeckSize:    len(g.Deck),
	})
	if h := g.HumanPlayer(); h != nil {
		b.eventManager.Publish(events.HumanHandEvent{PlayerName: h.Name, Hand: h.Hand})
	}
	g.publishTurnStart()

	return g, nil
}

// dealHand pops HandSize cards off the top of the deck.
func (b *Builder) dealHand(g *Game) []deck.Card {
	hand := make([]deck.Card, b.cfg.HandSize)
	copy(hand, g.Deck[len(g.Deck)-b.cfg.HandSize:])
	g.Deck = g.Deck[:len(g.Deck)-b.cfg.HandSize]
	return hand
}

// flipSeed removes the topmost non-Eight from the deck. A standard deck
// always has one left after dealing; the index-0 fallback only matters for
// degenerate configurations.
func (b *Builder) flipSeed(g *Game) deck.Card {
	seedIndex := 0
	for i := len(g.Deck) - 1; i >= 0; i-- {
		if g.Deck[i].Rank != deck.Eight {
			seedIndex = i
			break
		}
	}
	seed := g.Deck[seedIndex]
	g.Deck = append(g.Deck[:seedIndex], g.Deck[seedIndex+1:]...)
	return seed
}
