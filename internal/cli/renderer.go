package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"crazy-eights/internal/deck"
	"crazy-eights/internal/events"
	"crazy-eights/internal/game"
	"crazy-eights/internal/rules"
	"crazy-eights/internal/stats"
)

// defeatRemarks is the pool of consolation lines shown on a lost session.
var defeatRemarks = []string{
	"Did the AI peek at your cards just now?",
	"You win some, you lose some. Deal again!",
	"The AI got a little lucky this round.",
	"So close! Your hand is warming up.",
	"The AI says: thanks for going easy on me.",
	"Sometimes the deck just isn't on your side.",
}

// Renderer implements events.Listener and narrates engine transitions to
// the console. It holds its own random source only to pick flavor text.
type Renderer struct {
	rand *rand.Rand
}

func NewRenderer(r *rand.Rand) *Renderer {
	return &Renderer{rand: r}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *Renderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Println("\n--- New Game ---")
		C.Info.Printf("Players: %s\n", strings.Join(event.PlayerNames, ", "))
		C.Info.Printf("Top card: %s  (%d cards in the draw pile)\n", ColorizeCard(event.TopCard), event.DeckSize)
	case events.TurnStartEvent:
		if !event.IsHuman {
			C.Info.Printf("%s is thinking...\n", event.PlayerName)
		}
	case events.CardPlayedEvent:
		line := fmt.Sprintf("%s played %s", event.PlayerName, ColorizeCard(event.Card))
		if event.ChosenSuit != deck.NoSuit {
			line += fmt.Sprintf(" and called %s", ColorizeSuit(event.ChosenSuit))
		}
		fmt.Printf("%s. (%d cards left)\n", line, event.HandSize)
	case events.CardDrawnEvent:
		fmt.Printf("%s drew a card. (%d in hand, %d left in the pile)\n", event.PlayerName, event.HandSize, event.DeckSize)
	case events.DeckEmptyEvent:
		C.Warn.Printf("Draw pile is empty, %s skips the turn.\n", event.PlayerName)
	case events.WildPendingEvent:
		C.Hint.Printf("%s plays a wild %s...\n", event.PlayerName, ColorizeCard(event.Card))
	case events.WildCancelledEvent:
		C.Hint.Printf("%s takes the eight back.\n", event.PlayerName)
	case events.GameOverEvent:
		r.renderGameOver(event)
	}
}

func (r *Renderer) renderGameOver(event events.GameOverEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	if !event.HumanPlayed {
		C.Info.Printf("%s wins.\n", event.WinnerName)
		return
	}
	if event.HumanWon {
		C.Win.Println("  *  *  *  YOU WIN!  *  *  *")
		C.Win.Println("You emptied your hand. Well played!")
	} else {
		C.Lose.Printf("%s wins.\n", event.WinnerName)
		C.Hint.Println(defeatRemarks[r.rand.Intn(len(defeatRemarks))])
	}
}

// RenderBoard prints the table state from the human player's point of
// view: opponent hand sizes, piles, active suit and the numbered hand with
// playable markers. The playable marker uses the same legality predicate
// as the engine.
func RenderBoard(g *game.Game) {
	fmt.Println()
	for _, p := range g.Players {
		if p.IsHuman {
			continue
		}
		marker := "  "
		if g.CurrentTurnIndex == p.ID {
			marker = "> "
		}
		C.Info.Printf("%s%s: %d cards\n", marker, p.Name, len(p.Hand))
	}

	top := g.TopCard()
	line := fmt.Sprintf("Top card: %s   Draw pile: %d", ColorizeCard(*top), len(g.Deck))
	if g.ActiveSuit != deck.NoSuit {
		line += fmt.Sprintf("   Called suit: %s", ColorizeSuit(g.ActiveSuit))
	}
	fmt.Println(line)
	C.Hint.Println(g.LastAction)

	human := g.HumanPlayer()
	if human == nil {
		return
	}
	C.Header.Printf("\nYour hand (%d):\n", len(human.Hand))
	anyPlayable := false
	for i, card := range human.Hand {
		marker := " "
		if rules.IsValidMove(card, top, g.ActiveSuit) {
			marker = "*"
			anyPlayable = true
		}
		fmt.Printf(" %2d: %s %s\n", i+1, ColorizeCard(card), marker)
	}
	if !anyPlayable && g.CurrentTurnIndex == human.ID {
		C.Warn.Println("No playable cards - draw one from the pile (d).")
	}
}

// RenderStats prints the persisted tally.
func RenderStats(tally stats.Tally) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Crazy Eights Record")
	t.AppendHeader(table.Row{"Games", "Wins", "Losses"})
	t.AppendRow(table.Row{tally.Games, tally.Wins, tally.Losses})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}

// RenderSimResults prints the outcome table of a headless batch.
func RenderSimResults(games, players int, winsBySeat map[int]int, stalled int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Simulation: %d games", games))
	t.AppendHeader(table.Row{"Seat", "Wins"})
	for seat := 0; seat < players; seat++ {
		t.AppendRow(table.Row{seat, winsBySeat[seat]})
	}
	t.AppendFooter(table.Row{"stalled", stalled})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}
