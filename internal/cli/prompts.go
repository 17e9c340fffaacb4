package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"crazy-eights/internal/deck"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Win, Lose, Hint, Info, Warn, Header, Prompt *color.Color
}{
	Win:    color.New(color.FgGreen),
	Lose:   color.New(color.FgRed),
	Hint:   color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

var (
	redSuit   = color.New(color.FgRed)
	blackSuit = color.New(color.FgHiWhite)
)

// ColorizeCard renders a card with its suit color, red for hearts and
// diamonds.
func ColorizeCard(c deck.Card) string {
	if c.Suit.Red() {
		return redSuit.Sprint(c.String())
	}
	return blackSuit.Sprint(c.String())
}

// ColorizeSuit renders a suit symbol with its color.
func ColorizeSuit(s deck.Suit) string {
	if s.Red() {
		return redSuit.Sprintf("%s %s", s.Symbol(), s)
	}
	return blackSuit.Sprintf("%s %s", s.Symbol(), s)
}

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Crazy Eights ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/crazyeights play [players]")
	fmt.Println("    Interactive game against AI opponents (2-4 players, default 2).")
	fmt.Println("  go run ./cmd/crazyeights sim <games> [players]")
	fmt.Println("    Headless all-AI batch, prints a result table.")
	fmt.Println("  go run ./cmd/crazyeights stats")
	fmt.Println("    Show the persisted win/loss tally.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable engine and AI decision tracing.")
	fmt.Println("  -config <path>     Configuration file (default default_config.json).")
}

func (c *CLI) printPlayHelp() {
	C.Header.Println("\n--- How to Play ---")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Input", "Action"})
	t.AppendRows([]table.Row{
		{"1..n", "Play the numbered card from your hand."},
		{"d", "Draw a card (skips your turn when the pile is empty)."},
		{"n", "Abandon this game and start a new one."},
		{"h", "Show this help."},
		{"q", "Quit."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Println("Match the top card's suit or rank. Eights are wild and let you call the next suit.")
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

// promptForSuit asks for the suit an Eight nominates. The second return is
// false when the player backs out instead of choosing.
func (c *CLI) promptForSuit() (deck.Suit, bool) {
	suits := deck.Suits()
	for {
		C.Header.Println("\nChoose the suit for your eight:")
		for i, s := range suits {
			fmt.Printf(" %d: %s\n", i+1, ColorizeSuit(s))
		}
		fmt.Printf(" %d: cancel (take the eight back)\n", len(suits)+1)
		choice := c.promptForInt("Enter number: ", 1, len(suits)+1)
		if choice == len(suits)+1 {
			return deck.NoSuit, false
		}
		return suits[choice-1], true
	}
}

func (c *CLI) promptYesNo(prompt string) bool {
	for {
		input := strings.ToLower(c.promptForString(prompt))
		switch input {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		C.Warn.Println("Please answer y or n.")
	}
}
