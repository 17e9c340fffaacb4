package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"crazy-eights/internal/ai"
	"crazy-eights/internal/config"
	"crazy-eights/internal/game"
	"crazy-eights/internal/stats"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.Config, r *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		players := cfg.MinPlayers
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < cfg.MinPlayers || n > cfg.MaxPlayers {
				c.printUsage()
				return fmt.Errorf("player count must be %d-%d", cfg.MinPlayers, cfg.MaxPlayers)
			}
			players = n
		}
		return c.runInteractive(cfg, players, r)
	case "sim":
		if len(args) < 2 {
			c.printUsage()
			return errors.New("sim needs a game count")
		}
		games, err := strconv.Atoi(args[1])
		if err != nil || games < 1 {
			return errors.New("invalid game count")
		}
		players := cfg.MinPlayers
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n < cfg.MinPlayers || n > cfg.MaxPlayers {
				return fmt.Errorf("player count must be %d-%d", cfg.MinPlayers, cfg.MaxPlayers)
			}
			players = n
		}
		return c.runSim(cfg, games, players, r)
	case "stats":
		store := stats.NewStore(c.log, cfg.StatsFile)
		store.Load()
		RenderStats(store.Tally())
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

// runInteractive hosts one or more human-vs-AI sessions.
func (c *CLI) runInteractive(cfg *config.Config, players int, r *rand.Rand) error {
	store := stats.NewStore(c.log, cfg.StatsFile)
	store.Load()
	renderer := NewRenderer(r)
	policy := ai.NewPolicy(c.log)
	scheduler := game.NewScheduler(c.log)

	newSession := func() (*game.Game, error) {
		builder := game.NewBuilder(cfg, c.log, r).WithPlayers(players)
		builder.EventManager().Subscribe(renderer)
		builder.EventManager().Subscribe(store)
		return builder.Build()
	}

	session, err := newSession()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	live := func() *game.Game { return session }
	c.printPlayHelp()

	for {
		switch {
		case session.Status.Terminal():
			RenderStats(store.Tally())
			if !c.promptYesNo("Play again? (y/n): ") {
				return nil
			}
			scheduler.Cancel()
			if session, err = newSession(); err != nil {
				return fmt.Errorf("failed to build game: %w", err)
			}

		case session.Status == game.StatusWaitingForSuit:
			suit, chosen := c.promptForSuit()
			if !chosen {
				session.CancelWild()
				continue
			}
			session.ChooseSuit(suit)

		case session.CurrentPlayer().IsHuman:
			RenderBoard(session)
			quit, newGame := c.handleHumanTurn(session)
			if quit {
				return nil
			}
			if newGame {
				scheduler.Cancel()
				if session, err = newSession(); err != nil {
					return fmt.Errorf("failed to build game: %w", err)
				}
			}

		default:
			token := game.TokenFor(session)
			scheduler.Run(context.Background(), token, cfg.AIDelay(), live, func() {
				p := session.CurrentPlayer()
				session.ApplyDecision(policy.Decide(p.Hand, session.TopCard(), session.ActiveSuit))
			})
		}
	}
}

// handleHumanTurn reads and applies one human action. It reports whether
// the player asked to quit or to start a new game.
func (c *CLI) handleHumanTurn(session *game.Game) (quit, newGame bool) {
	human := session.CurrentPlayer()
	for {
		input := strings.ToLower(c.promptForString("Card #, (d)raw, (n)ew, (h)elp, (q)uit: "))
		switch input {
		case "q":
			return true, false
		case "n":
			return false, true
		case "h":
			c.printPlayHelp()
			continue
		case "d":
			session.Draw(human.ID)
			return false, false
		}
		num, err := strconv.Atoi(input)
		if err != nil || num < 1 || num > len(human.Hand) {
			C.Warn.Println("Enter a card number from your hand, or d/n/h/q.")
			continue
		}
		if !session.Play(human.ID, human.Hand[num-1].ID) {
			C.Warn.Printf("%s cannot be played on the current top card.\n", ColorizeCard(human.Hand[num-1]))
			continue
		}
		return false, false
	}
}

// runSim plays a headless all-AI batch and prints the outcome table.
func (c *CLI) runSim(cfg *config.Config, games, players int, r *rand.Rand) error {
	policy := ai.NewPolicy(c.log)
	winsBySeat := make(map[int]int)
	stalled := 0

	for i := 0; i < games; i++ {
		session, err := game.NewBuilder(cfg, c.log, r).WithPlayers(players).WithHuman(false).Build()
		if err != nil {
			return fmt.Errorf("failed to build game: %w", err)
		}
		winner := session.RunAutoplay(policy, game.DefaultTurnCap)
		if winner == game.NoWinner {
			stalled++
			continue
		}
		winsBySeat[winner]++
	}

	RenderSimResults(games, players, winsBySeat, stalled)
	return nil
}
