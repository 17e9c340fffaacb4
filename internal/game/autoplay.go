package game

import (
	"crazy-eights/internal/ai"
)

// DefaultTurnCap bounds headless sessions. With no reshuffling of the
// discard pile a game can stall once the draw pile is exhausted and nobody
// holds a playable card; the cap turns that stall into a draw.
const DefaultTurnCap = 1000

// ApplyDecision executes one AI decision against the current turn. An
// Eight is resolved immediately with the decision's nominated suit, so an
// AI never leaves the session in waiting_for_suit.
func (g *Game) ApplyDecision(d ai.Decision) bool {
	idx := g.CurrentTurnIndex
	if d.Draw {
		return g.Draw(idx)
	}
	if !g.Play(idx, d.Card.ID) {
		return false
	}
	if g.Status == StatusWaitingForSuit {
		return g.ChooseSuit(d.ChosenSuit)
	}
	return true
}

// RunAutoplay drives an all-AI session until it terminates or maxTurns
// actions have been taken. It returns the winner's ID, or NoWinner on a
// stalled game.
func (g *Game) RunAutoplay(policy *ai.Policy, maxTurns int) int {
	for turns := 0; turns < maxTurns && g.Status == StatusPlaying; turns++ {
		p := g.CurrentPlayer()
		if p.IsHuman {
			g.log.Warnf("autoplay: refusing to act for human seat %d", p.ID)
			return NoWinner
		}
		d := policy.Decide(p.Hand, g.TopCard(), g.ActiveSuit)
		if !g.ApplyDecision(d) {
			// Decisions come from the shared legality predicate, so a
			// rejected one means the loop and engine disagree - bail out
			// rather than spin.
			g.log.Errorf("autoplay: engine rejected decision for %s", p.Name)
			return NoWinner
		}
	}
	return g.WinnerID
}
