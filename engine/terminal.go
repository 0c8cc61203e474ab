package engine

import "github.com/google/uuid"

// checkLoss ends the round when the total exceeds the ceiling. The actor
// who pushed it over is the loser. Returns true if the round ended.
func (g *GameState) checkLoss(actor uuid.UUID) bool {
	if g.round.Total <= g.rules.Ceiling {
		return false
	}
	g.round.Phase = PhaseEnded
	g.round.Loser = actor
	g.round.FinalTotal = g.round.Total
	g.players.locked = false
	return true
}

// IsTerminal returns true once a loss has been recorded.
func (g *GameState) IsTerminal() bool { return g.round.Phase == PhaseEnded }

// Outcome returns the loser and final total. ok is false while no loss has
// been recorded.
func (g *GameState) Outcome() (loser uuid.UUID, finalTotal int, ok bool) {
	if g.round.Phase != PhaseEnded {
		return uuid.Nil, 0, false
	}
	return g.round.Loser, g.round.FinalTotal, true
}

// Headroom returns how much the total may still grow before the round ends.
// It is negative only after a loss.
func (g *GameState) Headroom() int { return g.rules.Ceiling - g.round.Total }
