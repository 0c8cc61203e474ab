// Package agent provides automated players that pick among the engine's
// legal actions. They drive simulations and invariant tests.
package agent

import (
	"errors"
	"fmt"
	"math/rand/v2"

	engine "github.com/Potato-13-58/No9-game.com/engine"
	"github.com/google/uuid"
)

// Agent chooses one of legal for the player whose turn it is in s.
// legal is never empty when Choose is called.
type Agent interface {
	Choose(s engine.Snapshot, legal []engine.Action) engine.Action
}

// Random picks uniformly among the legal actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random agent drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = engine.NewSeededRand(1)
	}
	return &Random{rng: rng}
}

// Choose returns a uniformly random element of legal.
func (r *Random) Choose(_ engine.Snapshot, legal []engine.Action) engine.Action {
	return legal[r.rng.IntN(len(legal))]
}

// Cautious avoids pushing the total over the ceiling when it can.
//
// It plays the smallest numeric move that stays at or under the ceiling.
// When none does, it prefers a card that does not raise the total, taking
// the largest subtraction first. With nothing safe left it plays the
// smallest number and loses.
type Cautious struct{}

// Choose applies the preference order described on Cautious.
func (Cautious) Choose(s engine.Snapshot, legal []engine.Action) engine.Action {
	headroom := s.Ceiling - s.Total
	hand := handOf(s, s.CurrentPlayer)

	var (
		bestNum  engine.Action
		haveNum  bool
		bestCard engine.Action
		cardGain = 1 << 30
	)
	for _, a := range legal {
		switch a.Kind {
		case engine.ActionNumber:
			if !haveNum || a.Value < bestNum.Value {
				bestNum, haveNum = a, true
			}
		case engine.ActionUseCard:
			if a.CardIndex >= len(hand) {
				continue
			}
			gain := cardGainOf(hand[a.CardIndex])
			if gain <= 0 && gain < cardGain {
				bestCard, cardGain = a, gain
			}
		}
	}

	if haveNum && bestNum.Value+s.PoisonBonus <= headroom {
		return bestNum
	}
	if cardGain <= 0 {
		return bestCard
	}
	if haveNum {
		return bestNum
	}
	return legal[0]
}

// cardGainOf is the amount a card adds to the total when used now.
// Turn effects add nothing.
func cardGainOf(c engine.Card) int {
	if add, ok := c.Effect.(engine.Add); ok {
		return add.Amount
	}
	return 0
}

func handOf(s engine.Snapshot, id uuid.UUID) []engine.Card {
	if p, ok := s.Player(id); ok {
		return p.Hand
	}
	return nil
}

// ErrTurnLimit is returned by Play when maxTurns moves pass without a loss.
var ErrTurnLimit = errors.New("turn limit reached")

// Play drives the active round in g until a player loses. agents maps each
// player id to the agent acting for it.
func Play(g *engine.GameState, agents map[uuid.UUID]Agent, maxTurns int) (engine.Result, error) {
	var last engine.Result
	for turn := 0; turn < maxTurns; turn++ {
		if g.IsTerminal() {
			return last, nil
		}
		id, err := g.Current()
		if err != nil {
			return last, err
		}
		a, ok := agents[id]
		if !ok {
			return last, fmt.Errorf("no agent for player %s", id)
		}
		legal := g.LegalActions()
		if len(legal) == 0 {
			return last, fmt.Errorf("no legal actions for player %s in phase %s", id, g.Phase())
		}
		last, err = g.Apply(id, a.Choose(g.Snapshot(), legal))
		if err != nil {
			return last, fmt.Errorf("turn %d: %w", turn, err)
		}
	}
	if g.IsTerminal() {
		return last, nil
	}
	return last, ErrTurnLimit
}
