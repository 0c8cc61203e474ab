package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// applyEffect mutates the round for an item card used by actor and ends the
// turn. Only Add can change the total, so only Add runs the loss check.
// Card use never ages the poison ledger.
func (g *GameState) applyEffect(actor uuid.UUID, effect Effect) {
	switch e := effect.(type) {
	case Add:
		g.round.Total += e.Amount
		if g.checkLoss(actor) {
			return
		}
		g.round.Order.Advance()

	case Reverse:
		g.round.Order.Reverse()
		g.round.Order.Advance()

	case Skip:
		// The user's own turn ends with a normal step; the skip lands on the
		// advance after that.
		g.round.Order.Advance()
		g.round.Order.RequestSkip()

	case Poison:
		// NewGame validated PoisonDuration > 0.
		if err := g.round.Poison.AddEntry(g.rules.PoisonDuration, g.rules.PoisonBonus); err != nil {
			panic(err)
		}
		g.round.Order.Advance()

	default:
		panic(fmt.Sprintf("engine: unhandled card effect %T", effect))
	}
}
