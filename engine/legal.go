package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Action is one move the current player may submit.
type Action struct {
	Kind      ActionKind
	Value     int // ActionNumber
	CardIndex int // ActionUseCard
}

// MoveNumber returns a numeric move.
func MoveNumber(v int) Action { return Action{Kind: ActionNumber, Value: v} }

// MoveUseCard returns a card-use move for the hand slot idx.
func MoveUseCard(idx int) Action { return Action{Kind: ActionUseCard, CardIndex: idx} }

func (a Action) String() string {
	switch a.Kind {
	case ActionNumber:
		return fmt.Sprintf("number(%d)", a.Value)
	case ActionUseCard:
		return fmt.Sprintf("card[%d]", a.CardIndex)
	}
	return "none"
}

// LegalActions returns the moves open to the current player: one per
// configured move value, then one per card in hand. A round that is not
// active has no legal actions.
func (g *GameState) LegalActions() []Action {
	if g.round.Phase != PhaseActive {
		return nil
	}
	id, err := g.round.Order.Current()
	if err != nil {
		return nil
	}
	p, ok := g.players.Get(id)
	if !ok {
		return nil
	}

	actions := make([]Action, 0, len(g.rules.MoveValues)+len(p.Hand))
	for _, v := range g.rules.MoveValues {
		actions = append(actions, MoveNumber(v))
	}
	for i := range p.Hand {
		actions = append(actions, MoveUseCard(i))
	}
	return actions
}

// Apply dispatches a to the matching resolver.
func (g *GameState) Apply(id uuid.UUID, a Action) (Result, error) {
	switch a.Kind {
	case ActionNumber:
		return g.ResolveNumericMove(id, a.Value)
	case ActionUseCard:
		return g.ResolveCardUse(id, a.CardIndex)
	}
	return Result{}, fmt.Errorf("unknown action kind %d", a.Kind)
}
