package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// ActionKind distinguishes the two things a player can do on a turn.
type ActionKind uint8

const (
	ActionNone    ActionKind = iota // 0
	ActionNumber                    // 1: add a number to the total
	ActionUseCard                   // 2: use an item card from the hand
)

// LastAction is a public summary of the most recent accepted action.
type LastAction struct {
	Kind      ActionKind
	Actor     uuid.UUID
	Value     int  // number chosen (ActionNumber)
	Bonus     int  // poison bonus applied on top of Value
	CardIndex int  // hand index used (ActionUseCard)
	Card      Card // card used (ActionUseCard)
}

// Result is returned by the resolver after an accepted action.
type Result struct {
	Snapshot   Snapshot
	Lost       bool
	LoserID    uuid.UUID
	FinalTotal int
}

// ResolveNumericMove adds value plus the current poison bonus to the total,
// ages the poison ledger, then either records a loss or passes the turn.
// value is not range-checked.
func (g *GameState) ResolveNumericMove(id uuid.UUID, value int) (Result, error) {
	if _, err := g.checkActor(id); err != nil {
		return Result{}, err
	}

	bonus := g.round.Poison.CurrentBonus()
	g.round.Total += value + bonus
	g.round.Poison.Tick()
	g.round.TurnNumber++
	g.round.LastAction = LastAction{
		Kind:  ActionNumber,
		Actor: id,
		Value: value,
		Bonus: bonus,
	}

	if !g.checkLoss(id) {
		g.round.Order.Advance()
	}
	return g.result(), nil
}

// ResolveCardUse removes the card at cardIndex from the acting player's hand
// and applies its effect. Indices refer to the hand as last observed; there
// is no lookup by card identity. Using a card always ends the turn.
func (g *GameState) ResolveCardUse(id uuid.UUID, cardIndex int) (Result, error) {
	p, err := g.checkActor(id)
	if err != nil {
		return Result{}, err
	}
	if cardIndex < 0 || cardIndex >= len(p.Hand) {
		return Result{}, fmt.Errorf("%w: index %d out of range (hand size %d)", ErrCardNotFound, cardIndex, len(p.Hand))
	}
	if p.Hand[cardIndex].Effect == nil {
		return Result{}, fmt.Errorf("%w: card %q at index %d has no effect", ErrCardNotFound, p.Hand[cardIndex].ID, cardIndex)
	}

	card := p.removeCard(cardIndex)
	g.round.TurnNumber++
	g.round.LastAction = LastAction{
		Kind:      ActionUseCard,
		Actor:     id,
		CardIndex: cardIndex,
		Card:      card,
	}

	g.applyEffect(id, card.Effect)
	return g.result(), nil
}

// checkActor validates that a move from id may be accepted right now.
// Nothing is mutated.
func (g *GameState) checkActor(id uuid.UUID) (*Player, error) {
	switch g.round.Phase {
	case PhaseActive:
	case PhaseEnded:
		return nil, ErrRoundEnded
	default:
		return nil, fmt.Errorf("%w: round has not started", ErrInvalidRoundState)
	}

	current, err := g.round.Order.Current()
	if err != nil {
		return nil, err
	}
	if current != id {
		return nil, fmt.Errorf("%w: %s acted but it is %s's turn", ErrNotCurrentPlayer, id, current)
	}
	p, ok := g.players.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	return p, nil
}

// result builds a Result from the current state.
func (g *GameState) result() Result {
	r := Result{Snapshot: g.Snapshot()}
	if g.round.Phase == PhaseEnded {
		r.Lost = true
		r.LoserID = g.round.Loser
		r.FinalTotal = g.round.FinalTotal
	}
	return r
}
