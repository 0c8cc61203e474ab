package game

import (
	"github.com/google/uuid"

	engine "github.com/Potato-13-58/No9-game.com/engine"
)

// ObfCard is an item card revealed to its owner.
type ObfCard struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Effect string `json:"effect"`
	Idx    int    `json:"idx"`
}

// ObfPlayerState is one player's state as seen by a specific observer.
type ObfPlayerState struct {
	PlayerID      uuid.UUID `json:"playerId"`
	Name          string    `json:"name"`
	HandSize      int       `json:"handSize"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
	// RevealedHand is populated only for the observer's own entry.
	RevealedHand []ObfCard `json:"revealedHand,omitempty"`
}

// ObfPoison is the public view of one poison entry.
type ObfPoison struct {
	RemainingTurns int `json:"remainingTurns"`
	BonusPerTurn   int `json:"bonusPerTurn"`
}

// ObfGameState is the game state tailored to one observer. Totals, turn
// order and poison are public; hands are only revealed to their owner.
type ObfGameState struct {
	GameID           uuid.UUID        `json:"gameId"`
	Mode             Mode             `json:"mode"`
	Phase            engine.Phase     `json:"phase"`
	CurrentPlayerID  uuid.UUID        `json:"currentPlayerId"`
	TurnID           int              `json:"turnId"`
	Total            int              `json:"total"`
	Ceiling          int              `json:"ceiling"`
	Direction        int              `json:"direction"`
	PendingSkip      bool             `json:"pendingSkip"`
	PoisonBonus      int              `json:"poisonBonus"`
	Poison           []ObfPoison      `json:"poison,omitempty"`
	Order            []uuid.UUID      `json:"order"`
	Players          []ObfPlayerState `json:"players"`
	Distributing     bool             `json:"distributing"`
	DistributorID    uuid.UUID        `json:"distributorId,omitempty"`
	DistributionDone bool             `json:"distributionDone"`
	LoserID          uuid.UUID        `json:"loserId,omitempty"`
	FinalTotal       int              `json:"finalTotal,omitempty"`
}

// StateFor returns the state as observer may see it.
func (g *HundredGame) StateFor(observer uuid.UUID) ObfGameState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.stateFor(observer)
}

// stateFor assumes the game lock is held by the caller.
func (g *HundredGame) stateFor(observer uuid.UUID) ObfGameState {
	s := g.Engine.Snapshot()
	obf := ObfGameState{
		GameID:           g.ID,
		Mode:             g.Mode,
		Phase:            s.Phase,
		TurnID:           s.TurnNumber,
		Total:            s.Total,
		Ceiling:          s.Ceiling,
		Direction:        int(s.Direction),
		PendingSkip:      s.PendingSkip,
		PoisonBonus:      s.PoisonBonus,
		Order:            s.Order,
		Distributing:     g.dist.active,
		DistributionDone: g.dist.done,
		LoserID:          s.Loser,
		FinalTotal:       s.FinalTotal,
	}
	if s.Phase == engine.PhaseSetup {
		obf.Order = g.plannedOrder()
	}
	if s.Phase == engine.PhaseActive {
		obf.CurrentPlayerID = s.CurrentPlayer
	}
	if id, ok := g.dist.current(); ok {
		obf.DistributorID = id
	}
	for _, e := range s.Poison {
		obf.Poison = append(obf.Poison, ObfPoison{RemainingTurns: e.RemainingTurns, BonusPerTurn: e.BonusPerTurn})
	}

	obf.Players = make([]ObfPlayerState, len(s.Players))
	for i, p := range s.Players {
		ps := ObfPlayerState{
			PlayerID:      p.ID,
			Name:          p.Name,
			HandSize:      len(p.Hand),
			IsCurrentTurn: obf.CurrentPlayerID != uuid.Nil && p.ID == obf.CurrentPlayerID,
		}
		if p.ID == observer {
			ps.RevealedHand = make([]ObfCard, len(p.Hand))
			for j, c := range p.Hand {
				ec := eventCard(c)
				ps.RevealedHand[j] = ObfCard{ID: ec.ID, Label: ec.Label, Effect: ec.Effect, Idx: j}
			}
		}
		obf.Players[i] = ps
	}
	return obf
}
