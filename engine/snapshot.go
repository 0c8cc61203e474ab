package engine

import "github.com/google/uuid"

// Snapshot is a read-only copy of everything a presenter needs to render a
// game. It shares no memory with the GameState it was taken from.
type Snapshot struct {
	Phase         Phase
	CurrentPlayer uuid.UUID // uuid.Nil when no round has started
	Total         int
	Ceiling       int
	Direction     Direction
	PendingSkip   bool
	Order         []uuid.UUID
	Pointer       int
	Poison        []PoisonEntry
	PoisonBonus   int
	Players       []Player // registration order, hands included
	TurnNumber    int
	LastAction    LastAction
	Loser         uuid.UUID
	FinalTotal    int
}

// Snapshot returns a deep copy of the current state.
func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       g.round.Phase,
		Total:       g.round.Total,
		Ceiling:     g.rules.Ceiling,
		Direction:   g.round.Order.Direction(),
		PendingSkip: g.round.Order.PendingSkip(),
		Order:       g.round.Order.IDs(),
		Pointer:     g.round.Order.Pointer(),
		Poison:      g.round.Poison.Entries(),
		PoisonBonus: g.round.Poison.CurrentBonus(),
		Players:     make([]Player, 0, g.players.Len()),
		TurnNumber:  g.round.TurnNumber,
		LastAction:  g.round.LastAction,
		Loser:       g.round.Loser,
		FinalTotal:  g.round.FinalTotal,
	}
	if s.Direction == 0 {
		s.Direction = Clockwise
	}
	if id, err := g.round.Order.Current(); err == nil {
		s.CurrentPlayer = id
	}
	for _, p := range g.players.players {
		s.Players = append(s.Players, p.clone())
	}
	return s
}

// Player returns the snapshot entry for id.
func (s Snapshot) Player(id uuid.UUID) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
