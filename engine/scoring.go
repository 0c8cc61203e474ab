package engine

import "github.com/google/uuid"

// Utilities returns the round outcome per player in [-1, +1].
// The loser gets -1 and the survivors share +1 evenly. A round that has not
// ended, or a round with a single player, yields zero for everyone.
func (g *GameState) Utilities() map[uuid.UUID]float32 {
	ids := g.round.Order.IDs()
	u := make(map[uuid.UUID]float32, len(ids))
	for _, id := range ids {
		u[id] = 0
	}
	if !g.IsTerminal() || len(ids) < 2 {
		return u
	}

	share := 1 / float32(len(ids)-1)
	for _, id := range ids {
		if id == g.round.Loser {
			u[id] = -1
		} else {
			u[id] = share
		}
	}
	return u
}
