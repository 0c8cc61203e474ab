// Package engine implements the rules of the No.9 counting game.
//
// Players take turns adding a number, or the effect of an item card, to a
// shared running total; whoever pushes the total past the ceiling loses.
// The package owns the turn/effect state machine only. It performs no I/O
// and keeps no package-level state: every round lives inside a GameState.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Round is the state scoped to one playthrough, from StartRound to a loss.
type Round struct {
	Phase      Phase
	Order      TurnOrder
	Poison     PoisonLedger
	Total      int
	TurnNumber int
	LastAction LastAction
	Loser      uuid.UUID
	FinalTotal int
}

// GameState holds the registered players, the deck and the single round.
// It is not safe for concurrent use; callers serialize access.
type GameState struct {
	rules   HouseRules
	deck    *Deck
	players *Registry
	round   Round
}

// NewGame creates a game in the setup phase. A nil rng is replaced with a
// time-seeded source.
func NewGame(rules HouseRules, catalog Catalog, rng *rand.Rand) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid house rules: %w", err)
	}
	return &GameState{
		rules:   rules.clone(),
		deck:    NewDeck(catalog, rng),
		players: NewRegistry(),
		round:   Round{Phase: PhaseSetup},
	}, nil
}

// ---------------------------------------------------------------------------
// Setup
// ---------------------------------------------------------------------------

// Players returns the player registry.
func (g *GameState) Players() *Registry { return g.players }

// Rules returns a copy of the house rules.
func (g *GameState) Rules() HouseRules { return g.rules.clone() }

// Catalog returns the card catalog used for draws.
func (g *GameState) Catalog() Catalog { return g.deck.Catalog() }

// DrawCards samples n cards with replacement.
func (g *GameState) DrawCards(n int) []Card { return g.deck.Draw(n) }

// GiveCards appends cards to a player's hand.
func (g *GameState) GiveCards(id uuid.UUID, cards []Card) error {
	return g.players.GiveCards(id, cards)
}

// ShuffledOrder returns the registered ids in a random order.
func (g *GameState) ShuffledOrder() []uuid.UUID {
	ids := g.players.ids()
	g.deck.Shuffle(ids)
	return ids
}

// StartRound builds the turn order from ids and resets every round-scoped
// field. A nil or empty ids uses registration order. ids must name every
// registered player exactly once. Starting is refused while a round is
// already active.
func (g *GameState) StartRound(ids []uuid.UUID) error {
	if g.round.Phase == PhaseActive {
		return fmt.Errorf("%w: a round is already active", ErrInvalidRoundState)
	}
	if g.players.Len() == 0 {
		return fmt.Errorf("%w: no registered players", ErrInvalidRoundState)
	}
	if len(ids) == 0 {
		ids = g.players.ids()
	}
	if err := g.ValidateOrder(ids); err != nil {
		return err
	}

	g.round = Round{Phase: PhaseActive}
	g.round.Order.Build(ids)
	g.players.locked = true
	return nil
}

// ValidateOrder checks ids is a permutation of the registered players.
func (g *GameState) ValidateOrder(ids []uuid.UUID) error {
	if len(ids) != g.players.Len() {
		return fmt.Errorf("%w: order has %d players, registry has %d", ErrInvalidRoundState, len(ids), g.players.Len())
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: player %s appears twice in the order", ErrInvalidRoundState, id)
		}
		if _, ok := g.players.Get(id); !ok {
			return fmt.Errorf("%w: player %s is not registered", ErrInvalidRoundState, id)
		}
		seen[id] = true
	}
	return nil
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Phase returns the round phase.
func (g *GameState) Phase() Phase { return g.round.Phase }

// Total returns the running total.
func (g *GameState) Total() int { return g.round.Total }

// Current returns the player whose turn it is.
func (g *GameState) Current() (uuid.UUID, error) { return g.round.Order.Current() }

// Order returns the turn order controller. Mutating it directly bypasses
// the resolver and is meant for tests and tooling.
func (g *GameState) Order() *TurnOrder { return &g.round.Order }

// Poison returns the poison ledger.
func (g *GameState) Poison() *PoisonLedger { return &g.round.Poison }

// ---------------------------------------------------------------------------
// Checkpoints (undo)
// ---------------------------------------------------------------------------

// Checkpoint is a deep copy of the mutable game state. The deck's random
// source is not part of it.
type Checkpoint struct {
	players []Player
	locked  bool
	round   Round
}

// Save returns a checkpoint of the current state.
func (g *GameState) Save() Checkpoint {
	cp := Checkpoint{
		players: make([]Player, len(g.players.players)),
		locked:  g.players.locked,
		round:   g.round,
	}
	for i, p := range g.players.players {
		cp.players[i] = p.clone()
	}
	cp.round.Order.ids = append([]uuid.UUID(nil), g.round.Order.ids...)
	cp.round.Poison.entries = g.round.Poison.Entries()
	return cp
}

// Restore replaces the game state with the checkpoint.
func (g *GameState) Restore(cp Checkpoint) {
	players := make([]*Player, len(cp.players))
	for i := range cp.players {
		p := cp.players[i].clone()
		players[i] = &p
	}
	g.players.players = players
	g.players.locked = cp.locked
	g.round = cp.round
	g.round.Order.ids = append([]uuid.UUID(nil), cp.round.Order.ids...)
	g.round.Poison.entries = append([]PoisonEntry(nil), cp.round.Poison.entries...)
}
