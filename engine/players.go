package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Player holds one participant's identity and hand.
type Player struct {
	ID   uuid.UUID
	Name string
	Hand []Card
}

// HandLen returns the number of cards in the player's hand.
func (p *Player) HandLen() int { return len(p.Hand) }

// clone returns a deep copy safe to hand to collaborators.
func (p *Player) clone() Player {
	return Player{ID: p.ID, Name: p.Name, Hand: append([]Card(nil), p.Hand...)}
}

// removeCard deletes the card at idx, preserving the order of the rest.
func (p *Player) removeCard(idx int) Card {
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx:idx], p.Hand[idx+1:]...)
	return c
}

// Registry is the ordered collection of registered players.
type Registry struct {
	players []*Player
	locked  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a player. A blank name becomes "Player<N>" where N is the
// new registry size. It is refused while a round is active.
func (r *Registry) Add(name string) (*Player, error) {
	if r.locked {
		return nil, fmt.Errorf("%w: cannot add players during an active round", ErrInvalidRoundState)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Player%d", len(r.players)+1)
	}
	p := &Player{ID: uuid.New(), Name: name}
	r.players = append(r.players, p)
	return p, nil
}

// Remove deletes the player at index. It is refused while a round is active
// because the turn order holds references to the registered players.
func (r *Registry) Remove(index int) error {
	if r.locked {
		return fmt.Errorf("%w: cannot remove players during an active round", ErrInvalidRoundState)
	}
	if index < 0 || index >= len(r.players) {
		return fmt.Errorf("%w: player index %d out of range (registered %d)", ErrInvalidRoundState, index, len(r.players))
	}
	r.players = append(r.players[:index:index], r.players[index+1:]...)
	return nil
}

// List returns the registered players in registration order.
func (r *Registry) List() []*Player {
	return append([]*Player(nil), r.players...)
}

// Len returns the number of registered players.
func (r *Registry) Len() int { return len(r.players) }

// Get returns the player with id.
func (r *Registry) Get(id uuid.UUID) (*Player, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// GiveCards appends cards to the hand of player id in arrival order.
func (r *Registry) GiveCards(id uuid.UUID, cards []Card) error {
	p, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	p.Hand = append(p.Hand, cards...)
	return nil
}

// ids returns the registered ids in registration order.
func (r *Registry) ids() []uuid.UUID {
	out := make([]uuid.UUID, len(r.players))
	for i, p := range r.players {
		out[i] = p.ID
	}
	return out
}
