package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	engine "github.com/Potato-13-58/No9-game.com/engine"
)

// distribution holds the two-step draw/confirm flow that deals item cards
// to each player in turn order before an item-mode round.
type distribution struct {
	active bool
	done   bool
	order  []uuid.UUID
	index  int
	drawn  []engine.Card // shown to the distributor, not yet in their hand
}

func (d *distribution) reset() { *d = distribution{} }

func (d *distribution) current() (uuid.UUID, bool) {
	if !d.active || d.index >= len(d.order) {
		return uuid.Nil, false
	}
	return d.order[d.index], true
}

// BeginDistribution starts dealing item cards in the planned turn order.
// Cards are added to whatever the players already hold.
func (g *HundredGame) BeginDistribution() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Mode != ModeItem {
		return fmt.Errorf("%w: distribution requires %s mode", ErrWrongMode, ModeItem)
	}
	if err := g.checkSetup(); err != nil {
		return err
	}
	order := g.plannedOrder()
	if len(order) == 0 {
		return fmt.Errorf("%w: no registered players", engine.ErrInvalidRoundState)
	}

	g.dist = distribution{active: true, order: order}
	g.log.WithField("players", len(order)).Info("card distribution started")
	g.logAction(uuid.Nil, string(EventDistributionStart), map[string]interface{}{"order": order})
	g.fireEvent(GameEvent{Type: EventDistributionStart, Payload: map[string]interface{}{"order": order}})
	g.announceDistributor()
	return nil
}

// Distributor returns the player whose turn it is to draw. ok is false when
// no distribution is running.
func (g *HundredGame) Distributor() (id uuid.UUID, ok bool) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.dist.current()
}

// DrawForDistributor draws the current distributor's cards and shows them to
// that player only. Calling it again before ConfirmDraw returns the same
// cards.
func (g *HundredGame) DrawForDistributor() ([]engine.Card, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	id, ok := g.dist.current()
	if !ok {
		return nil, ErrNotDistributing
	}
	if g.dist.drawn == nil {
		g.dist.drawn = g.Engine.DrawCards(g.rules.CardsPerPlayer)
		g.log.WithFields(logrus.Fields{"player": id, "count": len(g.dist.drawn)}).Debug("cards drawn")
		g.logAction(id, string(EventPrivateDraw), map[string]interface{}{"cards": cardIDs(g.dist.drawn)})
		g.fireEventToPlayer(id, GameEvent{
			Type:  EventPrivateDraw,
			User:  &EventUser{ID: id},
			Cards: eventCards(g.dist.drawn),
		})
	}
	return append([]engine.Card(nil), g.dist.drawn...), nil
}

// ConfirmDraw gives the drawn cards to the distributor and moves on to the
// next player. After the last player the distribution is done.
func (g *HundredGame) ConfirmDraw() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	id, ok := g.dist.current()
	if !ok {
		return ErrNotDistributing
	}
	if g.dist.drawn == nil {
		return ErrNothingDrawn
	}
	if err := g.Engine.GiveCards(id, g.dist.drawn); err != nil {
		return err
	}

	count := len(g.dist.drawn)
	g.dist.drawn = nil
	g.dist.index++
	g.logAction(id, string(EventPlayerReceiveCards), map[string]interface{}{"count": count})
	g.fireEvent(GameEvent{
		Type:    EventPlayerReceiveCards,
		User:    &EventUser{ID: id},
		Payload: map[string]interface{}{"count": count},
	})

	if g.dist.index < len(g.dist.order) {
		g.announceDistributor()
		return nil
	}

	g.dist.active = false
	g.dist.done = true
	g.log.Info("card distribution complete")
	g.logAction(uuid.Nil, string(EventDistributionDone), nil)
	g.fireEvent(GameEvent{Type: EventDistributionDone})
	return nil
}

// DistributionDone reports whether every player has received cards since the
// last round or registry change.
func (g *HundredGame) DistributionDone() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.dist.done
}

func (g *HundredGame) announceDistributor() {
	id, ok := g.dist.current()
	if !ok {
		return
	}
	g.fireEvent(GameEvent{
		Type:    EventDistributorTurn,
		User:    &EventUser{ID: id},
		Payload: map[string]interface{}{"index": g.dist.index, "of": len(g.dist.order)},
	})
}

func eventCards(cards []engine.Card) []EventCard {
	out := make([]EventCard, len(cards))
	for i, c := range cards {
		out[i] = eventCard(c)
	}
	return out
}

func eventCard(c engine.Card) EventCard {
	ev := EventCard{ID: c.ID, Label: c.Label}
	if c.Effect != nil {
		ev.Effect = c.Effect.String()
	}
	return ev
}

func cardIDs(cards []engine.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
