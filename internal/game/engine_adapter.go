package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	engine "github.com/Potato-13-58/No9-game.com/engine"
)

// HandleNumericMove applies a numeric move for playerID. A rejected move is
// reported to that player privately and its error returned.
func (g *HundredGame) HandleNumericMove(playerID uuid.UUID, value int) (engine.Result, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	res, err := g.Engine.ResolveNumericMove(playerID, value)
	if err != nil {
		g.rejectAction(playerID, "number", err)
		return res, err
	}

	la := res.Snapshot.LastAction
	payload := map[string]interface{}{
		"value": la.Value,
		"bonus": la.Bonus,
		"total": res.Snapshot.Total,
	}
	g.log.WithFields(logrus.Fields{
		"player": playerID,
		"value":  la.Value,
		"bonus":  la.Bonus,
		"total":  res.Snapshot.Total,
	}).Info("numeric move")
	g.logAction(playerID, string(EventPlayerNumber), payload)
	g.fireEvent(GameEvent{Type: EventPlayerNumber, User: &EventUser{ID: playerID}, Payload: payload})

	g.afterAction(res)
	return res, nil
}

// HandleCardUse applies the item card at cardIndex of playerID's hand. The
// index refers to the hand as last observed by the player.
func (g *HundredGame) HandleCardUse(playerID uuid.UUID, cardIndex int) (engine.Result, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	res, err := g.Engine.ResolveCardUse(playerID, cardIndex)
	if err != nil {
		g.rejectAction(playerID, "use_card", err)
		return res, err
	}

	la := res.Snapshot.LastAction
	card := eventCard(la.Card)
	idx := la.CardIndex
	card.Idx = &idx
	payload := map[string]interface{}{
		"total":       res.Snapshot.Total,
		"direction":   int(res.Snapshot.Direction),
		"pendingSkip": res.Snapshot.PendingSkip,
		"poisonBonus": res.Snapshot.PoisonBonus,
	}
	g.log.WithFields(logrus.Fields{
		"player": playerID,
		"card":   la.Card.ID,
		"effect": card.Effect,
		"total":  res.Snapshot.Total,
	}).Info("card used")
	g.logAction(playerID, string(EventPlayerUseCard), map[string]interface{}{
		"card":  la.Card.ID,
		"index": idx,
		"total": res.Snapshot.Total,
	})
	g.fireEvent(GameEvent{Type: EventPlayerUseCard, User: &EventUser{ID: playerID}, Card: &card, Payload: payload})

	g.afterAction(res)
	return res, nil
}

// afterAction either ends the round or announces the next turn.
func (g *HundredGame) afterAction(res engine.Result) {
	if res.Lost {
		g.endRound(res)
		return
	}
	g.broadcastPlayerTurn()
}

// endRound broadcasts the loss and runs the OnRoundEnd callback. Item mode
// needs a fresh distribution before the next round.
func (g *HundredGame) endRound(res engine.Result) {
	g.dist.reset()

	g.log.WithFields(logrus.Fields{
		"loser": res.LoserID,
		"total": res.FinalTotal,
		"turns": res.Snapshot.TurnNumber,
	}).Info("round ended")
	payload := map[string]interface{}{
		"loser":      res.LoserID,
		"finalTotal": res.FinalTotal,
		"ceiling":    res.Snapshot.Ceiling,
	}
	g.logAction(res.LoserID, string(EventRoundEnd), payload)
	g.fireEvent(GameEvent{Type: EventRoundEnd, User: &EventUser{ID: res.LoserID}, Payload: payload})
	g.broadcastSyncStateToAll()

	if g.OnRoundEnd != nil {
		g.OnRoundEnd(g.ID, res.LoserID, res.FinalTotal)
	}
}

// rejectAction logs a refused action and tells the player why.
func (g *HundredGame) rejectAction(playerID uuid.UUID, action string, err error) {
	g.log.WithFields(logrus.Fields{"player": playerID, "action": action}).WithError(err).Warn("action rejected")
	g.fireEventToPlayer(playerID, GameEvent{
		Type:    EventPrivateActionFail,
		Payload: map[string]interface{}{"message": failureMessage(err), "action": action},
	})
}

// failureMessage maps engine errors to the text shown to players.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrNotCurrentPlayer):
		return "It's not your turn."
	case errors.Is(err, engine.ErrCardNotFound):
		return "Card not found."
	case errors.Is(err, engine.ErrRoundEnded):
		return "The round is over."
	case errors.Is(err, engine.ErrInvalidRoundState):
		return "The round has not started."
	}
	return "Action failed."
}
