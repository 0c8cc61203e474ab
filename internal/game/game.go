// Package game wraps the engine in a session that serializes player actions,
// broadcasts events and keeps an action history.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	engine "github.com/Potato-13-58/No9-game.com/engine"
)

// OnRoundEndFunc is executed when a player pushes the total past the ceiling.
type OnRoundEndFunc func(gameID uuid.UUID, loserID uuid.UUID, finalTotal int)

// Session-level errors. Engine errors pass through unchanged.
var (
	ErrDistributionIncomplete = errors.New("card distribution is not complete")
	ErrNotDistributing        = errors.New("no card distribution in progress")
	ErrWrongMode              = errors.New("operation not available in this mode")
	ErrNothingDrawn           = errors.New("distributor has not drawn yet")
)

// Mode selects whether item cards are dealt before a round.
type Mode string

const (
	ModeNormal Mode = "normal" // numbers only
	ModeItem   Mode = "item"   // numbers plus item cards
)

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNormal, ModeItem:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeNormal, ModeItem)
}

// GameEventType represents the type of a game-related event.
type GameEventType string

const (
	EventPlayerAdd          GameEventType = "player_add"           // Public: a player registered.
	EventPlayerRemove       GameEventType = "player_remove"        // Public: a player was removed.
	EventOrderSet           GameEventType = "order_set"            // Public: turn order planned for the next round.
	EventDistributionStart  GameEventType = "distribution_start"   // Public: item cards are about to be dealt.
	EventDistributorTurn    GameEventType = "distributor_turn"     // Public: whose turn it is to draw.
	EventPrivateDraw        GameEventType = "private_draw"         // Private: the cards the distributor drew.
	EventPlayerReceiveCards GameEventType = "player_receive_cards" // Public: a player took their cards (count only).
	EventDistributionDone   GameEventType = "distribution_done"    // Public: every player has cards.
	EventRoundStart         GameEventType = "round_start"          // Public: a round began.
	EventPlayerNumber       GameEventType = "player_number"        // Public: a numeric move.
	EventPlayerUseCard      GameEventType = "player_use_card"      // Public: an item card was used.
	EventGamePlayerTurn     GameEventType = "game_player_turn"     // Public: whose turn it is.
	EventPrivateActionFail  GameEventType = "private_action_fail"  // Private: an action was rejected.
	EventPrivateSyncState   GameEventType = "private_sync_state"   // Private: full state for one observer.
	EventRoundEnd           GameEventType = "round_end"            // Public: a player lost.
)

// EventUser identifies a user within a GameEvent payload.
type EventUser struct {
	ID uuid.UUID `json:"id"`
}

// EventCard identifies an item card within a GameEvent payload.
type EventCard struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Effect string `json:"effect,omitempty"`
	Idx    *int   `json:"idx,omitempty"` // Index in hand, if relevant.
}

// GameEvent is the structure broadcast for every state change.
type GameEvent struct {
	Type    GameEventType          `json:"type"`
	User    *EventUser             `json:"user,omitempty"`
	Card    *EventCard             `json:"card,omitempty"`
	Cards   []EventCard            `json:"cards,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	State   *ObfGameState          `json:"state,omitempty"`
}

// ActionRecord is one entry of the in-memory action history.
type ActionRecord struct {
	ID            uuid.UUID              `json:"id"`
	GameID        uuid.UUID              `json:"gameId"`
	ActionIndex   int                    `json:"actionIndex"`
	ActorUserID   uuid.UUID              `json:"actorUserId"`
	ActionType    string                 `json:"actionType"`
	ActionPayload map[string]interface{} `json:"actionPayload"`
	Timestamp     int64                  `json:"timestamp"`
}

// HundredGame is one session of the counting game: the engine plus the mode,
// setup flow, event callbacks and history around it.
//
// Exported methods lock Mu. Callbacks run with Mu held and must not call
// back into the game.
type HundredGame struct {
	ID   uuid.UUID
	Mode Mode

	Engine *engine.GameState
	rules  engine.HouseRules

	order []uuid.UUID // planned order for the next round; nil means registration order
	dist  distribution

	actionIndex int
	history     []ActionRecord

	log *logrus.Entry
	Mu  sync.Mutex

	BroadcastFn         func(ev GameEvent)
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)
	OnRoundEnd          OnRoundEndFunc
}

// Option configures a HundredGame.
type Option func(*options)

type options struct {
	mode    Mode
	rng     *rand.Rand
	catalog engine.Catalog
	logger  *logrus.Logger
}

// WithMode sets the game mode. The default is ModeNormal.
func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

// WithRand sets the random source for draws and shuffles.
func WithRand(r *rand.Rand) Option { return func(o *options) { o.rng = r } }

// WithCatalog replaces the default item card catalog.
func WithCatalog(c engine.Catalog) Option { return func(o *options) { o.catalog = c } }

// WithLogger sets the logger. Without one, logs are discarded.
func WithLogger(l *logrus.Logger) Option { return func(o *options) { o.logger = l } }

// NewHundredGame creates a session in the setup phase.
func NewHundredGame(rules engine.HouseRules, opts ...Option) (*HundredGame, error) {
	o := options{mode: ModeNormal, catalog: engine.DefaultCatalog()}
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseMode(string(o.mode)); err != nil {
		return nil, err
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetOutput(io.Discard)
	}

	eng, err := engine.NewGame(rules, o.catalog, o.rng)
	if err != nil {
		return nil, err
	}

	id, _ := uuid.NewRandom()
	g := &HundredGame{
		ID:     id,
		Mode:   o.mode,
		Engine: eng,
		rules:  eng.Rules(),
		log:    o.logger.WithField("game_id", id),
	}
	g.log.WithField("mode", g.Mode).Debug("game created")
	return g, nil
}

// AddPlayer registers a player and returns their id. A blank name gets a
// default. Players cannot join during a round or a distribution.
func (g *HundredGame) AddPlayer(name string) (uuid.UUID, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkSetup(); err != nil {
		return uuid.Nil, err
	}
	p, err := g.Engine.Players().Add(name)
	if err != nil {
		return uuid.Nil, err
	}
	g.order = nil
	g.dist.reset()

	g.log.WithFields(logrus.Fields{"player": p.ID, "name": p.Name}).Info("player added")
	g.logAction(p.ID, string(EventPlayerAdd), map[string]interface{}{"name": p.Name})
	g.fireEvent(GameEvent{
		Type:    EventPlayerAdd,
		User:    &EventUser{ID: p.ID},
		Payload: map[string]interface{}{"name": p.Name},
	})
	return p.ID, nil
}

// RemovePlayer deletes the player at index in registration order.
func (g *HundredGame) RemovePlayer(index int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkSetup(); err != nil {
		return err
	}
	list := g.Engine.Players().List()
	if err := g.Engine.Players().Remove(index); err != nil {
		return err
	}
	removed := list[index]
	g.order = nil

	g.log.WithField("player", removed.ID).Info("player removed")
	g.logAction(removed.ID, string(EventPlayerRemove), map[string]interface{}{"index": index})
	g.fireEvent(GameEvent{Type: EventPlayerRemove, User: &EventUser{ID: removed.ID}})
	return nil
}

// ShuffleOrder plans a random turn order for the next round and returns it.
func (g *HundredGame) ShuffleOrder() ([]uuid.UUID, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkSetup(); err != nil {
		return nil, err
	}
	if g.Engine.Players().Len() == 0 {
		return nil, fmt.Errorf("%w: no registered players", engine.ErrInvalidRoundState)
	}
	g.setOrder(g.Engine.ShuffledOrder())
	return append([]uuid.UUID(nil), g.order...), nil
}

// SetOrder plans an explicit turn order for the next round. ids must name
// every registered player exactly once.
func (g *HundredGame) SetOrder(ids []uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.checkSetup(); err != nil {
		return err
	}
	if err := g.Engine.ValidateOrder(ids); err != nil {
		return err
	}
	g.setOrder(append([]uuid.UUID(nil), ids...))
	return nil
}

// Order returns the planned turn order for the next round.
func (g *HundredGame) Order() []uuid.UUID {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.plannedOrder()
}

func (g *HundredGame) setOrder(ids []uuid.UUID) {
	g.order = ids
	g.log.WithField("order", ids).Info("turn order set")
	g.logAction(uuid.Nil, string(EventOrderSet), map[string]interface{}{"order": ids})
	g.fireEvent(GameEvent{Type: EventOrderSet, Payload: map[string]interface{}{"order": ids}})
}

// plannedOrder returns a copy of the planned order, falling back to
// registration order.
func (g *HundredGame) plannedOrder() []uuid.UUID {
	if g.order != nil {
		return append([]uuid.UUID(nil), g.order...)
	}
	players := g.Engine.Players().List()
	ids := make([]uuid.UUID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// checkSetup refuses setup changes while a round or distribution runs.
func (g *HundredGame) checkSetup() error {
	if g.Engine.Phase() == engine.PhaseActive {
		return fmt.Errorf("%w: a round is in progress", engine.ErrInvalidRoundState)
	}
	if g.dist.active {
		return fmt.Errorf("%w: card distribution is in progress", engine.ErrInvalidRoundState)
	}
	return nil
}

// StartRound begins a round in the planned order. In item mode every
// player must have received cards first.
func (g *HundredGame) StartRound() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Mode == ModeItem && !g.dist.done {
		return ErrDistributionIncomplete
	}
	order := g.plannedOrder()
	if err := g.Engine.StartRound(order); err != nil {
		g.log.WithError(err).Warn("round start refused")
		return err
	}

	g.log.WithFields(logrus.Fields{"order": order, "players": len(order)}).Info("round started")
	g.logAction(uuid.Nil, string(EventRoundStart), map[string]interface{}{"order": order})
	g.fireEvent(GameEvent{Type: EventRoundStart, Payload: map[string]interface{}{"order": order}})
	g.broadcastSyncStateToAll()
	g.broadcastPlayerTurn()
	return nil
}

// Snapshot returns the full engine snapshot, every hand included.
func (g *HundredGame) Snapshot() engine.Snapshot {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.Snapshot()
}

// History returns a copy of the recorded actions in order.
func (g *HundredGame) History() []ActionRecord {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return append([]ActionRecord(nil), g.history...)
}

// fireEvent sends an event to every player.
func (g *HundredGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	} else {
		g.log.WithField("event", ev.Type).Debug("BroadcastFn is nil, event dropped")
	}
}

// fireEventToPlayer sends an event to a single registered player.
func (g *HundredGame) fireEventToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn == nil {
		g.log.WithFields(logrus.Fields{"event": ev.Type, "player": playerID}).Debug("BroadcastToPlayerFn is nil, event dropped")
		return
	}
	if _, ok := g.Engine.Players().Get(playerID); !ok {
		return
	}
	g.BroadcastToPlayerFn(playerID, ev)
}

// broadcastPlayerTurn announces the current player.
func (g *HundredGame) broadcastPlayerTurn() {
	cur, err := g.Engine.Current()
	if err != nil {
		return
	}
	g.fireEvent(GameEvent{
		Type:    EventGamePlayerTurn,
		User:    &EventUser{ID: cur},
		Payload: map[string]interface{}{"turn": g.Engine.Snapshot().TurnNumber},
	})
}

// sendSyncState sends the observer-specific state to one player.
func (g *HundredGame) sendSyncState(playerID uuid.UUID) {
	state := g.stateFor(playerID)
	g.fireEventToPlayer(playerID, GameEvent{Type: EventPrivateSyncState, State: &state})
}

func (g *HundredGame) broadcastSyncStateToAll() {
	for _, p := range g.Engine.Players().List() {
		g.sendSyncState(p.ID)
	}
}

// logAction appends a record to the in-memory history.
func (g *HundredGame) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	g.actionIndex++
	if payload == nil {
		payload = make(map[string]interface{})
	}
	g.history = append(g.history, ActionRecord{
		ID:            uuid.New(),
		GameID:        g.ID,
		ActionIndex:   g.actionIndex,
		ActorUserID:   actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	})
}
