package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tinkergames/tinkerdeck/internal/deck"
	"github.com/tinkergames/tinkerdeck/internal/dependencies/clock"
	"github.com/tinkergames/tinkerdeck/internal/dependencies/random"
	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/services/catalog"
	"github.com/tinkergames/tinkerdeck/internal/services/hand"
	"github.com/tinkergames/tinkerdeck/internal/services/resources"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// eventLogSize bounds the per-session event tail kept for inspection
const eventLogSize = 64

// Session is one single-player play state: a shuffled deck, a bounded hand,
// a per-hand resource tracker, and a tail of emitted events
type Session struct {
	ID        model.SessionID
	Hand      *hand.Manager
	Resources *resources.Service
	Events    *EventLog
	CreatedAt time.Time
}

// Controller creates and addresses play sessions. Sessions live in process
// memory for the process lifetime; there is no save-game persistence.
type Controller struct {
	catalog *catalog.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[model.SessionID]*Session
}

// NewController creates a new session controller
func NewController(cat *catalog.Service, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		catalog:  cat,
		clock:    clk,
		random:   rnd,
		logger:   logger,
		sessions: make(map[model.SessionID]*Session),
	}
}

// CreateSession builds a deck from the decklist, shuffles it, and opens a
// session with an empty hand. Repeated decklist ids become distinct card
// instances. The hand starts empty; the first DrawUpToLimit fills it.
func (c *Controller) CreateSession(ctx context.Context, decklist []model.CardID, handLimit int) (*Session, error) {
	if len(decklist) == 0 {
		return nil, model.ErrEmptyDecklist
	}

	cards, err := c.catalog.BuildDeck(ctx, decklist)
	if err != nil {
		return nil, err
	}

	d := deck.New[*model.Card](c.random)
	for _, card := range cards {
		d.AddToDeck(card, deck.PositionBottom)
	}
	d.Shuffle()

	tracker := resources.New(c.logger)
	manager := hand.NewManager(d, handLimit, tracker, c.clock, c.logger)

	events := NewEventLog(eventLogSize)
	manager.Subscribe(events)

	session := &Session{
		ID:        model.SessionID(c.random.String(12, sessionIDAlphabet)),
		Hand:      manager,
		Resources: tracker,
		Events:    events,
		CreatedAt: c.clock.Now(),
	}

	c.mu.Lock()
	c.sessions[session.ID] = session
	c.mu.Unlock()

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("deck_size", len(cards)),
		slog.Int("hand_limit", handLimit),
	)

	return session, nil
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(id model.SessionID) (*Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	session, ok := c.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// DeleteSession drops a session. All of its card instances go with it.
func (c *Controller) DeleteSession(id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(c.sessions, id)
	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Draw fills the session's hand up to its limit and returns the draw count
func (c *Controller) Draw(id model.SessionID) (int, error) {
	session, err := c.GetSession(id)
	if err != nil {
		return 0, err
	}
	return session.Hand.DrawUpToLimit(), nil
}

// DiscardHand discards the session's whole hand
func (c *Controller) DiscardHand(id model.SessionID) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}
	session.Hand.DiscardHand()
	return nil
}

// DiscardAndDraw discards the hand and refills from the current draw pile
func (c *Controller) DiscardAndDraw(id model.SessionID) (int, error) {
	session, err := c.GetSession(id)
	if err != nil {
		return 0, err
	}
	return session.Hand.DiscardAndDraw(), nil
}

// DiscardCard discards one hand card by position
func (c *Controller) DiscardCard(id model.SessionID, index int) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}
	return session.Hand.DiscardCard(index)
}

// DiscardByInstanceID discards one hand card by instance identity
func (c *Controller) DiscardByInstanceID(id model.SessionID, instanceID model.InstanceID) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}
	return session.Hand.DiscardByInstanceID(instanceID)
}

// PlayCard plays one hand card by position. The played card's value is
// accumulated into the session's per-hand resource totals and the card
// leaves the tracked zones.
func (c *Controller) PlayCard(id model.SessionID, index int) (*model.Card, error) {
	session, err := c.GetSession(id)
	if err != nil {
		return nil, err
	}
	card, err := session.Hand.PlayCard(index)
	if err != nil {
		return nil, err
	}
	session.Resources.AddCard(card)
	c.logger.Info("card played",
		slog.String("session_id", string(id)),
		slog.String("card_id", string(card.ID)),
		slog.String("instance_id", string(card.InstanceID)),
	)
	return card, nil
}

// PlayByInstanceID plays one hand card by instance identity
func (c *Controller) PlayByInstanceID(id model.SessionID, instanceID model.InstanceID) (*model.Card, error) {
	session, err := c.GetSession(id)
	if err != nil {
		return nil, err
	}
	card, err := session.Hand.PlayByInstanceID(instanceID)
	if err != nil {
		return nil, err
	}
	session.Resources.AddCard(card)
	return card, nil
}

// Recycle moves the session's discard pile back into the draw pile and
// shuffles. The only path by which discarded cards return to circulation.
func (c *Controller) Recycle(id model.SessionID) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}
	session.Hand.Deck().RecycleDiscard()
	return nil
}

// SetHandLimit updates the session's hand limit for future draws
func (c *Controller) SetHandLimit(id model.SessionID, limit int) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}
	session.Hand.SetHandLimit(limit)
	return nil
}

// ApplySticker resolves a sticker id and seats it in a slot of a hand card
// addressed by instance identity
func (c *Controller) ApplySticker(ctx context.Context, id model.SessionID, instanceID model.InstanceID, slotIndex int, stickerID model.StickerID) error {
	session, err := c.GetSession(id)
	if err != nil {
		return err
	}

	card, ok := session.Hand.FindByInstanceID(instanceID)
	if !ok {
		return model.ErrCardNotInHand
	}

	sticker, err := c.catalog.BuildSticker(ctx, stickerID)
	if err != nil {
		return err
	}

	if !session.Hand.ApplySticker(card, slotIndex, sticker) {
		return model.ErrSlotOutOfRange
	}
	return nil
}
