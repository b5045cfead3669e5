package hand

import (
	"log/slog"

	"github.com/tinkergames/tinkerdeck/internal/deck"
	"github.com/tinkergames/tinkerdeck/internal/dependencies/clock"
	"github.com/tinkergames/tinkerdeck/internal/model"
)

// Observer receives hand lifecycle events. Fan-out is synchronous and
// in-order at the point of the mutating call; an observer must not re-enter
// the manager from its callback.
type Observer interface {
	HandleEvent(event model.Event)
}

// ResourceSink is the resource-effect collaborator notified at the round
// boundary. The reset fires on every DiscardHand, including on an already
// empty hand: it is a round signal, not a hand-content signal.
type ResourceSink interface {
	ResetHandResources()
}

// Manager owns the visible hand over a deck's zones. Every card it tracks
// is in exactly one of draw pile, discard pile, or hand until PlayCard
// hands ownership to the caller.
type Manager struct {
	deck      *deck.Deck[*model.Card]
	hand      []*model.Card
	handLimit int
	observers []Observer
	resources ResourceSink
	clock     clock.Clock
	logger    *slog.Logger
}

// NewManager creates a hand manager over the given deck. The resource sink
// may be nil when no per-hand resource state exists.
func NewManager(d *deck.Deck[*model.Card], handLimit int, resources ResourceSink, clk clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		deck:      d,
		handLimit: handLimit,
		resources: resources,
		clock:     clk,
		logger:    logger,
	}
}

// Subscribe registers an observer for hand lifecycle events
func (m *Manager) Subscribe(o Observer) {
	m.observers = append(m.observers, o)
}

// Deck returns the underlying deck engine
func (m *Manager) Deck() *deck.Deck[*model.Card] {
	return m.deck
}

// Hand returns a copy of the current hand in order
func (m *Manager) Hand() []*model.Card {
	out := make([]*model.Card, len(m.hand))
	copy(out, m.hand)
	return out
}

// HandSize returns the number of cards in hand
func (m *Manager) HandSize() int {
	return len(m.hand)
}

// HandLimit returns the current hand limit
func (m *Manager) HandLimit() int {
	return m.handLimit
}

// SetHandLimit updates the bound for future draws. An already over-limit
// hand is left alone until the next discard-based reconciliation.
func (m *Manager) SetHandLimit(n int) {
	m.handLimit = n
}

// FindByInstanceID returns the hand card with the given instance id, if present
func (m *Manager) FindByInstanceID(id model.InstanceID) (*model.Card, bool) {
	for _, card := range m.hand {
		if card.InstanceID == id {
			return card, true
		}
	}
	return nil, false
}

// DrawUpToLimit draws from the deck until the hand reaches the limit or the
// draw pile runs dry, and returns the number of cards drawn. The discard
// pile is never recycled implicitly; a short draw is just short.
func (m *Manager) DrawUpToLimit() int {
	deficit := m.handLimit - len(m.hand)
	if deficit <= 0 {
		return 0
	}

	drawn := m.deck.Draw(deficit)
	if len(drawn) == 0 {
		return 0
	}

	m.hand = append(m.hand, drawn...)
	m.logger.Debug("cards drawn",
		slog.Int("drawn", len(drawn)),
		slog.Int("hand_size", len(m.hand)),
	)
	m.emitCardsChanged()
	return len(drawn)
}

// DiscardHand moves every hand card to the discard pile in hand order. The
// content events fire only when the hand was non-empty, but the resource
// reset fires unconditionally: it marks the round boundary.
func (m *Manager) DiscardHand() {
	discarded := len(m.hand)
	if discarded > 0 {
		for _, card := range m.hand {
			m.deck.Discard(card)
		}
		m.hand = nil
		m.logger.Debug("hand discarded", slog.Int("discarded", discarded))
		m.emitCardsChanged()
		m.emit(model.EventHandDiscarded, model.HandDiscardedPayload{Discarded: discarded})
	}

	if m.resources != nil {
		m.resources.ResetHandResources()
	}
}

// DiscardAndDraw discards the whole hand and refills up to the limit from
// the current draw pile, returning the number of cards drawn. Just-discarded
// cards do not come back unless the caller recycles first.
func (m *Manager) DiscardAndDraw() int {
	m.DiscardHand()
	return m.DrawUpToLimit()
}

// DiscardCard discards the hand card at the given position. Returns
// ErrCardNotInHand, with no mutation and no event, when the index is out of
// range.
func (m *Manager) DiscardCard(index int) error {
	if index < 0 || index >= len(m.hand) {
		return model.ErrCardNotInHand
	}

	card := m.hand[index]
	m.hand = append(m.hand[:index], m.hand[index+1:]...)
	m.deck.Discard(card)
	m.emitCardsChanged()
	return nil
}

// DiscardByInstanceID discards the hand card with the given instance id.
// Instance identity exists precisely so duplicates of one definition can be
// addressed individually.
func (m *Manager) DiscardByInstanceID(id model.InstanceID) error {
	for i, card := range m.hand {
		if card.InstanceID == id {
			return m.DiscardCard(i)
		}
	}
	return model.ErrCardNotInHand
}

// PlayCard removes the hand card at the given position without discarding
// it. Ownership transfers to the caller, who decides the card's fate; the
// deck no longer tracks it.
func (m *Manager) PlayCard(index int) (*model.Card, error) {
	if index < 0 || index >= len(m.hand) {
		return nil, model.ErrCardNotInHand
	}

	card := m.hand[index]
	m.hand = append(m.hand[:index], m.hand[index+1:]...)
	m.logger.Debug("card played",
		slog.String("card_id", string(card.ID)),
		slog.String("instance_id", string(card.InstanceID)),
	)
	m.emitCardsChanged()
	return card, nil
}

// PlayByInstanceID plays the hand card with the given instance id
func (m *Manager) PlayByInstanceID(id model.InstanceID) (*model.Card, error) {
	for i, card := range m.hand {
		if card.InstanceID == id {
			return m.PlayCard(i)
		}
	}
	return nil, model.ErrCardNotInHand
}

// ApplySticker seats a sticker in the given slot of a card, replacing any
// occupant. Returns false, with no mutation and no event, when the slot
// index is out of range.
func (m *Manager) ApplySticker(card *model.Card, slotIndex int, sticker *model.Sticker) bool {
	if !card.ApplySticker(slotIndex, sticker) {
		return false
	}
	m.emit(model.EventStickerApplied, model.StickerAppliedPayload{
		Card:      card,
		Sticker:   sticker,
		SlotIndex: slotIndex,
	})
	return true
}

func (m *Manager) emitCardsChanged() {
	m.emit(model.EventCardsChanged, model.CardsChangedPayload{Hand: m.Hand()})
}

func (m *Manager) emit(eventType model.EventType, payload any) {
	event := model.Event{
		Type:      eventType,
		Timestamp: m.clock.Now(),
		Payload:   payload,
	}
	for _, o := range m.observers {
		o.HandleEvent(event)
	}
}
