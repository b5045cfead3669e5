package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventCardsChanged   EventType = "cards_changed"
	EventHandDiscarded  EventType = "hand_discarded"
	EventStickerApplied EventType = "sticker_applied"
)

// Event is the base structure for all hand lifecycle events. Emission is
// synchronous and in-order at the point of the mutating call; observers must
// not re-enter the hand manager from their callback.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any // Type-specific data
}

// CardsChangedPayload carries the hand contents after a draw, discard, or play
type CardsChangedPayload struct {
	Hand []*Card
}

// HandDiscardedPayload marks a non-empty hand having been discarded in full
type HandDiscardedPayload struct {
	Discarded int
}

// StickerAppliedPayload carries data for sticker applied events
type StickerAppliedPayload struct {
	Card      *Card
	Sticker   *Sticker
	SlotIndex int
}
