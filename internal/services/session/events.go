package session

import (
	"fmt"
	"time"

	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/services/hand"
)

// EventRecord is a compact, serializable view of a hand lifecycle event
type EventRecord struct {
	Type      model.EventType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Detail    string          `json:"detail"`
}

// EventLog keeps a bounded tail of the events a session's hand manager has
// emitted, for inspection over the API
type EventLog struct {
	max     int
	records []EventRecord
}

// Ensure EventLog implements the observer interface
var _ hand.Observer = (*EventLog)(nil)

// NewEventLog creates an event log retaining at most max records
func NewEventLog(max int) *EventLog {
	return &EventLog{max: max}
}

// HandleEvent records the event, evicting the oldest entry past the bound
func (l *EventLog) HandleEvent(event model.Event) {
	record := EventRecord{
		Type:      event.Type,
		Timestamp: event.Timestamp,
		Detail:    describe(event),
	}
	l.records = append(l.records, record)
	if len(l.records) > l.max {
		l.records = l.records[len(l.records)-l.max:]
	}
}

// Records returns a copy of the retained events, oldest first
func (l *EventLog) Records() []EventRecord {
	out := make([]EventRecord, len(l.records))
	copy(out, l.records)
	return out
}

func describe(event model.Event) string {
	switch p := event.Payload.(type) {
	case model.CardsChangedPayload:
		return fmt.Sprintf("hand size %d", len(p.Hand))
	case model.HandDiscardedPayload:
		return fmt.Sprintf("discarded %d cards", p.Discarded)
	case model.StickerAppliedPayload:
		return fmt.Sprintf("sticker %s onto card %s slot %d", p.Sticker.ID, p.Card.InstanceID, p.SlotIndex)
	}
	return ""
}
