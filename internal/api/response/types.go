package response

import (
	"time"

	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/services/session"
)

// Sticker represents a sticker in API responses
type Sticker struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Power        int    `json:"power"`
	Construction int    `json:"construction"`
	Invention    int    `json:"invention"`
}

// StickerFromModel converts a model.Sticker to a response Sticker
func StickerFromModel(s *model.Sticker) Sticker {
	return Sticker{
		ID:           string(s.ID),
		Name:         s.Name,
		Category:     string(s.Category),
		Power:        s.PowerValue(),
		Construction: s.ConstructionValue(),
		Invention:    s.InventionValue(),
	}
}

// Slot represents a card slot in API responses
type Slot struct {
	Index       int      `json:"index"`
	Occupant    *Sticker `json:"occupant,omitempty"`
	Replaceable bool     `json:"replaceable"`
}

// Card represents a card instance in API responses
type Card struct {
	ID           string `json:"id"`
	InstanceID   string `json:"instance_id"`
	Name         string `json:"name"`
	Race         string `json:"race"`
	Slots        []Slot `json:"slots"`
	Power        int    `json:"power"`
	Construction int    `json:"construction"`
	Invention    int    `json:"invention"`
}

// CardFromModel converts a model.Card to a response Card
func CardFromModel(c *model.Card) Card {
	slots := make([]Slot, len(c.Slots))
	for i := range c.Slots {
		slots[i] = Slot{
			Index:       c.Slots[i].Index,
			Replaceable: c.Slots[i].Replaceable,
		}
		if c.Slots[i].Occupant != nil {
			s := StickerFromModel(c.Slots[i].Occupant)
			slots[i].Occupant = &s
		}
	}
	return Card{
		ID:           string(c.ID),
		InstanceID:   string(c.InstanceID),
		Name:         c.Name,
		Race:         c.Race,
		Slots:        slots,
		Power:        c.PowerValue(),
		Construction: c.ConstructionValue(),
		Invention:    c.InventionValue(),
	}
}

// CardsFromModel converts a slice of cards
func CardsFromModel(cards []*model.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromModel(c)
	}
	return out
}

// SessionState is the full inspectable state of a session
type SessionState struct {
	ID              string                `json:"id"`
	Hand            []Card                `json:"hand"`
	HandLimit       int                   `json:"hand_limit"`
	DrawPileSize    int                   `json:"draw_pile_size"`
	DiscardPileSize int                   `json:"discard_pile_size"`
	Resources       model.ResourceTotals  `json:"resources"`
	Events          []session.EventRecord `json:"events"`
	CreatedAt       time.Time             `json:"created_at"`
}

// SessionStateFromModel builds the API view of a session
func SessionStateFromModel(s *session.Session) SessionState {
	d := s.Hand.Deck()
	return SessionState{
		ID:              string(s.ID),
		Hand:            CardsFromModel(s.Hand.Hand()),
		HandLimit:       s.Hand.HandLimit(),
		DrawPileSize:    d.DrawPileSize(),
		DiscardPileSize: d.DiscardPileSize(),
		Resources:       s.Resources.Totals(),
		Events:          s.Events.Records(),
		CreatedAt:       s.CreatedAt,
	}
}

// DrawResult reports how many cards a draw produced
type DrawResult struct {
	Drawn    int `json:"drawn"`
	HandSize int `json:"hand_size"`
}

// CardDefinition represents an authored card entry in API responses
type CardDefinition struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Race             string   `json:"race"`
	StartingStickers []string `json:"starting_stickers"`
	MaxSlotCount     int      `json:"max_slot_count"`
}

// CardDefinitionFromModel converts a model.CardDefinition
func CardDefinitionFromModel(def *model.CardDefinition) CardDefinition {
	starting := make([]string, len(def.StartingStickers))
	for i, id := range def.StartingStickers {
		starting[i] = string(id)
	}
	return CardDefinition{
		ID:               string(def.ID),
		Name:             def.Name,
		Race:             def.Race,
		StartingStickers: starting,
		MaxSlotCount:     def.MaxSlotCount,
	}
}

// StickerDefinition represents an authored sticker entry in API responses
type StickerDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// StickerDefinitionFromModel converts a model.StickerDefinition
func StickerDefinitionFromModel(def *model.StickerDefinition) StickerDefinition {
	return StickerDefinition{
		ID:          string(def.ID),
		Name:        def.Name,
		Description: def.Description,
		Type:        string(def.Type),
	}
}
