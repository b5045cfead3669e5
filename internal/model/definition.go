package model

// EffectDefinition is the authored form of a sticker effect. Type selects
// the effect kind; anything other than "resource" is rejected at load time.
type EffectDefinition struct {
	Type         string       `json:"type" yaml:"type"`
	ResourceType ResourceKind `json:"resource_type" yaml:"resource_type"`
	Value        int          `json:"value" yaml:"value"`
}

// StickerDefinition is an authored sticker catalog entry
type StickerDefinition struct {
	ID          StickerID          `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Image       string             `json:"image" yaml:"image"`
	Type        StickerCategory    `json:"type" yaml:"type"`
	Effects     []EffectDefinition `json:"effects" yaml:"effects"`
}

// CardDefinition is an authored card catalog entry. StartingStickers seats
// slot i with the sticker at index i; the list is truncated to MaxSlotCount.
type CardDefinition struct {
	ID               CardID      `json:"id" yaml:"id"`
	Name             string      `json:"name" yaml:"name"`
	Race             string      `json:"race" yaml:"race"`
	Image            string      `json:"image" yaml:"image"`
	StartingStickers []StickerID `json:"starting_stickers" yaml:"starting_stickers"`
	MaxSlotCount     int         `json:"max_slot_count" yaml:"max_slot_count"`
}
