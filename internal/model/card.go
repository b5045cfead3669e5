package model

// CardID identifies a card definition. Multiple physical card instances may
// share one definition id.
type CardID string

// InstanceID uniquely identifies a physical card instance, generated at
// construction. It is what deck zones and hand operations address, since a
// deck may legitimately hold duplicates of the same definition.
type InstanceID string

// Slot is a fixed position on a card that may hold at most one sticker.
// Replaceable is carried through from authored data but is not currently
// enforced by ApplySticker.
type Slot struct {
	Index       int      `json:"index"`
	Occupant    *Sticker `json:"occupant,omitempty"`
	Replaceable bool     `json:"replaceable"`
}

// Occupied reports whether the slot holds a sticker
func (s *Slot) Occupied() bool {
	return s.Occupant != nil
}

// Card is a physical card instance. The slot count is fixed at construction
// and never changes; slot occupants are the only mutable state.
type Card struct {
	ID         CardID     `json:"id"`
	InstanceID InstanceID `json:"instance_id"`
	Name       string     `json:"name"`
	Race       string     `json:"race"`
	Image      string     `json:"image"`
	Slots      []Slot     `json:"slots"`
}

// NewCard builds a card instance with slotCount empty slots, then seats the
// starting stickers in order. Stickers beyond the slot count are dropped;
// remaining slots stay empty.
func NewCard(id CardID, instanceID InstanceID, name, race, image string, slotCount int, starting []*Sticker) *Card {
	if slotCount < 0 {
		slotCount = 0
	}
	slots := make([]Slot, slotCount)
	for i := range slots {
		slots[i] = Slot{Index: i, Replaceable: true}
		if i < len(starting) {
			slots[i].Occupant = starting[i]
		}
	}
	return &Card{
		ID:         id,
		InstanceID: instanceID,
		Name:       name,
		Race:       race,
		Image:      image,
		Slots:      slots,
	}
}

// UniqueID returns the instance identity as a string, satisfying the deck
// engine's identity constraint
func (c *Card) UniqueID() string {
	return string(c.InstanceID)
}

// SlotCount returns the fixed number of slots on the card
func (c *Card) SlotCount() int {
	return len(c.Slots)
}

// ApplySticker replaces the occupant of the given slot. It returns false and
// leaves the card untouched when the index is out of range. The occupant is
// replaced unconditionally; the slot's Replaceable flag is not consulted.
func (c *Card) ApplySticker(slotIndex int, sticker *Sticker) bool {
	if slotIndex < 0 || slotIndex >= len(c.Slots) {
		return false
	}
	c.Slots[slotIndex].Occupant = sticker
	return true
}

// Value returns the sum of the given track across all occupied slots
func (c *Card) Value(kind ResourceKind) int {
	total := 0
	for i := range c.Slots {
		if s := c.Slots[i].Occupant; s != nil {
			total += s.Value(kind)
		}
	}
	return total
}

// PowerValue returns the card's aggregate power value
func (c *Card) PowerValue() int {
	return c.Value(ResourcePower)
}

// ConstructionValue returns the card's aggregate construction value
func (c *Card) ConstructionValue() int {
	return c.Value(ResourceConstruction)
}

// InventionValue returns the card's aggregate invention value
func (c *Card) InventionValue() int {
	return c.Value(ResourceInvention)
}

// Totals returns the card's aggregate value on every track
func (c *Card) Totals() ResourceTotals {
	return ResourceTotals{
		Power:        c.PowerValue(),
		Construction: c.ConstructionValue(),
		Invention:    c.InventionValue(),
	}
}
