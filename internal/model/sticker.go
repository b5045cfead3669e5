package model

// StickerID uniquely identifies a sticker definition
type StickerID string

// EffectKind identifies the type of a sticker effect. Only resource
// contributions exist today; the list is open for future kinds.
type EffectKind string

const (
	EffectResource EffectKind = "resource"
)

// Effect is a single typed effect carried by a sticker
type Effect struct {
	Kind      EffectKind   `json:"kind"`
	Resource  ResourceKind `json:"resource"`
	Magnitude int          `json:"magnitude"`
}

// Sticker is an immutable modifier attachable to a card slot. Instances are
// constructed once from the catalog and never mutated, so sharing one value
// across multiple slots is safe.
type Sticker struct {
	ID          StickerID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    StickerCategory `json:"category"`
	Effects     []Effect        `json:"effects"`
}

// Value returns the sticker's total contribution to the given track
func (s *Sticker) Value(kind ResourceKind) int {
	total := 0
	for _, e := range s.Effects {
		if e.Kind == EffectResource && e.Resource == kind {
			total += e.Magnitude
		}
	}
	return total
}

// PowerValue returns the sticker's contribution to the power track
func (s *Sticker) PowerValue() int {
	return s.Value(ResourcePower)
}

// ConstructionValue returns the sticker's contribution to the construction track
func (s *Sticker) ConstructionValue() int {
	return s.Value(ResourceConstruction)
}

// InventionValue returns the sticker's contribution to the invention track
func (s *Sticker) InventionValue() int {
	return s.Value(ResourceInvention)
}

// Totals returns the sticker's contribution to every track
func (s *Sticker) Totals() ResourceTotals {
	return ResourceTotals{
		Power:        s.PowerValue(),
		Construction: s.ConstructionValue(),
		Invention:    s.InventionValue(),
	}
}
