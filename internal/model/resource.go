package model

// ResourceKind identifies one of the three resource tracks a card or
// sticker contributes to
type ResourceKind string

const (
	ResourcePower        ResourceKind = "power"
	ResourceConstruction ResourceKind = "construction"
	ResourceInvention    ResourceKind = "invention"
)

// ResourceKinds lists every track in display order
var ResourceKinds = []ResourceKind{ResourcePower, ResourceConstruction, ResourceInvention}

// Valid reports whether k names a known resource track
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourcePower, ResourceConstruction, ResourceInvention:
		return true
	}
	return false
}

// StickerCategory classifies a sticker. Wild stickers belong to no single
// track; their contribution still comes from their effect list.
type StickerCategory string

const (
	CategoryPower        StickerCategory = "power"
	CategoryConstruction StickerCategory = "construction"
	CategoryInvention    StickerCategory = "invention"
	CategoryWild         StickerCategory = "wild"
)

// Valid reports whether c names a known sticker category
func (c StickerCategory) Valid() bool {
	switch c {
	case CategoryPower, CategoryConstruction, CategoryInvention, CategoryWild:
		return true
	}
	return false
}

// ResourceTotals holds one value per track
type ResourceTotals struct {
	Power        int `json:"power"`
	Construction int `json:"construction"`
	Invention    int `json:"invention"`
}

// Add accumulates another set of totals into t
func (t *ResourceTotals) Add(other ResourceTotals) {
	t.Power += other.Power
	t.Construction += other.Construction
	t.Invention += other.Invention
}
