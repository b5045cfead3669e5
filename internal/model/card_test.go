package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func powerSticker(id StickerID, magnitude int) *Sticker {
	return &Sticker{
		ID:       id,
		Category: CategoryPower,
		Effects: []Effect{
			{Kind: EffectResource, Resource: ResourcePower, Magnitude: magnitude},
		},
	}
}

func TestNewCardSeatsStartingStickers(t *testing.T) {
	a := powerSticker("st-a", 2)
	b := powerSticker("st-b", 3)

	c := NewCard("card-1", "INST00000001", "Soldier", "human", "soldier.png", 3, []*Sticker{a, b})

	require.Equal(t, 3, c.SlotCount())
	assert.Same(t, a, c.Slots[0].Occupant)
	assert.Same(t, b, c.Slots[1].Occupant)
	assert.Nil(t, c.Slots[2].Occupant)
	assert.Equal(t, 2, c.Slots[2].Index)
}

func TestNewCardTruncatesExcessStickers(t *testing.T) {
	stickers := []*Sticker{
		powerSticker("st-a", 1),
		powerSticker("st-b", 1),
		powerSticker("st-c", 1),
	}

	c := NewCard("card-1", "INST00000001", "Mason", "dwarf", "", 2, stickers)

	require.Equal(t, 2, c.SlotCount())
	assert.Equal(t, 2, c.PowerValue())
}

func TestCardValueAggregation(t *testing.T) {
	c := NewCard("card-1", "INST00000001", "Soldier", "human", "", 3,
		[]*Sticker{powerSticker("st-a", 2)})
	require.True(t, c.ApplySticker(2, powerSticker("st-b", 3)))

	assert.Equal(t, 5, c.PowerValue())
	assert.Equal(t, 0, c.ConstructionValue())

	// Replacing slot 0 with a zero-power sticker drops the total
	require.True(t, c.ApplySticker(0, powerSticker("st-zero", 0)))
	assert.Equal(t, 3, c.PowerValue())
}

func TestCardValueAllEmpty(t *testing.T) {
	c := NewCard("card-1", "INST00000001", "Apprentice", "gnome", "", 4, nil)

	assert.Equal(t, 0, c.PowerValue())
	assert.Equal(t, 0, c.ConstructionValue())
	assert.Equal(t, 0, c.InventionValue())
}

func TestApplyStickerOutOfRange(t *testing.T) {
	c := NewCard("card-1", "INST00000001", "Soldier", "human", "", 2, nil)
	s := powerSticker("st-a", 2)

	assert.False(t, c.ApplySticker(-1, s))
	assert.False(t, c.ApplySticker(2, s))
	assert.Equal(t, 0, c.PowerValue())
	assert.False(t, c.Slots[0].Occupied())
	assert.False(t, c.Slots[1].Occupied())
}

func TestApplyStickerIgnoresReplaceableFlag(t *testing.T) {
	c := NewCard("card-1", "INST00000001", "Soldier", "human", "", 1,
		[]*Sticker{powerSticker("st-a", 2)})
	c.Slots[0].Replaceable = false

	// Replacement still goes through; the flag is data, not a rule
	assert.True(t, c.ApplySticker(0, powerSticker("st-b", 4)))
	assert.Equal(t, 4, c.PowerValue())
}

func TestCardUniqueID(t *testing.T) {
	c := NewCard("card-1", "INST00000001", "Soldier", "human", "", 0, nil)

	assert.Equal(t, "INST00000001", c.UniqueID())
}

func TestSharedStickerAcrossSlots(t *testing.T) {
	shared := powerSticker("st-shared", 2)
	c := NewCard("card-1", "INST00000001", "Soldier", "human", "", 2,
		[]*Sticker{shared, shared})

	assert.Equal(t, 4, c.PowerValue())
}
