package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/tinkergames/tinkerdeck/internal/dependencies/mocks"
	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/registry/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestCatalog loads a small card and sticker catalog for testing
func (t *TestApp) LoadTestCatalog() error {
	stickers := []model.StickerDefinition{
		{
			ID:   "st-hammer",
			Name: "Hammer",
			Type: model.CategoryConstruction,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourceConstruction, Value: 2},
			},
		},
		{
			ID:   "st-sword",
			Name: "Sword",
			Type: model.CategoryPower,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourcePower, Value: 3},
			},
		},
		{
			ID:   "st-cog",
			Name: "Cog",
			Type: model.CategoryInvention,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourceInvention, Value: 1},
			},
		},
		{
			ID:   "st-banner",
			Name: "Banner",
			Type: model.CategoryWild,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourcePower, Value: 1},
				{Type: "resource", ResourceType: model.ResourceInvention, Value: 1},
			},
		},
	}

	cards := []model.CardDefinition{
		{
			ID:               "card-soldier",
			Name:             "Soldier",
			Race:             "human",
			StartingStickers: []model.StickerID{"st-sword"},
			MaxSlotCount:     3,
		},
		{
			ID:               "card-mason",
			Name:             "Mason",
			Race:             "dwarf",
			StartingStickers: []model.StickerID{"st-hammer", "st-hammer"},
			MaxSlotCount:     2,
		},
		{
			ID:           "card-apprentice",
			Name:         "Apprentice",
			Race:         "gnome",
			MaxSlotCount: 4,
		},
	}

	return t.CatalogService.LoadDefinitions(context.Background(), stickers, cards)
}
