package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tinkergames/tinkerdeck/internal/dependencies/mocks"
	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/registry/memory"
	"github.com/tinkergames/tinkerdeck/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Store
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.store, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) loadBaseCatalog() {
	stickers := []model.StickerDefinition{
		{
			ID:   "st-sword",
			Name: "Sword",
			Type: model.CategoryPower,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourcePower, Value: 3},
			},
		},
		{
			ID:   "st-hammer",
			Name: "Hammer",
			Type: model.CategoryConstruction,
			Effects: []model.EffectDefinition{
				{Type: "resource", ResourceType: model.ResourceConstruction, Value: 2},
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
	}
	s.Require().NoError(s.service.LoadDefinitions(s.ctx, stickers, cards))
}

func (s *ServiceSuite) TestLoadAndBuildSticker() {
	s.loadBaseCatalog()

	sticker, err := s.service.BuildSticker(s.ctx, "st-sword")

	s.Require().NoError(err)
	s.Equal(model.StickerID("st-sword"), sticker.ID)
	s.Equal(model.CategoryPower, sticker.Category)
	s.Equal(3, sticker.PowerValue())
	s.Equal(0, sticker.ConstructionValue())
}

func (s *ServiceSuite) TestBuildStickerNotFound() {
	s.loadBaseCatalog()

	_, err := s.service.BuildSticker(s.ctx, "st-missing")

	s.ErrorIs(err, model.ErrStickerDefNotFound)
}

func (s *ServiceSuite) TestBuildCardSeatsStartingStickers() {
	s.loadBaseCatalog()
	s.random.QueueString("INSTSOLDIER1")

	card, err := s.service.BuildCard(s.ctx, "card-soldier")

	s.Require().NoError(err)
	s.Equal(model.CardID("card-soldier"), card.ID)
	s.Equal(model.InstanceID("INSTSOLDIER1"), card.InstanceID)
	s.Equal(3, card.SlotCount())
	s.Require().NotNil(card.Slots[0].Occupant)
	s.Equal(model.StickerID("st-sword"), card.Slots[0].Occupant.ID)
	s.Nil(card.Slots[1].Occupant)
	s.Nil(card.Slots[2].Occupant)
	s.Equal(3, card.PowerValue())
}

func (s *ServiceSuite) TestBuildCardNotFound() {
	s.loadBaseCatalog()

	_, err := s.service.BuildCard(s.ctx, "card-missing")

	s.ErrorIs(err, model.ErrCardDefNotFound)
}

func (s *ServiceSuite) TestBuildCardMissingStartingStickerFails() {
	cards := []model.CardDefinition{
		{
			ID:               "card-broken",
			Name:             "Broken",
			StartingStickers: []model.StickerID{"st-nowhere"},
			MaxSlotCount:     1,
		},
	}
	s.Require().NoError(s.service.LoadDefinitions(s.ctx, nil, cards))

	_, err := s.service.BuildCard(s.ctx, "card-broken")

	s.ErrorIs(err, model.ErrStickerDefNotFound)
}

func (s *ServiceSuite) TestBuildDeckDistinctInstances() {
	s.loadBaseCatalog()
	s.random.QueueString("INST00000001", "INST00000002")

	cards, err := s.service.BuildDeck(s.ctx, []model.CardID{"card-soldier", "card-soldier"})

	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.Equal(cards[0].ID, cards[1].ID)
	s.NotEqual(cards[0].InstanceID, cards[1].InstanceID)
}

func (s *ServiceSuite) TestUnknownEffectTypeRejected() {
	stickers := []model.StickerDefinition{
		{
			ID:   "st-cursed",
			Type: model.CategoryWild,
			Effects: []model.EffectDefinition{
				{Type: "teleport", ResourceType: model.ResourcePower, Value: 1},
			},
		},
	}

	err := s.service.LoadDefinitions(s.ctx, stickers, nil)

	s.ErrorIs(err, model.ErrUnknownEffectType)
}

func (s *ServiceSuite) TestUnknownStickerTypeRejected() {
	stickers := []model.StickerDefinition{
		{ID: "st-odd", Type: "cursed"},
	}

	err := s.service.LoadDefinitions(s.ctx, stickers, nil)

	s.ErrorIs(err, model.ErrInvalidDefinition)
}

func (s *ServiceSuite) TestLoadFromFile() {
	content := `stickers:
  - id: st-cog
    name: Cog
    type: invention
    effects:
      - type: resource
        resource_type: invention
        value: 1
cards:
  - id: card-tinker
    name: Tinker
    race: gnome
    starting_stickers: [st-cog]
    max_slot_count: 2
`
	path := filepath.Join(s.T().TempDir(), "catalog.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	s.random.QueueString("INSTTINKER01")
	card, err := s.service.BuildCard(s.ctx, "card-tinker")
	s.Require().NoError(err)
	s.Equal("Tinker", card.Name)
	s.Equal(1, card.InventionValue())
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.yaml"))

	s.Error(err)
}

func (s *ServiceSuite) TestListDefinitions() {
	s.loadBaseCatalog()

	cards, err := s.service.ListCards(s.ctx)
	s.Require().NoError(err)
	s.Len(cards, 1)

	stickers, err := s.service.ListStickers(s.ctx)
	s.Require().NoError(err)
	s.Len(stickers, 2)
}
