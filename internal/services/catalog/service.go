package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinkergames/tinkerdeck/internal/dependencies/random"
	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/registry"
)

const instanceIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// File is the on-disk shape of an authored catalog file
type File struct {
	Stickers []model.StickerDefinition `yaml:"stickers"`
	Cards    []model.CardDefinition    `yaml:"cards"`
}

// Service loads authored definitions into the registry and resolves ids
// into live model values. Load failures are fatal to the caller: play never
// starts against a catalog that failed validation.
type Service struct {
	store  registry.Store
	random random.Random
	logger *slog.Logger
}

// New creates a new catalog service
func New(store registry.Store, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		random: rnd,
		logger: logger,
	}
}

// LoadFromFile reads a YAML catalog file, validates every entry, and saves
// the definitions into the registry store
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	if err := s.LoadDefinitions(ctx, file.Stickers, file.Cards); err != nil {
		return fmt.Errorf("loading catalog %s: %w", path, err)
	}

	s.logger.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("stickers", len(file.Stickers)),
		slog.Int("cards", len(file.Cards)),
	)

	return nil
}

// LoadDefinitions validates and stores the given definitions (useful for testing)
func (s *Service) LoadDefinitions(ctx context.Context, stickers []model.StickerDefinition, cards []model.CardDefinition) error {
	for i := range stickers {
		def := stickers[i]
		if err := validateStickerDefinition(&def); err != nil {
			return err
		}
		if err := s.store.SaveStickerDefinition(ctx, &def); err != nil {
			return err
		}
	}

	for i := range cards {
		def := cards[i]
		if err := validateCardDefinition(&def); err != nil {
			return err
		}
		if err := s.store.SaveCardDefinition(ctx, &def); err != nil {
			return err
		}
	}

	return nil
}

func validateStickerDefinition(def *model.StickerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: sticker with empty id", model.ErrInvalidDefinition)
	}
	if !def.Type.Valid() {
		return fmt.Errorf("%w: sticker %q has unknown type %q", model.ErrInvalidDefinition, def.ID, def.Type)
	}
	for _, effect := range def.Effects {
		if model.EffectKind(effect.Type) != model.EffectResource {
			return fmt.Errorf("%w: sticker %q effect type %q", model.ErrUnknownEffectType, def.ID, effect.Type)
		}
		if !effect.ResourceType.Valid() {
			return fmt.Errorf("%w: sticker %q has unknown resource type %q", model.ErrInvalidDefinition, def.ID, effect.ResourceType)
		}
	}
	return nil
}

func validateCardDefinition(def *model.CardDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: card with empty id", model.ErrInvalidDefinition)
	}
	if def.MaxSlotCount < 0 {
		return fmt.Errorf("%w: card %q has negative slot count", model.ErrInvalidDefinition, def.ID)
	}
	return nil
}

// BuildSticker resolves a sticker id into an immutable sticker value
func (s *Service) BuildSticker(ctx context.Context, id model.StickerID) (*model.Sticker, error) {
	def, err := s.store.GetStickerDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	effects := make([]model.Effect, 0, len(def.Effects))
	for _, e := range def.Effects {
		effects = append(effects, model.Effect{
			Kind:      model.EffectKind(e.Type),
			Resource:  e.ResourceType,
			Magnitude: e.Value,
		})
	}

	return &model.Sticker{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Image:       def.Image,
		Category:    def.Type,
		Effects:     effects,
	}, nil
}

// BuildCard resolves a card definition id into a fresh physical card
// instance with its starting stickers seated. A starting sticker id missing
// from the registry fails the build; authored data referencing unknown
// stickers is a catalog integrity error, not a game state.
func (s *Service) BuildCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	def, err := s.store.GetCardDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	starting := make([]*model.Sticker, 0, len(def.StartingStickers))
	for _, stickerID := range def.StartingStickers {
		sticker, err := s.BuildSticker(ctx, stickerID)
		if err != nil {
			return nil, fmt.Errorf("card %q starting sticker %q: %w", def.ID, stickerID, err)
		}
		starting = append(starting, sticker)
	}

	instanceID := model.InstanceID(s.random.String(12, instanceIDAlphabet))
	return model.NewCard(def.ID, instanceID, def.Name, def.Race, def.Image, def.MaxSlotCount, starting), nil
}

// BuildDeck resolves a decklist into card instances, one per entry.
// Repeated ids produce distinct instances.
func (s *Service) BuildDeck(ctx context.Context, decklist []model.CardID) ([]*model.Card, error) {
	cards := make([]*model.Card, 0, len(decklist))
	for _, id := range decklist {
		card, err := s.BuildCard(ctx, id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ListCards returns every loaded card definition
func (s *Service) ListCards(ctx context.Context) ([]*model.CardDefinition, error) {
	return s.store.ListCardDefinitions(ctx)
}

// ListStickers returns every loaded sticker definition
func (s *Service) ListStickers(ctx context.Context) ([]*model.StickerDefinition, error) {
	return s.store.ListStickerDefinitions(ctx)
}
