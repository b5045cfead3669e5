package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/registry"
)

// Store is an in-memory implementation of the registry store
type Store struct {
	mu sync.RWMutex

	cards    map[model.CardID]*model.CardDefinition
	stickers map[model.StickerID]*model.StickerDefinition
}

// New creates a new in-memory registry store
func New() *Store {
	return &Store{
		cards:    make(map[model.CardID]*model.CardDefinition),
		stickers: make(map[model.StickerID]*model.StickerDefinition),
	}
}

// Ensure Store implements the interface
var _ registry.Store = (*Store)(nil)

// Card definition operations

func (s *Store) SaveCardDefinition(ctx context.Context, def *model.CardDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[def.ID] = def
	return nil
}

func (s *Store) GetCardDefinition(ctx context.Context, id model.CardID) (*model.CardDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.cards[id]
	if !ok {
		return nil, model.ErrCardDefNotFound
	}
	return def, nil
}

func (s *Store) ListCardDefinitions(ctx context.Context) ([]*model.CardDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defs := make([]*model.CardDefinition, 0, len(s.cards))
	for _, def := range s.cards {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

// Sticker definition operations

func (s *Store) SaveStickerDefinition(ctx context.Context, def *model.StickerDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stickers[def.ID] = def
	return nil
}

func (s *Store) GetStickerDefinition(ctx context.Context, id model.StickerID) (*model.StickerDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.stickers[id]
	if !ok {
		return nil, model.ErrStickerDefNotFound
	}
	return def, nil
}

func (s *Store) ListStickerDefinitions(ctx context.Context) ([]*model.StickerDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defs := make([]*model.StickerDefinition, 0, len(s.stickers))
	for _, def := range s.stickers {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}
