package registry

import (
	"context"

	"github.com/tinkergames/tinkerdeck/internal/model"
)

// Store holds authored card and sticker definitions. It is populated once
// during catalog loading and treated as read-only afterwards; nothing in the
// engine mutates a definition after startup.
type Store interface {
	// Card definition operations
	SaveCardDefinition(ctx context.Context, def *model.CardDefinition) error
	GetCardDefinition(ctx context.Context, id model.CardID) (*model.CardDefinition, error)
	ListCardDefinitions(ctx context.Context) ([]*model.CardDefinition, error)

	// Sticker definition operations
	SaveStickerDefinition(ctx context.Context, def *model.StickerDefinition) error
	GetStickerDefinition(ctx context.Context, id model.StickerID) (*model.StickerDefinition, error)
	ListStickerDefinitions(ctx context.Context) ([]*model.StickerDefinition, error)
}
