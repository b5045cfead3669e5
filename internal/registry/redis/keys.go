package redis

import (
	"fmt"

	"github.com/tinkergames/tinkerdeck/internal/model"
)

// Key prefix for all catalog data
const keyPrefix = "tinkerdeck"

// cardDefKey returns the Redis key for a card definition
func cardDefKey(id model.CardID) string {
	return fmt.Sprintf("%s:card_def:%s", keyPrefix, id)
}

// stickerDefKey returns the Redis key for a sticker definition
func stickerDefKey(id model.StickerID) string {
	return fmt.Sprintf("%s:sticker_def:%s", keyPrefix, id)
}

// cardIndexKey returns the Redis key for the SET of known card definition ids
func cardIndexKey() string {
	return fmt.Sprintf("%s:idx:card_defs", keyPrefix)
}

// stickerIndexKey returns the Redis key for the SET of known sticker definition ids
func stickerIndexKey() string {
	return fmt.Sprintf("%s:idx:sticker_defs", keyPrefix)
}
