package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors (fatal at load/build time: authored data must be
	// internally consistent before play begins)
	ErrCardDefNotFound    = errors.New("card definition not found")
	ErrStickerDefNotFound = errors.New("sticker definition not found")
	ErrUnknownEffectType  = errors.New("unknown effect type")
	ErrInvalidDefinition  = errors.New("invalid definition")

	// Hand errors (expected runtime conditions; callers branch on these)
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrSlotOutOfRange = errors.New("slot index out of range")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyDecklist   = errors.New("decklist is empty")
)
