package request

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Decklist  []string `json:"decklist"`
	HandLimit int      `json:"hand_limit"`
}

// ApplyStickerRequest is the request body for applying a sticker to a card slot
type ApplyStickerRequest struct {
	StickerID string `json:"sticker_id"`
	SlotIndex int    `json:"slot_index"`
}

// SetHandLimitRequest is the request body for updating the hand limit
type SetHandLimitRequest struct {
	HandLimit int `json:"hand_limit"`
}
