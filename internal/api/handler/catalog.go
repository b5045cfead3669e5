package handler

import (
	"net/http"

	"github.com/tinkergames/tinkerdeck/internal/api/response"
	"github.com/tinkergames/tinkerdeck/internal/services/catalog"
)

// CatalogHandler handles catalog browsing endpoints
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListCards handles GET /api/v1/catalog/cards
func (h *CatalogHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	defs, err := h.catalog.ListCards(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	out := make([]response.CardDefinition, len(defs))
	for i, def := range defs {
		out[i] = response.CardDefinitionFromModel(def)
	}
	response.JSON(w, http.StatusOK, out)
}

// ListStickers handles GET /api/v1/catalog/stickers
func (h *CatalogHandler) ListStickers(w http.ResponseWriter, r *http.Request) {
	defs, err := h.catalog.ListStickers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	out := make([]response.StickerDefinition, len(defs))
	for i, def := range defs {
		out[i] = response.StickerDefinitionFromModel(def)
	}
	response.JSON(w, http.StatusOK, out)
}
