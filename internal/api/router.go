package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tinkergames/tinkerdeck/internal/api/handler"
	"github.com/tinkergames/tinkerdeck/internal/api/middleware"
	"github.com/tinkergames/tinkerdeck/internal/services/catalog"
	"github.com/tinkergames/tinkerdeck/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	CatalogService    *catalog.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Catalog routes
	api.HandleFunc("/catalog/cards", catalogHandler.ListCards).Methods(http.MethodGet)
	api.HandleFunc("/catalog/stickers", catalogHandler.ListStickers).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	sessions := api.PathPrefix("/sessions/{id}").Subrouter()
	sessions.HandleFunc("", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/draw", sessionHandler.Draw).Methods(http.MethodPost)
	sessions.HandleFunc("/discard", sessionHandler.DiscardHand).Methods(http.MethodPost)
	sessions.HandleFunc("/discard-draw", sessionHandler.DiscardAndDraw).Methods(http.MethodPost)
	sessions.HandleFunc("/recycle", sessionHandler.Recycle).Methods(http.MethodPost)
	sessions.HandleFunc("/hand-limit", sessionHandler.SetHandLimit).Methods(http.MethodPut)
	sessions.HandleFunc("/hand/{index}/discard", sessionHandler.DiscardCard).Methods(http.MethodPost)
	sessions.HandleFunc("/hand/{index}/play", sessionHandler.PlayCard).Methods(http.MethodPost)
	sessions.HandleFunc("/cards/{instance_id}/discard", sessionHandler.DiscardByInstance).Methods(http.MethodPost)
	sessions.HandleFunc("/cards/{instance_id}/play", sessionHandler.PlayByInstance).Methods(http.MethodPost)
	sessions.HandleFunc("/cards/{instance_id}/stickers", sessionHandler.ApplySticker).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
