package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tinkergames/tinkerdeck/internal/api/apierr"
	"github.com/tinkergames/tinkerdeck/internal/api/request"
	"github.com/tinkergames/tinkerdeck/internal/api/response"
	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/services/session"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.HandLimit <= 0 {
		WriteError(w, apierr.NewInvalidRequestError("hand_limit must be positive"))
		return
	}

	decklist := make([]model.CardID, len(req.Decklist))
	for i, id := range req.Decklist {
		decklist[i] = model.CardID(id)
	}

	s, err := h.controller.CreateSession(r.Context(), decklist, req.HandLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionStateFromModel(s))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionStateFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteSession(sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Draw handles POST /api/v1/sessions/{id}/draw
func (h *SessionHandler) Draw(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	drawn, err := h.controller.Draw(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeDrawResult(w, id, drawn)
}

// DiscardHand handles POST /api/v1/sessions/{id}/discard
func (h *SessionHandler) DiscardHand(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DiscardHand(sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// DiscardAndDraw handles POST /api/v1/sessions/{id}/discard-draw
func (h *SessionHandler) DiscardAndDraw(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	drawn, err := h.controller.DiscardAndDraw(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeDrawResult(w, id, drawn)
}

// DiscardCard handles POST /api/v1/sessions/{id}/hand/{index}/discard
func (h *SessionHandler) DiscardCard(w http.ResponseWriter, r *http.Request) {
	index, err := handIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := h.controller.DiscardCard(sessionID(r), index); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// DiscardByInstance handles POST /api/v1/sessions/{id}/cards/{instance_id}/discard
func (h *SessionHandler) DiscardByInstance(w http.ResponseWriter, r *http.Request) {
	instanceID := model.InstanceID(mux.Vars(r)["instance_id"])
	if err := h.controller.DiscardByInstanceID(sessionID(r), instanceID); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// PlayCard handles POST /api/v1/sessions/{id}/hand/{index}/play
func (h *SessionHandler) PlayCard(w http.ResponseWriter, r *http.Request) {
	index, err := handIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	card, err := h.controller.PlayCard(sessionID(r), index)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardFromModel(card))
}

// PlayByInstance handles POST /api/v1/sessions/{id}/cards/{instance_id}/play
func (h *SessionHandler) PlayByInstance(w http.ResponseWriter, r *http.Request) {
	instanceID := model.InstanceID(mux.Vars(r)["instance_id"])
	card, err := h.controller.PlayByInstanceID(sessionID(r), instanceID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.CardFromModel(card))
}

// Recycle handles POST /api/v1/sessions/{id}/recycle
func (h *SessionHandler) Recycle(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Recycle(sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// ApplySticker handles POST /api/v1/sessions/{id}/cards/{instance_id}/stickers
func (h *SessionHandler) ApplySticker(w http.ResponseWriter, r *http.Request) {
	var req request.ApplyStickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.StickerID == "" {
		WriteError(w, apierr.NewInvalidRequestError("sticker_id is required"))
		return
	}

	instanceID := model.InstanceID(mux.Vars(r)["instance_id"])
	err := h.controller.ApplySticker(r.Context(), sessionID(r), instanceID, req.SlotIndex, model.StickerID(req.StickerID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// SetHandLimit handles PUT /api/v1/sessions/{id}/hand-limit
func (h *SessionHandler) SetHandLimit(w http.ResponseWriter, r *http.Request) {
	var req request.SetHandLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.HandLimit <= 0 {
		WriteError(w, apierr.NewInvalidRequestError("hand_limit must be positive"))
		return
	}
	if err := h.controller.SetHandLimit(sessionID(r), req.HandLimit); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

func (h *SessionHandler) writeDrawResult(w http.ResponseWriter, id model.SessionID, drawn int) {
	s, err := h.controller.GetSession(id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.DrawResult{
		Drawn:    drawn,
		HandSize: s.Hand.HandSize(),
	})
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

func handIndex(r *http.Request) (int, error) {
	raw := mux.Vars(r)["index"]
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.NewInvalidRequestError("Hand index must be an integer")
	}
	return index, nil
}
