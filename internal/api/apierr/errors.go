package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tinkergames/tinkerdeck/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeCardNotInHand      = "CARD_NOT_IN_HAND"
	CodeSlotOutOfRange     = "SLOT_OUT_OF_RANGE"
	CodeCardDefNotFound    = "CARD_DEF_NOT_FOUND"
	CodeStickerDefNotFound = "STICKER_DEF_NOT_FOUND"
	CodeEmptyDecklist      = "EMPTY_DECKLIST"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrCardNotInHand):
		return &httpError{http.StatusNotFound, APIError{CodeCardNotInHand, "Card not in hand"}}
	case errors.Is(err, model.ErrSlotOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeSlotOutOfRange, "Slot index out of range"}}
	case errors.Is(err, model.ErrCardDefNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCardDefNotFound, "Card definition not found"}}
	case errors.Is(err, model.ErrStickerDefNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeStickerDefNotFound, "Sticker definition not found"}}
	case errors.Is(err, model.ErrEmptyDecklist):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyDecklist, "Decklist must not be empty"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
