package handler

import (
	"net/http"

	"github.com/tinkergames/tinkerdeck/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response using the shared mapping
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
