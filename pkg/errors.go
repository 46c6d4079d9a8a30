package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Error kinds surfaced to API clients. Kept as plain strings so the
// frontend can switch on them without a shared schema.
const (
	ErrKindAuthRequired     = "authentication-required"
	ErrKindValidationFailed = "validation-failed"
	ErrKindNotFound         = "not-found"
	ErrKindConflict         = "conflict"
	ErrKindPersistence      = "persistence-failure"
)

type ErrorResponse struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, kind, message string, statusCode int) {
	WriteErrorWithDetails(w, kind, message, nil, statusCode)
}

func WriteErrorWithDetails(w http.ResponseWriter, kind, message string, details map[string]string, statusCode int) {
	respJson, err := json.Marshal(ErrorResponse{
		Kind:    kind,
		Message: message,
		Details: details,
	})
	if err != nil {
		log.Errorf("failed to marshal error response [%s]: %s", message, err)
		http.Error(w, message, statusCode)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respJson, statusCode)
}
