package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pantherfit/powerlog/internal/auth"
	"github.com/pantherfit/powerlog/pkg"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsReader interface {
	PRAtWeight(ctx context.Context, userID, exerciseID uuid.UUID, weight float64) (*float64, error)
	PROverall(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error)
	VolumeHistory(ctx context.Context, userID, exerciseID uuid.UUID) ([]VolumePoint, error)
	SessionSummaries(ctx context.Context, userID uuid.UUID) ([]SessionSummary, error)
	SessionDetails(ctx context.Context, userID, sessionID uuid.UUID) (json.RawMessage, error)
	PerformedExercises(ctx context.Context, userID uuid.UUID) ([]PerformedExercise, error)
}

type Handler struct {
	reader statsReader
}

func NewHandler(reader statsReader) *Handler {
	return &Handler{reader: reader}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises/{exerciseId}/pr", h.handleGetPR).Methods("GET", "OPTIONS").Name("get-pr")
	router.HandleFunc("/exercises/{exerciseId}/volume-history", h.handleVolumeHistory).Methods("GET", "OPTIONS").Name("volume-history")
	router.HandleFunc("/sessions", h.handleSessionSummaries).Methods("GET", "OPTIONS").Name("session-summaries")
	router.HandleFunc("/sessions/{id}", h.handleSessionDetails).Methods("GET", "OPTIONS").Name("session-details")
	router.HandleFunc("/performed", h.handlePerformedExercises).Methods("GET", "OPTIONS").Name("performed-exercises")
}

type prResponse struct {
	ExerciseID uuid.UUID `json:"exerciseId"`
	Weight     *float64  `json:"weight,omitempty"`
	PR         *float64  `json:"pr"`
}

// handleGetPR serves the overall personal record, or the record at a
// specific weight when the "weight" query param is given.
func (h *Handler) handleGetPR(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["exerciseId"])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{"exerciseId": "expected a valid id"}, http.StatusBadRequest)
		return
	}

	resp := prResponse{ExerciseID: exerciseID}
	if rawWeight := r.URL.Query().Get("weight"); rawWeight != "" {
		weight, err := strconv.ParseFloat(rawWeight, 64)
		if err != nil || weight < 0 {
			pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
				map[string]string{"weight": "expected a non-negative number"}, http.StatusBadRequest)
			return
		}
		resp.Weight = &weight
		resp.PR, err = h.reader.PRAtWeight(r.Context(), userID, exerciseID, weight)
		if err != nil {
			log.Errorf("get pr at weight: %s", err)
			pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
			return
		}
	} else {
		resp.PR, err = h.reader.PROverall(r.Context(), userID, exerciseID)
		if err != nil {
			log.Errorf("get overall pr: %s", err)
			pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
			return
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("get pr, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (h *Handler) handleVolumeHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["exerciseId"])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{"exerciseId": "expected a valid id"}, http.StatusBadRequest)
		return
	}

	history, err := h.reader.VolumeHistory(r.Context(), userID, exerciseID)
	if err != nil {
		log.Errorf("get volume history: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []VolumePoint{}
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("get volume history, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, historyJson)
}

func (h *Handler) handleSessionSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	summaries, err := h.reader.SessionSummaries(r.Context(), userID)
	if err != nil {
		log.Errorf("get session summaries: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []SessionSummary{}
	}

	summariesJson, err := json.Marshal(summaries)
	if err != nil {
		log.Errorf("get session summaries, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summariesJson)
}

func (h *Handler) handleSessionDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{"id": "expected a valid id"}, http.StatusBadRequest)
		return
	}

	details, err := h.reader.SessionDetails(r.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			pkg.WriteError(w, pkg.ErrKindNotFound, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session details: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, details)
}

func (h *Handler) handlePerformedExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	performed, err := h.reader.PerformedExercises(r.Context(), userID)
	if err != nil {
		log.Errorf("get performed exercises: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	if performed == nil {
		performed = []PerformedExercise{}
	}

	performedJson, err := json.Marshal(performed)
	if err != nil {
		log.Errorf("get performed exercises, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, performedJson)
}
