package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pantherfit/powerlog/internal/auth"
	"github.com/pantherfit/powerlog/internal/telemetry/metrics"
	"github.com/pantherfit/powerlog/pkg"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type workoutService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, params NewSessionParams) (*WorkoutSession, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetails, error)
	AttachExercise(ctx context.Context, userID uuid.UUID, params AttachExerciseParams) (*AttachedExercise, error)
	LogSet(ctx context.Context, userID uuid.UUID, params LogSetParams) (*LogSetResult, error)
	ListSets(ctx context.Context, userID, workoutExerciseID uuid.UUID) ([]ExerciseSet, error)
}

type Handler struct {
	service workoutService
	metrics *metrics.Manager
}

func NewHandler(service workoutService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.handleNewSession).Methods("POST", "OPTIONS").Name("new-session")
	router.HandleFunc("/sessions/{id}", h.handleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	router.HandleFunc("/sessions/{id}/exercises", h.handleAttachExercise).Methods("POST", "OPTIONS").Name("attach-exercise")
	router.HandleFunc("/exercises/{id}/sets", h.handleLogSet).Methods("POST", "OPTIONS").Name("log-set")
	router.HandleFunc("/exercises/{id}/sets", h.handleListSets).Methods("GET", "OPTIONS").Name("list-sets")
}

type newSessionRequest struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

func (h *Handler) handleNewSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	var req newSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteError(w, pkg.ErrKindValidationFailed, "invalid request body", http.StatusBadRequest)
		return
	}

	params := NewSessionParams{
		Name:  strings.TrimSpace(req.Name),
		Notes: req.Notes,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
				map[string]string{"date": "expected YYYY-MM-DD"}, http.StatusBadRequest)
			return
		}
		params.Date = date
	}

	session, err := h.service.CreateSession(r.Context(), userID, params)
	if err != nil {
		log.Errorf("create session: %s", err)
		writeServiceError(w, err)
		return
	}

	h.metrics.CounterSessionsStarted.Inc()

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("create session, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.service.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("get session, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, detailsJson)
}

type attachExerciseRequest struct {
	ExerciseID string      `json:"exerciseId"`
	Weight     json.Number `json:"weight"`
	Notes      string      `json:"notes"`
}

func attachParamsFromRequest(r *http.Request) (AttachExerciseParams, *ValidationError) {
	fieldErrs := map[string]string{}
	params := AttachExerciseParams{}

	var rawExerciseID, rawWeight string
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req attachExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return params, &ValidationError{Fields: map[string]string{"body": "invalid json"}}
		}
		rawExerciseID = req.ExerciseID
		rawWeight = req.Weight.String()
		params.Notes = req.Notes
	} else {
		if err := r.ParseForm(); err != nil {
			return params, &ValidationError{Fields: map[string]string{"body": "invalid form"}}
		}
		rawExerciseID = r.Form.Get("exerciseId")
		rawWeight = r.Form.Get("weight")
		params.Notes = r.Form.Get("notes")
	}

	exerciseID, err := uuid.Parse(rawExerciseID)
	if err != nil {
		fieldErrs["exerciseId"] = "expected a valid id"
	} else {
		params.ExerciseID = exerciseID
	}

	if rawWeight == "" {
		fieldErrs["weight"] = "required"
	} else if weight, err := strconv.ParseFloat(rawWeight, 64); err != nil {
		fieldErrs["weight"] = "expected a number"
	} else {
		params.Weight = weight
	}

	if len(fieldErrs) > 0 {
		return params, &ValidationError{Fields: fieldErrs}
	}
	return params, nil
}

func (h *Handler) handleAttachExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	params, valErr := attachParamsFromRequest(r)
	if valErr != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input", valErr.Fields, http.StatusBadRequest)
		return
	}
	params.SessionID = sessionID

	attached, err := h.service.AttachExercise(r.Context(), userID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.metrics.CounterExercisesAttached.Inc()

	attachedJson, err := json.Marshal(attached)
	if err != nil {
		log.Errorf("attach exercise, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, attachedJson, http.StatusCreated)
}

type logSetRequest struct {
	Reps  json.Number `json:"reps"`
	Notes string      `json:"notes"`
}

func logSetParamsFromRequest(r *http.Request) (LogSetParams, *ValidationError) {
	params := LogSetParams{}

	var rawReps string
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req logSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return params, &ValidationError{Fields: map[string]string{"body": "invalid json"}}
		}
		rawReps = req.Reps.String()
		params.Notes = req.Notes
	} else {
		if err := r.ParseForm(); err != nil {
			return params, &ValidationError{Fields: map[string]string{"body": "invalid form"}}
		}
		rawReps = r.Form.Get("reps")
		params.Notes = r.Form.Get("notes")
	}

	reps, err := strconv.Atoi(rawReps)
	if err != nil {
		return params, &ValidationError{Fields: map[string]string{"reps": "expected a whole number"}}
	}
	params.Reps = reps

	return params, nil
}

type logSetResponse struct {
	*LogSetResult
	Warning string `json:"warning,omitempty"`
}

func (h *Handler) handleLogSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	workoutExerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	params, valErr := logSetParamsFromRequest(r)
	if valErr != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input", valErr.Fields, http.StatusBadRequest)
		return
	}
	params.WorkoutExerciseID = workoutExerciseID

	result, err := h.service.LogSet(r.Context(), userID, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.metrics.CounterSetsLogged.Inc()

	resp := logSetResponse{LogSetResult: result}
	if !result.VolumeSynced {
		h.metrics.CounterVolumeSyncFailures.Inc()
		resp.Warning = "set logged, but total volume could not be updated"
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("log set, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (h *Handler) handleListSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, pkg.ErrKindAuthRequired, "not logged in", http.StatusUnauthorized)
		return
	}

	workoutExerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sets, err := h.service.ListSets(r.Context(), userID, workoutExerciseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sets == nil {
		sets = []ExerciseSet{}
	}

	setsJson, err := json.Marshal(sets)
	if err != nil {
		log.Errorf("list sets, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, setsJson)
}

// pathID parses the {id} route variable; on failure it writes the
// validation error and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{name: "expected a valid id"}, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input", valErr.Fields, http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotFound):
		pkg.WriteError(w, pkg.ErrKindNotFound, "workout session not found", http.StatusNotFound)
	case errors.Is(err, ErrWorkoutExerciseNotFound):
		pkg.WriteError(w, pkg.ErrKindNotFound, "workout exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyAttached):
		pkg.WriteError(w, pkg.ErrKindConflict, "this exercise is already in the workout", http.StatusConflict)
	case errors.Is(err, ErrDuplicateSetNumber):
		pkg.WriteError(w, pkg.ErrKindConflict, "set already logged, try again", http.StatusConflict)
	default:
		log.Errorf("workout handler: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
	}
}
