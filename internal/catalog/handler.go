package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pantherfit/powerlog/pkg"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/groups", h.handleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	router.HandleFunc("/groups/{id}/exercises", h.handleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises/{id}", h.handleGetExercise).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (h *Handler) handleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.repo.ListMuscleGroups(r.Context())
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	if groups == nil {
		groups = []MuscleGroup{}
	}

	groupsJson, err := json.Marshal(groups)
	if err != nil {
		log.Errorf("list muscle groups, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, groupsJson)
}

func (h *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	muscleGroupID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{"id": "expected a valid id"}, http.StatusBadRequest)
		return
	}

	exercises, err := h.repo.ListExercises(r.Context(), muscleGroupID)
	if err != nil {
		log.Errorf("list exercises for group %s: %s", muscleGroupID, err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("list exercises, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exercisesJson)
}

func (h *Handler) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteErrorWithDetails(w, pkg.ErrKindValidationFailed, "invalid input",
			map[string]string{"id": "expected a valid id"}, http.StatusBadRequest)
		return
	}

	exercise, err := h.repo.GetExercise(r.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			pkg.WriteError(w, pkg.ErrKindNotFound, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", exerciseID, err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("get exercise, marshal response: %s", err)
		pkg.WriteError(w, pkg.ErrKindPersistence, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}
