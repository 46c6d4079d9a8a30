package workout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound         = errors.New("workout session not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	// ErrAlreadyAttached: the order slot within the session is taken
	// already, e.g. by a duplicate submission racing with this one.
	ErrAlreadyAttached = errors.New("exercise already attached at this position")
	// ErrDuplicateSetNumber: two concurrent log requests picked the
	// same next set number and the slower insert lost.
	ErrDuplicateSetNumber = errors.New("set number already taken")
)

// ValidationError lists the offending input fields. It is returned
// before any store access happens.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid input: %s", strings.Join(fields, ", "))
}

func newValidationError(field, problem string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: problem}}
}

// WorkoutSession is a single workout occasion. Its exercises and sets
// reference it and are removed with it (cascade, at the store level).
type WorkoutSession struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes,omitempty"`
}

// WorkoutExercise is one exercise as performed within one session, at
// one fixed weight. OrderNum is the 1-based position within the
// session. TotalVolume is the running sum of reps x weight over all
// sets logged for it, maintained incrementally on every logged set.
type WorkoutExercise struct {
	ID               uuid.UUID `json:"id"`
	WorkoutSessionID uuid.UUID `json:"workoutSessionId"`
	ExerciseID       uuid.UUID `json:"exerciseId"`
	UserID           uuid.UUID `json:"userId"`
	Weight           float64   `json:"weight"`
	OrderNum         int       `json:"orderNum"`
	TotalVolume      float64   `json:"totalVolume"`
	Notes            string    `json:"notes,omitempty"`
}

// AttachedExercise is a WorkoutExercise enriched with its catalog
// names, as shown in the session edit view.
type AttachedExercise struct {
	WorkoutExercise
	ExerciseName    string `json:"exerciseName"`
	MuscleGroupName string `json:"muscleGroupName"`
}

// ExerciseSet is one completed set. SetNumber is 1-based and
// monotonically increasing per workout exercise. Weight is copied from
// the parent workout exercise at insertion time. Sets are immutable
// once created.
type ExerciseSet struct {
	ID                uuid.UUID `json:"id"`
	WorkoutExerciseID uuid.UUID `json:"workoutExerciseId"`
	UserID            uuid.UUID `json:"userId"`
	SetNumber         int       `json:"setNumber"`
	Reps              int       `json:"reps"`
	Weight            float64   `json:"weight"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
