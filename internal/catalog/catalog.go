// Package catalog serves the read-only exercise library: muscle
// groups and the exercises belonging to them. The catalog is shared
// by all users and changes rarely, so reads go through a small
// in-memory cache.
package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
)

type MuscleGroup struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Exercise struct {
	ID            uuid.UUID `json:"id"`
	MuscleGroupID uuid.UUID `json:"muscleGroupId"`
	Name          string    `json:"name"`
	Notes         string    `json:"notes,omitempty"`
}
