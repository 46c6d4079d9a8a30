package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pantherfit/powerlog/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) ListMuscleGroups(ctx context.Context) ([]MuscleGroup, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.listMuscleGroups")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM muscle_groups ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	var groups []MuscleGroup
	for rows.Next() {
		var g MuscleGroup
		if err = rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list muscle groups rows: %w", err)
	}

	return groups, nil
}

func (r *Repo) ListExercises(ctx context.Context, muscleGroupID uuid.UUID) ([]Exercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.listExercises")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, muscle_group_id, name, COALESCE(notes, '')
			FROM exercises
			WHERE muscle_group_id = $1
			ORDER BY name ASC`,
		muscleGroupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err = rows.Scan(&e.ID, &e.MuscleGroupID, &e.Name, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises rows: %w", err)
	}

	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogRepo.getExercise")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Exercise
	err = r.db.QueryRow(ctx,
		`SELECT id, muscle_group_id, name, COALESCE(notes, '')
			FROM exercises
			WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.MuscleGroupID, &e.Name, &e.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return &e, nil
}
