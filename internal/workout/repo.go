package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pantherfit/powerlog/internal/telemetry/tracing"
	"github.com/pantherfit/powerlog/pkg"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateSession(ctx context.Context, session WorkoutSession) (*WorkoutSession, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.createSession")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx,
		`INSERT INTO workout_sessions (user_id, name, date, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		session.UserID, session.Name, session.Date, session.Notes,
	).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	return &session, nil
}

func (r *Repo) GetSession(ctx context.Context, id, userID uuid.UUID) (*WorkoutSession, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.getSession")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id.String()))

	var s WorkoutSession
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, name, date, notes
			FROM workout_sessions
			WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Date, &s.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get workout session: %w", err)
	}

	return &s, nil
}

// MaxOrderNum returns the highest order number among the exercises
// attached to the given session, or 0 when it has none.
func (r *Repo) MaxOrderNum(ctx context.Context, sessionID, userID uuid.UUID) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.maxOrderNum")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var maxOrder int
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(order_num), 0)
			FROM workout_exercises
			WHERE workout_session_id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&maxOrder)
	if err != nil {
		return 0, fmt.Errorf("get max order num: %w", err)
	}

	return maxOrder, nil
}

func (r *Repo) InsertWorkoutExercise(ctx context.Context, we WorkoutExercise) (*WorkoutExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.insertWorkoutExercise")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx,
		`INSERT INTO workout_exercises
			(workout_session_id, exercise_id, user_id, weight, order_num, total_volume, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
		we.WorkoutSessionID, we.ExerciseID, we.UserID, we.Weight, we.OrderNum, we.TotalVolume, we.Notes,
	).Scan(&we.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAlreadyAttached
		}
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}

	return &we, nil
}

func (r *Repo) GetWorkoutExercise(ctx context.Context, id, userID uuid.UUID) (*WorkoutExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.getWorkoutExercise")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_exercise.id", id.String()))

	var we WorkoutExercise
	err = r.db.QueryRow(ctx,
		`SELECT id, workout_session_id, exercise_id, user_id, weight, order_num, total_volume, notes
			FROM workout_exercises
			WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&we.ID, &we.WorkoutSessionID, &we.ExerciseID, &we.UserID,
		&we.Weight, &we.OrderNum, &we.TotalVolume, &we.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, fmt.Errorf("get workout exercise: %w", err)
	}

	return &we, nil
}

// GetAttachedExercise loads a workout exercise together with its
// catalog names.
func (r *Repo) GetAttachedExercise(ctx context.Context, id, userID uuid.UUID) (*AttachedExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.getAttachedExercise")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var ae AttachedExercise
	err = r.db.QueryRow(ctx,
		`SELECT
				we.id, we.workout_session_id, we.exercise_id, we.user_id,
				we.weight, we.order_num, we.total_volume, we.notes,
				e.name, mg.name
			FROM workout_exercises we
			JOIN exercises e ON e.id = we.exercise_id
			JOIN muscle_groups mg ON mg.id = e.muscle_group_id
			WHERE we.id = $1 AND we.user_id = $2`,
		id, userID,
	).Scan(
		&ae.ID, &ae.WorkoutSessionID, &ae.ExerciseID, &ae.UserID,
		&ae.Weight, &ae.OrderNum, &ae.TotalVolume, &ae.Notes,
		&ae.ExerciseName, &ae.MuscleGroupName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, fmt.Errorf("get attached exercise: %w", err)
	}

	return &ae, nil
}

// ListAttachedExercises returns the session's exercises with catalog
// names, ordered by their position within the session.
func (r *Repo) ListAttachedExercises(ctx context.Context, sessionID, userID uuid.UUID) ([]AttachedExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.listAttachedExercises")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT
				we.id, we.workout_session_id, we.exercise_id, we.user_id,
				we.weight, we.order_num, we.total_volume, we.notes,
				e.name, mg.name
			FROM workout_exercises we
			JOIN exercises e ON e.id = we.exercise_id
			JOIN muscle_groups mg ON mg.id = e.muscle_group_id
			WHERE we.workout_session_id = $1 AND we.user_id = $2
			ORDER BY we.order_num ASC`,
		sessionID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attached exercises: %w", err)
	}
	defer rows.Close()

	var attached []AttachedExercise
	for rows.Next() {
		var ae AttachedExercise
		if err = rows.Scan(
			&ae.ID, &ae.WorkoutSessionID, &ae.ExerciseID, &ae.UserID,
			&ae.Weight, &ae.OrderNum, &ae.TotalVolume, &ae.Notes,
			&ae.ExerciseName, &ae.MuscleGroupName,
		); err != nil {
			return nil, fmt.Errorf("scan attached exercise: %w", err)
		}
		attached = append(attached, ae)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list attached exercises rows: %w", err)
	}

	return attached, nil
}

// MaxSetNumber returns the highest set number logged for the given
// workout exercise, or 0 when no sets exist yet.
func (r *Repo) MaxSetNumber(ctx context.Context, workoutExerciseID, userID uuid.UUID) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.maxSetNumber")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var maxSet int
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(set_number), 0)
			FROM exercise_sets
			WHERE workout_exercise_id = $1 AND user_id = $2`,
		workoutExerciseID, userID,
	).Scan(&maxSet)
	if err != nil {
		return 0, fmt.Errorf("get max set number: %w", err)
	}

	return maxSet, nil
}

func (r *Repo) InsertSet(ctx context.Context, set ExerciseSet) (*ExerciseSet, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.insertSet")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx,
		`INSERT INTO exercise_sets
			(workout_exercise_id, user_id, set_number, reps, weight, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at`,
		set.WorkoutExerciseID, set.UserID, set.SetNumber, set.Reps, set.Weight, set.Notes, time.Now(),
	).Scan(&set.ID, &set.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateSetNumber
		}
		return nil, fmt.Errorf("insert exercise set: %w", err)
	}

	return &set, nil
}

func (r *Repo) ListSets(ctx context.Context, workoutExerciseID, userID uuid.UUID) ([]ExerciseSet, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.listSets")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, workout_exercise_id, user_id, set_number, reps, weight, notes, created_at
			FROM exercise_sets
			WHERE workout_exercise_id = $1 AND user_id = $2
			ORDER BY set_number ASC`,
		workoutExerciseID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercise sets: %w", err)
	}
	defer rows.Close()

	var sets []ExerciseSet
	for rows.Next() {
		var s ExerciseSet
		if err = rows.Scan(
			&s.ID, &s.WorkoutExerciseID, &s.UserID,
			&s.SetNumber, &s.Reps, &s.Weight, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan exercise set: %w", err)
		}
		sets = append(sets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercise sets rows: %w", err)
	}

	return sets, nil
}

func (r *Repo) UpdateTotalVolume(ctx context.Context, workoutExerciseID, userID uuid.UUID, totalVolume float64) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutRepo.updateTotalVolume")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout_exercises
			SET total_volume = $3
			WHERE id = $1 AND user_id = $2`,
		workoutExerciseID, userID, totalVolume,
	)
	if err != nil {
		return fmt.Errorf("update total volume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutExerciseNotFound
	}

	return nil
}
