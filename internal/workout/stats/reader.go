// Package stats reads workout aggregates computed by store-side
// functions: personal records, volume history and session summaries.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pantherfit/powerlog/internal/telemetry/tracing"
)

var ErrSessionNotFound = errors.New("workout session not found")

// VolumePoint is one day's total volume for an exercise.
type VolumePoint struct {
	Date        time.Time `json:"date"`
	TotalVolume float64   `json:"totalVolume"`
}

// SessionSummary is the session list view row.
type SessionSummary struct {
	SessionID      uuid.UUID `json:"sessionId"`
	SessionName    string    `json:"sessionName"`
	SessionDate    time.Time `json:"sessionDate"`
	TotalExercises int       `json:"totalExercises"`
	TotalSets      int       `json:"totalSets"`
}

// PerformedExercise is a catalog exercise the user has logged at
// least one set for.
type PerformedExercise struct {
	ExerciseID    uuid.UUID `json:"exerciseId"`
	ExerciseName  string    `json:"exerciseName"`
	LastPerformed time.Time `json:"lastPerformed"`
}

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(db *pgxpool.Pool) *Reader {
	return &Reader{db: db}
}

// PRAtWeight returns the user's best rep count for the exercise at
// exactly the given weight, or nil when nothing was logged at it.
func (r *Reader) PRAtWeight(ctx context.Context, userID, exerciseID uuid.UUID, weight float64) (*float64, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.prAtWeight")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var pr *float64
	err = r.db.QueryRow(ctx,
		`SELECT get_user_exercise_pr_at_weight($1, $2, $3)`,
		userID, exerciseID, weight,
	).Scan(&pr)
	if err != nil {
		return nil, fmt.Errorf("get pr at weight: %w", err)
	}

	return pr, nil
}

// PROverall returns the user's best single-set volume for the
// exercise across all weights, or nil when nothing was logged.
func (r *Reader) PROverall(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.prOverall")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var pr *float64
	err = r.db.QueryRow(ctx,
		`SELECT get_user_exercise_pr_overall($1, $2)`,
		userID, exerciseID,
	).Scan(&pr)
	if err != nil {
		return nil, fmt.Errorf("get overall pr: %w", err)
	}

	return pr, nil
}

func (r *Reader) VolumeHistory(ctx context.Context, userID, exerciseID uuid.UUID) ([]VolumePoint, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.volumeHistory")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT * FROM get_exercise_volume_history($1, $2)`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("get volume history: %w", err)
	}
	defer rows.Close()

	var history []VolumePoint
	for rows.Next() {
		var p VolumePoint
		if err = rows.Scan(&p.Date, &p.TotalVolume); err != nil {
			return nil, fmt.Errorf("scan volume point: %w", err)
		}
		history = append(history, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("volume history rows: %w", err)
	}

	return history, nil
}

func (r *Reader) SessionSummaries(ctx context.Context, userID uuid.UUID) ([]SessionSummary, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.sessionSummaries")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT * FROM get_user_workout_sessions($1)`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get session summaries: %w", err)
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err = rows.Scan(&s.SessionID, &s.SessionName, &s.SessionDate, &s.TotalExercises, &s.TotalSets); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("session summaries rows: %w", err)
	}

	return summaries, nil
}

// SessionDetails returns the full session breakdown assembled
// store-side as a single json document, with per-exercise sets
// nested inside.
func (r *Reader) SessionDetails(ctx context.Context, userID, sessionID uuid.UUID) (json.RawMessage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.sessionDetails")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var details json.RawMessage
	err = r.db.QueryRow(ctx,
		`SELECT get_session_details_with_exercises($1, $2)`,
		userID, sessionID,
	).Scan(&details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session details: %w", err)
	}
	if len(details) == 0 || string(details) == "null" {
		return nil, ErrSessionNotFound
	}

	return details, nil
}

func (r *Reader) PerformedExercises(ctx context.Context, userID uuid.UUID) ([]PerformedExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statsReader.performedExercises")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT * FROM get_user_performed_exercises($1)`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get performed exercises: %w", err)
	}
	defer rows.Close()

	var performed []PerformedExercise
	for rows.Next() {
		var p PerformedExercise
		if err = rows.Scan(&p.ExerciseID, &p.ExerciseName, &p.LastPerformed); err != nil {
			return nil, fmt.Errorf("scan performed exercise: %w", err)
		}
		performed = append(performed, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("performed exercises rows: %w", err)
	}

	return performed, nil
}
