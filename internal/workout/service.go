package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pantherfit/powerlog/internal/telemetry/tracing"
	log "github.com/sirupsen/logrus"
)

type workoutRepo interface {
	CreateSession(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	GetSession(ctx context.Context, id, userID uuid.UUID) (*WorkoutSession, error)
	MaxOrderNum(ctx context.Context, sessionID, userID uuid.UUID) (int, error)
	InsertWorkoutExercise(ctx context.Context, we WorkoutExercise) (*WorkoutExercise, error)
	GetWorkoutExercise(ctx context.Context, id, userID uuid.UUID) (*WorkoutExercise, error)
	GetAttachedExercise(ctx context.Context, id, userID uuid.UUID) (*AttachedExercise, error)
	ListAttachedExercises(ctx context.Context, sessionID, userID uuid.UUID) ([]AttachedExercise, error)
	MaxSetNumber(ctx context.Context, workoutExerciseID, userID uuid.UUID) (int, error)
	InsertSet(ctx context.Context, set ExerciseSet) (*ExerciseSet, error)
	ListSets(ctx context.Context, workoutExerciseID, userID uuid.UUID) ([]ExerciseSet, error)
	UpdateTotalVolume(ctx context.Context, workoutExerciseID, userID uuid.UUID, totalVolume float64) error
}

// aggregateReader supplies personal records, computed store-side.
type aggregateReader interface {
	PRAtWeight(ctx context.Context, userID, exerciseID uuid.UUID, weight float64) (*float64, error)
	PROverall(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error)
}

type Service struct {
	repo       workoutRepo
	aggregates aggregateReader
}

func NewService(repo workoutRepo, aggregates aggregateReader) *Service {
	return &Service{
		repo:       repo,
		aggregates: aggregates,
	}
}

type NewSessionParams struct {
	Name  string
	Date  time.Time
	Notes string
}

func (s *Service) CreateSession(ctx context.Context, userID uuid.UUID, params NewSessionParams) (*WorkoutSession, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.createSession")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Date.IsZero() {
		params.Date = time.Now()
	}
	if params.Name == "" {
		params.Name = fmt.Sprintf("Workout - %s", params.Date.Format("2006-01-02"))
	}

	session, err := s.repo.CreateSession(ctx, WorkoutSession{
		UserID: userID,
		Name:   params.Name,
		Date:   params.Date,
		Notes:  params.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

// SessionDetails is a session together with its attached exercises.
type SessionDetails struct {
	Session   WorkoutSession     `json:"session"`
	Exercises []AttachedExercise `json:"exercises"`
}

func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetails, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.getSession")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.repo.ListAttachedExercises(ctx, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("list session exercises: %w", err)
	}

	return &SessionDetails{
		Session:   *session,
		Exercises: exercises,
	}, nil
}

type AttachExerciseParams struct {
	SessionID  uuid.UUID
	ExerciseID uuid.UUID
	Weight     float64
	Notes      string
}

// AttachExercise adds an exercise to a workout session at the next
// free position. The session must belong to the calling user,
// otherwise ErrSessionNotFound is returned regardless of whether the
// session exists for somebody else.
func (s *Service) AttachExercise(ctx context.Context, userID uuid.UUID, params AttachExerciseParams) (*AttachedExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.attachExercise")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Weight < 0 {
		return nil, newValidationError("weight", "must be zero or greater")
	}
	if params.ExerciseID == uuid.Nil {
		return nil, newValidationError("exerciseId", "required")
	}

	if _, err = s.repo.GetSession(ctx, params.SessionID, userID); err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxOrderNum(ctx, params.SessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("next order num: %w", err)
	}

	inserted, err := s.repo.InsertWorkoutExercise(ctx, WorkoutExercise{
		WorkoutSessionID: params.SessionID,
		ExerciseID:       params.ExerciseID,
		UserID:           userID,
		Weight:           params.Weight,
		OrderNum:         maxOrder + 1,
		TotalVolume:      0,
		Notes:            params.Notes,
	})
	if err != nil {
		return nil, err
	}

	attached, err := s.repo.GetAttachedExercise(ctx, inserted.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("load attached exercise: %w", err)
	}

	return attached, nil
}

type LogSetParams struct {
	WorkoutExerciseID uuid.UUID
	Reps              int
	Notes             string
}

// LogSetResult carries everything the UI shows after a set is logged.
// VolumeSynced is false when the set was stored but the running total
// volume update failed; the set is kept either way.
type LogSetResult struct {
	Set            ExerciseSet `json:"set"`
	NewTotalVolume float64     `json:"newTotalVolume"`
	VolumeSynced   bool        `json:"volumeSynced"`
	PRAtWeight     *float64    `json:"prAtWeight,omitempty"`
	PROverall      *float64    `json:"prOverall,omitempty"`
}

// LogSet records one completed set against a workout exercise. The
// set's weight and volume come from the parent exercise's fixed
// weight. The parent's running total volume is updated in a separate
// statement; if that update fails the already inserted set is not
// rolled back, and the result says so via VolumeSynced.
func (s *Service) LogSet(ctx context.Context, userID uuid.UUID, params LogSetParams) (*LogSetResult, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.logSet")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Reps < 0 {
		return nil, newValidationError("reps", "must be zero or greater")
	}

	we, err := s.repo.GetWorkoutExercise(ctx, params.WorkoutExerciseID, userID)
	if err != nil {
		return nil, err
	}

	setVolume := float64(params.Reps) * we.Weight

	maxSet, err := s.repo.MaxSetNumber(ctx, we.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("next set number: %w", err)
	}

	inserted, err := s.repo.InsertSet(ctx, ExerciseSet{
		WorkoutExerciseID: we.ID,
		UserID:            userID,
		SetNumber:         maxSet + 1,
		Reps:              params.Reps,
		Weight:            we.Weight,
		Notes:             params.Notes,
	})
	if err != nil {
		return nil, err
	}

	result := &LogSetResult{
		Set:            *inserted,
		NewTotalVolume: we.TotalVolume + setVolume,
		VolumeSynced:   true,
	}

	if err := s.repo.UpdateTotalVolume(ctx, we.ID, userID, we.TotalVolume+setVolume); err != nil {
		// the set itself is stored; report and move on
		log.Errorf("log set: update total volume for workout exercise %s: %s", we.ID, err)
		result.VolumeSynced = false
		return result, nil
	}

	if pr, prErr := s.aggregates.PRAtWeight(ctx, userID, we.ExerciseID, we.Weight); prErr != nil {
		log.Warnf("log set: get pr at weight for exercise %s: %s", we.ExerciseID, prErr)
	} else {
		result.PRAtWeight = pr
	}
	if pr, prErr := s.aggregates.PROverall(ctx, userID, we.ExerciseID); prErr != nil {
		log.Warnf("log set: get overall pr for exercise %s: %s", we.ExerciseID, prErr)
	} else {
		result.PROverall = pr
	}

	return result, nil
}

func (s *Service) ListSets(ctx context.Context, userID, workoutExerciseID uuid.UUID) ([]ExerciseSet, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutService.listSets")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = s.repo.GetWorkoutExercise(ctx, workoutExerciseID, userID); err != nil {
		return nil, err
	}

	sets, err := s.repo.ListSets(ctx, workoutExerciseID, userID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return sets, nil
}
