package workout

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
)

// repoMock keeps everything in memory and enforces the same unique
// constraints the real store has, so the duplicate-slot paths can be
// exercised without a database.
type repoMock struct {
	sessions         map[uuid.UUID]WorkoutSession
	workoutExercises map[uuid.UUID]WorkoutExercise
	sets             map[uuid.UUID]ExerciseSet

	// catalog names for GetAttachedExercise / ListAttachedExercises
	exerciseNames    map[uuid.UUID]string
	muscleGroupNames map[uuid.UUID]string

	failUpdateTotalVolume bool
	failInsertSet         bool
}

func newRepoMock() *repoMock {
	return &repoMock{
		sessions:         map[uuid.UUID]WorkoutSession{},
		workoutExercises: map[uuid.UUID]WorkoutExercise{},
		sets:             map[uuid.UUID]ExerciseSet{},
		exerciseNames:    map[uuid.UUID]string{},
		muscleGroupNames: map[uuid.UUID]string{},
	}
}

func (m *repoMock) CreateSession(_ context.Context, session WorkoutSession) (*WorkoutSession, error) {
	session.ID = uuid.New()
	m.sessions[session.ID] = session
	return &session, nil
}

func (m *repoMock) GetSession(_ context.Context, id, userID uuid.UUID) (*WorkoutSession, error) {
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (m *repoMock) MaxOrderNum(_ context.Context, sessionID, userID uuid.UUID) (int, error) {
	maxOrder := 0
	for _, we := range m.workoutExercises {
		if we.WorkoutSessionID == sessionID && we.UserID == userID && we.OrderNum > maxOrder {
			maxOrder = we.OrderNum
		}
	}
	return maxOrder, nil
}

func (m *repoMock) InsertWorkoutExercise(_ context.Context, we WorkoutExercise) (*WorkoutExercise, error) {
	for _, existing := range m.workoutExercises {
		if existing.WorkoutSessionID == we.WorkoutSessionID && existing.OrderNum == we.OrderNum {
			return nil, ErrAlreadyAttached
		}
	}
	we.ID = uuid.New()
	m.workoutExercises[we.ID] = we
	return &we, nil
}

func (m *repoMock) GetWorkoutExercise(_ context.Context, id, userID uuid.UUID) (*WorkoutExercise, error) {
	we, ok := m.workoutExercises[id]
	if !ok || we.UserID != userID {
		return nil, ErrWorkoutExerciseNotFound
	}
	return &we, nil
}

func (m *repoMock) attached(we WorkoutExercise) AttachedExercise {
	return AttachedExercise{
		WorkoutExercise: we,
		ExerciseName:    m.exerciseNames[we.ExerciseID],
		MuscleGroupName: m.muscleGroupNames[we.ExerciseID],
	}
}

func (m *repoMock) GetAttachedExercise(_ context.Context, id, userID uuid.UUID) (*AttachedExercise, error) {
	we, ok := m.workoutExercises[id]
	if !ok || we.UserID != userID {
		return nil, ErrWorkoutExerciseNotFound
	}
	ae := m.attached(we)
	return &ae, nil
}

func (m *repoMock) ListAttachedExercises(_ context.Context, sessionID, userID uuid.UUID) ([]AttachedExercise, error) {
	var attached []AttachedExercise
	for _, we := range m.workoutExercises {
		if we.WorkoutSessionID == sessionID && we.UserID == userID {
			attached = append(attached, m.attached(we))
		}
	}
	sort.Slice(attached, func(i, j int) bool {
		return attached[i].OrderNum < attached[j].OrderNum
	})
	return attached, nil
}

func (m *repoMock) MaxSetNumber(_ context.Context, workoutExerciseID, userID uuid.UUID) (int, error) {
	maxSet := 0
	for _, s := range m.sets {
		if s.WorkoutExerciseID == workoutExerciseID && s.UserID == userID && s.SetNumber > maxSet {
			maxSet = s.SetNumber
		}
	}
	return maxSet, nil
}

func (m *repoMock) InsertSet(_ context.Context, set ExerciseSet) (*ExerciseSet, error) {
	if m.failInsertSet {
		return nil, errors.New("insert set failed")
	}
	for _, existing := range m.sets {
		if existing.WorkoutExerciseID == set.WorkoutExerciseID && existing.SetNumber == set.SetNumber {
			return nil, ErrDuplicateSetNumber
		}
	}
	set.ID = uuid.New()
	m.sets[set.ID] = set
	return &set, nil
}

func (m *repoMock) ListSets(_ context.Context, workoutExerciseID, userID uuid.UUID) ([]ExerciseSet, error) {
	var sets []ExerciseSet
	for _, s := range m.sets {
		if s.WorkoutExerciseID == workoutExerciseID && s.UserID == userID {
			sets = append(sets, s)
		}
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].SetNumber < sets[j].SetNumber
	})
	return sets, nil
}

func (m *repoMock) UpdateTotalVolume(_ context.Context, workoutExerciseID, userID uuid.UUID, totalVolume float64) error {
	if m.failUpdateTotalVolume {
		return errors.New("update total volume failed")
	}
	we, ok := m.workoutExercises[workoutExerciseID]
	if !ok || we.UserID != userID {
		return ErrWorkoutExerciseNotFound
	}
	we.TotalVolume = totalVolume
	m.workoutExercises[workoutExerciseID] = we
	return nil
}

type aggregatesMock struct {
	prAtWeight *float64
	prOverall  *float64
	err        error
}

func (m *aggregatesMock) PRAtWeight(_ context.Context, _, _ uuid.UUID, _ float64) (*float64, error) {
	return m.prAtWeight, m.err
}

func (m *aggregatesMock) PROverall(_ context.Context, _, _ uuid.UUID) (*float64, error) {
	return m.prOverall, m.err
}
