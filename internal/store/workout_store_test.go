package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/tests/testutil"
)

func TestStartWorkout_AllowsMultipleOpen(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.StartWorkout(ctx, 0, model.Split[0].Name,
		model.Timestamp(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	second, err := s.StartWorkout(ctx, 1, model.Split[1].Name,
		model.Timestamp(time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// No invariant closes the first workout; the active one is simply
	// the most recently started.
	active, err := s.ActiveWorkout(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second, active.ID)
	assert.True(t, active.Open())
}

func TestFinishWorkout_Terminal(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	id, err := s.StartWorkout(ctx, 2, model.Split[2].Name,
		model.Timestamp(time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	completedAt := model.Timestamp(time.Date(2026, 1, 3, 9, 30, 0, 0, time.UTC))
	require.NoError(t, s.FinishWorkout(ctx, id, completedAt))

	active, err := s.ActiveWorkout(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	last, err := s.LastCompletedWorkout(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, id, last.ID)
	require.NotNil(t, last.CompletedAt)
	assert.Equal(t, completedAt, *last.CompletedAt)
}

func TestFinishWorkout_NotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	err := s.FinishWorkout(context.Background(), 9999,
		model.Timestamp(time.Now()))
	assert.Error(t, err)
}

func TestActiveWorkout_NoneOpen(t *testing.T) {
	s := testutil.NewTestStore(t)

	active, err := s.ActiveWorkout(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)

	last, err := s.LastCompletedWorkout(context.Background())
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestAddLogPair_WritesBothSetTypes(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)

	err := s.AddLogPair(ctx, store.LogPair{
		WorkoutID:    workoutID,
		ExerciseName: "Dumbbell Shoulder Press",
		Date:         model.Timestamp(time.Now()),
		Weight:       17.5,
		TopReps:      12,
		BackOffReps:  10,
	})
	require.NoError(t, err)

	logs, err := s.WorkoutLogs(ctx, workoutID)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	bySetType := map[string]model.Log{}
	for _, l := range logs {
		bySetType[l.SetType] = l
		assert.Equal(t, "Dumbbell Shoulder Press", l.ExerciseName)
		assert.Equal(t, 17.5, l.Weight)
		assert.Equal(t, "kg", l.Unit)
	}
	assert.Equal(t, 12, bySetType[model.SetTypeTop].Reps)
	assert.Equal(t, 10, bySetType[model.SetTypeBackOff].Reps)
	// Same date on both rows: that is the entry grouping key.
	assert.Equal(t,
		bySetType[model.SetTypeTop].Date,
		bySetType[model.SetTypeBackOff].Date)
}

func TestAddLogPair_AtomicOnFailure(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	// workout_id 42 violates the foreign key, so the transaction must
	// roll back without committing either row.
	err := s.AddLogPair(ctx, store.LogPair{
		WorkoutID:    42,
		ExerciseName: "Cable Row",
		Date:         model.Timestamp(time.Now()),
		Weight:       30,
		TopReps:      10,
		BackOffReps:  8,
	})
	require.Error(t, err)

	entries, err := s.EntriesForExercise(ctx, "Cable Row", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddLog_RejectsUnknownSetType(t *testing.T) {
	s := testutil.NewTestStore(t)
	workoutID := startTestWorkout(t, s)

	err := s.AddLog(context.Background(), model.Log{
		WorkoutID:    workoutID,
		ExerciseName: "Cable Row",
		Date:         model.Timestamp(time.Now()),
		Weight:       30,
		Reps:         10,
		SetType:      "WARMUP",
	})
	assert.Error(t, err)
}

func TestDistinctExercises(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)

	for _, name := range []string{"Cable Row", "Ab Crunch", "Cable Row"} {
		err := s.AddLog(ctx, model.Log{
			WorkoutID:    workoutID,
			ExerciseName: name,
			Date:         model.Timestamp(time.Now()),
			Weight:       20,
			Reps:         10,
			SetType:      model.SetTypeTop,
		})
		require.NoError(t, err)
	}

	names, err := s.DistinctExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ab Crunch", "Cable Row"}, names)
}
