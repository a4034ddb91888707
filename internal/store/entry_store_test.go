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

func startTestWorkout(t *testing.T, s *store.SQLiteStore) int64 {
	t.Helper()
	id, err := s.StartWorkout(context.Background(), 0,
		model.Split[0].Name, model.Timestamp(time.Now()))
	require.NoError(t, err)
	return id
}

func TestEntries_RoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)

	date := model.Timestamp(time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC))
	err := s.AddLogPair(ctx, store.LogPair{
		WorkoutID:    workoutID,
		ExerciseName: "Cable Row",
		Date:         date,
		Weight:       30,
		TopReps:      10,
		BackOffReps:  8,
	})
	require.NoError(t, err)

	entries, err := s.EntriesForExercise(ctx, "Cable Row", 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, date, e.Date)
	assert.Equal(t, 30.0, e.Weight)
	assert.Equal(t, "kg", e.Unit)
	require.NotNil(t, e.TopReps)
	require.NotNil(t, e.BackReps)
	assert.Equal(t, 10, *e.TopReps)
	assert.Equal(t, 8, *e.BackReps)
}

func TestEntries_OrderedMostRecentFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i, w := range []float64{20, 22.5, 25} {
		err := s.AddLogPair(ctx, store.LogPair{
			WorkoutID:    workoutID,
			ExerciseName: "Leg Extension",
			Date:         model.Timestamp(base.AddDate(0, 0, i)),
			Weight:       w,
			TopReps:      10,
			BackOffReps:  9,
		})
		require.NoError(t, err)
	}

	entries, err := s.EntriesForExercise(ctx, "Leg Extension", 100)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 25.0, entries[0].Weight)
	assert.Equal(t, 22.5, entries[1].Weight)
	assert.Equal(t, 20.0, entries[2].Weight)

	// Limit applies after ordering.
	entries, err = s.EntriesForExercise(ctx, "Leg Extension", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 25.0, entries[0].Weight)
}

func TestEntries_DuplicateSetTypeCollapsesToMax(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)
	date := model.Timestamp(time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC))

	// Two TOP_SET rows in the same (date, weight) group.
	for _, reps := range []int{9, 11} {
		err := s.AddLog(ctx, model.Log{
			WorkoutID:    workoutID,
			ExerciseName: "Ab Crunch",
			Date:         date,
			Weight:       0,
			Reps:         reps,
			SetType:      model.SetTypeTop,
		})
		require.NoError(t, err)
	}

	entries, err := s.EntriesForExercise(ctx, "Ab Crunch", 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].TopReps)
	assert.Equal(t, 11, *entries[0].TopReps)
	assert.Nil(t, entries[0].BackReps)
}

func TestEntries_MissingSetTypeIsNil(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)
	date := model.Timestamp(time.Now())

	err := s.AddLog(ctx, model.Log{
		WorkoutID:    workoutID,
		ExerciseName: "Hyperextension",
		Date:         date,
		Weight:       10,
		Reps:         12,
		SetType:      model.SetTypeBackOff,
	})
	require.NoError(t, err)

	entry, err := s.LastEntry(ctx, "Hyperextension")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Nil(t, entry.TopReps)
	require.NotNil(t, entry.BackReps)
	assert.Equal(t, 12, *entry.BackReps)
}

func TestLastEntry_NoData(t *testing.T) {
	s := testutil.NewTestStore(t)

	entry, err := s.LastEntry(context.Background(), "Never Logged")
	require.NoError(t, err)
	assert.Nil(t, entry)

	entries, err := s.EntriesForExercise(context.Background(), "Never Logged", 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteEntry_RemovesBothRowsForDateOnly(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)

	dayOne := model.Timestamp(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	dayTwo := model.Timestamp(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	for _, date := range []string{dayOne, dayTwo} {
		err := s.AddLogPair(ctx, store.LogPair{
			WorkoutID:    workoutID,
			ExerciseName: "EZ-Bar Curl",
			Date:         date,
			Weight:       25,
			TopReps:      10,
			BackOffReps:  8,
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteEntry(ctx, "EZ-Bar Curl", dayOne))

	entries, err := s.EntriesForExercise(ctx, "EZ-Bar Curl", 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dayTwo, entries[0].Date)
	// Both set types of the surviving entry are intact.
	assert.NotNil(t, entries[0].TopReps)
	assert.NotNil(t, entries[0].BackReps)
}

func TestDeleteEntry_DoesNotTouchOtherExercises(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	workoutID := startTestWorkout(t, s)
	date := model.Timestamp(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	for _, name := range []string{"Cable Row", "Leg Extension"} {
		err := s.AddLogPair(ctx, store.LogPair{
			WorkoutID:    workoutID,
			ExerciseName: name,
			Date:         date,
			Weight:       40,
			TopReps:      10,
			BackOffReps:  10,
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteEntry(ctx, "Cable Row", date))

	entry, err := s.LastEntry(ctx, "Leg Extension")
	require.NoError(t, err)
	assert.NotNil(t, entry)
}
